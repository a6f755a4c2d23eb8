package models

// ValidationErrorKind identifies which form rule a submission broke
type ValidationErrorKind string

const (
	KindUserNotValidated ValidationErrorKind = "user_not_validated"
	KindNoRolesSelected  ValidationErrorKind = "no_roles_selected"
	KindInvalidVideoURL  ValidationErrorKind = "invalid_video_url"
	KindNoSkillsSelected ValidationErrorKind = "no_skills_selected"
)

// ValidationError is a user-facing form error. Message is shown inline as is.
type ValidationError struct {
	Kind    ValidationErrorKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrUserNotValidated = &ValidationError{
		Kind:    KindUserNotValidated,
		Field:   "talked_to_users",
		Message: "Please confirm that you have talked to users",
	}
	ErrNoRolesSelected = &ValidationError{
		Kind:    KindNoRolesSelected,
		Field:   "roles_needed",
		Message: "Please select at least one role you are looking for",
	}
	ErrInvalidVideoURL = &ValidationError{
		Kind:    KindInvalidVideoURL,
		Field:   "video_url",
		Message: "Please provide a valid YouTube or Loom URL",
	}
	ErrNoSkillsSelected = &ValidationError{
		Kind:    KindNoSkillsSelected,
		Field:   "skills",
		Message: "Please select at least one skill",
	}
)
