package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CollaborationRequest is a visitor's offer to join a project
type CollaborationRequest struct {
	ID        string     `json:"id"`
	ProjectID string     `json:"project_id"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone"`
	Skills    StringList `json:"skills"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`

	// ProjectTitle is populated by queries that join projects
	ProjectTitle string `json:"project_title,omitempty"`
}

// CollaborationDraft is an unsaved collaboration request
type CollaborationDraft struct {
	FullName string
	Email    string
	Phone    string
	Skills   StringList
	Message  string
}

// Validate checks the rules the form layer cannot express structurally
func (d *CollaborationDraft) Validate() error {
	if len(d.Skills) == 0 {
		return ErrNoSkillsSelected
	}
	return nil
}

// NewCollaborationRequest builds a request for projectID from a validated
// draft. A blank phone number is stored as NULL.
func NewCollaborationRequest(projectID string, draft *CollaborationDraft) *CollaborationRequest {
	var phone *string
	if p := strings.TrimSpace(draft.Phone); p != "" {
		phone = &p
	}

	return &CollaborationRequest{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		FullName:  strings.TrimSpace(draft.FullName),
		Email:     strings.TrimSpace(draft.Email),
		Phone:     phone,
		Skills:    append(StringList{}, draft.Skills...),
		Message:   strings.TrimSpace(draft.Message),
		CreatedAt: time.Now().UTC(),
	}
}
