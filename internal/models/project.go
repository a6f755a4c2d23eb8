package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProjectStatus is the visibility state of a posting
type ProjectStatus string

const (
	ProjectStatusOpen   ProjectStatus = "open"
	ProjectStatusClosed ProjectStatus = "closed"
)

// Toggled returns the opposite status. Anything that is not open reopens.
func (s ProjectStatus) Toggled() ProjectStatus {
	if s == ProjectStatusOpen {
		return ProjectStatusClosed
	}
	return ProjectStatusOpen
}

// Project is a posted collaboration opportunity
type Project struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	VideoURL      string        `json:"video_url"`
	UserProblem   string        `json:"user_problem"`
	TalkedToUsers bool          `json:"talked_to_users"`
	RolesNeeded   StringList    `json:"roles_needed"`
	Status        ProjectStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	// Owner is populated by queries that join profiles
	Owner *Profile `json:"owner,omitempty"`
}

// IsOpen reports whether the project is listed on the board
func (p *Project) IsOpen() bool {
	return p.Status == ProjectStatusOpen
}

// IsOwnedBy reports whether userID posted the project
func (p *Project) IsOwnedBy(userID string) bool {
	return userID != "" && p.UserID == userID
}

// videoHosts are the providers a project video may be hosted on
var videoHosts = []string{"youtube.com", "youtu.be", "loom.com"}

// ProjectDraft is an unsaved project as submitted by its owner
type ProjectDraft struct {
	Title         string
	Description   string
	VideoURL      string
	UserProblem   string
	TalkedToUsers bool
	RolesNeeded   StringList
}

// Validate checks the submission rules in display order and returns the
// first one that fails.
func (d *ProjectDraft) Validate() error {
	if !d.TalkedToUsers {
		return ErrUserNotValidated
	}
	if len(d.RolesNeeded) == 0 {
		return ErrNoRolesSelected
	}
	if !IsAllowedVideoURL(d.VideoURL) {
		return ErrInvalidVideoURL
	}
	return nil
}

// IsAllowedVideoURL reports whether url mentions one of the supported video hosts
func IsAllowedVideoURL(url string) bool {
	for _, host := range videoHosts {
		if strings.Contains(url, host) {
			return true
		}
	}
	return false
}

// NewProject builds an open project for ownerID from a validated draft
func NewProject(ownerID string, draft *ProjectDraft) *Project {
	now := time.Now().UTC()
	return &Project{
		ID:            uuid.New().String(),
		UserID:        ownerID,
		Title:         strings.TrimSpace(draft.Title),
		Description:   strings.TrimSpace(draft.Description),
		VideoURL:      strings.TrimSpace(draft.VideoURL),
		UserProblem:   strings.TrimSpace(draft.UserProblem),
		TalkedToUsers: draft.TalkedToUsers,
		RolesNeeded:   append(StringList{}, draft.RolesNeeded...),
		Status:        ProjectStatusOpen,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
