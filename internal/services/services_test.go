package services

import (
	"database/sql"
	"testing"

	"github.com/alimgiray/projectboard/internal/models"
	"github.com/alimgiray/projectboard/internal/repositories"
	"github.com/alimgiray/projectboard/pkg/database"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db       *sql.DB
	profiles *ProfileService
	projects *ProjectService
	requests *CollaborationRequestService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	projects := NewProjectService(repositories.NewProjectRepository(db))
	return &testEnv{
		db:       db,
		profiles: NewProfileService(repositories.NewProfileRepository(db)),
		projects: projects,
		requests: NewCollaborationRequestService(repositories.NewCollaborationRequestRepository(db), projects),
	}
}

func (e *testEnv) owner(t *testing.T, email string) *models.Profile {
	t.Helper()
	profile, err := e.profiles.UpsertFromIdentity(&Identity{Login: "owner", Name: "Project Owner", Email: email})
	require.NoError(t, err)
	return profile
}

func projectDraft(title string, roles ...string) *models.ProjectDraft {
	return &models.ProjectDraft{
		Title:         title,
		Description:   "A project called " + title,
		VideoURL:      "https://www.loom.com/share/abc",
		UserProblem:   "Students need this",
		TalkedToUsers: true,
		RolesNeeded:   models.StringList(roles),
	}
}
