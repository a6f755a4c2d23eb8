package repositories

import (
	"database/sql"
	"testing"
	"time"

	"github.com/alimgiray/projectboard/internal/models"
	"github.com/alimgiray/projectboard/pkg/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func createProfile(t *testing.T, db *sql.DB, email string) *models.Profile {
	t.Helper()
	name := "Owner " + email
	profile := &models.Profile{ID: uuid.New().String(), Email: email, FullName: &name}
	require.NoError(t, NewProfileRepository(db).Create(profile))
	return profile
}

func createProject(t *testing.T, db *sql.DB, ownerID, title string, createdAt time.Time) *models.Project {
	t.Helper()
	project := models.NewProject(ownerID, &models.ProjectDraft{
		Title:         title,
		Description:   "description of " + title,
		VideoURL:      "https://youtu.be/abc",
		UserProblem:   "problem",
		TalkedToUsers: true,
		RolesNeeded:   models.StringList{"Engineer", "Designer"},
	})
	project.CreatedAt = createdAt
	project.UpdatedAt = createdAt
	require.NoError(t, NewProjectRepository(db).Create(project))
	return project
}
