package repositories

import (
	"database/sql"
	"time"

	"github.com/alimgiray/projectboard/internal/models"
)

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

// projectWithOwnerQuery selects a project joined with its owner's public profile
const projectWithOwnerQuery = `
	SELECT p.id, p.user_id, p.title, p.description, p.video_url, p.user_problem,
		p.talked_to_users, p.roles_needed, p.status, p.created_at, p.updated_at,
		o.id, o.email, o.full_name, o.twitter, o.linkedin, o.phone, o.created_at, o.updated_at
	FROM projects p
	JOIN profiles o ON o.id = p.user_id
`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	query := `
		INSERT INTO projects (
			id, user_id, title, description, video_url, user_problem,
			talked_to_users, roles_needed, status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		project.ID,
		project.UserID,
		project.Title,
		project.Description,
		project.VideoURL,
		project.UserProblem,
		project.TalkedToUsers,
		project.RolesNeeded,
		project.Status,
		project.CreatedAt,
		project.UpdatedAt,
	)

	return err
}

// GetByID retrieves a project with its owner, whatever its status
func (r *ProjectRepository) GetByID(id string) (*models.Project, error) {
	row := r.db.QueryRow(projectWithOwnerQuery+` WHERE p.id = ?`, id)
	return scanProjectWithOwner(row)
}

// GetOpen retrieves every open project with its owner, newest first
func (r *ProjectRepository) GetOpen() ([]*models.Project, error) {
	query := projectWithOwnerQuery + `
		WHERE p.status = ?
		ORDER BY p.created_at DESC
	`
	return r.queryProjects(query, models.ProjectStatusOpen)
}

// GetByOwnerID retrieves all projects for an owner, newest first
func (r *ProjectRepository) GetByOwnerID(ownerID string) ([]*models.Project, error) {
	query := projectWithOwnerQuery + `
		WHERE p.user_id = ?
		ORDER BY p.created_at DESC
	`
	return r.queryProjects(query, ownerID)
}

// UpdateStatus sets the status of a project
func (r *ProjectRepository) UpdateStatus(id string, status models.ProjectStatus) error {
	query := `
		UPDATE projects
		SET status = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query, status, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *ProjectRepository) queryProjects(query string, args ...interface{}) ([]*models.Project, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []*models.Project{}
	for rows.Next() {
		project, err := scanProjectWithOwner(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

func scanProjectWithOwner(row rowScanner) (*models.Project, error) {
	project := &models.Project{}
	owner := &models.Profile{}
	err := row.Scan(
		&project.ID,
		&project.UserID,
		&project.Title,
		&project.Description,
		&project.VideoURL,
		&project.UserProblem,
		&project.TalkedToUsers,
		&project.RolesNeeded,
		&project.Status,
		&project.CreatedAt,
		&project.UpdatedAt,
		&owner.ID,
		&owner.Email,
		&owner.FullName,
		&owner.Twitter,
		&owner.LinkedIn,
		&owner.Phone,
		&owner.CreatedAt,
		&owner.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	project.Owner = owner
	return project, nil
}
