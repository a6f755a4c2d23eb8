package repositories

import (
	"database/sql"

	"github.com/alimgiray/projectboard/internal/models"
)

type CollaborationRequestRepository struct {
	db *sql.DB
}

func NewCollaborationRequestRepository(db *sql.DB) *CollaborationRequestRepository {
	return &CollaborationRequestRepository{db: db}
}

const collaborationRequestQuery = `
	SELECT r.id, r.project_id, r.full_name, r.email, r.phone, r.skills, r.message, r.created_at,
		p.title
	FROM collaboration_requests r
	JOIN projects p ON p.id = r.project_id
`

// Create creates a new collaboration request
func (r *CollaborationRequestRepository) Create(request *models.CollaborationRequest) error {
	query := `
		INSERT INTO collaboration_requests (
			id, project_id, full_name, email, phone, skills, message, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		request.ID, request.ProjectID, request.FullName, request.Email,
		request.Phone, request.Skills, request.Message, request.CreatedAt,
	)

	return err
}

// GetByID retrieves a collaboration request by ID
func (r *CollaborationRequestRepository) GetByID(id string) (*models.CollaborationRequest, error) {
	row := r.db.QueryRow(collaborationRequestQuery+` WHERE r.id = ?`, id)
	return scanCollaborationRequest(row)
}

// GetByProjectID retrieves all requests for a project, newest first
func (r *CollaborationRequestRepository) GetByProjectID(projectID string) ([]*models.CollaborationRequest, error) {
	query := collaborationRequestQuery + `
		WHERE r.project_id = ?
		ORDER BY r.created_at DESC
	`
	return r.queryRequests(query, projectID)
}

// GetByOwnerID retrieves the requests for every project owned by ownerID, newest first
func (r *CollaborationRequestRepository) GetByOwnerID(ownerID string) ([]*models.CollaborationRequest, error) {
	query := collaborationRequestQuery + `
		WHERE p.user_id = ?
		ORDER BY r.created_at DESC
	`
	return r.queryRequests(query, ownerID)
}

func (r *CollaborationRequestRepository) queryRequests(query string, args ...interface{}) ([]*models.CollaborationRequest, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []*models.CollaborationRequest{}
	for rows.Next() {
		request, err := scanCollaborationRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, rows.Err()
}

func scanCollaborationRequest(row rowScanner) (*models.CollaborationRequest, error) {
	request := &models.CollaborationRequest{}
	err := row.Scan(
		&request.ID, &request.ProjectID, &request.FullName, &request.Email,
		&request.Phone, &request.Skills, &request.Message, &request.CreatedAt,
		&request.ProjectTitle,
	)
	if err != nil {
		return nil, err
	}
	return request, nil
}
