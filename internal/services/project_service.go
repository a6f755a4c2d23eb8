package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/alimgiray/projectboard/internal/metrics"
	"github.com/alimgiray/projectboard/internal/models"
	"github.com/alimgiray/projectboard/internal/repositories"
	"github.com/alimgiray/projectboard/pkg/logger"
	"github.com/sirupsen/logrus"
)

type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

func NewProjectService(projectRepo *repositories.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// CreateProject validates the draft and stores it as an open project owned by ownerID
func (s *ProjectService) CreateProject(ownerID string, draft *models.ProjectDraft) (*models.Project, error) {
	if ownerID == "" {
		return nil, errors.New("owner ID is required")
	}

	if err := draft.Validate(); err != nil {
		recordValidationFailure(err)
		return nil, err
	}

	project := models.NewProject(ownerID, draft)
	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	metrics.ProjectsCreated.Inc()
	logger.WithFields(logrus.Fields{
		"project_id": project.ID,
		"owner_id":   ownerID,
		"roles":      []string(project.RolesNeeded),
	}).Info("Project created")

	return s.projectRepo.GetByID(project.ID)
}

// GetProject retrieves a project with its owner profile
func (s *ProjectService) GetProject(id string) (*models.Project, error) {
	if id == "" {
		return nil, ErrProjectNotFound
	}

	project, err := s.projectRepo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	return project, nil
}

// ListOpenProjects retrieves the projects shown on the public board
func (s *ProjectService) ListOpenProjects() ([]*models.Project, error) {
	projects, err := s.projectRepo.GetOpen()
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	return projects, nil
}

// ListOwnerProjects retrieves every project posted by ownerID
func (s *ProjectService) ListOwnerProjects(ownerID string) ([]*models.Project, error) {
	projects, err := s.projectRepo.GetByOwnerID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	return projects, nil
}

// ToggleStatus flips a project between open and closed on behalf of userID
// and returns the new status.
func (s *ProjectService) ToggleStatus(projectID, userID string) (models.ProjectStatus, error) {
	project, err := s.GetProject(projectID)
	if err != nil {
		return "", err
	}

	if !project.IsOwnedBy(userID) {
		return "", ErrNotProjectOwner
	}

	next := project.Status.Toggled()
	if err := s.projectRepo.UpdateStatus(project.ID, next); err != nil {
		return "", fmt.Errorf("failed to update project status: %w", err)
	}

	metrics.ProjectStatusChanges.WithLabelValues(string(next)).Inc()
	logger.WithFields(logrus.Fields{
		"project_id": project.ID,
		"status":     next,
	}).Info("Project status changed")

	return next, nil
}

func recordValidationFailure(err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		metrics.ValidationFailures.WithLabelValues(string(verr.Kind)).Inc()
	}
}
