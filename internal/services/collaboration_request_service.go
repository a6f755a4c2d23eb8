package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/alimgiray/projectboard/internal/metrics"
	"github.com/alimgiray/projectboard/internal/models"
	"github.com/alimgiray/projectboard/internal/repositories"
	"github.com/alimgiray/projectboard/pkg/logger"
	"github.com/sirupsen/logrus"
)

type CollaborationRequestService struct {
	requestRepo    *repositories.CollaborationRequestRepository
	projectService *ProjectService
}

func NewCollaborationRequestService(
	requestRepo *repositories.CollaborationRequestRepository,
	projectService *ProjectService,
) *CollaborationRequestService {
	return &CollaborationRequestService{
		requestRepo:    requestRepo,
		projectService: projectService,
	}
}

// SubmitRequest records a visitor's interest in a project
func (s *CollaborationRequestService) SubmitRequest(projectID string, draft *models.CollaborationDraft) (*models.CollaborationRequest, error) {
	if err := draft.Validate(); err != nil {
		recordValidationFailure(err)
		return nil, err
	}

	project, err := s.projectService.GetProject(projectID)
	if err != nil {
		return nil, err
	}

	request := models.NewCollaborationRequest(project.ID, draft)
	if err := s.requestRepo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to submit request: %w", err)
	}

	metrics.CollaborationRequestsSubmitted.Inc()
	logger.WithFields(logrus.Fields{
		"request_id": request.ID,
		"project_id": project.ID,
	}).Info("Collaboration request submitted")

	return s.requestRepo.GetByID(request.ID)
}

// ListProjectRequests retrieves the requests for one project. Only its owner may read them.
func (s *CollaborationRequestService) ListProjectRequests(projectID, ownerID string) ([]*models.CollaborationRequest, error) {
	project, err := s.projectService.GetProject(projectID)
	if err != nil {
		return nil, err
	}
	if !project.IsOwnedBy(ownerID) {
		return nil, ErrNotProjectOwner
	}

	requests, err := s.requestRepo.GetByProjectID(project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requests: %w", err)
	}
	return requests, nil
}

// ListOwnerRequests retrieves the requests received by all of ownerID's projects
func (s *CollaborationRequestService) ListOwnerRequests(ownerID string) ([]*models.CollaborationRequest, error) {
	requests, err := s.requestRepo.GetByOwnerID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requests: %w", err)
	}
	return requests, nil
}

// FilterByProject keeps the requests for projectID. An empty projectID keeps all.
func FilterByProject(requests []*models.CollaborationRequest, projectID string) []*models.CollaborationRequest {
	if projectID == "" {
		return requests
	}

	filtered := make([]*models.CollaborationRequest, 0, len(requests))
	for _, request := range requests {
		if request.ProjectID == projectID {
			filtered = append(filtered, request)
		}
	}
	return filtered
}

// CountByProject tallies requests per project ID
func CountByProject(requests []*models.CollaborationRequest) map[string]int {
	counts := make(map[string]int)
	for _, request := range requests {
		counts[request.ProjectID]++
	}
	return counts
}

// ReplyMailto builds the link an owner uses to answer a request by email
func ReplyMailto(request *models.CollaborationRequest) string {
	subject := "Re: Collaboration on " + request.ProjectTitle
	return "mailto:" + request.Email + "?subject=" + strings.ReplaceAll(url.QueryEscape(subject), "+", "%20")
}
