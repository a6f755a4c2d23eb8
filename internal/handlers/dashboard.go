package handlers

import (
	"bytes"
	"net/http"

	"github.com/alimgiray/projectboard/internal/middleware"
	"github.com/alimgiray/projectboard/internal/models"
	"github.com/alimgiray/projectboard/internal/services"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DashboardHandler struct {
	projectService *services.ProjectService
	requestService *services.CollaborationRequestService
	exportService  *services.ExportService
}

func NewDashboardHandler(projectService *services.ProjectService, requestService *services.CollaborationRequestService,
	exportService *services.ExportService) *DashboardHandler {
	return &DashboardHandler{
		projectService: projectService,
		requestService: requestService,
		exportService:  exportService,
	}
}

type dashboardProject struct {
	*models.Project
	RequestCount int `json:"request_count"`
}

type dashboardRequest struct {
	*models.CollaborationRequest
	ReplyMailto string `json:"reply_mailto"`
}

// Dashboard lists the signed-in user's projects and the requests they have
// received. The "project" parameter narrows the requests to one project.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	ownerID := middleware.CurrentUserID(c)

	projects, err := h.projectService.ListOwnerProjects(ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	requests, err := h.requestService.ListOwnerRequests(ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	counts := services.CountByProject(requests)
	ownProjects := make([]dashboardProject, 0, len(projects))
	for _, project := range projects {
		ownProjects = append(ownProjects, dashboardProject{
			Project:      project,
			RequestCount: counts[project.ID],
		})
	}

	selected := c.Query("project")
	filtered := services.FilterByProject(requests, selected)
	received := make([]dashboardRequest, 0, len(filtered))
	for _, request := range filtered {
		received = append(received, dashboardRequest{
			CollaborationRequest: request,
			ReplyMailto:          services.ReplyMailto(request),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"projects":         ownProjects,
		"requests":         received,
		"total_requests":   len(requests),
		"selected_project": selected,
	})
}

// ExportRequests downloads the received requests as a spreadsheet
func (h *DashboardHandler) ExportRequests(c *gin.Context) {
	requests, err := h.requestService.ListOwnerRequests(middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	requests = services.FilterByProject(requests, c.Query("project"))

	var buf bytes.Buffer
	if err := h.exportService.WriteRequestsWorkbook(&buf, requests); err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="collaboration-requests.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
