package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/alimgiray/projectboard/internal/middleware"
	"github.com/alimgiray/projectboard/internal/models"
	"github.com/alimgiray/projectboard/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	requestService *services.CollaborationRequestService
}

func NewProjectHandler(projectService *services.ProjectService, requestService *services.CollaborationRequestService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		requestService: requestService,
	}
}

type projectForm struct {
	Title         string   `form:"title" json:"title" binding:"required"`
	Description   string   `form:"description" json:"description" binding:"required"`
	VideoURL      string   `form:"video_url" json:"video_url" binding:"required"`
	UserProblem   string   `form:"user_problem" json:"user_problem" binding:"required"`
	TalkedToUsers bool     `form:"talked_to_users" json:"talked_to_users"`
	RolesNeeded   []string `form:"roles_needed" json:"roles_needed"`
	CustomRole    string   `form:"custom_role" json:"custom_role"`
}

type collaborationForm struct {
	FullName string   `form:"full_name" json:"full_name" binding:"required"`
	Email    string   `form:"email" json:"email" binding:"required,email"`
	Phone    string   `form:"phone" json:"phone"`
	Skills   []string `form:"skills" json:"skills"`
	Message  string   `form:"message" json:"message" binding:"required"`
}

type boardEntry struct {
	*models.Project
	Posted string `json:"posted"`
}

// ListProjects serves the public board: open projects narrowed by the
// free-text query "q" and any number of "role" parameters.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListOpenProjects()
	if err != nil {
		respondError(c, err)
		return
	}

	query := c.Query("q")
	selectedRoles := services.NormalizeSelection(c.QueryArray("role"))

	now := time.Now()
	filtered := services.FilterProjects(projects, query, selectedRoles)
	entries := make([]boardEntry, 0, len(filtered))
	for _, project := range filtered {
		entries = append(entries, boardEntry{
			Project: project,
			Posted:  services.RelativeAge(project.CreatedAt, now),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"projects":       entries,
		"total":          len(projects),
		"query":          query,
		"selected_roles": selectedRoles,
		"roles":          services.DeriveRoleVocabulary(projects),
	})
}

// GetProject serves a single project with its embeddable video
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectService.GetProject(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project":   project,
		"embed_url": services.ResolveEmbedURL(project.VideoURL),
		"is_owner":  project.IsOwnedBy(middleware.CurrentUserID(c)),
		"is_open":   project.IsOpen(),
		"skills":    services.DefaultSkills,
	})
}

// CreateProject posts a new project for the signed-in user
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	normalizeCheckbox(c, "talked_to_users")

	var form projectForm
	if err := c.ShouldBind(&form); err != nil {
		respondBindingError(c, err)
		return
	}

	roles := services.NormalizeSelection(form.RolesNeeded)
	roles = services.AddCustomRole(roles, form.CustomRole)

	project, err := h.projectService.CreateProject(middleware.CurrentUserID(c), &models.ProjectDraft{
		Title:         form.Title,
		Description:   form.Description,
		VideoURL:      form.VideoURL,
		UserProblem:   form.UserProblem,
		TalkedToUsers: form.TalkedToUsers,
		RolesNeeded:   roles,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", "/api/projects/"+project.ID)
	c.JSON(http.StatusCreated, gin.H{"project": project})
}

// ToggleStatus opens or closes one of the signed-in user's projects
func (h *ProjectHandler) ToggleStatus(c *gin.Context) {
	projectID := c.Param("id")

	status, err := h.projectService.ToggleStatus(projectID, middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     projectID,
		"status": status,
	})
}

// ListRequests serves the requests received by one of the signed-in user's projects
func (h *ProjectHandler) ListRequests(c *gin.Context) {
	requests, err := h.requestService.ListProjectRequests(c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
		"total":    len(requests),
	})
}

// SubmitRequest records a collaboration request from any visitor
func (h *ProjectHandler) SubmitRequest(c *gin.Context) {
	var form collaborationForm
	if err := c.ShouldBind(&form); err != nil {
		respondBindingError(c, err)
		return
	}

	request, err := h.requestService.SubmitRequest(c.Param("id"), &models.CollaborationDraft{
		FullName: form.FullName,
		Email:    form.Email,
		Phone:    form.Phone,
		Skills:   services.NormalizeSelection(form.Skills),
		Message:  form.Message,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"request": request,
		"message": "Your request has been sent! The project owner will contact you soon.",
	})
}

// normalizeCheckbox rewrites the "on" a browser posts for a ticked checkbox to
// "true" so form binding can parse it as a bool. JSON bodies are left alone.
func normalizeCheckbox(c *gin.Context, field string) {
	if c.ContentType() == binding.MIMEJSON {
		return
	}

	value, ok := c.GetPostForm(field)
	if !ok || !strings.EqualFold(value, "on") {
		return
	}

	if c.Request.PostForm != nil {
		c.Request.PostForm.Set(field, "true")
	}
	if c.Request.Form != nil {
		c.Request.Form.Set(field, "true")
	}
}
