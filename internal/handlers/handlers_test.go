package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alimgiray/projectboard/internal/middleware"
	"github.com/alimgiray/projectboard/internal/models"
	"github.com/alimgiray/projectboard/internal/repositories"
	"github.com/alimgiray/projectboard/internal/services"
	"github.com/alimgiray/projectboard/pkg/config"
	"github.com/alimgiray/projectboard/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router   *gin.Engine
	profiles *services.ProfileService
	projects *services.ProjectService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	require.NoError(t, config.Load())
	gin.SetMode(gin.TestMode)

	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	profileService := services.NewProfileService(repositories.NewProfileRepository(db))
	projectService := services.NewProjectService(repositories.NewProjectRepository(db))
	requestService := services.NewCollaborationRequestService(repositories.NewCollaborationRequestRepository(db), projectService)

	router := gin.New()
	router.Use(middleware.SessionMiddleware())
	router.GET("/test/login/:id", func(c *gin.Context) {
		require.NoError(t, middleware.SetSession(c, c.Param("id"), "tester", "tester@example.com"))
		c.Status(http.StatusNoContent)
	})

	SetupRoutes(router,
		NewProjectHandler(projectService, requestService),
		NewDashboardHandler(projectService, requestService, services.NewExportService()),
		NewAuthHandler(profileService, services.NewGitHubService()),
		NewHealthHandler(db),
	)

	return &testServer{router: router, profiles: profileService, projects: projectService}
}

func (s *testServer) signUp(t *testing.T, email string) (*models.Profile, *http.Cookie) {
	t.Helper()
	profile, err := s.profiles.UpsertFromIdentity(&services.Identity{Login: "tester", Name: "Test User", Email: email})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test/login/"+profile.ID, nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "session" {
			return profile, cookie
		}
	}
	t.Fatal("no session cookie issued")
	return nil, nil
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (s *testServer) postProject(t *testing.T, owner *models.Profile, title string, roles ...string) *models.Project {
	t.Helper()
	project, err := s.projects.CreateProject(owner.ID, &models.ProjectDraft{
		Title:         title,
		Description:   "About " + title,
		VideoURL:      "https://youtu.be/abc123",
		UserProblem:   "Nobody can find teammates",
		TalkedToUsers: true,
		RolesNeeded:   models.StringList(roles),
	})
	require.NoError(t, err)
	return project
}

func validProjectBody() gin.H {
	return gin.H{
		"title":           "Study Buddy",
		"description":     "Match students for study sessions",
		"video_url":       "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"user_problem":    "Studying alone is hard",
		"talked_to_users": true,
		"roles_needed":    []string{"Engineer"},
	}
}
