package handlers

import (
	"github.com/alimgiray/projectboard/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes registers every endpoint of the board
func SetupRoutes(router *gin.Engine, projectHandler *ProjectHandler, dashboardHandler *DashboardHandler,
	authHandler *AuthHandler, healthHandler *HealthHandler) {
	// Auth routes
	router.GET("/auth/github", authHandler.GitHubLogin)
	router.GET("/auth/github/callback", authHandler.GitHubCallback)
	router.GET("/logout", authHandler.Logout)

	api := router.Group("/api")
	{
		api.GET("/projects", projectHandler.ListProjects)
		api.GET("/projects/:id", projectHandler.GetProject)
		api.POST("/projects/:id/requests", projectHandler.SubmitRequest)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthRequired())
	{
		protected.GET("/me", authHandler.Me)
		protected.POST("/projects", projectHandler.CreateProject)
		protected.POST("/projects/:id/status", projectHandler.ToggleStatus)
		protected.GET("/projects/:id/requests", projectHandler.ListRequests)
		protected.GET("/dashboard", dashboardHandler.Dashboard)
		protected.GET("/dashboard/requests.xlsx", dashboardHandler.ExportRequests)
	}

	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.NoRoute(NotFound)
}
