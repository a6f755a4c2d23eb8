package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alimgiray/projectboard/internal/handlers"
	"github.com/alimgiray/projectboard/internal/middleware"
	"github.com/alimgiray/projectboard/internal/repositories"
	"github.com/alimgiray/projectboard/internal/services"
	"github.com/alimgiray/projectboard/pkg/config"
	"github.com/alimgiray/projectboard/pkg/database"
	"github.com/alimgiray/projectboard/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.Init()
	gin.SetMode(config.AppConfig.Server.Mode)

	// Initialize database
	if err := database.Init(); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize dependencies
	profileRepo := repositories.NewProfileRepository(database.DB)
	projectRepo := repositories.NewProjectRepository(database.DB)
	requestRepo := repositories.NewCollaborationRequestRepository(database.DB)

	profileService := services.NewProfileService(profileRepo)
	projectService := services.NewProjectService(projectRepo)
	requestService := services.NewCollaborationRequestService(requestRepo, projectService)
	exportService := services.NewExportService()
	githubService := services.NewGitHubService()

	// Initialize router
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(logger.GetLogger()),
		middleware.Metrics(),
		middleware.CORS(config.AppConfig.CORS.AllowOrigins),
		middleware.SessionMiddleware(),
	)

	handlers.SetupRoutes(router,
		handlers.NewProjectHandler(projectService, requestService),
		handlers.NewDashboardHandler(projectService, requestService, exportService),
		handlers.NewAuthHandler(profileService, githubService),
		handlers.NewHealthHandler(database.DB),
	)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(config.AppConfig.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}
	logger.Info("Server stopped")
}
