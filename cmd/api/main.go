package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jobdesk/jobdesk-go/internal/ai"
	"github.com/jobdesk/jobdesk-go/internal/api/middleware"
	"github.com/jobdesk/jobdesk-go/internal/api/routes"
	"github.com/jobdesk/jobdesk-go/internal/application"
	"github.com/jobdesk/jobdesk-go/internal/config"
	"github.com/jobdesk/jobdesk-go/internal/config/db"
	"github.com/jobdesk/jobdesk-go/internal/repository"
	"github.com/jobdesk/jobdesk-go/internal/storage"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and migrate schemas
	db.Init()

	store, err := storage.NewMinioStore()
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	generator := ai.NewClient(config.OpenRouterAPIKey, config.OpenRouterBaseURL, config.OpenRouterModel)

	repos := repository.New(db.DB)
	services := application.New(repos, store, generator)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, services, store)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
