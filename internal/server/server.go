package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/Nirvaan05/Ez-Cooking/config"
	"github.com/Nirvaan05/Ez-Cooking/internal/api"
	"github.com/Nirvaan05/Ez-Cooking/internal/database"
	"github.com/Nirvaan05/Ez-Cooking/internal/router"
	"github.com/Nirvaan05/Ez-Cooking/internal/service"
)

// Server wires the application together and owns the HTTP lifecycle
type Server struct {
	http *http.Server
}

// New builds the server: database, optional Redis and S3, services,
// handlers and routes.
func New(cfg *config.Config) (*Server, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Drafts are a convenience; a missing Redis must not keep the API down
	var drafts *service.DraftService
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Redis unavailable, recipe drafts disabled: %v", err)
	} else {
		drafts = service.NewDraftService(redisClient)
	}

	s3cfg, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to configure S3 storage: %w", err)
	}

	llmService := service.NewLLMService(cfg)
	if !llmService.Available() {
		log.Printf("OPENAI_API_KEY not set; AI endpoints will report unavailability")
	}

	recipeHandler := api.NewRecipeHandler(service.NewRecipeService(db))
	imageHandler := api.NewImageHandler(llmService, service.NewUploadService(cfg, s3cfg), drafts)
	llmHandler := api.NewLLMHandler(llmService, drafts)

	engine := router.SetupRouter(cfg, recipeHandler, imageHandler, llmHandler)

	return &Server{
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
	}, nil
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
