package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Nirvaan05/Ez-Cooking/config"
	"github.com/Nirvaan05/Ez-Cooking/internal/api"
	"github.com/Nirvaan05/Ez-Cooking/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	cfg *config.Config,
	recipeHandler *api.RecipeHandler,
	imageHandler *api.ImageHandler,
	llmHandler *api.LLMHandler,
) *gin.Engine {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadSize

	router.Use(middleware.CORS(cfg.CORSOrigins))

	// Uploaded images are served back by relative URL
	router.Static("/uploads", cfg.UploadDir)

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", api.HealthCheck)
		recipeHandler.RegisterRoutes(apiGroup)
		imageHandler.RegisterRoutes(apiGroup)
		llmHandler.RegisterRoutes(apiGroup)
	}

	return router
}
