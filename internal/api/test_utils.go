package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Nirvaan05/Ez-Cooking/config"
	"github.com/Nirvaan05/Ez-Cooking/internal/model"
	"github.com/Nirvaan05/Ez-Cooking/internal/service"
)

// setupTestDB opens a throwaway SQLite database with the schema migrated
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Recipe{}, &model.User{}))
	return db
}

// fakeModelServer answers every chat-completions request with content
func fakeModelServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// testConfig returns a config pointing uploads at a temp dir and the
// model client at apiURL. An empty apiURL leaves the client unconfigured.
func testConfig(t *testing.T, apiURL string) *config.Config {
	t.Helper()
	cfg := &config.Config{
		UploadDir:         filepath.Join(t.TempDir(), "uploads"),
		MaxUploadSize:     16 * 1024 * 1024,
		AllowedExtensions: []string{"png", "jpg", "jpeg", "gif", "webp"},
		OpenAIAPIURL:      apiURL,
	}
	if apiURL != "" {
		cfg.OpenAIAPIKey = "test-key"
	}
	return cfg
}

// setupTestRouter builds the full API surface against a test database and
// the given model endpoint. Drafts are disabled (no Redis in unit tests).
func setupTestRouter(t *testing.T, cfg *config.Config) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	llmService := service.NewLLMService(cfg)
	uploadService := service.NewUploadService(cfg, nil)

	router := gin.New()
	apiGroup := router.Group("/api")
	apiGroup.GET("/health", HealthCheck)
	NewRecipeHandler(service.NewRecipeService(db)).RegisterRoutes(apiGroup)
	NewImageHandler(llmService, uploadService, nil).RegisterRoutes(apiGroup)
	NewLLMHandler(llmService, nil).RegisterRoutes(apiGroup)

	return router, db
}
