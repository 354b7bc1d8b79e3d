package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func sampleRecipe() map[string]interface{} {
	return map[string]interface{}{
		"title":        "Test Recipe",
		"description":  "Test Description",
		"ingredients":  []string{"ingredient1", "ingredient2"},
		"instructions": "step1 then step2",
		"cooking_time": 30,
		"servings":     4,
		"difficulty":   "Easy",
		"cuisine":      "Italian",
		"image_url":    "http://example.com/image.jpg",
	}
}

func TestCreateRecipe(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(t, ""))

	w := doJSON(t, router, "POST", "/api/recipes", sampleRecipe())
	assert.Equal(t, http.StatusCreated, w.Code)

	response := decodeBody(t, w)
	assert.Equal(t, "Recipe created successfully", response["message"])
	assert.Contains(t, response, "recipe_id")
}

func TestCreateRecipeMissingFields(t *testing.T) {
	router, db := setupTestRouter(t, testConfig(t, ""))

	for _, missing := range []string{"title", "ingredients", "instructions"} {
		recipe := sampleRecipe()
		delete(recipe, missing)

		w := doJSON(t, router, "POST", "/api/recipes", recipe)
		assert.Equal(t, http.StatusBadRequest, w.Code, "missing %s", missing)
		assert.Equal(t, "Missing required fields", decodeBody(t, w)["error"])
	}

	// nothing was persisted
	var count int64
	db.Table("recipes").Count(&count)
	assert.Zero(t, count)
}

func TestGetRecipeRoundTrip(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(t, ""))

	w := doJSON(t, router, "POST", "/api/recipes", sampleRecipe())
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["recipe_id"].(float64)

	w = doJSON(t, router, "GET", fmt.Sprintf("/api/recipes/%d", int(id)), nil)
	require.Equal(t, http.StatusOK, w.Code)

	got := decodeBody(t, w)
	assert.Equal(t, "Test Recipe", got["title"])
	assert.Equal(t, []interface{}{"ingredient1", "ingredient2"}, got["ingredients"])
	assert.Equal(t, "step1 then step2", got["instructions"])
	assert.Equal(t, float64(30), got["cooking_time"])
	assert.Equal(t, float64(4), got["servings"])
	assert.NotEmpty(t, got["created_at"])
	assert.NotEmpty(t, got["updated_at"])
}

func TestGetRecipeNotFound(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(t, ""))

	w := doJSON(t, router, "GET", "/api/recipes/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Recipe not found", decodeBody(t, w)["error"])

	// malformed ids behave the same as unknown ones
	w = doJSON(t, router, "GET", "/api/recipes/not-a-number", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateRecipePartial(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(t, ""))

	w := doJSON(t, router, "POST", "/api/recipes", sampleRecipe())
	require.Equal(t, http.StatusCreated, w.Code)
	id := int(decodeBody(t, w)["recipe_id"].(float64))

	w = doJSON(t, router, "PUT", fmt.Sprintf("/api/recipes/%d", id), map[string]interface{}{
		"title": "Renamed Recipe",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Recipe updated successfully", decodeBody(t, w)["message"])

	w = doJSON(t, router, "GET", fmt.Sprintf("/api/recipes/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody(t, w)
	assert.Equal(t, "Renamed Recipe", got["title"])
	// unspecified fields retain their prior values
	assert.Equal(t, "Test Description", got["description"])
	assert.Equal(t, []interface{}{"ingredient1", "ingredient2"}, got["ingredients"])
}

func TestUpdateRecipeNotFound(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(t, ""))

	w := doJSON(t, router, "PUT", "/api/recipes/9999", map[string]interface{}{"title": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRecipe(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(t, ""))

	w := doJSON(t, router, "POST", "/api/recipes", sampleRecipe())
	require.Equal(t, http.StatusCreated, w.Code)
	id := int(decodeBody(t, w)["recipe_id"].(float64))

	w = doJSON(t, router, "DELETE", fmt.Sprintf("/api/recipes/%d", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", fmt.Sprintf("/api/recipes/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// deleting again reports not-found, not an error page
	w = doJSON(t, router, "DELETE", fmt.Sprintf("/api/recipes/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRecipesPublicOnly(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(t, ""))

	private := sampleRecipe()
	private["is_public"] = false
	for i := 0; i < 2; i++ {
		w := doJSON(t, router, "POST", "/api/recipes", private)
		require.Equal(t, http.StatusCreated, w.Code)
	}
	w := doJSON(t, router, "POST", "/api/recipes", sampleRecipe())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "GET", "/api/recipes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	response := decodeBody(t, w)
	recipes := response["recipes"].([]interface{})
	assert.Len(t, recipes, 1)
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(t, ""))

	w := doJSON(t, router, "GET", "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	response := decodeBody(t, w)
	assert.Equal(t, "healthy", response["status"])
	assert.NotEmpty(t, response["timestamp"])
}
