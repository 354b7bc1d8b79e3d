package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRecipe(t *testing.T) {
	srv := fakeModelServer(t, `{"title":"Fried Rice","description":"Quick dinner","ingredients":["rice","egg"],"instructions":"Fry everything","cooking_time":15,"servings":2,"difficulty":"Easy","cuisine":"Chinese"}`)
	router, _ := setupTestRouter(t, testConfig(t, srv.URL))

	w := doJSON(t, router, "POST", "/api/generate-recipe", map[string]interface{}{
		"ingredients": []string{"rice", "egg"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	response := decodeBody(t, w)
	assert.Equal(t, "Recipe generated successfully", response["message"])
	data := response["recipe_data"].(map[string]interface{})
	assert.Equal(t, "Fried Rice", data["title"])
	assert.Equal(t, []interface{}{"rice", "egg"}, data["ingredients"])
}

func TestGenerateRecipeStubOnNonJSON(t *testing.T) {
	srv := fakeModelServer(t, "Here is a lovely dinner idea, no JSON though.")
	router, _ := setupTestRouter(t, testConfig(t, srv.URL))

	w := doJSON(t, router, "POST", "/api/generate-recipe", map[string]interface{}{
		"ingredients": []string{"egg", "flour"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["recipe_data"].(map[string]interface{})
	assert.Equal(t, "Recipe with egg", data["title"])
	assert.Equal(t, []interface{}{"egg", "flour"}, data["ingredients"])
	assert.Equal(t, "Please review and edit the recipe details.", data["instructions"])
	assert.Equal(t, "Medium", data["difficulty"])
}

func TestGenerateRecipeNoIngredients(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(t, ""))

	w := doJSON(t, router, "POST", "/api/generate-recipe", map[string]interface{}{
		"ingredients": []string{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No ingredients provided", decodeBody(t, w)["error"])
}

func TestGenerateRecipeNotConfigured(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(t, ""))

	w := doJSON(t, router, "POST", "/api/generate-recipe", map[string]interface{}{
		"ingredients": []string{"egg"},
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"], "OpenAI API key")
}

func TestAIChef(t *testing.T) {
	markdown := "# Tonight's menu\n\n- **Pasta** 🍝"
	srv := fakeModelServer(t, markdown)
	router, _ := setupTestRouter(t, testConfig(t, srv.URL))

	w := doJSON(t, router, "POST", "/api/ai-chef", map[string]interface{}{
		"prompt": "what should I cook?",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, markdown, decodeBody(t, w)["markdown"])
}

func TestAIChefEmptyPrompt(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(t, ""))

	w := doJSON(t, router, "POST", "/api/ai-chef", map[string]interface{}{
		"prompt": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No prompt provided", decodeBody(t, w)["error"])
}

func TestAIChefNotConfigured(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(t, ""))

	w := doJSON(t, router, "POST", "/api/ai-chef", map[string]interface{}{
		"prompt": "hello",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "AI Chef is not available. Please set your OpenAI API key.", decodeBody(t, w)["error"])
}

func TestGetDraftWithoutRedis(t *testing.T) {
	router, _ := setupTestRouter(t, testConfig(t, ""))

	w := doJSON(t, router, "GET", "/api/drafts/some-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Draft not found", decodeBody(t, w)["error"])
}
