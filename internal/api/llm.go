package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Nirvaan05/Ez-Cooking/internal/service"
)

// LLMHandler handles AI-backed requests: recipe generation, the AI Chef
// assistant and draft retrieval.
type LLMHandler struct {
	llm    *service.LLMService
	drafts *service.DraftService
}

// NewLLMHandler creates a new LLMHandler instance. drafts may be nil when
// no Redis is available; generated recipes are then simply not retained.
func NewLLMHandler(llm *service.LLMService, drafts *service.DraftService) *LLMHandler {
	return &LLMHandler{llm: llm, drafts: drafts}
}

// RegisterRoutes registers the AI routes
func (h *LLMHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/generate-recipe", h.GenerateRecipe)
	router.POST("/ai-chef", h.AIChef)
	router.GET("/drafts/:id", h.GetDraft)
	router.DELETE("/drafts/:id", h.DeleteDraft)
}

// GenerateRecipe generates a recipe from a list of ingredients
func (h *LLMHandler) GenerateRecipe(c *gin.Context) {
	var req struct {
		Ingredients []string `json:"ingredients"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || len(req.Ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No ingredients provided"})
		return
	}

	recipeData, err := h.llm.GenerateRecipeFromIngredients(c.Request.Context(), req.Ingredients)
	if err != nil {
		if errors.Is(err, service.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Recipe generation is not available. Please set your OpenAI API key."})
			return
		}
		log.Printf("[LLMHandler] Error generating recipe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recipe"})
		return
	}

	resp := gin.H{
		"message":     "Recipe generated successfully",
		"recipe_data": recipeData,
	}
	if id := h.saveDraft(c, "ingredients", recipeData, ""); id != "" {
		resp["draft_id"] = id
	}

	c.JSON(http.StatusOK, resp)
}

// AIChef answers a free-form cooking prompt with markdown text
func (h *LLMHandler) AIChef(c *gin.Context) {
	var req struct {
		Prompt string `json:"prompt"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No prompt provided"})
		return
	}

	markdown, err := h.llm.ChefChat(c.Request.Context(), strings.TrimSpace(req.Prompt))
	if err != nil {
		if errors.Is(err, service.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "AI Chef is not available. Please set your OpenAI API key."})
			return
		}
		log.Printf("[LLMHandler] AI Chef error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI Chef request failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"markdown": markdown})
}

// GetDraft returns a previously generated recipe draft
func (h *LLMHandler) GetDraft(c *gin.Context) {
	if h.drafts == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
		return
	}

	draft, err := h.drafts.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// DeleteDraft removes a recipe draft
func (h *LLMHandler) DeleteDraft(c *gin.Context) {
	if h.drafts != nil {
		if err := h.drafts.DeleteDraft(c.Request.Context(), c.Param("id")); err != nil {
			log.Printf("[LLMHandler] Failed to delete draft: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Draft deleted successfully"})
}

// saveDraft stores an AI result as an editable draft. Failures are logged,
// never surfaced: the caller already has the recipe data in hand.
func (h *LLMHandler) saveDraft(c *gin.Context, source string, data *service.RecipeData, imageURL string) string {
	if h.drafts == nil {
		return ""
	}

	draft := &service.RecipeDraft{
		Source:   source,
		Recipe:   *data,
		ImageURL: imageURL,
	}
	if err := h.drafts.SaveDraft(c.Request.Context(), draft); err != nil {
		log.Printf("[LLMHandler] Failed to save draft: %v", err)
		return ""
	}
	return draft.ID
}
