package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nirvaan05/Ez-Cooking/internal/service"
)

// ImageHandler handles recipe image uploads and analysis
type ImageHandler struct {
	llm     *service.LLMService
	uploads *service.UploadService
	drafts  *service.DraftService
}

// NewImageHandler creates a new ImageHandler instance
func NewImageHandler(llm *service.LLMService, uploads *service.UploadService, drafts *service.DraftService) *ImageHandler {
	return &ImageHandler{llm: llm, uploads: uploads, drafts: drafts}
}

// RegisterRoutes registers the image routes
func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/upload-image", h.UploadImage)
}

// UploadImage saves an uploaded recipe photo and extracts a structured
// recipe from it. The saved file is kept even when analysis fails so the
// user can retry without re-uploading.
func (h *ImageHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}

	if file.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file selected"})
		return
	}

	if !h.uploads.Allowed(file.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type"})
		return
	}

	if file.Size > h.uploads.MaxSize() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	localPath, imageURL, err := h.uploads.Save(c.Request.Context(), file)
	if err != nil {
		log.Printf("[ImageHandler] Error saving upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	recipeData, err := h.llm.AnalyzeRecipeImage(c.Request.Context(), localPath)
	if err != nil {
		if errors.Is(err, service.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Image analysis is not available. Please set your OpenAI API key."})
			return
		}
		log.Printf("[ImageHandler] Error analyzing image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image"})
		return
	}

	resp := gin.H{
		"message":     "Image analyzed successfully",
		"recipe_data": recipeData,
		"image_url":   imageURL,
	}
	if h.drafts != nil {
		draft := &service.RecipeDraft{Source: "image", Recipe: *recipeData, ImageURL: imageURL}
		if err := h.drafts.SaveDraft(c.Request.Context(), draft); err != nil {
			log.Printf("[ImageHandler] Failed to save draft: %v", err)
		} else {
			resp["draft_id"] = draft.ID
		}
	}

	c.JSON(http.StatusOK, resp)
}
