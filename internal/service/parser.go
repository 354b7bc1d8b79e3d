package service

import (
	"encoding/json"
	"strings"
)

// Fixed values used when model output cannot be parsed as a recipe.
const (
	fallbackInstructions = "Please review and edit the recipe details."
	fallbackCookingTime  = 30
	fallbackServings     = 4
	fallbackDifficulty   = "Medium"
	fallbackCuisine      = "General"
)

// ExtractRecipeJSON scans model output for the first '{'...'}' region
// (greedy, spanning newlines) and decodes it as a recipe. If no JSON-shaped
// region is found, or decoding fails, the supplied fallback is returned;
// malformed model output never surfaces as an error.
func ExtractRecipeJSON(content string, fallback *RecipeData) *RecipeData {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		var data RecipeData
		if err := json.Unmarshal([]byte(content[start:end+1]), &data); err == nil {
			return &data
		}
	}
	return fallback
}

// ImageFallback synthesizes a stub recipe for the image-analysis path. The
// raw model text becomes the description so nothing the model said is lost.
func ImageFallback(content string) *RecipeData {
	return &RecipeData{
		Title:        "Recipe from Image",
		Description:  content,
		Ingredients:  []string{},
		Instructions: fallbackInstructions,
		CookingTime:  fallbackCookingTime,
		Servings:     fallbackServings,
		Difficulty:   fallbackDifficulty,
		Cuisine:      fallbackCuisine,
	}
}

// GenerationFallback synthesizes a stub recipe for the ingredient-based
// generation path, keeping the caller's ingredient list intact.
func GenerationFallback(content string, ingredients []string) *RecipeData {
	title := "Generated Recipe"
	if len(ingredients) > 0 {
		title = "Recipe with " + ingredients[0]
	}
	return &RecipeData{
		Title:        title,
		Description:  content,
		Ingredients:  ingredients,
		Instructions: fallbackInstructions,
		CookingTime:  fallbackCookingTime,
		Servings:     fallbackServings,
		Difficulty:   fallbackDifficulty,
		Cuisine:      fallbackCuisine,
	}
}
