package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/Nirvaan05/Ez-Cooking/config"
)

// ErrNotConfigured is returned by every model call when no API credential
// is present. The service itself is always constructible.
var ErrNotConfigured = errors.New("OpenAI API key not configured")

const (
	visionModel = "gpt-4o"
	recipeModel = "gpt-4"
	chefModel   = "gpt-4o"
)

const imageAnalysisPrompt = `Analyze this food/recipe image and extract the following information in JSON format:
{
    "title": "Recipe title",
    "description": "Brief description of the dish",
    "ingredients": ["ingredient 1", "ingredient 2", ...],
    "instructions": "Step-by-step cooking instructions",
    "cooking_time": 30,
    "servings": 4,
    "difficulty": "Easy/Medium/Hard",
    "cuisine": "Type of cuisine"
}

Be as detailed and accurate as possible. If you can't identify certain ingredients or details, make reasonable estimates based on what you can see.`

const chefSystemMessage = "You are ChefGenius, a passionate and knowledgeable culinary expert with expertise in global cuisine! " +
	"Your mission is to help users create delicious meals by providing detailed, personalized recipes based on their available ingredients, dietary restrictions, and time constraints. " +
	"Combine deep culinary knowledge with nutritional wisdom to suggest recipes that are both practical and enjoyable. " +
	"Present your answers in clear markdown formatting, with structured lists, numbered steps, emoji for dietary tags, and extra tips as described in the instructions."

// FlexInt tolerates models returning numbers as JSON strings ("30" or
// "30 minutes") in place of plain numbers.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexInt(int(num))
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		digits := str
		for i, r := range str {
			if r < '0' || r > '9' {
				digits = str[:i]
				break
			}
		}
		n, err := strconv.Atoi(strings.TrimSpace(digits))
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexInt(n)
		return nil
	}

	return fmt.Errorf("invalid number format: %s", string(data))
}

// RecipeData is the structured recipe shape requested from the model
type RecipeData struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	CookingTime  FlexInt  `json:"cooking_time"`
	Servings     FlexInt  `json:"servings"`
	Difficulty   string   `json:"difficulty"`
	Cuisine      string   `json:"cuisine"`
}

// Message represents a message in the chat. Content is either a plain
// string or a list of content parts for vision requests.
type Message struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type contentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *imageURLPart `json:"image_url,omitempty"`
}

type imageURLPart struct {
	URL string `json:"url"`
}

// Request represents a chat-completions request
type Request struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

// LLMService issues synchronous requests to an OpenAI-compatible
// chat-completions endpoint. No retries, no streaming; a failed exchange
// surfaces as an error to the caller.
type LLMService struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewLLMService creates a new LLMService instance. A missing API key does
// not fail construction; calls report ErrNotConfigured instead.
func NewLLMService(cfg *config.Config) *LLMService {
	return &LLMService{
		apiKey: cfg.OpenAIAPIKey,
		apiURL: cfg.OpenAIAPIURL,
		client: http.DefaultClient,
	}
}

// Available reports whether an API credential is configured
func (s *LLMService) Available() bool {
	return s.apiKey != ""
}

// AnalyzeRecipeImage analyzes a recipe image on local disk and extracts a
// structured recipe. Malformed model output degrades to a stub recipe
// rather than an error.
func (s *LLMService) AnalyzeRecipeImage(ctx context.Context, imagePath string) (*RecipeData, error) {
	if !s.Available() {
		return nil, ErrNotConfigured
	}

	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(imageData)

	messages := []Message{
		{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: imageAnalysisPrompt},
				{Type: "image_url", ImageURL: &imageURLPart{
					URL: "data:image/jpeg;base64," + encoded,
				}},
			},
		},
	}

	content, err := s.chatCompletion(ctx, visionModel, messages, 1000)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze recipe image: %w", err)
	}

	return ExtractRecipeJSON(content, ImageFallback(content)), nil
}

// GenerateRecipeFromIngredients generates a recipe from a list of
// ingredients. Malformed model output degrades to a stub recipe.
func (s *LLMService) GenerateRecipeFromIngredients(ctx context.Context, ingredients []string) (*RecipeData, error) {
	if !s.Available() {
		return nil, ErrNotConfigured
	}

	prompt := fmt.Sprintf(`Create a recipe using these ingredients: %s

Return the recipe in this JSON format:
{
    "title": "Recipe title",
    "description": "Brief description of the dish",
    "ingredients": ["ingredient 1", "ingredient 2", ...],
    "instructions": "Step-by-step cooking instructions",
    "cooking_time": 30,
    "servings": 4,
    "difficulty": "Easy/Medium/Hard",
    "cuisine": "Type of cuisine"
}

Make sure the recipe is practical and delicious. Include any additional ingredients that would complement the provided ingredients.`,
		strings.Join(ingredients, ", "))

	messages := []Message{
		{Role: "user", Content: prompt},
	}

	content, err := s.chatCompletion(ctx, recipeModel, messages, 1000)
	if err != nil {
		return nil, fmt.Errorf("failed to generate recipe: %w", err)
	}

	return ExtractRecipeJSON(content, GenerationFallback(content, ingredients)), nil
}

// ChefChat answers a free-form cooking prompt with markdown-formatted text
// for direct display. The response is not parsed.
func (s *LLMService) ChefChat(ctx context.Context, prompt string) (string, error) {
	if !s.Available() {
		return "", ErrNotConfigured
	}

	messages := []Message{
		{Role: "system", Content: chefSystemMessage},
		{Role: "user", Content: prompt},
	}

	content, err := s.chatCompletion(ctx, chefModel, messages, 1200)
	if err != nil {
		return "", fmt.Errorf("AI Chef request failed: %w", err)
	}

	return content, nil
}

// chatCompletion performs a single blocking request/response exchange and
// returns the first choice's message content.
func (s *LLMService) chatCompletion(ctx context.Context, model string, messages []Message, maxTokens int) (string, error) {
	reqBody := Request{
		Model:     model,
		Messages:  messages,
		MaxTokens: maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return result.Choices[0].Message.Content, nil
}
