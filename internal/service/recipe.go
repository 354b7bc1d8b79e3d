package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Nirvaan05/Ez-Cooking/internal/model"
)

// ErrMissingFields is returned when a recipe is created without its
// required fields (title, ingredients, instructions).
var ErrMissingFields = errors.New("missing required fields")

// RecipeService handles recipe persistence
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListPublic returns all recipes whose visibility flag is public
func (s *RecipeService) ListPublic(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	if err := s.db.WithContext(ctx).Where("is_public = ?", true).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Get retrieves a recipe by ID
func (s *RecipeService) Get(ctx context.Context, id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Create validates and persists a new recipe, assigning its id and
// timestamps. Returns ErrMissingFields if a required field is absent.
func (s *RecipeService) Create(ctx context.Context, recipe *model.Recipe) error {
	if recipe.Title == "" || len(recipe.Ingredients) == 0 || recipe.Instructions == "" {
		return ErrMissingFields
	}
	return s.db.WithContext(ctx).Create(recipe).Error
}

// Update applies only the supplied columns to an existing recipe and
// refreshes its updated timestamp. Fails with gorm.ErrRecordNotFound if
// the id is absent.
func (s *RecipeService) Update(ctx context.Context, id uint, fields map[string]interface{}) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := s.db.WithContext(ctx).Model(&recipe).Updates(fields).Error; err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, id)
}

// Delete removes a recipe. Fails with gorm.ErrRecordNotFound if the id is
// absent.
func (s *RecipeService) Delete(ctx context.Context, id uint) error {
	// First check if the recipe exists
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(&model.Recipe{}, "id = ?", id).Error
}
