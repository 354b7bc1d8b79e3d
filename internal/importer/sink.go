package importer

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Nirvaan05/Ez-Cooking/internal/model"
)

// DBSink writes recipes straight to the recipes table over database/sql.
// Each Insert runs in its own transaction, so the importer commits once
// per batch.
type DBSink struct {
	db *sql.DB
}

// NewDBSink creates a sink over an open database connection
func NewDBSink(db *sql.DB) *DBSink {
	return &DBSink{db: db}
}

// Clear removes all existing recipes
func (s *DBSink) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM recipes")
	return err
}

// Insert writes one batch of recipes in a single transaction
func (s *DBSink) Insert(ctx context.Context, recipes []model.Recipe) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO recipes (title, description, ingredients, instructions,
			cooking_time, servings, difficulty, cuisine, image_url,
			is_public, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for i := range recipes {
		r := &recipes[i]
		ingredients, err := r.Ingredients.Value()
		if err != nil {
			return fmt.Errorf("failed to encode ingredients: %w", err)
		}
		if _, err := stmt.ExecContext(ctx,
			r.Title, r.Description, ingredients, r.Instructions,
			r.CookingTime, r.Servings, r.Difficulty, r.Cuisine, r.ImageURL,
			r.IsPublic, r.UserID, now, now,
		); err != nil {
			return fmt.Errorf("failed to insert %q: %w", r.Title, err)
		}
	}

	return tx.Commit()
}
