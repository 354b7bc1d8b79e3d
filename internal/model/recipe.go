package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// JSONStringArray is a custom type that stores an ordered list of strings
// as a JSON-encoded text column. Works on both SQLite and PostgreSQL.
type JSONStringArray []string

// Value implements the driver.Valuer interface
func (a JSONStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	if len(bytes) == 0 {
		*a = JSONStringArray{}
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is the core persisted entity representing a dish
type Recipe struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Title        string          `gorm:"size:255;not null" json:"title"`
	Description  string          `gorm:"type:text" json:"description"`
	Ingredients  JSONStringArray `gorm:"type:text;not null" json:"ingredients"`
	Instructions string          `gorm:"type:text;not null" json:"instructions"`
	CookingTime  *int            `json:"cooking_time"` // in minutes
	Servings     *int            `json:"servings"`
	Difficulty   string          `gorm:"size:50" json:"difficulty"`
	Cuisine      string          `gorm:"size:100" json:"cuisine"`
	ImageURL     string          `gorm:"size:500" json:"image_url"`
	IsPublic     bool            `json:"is_public"`
	UserID       string          `gorm:"size:100" json:"user_id,omitempty"` // For future user system
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
