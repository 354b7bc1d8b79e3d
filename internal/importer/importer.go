package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/Nirvaan05/Ez-Cooking/internal/model"
)

// errSkipRow marks a row that should be dropped without aborting the run
var errSkipRow = errors.New("row skipped")

// RecipeSink is the destination for imported recipes. The production sink
// writes directly to the recipes table over database/sql, bypassing the
// API layer; tests substitute an in-memory recorder.
type RecipeSink interface {
	Clear(ctx context.Context) error
	Insert(ctx context.Context, recipes []model.Recipe) error
}

// Importer bulk-loads the Food.com RAW_recipes.csv dataset into the
// recipe store. Row-level failures are logged and skipped, never abort
// the run.
type Importer struct {
	sink RecipeSink

	// BatchSize rows are committed together; MaxRows caps the total
	// imported for run-time bounding.
	BatchSize int
	MaxRows   int
}

// New creates an Importer with the default batch size and row ceiling
func New(sink RecipeSink) *Importer {
	return &Importer{
		sink:      sink,
		BatchSize: 1000,
		MaxRows:   10000,
	}
}

// Run clears the destination table and imports rows from the CSV until
// the source is exhausted or the ceiling is reached. Returns the number
// of recipes inserted.
func (imp *Importer) Run(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"name", "minutes", "description", "ingredients", "steps", "tags", "n_steps"} {
		if _, ok := cols[required]; !ok {
			return 0, fmt.Errorf("CSV is missing required column %q", required)
		}
	}

	log.Printf("Clearing existing recipes...")
	if err := imp.sink.Clear(ctx); err != nil {
		return 0, fmt.Errorf("failed to clear recipes: %w", err)
	}

	total := 0
	rowNum := 1
	batch := make([]model.Recipe, 0, imp.BatchSize)

	for total+len(batch) < imp.MaxRows {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			log.Printf("Error reading row %d: %v", rowNum, err)
			continue
		}

		recipe, err := reshapeRow(record, cols)
		if err != nil {
			if !errors.Is(err, errSkipRow) {
				log.Printf("Error processing row %d: %v", rowNum, err)
			}
			continue
		}

		batch = append(batch, *recipe)
		if len(batch) >= imp.BatchSize {
			if err := imp.sink.Insert(ctx, batch); err != nil {
				return total, fmt.Errorf("failed to insert batch: %w", err)
			}
			total += len(batch)
			batch = batch[:0]
			log.Printf("Inserted %d recipes so far...", total)
		}
	}

	if len(batch) > 0 {
		if err := imp.sink.Insert(ctx, batch); err != nil {
			return total, fmt.Errorf("failed to insert batch: %w", err)
		}
		total += len(batch)
	}

	log.Printf("Import completed: inserted %d recipes", total)
	return total, nil
}

// reshapeRow converts one dataset row into the recipe schema. Rows whose
// list fields fail to parse, or that end up with no ingredients or steps,
// are skipped.
func reshapeRow(record []string, cols map[string]int) (*model.Recipe, error) {
	field := func(name string) string {
		if i := cols[name]; i < len(record) {
			return record[i]
		}
		return ""
	}

	ingredients, err := ParseListLiteral(field("ingredients"))
	if err != nil {
		return nil, fmt.Errorf("bad ingredients: %w", err)
	}
	steps, err := ParseListLiteral(field("steps"))
	if err != nil {
		return nil, fmt.Errorf("bad steps: %w", err)
	}
	if _, err := ParseListLiteral(field("tags")); err != nil {
		return nil, fmt.Errorf("bad tags: %w", err)
	}

	ingredients = trimNonEmpty(ingredients)
	steps = trimNonEmpty(steps)
	if len(ingredients) == 0 || len(steps) == 0 {
		return nil, errSkipRow
	}

	title := strings.TrimSpace(field("name"))
	if title == "" {
		return nil, errSkipRow
	}
	if len(title) > 255 {
		title = title[:255]
	}

	description := strings.TrimSpace(field("description"))
	if description == "" {
		description = fmt.Sprintf("A delicious %s recipe", strings.ToLower(title))
	}

	minutes, _ := strconv.Atoi(strings.TrimSpace(field("minutes")))
	cookingTime := 30
	if minutes > 0 {
		cookingTime = minutes
	}
	servings := 4

	nSteps, err := strconv.Atoi(strings.TrimSpace(field("n_steps")))
	if err != nil {
		nSteps = len(steps)
	}

	return &model.Recipe{
		Title:        title,
		Description:  description,
		Ingredients:  model.JSONStringArray(ingredients),
		Instructions: numberSteps(steps),
		CookingTime:  &cookingTime,
		Servings:     &servings,
		Difficulty:   EstimateDifficulty(nSteps, minutes),
		IsPublic:     true,
	}, nil
}

// EstimateDifficulty derives a difficulty tag from step count and duration
func EstimateDifficulty(nSteps, minutes int) string {
	switch {
	case nSteps <= 5 && minutes <= 30:
		return "Easy"
	case nSteps <= 10 && minutes <= 60:
		return "Medium"
	default:
		return "Hard"
	}
}

func numberSteps(steps []string) string {
	var b strings.Builder
	for i, step := range steps {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, step)
	}
	return b.String()
}

func trimNonEmpty(items []string) []string {
	out := items[:0]
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
