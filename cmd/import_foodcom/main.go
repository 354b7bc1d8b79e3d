// Command import_foodcom bulk-loads the Food.com RAW_recipes.csv dataset
// into the recipes table. It connects directly to the database and clears
// existing recipes before importing; run it offline, not alongside writes.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"

	_ "github.com/lib/pq"

	"github.com/Nirvaan05/Ez-Cooking/internal/importer"
)

func main() {
	var (
		file      = flag.String("file", "RAW_recipes.csv", "path to the Food.com RAW_recipes.csv file")
		batchSize = flag.Int("batch-size", 1000, "rows committed per transaction")
		maxRows   = flag.Int("max-rows", 10000, "ceiling on imported rows")
	)
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not found")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to PostgreSQL database")

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("Failed to open dataset: %v", err)
	}
	defer f.Close()

	imp := importer.New(importer.NewDBSink(db))
	imp.BatchSize = *batchSize
	imp.MaxRows = *maxRows

	log.Printf("Processing up to %d recipes from %s...", imp.MaxRows, *file)
	total, err := imp.Run(context.Background(), f)
	if err != nil {
		log.Fatalf("Import failed after %d recipes: %v", total, err)
	}

	log.Printf("Migration completed! Inserted %d recipes from Food.com dataset", total)
}
