package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/joho/godotenv"

	"cmsselect/internal/app"
	"cmsselect/internal/config"
	"cmsselect/internal/repository/cms"
	"cmsselect/internal/repository/schema"
	"cmsselect/internal/seed"
)

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Drop all CMS tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't insert demo rows")
	clearData := flag.Bool("clear-data", false, "Delete all rows from the CMS tables (keep schema)")
	clientID := flag.Int("client", 1, "Client id the demo rows belong to")
	languageID := flag.Int("lang", 1, "Language id the demo rows belong to")
	uploadDir := flag.String("upload-dir", "", "Also write the demo upload files below this directory")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && (*dropTables || *clearData) {
		log.Fatalf("BLOCKED: cannot run destructive operations (--drop-tables or --clear-data) in production environment")
	}

	logger := config.NewLogger(os.Stdout, false)

	switch {
	case *clearData:
		log.Printf("Clearing data only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	case *schemaOnly:
		log.Printf("Setting up schema only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	default:
		log.Printf("Seeding database (environment: %s, driver: %s, prefix: %s)", cfg.Environment, cfg.DatabaseDriver, cfg.TablePrefix)
	}

	ctx := context.Background()
	store, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	tables := cms.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		log.Println("Dropping all tables...")
		if err := schema.Drop(ctx, store, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("Tables dropped")
	}

	log.Println("Ensuring database schema is up to date...")
	if err := schema.Create(ctx, store, tables); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("Schema ready")

	if *schemaOnly {
		return
	}

	// Rows are inserted with fixed ids, so always start from empty tables.
	log.Println("Clearing existing rows...")
	if err := schema.Clear(ctx, store, tables); err != nil {
		log.Fatalf("Failed to clear data: %v", err)
	}
	if *clearData {
		log.Println("Data cleared successfully")
		return
	}

	if err := seed.NewSeeder(store, tables, *clientID, *languageID, logger).SeedAll(ctx); err != nil {
		log.Fatalf("Failed to seed demo rows: %v", err)
	}
	log.Printf("Seeded demo rows for client %d, language %d", *clientID, *languageID)

	if *uploadDir != "" {
		if err := seed.WriteUploadFiles(osfs.New(*uploadDir), "/"); err != nil {
			log.Fatalf("Failed to write upload files: %v", err)
		}
		log.Printf("Wrote %d demo files below %s", len(seed.UploadFiles), *uploadDir)
	}

	log.Println("Seeding complete!")
}
