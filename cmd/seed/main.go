package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"marketplace/internal/config"
	"marketplace/internal/db"
	"marketplace/internal/model"
	"marketplace/internal/repository"
	"marketplace/internal/service"
)

func main() {
	catalogPath := flag.String("file", "catalog.json", "path to a catalog JSON file")
	flag.Parse()

	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}, &model.Seller{}, &model.Product{}, &model.Order{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	// Read catalog entries
	entries, err := readCatalog(*catalogPath)
	if err != nil {
		log.Fatalf("Failed to read catalog: %v", err)
	}
	log.Printf("Read %d sellers from %s", len(entries), *catalogPath)

	userRepo := repository.NewUserRepository(gormDB)
	sellerRepo := repository.NewSellerRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	bootstrap := service.NewBootstrapService(userRepo, sellerRepo, productRepo, cfg.AdminEmail, cfg.AdminPassword)

	ctx := context.Background()

	// Ensure the admin account exists before importing
	if err := bootstrap.EnsureDefaults(ctx); err != nil {
		log.Fatalf("Failed to ensure defaults: %v", err)
	}

	log.Println("Importing catalog into database...")
	created, updated, err := bootstrap.ImportCatalog(ctx, entries)
	if err != nil {
		log.Fatalf("Failed to import catalog: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New records created: %d", created)
	log.Printf("  - Existing records updated: %d", updated)
}

// readCatalog parses the catalog JSON file.
func readCatalog(path string) ([]service.CatalogSeller, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []service.CatalogSeller
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
