package main

import (
	"fmt"
	"log"
	"time"

	"coverage-api-backend/internal/config"
	"coverage-api-backend/internal/database"
	"coverage-api-backend/internal/repository"
	"coverage-api-backend/internal/service"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Standalone loader that rebuilds the coverages table and inserts the
// sample records without going through the HTTP API. Intended for local
// bootstrap: go run scripts/load_sample_data.go
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	samples := service.SampleCoverages()
	repo := repository.NewCoverageRepository(db)
	if err := repo.RecreateSchema(samples); err != nil {
		log.Fatalf("Failed to load sample data: %v", err)
	}

	log.Printf("Coverages: %d sample records loaded", len(samples))
}

// connectWithRetry waits for Postgres readiness (dockerized startup).
func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel:    logger.Silent,
		TableSchema: cfg.TableSchema,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(cfg.DatabaseURL, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
