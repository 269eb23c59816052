package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/ats-tracker/internal/config"
	"github.com/jonathan/ats-tracker/internal/db"
	"github.com/jonathan/ats-tracker/internal/normalize"
)

// openDB connects using the DATABASE_URL environment variable.
func openDB(ctx context.Context) (*db.DB, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return database, nil
}

// loadScoring returns the scoring config from path, or the built-in
// defaults when path is empty.
func loadScoring(path string) (*config.Scoring, error) {
	if path == "" {
		return config.DefaultScoring(), nil
	}
	return config.LoadScoring(path)
}

// loadNormalization returns the synonym map from path, or an empty map
// when path is empty.
func loadNormalization(path string) (*normalize.Map, error) {
	if path == "" {
		return normalize.NewMap(), nil
	}
	return normalize.Load(path)
}
