package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/aqardot/aqardot-api/internal/config"
	"github.com/aqardot/aqardot-api/internal/connect"
	"github.com/aqardot/aqardot-api/internal/models"
	"github.com/joho/godotenv"
)

// Seeds the locations collection with the governorate tree. Idempotent:
// every governorate is upserted by slug, so re-running refreshes names and
// city lists without duplicating documents.
func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	client, err := connect.MongoDBConnect(cfg)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := connect.MongoDBDisconnect(client); err != nil {
			logger.Error("Error disconnecting from MongoDB", "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	repo := models.MongodbNewRepo(client, cfg.MongoDBName)
	for _, gov := range governorates {
		if err := repo.UpsertGovernorate(ctx, gov); err != nil {
			logger.Error("Upsert failed", "governorate", gov.Slug, "error", err)
			os.Exit(1)
		}
		logger.Info("Upserted governorate", "slug", gov.Slug)
	}

	logger.Info("Seeding done", "governorates", len(governorates))
}
