package main

import (
	"context"
	"os"

	"github.com/Vld439/vinovault/config"
	"github.com/Vld439/vinovault/internal/database"
	"github.com/Vld439/vinovault/internal/logger"
	"github.com/Vld439/vinovault/internal/migrate"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}
	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)

	db, err := database.Connect(cfg.DB, log)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}
	defer database.Close(db, log)

	if err := migrate.Run(context.Background(), db, log, migrate.DefaultOptions()); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	log.Info("migration completed")
}
