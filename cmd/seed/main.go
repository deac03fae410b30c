// Seed creates the bootstrap admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Safe to rerun; an existing account is left alone.
package main

import (
	"context"
	"os"
	"strings"

	"github.com/Vld439/vinovault/config"
	"github.com/Vld439/vinovault/internal/database"
	"github.com/Vld439/vinovault/internal/hashing"
	"github.com/Vld439/vinovault/internal/logger"
	"github.com/Vld439/vinovault/internal/models"
	"github.com/Vld439/vinovault/internal/repository"

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

	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	db, err := database.Connect(cfg.DB, log)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}
	defer database.Close(db, log)

	repos := repository.New(db)
	ctx := context.Background()

	exists, err := repos.Users.ExistsByEmail(ctx, email)
	if err != nil {
		log.Fatal("lookup failed", zap.Error(err))
	}
	if exists {
		log.Info("admin account already exists", zap.String("email", email))
		return
	}

	hash, err := hashing.NewBcrypt(0).Hash(password)
	if err != nil {
		log.Fatal("hash failed", zap.Error(err))
	}

	u := &models.User{
		Email:        email,
		PasswordHash: hash,
		DisplayName:  "Administrator",
		Role:         models.RoleAdmin,
	}
	if err := repos.Users.Create(ctx, u); err != nil {
		log.Fatal("create failed", zap.Error(err))
	}

	log.Info("admin account created", zap.String("email", email))
}
