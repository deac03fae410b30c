package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vld439/vinovault/config"
	"github.com/Vld439/vinovault/internal/database"
	"github.com/Vld439/vinovault/internal/hashing"
	"github.com/Vld439/vinovault/internal/logger"
	"github.com/Vld439/vinovault/internal/migrate"
	"github.com/Vld439/vinovault/internal/rates"
	"github.com/Vld439/vinovault/internal/repository"
	"github.com/Vld439/vinovault/internal/service"
	"github.com/Vld439/vinovault/internal/token"
	transport "github.com/Vld439/vinovault/internal/transport/http"

	"github.com/gin-gonic/gin"
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

	if !isDev {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DB, log)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}
	defer database.Close(db, log)

	if err := migrate.Run(context.Background(), db, log, migrate.DefaultOptions()); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	repos := repository.New(db)

	var rateStore rates.Store
	if cfg.Redis.Enabled {
		rateStore, err = rates.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
		if err != nil {
			log.Fatal("failed to create redis client", zap.Error(err))
		}
		log.Info("Redis rate cache enabled")
	} else {
		rateStore = rates.NewMemoryStore()
		log.Info("Redis disabled, using in-process rate cache")
	}
	rateSvc := rates.NewService(rates.NewHTTPProvider(cfg.Rates.URL), rateStore, cfg.Rates.TTL, log)

	hasher := hashing.NewBcrypt(0)
	tokens := token.NewHSProvider(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience)

	authSvc := service.NewAuthService(repos.Users, hasher, tokens, cfg.JWT.AccessExp, log)
	catalogSvc := service.NewCatalogService(repos)
	clientSvc := service.NewClientService(repos)
	inventorySvc := service.NewInventoryService(repos, cfg.Stock.AllowNegative)
	saleSvc := service.NewSaleService(repos, hasher)
	reportSvc := service.NewReportService(repos, rateSvc)

	r := transport.Router(transport.Deps{
		Auth:      authSvc,
		Catalog:   catalogSvc,
		Clients:   clientSvc,
		Inventory: inventorySvc,
		Sales:     saleSvc,
		Reports:   reportSvc,
		Rates:     rateSvc,
		Tokens:    tokens,
		Log:       log,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("Shutting down HTTP server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
	log.Info("HTTP server stopped gracefully")
}
