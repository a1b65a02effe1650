package main

import (
	"context"
	"log"

	"github.com/gatewarden/auth-service/config"
	"github.com/gatewarden/auth-service/db"
	"github.com/gatewarden/auth-service/internal/auth/handler"
	repo "github.com/gatewarden/auth-service/internal/auth/repository/postgres"
	"github.com/gatewarden/auth-service/internal/auth/service"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()

	ctx := context.Background()
	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer dbPool.Close()

	userRepo := repo.NewPostgresRepository(dbPool)
	apiKeyRepo := repo.NewAPIKeyRepository(dbPool)
	blockedIPRepo := repo.NewBlockedIPRepository(dbPool)

	// The token blacklist lives for exactly as long as the process; it is
	// reachable only through the user service.
	blacklist := service.NewTokenBlacklist()

	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	guard := service.NewBruteForceService(userRepo, cfg.BruteForceMaxAttempts, cfg.BruteForceLockoutSec)
	userService := service.NewUserService(userRepo, tokenService, guard, blacklist, cfg)
	apiKeyService := service.NewAPIKeyService(apiKeyRepo, userRepo, cfg.APIKeyMarker, cfg.BcryptCost)
	ipService := service.NewIPBlacklistService(blockedIPRepo)

	app := fiber.New()
	handler.RegisterRoutes(app, handler.Handlers{
		Auth:        handler.NewAuthHandler(userService),
		APIKey:      handler.NewAPIKeyHandler(apiKeyService),
		IPBlacklist: handler.NewIPBlacklistHandler(ipService),
	}, handler.MiddlewareConfig{
		IPGate:             handler.IPGate(ipService),
		RequireAuth:        handler.RequireAuth(userService, apiKeyService, cfg.APIKeyMarker),
		LoginRateLimit:     cfg.LoginRateLimit,
		LoginRateWindowSec: cfg.LoginRateWindowSec,
	})

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
