// Package main is the entry point for the payment gateway.
// It loads configuration, opens storage, registers the acquirers and
// starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"paygate/internal/config"
	"paygate/internal/logger"
	"paygate/internal/middleware"
	"paygate/internal/repositories"
	"paygate/internal/routes"
	"paygate/internal/services/alipay"
	"paygate/internal/services/provider"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadEnv()
	logger.InitLogger(config.GetEnv("LOG_LEVEL", "info"))

	acquirerCfg, err := config.LoadAcquirer()
	if err != nil {
		log.Fatalf("Invalid acquirer configuration: %v", err)
	}

	jwtSecret := config.GetEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer repositories.Close()

	sqlDB, err := repositories.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.L.Info("Connected to database with connection pooling")

	// Periodic check of connection pool stats
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			stats := sqlDB.Stats()
			logger.L.Debug("db stats",
				"open", stats.OpenConnections,
				"idle", stats.Idle,
				"in_use", stats.InUse,
				"wait_count", stats.WaitCount,
				"wait_duration", stats.WaitDuration.String(),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	acquirer := acquirerCfg.ToModel()
	if err := repositories.NewAcquirerRepository(repositories.DB).Upsert(ctx, acquirer); err != nil {
		log.Fatalf("Failed to store acquirer: %v", err)
	}

	alipayProvider, err := alipay.NewProvider(alipay.ProviderConfig{
		Acquirer: acquirer,
		BaseURL:  config.GetEnv("BASE_URL", "http://localhost:3000"),
	})
	if err != nil {
		log.Fatalf("Failed to configure alipay: %v", err)
	}

	providers := provider.NewRegistry()
	if err := providers.Register(alipayProvider); err != nil {
		log.Fatalf("Failed to register provider: %v", err)
	}
	logger.L.Info("Providers registered", "providers", providers.Names(), "environment", acquirer.Environment)

	app := fiber.New(fiber.Config{
		AppName: "paygate",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD",
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
		Output: os.Stdout,
	}))
	app.Use(middleware.RequestLogger())

	err = routes.SetupRoutes(app, routes.Dependencies{
		DB:           repositories.DB,
		Cache:        repositories.CacheService,
		Providers:    providers,
		JWTSecret:    jwtSecret,
		CallbackRate: config.GetIntEnv("CALLBACK_RATE_LIMIT", 60),
	})
	if err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	if err := app.Listen(":" + config.GetEnv("PORT", "3000")); err != nil {
		logger.L.Error("server stopped", "error", err)
	}
}
