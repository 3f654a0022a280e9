// Package routes defines the API routing configuration.
// It wires repositories, services and handlers and mounts them on the app.
package routes

import (
	"fmt"
	"time"

	"paygate/internal/handlers"
	"paygate/internal/middleware"
	"paygate/internal/models"
	"paygate/internal/repositories"
	"paygate/internal/repositories/cache"
	"paygate/internal/services/payment"
	"paygate/internal/services/provider"
	"paygate/internal/services/reconciliation"
	"paygate/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

// Dependencies are the long-lived resources the routes are built from.
type Dependencies struct {
	DB        *gorm.DB
	Cache     *cache.CacheService
	Providers *provider.Registry
	JWTSecret string
	// CallbackRate caps provider callbacks per IP and minute.
	CallbackRate int
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, deps Dependencies) error {
	sqlDB, err := deps.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	store := repositories.NewStore(deps.DB)
	reconciler := reconciliation.NewService(
		store,
		deps.Providers,
		repositories.NewNotificationLogRepository(deps.DB),
		deps.Cache,
	)
	paymentService := payment.NewService(store.Transactions(), deps.Providers, deps.Cache)

	notificationHandler := handlers.NewNotificationHandler(reconciler, deps.Providers)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	healthHandler := handlers.NewHealthHandler(sqlDB, deps.Cache)
	auth := middleware.NewAuthMiddleware(deps.JWTSecret)

	app.Get("/health", healthHandler.HealthCheck)

	// Provider callbacks, unauthenticated
	callbacks := app.Group("/payment", limiter.New(limiter.Config{
		Max:        deps.CallbackRate,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return response.Error(c, fiber.StatusTooManyRequests, "Too many requests. Please try again later.")
		},
	}))
	callbacks.Post("/:provider/ipn", notificationHandler.HandleIPN)
	callbacks.Get("/:provider/dpn", notificationHandler.HandleDPN)
	callbacks.Post("/:provider/dpn", notificationHandler.HandleDPN)
	callbacks.Get("/:provider/cancel", notificationHandler.HandleCancel)

	api := app.Group("/api", auth.Handler)
	api.Post("/payments/:provider/form",
		middleware.HasPermission(models.PermissionPaymentWrite),
		paymentHandler.PrepareRedirect,
	)
	api.Get("/transactions/:reference",
		middleware.HasPermission(models.PermissionTransactionRead),
		paymentHandler.GetTransactionStatus,
	)

	return nil
}
