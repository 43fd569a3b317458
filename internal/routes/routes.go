// Package routes defines the API routing configuration.
// It wires the upstream client, snapshot repository and services
// together and registers all HTTP routes.
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"paydash/internal/client"
	"paydash/internal/handlers"
	"paydash/internal/observability/metrics"
	"paydash/internal/repositories"
	"paydash/internal/repositories/cache"
	"paydash/internal/services/dashboard"
	"paydash/internal/services/merchant"
	"paydash/internal/services/payment"
)

// SetupRoutes configures all application routes. The snapshot cache
// may be nil when Redis is not configured; every request then goes
// straight upstream.
func SetupRoutes(app *fiber.App, upstream *client.Client, snapshotCache *cache.SnapshotCache) {
	snapshots := repositories.NewSnapshotRepository(upstream, snapshotCache)

	dashboardService := dashboard.NewService(snapshots)
	paymentService := payment.NewService(snapshots, upstream)
	merchantService := merchant.NewService(snapshots, upstream)

	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	merchantHandler := handlers.NewMerchantHandler(merchantService)
	healthHandler := handlers.NewHealthHandler(snapshotCache)

	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Paydash API",
			"version": "1.0.0",
			"docs":    "/api/v1",
		})
	})

	api := app.Group("/api/v1")

	api.Get("/dashboard", dashboardHandler.GetDashboard)
	api.Get("/dashboard/trend", dashboardHandler.GetTrendPeriod)

	api.Get("/payments", paymentHandler.ListPayments)
	api.Get("/payments/recent", paymentHandler.GetRecentPayments)
	api.Get("/payments/export", paymentHandler.ExportPayments)
	api.Get("/payments/codes", paymentHandler.GetPaymentCodes)
	api.Get("/payments/:code", paymentHandler.GetPayment)

	api.Get("/merchants", merchantHandler.ListMerchants)
	api.Get("/merchants/:code", merchantHandler.GetMerchant)
}
