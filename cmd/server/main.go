// Package main is the entry point for the application.
// It initializes the upstream client and snapshot cache, sets up the
// HTTP server, and starts the application.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"paydash/internal/client"
	"paydash/internal/config"
	"paydash/internal/repositories/cache"
	"paydash/internal/routes"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Upstream reporting API client
	upstream := client.New(
		config.GetEnv("UPSTREAM_BASE_URL", "https://recruit.paysbypays.com/api/v1"),
		config.GetDurationEnv("UPSTREAM_TIMEOUT", 10*time.Second),
	)

	// Redis snapshot cache. Redis being down only disables caching;
	// the service still answers from live fetches.
	var snapshotCache *cache.SnapshotCache
	redisClient := cache.NewRedisClient(&cache.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	})
	snapshotCache = cache.NewSnapshotCache(
		redisClient,
		config.GetDurationEnv("SNAPSHOT_TTL", time.Minute),
	)
	if err := snapshotCache.HealthCheck(context.Background()); err != nil {
		log.Printf("snapshot cache unavailable, continuing without it: %v", err)
		snapshotCache = nil
		_ = redisClient.Close()
	} else {
		log.Println("connected to redis snapshot cache")
	}

	defer func() {
		if snapshotCache != nil {
			if err := snapshotCache.Close(); err != nil {
				log.Printf("failed to close redis connection: %v", err)
			}
		}
	}()

	// Create Fiber app
	app := fiber.New()

	app.Use(recover.New())

	// CORS middleware for the back-office frontend
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "http://localhost:3000"),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,HEAD",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Routes
	routes.SetupRoutes(app, upstream, snapshotCache)

	// Shut down cleanly on SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	// Start server
	if err := app.Listen(":" + config.GetEnv("PORT", "8080")); err != nil {
		log.Fatalf("server error: %v", err)
	}
	log.Println("server stopped")
}
