package handlers

import (
	"github.com/gofiber/fiber/v2"

	"paydash/internal/repositories/cache"
)

type HealthHandler struct {
	cache *cache.SnapshotCache
}

func NewHealthHandler(c *cache.SnapshotCache) *HealthHandler {
	return &HealthHandler{cache: c}
}

// HealthCheck reports liveness and the state of the snapshot cache.
// A dead Redis degrades caching but does not fail the service, so the
// endpoint stays 200 either way.
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	redisStatus := "disabled"
	if h.cache != nil {
		redisStatus = "connected"
		if err := h.cache.HealthCheck(c.Context()); err != nil {
			redisStatus = "unavailable"
		}
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
		"services": fiber.Map{
			"redis": redisStatus,
		},
	})
}
