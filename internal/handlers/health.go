package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const healthTimeout = 2 * time.Second

type Pinger interface {
	PingContext(ctx context.Context) error
}

type CacheChecker interface {
	HealthCheck(ctx context.Context) error
	GetStats(ctx context.Context) *redis.PoolStats
}

type HealthHandler struct {
	db    Pinger
	cache CacheChecker
}

func NewHealthHandler(db Pinger, cache CacheChecker) *HealthHandler {
	if db == nil {
		panic("db is required")
	}
	if cache == nil {
		panic("cache is required")
	}
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	status, code := "ok", fiber.StatusOK
	database, redisStatus := "connected", "connected"
	if err := h.db.PingContext(ctx); err != nil {
		database = err.Error()
		status, code = "degraded", fiber.StatusServiceUnavailable
	}
	if err := h.cache.HealthCheck(ctx); err != nil {
		redisStatus = err.Error()
		status, code = "degraded", fiber.StatusServiceUnavailable
	}

	body := fiber.Map{
		"status":  status,
		"version": "1.0.0",
		"services": fiber.Map{
			"database": database,
			"redis":    redisStatus,
		},
	}
	if poolStats := h.cache.GetStats(ctx); poolStats != nil {
		body["pool_stats"] = fiber.Map{
			"hits":        poolStats.Hits,
			"misses":      poolStats.Misses,
			"timeouts":    poolStats.Timeouts,
			"total_conns": poolStats.TotalConns,
			"idle_conns":  poolStats.IdleConns,
			"stale_conns": poolStats.StaleConns,
		}
	}

	return c.Status(code).JSON(body)
}
