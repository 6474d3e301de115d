package handler

import (
	"context"
	"time"

	"career-connector/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger is satisfied by database.DB and the redis cache.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db Pinger, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

// Health reports the database as required and the cache as optional; only a
// failing database makes the service unhealthy.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	data := map[string]string{"database": "ok", "cache": "ok"}
	if h.db == nil || h.db.Ping(ctx) != nil {
		data["database"] = "unavailable"
		return response.Error(c, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, data)
	}
	if h.cache == nil || h.cache.Ping(ctx) != nil {
		data["cache"] = "bypassed"
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
