package routes

import (
	"career-connector/internal/delivery/http/handler"
	v1 "career-connector/internal/delivery/http/routes/v1"
	"career-connector/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	feed   *ws.Handler
	v1     v1.Handlers
}

func NewRegistry(health *handler.HealthHandler, feed *ws.Handler, v1Handlers v1.Handlers) *Registry {
	return &Registry{health: health, feed: feed, v1: v1Handlers}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerFeed(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.v1)
}

func (r *Registry) registerFeed(app *fiber.App) {
	if r.feed != nil {
		app.Get("/ws/jobs", r.feed.JobFeed)
	}
}
