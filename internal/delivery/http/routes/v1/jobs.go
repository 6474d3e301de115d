package v1

import (
	"github.com/gofiber/fiber/v3"
)

func RegisterJobs(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}
	if h.Jobs != nil {
		r.Get("/jobs", h.Jobs.ListJobs)
	}
	if h.Recommendation != nil {
		h.Recommendation.RegisterRoutes(r)
	}
}
