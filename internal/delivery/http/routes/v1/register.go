package v1

import (
	"career-connector/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth           *handler.RecruiterAuthHandler
	Jobs           *handler.JobHandler
	Recommendation *handler.RecommendationHandler
	RequireAuth    fiber.Handler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	RegisterRecruiters(r.Group("/recruiters"), h)
	RegisterJobs(r, h)
}
