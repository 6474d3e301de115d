package v1

import (
	"github.com/gofiber/fiber/v3"
)

// RegisterRecruiters mounts signup/login publicly and everything else behind
// the recruiter assertion.
func RegisterRecruiters(r fiber.Router, h Handlers) {
	if r == nil || h.Auth == nil {
		return
	}

	h.Auth.RegisterRoutes(r)
	if h.RequireAuth == nil {
		return
	}

	r.Get("/me", h.RequireAuth, h.Auth.Me)
	if h.Jobs != nil {
		r.Post("/jobs", h.RequireAuth, h.Jobs.PostJob)
		r.Get("/jobs", h.RequireAuth, h.Jobs.MyJobs)
	}
}
