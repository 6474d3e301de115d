package dto

import (
	"time"

	"career-connector/internal/domain/job"
)

type JobResponse struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Skills         string    `json:"skills"`
	Salary         string    `json:"salary"`
	Location       string    `json:"location"`
	Eligibility    string    `json:"eligibility"`
	RecruiterEmail string    `json:"recruiter_email"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewJobResponse(p job.Posting) JobResponse {
	return JobResponse{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Skills:         p.Skills,
		Salary:         p.Salary,
		Location:       p.Location,
		Eligibility:    p.Eligibility,
		RecruiterEmail: p.RecruiterEmail,
		CreatedAt:      p.CreatedAt,
	}
}

func NewJobListResponse(items []job.Posting) []JobResponse {
	out := make([]JobResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewJobResponse(p))
	}
	return out
}
