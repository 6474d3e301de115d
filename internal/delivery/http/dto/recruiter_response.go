package dto

import (
	"time"

	"career-connector/internal/domain/recruiter"
)

type RecruiterResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	Recruiter   RecruiterResponse `json:"recruiter"`
	AccessToken string            `json:"access_token"`
	ExpiresAt   time.Time         `json:"expires_at"`
}

func NewRecruiterResponse(a recruiter.Account) RecruiterResponse {
	return RecruiterResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Company:   a.Company,
		CreatedAt: a.CreatedAt,
	}
}
