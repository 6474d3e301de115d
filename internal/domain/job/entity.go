package job

import (
	"context"
	"time"
)

// Posting is a recruiter-submitted job. RecruiterEmail is a soft reference to
// recruiter.Account.Email; postings are kept even if the account disappears.
type Posting struct {
	ID             int64
	Title          string
	Description    string
	Skills         string
	Salary         string
	Location       string
	Eligibility    string
	RecruiterEmail string
	CreatedAt      time.Time
}

type Repository interface {
	Create(ctx context.Context, p Posting) (Posting, error)
	ListAll(ctx context.Context) ([]Posting, error)
	ListByRecruiter(ctx context.Context, email string) ([]Posting, error)
}
