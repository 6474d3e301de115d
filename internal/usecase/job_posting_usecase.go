package usecase

import (
	"context"

	"career-connector/internal/domain/job"
	"career-connector/internal/usecase/posting"
)

// JobPostingUsecase is implemented by *posting.Service.
type JobPostingUsecase interface {
	Post(ctx context.Context, recruiterEmail string, in posting.PostInput) (job.Posting, error)
	ListAll(ctx context.Context) ([]job.Posting, error)
	ListByRecruiter(ctx context.Context, recruiterEmail string) ([]job.Posting, error)
}

var _ JobPostingUsecase = (*posting.Service)(nil)
