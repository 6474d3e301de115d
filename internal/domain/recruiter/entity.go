package recruiter

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("recruiter not found")
	ErrDuplicateEmail = errors.New("recruiter email already exists")
)

type Account struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Company      string
	CreatedAt    time.Time
}

// Repository persists recruiter accounts. Create must report a taken email as
// ErrDuplicateEmail from the storage constraint itself, not from a prior lookup.
type Repository interface {
	Create(ctx context.Context, a Account) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
}
