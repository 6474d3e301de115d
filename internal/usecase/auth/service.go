package auth

import (
	"context"
	"errors"
	"strings"

	"career-connector/internal/domain/recruiter"
	"career-connector/internal/pkg/password"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrNotFound               = errors.New("recruiter not found")
	ErrInternal               = errors.New("internal error")
)

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Company  string
}

type LoginInput struct {
	Email    string
	Password string
}

type Service struct {
	accounts recruiter.Repository
	hasher   password.Hasher
}

func NewService(accounts recruiter.Repository, hasher password.Hasher) *Service {
	return &Service{accounts: accounts, hasher: hasher}
}

// Signup creates a recruiter account. Emails are stored as entered apart from
// surrounding whitespace; lookups are case-sensitive.
func (s *Service) Signup(ctx context.Context, in SignupInput) (recruiter.Account, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	company := strings.TrimSpace(in.Company)
	if name == "" || email == "" || company == "" || in.Password == "" {
		return recruiter.Account{}, ErrInvalidInput
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, password.ErrPasswordTooLong) {
			return recruiter.Account{}, ErrInvalidInput
		}
		return recruiter.Account{}, ErrInternal
	}

	created, err := s.accounts.Create(ctx, recruiter.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Company:      company,
	})
	if err != nil {
		if errors.Is(err, recruiter.ErrDuplicateEmail) {
			return recruiter.Account{}, ErrEmailAlreadyRegistered
		}
		return recruiter.Account{}, errors.Join(ErrInternal, err)
	}
	return sanitizeAccount(created), nil
}

// Login is the verifyLogin operation: unknown email and wrong password both
// come back as ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, in LoginInput) (recruiter.Account, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return recruiter.Account{}, ErrInvalidCredentials
	}

	a, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, recruiter.ErrNotFound) {
			return recruiter.Account{}, ErrInvalidCredentials
		}
		return recruiter.Account{}, errors.Join(ErrInternal, err)
	}

	if !s.hasher.Verify(in.Password, a.PasswordHash) {
		return recruiter.Account{}, ErrInvalidCredentials
	}
	return sanitizeAccount(a), nil
}

func (s *Service) FindByEmail(ctx context.Context, email string) (recruiter.Account, error) {
	email = normalizeEmail(email)
	if email == "" {
		return recruiter.Account{}, ErrNotFound
	}
	a, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, recruiter.ErrNotFound) {
			return recruiter.Account{}, ErrNotFound
		}
		return recruiter.Account{}, errors.Join(ErrInternal, err)
	}
	return sanitizeAccount(a), nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

func sanitizeAccount(a recruiter.Account) recruiter.Account {
	a.PasswordHash = ""
	return a
}
