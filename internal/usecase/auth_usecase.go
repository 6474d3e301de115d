package usecase

import (
	"context"
	"errors"
	"time"

	"career-connector/internal/domain/recruiter"
	"career-connector/internal/pkg/jwt"
	ucauth "career-connector/internal/usecase/auth"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
)

type Session struct {
	Recruiter   recruiter.Account
	AccessToken string
	ExpiresAt   time.Time
}

type AuthUsecase interface {
	Signup(ctx context.Context, in ucauth.SignupInput) (recruiter.Account, error)
	Login(ctx context.Context, in ucauth.LoginInput) (Session, error)
	Me(ctx context.Context, email string) (recruiter.Account, error)
}

type Auth struct {
	authSvc *ucauth.Service
	jwt     jwt.Service
}

func NewAuthUsecase(authSvc *ucauth.Service, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: authSvc, jwt: jwtSvc}
}

func (u *Auth) Signup(ctx context.Context, in ucauth.SignupInput) (recruiter.Account, error) {
	return u.authSvc.Signup(ctx, in)
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (Session, error) {
	acc, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return Session{}, err
	}

	tok, exp, err := u.jwt.IssueAssertion(acc.Email, acc.Name)
	if err != nil {
		return Session{}, errors.Join(ErrInternal, err)
	}

	return Session{Recruiter: acc, AccessToken: tok, ExpiresAt: exp}, nil
}

// Me resolves the account behind a validated assertion.
func (u *Auth) Me(ctx context.Context, email string) (recruiter.Account, error) {
	if email == "" {
		return recruiter.Account{}, ErrUnauthorized
	}
	acc, err := u.authSvc.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ucauth.ErrNotFound) {
			return recruiter.Account{}, ErrUnauthorized
		}
		return recruiter.Account{}, err
	}
	return acc, nil
}
