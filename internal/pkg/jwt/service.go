package jwt

import (
	"errors"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const DefaultExpiresIn = 6 * time.Hour

var ErrSigningKeyMissing = errors.New("signing key missing")

// Claims is the identity asserted for a logged-in recruiter.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`

	jwtlib.RegisteredClaims
}

type Service interface {
	IssueAssertion(email, name string) (string, time.Time, error)
	// ValidateAssertion reports ok=false for expired, tampered and malformed
	// tokens alike; callers treat all of them as "not logged in".
	ValidateAssertion(token string) (Claims, bool)
}

type HMACService struct {
	secret    []byte
	expiresIn time.Duration

	now func() time.Time
}

func NewHMACService(secret string, expiresIn time.Duration) *HMACService {
	if expiresIn <= 0 {
		expiresIn = DefaultExpiresIn
	}
	return &HMACService{
		secret:    []byte(secret),
		expiresIn: expiresIn,
		now:       time.Now,
	}
}

func (s *HMACService) IssueAssertion(email, name string) (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, ErrSigningKeyMissing
	}

	now := s.now().UTC()
	exp := now.Add(s.expiresIn)

	c := Claims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(exp),
		},
	}

	tok, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tok, exp, nil
}

func (s *HMACService) ValidateAssertion(token string) (Claims, bool) {
	token = strings.TrimSpace(token)
	if token == "" || len(s.secret) == 0 {
		return Claims{}, false
	}

	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(s.now),
	)

	var c Claims
	tok, err := p.ParseWithClaims(token, &c, func(*jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || tok == nil || !tok.Valid {
		return Claims{}, false
	}
	if strings.TrimSpace(c.Email) == "" {
		return Claims{}, false
	}
	return c, true
}
