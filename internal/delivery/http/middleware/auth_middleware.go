package middleware

import (
	"strings"

	"career-connector/internal/pkg/jwt"
	"career-connector/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxEmailKey = "recruiter_email"
	CtxNameKey  = "recruiter_name"
)

// AuthMiddleware admits requests carrying a valid recruiter assertion. A
// missing, expired or tampered token is treated the same as no login.
type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, response.MessageLoginRequired, nil, nil)
		}

		claims, ok := m.jwt.ValidateAssertion(token)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, response.MessageLoginRequired, nil, nil)
		}

		c.Locals(CtxEmailKey, claims.Email)
		c.Locals(CtxNameKey, claims.Name)
		return c.Next()
	}
}

func RecruiterEmail(c fiber.Ctx) string {
	email, _ := c.Locals(CtxEmailKey).(string)
	return email
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
