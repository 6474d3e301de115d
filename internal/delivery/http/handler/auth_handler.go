package handler

import (
	"errors"

	"career-connector/internal/delivery/http/dto"
	"career-connector/internal/delivery/http/middleware"
	"career-connector/internal/pkg/response"
	"career-connector/internal/usecase"
	ucauth "career-connector/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type RecruiterAuthHandler struct {
	uc usecase.AuthUsecase
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Company  string `json:"company"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewRecruiterAuthHandler(uc usecase.AuthUsecase) *RecruiterAuthHandler {
	return &RecruiterAuthHandler{uc: uc}
}

// RegisterRoutes mounts the public endpoints. Me is mounted separately behind
// the auth middleware.
func (h *RecruiterAuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
}

func (h *RecruiterAuthHandler) Signup(c fiber.Ctx) error {
	var req signupRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageFillAllFields, nil, err)
	}

	acc, err := h.uc.Signup(c.Context(), ucauth.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Company:  req.Company,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageRecruiterCreated, dto.NewRecruiterResponse(acc))
}

func (h *RecruiterAuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageFillAllFields, nil, err)
	}

	sess, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	data := dto.LoginResponse{
		Recruiter:   dto.NewRecruiterResponse(sess.Recruiter),
		AccessToken: sess.AccessToken,
		ExpiresAt:   sess.ExpiresAt,
	}
	return response.Success(c, fiber.StatusOK, response.MessageLoginSucceeded, data)
}

func (h *RecruiterAuthHandler) Me(c fiber.Ctx) error {
	acc, err := h.uc.Me(c.Context(), middleware.RecruiterEmail(c))
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRecruiterResponse(acc))
}

func mapAuthUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, response.MessageEmailExists, nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageBadCredentials, nil, err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageFillAllFields, nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageLoginRequired, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
