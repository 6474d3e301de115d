package handler

import (
	"errors"

	"career-connector/internal/delivery/http/dto"
	"career-connector/internal/delivery/http/middleware"
	"career-connector/internal/pkg/response"
	"career-connector/internal/usecase"
	"career-connector/internal/usecase/posting"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.JobPostingUsecase
}

type postJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Skills      string `json:"skills"`
	Salary      string `json:"salary"`
	Location    string `json:"location"`
	Eligibility string `json:"eligibility"`
}

func NewJobHandler(uc usecase.JobPostingUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

// PostJob takes the owner from the validated assertion, never from the body.
func (h *JobHandler) PostJob(c fiber.Ctx) error {
	var req postJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageFillAllFields, nil, err)
	}

	p, err := h.uc.Post(c.Context(), middleware.RecruiterEmail(c), posting.PostInput{
		Title:       req.Title,
		Description: req.Description,
		Skills:      req.Skills,
		Salary:      req.Salary,
		Location:    req.Location,
		Eligibility: req.Eligibility,
	})
	if err != nil {
		return mapPostingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageJobPosted, dto.NewJobResponse(p))
}

func (h *JobHandler) MyJobs(c fiber.Ctx) error {
	items, err := h.uc.ListByRecruiter(c.Context(), middleware.RecruiterEmail(c))
	if err != nil {
		return mapPostingUsecaseError(err)
	}
	msg := response.MessageOK
	if len(items) == 0 {
		msg = response.MessageNoJobsYet
	}
	return response.Success(c, fiber.StatusOK, msg, dto.NewJobListResponse(items))
}

func (h *JobHandler) ListJobs(c fiber.Ctx) error {
	items, err := h.uc.ListAll(c.Context())
	if err != nil {
		return mapPostingUsecaseError(err)
	}
	msg := response.MessageOK
	if len(items) == 0 {
		msg = response.MessageNoRecruiterJobs
	}
	return response.Success(c, fiber.StatusOK, msg, dto.NewJobListResponse(items))
}

func mapPostingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, posting.ErrMarkup):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessagePlainTextOnly, nil, err)
	case errors.Is(err, posting.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageFillAllFields, nil, err)
	case errors.Is(err, posting.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageLoginRequired, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
