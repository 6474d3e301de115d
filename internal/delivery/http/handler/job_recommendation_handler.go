package handler

import (
	"errors"
	"strconv"

	"career-connector/internal/delivery/http/dto"
	"career-connector/internal/delivery/http/middleware"
	"career-connector/internal/domain/matching"
	"career-connector/internal/pkg/response"
	"career-connector/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/recommendations", h.GetRecommendations)
	r.Get("/catalog", h.GetCatalog)
}

// GetRecommendations reads ?skills=python,sql&limit=5. No overlap at all is a
// 200 with an empty list.
func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	limit := parseQueryInt(c, "limit", matching.DefaultLimit)

	items, err := h.uc.Recommend(c.Context(), c.Query("skills"), limit)
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}

	msg := response.MessageTopRecommended
	if len(items) == 0 {
		msg = response.MessageNoMatches
	}
	return response.Success(c, fiber.StatusOK, msg, dto.NewRecommendationListResponse(items))
}

func (h *RecommendationHandler) GetCatalog(c fiber.Ctx) error {
	entries, err := h.uc.Catalog(c.Context())
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CatalogResponse{Total: len(entries), Entries: entries})
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return defaultVal
	}
	return v
}

func mapRecommendationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, matching.ErrEmptyQuery):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageSkillsRequired, nil, err)
	case errors.Is(err, matching.ErrEmptyCatalog):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageDatasetMissing, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
