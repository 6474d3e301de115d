package usecase

import (
	"context"

	"career-connector/internal/domain/catalog"
	"career-connector/internal/domain/matching"
)

const MaxRecommendationLimit = 50

type RecommendationUsecase interface {
	Recommend(ctx context.Context, skills string, limit int) ([]matching.Recommendation, error)
	Catalog(ctx context.Context) ([]catalog.Entry, error)
}

// Recommendation serves a catalog snapshot loaded once at startup.
type Recommendation struct {
	entries []catalog.Entry
}

func NewRecommendationUsecase(entries []catalog.Entry) *Recommendation {
	snapshot := make([]catalog.Entry, len(entries))
	copy(snapshot, entries)
	return &Recommendation{entries: snapshot}
}

func (u *Recommendation) Recommend(ctx context.Context, skills string, limit int) ([]matching.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit > MaxRecommendationLimit {
		limit = MaxRecommendationLimit
	}
	return matching.Recommend(skills, u.entries, limit)
}

func (u *Recommendation) Catalog(ctx context.Context) ([]catalog.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(u.entries) == 0 {
		return nil, matching.ErrEmptyCatalog
	}
	out := make([]catalog.Entry, len(u.entries))
	copy(out, u.entries)
	return out, nil
}
