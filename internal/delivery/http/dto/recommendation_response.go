package dto

import (
	"career-connector/internal/domain/catalog"
	"career-connector/internal/domain/matching"
)

type RecommendationResponse struct {
	Domain      string `json:"domain"`
	JobRole     string `json:"job_role"`
	Skills      string `json:"skills"`
	Personality string `json:"personality"`
	MatchScore  int    `json:"match_score"`
}

func NewRecommendationListResponse(items []matching.Recommendation) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(items))
	for _, r := range items {
		out = append(out, RecommendationResponse{
			Domain:      r.Entry.Domain,
			JobRole:     r.Entry.JobRole,
			Skills:      r.Entry.Skills,
			Personality: r.Entry.Personality,
			MatchScore:  r.Score,
		})
	}
	return out
}

type CatalogResponse struct {
	Total   int             `json:"total"`
	Entries []catalog.Entry `json:"entries"`
}
