// AngelaMos | 2026
// dto.go

package recommendation

import (
	"time"
)

type CreateRecommendationRequest struct {
	PestID  string `json:"pest_id" validate:"required,uuid"`
	Type    string `json:"type"    validate:"required,oneof=IPM Chemical Prevention"`
	Details string `json:"details" validate:"required,min=1,max=4096"`
}

type UpdateRecommendationRequest struct {
	Type    *string `json:"type,omitempty"    validate:"omitempty,oneof=IPM Chemical Prevention"`
	Details *string `json:"details,omitempty" validate:"omitempty,min=1,max=4096"`
}

type RecommendationResponse struct {
	ID        string    `json:"id"`
	PestID    string    `json:"pest_id"`
	Type      string    `json:"type"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

type RecommendationListResponse struct {
	Recommendations []RecommendationResponse `json:"recommendations"`
}

func ToRecommendationResponse(rec *Recommendation) RecommendationResponse {
	return RecommendationResponse{
		ID:        rec.ID,
		PestID:    rec.PestID,
		Type:      rec.Type,
		Details:   rec.Details,
		CreatedAt: rec.CreatedAt,
	}
}

func ToRecommendationResponseList(
	recs []Recommendation,
) []RecommendationResponse {
	responses := make([]RecommendationResponse, 0, len(recs))
	for _, rec := range recs {
		responses = append(responses, ToRecommendationResponse(&rec))
	}
	return responses
}
