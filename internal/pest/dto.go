// AngelaMos | 2026
// dto.go

package pest

import (
	"time"
)

type CreatePestRequest struct {
	CommonName     string `json:"common_name"     validate:"required,min=1,max=255"`
	ScientificName string `json:"scientific_name" validate:"omitempty,max=255"`
	Description    string `json:"description"     validate:"omitempty,max=4096"`
	ImageURL       string `json:"image_url"       validate:"omitempty,url,max=2048"`
}

type UpdatePestRequest struct {
	CommonName     *string `json:"common_name,omitempty"     validate:"omitempty,min=1,max=255"`
	ScientificName *string `json:"scientific_name,omitempty" validate:"omitempty,max=255"`
	Description    *string `json:"description,omitempty"     validate:"omitempty,max=4096"`
	ImageURL       *string `json:"image_url,omitempty"       validate:"omitempty,url,max=2048"`
}

type PestResponse struct {
	ID             string    `json:"id"`
	CommonName     string    `json:"common_name"`
	ScientificName string    `json:"scientific_name,omitempty"`
	Description    string    `json:"description,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type PestListResponse struct {
	Pests []PestResponse `json:"pests"`
}

// RecommendationInfo is the recommendation view embedded in a pest detail
// response. The recommendation package implements RecommendationProvider
// against this shape, mirroring how auth consumes user data.
type RecommendationInfo struct {
	ID        string    `json:"id"`
	PestID    string    `json:"pest_id"`
	Type      string    `json:"type"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

type PestDetailResponse struct {
	Pest            PestResponse         `json:"pest"`
	Recommendations []RecommendationInfo `json:"recommendations"`
}

func ToPestResponse(p *Pest) PestResponse {
	return PestResponse{
		ID:             p.ID,
		CommonName:     p.CommonName,
		ScientificName: p.ScientificName,
		Description:    p.Description,
		ImageURL:       p.ImageURL,
		CreatedAt:      p.CreatedAt,
	}
}

func ToPestResponseList(pests []Pest) []PestResponse {
	responses := make([]PestResponse, 0, len(pests))
	for _, p := range pests {
		responses = append(responses, ToPestResponse(&p))
	}
	return responses
}
