// AngelaMos | 2026
// dto.go

package predict

import (
	"encoding/json"
	"time"
)

type PredictionResponse struct {
	ID         string          `json:"id"`
	ImagePath  string          `json:"image_path"`
	ClassName  string          `json:"class_name"`
	Confidence float64         `json:"confidence"`
	Raw        json.RawMessage `json:"raw"`
	CreatedAt  time.Time       `json:"created_at"`
}

type PredictionListResponse struct {
	Predictions []PredictionResponse `json:"predictions"`
}

func ToPredictionResponse(p *Prediction) PredictionResponse {
	return PredictionResponse{
		ID:         p.ID,
		ImagePath:  p.ImagePath,
		ClassName:  p.ClassName,
		Confidence: p.Confidence,
		Raw:        json.RawMessage(p.Raw),
		CreatedAt:  p.CreatedAt,
	}
}

func ToPredictionResponseList(preds []Prediction) []PredictionResponse {
	responses := make([]PredictionResponse, 0, len(preds))
	for _, p := range preds {
		responses = append(responses, ToPredictionResponse(&p))
	}
	return responses
}
