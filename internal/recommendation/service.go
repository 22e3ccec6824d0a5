// AngelaMos | 2026
// service.go

package recommendation

import (
	"context"

	"github.com/google/uuid"

	"github.com/pestopia/backend/internal/pest"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create attaches the caller as owner. The pest reference is not verified
// against the pest's owner here; recommendations are caller-owned
// annotations and the cascade on pest deletion is the only cross-check.
func (s *Service) Create(
	ctx context.Context,
	ownerID string,
	req CreateRecommendationRequest,
) (*Recommendation, error) {
	rec := &Recommendation{
		ID:      uuid.New().String(),
		PestID:  req.PestID,
		OwnerID: ownerID,
		Type:    req.Type,
		Details: req.Details,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

func (s *Service) List(
	ctx context.Context,
	ownerID, pestID string,
) ([]Recommendation, error) {
	if pestID != "" {
		return s.repo.ListByPest(ctx, pestID, ownerID)
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) Get(
	ctx context.Context,
	id, ownerID string,
) (*Recommendation, error) {
	return s.repo.GetByID(ctx, id, ownerID)
}

func (s *Service) Update(
	ctx context.Context,
	id, ownerID string,
	req UpdateRecommendationRequest,
) (*Recommendation, error) {
	rec, err := s.repo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		rec.Type = *req.Type
	}
	if req.Details != nil {
		rec.Details = *req.Details
	}

	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id, ownerID string) error {
	return s.repo.Delete(ctx, id, ownerID)
}

// ListForPest satisfies the pest package's RecommendationProvider for the
// pest detail view.
func (s *Service) ListForPest(
	ctx context.Context,
	pestID, ownerID string,
) ([]pest.RecommendationInfo, error) {
	recs, err := s.repo.ListByPest(ctx, pestID, ownerID)
	if err != nil {
		return nil, err
	}

	infos := make([]pest.RecommendationInfo, 0, len(recs))
	for _, rec := range recs {
		infos = append(infos, pest.RecommendationInfo{
			ID:        rec.ID,
			PestID:    rec.PestID,
			Type:      rec.Type,
			Details:   rec.Details,
			CreatedAt: rec.CreatedAt,
		})
	}

	return infos, nil
}

var _ pest.RecommendationProvider = (*Service)(nil)
