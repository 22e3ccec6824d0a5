// AngelaMos | 2026
// service.go

package pest

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// RecommendationProvider supplies the recommendations attached to a pest
// detail view. Implemented by the recommendation service.
type RecommendationProvider interface {
	ListForPest(
		ctx context.Context,
		pestID, ownerID string,
	) ([]RecommendationInfo, error)
}

type Service struct {
	repo            Repository
	recommendations RecommendationProvider
}

func NewService(
	repo Repository,
	recommendations RecommendationProvider,
) *Service {
	return &Service{
		repo:            repo,
		recommendations: recommendations,
	}
}

func (s *Service) Create(
	ctx context.Context,
	ownerID string,
	req CreatePestRequest,
) (*Pest, error) {
	pest := &Pest{
		ID:             uuid.New().String(),
		OwnerID:        ownerID,
		CommonName:     req.CommonName,
		ScientificName: req.ScientificName,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
	}

	if err := s.repo.Create(ctx, pest); err != nil {
		return nil, err
	}

	return pest, nil
}

func (s *Service) List(ctx context.Context, ownerID string) ([]Pest, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// GetDetail returns the pest with its recommendations, both scoped to the
// owner.
func (s *Service) GetDetail(
	ctx context.Context,
	id, ownerID string,
) (*PestDetailResponse, error) {
	pest, err := s.repo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	recs, err := s.recommendations.ListForPest(ctx, pest.ID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list pest recommendations: %w", err)
	}

	return &PestDetailResponse{
		Pest:            ToPestResponse(pest),
		Recommendations: recs,
	}, nil
}

func (s *Service) Update(
	ctx context.Context,
	id, ownerID string,
	req UpdatePestRequest,
) (*Pest, error) {
	pest, err := s.repo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if req.CommonName != nil {
		pest.CommonName = *req.CommonName
	}
	if req.ScientificName != nil {
		pest.ScientificName = *req.ScientificName
	}
	if req.Description != nil {
		pest.Description = *req.Description
	}
	if req.ImageURL != nil {
		pest.ImageURL = *req.ImageURL
	}

	if err := s.repo.Update(ctx, pest); err != nil {
		return nil, err
	}

	return pest, nil
}

func (s *Service) Delete(ctx context.Context, id, ownerID string) error {
	return s.repo.DeleteCascade(ctx, id, ownerID)
}
