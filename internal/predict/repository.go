// AngelaMos | 2026
// repository.go

package predict

import (
	"context"
	"fmt"

	"github.com/pestopia/backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, prediction *Prediction) error
	ListByOwner(ctx context.Context, ownerID string) ([]Prediction, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	prediction *Prediction,
) error {
	query := `
		INSERT INTO predictions (
			id, owner_id, image_path, class_name, confidence, raw
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &prediction.CreatedAt, query,
		prediction.ID,
		prediction.OwnerID,
		prediction.ImagePath,
		prediction.ClassName,
		prediction.Confidence,
		prediction.Raw,
	)
	if err != nil {
		return fmt.Errorf("create prediction: %w", err)
	}

	return nil
}

func (r *repository) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]Prediction, error) {
	query := `
		SELECT id, owner_id, image_path, class_name, confidence, raw,
		       created_at
		FROM predictions
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	var predictions []Prediction
	err := r.db.SelectContext(ctx, &predictions, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}

	return predictions, nil
}
