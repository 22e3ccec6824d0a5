// AngelaMos | 2026
// repository.go

package recommendation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pestopia/backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, rec *Recommendation) error
	ListByOwner(ctx context.Context, ownerID string) ([]Recommendation, error)
	ListByPest(
		ctx context.Context,
		pestID, ownerID string,
	) ([]Recommendation, error)
	GetByID(ctx context.Context, id, ownerID string) (*Recommendation, error)
	Update(ctx context.Context, rec *Recommendation) error
	Delete(ctx context.Context, id, ownerID string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec *Recommendation) error {
	query := `
		INSERT INTO recommendations (id, pest_id, owner_id, type, details)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &rec.CreatedAt, query,
		rec.ID,
		rec.PestID,
		rec.OwnerID,
		rec.Type,
		rec.Details,
	)
	if err != nil {
		return fmt.Errorf("create recommendation: %w", err)
	}

	return nil
}

func (r *repository) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]Recommendation, error) {
	query := `
		SELECT id, pest_id, owner_id, type, details, created_at
		FROM recommendations
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	var recs []Recommendation
	if err := r.db.SelectContext(ctx, &recs, query, ownerID); err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}

	return recs, nil
}

func (r *repository) ListByPest(
	ctx context.Context,
	pestID, ownerID string,
) ([]Recommendation, error) {
	query := `
		SELECT id, pest_id, owner_id, type, details, created_at
		FROM recommendations
		WHERE pest_id = $1 AND owner_id = $2
		ORDER BY created_at DESC`

	var recs []Recommendation
	err := r.db.SelectContext(ctx, &recs, query, pestID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list pest recommendations: %w", err)
	}

	return recs, nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id, ownerID string,
) (*Recommendation, error) {
	query := `
		SELECT id, pest_id, owner_id, type, details, created_at
		FROM recommendations
		WHERE id = $1 AND owner_id = $2`

	var rec Recommendation
	err := r.db.GetContext(ctx, &rec, query, id, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get recommendation: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get recommendation: %w", err)
	}

	return &rec, nil
}

func (r *repository) Update(ctx context.Context, rec *Recommendation) error {
	query := `
		UPDATE recommendations
		SET type = $3, details = $4
		WHERE id = $1 AND owner_id = $2`

	result, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.OwnerID,
		rec.Type,
		rec.Details,
	)
	if err != nil {
		return fmt.Errorf("update recommendation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update recommendation: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update recommendation: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id, ownerID string) error {
	query := `
		DELETE FROM recommendations
		WHERE id = $1 AND owner_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete recommendation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete recommendation: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete recommendation: %w", core.ErrNotFound)
	}

	return nil
}
