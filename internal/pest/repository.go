// AngelaMos | 2026
// repository.go

package pest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pestopia/backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, pest *Pest) error
	ListByOwner(ctx context.Context, ownerID string) ([]Pest, error)
	GetByID(ctx context.Context, id, ownerID string) (*Pest, error)
	Update(ctx context.Context, pest *Pest) error
	DeleteCascade(ctx context.Context, id, ownerID string) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, pest *Pest) error {
	query := `
		INSERT INTO pests (
			id, owner_id, common_name, scientific_name, description, image_url
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &pest.CreatedAt, query,
		pest.ID,
		pest.OwnerID,
		pest.CommonName,
		pest.ScientificName,
		pest.Description,
		pest.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("create pest: %w", err)
	}

	return nil
}

func (r *repository) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]Pest, error) {
	query := `
		SELECT id, owner_id, common_name, scientific_name, description,
		       image_url, created_at
		FROM pests
		WHERE owner_id = $1
		ORDER BY common_name ASC`

	var pests []Pest
	if err := r.db.SelectContext(ctx, &pests, query, ownerID); err != nil {
		return nil, fmt.Errorf("list pests: %w", err)
	}

	return pests, nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id, ownerID string,
) (*Pest, error) {
	query := `
		SELECT id, owner_id, common_name, scientific_name, description,
		       image_url, created_at
		FROM pests
		WHERE id = $1 AND owner_id = $2`

	var pest Pest
	err := r.db.GetContext(ctx, &pest, query, id, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get pest: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get pest: %w", err)
	}

	return &pest, nil
}

func (r *repository) Update(ctx context.Context, pest *Pest) error {
	query := `
		UPDATE pests
		SET common_name = $3, scientific_name = $4, description = $5,
		    image_url = $6
		WHERE id = $1 AND owner_id = $2`

	result, err := r.db.ExecContext(ctx, query,
		pest.ID,
		pest.OwnerID,
		pest.CommonName,
		pest.ScientificName,
		pest.Description,
		pest.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("update pest: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update pest: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update pest: %w", core.ErrNotFound)
	}

	return nil
}

// DeleteCascade removes the pest and every recommendation referencing it
// that belongs to the same owner, atomically. Other owners' recommendations
// are left untouched.
func (r *repository) DeleteCascade(
	ctx context.Context,
	id, ownerID string,
) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `
			DELETE FROM recommendations
			WHERE pest_id = $1 AND owner_id = $2`,
			id, ownerID,
		)
		if err != nil {
			return fmt.Errorf("delete pest recommendations: %w", err)
		}

		result, err := tx.ExecContext(ctx, `
			DELETE FROM pests
			WHERE id = $1 AND owner_id = $2`,
			id, ownerID,
		)
		if err != nil {
			return fmt.Errorf("delete pest: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete pest: %w", err)
		}

		if rows == 0 {
			return fmt.Errorf("delete pest: %w", core.ErrNotFound)
		}

		return nil
	})
}
