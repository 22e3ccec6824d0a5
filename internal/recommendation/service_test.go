// AngelaMos | 2026
// service_test.go

package recommendation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pestopia/backend/internal/core"
)

type fakeRepository struct {
	recs map[string]*Recommendation
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{recs: make(map[string]*Recommendation)}
}

func (f *fakeRepository) Create(_ context.Context, rec *Recommendation) error {
	rec.CreatedAt = time.Now()
	clone := *rec
	f.recs[rec.ID] = &clone
	return nil
}

func (f *fakeRepository) ListByOwner(
	_ context.Context,
	ownerID string,
) ([]Recommendation, error) {
	var out []Recommendation
	for _, rec := range f.recs {
		if rec.OwnerID == ownerID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeRepository) ListByPest(
	_ context.Context,
	pestID, ownerID string,
) ([]Recommendation, error) {
	var out []Recommendation
	for _, rec := range f.recs {
		if rec.PestID == pestID && rec.OwnerID == ownerID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeRepository) GetByID(
	_ context.Context,
	id, ownerID string,
) (*Recommendation, error) {
	rec, ok := f.recs[id]
	if !ok || rec.OwnerID != ownerID {
		return nil, core.ErrNotFound
	}
	clone := *rec
	return &clone, nil
}

func (f *fakeRepository) Update(_ context.Context, rec *Recommendation) error {
	existing, ok := f.recs[rec.ID]
	if !ok || existing.OwnerID != rec.OwnerID {
		return core.ErrNotFound
	}
	clone := *rec
	clone.CreatedAt = existing.CreatedAt
	f.recs[rec.ID] = &clone
	return nil
}

func (f *fakeRepository) Delete(
	_ context.Context,
	id, ownerID string,
) error {
	rec, ok := f.recs[id]
	if !ok || rec.OwnerID != ownerID {
		return core.ErrNotFound
	}
	delete(f.recs, id)
	return nil
}

func TestService_CreateAttachesCaller(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeRepository())

	rec, err := svc.Create(context.Background(), "owner-1",
		CreateRecommendationRequest{
			PestID:  "pest-1",
			Type:    TypeIPM,
			Details: "introduce ladybirds",
		})
	require.NoError(t, err)
	require.Equal(t, "owner-1", rec.OwnerID)
	require.Equal(t, TypeIPM, rec.Type)
	require.NotEmpty(t, rec.ID)
}

func TestService_ListFiltersByPest(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, "owner-1", CreateRecommendationRequest{
		PestID: "pest-1", Type: TypeIPM, Details: "traps",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, "owner-1", CreateRecommendationRequest{
		PestID: "pest-2", Type: TypeChemical, Details: "spray",
	})
	require.NoError(t, err)

	all, err := svc.List(ctx, "owner-1", "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	filtered, err := svc.List(ctx, "owner-1", "pest-1")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	require.Equal(t, "pest-1", filtered[0].PestID)
}

func TestService_OwnerScoping(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeRepository())
	ctx := context.Background()

	rec, err := svc.Create(ctx, "owner-1", CreateRecommendationRequest{
		PestID: "pest-1", Type: TypePrevention, Details: "rotate crops",
	})
	require.NoError(t, err)

	_, err = svc.Get(ctx, rec.ID, "owner-2")
	require.ErrorIs(t, err, core.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, rec.ID, "owner-2"), core.ErrNotFound)

	got, err := svc.Get(ctx, rec.ID, "owner-1")
	require.NoError(t, err)
	require.Equal(t, "rotate crops", got.Details)
}

func TestService_UpdateMergesFields(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeRepository())
	ctx := context.Background()

	rec, err := svc.Create(ctx, "owner-1", CreateRecommendationRequest{
		PestID: "pest-1", Type: TypeIPM, Details: "traps",
	})
	require.NoError(t, err)

	newDetails := "pheromone traps near entry points"
	updated, err := svc.Update(ctx, rec.ID, "owner-1",
		UpdateRecommendationRequest{Details: &newDetails})
	require.NoError(t, err)
	require.Equal(t, TypeIPM, updated.Type)
	require.Equal(t, newDetails, updated.Details)
}

func TestService_ListForPestMapsInfo(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeRepository())
	ctx := context.Background()

	rec, err := svc.Create(ctx, "owner-1", CreateRecommendationRequest{
		PestID: "pest-1", Type: TypeChemical, Details: "neem oil",
	})
	require.NoError(t, err)

	infos, err := svc.ListForPest(ctx, "pest-1", "owner-1")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.Equal(t, rec.ID, infos[0].ID)
	require.Equal(t, TypeChemical, infos[0].Type)

	// scoped: another owner sees nothing
	infos, err = svc.ListForPest(ctx, "pest-1", "owner-2")
	require.NoError(t, err)
	require.Empty(t, infos)
}
