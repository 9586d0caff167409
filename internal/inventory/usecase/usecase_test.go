package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/devkeeb/gearlog/internal/inventory"
	"github.com/devkeeb/gearlog/internal/inventory/dto"
	"github.com/devkeeb/gearlog/internal/model"
	"github.com/devkeeb/gearlog/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo reproduces the storage contract in memory: unique ownership per
// (member, product) and the atomic clear-then-set selection swap.
type fakeRepo struct {
	mu   sync.Mutex
	rows []*model.InventoryProduct
}

func (f *fakeRepo) GetOrCreate(_ context.Context, inv *model.InventoryProduct) (*model.InventoryProduct, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, row := range f.rows {
		if row.MemberID == inv.MemberID && row.ProductID == inv.ProductID {
			copied := *row
			return &copied, nil
		}
	}

	copied := *inv
	f.rows = append(f.rows, &copied)
	result := copied
	return &result, nil
}

func (f *fakeRepo) FindByMember(_ context.Context, memberID string) ([]dto.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var selected, rest []dto.InventoryItem
	for _, row := range f.rows {
		if row.MemberID != memberID {
			continue
		}
		item := dto.InventoryItem{InventoryProduct: *row}
		if row.Selected {
			selected = append(selected, item)
		} else {
			rest = append(rest, item)
		}
	}
	return append(selected, rest...), nil
}

func (f *fakeRepo) UpdateSelection(_ context.Context, memberID, inventoryProductID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var target *model.InventoryProduct
	for _, row := range f.rows {
		if row.ID == inventoryProductID && row.MemberID == memberID {
			target = row
			break
		}
	}
	if target == nil {
		return inventory.ErrNotFound
	}

	for _, row := range f.rows {
		if row.MemberID == memberID {
			row.Selected = false
		}
	}
	target.Selected = true
	return nil
}

func (f *fakeRepo) selectedCount(memberID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, row := range f.rows {
		if row.MemberID == memberID && row.Selected {
			n++
		}
	}
	return n
}

func newUseCase(repo inventory.Repository) inventory.UseCase {
	return NewInventoryUseCase(repo, logger.NewNop())
}

func TestEnsureOwnership_CreatesUnselected(t *testing.T) {
	repo := &fakeRepo{}
	uc := newUseCase(repo)

	got, err := uc.EnsureOwnership(context.Background(), "m1", "p1")

	require.NoError(t, err)
	assert.Equal(t, "m1", got.MemberID)
	assert.Equal(t, "p1", got.ProductID)
	assert.False(t, got.Selected, "auto-added products start unselected")
	assert.NotEmpty(t, got.ID)
}

func TestEnsureOwnership_Idempotent(t *testing.T) {
	repo := &fakeRepo{}
	uc := newUseCase(repo)

	first, err := uc.EnsureOwnership(context.Background(), "m1", "p1")
	require.NoError(t, err)

	second, err := uc.EnsureOwnership(context.Background(), "m1", "p1")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "re-adding an owned product returns the existing row")
	assert.Len(t, repo.rows, 1)
}

func TestEnsureOwnership_DistinctMembersOwnIndependently(t *testing.T) {
	repo := &fakeRepo{}
	uc := newUseCase(repo)

	a, err := uc.EnsureOwnership(context.Background(), "m1", "p1")
	require.NoError(t, err)
	b, err := uc.EnsureOwnership(context.Background(), "m2", "p1")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, repo.rows, 2)
}

func TestSetRepresentative_FirstSelection(t *testing.T) {
	repo := &fakeRepo{}
	uc := newUseCase(repo)

	owned, err := uc.EnsureOwnership(context.Background(), "m1", "p1")
	require.NoError(t, err)

	err = uc.SetRepresentative(context.Background(), &dto.SetRepresentativeInput{
		MemberID:           "m1",
		InventoryProductID: owned.ID,
	})
	require.NoError(t, err)

	items, err := uc.ListByMember(context.Background(), "m1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Selected)
}

func TestSetRepresentative_SwapsSelection(t *testing.T) {
	repo := &fakeRepo{}
	uc := newUseCase(repo)

	p1, err := uc.EnsureOwnership(context.Background(), "m1", "p1")
	require.NoError(t, err)
	p2, err := uc.EnsureOwnership(context.Background(), "m1", "p2")
	require.NoError(t, err)

	require.NoError(t, uc.SetRepresentative(context.Background(), &dto.SetRepresentativeInput{
		MemberID:           "m1",
		InventoryProductID: p1.ID,
	}))
	require.NoError(t, uc.SetRepresentative(context.Background(), &dto.SetRepresentativeInput{
		MemberID:           "m1",
		InventoryProductID: p2.ID,
	}))

	assert.Equal(t, 1, repo.selectedCount("m1"), "at most one selected row per member")

	items, err := uc.ListByMember(context.Background(), "m1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, p2.ID, items[0].ID, "selected row listed first")
	assert.True(t, items[0].Selected)
	assert.False(t, items[1].Selected)
}

func TestSetRepresentative_ExclusivityUnderRepeatedSwaps(t *testing.T) {
	repo := &fakeRepo{}
	uc := newUseCase(repo)

	var ids []string
	for _, productID := range []string{"p1", "p2", "p3"} {
		owned, err := uc.EnsureOwnership(context.Background(), "m1", productID)
		require.NoError(t, err)
		ids = append(ids, owned.ID)
	}

	for i := 0; i < 10; i++ {
		err := uc.SetRepresentative(context.Background(), &dto.SetRepresentativeInput{
			MemberID:           "m1",
			InventoryProductID: ids[i%len(ids)],
		})
		require.NoError(t, err)
		assert.Equal(t, 1, repo.selectedCount("m1"))
	}
}

func TestSetRepresentative_UnknownRow(t *testing.T) {
	repo := &fakeRepo{}
	uc := newUseCase(repo)

	err := uc.SetRepresentative(context.Background(), &dto.SetRepresentativeInput{
		MemberID:           "m1",
		InventoryProductID: "missing",
	})

	assert.ErrorIs(t, err, inventory.ErrNotFound)
}

func TestSetRepresentative_OtherMembersRow(t *testing.T) {
	repo := &fakeRepo{}
	uc := newUseCase(repo)

	owned, err := uc.EnsureOwnership(context.Background(), "m1", "p1")
	require.NoError(t, err)

	err = uc.SetRepresentative(context.Background(), &dto.SetRepresentativeInput{
		MemberID:           "m2",
		InventoryProductID: owned.ID,
	})

	assert.ErrorIs(t, err, inventory.ErrNotFound, "selecting someone else's row looks identical to a missing row")
	assert.Equal(t, 0, repo.selectedCount("m1"))
}
