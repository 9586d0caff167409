package inventory

import (
	"context"
	"errors"

	"github.com/devkeeb/gearlog/internal/inventory/dto"
	"github.com/devkeeb/gearlog/internal/model"
)

// ErrNotFound covers both a missing inventory row and a row owned by another
// member; callers cannot tell the two apart, so the API leaks nothing about
// other members' inventories.
var ErrNotFound = errors.New("inventory product not found")

type Repository interface {
	// GetOrCreate inserts inv unless a row for its (member_id, product_id)
	// already exists, and returns the stored row either way. The insert relies
	// on the unique index, so it is safe under concurrent duplicate
	// submissions.
	GetOrCreate(ctx context.Context, inv *model.InventoryProduct) (*model.InventoryProduct, error)

	// FindByMember returns the member's inventory with joined product
	// metadata, selected row first, remainder ordered by id.
	FindByMember(ctx context.Context, memberID string) ([]dto.InventoryItem, error)

	// UpdateSelection clears every selected row of the member and selects the
	// row with the given id, in one transaction. Returns ErrNotFound when the
	// row does not exist or belongs to a different member.
	UpdateSelection(ctx context.Context, memberID, inventoryProductID string) error
}
