package inventory

import (
	"context"

	"github.com/devkeeb/gearlog/internal/inventory/dto"
	"github.com/devkeeb/gearlog/internal/model"
)

type UseCase interface {
	// EnsureOwnership is an idempotent get-or-create: reviewing or explicitly
	// adding a product makes the member own it, unselected by default.
	EnsureOwnership(ctx context.Context, memberID, productID string) (*model.InventoryProduct, error)

	ListByMember(ctx context.Context, memberID string) ([]dto.InventoryItem, error)

	// SetRepresentative marks one inventory row as the member's representative
	// product and clears the flag everywhere else for that member.
	SetRepresentative(ctx context.Context, input *dto.SetRepresentativeInput) error
}
