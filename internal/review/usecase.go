package review

import (
	"context"

	"github.com/devkeeb/gearlog/internal/model"
	"github.com/devkeeb/gearlog/internal/review/dto"
	"github.com/devkeeb/gearlog/pkg/pagination"
)

type UseCase interface {
	// Submit persists a review and returns its id. As a side effect the
	// reviewed product is added to the submitting member's inventory when not
	// owned yet.
	Submit(ctx context.Context, input *dto.SubmitReviewInput) (string, error)

	ListByProduct(ctx context.Context, productID string, page, size int) (pagination.Slice[model.Review], error)
	ListAll(ctx context.Context, page, size int) (pagination.Slice[model.Review], error)
}

// OwnershipEnsurer is the slice of the inventory engine the review store
// drives on submission.
type OwnershipEnsurer interface {
	EnsureOwnership(ctx context.Context, memberID, productID string) (*model.InventoryProduct, error)
}
