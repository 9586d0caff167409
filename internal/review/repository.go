package review

import (
	"context"
	"errors"

	"github.com/devkeeb/gearlog/internal/model"
)

// ErrInvalidReview is returned when the rating falls outside the allowed
// 0..5 range.
var ErrInvalidReview = errors.New("invalid review")

type Repository interface {
	Create(ctx context.Context, r *model.Review) error

	// FindPageByProduct fetches one page of a product's reviews ordered by
	// (created_at DESC, id DESC), requesting pagination.Limit(size) rows.
	FindPageByProduct(ctx context.Context, productID string, page, size int) ([]model.Review, error)

	// FindPage is FindPageByProduct across all products.
	FindPage(ctx context.Context, page, size int) ([]model.Review, error)
}
