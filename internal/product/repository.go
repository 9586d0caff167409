package product

import (
	"context"
	"errors"

	"github.com/devkeeb/gearlog/internal/model"
)

// ErrNotFound is returned when a referenced product id does not exist in the
// catalog.
var ErrNotFound = errors.New("product not found")

type Repository interface {
	FindByID(ctx context.Context, id string) (*model.Product, error)
	ExistsByID(ctx context.Context, id string) (bool, error)

	// FindPage fetches one page of products ordered by (created_at DESC, id DESC),
	// requesting pagination.Limit(size) rows.
	FindPage(ctx context.Context, page, size int) ([]model.Product, error)
}
