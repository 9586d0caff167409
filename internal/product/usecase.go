package product

import (
	"context"

	"github.com/devkeeb/gearlog/internal/model"
	"github.com/devkeeb/gearlog/pkg/pagination"
)

type UseCase interface {
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context, page, size int) (pagination.Slice[model.Product], error)
}
