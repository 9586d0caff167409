package usecase

import (
	"context"

	"github.com/devkeeb/gearlog/internal/model"
	"github.com/devkeeb/gearlog/internal/product"
	"github.com/devkeeb/gearlog/pkg/logger"
	"github.com/devkeeb/gearlog/pkg/pagination"
)

type productUseCase struct {
	repo   product.Repository
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrNotFound
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, page, size int) (pagination.Slice[model.Product], error) {
	rows, err := uc.repo.FindPage(ctx, page, size)
	if err != nil {
		return pagination.Slice[model.Product]{}, err
	}
	return pagination.FromRows(rows, size), nil
}
