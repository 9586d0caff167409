package usecase

import (
	"context"
	"time"

	"github.com/devkeeb/gearlog/internal/inventory"
	"github.com/devkeeb/gearlog/internal/inventory/dto"
	"github.com/devkeeb/gearlog/internal/model"
	"github.com/devkeeb/gearlog/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	logger logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *inventoryUseCase) EnsureOwnership(ctx context.Context, memberID, productID string) (*model.InventoryProduct, error) {
	candidate := &model.InventoryProduct{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: time.Now(),
		},
		MemberID:  memberID,
		ProductID: productID,
		Selected:  false,
	}

	stored, err := uc.repo.GetOrCreate(ctx, candidate)
	if err != nil {
		return nil, err
	}

	if stored.ID != candidate.ID {
		uc.logger.Debug("inventory product already owned",
			zap.String("member_id", memberID),
			zap.String("product_id", productID),
		)
	}

	return stored, nil
}

func (uc *inventoryUseCase) ListByMember(ctx context.Context, memberID string) ([]dto.InventoryItem, error) {
	return uc.repo.FindByMember(ctx, memberID)
}

func (uc *inventoryUseCase) SetRepresentative(ctx context.Context, input *dto.SetRepresentativeInput) error {
	return uc.repo.UpdateSelection(ctx, input.MemberID, input.InventoryProductID)
}
