package usecase

import (
	"context"
	"time"

	"github.com/devkeeb/gearlog/internal/model"
	"github.com/devkeeb/gearlog/internal/product"
	"github.com/devkeeb/gearlog/internal/review"
	"github.com/devkeeb/gearlog/internal/review/dto"
	"github.com/devkeeb/gearlog/pkg/logger"
	"github.com/devkeeb/gearlog/pkg/pagination"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type reviewUseCase struct {
	repo      review.Repository
	catalog   product.Repository
	inventory review.OwnershipEnsurer
	logger    logger.ZapLogger
	now       func() time.Time
}

// NewReviewUseCase wires the review store. now may be nil, in which case
// time.Now assigns submission timestamps.
func NewReviewUseCase(repo review.Repository, catalog product.Repository, inventory review.OwnershipEnsurer, log logger.ZapLogger, now func() time.Time) review.UseCase {
	if now == nil {
		now = time.Now
	}
	return &reviewUseCase{
		repo:      repo,
		catalog:   catalog,
		inventory: inventory,
		logger:    log,
		now:       now,
	}
}

func (uc *reviewUseCase) Submit(ctx context.Context, input *dto.SubmitReviewInput) (string, error) {
	if input.Rating < model.MinRating || input.Rating > model.MaxRating {
		return "", review.ErrInvalidReview
	}

	exists, err := uc.catalog.ExistsByID(ctx, input.ProductID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", product.ErrNotFound
	}

	r := &model.Review{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: uc.now(),
		},
		ProductID: input.ProductID,
		MemberID:  input.MemberID,
		Content:   input.Content,
		Rating:    input.Rating,
	}

	if err := uc.repo.Create(ctx, r); err != nil {
		return "", err
	}

	// Reviewing a product implies owning it.
	if _, err := uc.inventory.EnsureOwnership(ctx, input.MemberID, input.ProductID); err != nil {
		uc.logger.Error("failed to ensure inventory ownership after review",
			zap.String("member_id", input.MemberID),
			zap.String("product_id", input.ProductID),
			zap.Error(err),
		)
		return "", err
	}

	return r.ID, nil
}

func (uc *reviewUseCase) ListByProduct(ctx context.Context, productID string, page, size int) (pagination.Slice[model.Review], error) {
	exists, err := uc.catalog.ExistsByID(ctx, productID)
	if err != nil {
		return pagination.Slice[model.Review]{}, err
	}
	if !exists {
		return pagination.Slice[model.Review]{}, product.ErrNotFound
	}

	rows, err := uc.repo.FindPageByProduct(ctx, productID, page, size)
	if err != nil {
		return pagination.Slice[model.Review]{}, err
	}
	return pagination.FromRows(rows, size), nil
}

func (uc *reviewUseCase) ListAll(ctx context.Context, page, size int) (pagination.Slice[model.Review], error) {
	rows, err := uc.repo.FindPage(ctx, page, size)
	if err != nil {
		return pagination.Slice[model.Review]{}, err
	}
	return pagination.FromRows(rows, size), nil
}
