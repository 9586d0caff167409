package repository

import (
	"context"

	"github.com/devkeeb/gearlog/internal/model"
	"github.com/devkeeb/gearlog/pkg/pagination"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
        INSERT INTO reviews (id, product_id, member_id, content, rating, created_at)
        VALUES (:id, :product_id, :member_id, :content, :rating, :created_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, review)
	return err
}

func (r *PGRepository) FindPageByProduct(ctx context.Context, productID string, page, size int) ([]model.Review, error) {
	var reviews []model.Review
	query := `
        SELECT * FROM reviews
        WHERE product_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2 OFFSET $3
    `
	err := r.DB.SelectContext(ctx, &reviews, query, productID, pagination.Limit(size), pagination.Offset(page, size))
	return reviews, err
}

func (r *PGRepository) FindPage(ctx context.Context, page, size int) ([]model.Review, error) {
	var reviews []model.Review
	query := `
        SELECT * FROM reviews
        ORDER BY created_at DESC, id DESC
        LIMIT $1 OFFSET $2
    `
	err := r.DB.SelectContext(ctx, &reviews, query, pagination.Limit(size), pagination.Offset(page, size))
	return reviews, err
}
