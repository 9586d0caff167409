package repository

import (
	"context"
	"database/sql"
	"errors"

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

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	query := `SELECT * FROM products WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *PGRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`
	err := r.DB.GetContext(ctx, &exists, query, id)
	return exists, err
}

func (r *PGRepository) FindPage(ctx context.Context, page, size int) ([]model.Product, error) {
	var products []model.Product
	query := `
        SELECT * FROM products
        ORDER BY created_at DESC, id DESC
        LIMIT $1 OFFSET $2
    `
	err := r.DB.SelectContext(ctx, &products, query, pagination.Limit(size), pagination.Offset(page, size))
	return products, err
}
