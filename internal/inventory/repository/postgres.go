package repository

import (
	"context"
	"fmt"

	"github.com/devkeeb/gearlog/internal/inventory"
	"github.com/devkeeb/gearlog/internal/inventory/dto"
	"github.com/devkeeb/gearlog/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) GetOrCreate(ctx context.Context, inv *model.InventoryProduct) (*model.InventoryProduct, error) {
	// The unique index on (member_id, product_id) makes the insert a no-op
	// when the member already owns the product, so two concurrent submissions
	// cannot create duplicate rows.
	insertQuery := `
        INSERT INTO inventory_products (id, member_id, product_id, selected, created_at)
        VALUES (:id, :member_id, :product_id, :selected, :created_at)
        ON CONFLICT (member_id, product_id) DO NOTHING
    `
	if _, err := r.DB.NamedExecContext(ctx, insertQuery, inv); err != nil {
		return nil, fmt.Errorf("failed to insert inventory product: %w", err)
	}

	var stored model.InventoryProduct
	selectQuery := `SELECT * FROM inventory_products WHERE member_id = $1 AND product_id = $2 LIMIT 1`
	if err := r.DB.GetContext(ctx, &stored, selectQuery, inv.MemberID, inv.ProductID); err != nil {
		return nil, fmt.Errorf("failed to fetch inventory product: %w", err)
	}
	return &stored, nil
}

func (r *PGRepository) FindByMember(ctx context.Context, memberID string) ([]dto.InventoryItem, error) {
	var items []dto.InventoryItem
	query := `
        SELECT
            ip.id, ip.member_id, ip.product_id, ip.selected, ip.created_at,
            p.id AS "product.id",
            p.name AS "product.name",
            p.category AS "product.category",
            p.image_url AS "product.image_url",
            p.created_at AS "product.created_at"
        FROM inventory_products ip
        JOIN products p ON p.id = ip.product_id
        WHERE ip.member_id = $1
        ORDER BY ip.selected DESC, ip.id
    `
	err := r.DB.SelectContext(ctx, &items, query, memberID)
	return items, err
}

func (r *PGRepository) UpdateSelection(ctx context.Context, memberID, inventoryProductID string) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Clear before set so the partial unique index on selected rows never
	// observes two selected rows for the member.
	_, err = tx.ExecContext(ctx,
		`UPDATE inventory_products SET selected = FALSE WHERE member_id = $1 AND selected`,
		memberID,
	)
	if err != nil {
		return fmt.Errorf("failed to clear selection: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE inventory_products SET selected = TRUE WHERE id = $1 AND member_id = $2`,
		inventoryProductID, memberID,
	)
	if err != nil {
		return fmt.Errorf("failed to set selection: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		// Missing row or someone else's row; the rollback also restores the
		// previous selection.
		return inventory.ErrNotFound
	}

	return tx.Commit()
}
