package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/devkeeb/gearlog/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Member, error) {
	var m model.Member
	query := `SELECT * FROM members WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *PGRepository) Upsert(ctx context.Context, m *model.Member) (*model.Member, error) {
	// Keyed by github_id: first login inserts, later logins refresh the
	// fields GitHub owns without touching the profile the member set here.
	query := `
        INSERT INTO members (id, github_id, name, image_url, career_level, job_type, created_at, updated_at)
        VALUES (:id, :github_id, :name, :image_url, :career_level, :job_type, :created_at, :updated_at)
        ON CONFLICT (github_id)
        DO UPDATE SET
            name = EXCLUDED.name,
            image_url = EXCLUDED.image_url,
            updated_at = EXCLUDED.updated_at
        RETURNING *
    `
	rows, err := r.DB.NamedQueryContext(ctx, query, m)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, sql.ErrNoRows
	}
	var stored model.Member
	if err := rows.StructScan(&stored); err != nil {
		return nil, err
	}
	return &stored, rows.Err()
}

func (r *PGRepository) UpdateProfile(ctx context.Context, m *model.Member) error {
	query := `
        UPDATE members
        SET career_level = :career_level,
            job_type = :job_type,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, m)
	return err
}
