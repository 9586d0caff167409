package member

import (
	"context"
	"errors"

	"github.com/devkeeb/gearlog/internal/model"
)

var ErrNotFound = errors.New("member not found")

type Repository interface {
	FindByID(ctx context.Context, id string) (*model.Member, error)

	// Upsert creates the member on first login, keyed by github_id, and
	// refreshes name/image on subsequent logins. Returns the stored row.
	Upsert(ctx context.Context, m *model.Member) (*model.Member, error)

	UpdateProfile(ctx context.Context, m *model.Member) error
}
