package member

import (
	"context"
	"errors"
	"time"

	"github.com/devkeeb/gearlog/internal/member/dto"
	"github.com/devkeeb/gearlog/internal/model"
)

var (
	// ErrCodeReplayed is returned when an OAuth authorization code is
	// presented a second time.
	ErrCodeReplayed = errors.New("authorization code already used")

	ErrInvalidProfile = errors.New("invalid profile")
)

type UseCase interface {
	// Login exchanges a GitHub authorization code for a session token,
	// creating the member on first login.
	Login(ctx context.Context, code string) (*dto.LoginResponse, error)

	GetMember(ctx context.Context, id string) (*model.Member, error)
	UpdateProfile(ctx context.Context, input *dto.UpdateProfileInput) (*model.Member, error)
}

// OnceGuard marks a key as consumed and reports whether this was the first
// use. Backed by Redis SetNX in production.
type OnceGuard interface {
	ConsumeOnce(ctx context.Context, key string, ttl time.Duration) (bool, error)
}
