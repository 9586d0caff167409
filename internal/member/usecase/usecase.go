package usecase

import (
	"context"
	"time"

	"github.com/devkeeb/gearlog/internal/auth"
	"github.com/devkeeb/gearlog/internal/member"
	"github.com/devkeeb/gearlog/internal/member/dto"
	"github.com/devkeeb/gearlog/internal/model"
	"github.com/devkeeb/gearlog/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const codeReplayTTL = 10 * time.Minute

type memberUseCase struct {
	repo   member.Repository
	oauth  auth.OAuthClient
	tokens *auth.TokenManager
	once   member.OnceGuard
	logger logger.ZapLogger
}

func NewMemberUseCase(repo member.Repository, oauth auth.OAuthClient, tokens *auth.TokenManager, once member.OnceGuard, log logger.ZapLogger) member.UseCase {
	return &memberUseCase{
		repo:   repo,
		oauth:  oauth,
		tokens: tokens,
		once:   once,
		logger: log,
	}
}

func (uc *memberUseCase) Login(ctx context.Context, code string) (*dto.LoginResponse, error) {
	first, err := uc.once.ConsumeOnce(ctx, "oauth:code:"+code, codeReplayTTL)
	if err != nil {
		return nil, err
	}
	if !first {
		return nil, member.ErrCodeReplayed
	}

	accessToken, err := uc.oauth.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	profile, err := uc.oauth.FetchProfile(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var imageURL *string
	if profile.AvatarURL != "" {
		imageURL = &profile.AvatarURL
	}

	stored, err := uc.repo.Upsert(ctx, &model.Member{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
		},
		GitHubID:  profile.Login,
		Name:      profile.Name,
		ImageURL:  imageURL,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(stored.ID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("member logged in", zap.String("member_id", stored.ID))

	return &dto.LoginResponse{Token: token, Member: stored}, nil
}

func (uc *memberUseCase) GetMember(ctx context.Context, id string) (*model.Member, error) {
	m, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, member.ErrNotFound
	}
	return m, nil
}

func (uc *memberUseCase) UpdateProfile(ctx context.Context, input *dto.UpdateProfileInput) (*model.Member, error) {
	if !model.ValidCareerLevel(input.CareerLevel) || !model.ValidJobType(input.JobType) {
		return nil, member.ErrInvalidProfile
	}

	m, err := uc.GetMember(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}

	m.CareerLevel = &input.CareerLevel
	m.JobType = &input.JobType
	m.UpdatedAt = time.Now()

	if err := uc.repo.UpdateProfile(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
