package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/devkeeb/gearlog/internal/auth"
	"github.com/devkeeb/gearlog/internal/member"
	"github.com/devkeeb/gearlog/internal/member/dto"
	"github.com/devkeeb/gearlog/internal/model"
	"github.com/devkeeb/gearlog/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMemberRepo struct {
	byID       map[string]*model.Member
	byGitHubID map[string]*model.Member
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{
		byID:       map[string]*model.Member{},
		byGitHubID: map[string]*model.Member{},
	}
}

func (f *fakeMemberRepo) FindByID(_ context.Context, id string) (*model.Member, error) {
	m, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *m
	return &copied, nil
}

func (f *fakeMemberRepo) Upsert(_ context.Context, m *model.Member) (*model.Member, error) {
	if existing, ok := f.byGitHubID[m.GitHubID]; ok {
		existing.Name = m.Name
		existing.ImageURL = m.ImageURL
		existing.UpdatedAt = m.UpdatedAt
		copied := *existing
		return &copied, nil
	}
	copied := *m
	f.byID[m.ID] = &copied
	f.byGitHubID[m.GitHubID] = &copied
	result := copied
	return &result, nil
}

func (f *fakeMemberRepo) UpdateProfile(_ context.Context, m *model.Member) error {
	stored := f.byID[m.ID]
	stored.CareerLevel = m.CareerLevel
	stored.JobType = m.JobType
	stored.UpdatedAt = m.UpdatedAt
	return nil
}

type fakeOAuth struct {
	profile auth.GitHubProfile
}

func (f *fakeOAuth) ExchangeCode(_ context.Context, code string) (string, error) {
	return "gh-token-" + code, nil
}

func (f *fakeOAuth) FetchProfile(_ context.Context, _ string) (*auth.GitHubProfile, error) {
	copied := f.profile
	return &copied, nil
}

type fakeOnceGuard struct {
	seen map[string]bool
}

func (f *fakeOnceGuard) ConsumeOnce(_ context.Context, key string, _ time.Duration) (bool, error) {
	if f.seen == nil {
		f.seen = map[string]bool{}
	}
	if f.seen[key] {
		return false, nil
	}
	f.seen[key] = true
	return true, nil
}

func newLoginFixture() (member.UseCase, *fakeMemberRepo, *auth.TokenManager) {
	repo := newFakeMemberRepo()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	oauth := &fakeOAuth{profile: auth.GitHubProfile{Login: "octocat", Name: "The Octocat", AvatarURL: "https://example.com/a.png"}}
	uc := NewMemberUseCase(repo, oauth, tokens, &fakeOnceGuard{}, logger.NewNop())
	return uc, repo, tokens
}

func TestLogin_CreatesMemberAndIssuesToken(t *testing.T) {
	uc, repo, tokens := newLoginFixture()

	resp, err := uc.Login(context.Background(), "code-1")

	require.NoError(t, err)
	require.NotNil(t, resp.Member)
	assert.Equal(t, "octocat", resp.Member.GitHubID)
	assert.Equal(t, "The Octocat", resp.Member.Name)
	assert.Len(t, repo.byID, 1)

	memberID, err := tokens.Validate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Member.ID, memberID)
}

func TestLogin_SecondLoginReusesMember(t *testing.T) {
	uc, repo, _ := newLoginFixture()

	first, err := uc.Login(context.Background(), "code-1")
	require.NoError(t, err)

	second, err := uc.Login(context.Background(), "code-2")
	require.NoError(t, err)

	assert.Equal(t, first.Member.ID, second.Member.ID, "same github identity maps to the same member")
	assert.Len(t, repo.byID, 1)
}

func TestLogin_ReplayedCode(t *testing.T) {
	uc, _, _ := newLoginFixture()

	_, err := uc.Login(context.Background(), "code-1")
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), "code-1")
	assert.ErrorIs(t, err, member.ErrCodeReplayed)
}

func TestUpdateProfile(t *testing.T) {
	uc, _, _ := newLoginFixture()

	resp, err := uc.Login(context.Background(), "code-1")
	require.NoError(t, err)

	updated, err := uc.UpdateProfile(context.Background(), &dto.UpdateProfileInput{
		MemberID:    resp.Member.ID,
		CareerLevel: model.CareerLevelSenior,
		JobType:     model.JobTypeBackend,
	})

	require.NoError(t, err)
	require.NotNil(t, updated.CareerLevel)
	assert.Equal(t, model.CareerLevelSenior, *updated.CareerLevel)
	require.NotNil(t, updated.JobType)
	assert.Equal(t, model.JobTypeBackend, *updated.JobType)
}

func TestUpdateProfile_InvalidValues(t *testing.T) {
	uc, _, _ := newLoginFixture()

	resp, err := uc.Login(context.Background(), "code-1")
	require.NoError(t, err)

	_, err = uc.UpdateProfile(context.Background(), &dto.UpdateProfileInput{
		MemberID:    resp.Member.ID,
		CareerLevel: "principal",
		JobType:     model.JobTypeBackend,
	})

	assert.ErrorIs(t, err, member.ErrInvalidProfile)
}

func TestGetMember_NotFound(t *testing.T) {
	uc, _, _ := newLoginFixture()

	_, err := uc.GetMember(context.Background(), "missing")

	assert.ErrorIs(t, err, member.ErrNotFound)
}
