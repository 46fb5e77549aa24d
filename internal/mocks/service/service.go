// Package service holds testify mocks of the domain service interfaces.
package service

import (
	"context"
	"testing"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

func ret[T any](args mock.Arguments, i int) T {
	v, _ := args.Get(i).(T)

	return v
}

func register(t *testing.T, m *mock.Mock) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// --- TokenService ---

type MockTokenService struct{ mock.Mock }

var _ service.TokenService = (*MockTokenService)(nil)

func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	register(t, &m.Mock)

	return m
}

func (m *MockTokenService) IssueAccessToken(user *entity.User) (string, error) {
	args := m.Called(user)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) IssueRefreshToken(user *entity.User) (string, error) {
	args := m.Called(user)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) VerifyAccessToken(token string) (*entity.AccessClaims, error) {
	args := m.Called(token)

	return ret[*entity.AccessClaims](args, 0), args.Error(1)
}

func (m *MockTokenService) VerifyRefreshToken(token string) (*entity.RefreshClaims, error) {
	args := m.Called(token)

	return ret[*entity.RefreshClaims](args, 0), args.Error(1)
}

// --- PasswordHasher ---

type MockPasswordHasher struct{ mock.Mock }

var _ service.PasswordHasher = (*MockPasswordHasher)(nil)

func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	register(t, &m.Mock)

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// --- AssetStorage ---

type MockAssetStorage struct{ mock.Mock }

var _ service.AssetStorage = (*MockAssetStorage)(nil)

func NewMockAssetStorage(t *testing.T) *MockAssetStorage {
	m := &MockAssetStorage{}
	register(t, &m.Mock)

	return m
}

func (m *MockAssetStorage) Upload(ctx context.Context, asset service.Asset) (*service.StoredAsset, error) {
	args := m.Called(ctx, asset)

	return ret[*service.StoredAsset](args, 0), args.Error(1)
}

func (m *MockAssetStorage) Delete(ctx context.Context, url string, kind service.AssetKind) error {
	return m.Called(ctx, url, kind).Error(0)
}

// --- StatsCache ---

type MockStatsCache struct{ mock.Mock }

var _ service.StatsCache = (*MockStatsCache)(nil)

func NewMockStatsCache(t *testing.T) *MockStatsCache {
	m := &MockStatsCache{}
	register(t, &m.Mock)

	return m
}

func (m *MockStatsCache) Get(ctx context.Context, channelID string) (*entity.DashboardStats, error) {
	args := m.Called(ctx, channelID)

	return ret[*entity.DashboardStats](args, 0), args.Error(1)
}

func (m *MockStatsCache) Set(ctx context.Context, channelID string, stats *entity.DashboardStats) error {
	return m.Called(ctx, channelID, stats).Error(0)
}

func (m *MockStatsCache) Invalidate(ctx context.Context, channelID string) error {
	return m.Called(ctx, channelID).Error(0)
}
