// Package repository holds testify mocks of the persistence interfaces.
package repository

import (
	"context"
	"testing"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"

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

// --- UserRepository ---

type MockUserRepository struct{ mock.Mock }

var _ repository.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)

	return ret[*entity.User](args, 0), args.Error(1)
}

func (m *MockUserRepository) FindIdentityByID(ctx context.Context, id string) (*entity.Identity, error) {
	args := m.Called(ctx, id)

	return ret[*entity.Identity](args, 0), args.Error(1)
}

func (m *MockUserRepository) FindByLogin(ctx context.Context, username, email string) (*entity.User, error) {
	args := m.Called(ctx, username, email)

	return ret[*entity.User](args, 0), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)

	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SetRefreshToken(ctx context.Context, id, token string) error {
	return m.Called(ctx, id, token).Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *MockUserRepository) UpdateAccount(ctx context.Context, id, fullName, email string) (*entity.Identity, error) {
	args := m.Called(ctx, id, fullName, email)

	return ret[*entity.Identity](args, 0), args.Error(1)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, id, url string) (*entity.Identity, error) {
	args := m.Called(ctx, id, url)

	return ret[*entity.Identity](args, 0), args.Error(1)
}

func (m *MockUserRepository) UpdateCoverImage(ctx context.Context, id, url string) (*entity.Identity, error) {
	args := m.Called(ctx, id, url)

	return ret[*entity.Identity](args, 0), args.Error(1)
}

func (m *MockUserRepository) AddToWatchHistory(ctx context.Context, userID, videoID string) (bool, error) {
	args := m.Called(ctx, userID, videoID)

	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// --- VideoRepository ---

type MockVideoRepository struct{ mock.Mock }

var _ repository.VideoRepository = (*MockVideoRepository)(nil)

func NewMockVideoRepository(t *testing.T) *MockVideoRepository {
	m := &MockVideoRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockVideoRepository) Create(ctx context.Context, video *entity.Video) error {
	return m.Called(ctx, video).Error(0)
}

func (m *MockVideoRepository) FindByID(ctx context.Context, id string) (*entity.Video, error) {
	args := m.Called(ctx, id)

	return ret[*entity.Video](args, 0), args.Error(1)
}

func (m *MockVideoRepository) Update(ctx context.Context, id, ownerID string, update repository.VideoUpdate) (*entity.Video, error) {
	args := m.Called(ctx, id, ownerID, update)

	return ret[*entity.Video](args, 0), args.Error(1)
}

func (m *MockVideoRepository) Delete(ctx context.Context, id, ownerID string) (*entity.Video, error) {
	args := m.Called(ctx, id, ownerID)

	return ret[*entity.Video](args, 0), args.Error(1)
}

func (m *MockVideoRepository) TogglePublish(ctx context.Context, id, ownerID string) (*entity.Video, error) {
	args := m.Called(ctx, id, ownerID)

	return ret[*entity.Video](args, 0), args.Error(1)
}

func (m *MockVideoRepository) RecordView(ctx context.Context, videoID, viewerID string) (bool, error) {
	args := m.Called(ctx, videoID, viewerID)

	return args.Bool(0), args.Error(1)
}

// --- CommentRepository ---

type MockCommentRepository struct{ mock.Mock }

var _ repository.CommentRepository = (*MockCommentRepository)(nil)

func NewMockCommentRepository(t *testing.T) *MockCommentRepository {
	m := &MockCommentRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, id, ownerID, content string) (*entity.Comment, error) {
	args := m.Called(ctx, id, ownerID, content)

	return ret[*entity.Comment](args, 0), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id, ownerID string) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

func (m *MockCommentRepository) ListIDsByVideo(ctx context.Context, videoID string) ([]string, error) {
	args := m.Called(ctx, videoID)

	return ret[[]string](args, 0), args.Error(1)
}

func (m *MockCommentRepository) DeleteByVideo(ctx context.Context, videoID string) error {
	return m.Called(ctx, videoID).Error(0)
}

// --- TweetRepository ---

type MockTweetRepository struct{ mock.Mock }

var _ repository.TweetRepository = (*MockTweetRepository)(nil)

func NewMockTweetRepository(t *testing.T) *MockTweetRepository {
	m := &MockTweetRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockTweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	return m.Called(ctx, tweet).Error(0)
}

func (m *MockTweetRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}

func (m *MockTweetRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Tweet, error) {
	args := m.Called(ctx, ownerID)

	return ret[[]entity.Tweet](args, 0), args.Error(1)
}

func (m *MockTweetRepository) Update(ctx context.Context, id, ownerID, content string) (*entity.Tweet, error) {
	args := m.Called(ctx, id, ownerID, content)

	return ret[*entity.Tweet](args, 0), args.Error(1)
}

func (m *MockTweetRepository) Delete(ctx context.Context, id, ownerID string) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

// --- PlaylistRepository ---

type MockPlaylistRepository struct{ mock.Mock }

var _ repository.PlaylistRepository = (*MockPlaylistRepository)(nil)

func NewMockPlaylistRepository(t *testing.T) *MockPlaylistRepository {
	m := &MockPlaylistRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	return m.Called(ctx, playlist).Error(0)
}

func (m *MockPlaylistRepository) FindByID(ctx context.Context, id string) (*entity.Playlist, error) {
	args := m.Called(ctx, id)

	return ret[*entity.Playlist](args, 0), args.Error(1)
}

func (m *MockPlaylistRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Playlist, error) {
	args := m.Called(ctx, ownerID)

	return ret[[]entity.Playlist](args, 0), args.Error(1)
}

func (m *MockPlaylistRepository) Update(ctx context.Context, id, ownerID, name, description string) (*entity.Playlist, error) {
	args := m.Called(ctx, id, ownerID, name, description)

	return ret[*entity.Playlist](args, 0), args.Error(1)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id, ownerID string) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

func (m *MockPlaylistRepository) AddVideo(ctx context.Context, id, ownerID, videoID string) (*entity.Playlist, error) {
	args := m.Called(ctx, id, ownerID, videoID)

	return ret[*entity.Playlist](args, 0), args.Error(1)
}

func (m *MockPlaylistRepository) RemoveVideo(ctx context.Context, id, ownerID, videoID string) (*entity.Playlist, error) {
	args := m.Called(ctx, id, ownerID, videoID)

	return ret[*entity.Playlist](args, 0), args.Error(1)
}

// --- LikeRepository ---

type MockLikeRepository struct{ mock.Mock }

var _ repository.LikeRepository = (*MockLikeRepository)(nil)

func NewMockLikeRepository(t *testing.T) *MockLikeRepository {
	m := &MockLikeRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockLikeRepository) Find(ctx context.Context, subject entity.LikeSubject, subjectID, userID string) (*entity.Like, error) {
	args := m.Called(ctx, subject, subjectID, userID)

	return ret[*entity.Like](args, 0), args.Error(1)
}

func (m *MockLikeRepository) Create(ctx context.Context, like *entity.Like) error {
	return m.Called(ctx, like).Error(0)
}

func (m *MockLikeRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockLikeRepository) DeleteBySubject(ctx context.Context, subject entity.LikeSubject, subjectID string) error {
	return m.Called(ctx, subject, subjectID).Error(0)
}

func (m *MockLikeRepository) DeleteBySubjects(ctx context.Context, subject entity.LikeSubject, subjectIDs []string) error {
	return m.Called(ctx, subject, subjectIDs).Error(0)
}

// --- SubscriptionRepository ---

type MockSubscriptionRepository struct{ mock.Mock }

var _ repository.SubscriptionRepository = (*MockSubscriptionRepository)(nil)

func NewMockSubscriptionRepository(t *testing.T) *MockSubscriptionRepository {
	m := &MockSubscriptionRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockSubscriptionRepository) Find(ctx context.Context, subscriberID, channelID string) (*entity.Subscription, error) {
	args := m.Called(ctx, subscriberID, channelID)

	return ret[*entity.Subscription](args, 0), args.Error(1)
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *MockSubscriptionRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// --- HealthRepository ---

type MockHealthRepository struct{ mock.Mock }

var _ repository.HealthRepository = (*MockHealthRepository)(nil)

func NewMockHealthRepository(t *testing.T) *MockHealthRepository {
	m := &MockHealthRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockHealthRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
