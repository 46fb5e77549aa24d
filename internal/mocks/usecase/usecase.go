// Package usecase holds testify mocks of the application use cases.
package usecase

import (
	"context"
	"testing"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/service"
	"vidtube/internal/usecase"

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

// --- AuthUsecase ---

type MockAuthUsecase struct{ mock.Mock }

var _ usecase.AuthUsecase = (*MockAuthUsecase)(nil)

func NewMockAuthUsecase(t *testing.T) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	register(t, &m.Mock)

	return m
}

func (m *MockAuthUsecase) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.User, error) {
	args := m.Called(ctx, input)

	return ret[*entity.User](args, 0), args.Error(1)
}

func (m *MockAuthUsecase) Signin(ctx context.Context, input *usecase.SigninInput) (*usecase.SigninOutput, error) {
	args := m.Called(ctx, input)

	return ret[*usecase.SigninOutput](args, 0), args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockAuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	args := m.Called(ctx, refreshToken)

	return ret[*entity.TokenPair](args, 0), args.Error(1)
}

func (m *MockAuthUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.Identity, error) {
	args := m.Called(ctx, accessToken)

	return ret[*entity.Identity](args, 0), args.Error(1)
}

// --- UserUsecase ---

type MockUserUsecase struct{ mock.Mock }

var _ usecase.UserUsecase = (*MockUserUsecase)(nil)

func NewMockUserUsecase(t *testing.T) *MockUserUsecase {
	m := &MockUserUsecase{}
	register(t, &m.Mock)

	return m
}

func (m *MockUserUsecase) ChangePassword(ctx context.Context, userID string, input *usecase.ChangePasswordInput) error {
	return m.Called(ctx, userID, input).Error(0)
}

func (m *MockUserUsecase) CurrentUser(ctx context.Context, userID string) (*entity.Identity, error) {
	args := m.Called(ctx, userID)

	return ret[*entity.Identity](args, 0), args.Error(1)
}

func (m *MockUserUsecase) UpdateAccount(ctx context.Context, userID string, input *usecase.UpdateAccountInput) (*entity.Identity, error) {
	args := m.Called(ctx, userID, input)

	return ret[*entity.Identity](args, 0), args.Error(1)
}

func (m *MockUserUsecase) UpdateAvatar(ctx context.Context, userID string, asset *service.Asset) (*entity.Identity, error) {
	args := m.Called(ctx, userID, asset)

	return ret[*entity.Identity](args, 0), args.Error(1)
}

func (m *MockUserUsecase) UpdateCoverImage(ctx context.Context, userID string, asset *service.Asset) (*entity.Identity, error) {
	args := m.Called(ctx, userID, asset)

	return ret[*entity.Identity](args, 0), args.Error(1)
}

func (m *MockUserUsecase) ChannelProfile(ctx context.Context, username, requesterID string) (*entity.ChannelProfile, error) {
	args := m.Called(ctx, username, requesterID)

	return ret[*entity.ChannelProfile](args, 0), args.Error(1)
}

func (m *MockUserUsecase) WatchHistory(ctx context.Context, userID string) ([]entity.VideoView, error) {
	args := m.Called(ctx, userID)

	return ret[[]entity.VideoView](args, 0), args.Error(1)
}

func (m *MockUserUsecase) DeleteAccount(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

// --- VideoUsecase ---

type MockVideoUsecase struct{ mock.Mock }

var _ usecase.VideoUsecase = (*MockVideoUsecase)(nil)

func NewMockVideoUsecase(t *testing.T) *MockVideoUsecase {
	m := &MockVideoUsecase{}
	register(t, &m.Mock)

	return m
}

func (m *MockVideoUsecase) List(ctx context.Context, input *usecase.ListVideosInput) (*entity.Page[entity.VideoView], error) {
	args := m.Called(ctx, input)

	return ret[*entity.Page[entity.VideoView]](args, 0), args.Error(1)
}

func (m *MockVideoUsecase) Publish(ctx context.Context, input *usecase.PublishVideoInput) (*entity.Video, error) {
	args := m.Called(ctx, input)

	return ret[*entity.Video](args, 0), args.Error(1)
}

func (m *MockVideoUsecase) Get(ctx context.Context, videoID, viewerID string) (*entity.Video, error) {
	args := m.Called(ctx, videoID, viewerID)

	return ret[*entity.Video](args, 0), args.Error(1)
}

func (m *MockVideoUsecase) Update(ctx context.Context, videoID, ownerID string, input *usecase.UpdateVideoInput) (*entity.Video, error) {
	args := m.Called(ctx, videoID, ownerID, input)

	return ret[*entity.Video](args, 0), args.Error(1)
}

func (m *MockVideoUsecase) Delete(ctx context.Context, videoID, ownerID string) error {
	return m.Called(ctx, videoID, ownerID).Error(0)
}

func (m *MockVideoUsecase) TogglePublish(ctx context.Context, videoID, ownerID string) (*entity.Video, error) {
	args := m.Called(ctx, videoID, ownerID)

	return ret[*entity.Video](args, 0), args.Error(1)
}

// --- CommentUsecase ---

type MockCommentUsecase struct{ mock.Mock }

var _ usecase.CommentUsecase = (*MockCommentUsecase)(nil)

func NewMockCommentUsecase(t *testing.T) *MockCommentUsecase {
	m := &MockCommentUsecase{}
	register(t, &m.Mock)

	return m
}

func (m *MockCommentUsecase) List(ctx context.Context, videoID string, page, limit int) (*entity.Page[entity.CommentView], error) {
	args := m.Called(ctx, videoID, page, limit)

	return ret[*entity.Page[entity.CommentView]](args, 0), args.Error(1)
}

func (m *MockCommentUsecase) Add(ctx context.Context, videoID, ownerID, content string) (*entity.Comment, error) {
	args := m.Called(ctx, videoID, ownerID, content)

	return ret[*entity.Comment](args, 0), args.Error(1)
}

func (m *MockCommentUsecase) Update(ctx context.Context, commentID, ownerID, content string) (*entity.Comment, error) {
	args := m.Called(ctx, commentID, ownerID, content)

	return ret[*entity.Comment](args, 0), args.Error(1)
}

func (m *MockCommentUsecase) Delete(ctx context.Context, commentID, ownerID string) error {
	return m.Called(ctx, commentID, ownerID).Error(0)
}

// --- TweetUsecase ---

type MockTweetUsecase struct{ mock.Mock }

var _ usecase.TweetUsecase = (*MockTweetUsecase)(nil)

func NewMockTweetUsecase(t *testing.T) *MockTweetUsecase {
	m := &MockTweetUsecase{}
	register(t, &m.Mock)

	return m
}

func (m *MockTweetUsecase) Create(ctx context.Context, ownerID, content string) (*entity.Tweet, error) {
	args := m.Called(ctx, ownerID, content)

	return ret[*entity.Tweet](args, 0), args.Error(1)
}

func (m *MockTweetUsecase) ListByUser(ctx context.Context, userID string) ([]entity.Tweet, error) {
	args := m.Called(ctx, userID)

	return ret[[]entity.Tweet](args, 0), args.Error(1)
}

func (m *MockTweetUsecase) Update(ctx context.Context, tweetID, ownerID, content string) (*entity.Tweet, error) {
	args := m.Called(ctx, tweetID, ownerID, content)

	return ret[*entity.Tweet](args, 0), args.Error(1)
}

func (m *MockTweetUsecase) Delete(ctx context.Context, tweetID, ownerID string) error {
	return m.Called(ctx, tweetID, ownerID).Error(0)
}

// --- PlaylistUsecase ---

type MockPlaylistUsecase struct{ mock.Mock }

var _ usecase.PlaylistUsecase = (*MockPlaylistUsecase)(nil)

func NewMockPlaylistUsecase(t *testing.T) *MockPlaylistUsecase {
	m := &MockPlaylistUsecase{}
	register(t, &m.Mock)

	return m
}

func (m *MockPlaylistUsecase) Create(ctx context.Context, ownerID string, input *usecase.PlaylistInput) (*entity.Playlist, error) {
	args := m.Called(ctx, ownerID, input)

	return ret[*entity.Playlist](args, 0), args.Error(1)
}

func (m *MockPlaylistUsecase) Get(ctx context.Context, playlistID string) (*entity.Playlist, error) {
	args := m.Called(ctx, playlistID)

	return ret[*entity.Playlist](args, 0), args.Error(1)
}

func (m *MockPlaylistUsecase) ListByUser(ctx context.Context, userID string) ([]entity.Playlist, error) {
	args := m.Called(ctx, userID)

	return ret[[]entity.Playlist](args, 0), args.Error(1)
}

func (m *MockPlaylistUsecase) Update(ctx context.Context, playlistID, ownerID string, input *usecase.PlaylistInput) (*entity.Playlist, error) {
	args := m.Called(ctx, playlistID, ownerID, input)

	return ret[*entity.Playlist](args, 0), args.Error(1)
}

func (m *MockPlaylistUsecase) Delete(ctx context.Context, playlistID, ownerID string) error {
	return m.Called(ctx, playlistID, ownerID).Error(0)
}

func (m *MockPlaylistUsecase) AddVideo(ctx context.Context, playlistID, ownerID, videoID string) (*entity.Playlist, error) {
	args := m.Called(ctx, playlistID, ownerID, videoID)

	return ret[*entity.Playlist](args, 0), args.Error(1)
}

func (m *MockPlaylistUsecase) RemoveVideo(ctx context.Context, playlistID, ownerID, videoID string) (*entity.Playlist, error) {
	args := m.Called(ctx, playlistID, ownerID, videoID)

	return ret[*entity.Playlist](args, 0), args.Error(1)
}

// --- LikeUsecase ---

type MockLikeUsecase struct{ mock.Mock }

var _ usecase.LikeUsecase = (*MockLikeUsecase)(nil)

func NewMockLikeUsecase(t *testing.T) *MockLikeUsecase {
	m := &MockLikeUsecase{}
	register(t, &m.Mock)

	return m
}

func (m *MockLikeUsecase) Toggle(ctx context.Context, subject entity.LikeSubject, subjectID, userID string) (bool, error) {
	args := m.Called(ctx, subject, subjectID, userID)

	return args.Bool(0), args.Error(1)
}

func (m *MockLikeUsecase) LikedVideos(ctx context.Context, userID string) ([]entity.LikedVideo, error) {
	args := m.Called(ctx, userID)

	return ret[[]entity.LikedVideo](args, 0), args.Error(1)
}

func (m *MockLikeUsecase) LikedComments(ctx context.Context, userID string) ([]entity.LikedComment, error) {
	args := m.Called(ctx, userID)

	return ret[[]entity.LikedComment](args, 0), args.Error(1)
}

func (m *MockLikeUsecase) LikedTweets(ctx context.Context, userID string) ([]entity.LikedTweet, error) {
	args := m.Called(ctx, userID)

	return ret[[]entity.LikedTweet](args, 0), args.Error(1)
}

func (m *MockLikeUsecase) VideoLikes(ctx context.Context, videoID string) (*usecase.VideoLikes, error) {
	args := m.Called(ctx, videoID)

	return ret[*usecase.VideoLikes](args, 0), args.Error(1)
}

// --- SubscriptionUsecase ---

type MockSubscriptionUsecase struct{ mock.Mock }

var _ usecase.SubscriptionUsecase = (*MockSubscriptionUsecase)(nil)

func NewMockSubscriptionUsecase(t *testing.T) *MockSubscriptionUsecase {
	m := &MockSubscriptionUsecase{}
	register(t, &m.Mock)

	return m
}

func (m *MockSubscriptionUsecase) Toggle(ctx context.Context, channelID, subscriberID string) (bool, error) {
	args := m.Called(ctx, channelID, subscriberID)

	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionUsecase) Subscribers(ctx context.Context, channelID string) ([]entity.SubscriberSummary, error) {
	args := m.Called(ctx, channelID)

	return ret[[]entity.SubscriberSummary](args, 0), args.Error(1)
}

func (m *MockSubscriptionUsecase) SubscribedChannels(ctx context.Context, subscriberID string) ([]entity.ChannelSummary, error) {
	args := m.Called(ctx, subscriberID)

	return ret[[]entity.ChannelSummary](args, 0), args.Error(1)
}

// --- DashboardUsecase ---

type MockDashboardUsecase struct{ mock.Mock }

var _ usecase.DashboardUsecase = (*MockDashboardUsecase)(nil)

func NewMockDashboardUsecase(t *testing.T) *MockDashboardUsecase {
	m := &MockDashboardUsecase{}
	register(t, &m.Mock)

	return m
}

func (m *MockDashboardUsecase) Stats(ctx context.Context, channelID string) (*entity.DashboardStats, error) {
	args := m.Called(ctx, channelID)

	return ret[*entity.DashboardStats](args, 0), args.Error(1)
}

func (m *MockDashboardUsecase) ChannelVideos(ctx context.Context, channelID string, page, limit int) (*entity.Page[entity.Video], error) {
	args := m.Called(ctx, channelID, page, limit)

	return ret[*entity.Page[entity.Video]](args, 0), args.Error(1)
}

// --- HealthUsecase ---

type MockHealthUsecase struct{ mock.Mock }

var _ usecase.HealthUsecase = (*MockHealthUsecase)(nil)

func NewMockHealthUsecase(t *testing.T) *MockHealthUsecase {
	m := &MockHealthUsecase{}
	register(t, &m.Mock)

	return m
}

func (m *MockHealthUsecase) Check(ctx context.Context) *usecase.HealthStatus {
	return ret[*usecase.HealthStatus](m.Called(ctx), 0)
}
