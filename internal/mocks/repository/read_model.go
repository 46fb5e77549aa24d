package repository

import (
	"context"
	"testing"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

type MockReadModelRepository struct{ mock.Mock }

var _ repository.ReadModelRepository = (*MockReadModelRepository)(nil)

func NewMockReadModelRepository(t *testing.T) *MockReadModelRepository {
	m := &MockReadModelRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockReadModelRepository) ChannelProfile(ctx context.Context, username, requesterID string) (*entity.ChannelProfile, error) {
	args := m.Called(ctx, username, requesterID)

	return ret[*entity.ChannelProfile](args, 0), args.Error(1)
}

func (m *MockReadModelRepository) DashboardStats(ctx context.Context, channelID string) (*entity.DashboardStats, error) {
	args := m.Called(ctx, channelID)

	return ret[*entity.DashboardStats](args, 0), args.Error(1)
}

func (m *MockReadModelRepository) WatchHistory(ctx context.Context, userID string) ([]entity.VideoView, error) {
	args := m.Called(ctx, userID)

	return ret[[]entity.VideoView](args, 0), args.Error(1)
}

func (m *MockReadModelRepository) ListVideos(ctx context.Context, filter entity.VideoFilter, page entity.PageRequest) (*entity.Page[entity.VideoView], error) {
	args := m.Called(ctx, filter, page)

	return ret[*entity.Page[entity.VideoView]](args, 0), args.Error(1)
}

func (m *MockReadModelRepository) ChannelVideos(ctx context.Context, channelID string, page entity.PageRequest) (*entity.Page[entity.Video], error) {
	args := m.Called(ctx, channelID, page)

	return ret[*entity.Page[entity.Video]](args, 0), args.Error(1)
}

func (m *MockReadModelRepository) VideoComments(ctx context.Context, videoID string, page entity.PageRequest) (*entity.Page[entity.CommentView], error) {
	args := m.Called(ctx, videoID, page)

	return ret[*entity.Page[entity.CommentView]](args, 0), args.Error(1)
}

func (m *MockReadModelRepository) LikedVideos(ctx context.Context, userID string) ([]entity.LikedVideo, error) {
	args := m.Called(ctx, userID)

	return ret[[]entity.LikedVideo](args, 0), args.Error(1)
}

func (m *MockReadModelRepository) LikedComments(ctx context.Context, userID string) ([]entity.LikedComment, error) {
	args := m.Called(ctx, userID)

	return ret[[]entity.LikedComment](args, 0), args.Error(1)
}

func (m *MockReadModelRepository) LikedTweets(ctx context.Context, userID string) ([]entity.LikedTweet, error) {
	args := m.Called(ctx, userID)

	return ret[[]entity.LikedTweet](args, 0), args.Error(1)
}

func (m *MockReadModelRepository) VideoLikes(ctx context.Context, videoID string) ([]entity.LikedVideo, int64, error) {
	args := m.Called(ctx, videoID)

	return ret[[]entity.LikedVideo](args, 0), ret[int64](args, 1), args.Error(2)
}

func (m *MockReadModelRepository) ChannelSubscribers(ctx context.Context, channelID string) ([]entity.SubscriberSummary, error) {
	args := m.Called(ctx, channelID)

	return ret[[]entity.SubscriberSummary](args, 0), args.Error(1)
}

func (m *MockReadModelRepository) SubscribedChannels(ctx context.Context, subscriberID string) ([]entity.ChannelSummary, error) {
	args := m.Called(ctx, subscriberID)

	return ret[[]entity.ChannelSummary](args, 0), args.Error(1)
}
