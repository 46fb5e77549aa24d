package repository

import (
	"context"

	"vidtube/internal/domain/entity"
)

// ReadModelRepository builds denormalized views by joining collections at read time.
// It never mutates state. Empty results are empty slices; only singular lookups report not found.
type ReadModelRepository interface {
	// ChannelProfile returns ErrUserNotFound when no user has the username.
	ChannelProfile(ctx context.Context, username, requesterID string) (*entity.ChannelProfile, error)

	// DashboardStats returns zeroed totals for a channel without videos.
	DashboardStats(ctx context.Context, channelID string) (*entity.DashboardStats, error)

	// WatchHistory keeps the order of the user's watch history.
	WatchHistory(ctx context.Context, userID string) ([]entity.VideoView, error)

	ListVideos(ctx context.Context, filter entity.VideoFilter, page entity.PageRequest) (*entity.Page[entity.VideoView], error)
	ChannelVideos(ctx context.Context, channelID string, page entity.PageRequest) (*entity.Page[entity.Video], error)
	VideoComments(ctx context.Context, videoID string, page entity.PageRequest) (*entity.Page[entity.CommentView], error)

	LikedVideos(ctx context.Context, userID string) ([]entity.LikedVideo, error)
	LikedComments(ctx context.Context, userID string) ([]entity.LikedComment, error)
	LikedTweets(ctx context.Context, userID string) ([]entity.LikedTweet, error)
	VideoLikes(ctx context.Context, videoID string) ([]entity.LikedVideo, int64, error)

	ChannelSubscribers(ctx context.Context, channelID string) ([]entity.SubscriberSummary, error)
	SubscribedChannels(ctx context.Context, subscriberID string) ([]entity.ChannelSummary, error)
}
