package usecase

import (
	"context"

	"vidtube/internal/domain/entity"
)

// VideoLikes is the like rollup of one video.
type VideoLikes struct {
	Likes []entity.LikedVideo
	Count int64
}

type LikeUsecase interface {
	// Toggle reports whether the subject is liked after the call.
	Toggle(ctx context.Context, subject entity.LikeSubject, subjectID, userID string) (bool, error)
	LikedVideos(ctx context.Context, userID string) ([]entity.LikedVideo, error)
	LikedComments(ctx context.Context, userID string) ([]entity.LikedComment, error)
	LikedTweets(ctx context.Context, userID string) ([]entity.LikedTweet, error)
	VideoLikes(ctx context.Context, videoID string) (*VideoLikes, error)
}

type SubscriptionUsecase interface {
	// Toggle reports whether the subscriber follows the channel after the call.
	Toggle(ctx context.Context, channelID, subscriberID string) (bool, error)
	Subscribers(ctx context.Context, channelID string) ([]entity.SubscriberSummary, error)
	SubscribedChannels(ctx context.Context, subscriberID string) ([]entity.ChannelSummary, error)
}

type DashboardUsecase interface {
	Stats(ctx context.Context, channelID string) (*entity.DashboardStats, error)
	ChannelVideos(ctx context.Context, channelID string, page, limit int) (*entity.Page[entity.Video], error)
}
