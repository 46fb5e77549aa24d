package mongo

import (
	"context"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/errors"
	"vidtube/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

type readModelRepository struct {
	db *mongodriver.Database
}

func NewReadModelRepository(db *mongodriver.Database) repository.ReadModelRepository {
	return &readModelRepository{db: db}
}

// aggregate runs a pipeline and decodes every result document into out.
func (repo *readModelRepository) aggregate(ctx context.Context, collection string, pipeline mongodriver.Pipeline, out any) error {
	cursor, err := repo.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "aggregate "+collection)
	}
	if err := cursor.All(ctx, out); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "decode "+collection+" aggregation")
	}

	return nil
}

// aggregatePage runs a $facet pipeline, which always yields exactly one document.
func aggregatePage[M any](ctx context.Context, repo *readModelRepository, collection string, pipeline mongodriver.Pipeline) (*model.FacetModel[M], error) {
	var facets []model.FacetModel[M]
	if err := repo.aggregate(ctx, collection, pipeline, &facets); err != nil {
		return nil, err
	}
	if len(facets) == 0 {
		return &model.FacetModel[M]{}, nil
	}

	return &facets[0], nil
}

func (repo *readModelRepository) ChannelProfile(ctx context.Context, username, requesterID string) (*entity.ChannelProfile, error) {
	requester := primitive.NilObjectID
	if requesterID != "" {
		oid, err := parseID(requesterID)
		if err != nil {
			return nil, err
		}
		requester = oid
	}

	var profiles []model.ChannelProfileModel
	if err := repo.aggregate(ctx, model.UsersCollection, channelProfilePipeline(username, requester), &profiles); err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, errors.Wrap(repository.ErrUserNotFound, username)
	}

	p := profiles[0]

	return &entity.ChannelProfile{
		ID:                      p.ID.Hex(),
		FullName:                p.FullName,
		Username:                p.Username,
		Email:                   p.Email,
		Avatar:                  p.Avatar,
		CoverImage:              p.CoverImage,
		SubscribersCount:        p.SubscribersCount,
		ChannelsSubscribedCount: p.ChannelsSubscribedCount,
		IsSubscribed:            p.IsSubscribed,
	}, nil
}

func (repo *readModelRepository) DashboardStats(ctx context.Context, channelID string) (*entity.DashboardStats, error) {
	channel, err := parseID(channelID)
	if err != nil {
		return nil, err
	}

	var stats []model.DashboardStatsModel
	if err := repo.aggregate(ctx, model.VideosCollection, dashboardStatsPipeline(channel), &stats); err != nil {
		return nil, err
	}
	if len(stats) == 0 {
		return &entity.DashboardStats{}, nil
	}

	s := stats[0]

	return &entity.DashboardStats{
		TotalViews:       s.TotalViews,
		TotalVideos:      s.TotalVideos,
		TotalSubscribers: s.TotalSubscribers,
		TotalLikes:       s.TotalLikes,
	}, nil
}

func (repo *readModelRepository) WatchHistory(ctx context.Context, userID string) ([]entity.VideoView, error) {
	user, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	var videos []model.VideoViewModel
	if err := repo.aggregate(ctx, model.UsersCollection, watchHistoryPipeline(user), &videos); err != nil {
		return nil, err
	}

	return mapAll(videos, toVideoView), nil
}

func (repo *readModelRepository) ListVideos(ctx context.Context, filter entity.VideoFilter, page entity.PageRequest) (*entity.Page[entity.VideoView], error) {
	var owner *primitive.ObjectID
	if filter.OwnerID != "" {
		oid, err := parseID(filter.OwnerID)
		if err != nil {
			return nil, err
		}
		owner = &oid
	}

	facet, err := aggregatePage[model.VideoViewModel](ctx, repo, model.VideosCollection, videoListPipeline(filter, owner, page))
	if err != nil {
		return nil, err
	}

	return &entity.Page[entity.VideoView]{
		Items:       mapAll(facet.Data, toVideoView),
		Total:       facet.Total(),
		PageRequest: page,
	}, nil
}

func (repo *readModelRepository) ChannelVideos(ctx context.Context, channelID string, page entity.PageRequest) (*entity.Page[entity.Video], error) {
	channel, err := parseID(channelID)
	if err != nil {
		return nil, err
	}

	facet, err := aggregatePage[model.VideoModel](ctx, repo, model.VideosCollection, channelVideosPipeline(channel, page))
	if err != nil {
		return nil, err
	}

	return &entity.Page[entity.Video]{
		Items:       mapAll(facet.Data, func(m *model.VideoModel) entity.Video { return *toVideoDomain(m) }),
		Total:       facet.Total(),
		PageRequest: page,
	}, nil
}

func (repo *readModelRepository) VideoComments(ctx context.Context, videoID string, page entity.PageRequest) (*entity.Page[entity.CommentView], error) {
	video, err := parseID(videoID)
	if err != nil {
		return nil, err
	}

	facet, err := aggregatePage[model.CommentViewModel](ctx, repo, model.CommentsCollection, videoCommentsPipeline(video, page))
	if err != nil {
		return nil, err
	}

	return &entity.Page[entity.CommentView]{
		Items:       mapAll(facet.Data, toCommentView),
		Total:       facet.Total(),
		PageRequest: page,
	}, nil
}

func likedByFilter(userID string) (bson.D, error) {
	user, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	return bson.D{{Key: "likedBy", Value: user}}, nil
}

func (repo *readModelRepository) LikedVideos(ctx context.Context, userID string) ([]entity.LikedVideo, error) {
	filter, err := likedByFilter(userID)
	if err != nil {
		return nil, err
	}

	var likes []model.LikedVideoModel
	if err := repo.aggregate(ctx, model.LikesCollection, likeRollupPipeline(filter, entity.LikeVideo), &likes); err != nil {
		return nil, err
	}

	return mapAll(likes, toLikedVideo), nil
}

func (repo *readModelRepository) LikedComments(ctx context.Context, userID string) ([]entity.LikedComment, error) {
	filter, err := likedByFilter(userID)
	if err != nil {
		return nil, err
	}

	var likes []model.LikedCommentModel
	if err := repo.aggregate(ctx, model.LikesCollection, likeRollupPipeline(filter, entity.LikeComment), &likes); err != nil {
		return nil, err
	}

	return mapAll(likes, toLikedComment), nil
}

func (repo *readModelRepository) LikedTweets(ctx context.Context, userID string) ([]entity.LikedTweet, error) {
	filter, err := likedByFilter(userID)
	if err != nil {
		return nil, err
	}

	var likes []model.LikedTweetModel
	if err := repo.aggregate(ctx, model.LikesCollection, likeRollupPipeline(filter, entity.LikeTweet), &likes); err != nil {
		return nil, err
	}

	return mapAll(likes, toLikedTweet), nil
}

// VideoLikes counts only likes whose video still exists.
func (repo *readModelRepository) VideoLikes(ctx context.Context, videoID string) ([]entity.LikedVideo, int64, error) {
	video, err := parseID(videoID)
	if err != nil {
		return nil, 0, err
	}

	var likes []model.LikedVideoModel
	filter := bson.D{{Key: "video", Value: video}}
	if err := repo.aggregate(ctx, model.LikesCollection, likeRollupPipeline(filter, entity.LikeVideo), &likes); err != nil {
		return nil, 0, err
	}

	return mapAll(likes, toLikedVideo), int64(len(likes)), nil
}

func (repo *readModelRepository) ChannelSubscribers(ctx context.Context, channelID string) ([]entity.SubscriberSummary, error) {
	channel, err := parseID(channelID)
	if err != nil {
		return nil, err
	}

	var subs []model.SubscriberSummaryModel
	if err := repo.aggregate(ctx, model.SubscriptionsCollection, subscriberListPipeline(channel), &subs); err != nil {
		return nil, err
	}

	return mapAll(subs, func(m *model.SubscriberSummaryModel) entity.SubscriberSummary {
		return entity.SubscriberSummary{FullName: m.FullName, Email: m.Email}
	}), nil
}

func (repo *readModelRepository) SubscribedChannels(ctx context.Context, subscriberID string) ([]entity.ChannelSummary, error) {
	subscriber, err := parseID(subscriberID)
	if err != nil {
		return nil, err
	}

	var channels []model.ChannelSummaryModel
	if err := repo.aggregate(ctx, model.SubscriptionsCollection, subscribedChannelsPipeline(subscriber), &channels); err != nil {
		return nil, err
	}

	return mapAll(channels, func(m *model.ChannelSummaryModel) entity.ChannelSummary {
		return entity.ChannelSummary{
			FullName:   m.FullName,
			Email:      m.Email,
			Avatar:     m.Avatar,
			CoverImage: m.CoverImage,
		}
	}), nil
}
