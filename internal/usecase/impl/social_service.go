package impl

import (
	"context"
	"log/slog"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"
	"vidtube/internal/usecase"

	"go.uber.org/fx"
)

// --- Likes ---

type likeService struct {
	likeRepo      repository.LikeRepository
	videoRepo     repository.VideoRepository
	commentRepo   repository.CommentRepository
	tweetRepo     repository.TweetRepository
	readModelRepo repository.ReadModelRepository
	statsCache    service.StatsCache
	logger        *slog.Logger
}

type LikeServiceParams struct {
	fx.In

	LikeRepo      repository.LikeRepository
	VideoRepo     repository.VideoRepository
	CommentRepo   repository.CommentRepository
	TweetRepo     repository.TweetRepository
	ReadModelRepo repository.ReadModelRepository
	StatsCache    service.StatsCache
	Logger        *slog.Logger
}

func NewLikeService(params LikeServiceParams) usecase.LikeUsecase {
	return &likeService{
		likeRepo:      params.LikeRepo,
		videoRepo:     params.VideoRepo,
		commentRepo:   params.CommentRepo,
		tweetRepo:     params.TweetRepo,
		readModelRepo: params.ReadModelRepo,
		statsCache:    params.StatsCache,
		logger:        params.Logger,
	}
}

// subjectOwner checks that the subject exists. For videos it also returns the
// owning channel, whose like total changes with the toggle.
func (srv *likeService) subjectOwner(ctx context.Context, subject entity.LikeSubject, subjectID string) (string, error) {
	switch subject {
	case entity.LikeVideo:
		video, err := srv.videoRepo.FindByID(ctx, subjectID)
		if err != nil {
			return "", mapRepoError(err)
		}

		return video.Owner, nil
	case entity.LikeComment:
		found, err := srv.commentRepo.Exists(ctx, subjectID)

		return "", existsOr(found, err, domainerrors.ErrCommentNotFound, subjectID)
	case entity.LikeTweet:
		found, err := srv.tweetRepo.Exists(ctx, subjectID)

		return "", existsOr(found, err, domainerrors.ErrTweetNotFound, subjectID)
	default:
		return "", errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("unknown like subject " + string(subject)))
	}
}

func existsOr(found bool, err error, notFound *domainerrors.BaseError, id string) error {
	if err != nil {
		return mapRepoError(err)
	}
	if !found {
		return errors.Wrap(notFound, id)
	}

	return nil
}

// Toggle removes an existing like or creates one. A concurrent duplicate create
// is reported as liked since the unique index already holds the pair.
func (srv *likeService) Toggle(ctx context.Context, subject entity.LikeSubject, subjectID, userID string) (bool, error) {
	owner, err := srv.subjectOwner(ctx, subject, subjectID)
	if err != nil {
		return false, err
	}

	liked, err := srv.toggle(ctx, subject, subjectID, userID)
	if err != nil {
		return false, err
	}
	if owner != "" {
		invalidateStats(ctx, srv.statsCache, deliverycontext.GetLoggerOrDefault(ctx, srv.logger), owner)
	}

	return liked, nil
}

func (srv *likeService) toggle(ctx context.Context, subject entity.LikeSubject, subjectID, userID string) (bool, error) {
	existing, err := srv.likeRepo.Find(ctx, subject, subjectID, userID)
	switch {
	case err == nil:
		if err := srv.likeRepo.Delete(ctx, existing.ID); err != nil && !errors.Is(err, repository.ErrLikeNotFound) {
			return false, mapRepoError(err)
		}

		return false, nil
	case !errors.Is(err, repository.ErrLikeNotFound):
		return false, mapRepoError(err)
	}

	like := &entity.Like{Subject: subject, SubjectID: subjectID, LikedBy: userID}
	if err := srv.likeRepo.Create(ctx, like); err != nil && !errors.Is(err, repository.ErrLikeExists) {
		return false, mapRepoError(err)
	}

	return true, nil
}

func (srv *likeService) LikedVideos(ctx context.Context, userID string) ([]entity.LikedVideo, error) {
	likes, err := srv.readModelRepo.LikedVideos(ctx, userID)

	return likes, mapRepoError(err)
}

func (srv *likeService) LikedComments(ctx context.Context, userID string) ([]entity.LikedComment, error) {
	likes, err := srv.readModelRepo.LikedComments(ctx, userID)

	return likes, mapRepoError(err)
}

func (srv *likeService) LikedTweets(ctx context.Context, userID string) ([]entity.LikedTweet, error) {
	likes, err := srv.readModelRepo.LikedTweets(ctx, userID)

	return likes, mapRepoError(err)
}

func (srv *likeService) VideoLikes(ctx context.Context, videoID string) (*usecase.VideoLikes, error) {
	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		return nil, mapRepoError(err)
	}

	likes, count, err := srv.readModelRepo.VideoLikes(ctx, videoID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	return &usecase.VideoLikes{Likes: likes, Count: count}, nil
}

// --- Subscriptions ---

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	userRepo         repository.UserRepository
	readModelRepo    repository.ReadModelRepository
	statsCache       service.StatsCache
	logger           *slog.Logger
}

type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	UserRepo         repository.UserRepository
	ReadModelRepo    repository.ReadModelRepository
	StatsCache       service.StatsCache
	Logger           *slog.Logger
}

func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		userRepo:         params.UserRepo,
		readModelRepo:    params.ReadModelRepo,
		statsCache:       params.StatsCache,
		logger:           params.Logger,
	}
}

func (srv *subscriptionService) requireChannel(ctx context.Context, channelID string) error {
	if _, err := srv.userRepo.FindIdentityByID(ctx, channelID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrChannelNotFound, channelID)
		}

		return mapRepoError(err)
	}

	return nil
}

func (srv *subscriptionService) Toggle(ctx context.Context, channelID, subscriberID string) (bool, error) {
	if channelID == subscriberID {
		return false, errors.WithStack(domainerrors.ErrSelfSubscription)
	}
	if err := srv.requireChannel(ctx, channelID); err != nil {
		return false, err
	}

	subscribed, err := srv.toggle(ctx, channelID, subscriberID)
	if err != nil {
		return false, err
	}
	invalidateStats(ctx, srv.statsCache, deliverycontext.GetLoggerOrDefault(ctx, srv.logger), channelID)

	return subscribed, nil
}

func (srv *subscriptionService) toggle(ctx context.Context, channelID, subscriberID string) (bool, error) {
	existing, err := srv.subscriptionRepo.Find(ctx, subscriberID, channelID)
	switch {
	case err == nil:
		if err := srv.subscriptionRepo.Delete(ctx, existing.ID); err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
			return false, mapRepoError(err)
		}

		return false, nil
	case !errors.Is(err, repository.ErrSubscriptionNotFound):
		return false, mapRepoError(err)
	}

	sub := &entity.Subscription{Subscriber: subscriberID, Channel: channelID}
	if err := srv.subscriptionRepo.Create(ctx, sub); err != nil && !errors.Is(err, repository.ErrSubscriptionExists) {
		return false, mapRepoError(err)
	}

	return true, nil
}

func (srv *subscriptionService) Subscribers(ctx context.Context, channelID string) ([]entity.SubscriberSummary, error) {
	if err := srv.requireChannel(ctx, channelID); err != nil {
		return nil, err
	}

	subscribers, err := srv.readModelRepo.ChannelSubscribers(ctx, channelID)

	return subscribers, mapRepoError(err)
}

func (srv *subscriptionService) SubscribedChannels(ctx context.Context, subscriberID string) ([]entity.ChannelSummary, error) {
	if _, err := srv.userRepo.FindIdentityByID(ctx, subscriberID); err != nil {
		return nil, mapRepoError(err)
	}

	channels, err := srv.readModelRepo.SubscribedChannels(ctx, subscriberID)

	return channels, mapRepoError(err)
}

// --- Dashboard ---

type dashboardService struct {
	readModelRepo repository.ReadModelRepository
	statsCache    service.StatsCache
	pagination    usecase.Pagination
	logger        *slog.Logger
}

type DashboardServiceParams struct {
	fx.In

	ReadModelRepo repository.ReadModelRepository
	StatsCache    service.StatsCache
	Pagination    usecase.Pagination
	Logger        *slog.Logger
}

func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		readModelRepo: params.ReadModelRepo,
		statsCache:    params.StatsCache,
		pagination:    params.Pagination,
		logger:        params.Logger,
	}
}

// Stats reads through the cache. Cache failures fall back to the aggregation.
func (srv *dashboardService) Stats(ctx context.Context, channelID string) (*entity.DashboardStats, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	cached, err := srv.statsCache.Get(ctx, channelID)
	if err != nil {
		logger.Warn("Dashboard stats cache read failed", slog.Any("error", err))
	}
	if cached != nil {
		return cached, nil
	}

	stats, err := srv.readModelRepo.DashboardStats(ctx, channelID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	if err := srv.statsCache.Set(ctx, channelID, stats); err != nil {
		logger.Warn("Dashboard stats cache write failed", slog.Any("error", err))
	}

	return stats, nil
}

func (srv *dashboardService) ChannelVideos(ctx context.Context, channelID string, page, limit int) (*entity.Page[entity.Video], error) {
	req, err := srv.pagination.Request(page, limit)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	videos, err := srv.readModelRepo.ChannelVideos(ctx, channelID, req)

	return videos, mapRepoError(err)
}
