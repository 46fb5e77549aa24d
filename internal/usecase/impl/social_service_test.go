package impl

import (
	"context"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/errors"
	mockRepo "vidtube/internal/mocks/repository"
	mockService "vidtube/internal/mocks/service"
	"vidtube/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const commentID = "65f0c0ffee0000000000c0c0"

type likeFixture struct {
	srv       usecase.LikeUsecase
	likes     *mockRepo.MockLikeRepository
	videos    *mockRepo.MockVideoRepository
	comments  *mockRepo.MockCommentRepository
	tweets    *mockRepo.MockTweetRepository
	readModel *mockRepo.MockReadModelRepository
	cache     *mockService.MockStatsCache
}

func newLikeFixture(t *testing.T) *likeFixture {
	t.Helper()
	f := &likeFixture{
		likes:     mockRepo.NewMockLikeRepository(t),
		videos:    mockRepo.NewMockVideoRepository(t),
		comments:  mockRepo.NewMockCommentRepository(t),
		tweets:    mockRepo.NewMockTweetRepository(t),
		readModel: mockRepo.NewMockReadModelRepository(t),
		cache:     mockService.NewMockStatsCache(t),
	}
	f.srv = NewLikeService(LikeServiceParams{
		LikeRepo:      f.likes,
		VideoRepo:     f.videos,
		CommentRepo:   f.comments,
		TweetRepo:     f.tweets,
		ReadModelRepo: f.readModel,
		StatsCache:    f.cache,
		Logger:        newDiscardLogger(),
	})

	return f
}

func TestLikeService_Toggle_VideoRoundTrip(t *testing.T) {
	f := newLikeFixture(t)
	ctx := context.Background()

	f.videos.On("FindByID", ctx, videoID).Return(&entity.Video{ID: videoID, Owner: bobID}, nil)
	f.cache.On("Invalidate", ctx, bobID).Return(nil)

	f.likes.On("Find", ctx, entity.LikeVideo, videoID, aliceID).Return(nil, repository.ErrLikeNotFound).Once()
	f.likes.On("Create", ctx, mock.MatchedBy(func(l *entity.Like) bool {
		return l.Subject == entity.LikeVideo && l.SubjectID == videoID && l.LikedBy == aliceID
	})).Return(nil).Once()

	liked, err := f.srv.Toggle(ctx, entity.LikeVideo, videoID, aliceID)
	require.NoError(t, err)
	assert.True(t, liked)

	f.likes.On("Find", ctx, entity.LikeVideo, videoID, aliceID).Return(&entity.Like{ID: "like-1"}, nil).Once()
	f.likes.On("Delete", ctx, "like-1").Return(nil).Once()

	liked, err = f.srv.Toggle(ctx, entity.LikeVideo, videoID, aliceID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestLikeService_Toggle_ConcurrentCreateCountsAsLiked(t *testing.T) {
	f := newLikeFixture(t)
	ctx := context.Background()

	f.comments.On("Exists", ctx, commentID).Return(true, nil)
	f.likes.On("Find", ctx, entity.LikeComment, commentID, aliceID).Return(nil, repository.ErrLikeNotFound)
	f.likes.On("Create", ctx, mock.Anything).Return(errors.Wrap(repository.ErrLikeExists, commentID))

	liked, err := f.srv.Toggle(ctx, entity.LikeComment, commentID, aliceID)

	require.NoError(t, err)
	assert.True(t, liked)
	f.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestLikeService_Toggle_MissingSubject(t *testing.T) {
	f := newLikeFixture(t)
	ctx := context.Background()

	f.tweets.On("Exists", ctx, "t1").Return(false, nil)
	f.videos.On("FindByID", ctx, videoID).Return(nil, repository.ErrVideoNotFound)

	_, err := f.srv.Toggle(ctx, entity.LikeTweet, "t1", aliceID)
	assert.ErrorIs(t, err, domainerrors.ErrTweetNotFound)

	_, err = f.srv.Toggle(ctx, entity.LikeVideo, videoID, aliceID)
	assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
}

func TestLikeService_VideoLikes(t *testing.T) {
	f := newLikeFixture(t)
	ctx := context.Background()
	likes := []entity.LikedVideo{{ID: "l1", Video: videoID, LikedBy: aliceID}}

	f.videos.On("FindByID", ctx, videoID).Return(&entity.Video{ID: videoID}, nil)
	f.readModel.On("VideoLikes", ctx, videoID).Return(likes, int64(1), nil)

	got, err := f.srv.VideoLikes(ctx, videoID)

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Count)
	assert.Equal(t, likes, got.Likes)
}

type subscriptionFixture struct {
	srv   usecase.SubscriptionUsecase
	subs  *mockRepo.MockSubscriptionRepository
	users *mockRepo.MockUserRepository
	read  *mockRepo.MockReadModelRepository
	cache *mockService.MockStatsCache
}

func newSubscriptionFixture(t *testing.T) *subscriptionFixture {
	t.Helper()
	f := &subscriptionFixture{
		subs:  mockRepo.NewMockSubscriptionRepository(t),
		users: mockRepo.NewMockUserRepository(t),
		read:  mockRepo.NewMockReadModelRepository(t),
		cache: mockService.NewMockStatsCache(t),
	}
	f.srv = NewSubscriptionService(SubscriptionServiceParams{
		SubscriptionRepo: f.subs,
		UserRepo:         f.users,
		ReadModelRepo:    f.read,
		StatsCache:       f.cache,
		Logger:           newDiscardLogger(),
	})

	return f
}

func TestSubscriptionService_Toggle(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	f.users.On("FindIdentityByID", ctx, bobID).Return(&entity.Identity{ID: bobID}, nil)
	f.cache.On("Invalidate", ctx, bobID).Return(nil)
	f.subs.On("Find", ctx, aliceID, bobID).Return(nil, repository.ErrSubscriptionNotFound).Once()
	f.subs.On("Create", ctx, &entity.Subscription{Subscriber: aliceID, Channel: bobID}).Return(nil).Once()

	subscribed, err := f.srv.Toggle(ctx, bobID, aliceID)
	require.NoError(t, err)
	assert.True(t, subscribed)

	f.subs.On("Find", ctx, aliceID, bobID).Return(&entity.Subscription{ID: "s1"}, nil).Once()
	f.subs.On("Delete", ctx, "s1").Return(nil).Once()

	subscribed, err = f.srv.Toggle(ctx, bobID, aliceID)
	require.NoError(t, err)
	assert.False(t, subscribed)
}

func TestSubscriptionService_Toggle_Rejections(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	_, err := f.srv.Toggle(ctx, aliceID, aliceID)
	assert.ErrorIs(t, err, domainerrors.ErrSelfSubscription)

	f.users.On("FindIdentityByID", ctx, bobID).Return(nil, repository.ErrUserNotFound)
	_, err = f.srv.Toggle(ctx, bobID, aliceID)
	assert.ErrorIs(t, err, domainerrors.ErrChannelNotFound)
}

func TestDashboardService_Stats_ReadsThrough(t *testing.T) {
	read := mockRepo.NewMockReadModelRepository(t)
	cache := mockService.NewMockStatsCache(t)
	srv := NewDashboardService(DashboardServiceParams{
		ReadModelRepo: read,
		StatsCache:    cache,
		Pagination:    testPagination(),
		Logger:        newDiscardLogger(),
	})
	ctx := context.Background()
	stats := &entity.DashboardStats{TotalViews: 7, TotalVideos: 2}

	cache.On("Get", ctx, aliceID).Return(nil, nil).Once()
	read.On("DashboardStats", ctx, aliceID).Return(stats, nil).Once()
	cache.On("Set", ctx, aliceID, stats).Return(nil).Once()

	got, err := srv.Stats(ctx, aliceID)
	require.NoError(t, err)
	assert.Equal(t, stats, got)

	cache.On("Get", ctx, aliceID).Return(stats, nil).Once()

	got, err = srv.Stats(ctx, aliceID)
	require.NoError(t, err)
	assert.Same(t, stats, got, "second read is served from cache")
}

func TestDashboardService_Stats_CacheFailureFallsBack(t *testing.T) {
	read := mockRepo.NewMockReadModelRepository(t)
	cache := mockService.NewMockStatsCache(t)
	srv := NewDashboardService(DashboardServiceParams{
		ReadModelRepo: read,
		StatsCache:    cache,
		Pagination:    testPagination(),
		Logger:        newDiscardLogger(),
	})
	ctx := context.Background()

	cache.On("Get", ctx, aliceID).Return(nil, errors.New("redis down"))
	read.On("DashboardStats", ctx, aliceID).Return(&entity.DashboardStats{}, nil)
	cache.On("Set", ctx, aliceID, mock.Anything).Return(errors.New("redis down"))

	got, err := srv.Stats(ctx, aliceID)

	require.NoError(t, err)
	assert.Equal(t, &entity.DashboardStats{}, got)
}

func TestDashboardService_ChannelVideos(t *testing.T) {
	read := mockRepo.NewMockReadModelRepository(t)
	srv := NewDashboardService(DashboardServiceParams{
		ReadModelRepo: read,
		StatsCache:    mockService.NewMockStatsCache(t),
		Pagination:    testPagination(),
		Logger:        newDiscardLogger(),
	})
	ctx := context.Background()
	page := &entity.Page[entity.Video]{Items: []entity.Video{}, PageRequest: entity.PageRequest{Page: 3, Limit: 10}}

	read.On("ChannelVideos", ctx, aliceID, entity.PageRequest{Page: 3, Limit: 10}).Return(page, nil)

	got, err := srv.ChannelVideos(ctx, aliceID, 3, 0)

	require.NoError(t, err)
	assert.Same(t, page, got)
}
