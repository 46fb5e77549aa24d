package impl

import (
	"context"
	"net"
	"testing"
	"time"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/errors"
	mockRepo "vidtube/internal/mocks/repository"
	"vidtube/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const playlistID = "65f0c0ffee00000000000b1a"

func TestCommentService_AddRequiresVideo(t *testing.T) {
	comments := mockRepo.NewMockCommentRepository(t)
	videos := mockRepo.NewMockVideoRepository(t)
	srv := NewCommentService(CommentServiceParams{
		CommentRepo:   comments,
		VideoRepo:     videos,
		LikeRepo:      mockRepo.NewMockLikeRepository(t),
		ReadModelRepo: mockRepo.NewMockReadModelRepository(t),
		Pagination:    testPagination(),
		Logger:        newDiscardLogger(),
	})
	ctx := context.Background()

	videos.On("FindByID", ctx, "missing").Return(nil, repository.ErrVideoNotFound)
	videos.On("FindByID", ctx, videoID).Return(&entity.Video{ID: videoID}, nil)
	comments.On("Create", ctx, &entity.Comment{Content: "nice", Video: videoID, Owner: aliceID}).Return(nil)

	_, err := srv.Add(ctx, "missing", aliceID, "nice")
	assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)

	comment, err := srv.Add(ctx, videoID, aliceID, " nice ")
	require.NoError(t, err)
	assert.Equal(t, "nice", comment.Content)
}

func TestCommentService_DeleteDropsLikes(t *testing.T) {
	comments := mockRepo.NewMockCommentRepository(t)
	likes := mockRepo.NewMockLikeRepository(t)
	srv := NewCommentService(CommentServiceParams{
		CommentRepo:   comments,
		VideoRepo:     mockRepo.NewMockVideoRepository(t),
		LikeRepo:      likes,
		ReadModelRepo: mockRepo.NewMockReadModelRepository(t),
		Pagination:    testPagination(),
		Logger:        newDiscardLogger(),
	})
	ctx := context.Background()

	comments.On("Delete", ctx, commentID, bobID).Return(repository.ErrCommentNotFound).Once()
	err := srv.Delete(ctx, commentID, bobID)
	assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound, "non-owner sees not found")

	comments.On("Delete", ctx, commentID, aliceID).Return(nil).Once()
	likes.On("DeleteBySubject", ctx, entity.LikeComment, commentID).Return(nil).Once()
	require.NoError(t, srv.Delete(ctx, commentID, aliceID))
}

func TestTweetService_ListByUnknownUser(t *testing.T) {
	users := mockRepo.NewMockUserRepository(t)
	srv := NewTweetService(TweetServiceParams{
		TweetRepo: mockRepo.NewMockTweetRepository(t),
		UserRepo:  users,
		LikeRepo:  mockRepo.NewMockLikeRepository(t),
		Logger:    newDiscardLogger(),
	})
	ctx := context.Background()

	users.On("FindIdentityByID", ctx, bobID).Return(nil, repository.ErrUserNotFound)

	_, err := srv.ListByUser(ctx, bobID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestPlaylistService(t *testing.T) {
	playlists := mockRepo.NewMockPlaylistRepository(t)
	videos := mockRepo.NewMockVideoRepository(t)
	srv := NewPlaylistService(PlaylistServiceParams{
		PlaylistRepo: playlists,
		VideoRepo:    videos,
		UserRepo:     mockRepo.NewMockUserRepository(t),
	})
	ctx := context.Background()

	t.Run("create starts empty", func(t *testing.T) {
		playlists.On("Create", ctx, mock.MatchedBy(func(p *entity.Playlist) bool {
			return p.Name == "Mix" && p.Owner == aliceID && p.Videos != nil && len(p.Videos) == 0
		})).Return(nil).Once()

		_, err := srv.Create(ctx, aliceID, &usecase.PlaylistInput{Name: "Mix", Description: "songs"})
		require.NoError(t, err)
	})

	t.Run("update needs a field", func(t *testing.T) {
		_, err := srv.Update(ctx, playlistID, aliceID, &usecase.PlaylistInput{})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("add requires an existing video", func(t *testing.T) {
		videos.On("FindByID", ctx, "nope").Return(nil, repository.ErrVideoNotFound).Once()

		_, err := srv.AddVideo(ctx, playlistID, aliceID, "nope")
		assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
	})

	t.Run("add by non-owner", func(t *testing.T) {
		videos.On("FindByID", ctx, videoID).Return(&entity.Video{ID: videoID}, nil).Once()
		playlists.On("AddVideo", ctx, playlistID, bobID, videoID).Return(nil, repository.ErrPlaylistNotFound).Once()

		_, err := srv.AddVideo(ctx, playlistID, bobID, videoID)
		assert.ErrorIs(t, err, domainerrors.ErrPlaylistNotFound)
	})

	t.Run("get malformed id", func(t *testing.T) {
		playlists.On("FindByID", ctx, "xyz").Return(nil, errors.Wrap(repository.ErrInvalidID, "xyz")).Once()

		_, err := srv.Get(ctx, "xyz")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidID)
	})
}

func TestHealthService_Check(t *testing.T) {
	repo := mockRepo.NewMockHealthRepository(t)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	srv := &healthService{
		healthRepo: repo,
		addrs: func() ([]net.Addr, error) {
			return []net.Addr{
				&net.IPNet{IP: net.ParseIP("10.0.0.5"), Mask: net.CIDRMask(24, 32)},
				&net.IPNet{IP: net.ParseIP("fe80::1"), Mask: net.CIDRMask(64, 128)},
			}, nil
		},
		now:    func() time.Time { return fixed },
		logger: newDiscardLogger(),
	}

	repo.On("Ping", mock.Anything).Return(nil).Once()
	status := srv.Check(context.Background())
	assert.True(t, status.Healthy)
	assert.Equal(t, []string{"10.0.0.5"}, status.Hosts)
	assert.Equal(t, fixed, status.Time)

	repo.On("Ping", mock.Anything).Return(errors.New("no primary")).Once()
	status = srv.Check(context.Background())
	assert.False(t, status.Healthy)
	assert.Equal(t, "database is disconnected", status.Message)
}
