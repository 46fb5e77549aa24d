package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/errors"
	"vidtube/internal/usecase"

	"go.uber.org/fx"
)

// --- Comments ---

type commentService struct {
	commentRepo   repository.CommentRepository
	videoRepo     repository.VideoRepository
	likeRepo      repository.LikeRepository
	readModelRepo repository.ReadModelRepository
	pagination    usecase.Pagination
	logger        *slog.Logger
}

type CommentServiceParams struct {
	fx.In

	CommentRepo   repository.CommentRepository
	VideoRepo     repository.VideoRepository
	LikeRepo      repository.LikeRepository
	ReadModelRepo repository.ReadModelRepository
	Pagination    usecase.Pagination
	Logger        *slog.Logger
}

func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo:   params.CommentRepo,
		videoRepo:     params.VideoRepo,
		likeRepo:      params.LikeRepo,
		readModelRepo: params.ReadModelRepo,
		pagination:    params.Pagination,
		logger:        params.Logger,
	}
}

func (srv *commentService) List(ctx context.Context, videoID string, page, limit int) (*entity.Page[entity.CommentView], error) {
	req, err := srv.pagination.Request(page, limit)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		return nil, mapRepoError(err)
	}

	comments, err := srv.readModelRepo.VideoComments(ctx, videoID, req)

	return comments, mapRepoError(err)
}

func (srv *commentService) Add(ctx context.Context, videoID, ownerID, content string) (*entity.Comment, error) {
	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		return nil, mapRepoError(err)
	}

	comment := &entity.Comment{Content: strings.TrimSpace(content), Video: videoID, Owner: ownerID}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, mapRepoError(err)
	}

	return comment, nil
}

func (srv *commentService) Update(ctx context.Context, commentID, ownerID, content string) (*entity.Comment, error) {
	comment, err := srv.commentRepo.Update(ctx, commentID, ownerID, strings.TrimSpace(content))

	return comment, mapRepoError(err)
}

// Delete also drops the likes that pointed at the comment.
func (srv *commentService) Delete(ctx context.Context, commentID, ownerID string) error {
	if err := srv.commentRepo.Delete(ctx, commentID, ownerID); err != nil {
		return mapRepoError(err)
	}
	if err := srv.likeRepo.DeleteBySubject(ctx, entity.LikeComment, commentID); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).
			Warn("Failed to delete comment likes", slog.String("commentID", commentID), slog.Any("error", err))
	}

	return nil
}

// --- Tweets ---

type tweetService struct {
	tweetRepo repository.TweetRepository
	userRepo  repository.UserRepository
	likeRepo  repository.LikeRepository
	logger    *slog.Logger
}

type TweetServiceParams struct {
	fx.In

	TweetRepo repository.TweetRepository
	UserRepo  repository.UserRepository
	LikeRepo  repository.LikeRepository
	Logger    *slog.Logger
}

func NewTweetService(params TweetServiceParams) usecase.TweetUsecase {
	return &tweetService{
		tweetRepo: params.TweetRepo,
		userRepo:  params.UserRepo,
		likeRepo:  params.LikeRepo,
		logger:    params.Logger,
	}
}

func (srv *tweetService) Create(ctx context.Context, ownerID, content string) (*entity.Tweet, error) {
	tweet := &entity.Tweet{Content: strings.TrimSpace(content), Owner: ownerID}
	if err := srv.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, mapRepoError(err)
	}

	return tweet, nil
}

func (srv *tweetService) ListByUser(ctx context.Context, userID string) ([]entity.Tweet, error) {
	if _, err := srv.userRepo.FindIdentityByID(ctx, userID); err != nil {
		return nil, mapRepoError(err)
	}

	tweets, err := srv.tweetRepo.ListByOwner(ctx, userID)

	return tweets, mapRepoError(err)
}

func (srv *tweetService) Update(ctx context.Context, tweetID, ownerID, content string) (*entity.Tweet, error) {
	tweet, err := srv.tweetRepo.Update(ctx, tweetID, ownerID, strings.TrimSpace(content))

	return tweet, mapRepoError(err)
}

func (srv *tweetService) Delete(ctx context.Context, tweetID, ownerID string) error {
	if err := srv.tweetRepo.Delete(ctx, tweetID, ownerID); err != nil {
		return mapRepoError(err)
	}
	if err := srv.likeRepo.DeleteBySubject(ctx, entity.LikeTweet, tweetID); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).
			Warn("Failed to delete tweet likes", slog.String("tweetID", tweetID), slog.Any("error", err))
	}

	return nil
}

// --- Playlists ---

type playlistService struct {
	playlistRepo repository.PlaylistRepository
	videoRepo    repository.VideoRepository
	userRepo     repository.UserRepository
}

type PlaylistServiceParams struct {
	fx.In

	PlaylistRepo repository.PlaylistRepository
	VideoRepo    repository.VideoRepository
	UserRepo     repository.UserRepository
}

func NewPlaylistService(params PlaylistServiceParams) usecase.PlaylistUsecase {
	return &playlistService{
		playlistRepo: params.PlaylistRepo,
		videoRepo:    params.VideoRepo,
		userRepo:     params.UserRepo,
	}
}

func (srv *playlistService) Create(ctx context.Context, ownerID string, input *usecase.PlaylistInput) (*entity.Playlist, error) {
	playlist := &entity.Playlist{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Videos:      []string{},
		Owner:       ownerID,
	}
	if err := srv.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, mapRepoError(err)
	}

	return playlist, nil
}

func (srv *playlistService) Get(ctx context.Context, playlistID string) (*entity.Playlist, error) {
	playlist, err := srv.playlistRepo.FindByID(ctx, playlistID)

	return playlist, mapRepoError(err)
}

func (srv *playlistService) ListByUser(ctx context.Context, userID string) ([]entity.Playlist, error) {
	if _, err := srv.userRepo.FindIdentityByID(ctx, userID); err != nil {
		return nil, mapRepoError(err)
	}

	playlists, err := srv.playlistRepo.ListByOwner(ctx, userID)

	return playlists, mapRepoError(err)
}

func (srv *playlistService) Update(ctx context.Context, playlistID, ownerID string, input *usecase.PlaylistInput) (*entity.Playlist, error) {
	name := strings.TrimSpace(input.Name)
	description := strings.TrimSpace(input.Description)
	if name == "" && description == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("name or description is required"))
	}

	playlist, err := srv.playlistRepo.Update(ctx, playlistID, ownerID, name, description)

	return playlist, mapRepoError(err)
}

func (srv *playlistService) Delete(ctx context.Context, playlistID, ownerID string) error {
	return mapRepoError(srv.playlistRepo.Delete(ctx, playlistID, ownerID))
}

// AddVideo only accepts videos that exist; the playlist keeps each video once.
func (srv *playlistService) AddVideo(ctx context.Context, playlistID, ownerID, videoID string) (*entity.Playlist, error) {
	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		return nil, mapRepoError(err)
	}

	playlist, err := srv.playlistRepo.AddVideo(ctx, playlistID, ownerID, videoID)

	return playlist, mapRepoError(err)
}

func (srv *playlistService) RemoveVideo(ctx context.Context, playlistID, ownerID, videoID string) (*entity.Playlist, error) {
	playlist, err := srv.playlistRepo.RemoveVideo(ctx, playlistID, ownerID, videoID)

	return playlist, mapRepoError(err)
}
