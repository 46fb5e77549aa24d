package usecase

import (
	"context"

	"vidtube/internal/domain/entity"
)

type CommentUsecase interface {
	List(ctx context.Context, videoID string, page, limit int) (*entity.Page[entity.CommentView], error)
	Add(ctx context.Context, videoID, ownerID, content string) (*entity.Comment, error)
	Update(ctx context.Context, commentID, ownerID, content string) (*entity.Comment, error)
	Delete(ctx context.Context, commentID, ownerID string) error
}

type TweetUsecase interface {
	Create(ctx context.Context, ownerID, content string) (*entity.Tweet, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Tweet, error)
	Update(ctx context.Context, tweetID, ownerID, content string) (*entity.Tweet, error)
	Delete(ctx context.Context, tweetID, ownerID string) error
}

type PlaylistInput struct {
	Name        string
	Description string
}

type PlaylistUsecase interface {
	Create(ctx context.Context, ownerID string, input *PlaylistInput) (*entity.Playlist, error)
	Get(ctx context.Context, playlistID string) (*entity.Playlist, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Playlist, error)
	Update(ctx context.Context, playlistID, ownerID string, input *PlaylistInput) (*entity.Playlist, error)
	Delete(ctx context.Context, playlistID, ownerID string) error
	AddVideo(ctx context.Context, playlistID, ownerID, videoID string) (*entity.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, ownerID, videoID string) (*entity.Playlist, error)
}
