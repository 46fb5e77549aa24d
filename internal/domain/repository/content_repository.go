package repository

import (
	"context"

	"vidtube/internal/domain/entity"
)

// Owner-scoped mutations return the Err*NotFound error when the id exists but belongs to someone else.

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id, ownerID, content string) (*entity.Comment, error)
	Delete(ctx context.Context, id, ownerID string) error
	ListIDsByVideo(ctx context.Context, videoID string) ([]string, error)
	DeleteByVideo(ctx context.Context, videoID string) error
}

type TweetRepository interface {
	Create(ctx context.Context, tweet *entity.Tweet) error
	Exists(ctx context.Context, id string) (bool, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Tweet, error)
	Update(ctx context.Context, id, ownerID, content string) (*entity.Tweet, error)
	Delete(ctx context.Context, id, ownerID string) error
}

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *entity.Playlist) error
	FindByID(ctx context.Context, id string) (*entity.Playlist, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Playlist, error)
	Update(ctx context.Context, id, ownerID, name, description string) (*entity.Playlist, error)
	Delete(ctx context.Context, id, ownerID string) error

	// AddVideo is a set insert; RemoveVideo pulls every occurrence.
	AddVideo(ctx context.Context, id, ownerID, videoID string) (*entity.Playlist, error)
	RemoveVideo(ctx context.Context, id, ownerID, videoID string) (*entity.Playlist, error)
}
