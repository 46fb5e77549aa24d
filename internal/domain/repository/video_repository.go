package repository

import (
	"context"

	"vidtube/internal/domain/entity"
)

// VideoUpdate carries the mutable video fields; empty values are left unchanged.
type VideoUpdate struct {
	Title       string
	Description string
	Thumbnail   string
}

type VideoRepository interface {
	Create(ctx context.Context, video *entity.Video) error
	FindByID(ctx context.Context, id string) (*entity.Video, error)

	// Update, Delete and TogglePublish only match videos owned by ownerID.
	Update(ctx context.Context, id, ownerID string, update VideoUpdate) (*entity.Video, error)
	Delete(ctx context.Context, id, ownerID string) (*entity.Video, error)
	TogglePublish(ctx context.Context, id, ownerID string) (*entity.Video, error)

	// RecordView adds the viewer and increments views unless the viewer was already counted.
	RecordView(ctx context.Context, videoID, viewerID string) (bool, error)
}
