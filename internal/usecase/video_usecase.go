package usecase

import (
	"context"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/service"
)

// ListVideosInput carries raw listing parameters; zero page or limit means unset.
type ListVideosInput struct {
	Page        int
	Limit       int
	Query       string
	SortBy      string
	SortType    string
	UserID      string
	RequesterID string
}

type PublishVideoInput struct {
	OwnerID     string
	Title       string
	Description string
	Video       *service.Asset
	Thumbnail   *service.Asset
}

type UpdateVideoInput struct {
	Title       string
	Description string
	Thumbnail   *service.Asset // Optional.
}

type VideoUsecase interface {
	List(ctx context.Context, input *ListVideosInput) (*entity.Page[entity.VideoView], error)
	Publish(ctx context.Context, input *PublishVideoInput) (*entity.Video, error)
	// Get records the view for the viewer. Unpublished videos are only visible to their owner.
	Get(ctx context.Context, videoID, viewerID string) (*entity.Video, error)
	Update(ctx context.Context, videoID, ownerID string, input *UpdateVideoInput) (*entity.Video, error)
	// Delete also removes the video's likes, comments and stored assets.
	Delete(ctx context.Context, videoID, ownerID string) error
	TogglePublish(ctx context.Context, videoID, ownerID string) (*entity.Video, error)
}
