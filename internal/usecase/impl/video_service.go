package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"
	"vidtube/internal/usecase"

	"go.uber.org/fx"
)

type videoService struct {
	videoRepo     repository.VideoRepository
	userRepo      repository.UserRepository
	commentRepo   repository.CommentRepository
	likeRepo      repository.LikeRepository
	readModelRepo repository.ReadModelRepository
	storage       service.AssetStorage
	statsCache    service.StatsCache
	pagination    usecase.Pagination
	logger        *slog.Logger
}

// VideoServiceParams holds dependencies for VideoService, injected by Fx.
type VideoServiceParams struct {
	fx.In

	VideoRepo     repository.VideoRepository
	UserRepo      repository.UserRepository
	CommentRepo   repository.CommentRepository
	LikeRepo      repository.LikeRepository
	ReadModelRepo repository.ReadModelRepository
	Storage       service.AssetStorage
	StatsCache    service.StatsCache
	Pagination    usecase.Pagination
	Logger        *slog.Logger
}

func NewVideoService(params VideoServiceParams) usecase.VideoUsecase {
	return &videoService{
		videoRepo:     params.VideoRepo,
		userRepo:      params.UserRepo,
		commentRepo:   params.CommentRepo,
		likeRepo:      params.LikeRepo,
		readModelRepo: params.ReadModelRepo,
		storage:       params.Storage,
		statsCache:    params.StatsCache,
		pagination:    params.Pagination,
		logger:        params.Logger,
	}
}

func (srv *videoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *videoService) List(ctx context.Context, input *usecase.ListVideosInput) (*entity.Page[entity.VideoView], error) {
	page, err := srv.pagination.Request(input.Page, input.Limit)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sortBy, ok := entity.ParseVideoSortField(input.SortBy)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrInvalidSort.WithMessage("unsupported sortBy: " + input.SortBy))
	}

	var ascending bool
	switch strings.ToLower(input.SortType) {
	case "", "desc":
	case "asc":
		ascending = true
	default:
		return nil, errors.WithStack(domainerrors.ErrInvalidSort.WithMessage("sortType must be asc or desc"))
	}

	filter := entity.VideoFilter{
		Query:         strings.TrimSpace(input.Query),
		OwnerID:       input.UserID,
		OnlyPublished: input.UserID == "" || input.UserID != input.RequesterID,
		SortBy:        sortBy,
		Ascending:     ascending,
	}

	result, err := srv.readModelRepo.ListVideos(ctx, filter, page)

	return result, mapRepoError(err)
}

// Publish uploads the media before creating the record, so a failed upload leaves nothing behind.
func (srv *videoService) Publish(ctx context.Context, input *usecase.PublishVideoInput) (*entity.Video, error) {
	if input.Video == nil {
		return nil, errors.WithStack(domainerrors.ErrMissingFile.WithMessage("video file is required"))
	}
	if input.Thumbnail == nil {
		return nil, errors.WithStack(domainerrors.ErrMissingFile.WithMessage("thumbnail is required"))
	}

	media, err := srv.storage.Upload(ctx, *input.Video)
	if err != nil {
		srv.log(ctx).Warn("Video upload failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUploadFailed.WithMessage("error while uploading video"), err.Error())
	}

	thumb, err := srv.storage.Upload(ctx, *input.Thumbnail)
	if err != nil {
		srv.log(ctx).Warn("Thumbnail upload failed", slog.Any("error", err))
		srv.discard(ctx, media.URL, service.AssetVideo)

		return nil, errors.Wrap(domainerrors.ErrUploadFailed.WithMessage("error while uploading thumbnail"), err.Error())
	}

	video := &entity.Video{
		VideoFile:   media.URL,
		Thumbnail:   thumb.URL,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Duration:    media.Duration,
		IsPublished: true,
		Owner:       input.OwnerID,
	}
	if err := srv.videoRepo.Create(ctx, video); err != nil {
		return nil, mapRepoError(err)
	}
	srv.log(ctx).Info("Video published", slog.String("videoID", video.ID), slog.String("owner", video.Owner))
	srv.invalidateStats(ctx, video.Owner)

	return video, nil
}

// Get hides unpublished videos from everyone but the owner, then counts the view.
func (srv *videoService) Get(ctx context.Context, videoID, viewerID string) (*entity.Video, error) {
	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if !video.IsPublished && video.Owner != viewerID {
		return nil, errors.Wrap(domainerrors.ErrVideoNotFound, videoID)
	}

	if viewerID == "" {
		return video, nil
	}

	if _, err := srv.userRepo.AddToWatchHistory(ctx, viewerID, videoID); err != nil {
		return nil, mapRepoError(err)
	}

	counted, err := srv.videoRepo.RecordView(ctx, videoID, viewerID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if counted {
		video.Views++
		srv.invalidateStats(ctx, video.Owner)
	}

	return video, nil
}

func (srv *videoService) Update(ctx context.Context, videoID, ownerID string, input *usecase.UpdateVideoInput) (*entity.Video, error) {
	update := repository.VideoUpdate{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
	}

	var previousThumb string
	if input.Thumbnail != nil {
		current, err := srv.videoRepo.FindByID(ctx, videoID)
		if err != nil {
			return nil, mapRepoError(err)
		}
		if current.Owner != ownerID {
			return nil, errors.Wrap(domainerrors.ErrVideoNotFound, videoID)
		}
		previousThumb = current.Thumbnail

		thumb, err := srv.storage.Upload(ctx, *input.Thumbnail)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrUploadFailed.WithMessage("error while uploading thumbnail"), err.Error())
		}
		update.Thumbnail = thumb.URL
	}

	video, err := srv.videoRepo.Update(ctx, videoID, ownerID, update)
	if err != nil {
		if update.Thumbnail != "" {
			srv.discard(ctx, update.Thumbnail, service.AssetImage)
		}

		return nil, mapRepoError(err)
	}

	if previousThumb != "" && previousThumb != update.Thumbnail {
		srv.discard(ctx, previousThumb, service.AssetImage)
	}

	return video, nil
}

func (srv *videoService) Delete(ctx context.Context, videoID, ownerID string) error {
	video, err := srv.videoRepo.Delete(ctx, videoID, ownerID)
	if err != nil {
		return mapRepoError(err)
	}

	if err := srv.likeRepo.DeleteBySubject(ctx, entity.LikeVideo, videoID); err != nil {
		return mapRepoError(err)
	}
	commentIDs, err := srv.commentRepo.ListIDsByVideo(ctx, videoID)
	if err != nil {
		return mapRepoError(err)
	}
	if err := srv.likeRepo.DeleteBySubjects(ctx, entity.LikeComment, commentIDs); err != nil {
		return mapRepoError(err)
	}
	if err := srv.commentRepo.DeleteByVideo(ctx, videoID); err != nil {
		return mapRepoError(err)
	}

	srv.discard(ctx, video.VideoFile, service.AssetVideo)
	srv.discard(ctx, video.Thumbnail, service.AssetImage)
	srv.invalidateStats(ctx, ownerID)
	srv.log(ctx).Info("Video deleted", slog.String("videoID", videoID))

	return nil
}

func (srv *videoService) TogglePublish(ctx context.Context, videoID, ownerID string) (*entity.Video, error) {
	video, err := srv.videoRepo.TogglePublish(ctx, videoID, ownerID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	srv.invalidateStats(ctx, ownerID)

	return video, nil
}

func (srv *videoService) discard(ctx context.Context, url string, kind service.AssetKind) {
	discardAsset(ctx, srv.storage, srv.log(ctx), url, kind)
}

func (srv *videoService) invalidateStats(ctx context.Context, channelID string) {
	invalidateStats(ctx, srv.statsCache, srv.log(ctx), channelID)
}

// invalidateStats drops a cached dashboard entry; a failure only delays freshness until the TTL.
func invalidateStats(ctx context.Context, cache service.StatsCache, logger *slog.Logger, channelID string) {
	if err := cache.Invalidate(ctx, channelID); err != nil {
		logger.Warn("Failed to invalidate dashboard stats", slog.String("channelID", channelID), slog.Any("error", err))
	}
}
