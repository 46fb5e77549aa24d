package impl

import (
	"context"
	"strings"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"
	mockRepo "vidtube/internal/mocks/repository"
	mockService "vidtube/internal/mocks/service"
	"vidtube/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type videoFixture struct {
	srv       usecase.VideoUsecase
	videos    *mockRepo.MockVideoRepository
	users     *mockRepo.MockUserRepository
	comments  *mockRepo.MockCommentRepository
	likes     *mockRepo.MockLikeRepository
	readModel *mockRepo.MockReadModelRepository
	storage   *mockService.MockAssetStorage
	cache     *mockService.MockStatsCache
}

func newVideoFixture(t *testing.T) *videoFixture {
	t.Helper()
	f := &videoFixture{
		videos:    mockRepo.NewMockVideoRepository(t),
		users:     mockRepo.NewMockUserRepository(t),
		comments:  mockRepo.NewMockCommentRepository(t),
		likes:     mockRepo.NewMockLikeRepository(t),
		readModel: mockRepo.NewMockReadModelRepository(t),
		storage:   mockService.NewMockAssetStorage(t),
		cache:     mockService.NewMockStatsCache(t),
	}
	f.srv = NewVideoService(VideoServiceParams{
		VideoRepo:     f.videos,
		UserRepo:      f.users,
		CommentRepo:   f.comments,
		LikeRepo:      f.likes,
		ReadModelRepo: f.readModel,
		Storage:       f.storage,
		StatsCache:    f.cache,
		Pagination:    testPagination(),
		Logger:        newDiscardLogger(),
	})

	return f
}

func TestVideoService_List_Filters(t *testing.T) {
	ctx := context.Background()
	empty := &entity.Page[entity.VideoView]{Items: []entity.VideoView{}}

	tests := []struct {
		name  string
		input usecase.ListVideosInput
		want  entity.VideoFilter
		page  entity.PageRequest
	}{
		{
			name:  "defaults hide unpublished",
			input: usecase.ListVideosInput{RequesterID: aliceID},
			want:  entity.VideoFilter{OnlyPublished: true, SortBy: entity.SortByCreatedAt},
			page:  entity.PageRequest{Page: 1, Limit: 10},
		},
		{
			name:  "own channel includes unpublished",
			input: usecase.ListVideosInput{UserID: aliceID, RequesterID: aliceID, SortBy: "views", SortType: "asc", Page: 2, Limit: 5},
			want:  entity.VideoFilter{OwnerID: aliceID, SortBy: entity.SortByViews, Ascending: true},
			page:  entity.PageRequest{Page: 2, Limit: 5},
		},
		{
			name:  "other channel stays published only",
			input: usecase.ListVideosInput{UserID: bobID, RequesterID: aliceID, Query: " cats ", Limit: 500},
			want:  entity.VideoFilter{OwnerID: bobID, Query: "cats", OnlyPublished: true, SortBy: entity.SortByCreatedAt},
			page:  entity.PageRequest{Page: 1, Limit: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newVideoFixture(t)
			f.readModel.On("ListVideos", ctx, tt.want, tt.page).Return(empty, nil)

			got, err := f.srv.List(ctx, &tt.input)

			require.NoError(t, err)
			assert.Same(t, empty, got)
		})
	}
}

func TestVideoService_List_RejectsBadInput(t *testing.T) {
	f := newVideoFixture(t)
	ctx := context.Background()

	_, err := f.srv.List(ctx, &usecase.ListVideosInput{SortBy: "password"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSort)

	_, err = f.srv.List(ctx, &usecase.ListVideosInput{SortType: "sideways"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSort)

	_, err = f.srv.List(ctx, &usecase.ListVideosInput{Page: -1})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPage)
}

func TestVideoService_Publish(t *testing.T) {
	f := newVideoFixture(t)
	ctx := context.Background()
	media := &service.Asset{Kind: service.AssetVideo, FileName: "clip.mp4", Body: strings.NewReader("mp4"), Duration: 12.5}
	thumb := imageAsset("thumb.png")

	f.storage.On("Upload", ctx, *media).Return(&service.StoredAsset{URL: "http://cdn/videos/v.mp4", Duration: 12.5}, nil)
	f.storage.On("Upload", ctx, *thumb).Return(&service.StoredAsset{URL: "http://cdn/images/t.png"}, nil)
	f.videos.On("Create", ctx, mock.MatchedBy(func(v *entity.Video) bool {
		return v.Owner == aliceID && v.IsPublished && v.Duration == 12.5 && v.Title == "My clip"
	})).Return(nil)
	f.cache.On("Invalidate", ctx, aliceID).Return(nil)

	video, err := f.srv.Publish(ctx, &usecase.PublishVideoInput{
		OwnerID: aliceID, Title: " My clip ", Description: "a long description", Video: media, Thumbnail: thumb,
	})

	require.NoError(t, err)
	assert.Equal(t, "http://cdn/videos/v.mp4", video.VideoFile)
	assert.Equal(t, "http://cdn/images/t.png", video.Thumbnail)
}

func TestVideoService_Publish_ThumbnailFailureDiscardsVideo(t *testing.T) {
	f := newVideoFixture(t)
	ctx := context.Background()
	media := &service.Asset{Kind: service.AssetVideo, FileName: "clip.mp4", Body: strings.NewReader("mp4")}
	thumb := imageAsset("thumb.png")

	f.storage.On("Upload", ctx, *media).Return(&service.StoredAsset{URL: "http://cdn/videos/v.mp4"}, nil)
	f.storage.On("Upload", ctx, *thumb).Return(nil, errors.New("bucket unavailable"))
	f.storage.On("Delete", ctx, "http://cdn/videos/v.mp4", service.AssetVideo).Return(nil)

	_, err := f.srv.Publish(ctx, &usecase.PublishVideoInput{OwnerID: aliceID, Video: media, Thumbnail: thumb})

	assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
	f.videos.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVideoService_Get_RecordsViewOnce(t *testing.T) {
	f := newVideoFixture(t)
	ctx := context.Background()
	video := &entity.Video{ID: videoID, Owner: bobID, IsPublished: true, Views: 3}

	f.videos.On("FindByID", ctx, videoID).Return(video, nil)
	f.users.On("AddToWatchHistory", ctx, aliceID, videoID).Return(true, nil)
	f.videos.On("RecordView", ctx, videoID, aliceID).Return(true, nil).Once()
	f.cache.On("Invalidate", ctx, bobID).Return(nil).Once()

	got, err := f.srv.Get(ctx, videoID, aliceID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Views)

	video.Views = 4
	f.videos.On("RecordView", ctx, videoID, aliceID).Return(false, nil).Once()

	got, err = f.srv.Get(ctx, videoID, aliceID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Views, "repeat view is not counted")
}

func TestVideoService_Get_UnpublishedHiddenFromOthers(t *testing.T) {
	f := newVideoFixture(t)
	ctx := context.Background()

	f.videos.On("FindByID", ctx, videoID).Return(&entity.Video{ID: videoID, Owner: bobID}, nil)

	_, err := f.srv.Get(ctx, videoID, aliceID)
	assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
}

func TestVideoService_Get_Missing(t *testing.T) {
	f := newVideoFixture(t)
	ctx := context.Background()

	f.videos.On("FindByID", ctx, "bad").Return(nil, errors.Wrap(repository.ErrInvalidID, "bad"))
	f.videos.On("FindByID", ctx, videoID).Return(nil, repository.ErrVideoNotFound)

	_, err := f.srv.Get(ctx, "bad", aliceID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidID)

	_, err = f.srv.Get(ctx, videoID, aliceID)
	assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
}

func TestVideoService_Update_ReplacesThumbnail(t *testing.T) {
	f := newVideoFixture(t)
	ctx := context.Background()
	thumb := imageAsset("new.png")

	f.videos.On("FindByID", ctx, videoID).Return(&entity.Video{ID: videoID, Owner: aliceID, Thumbnail: "http://cdn/images/old.png"}, nil)
	f.storage.On("Upload", ctx, *thumb).Return(&service.StoredAsset{URL: "http://cdn/images/new.png"}, nil)
	f.videos.On("Update", ctx, videoID, aliceID, repository.VideoUpdate{Title: "New title", Thumbnail: "http://cdn/images/new.png"}).
		Return(&entity.Video{ID: videoID, Thumbnail: "http://cdn/images/new.png"}, nil)
	f.storage.On("Delete", ctx, "http://cdn/images/old.png", service.AssetImage).Return(nil)

	video, err := f.srv.Update(ctx, videoID, aliceID, &usecase.UpdateVideoInput{Title: "New title", Thumbnail: thumb})

	require.NoError(t, err)
	assert.Equal(t, "http://cdn/images/new.png", video.Thumbnail)
}

func TestVideoService_Update_NotOwner(t *testing.T) {
	f := newVideoFixture(t)
	ctx := context.Background()

	f.videos.On("Update", ctx, videoID, bobID, repository.VideoUpdate{Title: "Hijack"}).Return(nil, repository.ErrVideoNotFound)

	_, err := f.srv.Update(ctx, videoID, bobID, &usecase.UpdateVideoInput{Title: "Hijack"})
	assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
}

func TestVideoService_Delete_Cascades(t *testing.T) {
	f := newVideoFixture(t)
	ctx := context.Background()
	video := &entity.Video{ID: videoID, Owner: aliceID, VideoFile: "http://cdn/videos/v.mp4", Thumbnail: "http://cdn/images/t.png"}

	f.videos.On("Delete", ctx, videoID, aliceID).Return(video, nil)
	f.likes.On("DeleteBySubject", ctx, entity.LikeVideo, videoID).Return(nil)
	commentIDs := []string{"65f0c0ffee00000000000c01", "65f0c0ffee00000000000c02"}
	f.comments.On("ListIDsByVideo", ctx, videoID).Return(commentIDs, nil)
	f.likes.On("DeleteBySubjects", ctx, entity.LikeComment, commentIDs).Return(nil)
	f.comments.On("DeleteByVideo", ctx, videoID).Return(nil)
	f.storage.On("Delete", ctx, video.VideoFile, service.AssetVideo).Return(errors.New("gone"))
	f.storage.On("Delete", ctx, video.Thumbnail, service.AssetImage).Return(nil)
	f.cache.On("Invalidate", ctx, aliceID).Return(nil)

	require.NoError(t, f.srv.Delete(ctx, videoID, aliceID), "asset cleanup failures are not fatal")
}

func TestVideoService_TogglePublish(t *testing.T) {
	f := newVideoFixture(t)
	ctx := context.Background()

	f.videos.On("TogglePublish", ctx, videoID, aliceID).Return(&entity.Video{ID: videoID, IsPublished: false}, nil)
	f.cache.On("Invalidate", ctx, aliceID).Return(errors.New("redis down"))

	video, err := f.srv.TogglePublish(ctx, videoID, aliceID)

	require.NoError(t, err)
	assert.False(t, video.IsPublished)
}
