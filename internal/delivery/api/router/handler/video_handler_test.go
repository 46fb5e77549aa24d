package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/errors"
	mockusecase "vidtube/internal/mocks/usecase"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVideoEcho(t *testing.T) (*echo.Echo, *mockusecase.MockVideoUsecase) {
	uc := mockusecase.NewMockVideoUsecase(t)
	h := NewVideoHandler(uc)

	e := newTestEcho()
	g := e.Group("/videos", as(aliceID))
	g.GET("", h.List)
	g.POST("", h.Publish)
	g.GET("/:videoId", h.Get)
	g.DELETE("/:videoId", h.Delete)

	return e, uc
}

func TestVideoHandler_List(t *testing.T) {
	e, uc := newVideoEcho(t)
	uc.On("List", mock.Anything, &usecase.ListVideosInput{
		Page:        2,
		Limit:       10,
		Query:       "go",
		SortBy:      "views",
		SortType:    "asc",
		RequesterID: aliceID,
	}).Return(&entity.Page[entity.VideoView]{
		Items:       make([]entity.VideoView, 10),
		Total:       25,
		PageRequest: entity.PageRequest{Page: 2, Limit: 10},
	}, nil).Once()

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/videos?page=2&limit=10&query=go&sortBy=views&sortType=asc", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeData[listVideosResponse](t, decode(t, rec))
	assert.Len(t, body.Videos, 10)
	assert.Equal(t, videoPagination{TotalVideos: 25, TotalPages: 3, CurrentPage: 2, Limit: 10}, body.Pagination)
}

func TestVideoHandler_List_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantCode string
	}{
		{name: "zero page", query: "page=0", wantCode: domainerrors.ErrInvalidPage.ErrorCode()},
		{name: "non numeric limit", query: "limit=ten", wantCode: domainerrors.ErrInvalidPage.ErrorCode()},
		{name: "unknown sort direction", query: "sortType=sideways", wantCode: domainerrors.ErrValidationFailed.ErrorCode()},
		{name: "unknown sort field", query: "sortBy=password", wantCode: domainerrors.ErrValidationFailed.ErrorCode()},
		{name: "malformed owner id", query: "userId=xyz", wantCode: domainerrors.ErrValidationFailed.ErrorCode()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newVideoEcho(t)

			rec := serve(e, httptest.NewRequest(http.MethodGet, "/videos?"+tt.query, nil))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, decode(t, rec).Code)
		})
	}
}

func TestVideoHandler_Publish(t *testing.T) {
	e, uc := newVideoEcho(t)
	uc.On("Publish", mock.Anything, mock.MatchedBy(func(in *usecase.PublishVideoInput) bool {
		return in.OwnerID == aliceID &&
			in.Video != nil && in.Video.Kind == "video" && in.Video.Duration == 12.5 &&
			in.Thumbnail != nil && in.Thumbnail.Kind == "image"
	})).Return(&entity.Video{ID: videoID, Title: "Go tour", IsPublished: true}, nil).Once()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("title", "Go tour"))
	require.NoError(t, w.WriteField("description", "A walk through the language"))
	require.NoError(t, w.WriteField("duration", "12.5"))
	for field, name := range map[string]string{"videoFile": "tour.mp4", "thumbnail": "tour.png"} {
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write([]byte(name))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/videos", body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := serve(e, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestVideoHandler_Publish_ShortTitle(t *testing.T) {
	e, _ := newVideoEcho(t)

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("title", "Go"))
	require.NoError(t, w.WriteField("description", "A walk through the language"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/videos", body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := serve(e, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "title", env.Errors[0]["field"])
}

func TestVideoHandler_Get(t *testing.T) {
	e, uc := newVideoEcho(t)
	uc.On("Get", mock.Anything, videoID, aliceID).Return(&entity.Video{ID: videoID, Views: 1}, nil).Once()
	uc.On("Get", mock.Anything, "65b0000000000000000000ff", aliceID).
		Return(nil, errors.WithStack(domainerrors.ErrVideoNotFound)).Once()

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/videos/"+videoID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/videos/65b0000000000000000000ff", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domainerrors.ErrVideoNotFound.ErrorCode(), decode(t, rec).Code)
}

func TestVideoHandler_Delete_Unexpected(t *testing.T) {
	e, uc := newVideoEcho(t)
	uc.On("Delete", mock.Anything, videoID, aliceID).Return(errors.New("connection reset")).Once()

	rec := serve(e, httptest.NewRequest(http.MethodDelete, "/videos/"+videoID, nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "connection reset", env.Message)
	assert.Empty(t, env.Errors)
}
