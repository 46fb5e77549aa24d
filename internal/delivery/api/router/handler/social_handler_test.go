package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/errors"
	mockusecase "vidtube/internal/mocks/usecase"
	"vidtube/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLikeHandler_Toggle(t *testing.T) {
	uc := mockusecase.NewMockLikeUsecase(t)
	h := NewLikeHandler(uc)
	e := newTestEcho()
	e.POST("/likes/toggle/v/:videoId", h.ToggleVideo, as(aliceID))

	uc.On("Toggle", mock.Anything, entity.LikeVideo, videoID, aliceID).Return(true, nil).Once()
	uc.On("Toggle", mock.Anything, entity.LikeVideo, videoID, aliceID).Return(false, nil).Once()

	rec := serve(e, httptest.NewRequest(http.MethodPost, "/likes/toggle/v/"+videoID, nil))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, decodeData[likeToggleResponse](t, decode(t, rec)).IsLiked)

	rec = serve(e, httptest.NewRequest(http.MethodPost, "/likes/toggle/v/"+videoID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeData[likeToggleResponse](t, decode(t, rec)).IsLiked)
}

func TestLikeHandler_VideoLikes(t *testing.T) {
	uc := mockusecase.NewMockLikeUsecase(t)
	h := NewLikeHandler(uc)
	e := newTestEcho()
	e.GET("/likes/v/:videoId", h.VideoLikes, as(aliceID))

	uc.On("VideoLikes", mock.Anything, videoID).Return(&usecase.VideoLikes{Count: 0}, nil).Once()

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/likes/v/"+videoID, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"videoLikes":[],"videoLikesCount":0}`, string(decode(t, rec).Data))
}

func TestSubscriptionHandler_Toggle(t *testing.T) {
	uc := mockusecase.NewMockSubscriptionUsecase(t)
	h := NewSubscriptionHandler(uc)
	e := newTestEcho()
	e.POST("/subscriptions/c/:channelId", h.Toggle, as(aliceID))

	uc.On("Toggle", mock.Anything, aliceID, aliceID).
		Return(false, errors.WithStack(domainerrors.ErrSelfSubscription)).Once()

	rec := serve(e, httptest.NewRequest(http.MethodPost, "/subscriptions/c/"+aliceID, nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrSelfSubscription.ErrorCode(), decode(t, rec).Code)
}

func TestDashboardHandler_Videos(t *testing.T) {
	uc := mockusecase.NewMockDashboardUsecase(t)
	h := NewDashboardHandler(uc)
	e := newTestEcho()
	e.GET("/dashboard/videos", h.Videos, as(aliceID))

	uc.On("ChannelVideos", mock.Anything, aliceID, 3, 0).Return(&entity.Page[entity.Video]{
		Total:       21,
		PageRequest: entity.PageRequest{Page: 3, Limit: 10},
	}, nil).Once()

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/dashboard/videos?page=3", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"videos":[],"totalVideos":21,"page":3,"totalPages":3}`, string(decode(t, rec).Data))
}

func TestHealthHandler(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		status     *usecase.HealthStatus
		wantCode   int
		wantStatus string
	}{
		{
			name:       "healthy",
			status:     &usecase.HealthStatus{Healthy: true, Message: "database is connected", Hosts: []string{"10.0.0.2"}, Time: now},
			wantCode:   http.StatusOK,
			wantStatus: "ok",
		},
		{
			name:       "database down",
			status:     &usecase.HealthStatus{Message: "database is disconnected", Time: now},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockusecase.NewMockHealthUsecase(t)
			uc.On("Check", mock.Anything).Return(tt.status).Once()
			e := newTestEcho()
			e.GET("/healthcheck", NewHealthHandler(uc).HealthCheck)

			rec := serve(e, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

			require.Equal(t, tt.wantCode, rec.Code)
			env := decode(t, rec)
			assert.Equal(t, tt.wantCode == http.StatusOK, env.Success)
			body := decodeData[healthResponse](t, env)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.status.Message, body.Message)
			assert.NotNil(t, body.Host)
			assert.True(t, now.Equal(body.Time))
		})
	}
}
