package handler

import (
	"strconv"

	"vidtube/internal/delivery/api/response"
	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/service"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
)

type VideoHandler struct {
	uc usecase.VideoUsecase
}

func NewVideoHandler(uc usecase.VideoUsecase) *VideoHandler {
	return &VideoHandler{uc: uc}
}

type listVideosQuery struct {
	Query    string `query:"query" validate:"max=200"`
	SortBy   string `query:"sortBy" validate:"omitempty,oneof=title description duration createdAt updatedAt views"`
	SortType string `query:"sortType" validate:"omitempty,oneof=asc desc"`
	UserID   string `query:"userId" validate:"omitempty,mongodb"`
}

type publishVideoRequest struct {
	Title       string `form:"title" validate:"required,min=3,max=100"`
	Description string `form:"description" validate:"required,min=10,max=500"`
	Duration    string `form:"duration" validate:"omitempty,numeric"`
}

type updateVideoRequest struct {
	Title       string `json:"title" form:"title" validate:"omitempty,min=3,max=100"`
	Description string `json:"description" form:"description" validate:"omitempty,min=10,max=500"`
}

type videoPagination struct {
	TotalVideos int64 `json:"totalVideos"`
	TotalPages  int64 `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	Limit       int   `json:"limit"`
}

type listVideosResponse struct {
	Videos     []entity.VideoView `json:"videos"`
	Pagination videoPagination    `json:"pagination"`
}

func (h *VideoHandler) List(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	page, limit, err := pageParams(c)
	if err != nil {
		return err
	}
	var q listVideosQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}

	result, err := h.uc.List(c.Request().Context(), &usecase.ListVideosInput{
		Page:        page,
		Limit:       limit,
		Query:       q.Query,
		SortBy:      q.SortBy,
		SortType:    q.SortType,
		UserID:      q.UserID,
		RequesterID: identity.ID,
	})
	if err != nil {
		return err
	}

	return response.OK(c, listVideosResponse{
		Videos: nonNil(result.Items),
		Pagination: videoPagination{
			TotalVideos: result.Total,
			TotalPages:  result.TotalPages(),
			CurrentPage: result.Page,
			Limit:       result.Limit,
		},
	}, "Videos fetched successfully")
}

// Publish expects the media under videoFile and the image under thumbnail.
func (h *VideoHandler) Publish(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	var req publishVideoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	video, closeVideo, err := formAsset(c, "videoFile", service.AssetVideo, true)
	if err != nil {
		return err
	}
	defer closeVideo()
	if req.Duration != "" {
		video.Duration, _ = strconv.ParseFloat(req.Duration, 64)
	}

	thumbnail, closeThumbnail, err := formAsset(c, "thumbnail", service.AssetImage, true)
	if err != nil {
		return err
	}
	defer closeThumbnail()

	published, err := h.uc.Publish(c.Request().Context(), &usecase.PublishVideoInput{
		OwnerID:     identity.ID,
		Title:       req.Title,
		Description: req.Description,
		Video:       video,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		return err
	}

	return response.Created(c, published, "Video published successfully")
}

func (h *VideoHandler) Get(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	video, err := h.uc.Get(c.Request().Context(), c.Param("videoId"), identity.ID)
	if err != nil {
		return err
	}

	return response.OK(c, video, "Video fetched successfully")
}

func (h *VideoHandler) Update(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	var req updateVideoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	thumbnail, closeThumbnail, err := formAsset(c, "thumbnail", service.AssetImage, false)
	if err != nil {
		return err
	}
	defer closeThumbnail()

	updated, err := h.uc.Update(c.Request().Context(), c.Param("videoId"), identity.ID, &usecase.UpdateVideoInput{
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		return err
	}

	return response.OK(c, updated, "Video updated successfully")
}

func (h *VideoHandler) Delete(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), c.Param("videoId"), identity.ID); err != nil {
		return err
	}

	return response.OK(c, map[string]any{}, "Video deleted successfully")
}

func (h *VideoHandler) TogglePublish(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	video, err := h.uc.TogglePublish(c.Request().Context(), c.Param("videoId"), identity.ID)
	if err != nil {
		return err
	}

	return response.OK(c, video, "Publish status toggled successfully")
}
