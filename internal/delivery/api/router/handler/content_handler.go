package handler

import (
	"vidtube/internal/delivery/api/response"
	"vidtube/internal/domain/entity"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
)

type contentRequest struct {
	Content string `json:"content" form:"content" validate:"required,max=1000"`
}

type CommentHandler struct {
	uc usecase.CommentUsecase
}

func NewCommentHandler(uc usecase.CommentUsecase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

type commentPagination struct {
	TotalComments int64 `json:"totalComments"`
	TotalPages    int64 `json:"totalPages"`
	CurrentPage   int   `json:"currentPage"`
	Limit         int   `json:"limit"`
}

type listCommentsResponse struct {
	Comments   []entity.CommentView `json:"comments"`
	Pagination commentPagination    `json:"pagination"`
}

func (h *CommentHandler) List(c echo.Context) error {
	page, limit, err := pageParams(c)
	if err != nil {
		return err
	}

	result, err := h.uc.List(c.Request().Context(), c.Param("videoId"), page, limit)
	if err != nil {
		return err
	}

	return response.OK(c, listCommentsResponse{
		Comments: nonNil(result.Items),
		Pagination: commentPagination{
			TotalComments: result.Total,
			TotalPages:    result.TotalPages(),
			CurrentPage:   result.Page,
			Limit:         result.Limit,
		},
	}, "Comments fetched successfully")
}

func (h *CommentHandler) Add(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	var req contentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.uc.Add(c.Request().Context(), c.Param("videoId"), identity.ID, req.Content)
	if err != nil {
		return err
	}

	return response.Created(c, comment, "Comment added successfully")
}

func (h *CommentHandler) Update(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	var req contentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.uc.Update(c.Request().Context(), c.Param("commentId"), identity.ID, req.Content)
	if err != nil {
		return err
	}

	return response.OK(c, comment, "Comment updated successfully")
}

func (h *CommentHandler) Delete(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), c.Param("commentId"), identity.ID); err != nil {
		return err
	}

	return response.OK(c, map[string]any{}, "Comment deleted successfully")
}

type TweetHandler struct {
	uc usecase.TweetUsecase
}

func NewTweetHandler(uc usecase.TweetUsecase) *TweetHandler {
	return &TweetHandler{uc: uc}
}

func (h *TweetHandler) Create(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	var req contentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tweet, err := h.uc.Create(c.Request().Context(), identity.ID, req.Content)
	if err != nil {
		return err
	}

	return response.Created(c, tweet, "Tweet created successfully")
}

func (h *TweetHandler) ListByUser(c echo.Context) error {
	tweets, err := h.uc.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}

	return response.OK(c, nonNil(tweets), "Tweets fetched successfully")
}

func (h *TweetHandler) Update(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	var req contentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tweet, err := h.uc.Update(c.Request().Context(), c.Param("tweetId"), identity.ID, req.Content)
	if err != nil {
		return err
	}

	return response.OK(c, tweet, "Tweet updated successfully")
}

func (h *TweetHandler) Delete(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), c.Param("tweetId"), identity.ID); err != nil {
		return err
	}

	return response.OK(c, map[string]any{}, "Tweet deleted successfully")
}

type PlaylistHandler struct {
	uc usecase.PlaylistUsecase
}

func NewPlaylistHandler(uc usecase.PlaylistUsecase) *PlaylistHandler {
	return &PlaylistHandler{uc: uc}
}

type createPlaylistRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type updatePlaylistRequest struct {
	Name        string `json:"name" validate:"max=100"`
	Description string `json:"description" validate:"max=500"`
}

func (h *PlaylistHandler) Create(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	var req createPlaylistRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	playlist, err := h.uc.Create(c.Request().Context(), identity.ID, &usecase.PlaylistInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return response.Created(c, playlist, "Playlist created successfully")
}

func (h *PlaylistHandler) Get(c echo.Context) error {
	playlist, err := h.uc.Get(c.Request().Context(), c.Param("playlistId"))
	if err != nil {
		return err
	}

	return response.OK(c, playlist, "Playlist fetched successfully")
}

func (h *PlaylistHandler) ListByUser(c echo.Context) error {
	playlists, err := h.uc.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}

	return response.OK(c, nonNil(playlists), "User playlists fetched successfully")
}

func (h *PlaylistHandler) Update(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	var req updatePlaylistRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	playlist, err := h.uc.Update(c.Request().Context(), c.Param("playlistId"), identity.ID, &usecase.PlaylistInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return response.OK(c, playlist, "Playlist updated successfully")
}

func (h *PlaylistHandler) Delete(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), c.Param("playlistId"), identity.ID); err != nil {
		return err
	}

	return response.OK(c, map[string]any{}, "Playlist deleted successfully")
}

func (h *PlaylistHandler) AddVideo(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	playlist, err := h.uc.AddVideo(c.Request().Context(), c.Param("playlistId"), identity.ID, c.Param("videoId"))
	if err != nil {
		return err
	}

	return response.OK(c, playlist, "Video added to playlist successfully")
}

func (h *PlaylistHandler) RemoveVideo(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	playlist, err := h.uc.RemoveVideo(c.Request().Context(), c.Param("playlistId"), identity.ID, c.Param("videoId"))
	if err != nil {
		return err
	}

	return response.OK(c, playlist, "Video removed from playlist successfully")
}
