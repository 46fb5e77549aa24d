package handler

import (
	"vidtube/internal/delivery/api/response"
	"vidtube/internal/domain/entity"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
)

type LikeHandler struct {
	uc usecase.LikeUsecase
}

func NewLikeHandler(uc usecase.LikeUsecase) *LikeHandler {
	return &LikeHandler{uc: uc}
}

type likeToggleResponse struct {
	IsLiked bool `json:"isLiked"`
}

type videoLikesResponse struct {
	VideoLikes      []entity.LikedVideo `json:"videoLikes"`
	VideoLikesCount int64               `json:"videoLikesCount"`
}

func (h *LikeHandler) ToggleVideo(c echo.Context) error {
	return h.toggle(c, entity.LikeVideo, "videoId")
}

func (h *LikeHandler) ToggleComment(c echo.Context) error {
	return h.toggle(c, entity.LikeComment, "commentId")
}

func (h *LikeHandler) ToggleTweet(c echo.Context) error {
	return h.toggle(c, entity.LikeTweet, "tweetId")
}

func (h *LikeHandler) toggle(c echo.Context, subject entity.LikeSubject, param string) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	liked, err := h.uc.Toggle(c.Request().Context(), subject, c.Param(param), identity.ID)
	if err != nil {
		return err
	}

	if liked {
		return response.Created(c, likeToggleResponse{IsLiked: true}, "Liked "+string(subject))
	}

	return response.OK(c, likeToggleResponse{IsLiked: false}, "Unliked "+string(subject))
}

func (h *LikeHandler) LikedVideos(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	likes, err := h.uc.LikedVideos(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	return response.OK(c, nonNil(likes), "Liked videos fetched successfully")
}

func (h *LikeHandler) LikedComments(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	likes, err := h.uc.LikedComments(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	return response.OK(c, nonNil(likes), "Liked comments fetched successfully")
}

func (h *LikeHandler) LikedTweets(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	likes, err := h.uc.LikedTweets(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	return response.OK(c, nonNil(likes), "Liked tweets fetched successfully")
}

func (h *LikeHandler) VideoLikes(c echo.Context) error {
	likes, err := h.uc.VideoLikes(c.Request().Context(), c.Param("videoId"))
	if err != nil {
		return err
	}

	return response.OK(c, videoLikesResponse{
		VideoLikes:      nonNil(likes.Likes),
		VideoLikesCount: likes.Count,
	}, "Video likes fetched successfully")
}

type SubscriptionHandler struct {
	uc usecase.SubscriptionUsecase
}

func NewSubscriptionHandler(uc usecase.SubscriptionUsecase) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc}
}

type subscriptionToggleResponse struct {
	IsSubscribed bool `json:"isSubscribed"`
}

func (h *SubscriptionHandler) Toggle(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	subscribed, err := h.uc.Toggle(c.Request().Context(), c.Param("channelId"), identity.ID)
	if err != nil {
		return err
	}

	if subscribed {
		return response.Created(c, subscriptionToggleResponse{IsSubscribed: true}, "Subscribed successfully")
	}

	return response.OK(c, subscriptionToggleResponse{IsSubscribed: false}, "Unsubscribed successfully")
}

func (h *SubscriptionHandler) Subscribers(c echo.Context) error {
	subscribers, err := h.uc.Subscribers(c.Request().Context(), c.Param("channelId"))
	if err != nil {
		return err
	}

	return response.OK(c, nonNil(subscribers), "Subscribers fetched successfully")
}

func (h *SubscriptionHandler) SubscribedChannels(c echo.Context) error {
	channels, err := h.uc.SubscribedChannels(c.Request().Context(), c.Param("subscriberId"))
	if err != nil {
		return err
	}

	return response.OK(c, nonNil(channels), "Subscribed channels fetched successfully")
}

type DashboardHandler struct {
	uc usecase.DashboardUsecase
}

func NewDashboardHandler(uc usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

type channelVideosResponse struct {
	Videos      []entity.Video `json:"videos"`
	TotalVideos int64          `json:"totalVideos"`
	Page        int            `json:"page"`
	TotalPages  int64          `json:"totalPages"`
}

func (h *DashboardHandler) Stats(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	stats, err := h.uc.Stats(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	return response.OK(c, stats, "Channel stats fetched successfully")
}

func (h *DashboardHandler) Videos(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	page, limit, err := pageParams(c)
	if err != nil {
		return err
	}

	result, err := h.uc.ChannelVideos(c.Request().Context(), identity.ID, page, limit)
	if err != nil {
		return err
	}

	return response.OK(c, channelVideosResponse{
		Videos:      nonNil(result.Items),
		TotalVideos: result.Total,
		Page:        result.Page,
		TotalPages:  result.TotalPages(),
	}, "Channel videos fetched successfully")
}

// nonNil keeps empty lists serialised as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
