// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vidtube/internal/delivery/api/middleware"
	"vidtube/internal/delivery/api/router/handler"
	sharedmiddleware "vidtube/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	VideoHandler        *handler.VideoHandler
	CommentHandler      *handler.CommentHandler
	TweetHandler        *handler.TweetHandler
	PlaylistHandler     *handler.PlaylistHandler
	LikeHandler         *handler.LikeHandler
	SubscriptionHandler *handler.SubscriptionHandler
	DashboardHandler    *handler.DashboardHandler
	HealthHandler       *handler.HealthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *sharedmiddleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	videoHandler        *handler.VideoHandler
	commentHandler      *handler.CommentHandler
	tweetHandler        *handler.TweetHandler
	playlistHandler     *handler.PlaylistHandler
	likeHandler         *handler.LikeHandler
	subscriptionHandler *handler.SubscriptionHandler
	dashboardHandler    *handler.DashboardHandler
	healthHandler       *handler.HealthHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimit           *sharedmiddleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		userHandler:         params.UserHandler,
		videoHandler:        params.VideoHandler,
		commentHandler:      params.CommentHandler,
		tweetHandler:        params.TweetHandler,
		playlistHandler:     params.PlaylistHandler,
		likeHandler:         params.LikeHandler,
		subscriptionHandler: params.SubscriptionHandler,
		dashboardHandler:    params.DashboardHandler,
		healthHandler:       params.HealthHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimit:           params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	apiV1 := e.Group("/api/v1")

	apiV1.GET("/healthcheck", r.healthHandler.HealthCheck)

	// Credential endpoints are rate limited per client IP
	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup, r.rateLimit.Limit)
		authGroup.POST("/signin", r.authHandler.Signin, r.rateLimit.Limit)
		authGroup.POST("/refresh-token", r.authHandler.RefreshToken, r.rateLimit.Limit)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	protected := apiV1.Group("")
	protected.Use(r.authMiddleware.Authenticate)

	usersGroup := protected.Group("/users")
	{
		usersGroup.POST("/change-password", r.userHandler.ChangePassword)
		usersGroup.GET("/current-user", r.userHandler.CurrentUser)
		usersGroup.PATCH("/update-account", r.userHandler.UpdateAccount)
		usersGroup.PATCH("/update-avatar", r.userHandler.UpdateAvatar)
		usersGroup.PATCH("/update-cover-image", r.userHandler.UpdateCoverImage)
		usersGroup.GET("/channel-profile/:username", r.userHandler.ChannelProfile)
		usersGroup.GET("/watch-history", r.userHandler.WatchHistory)
		usersGroup.DELETE("", r.userHandler.DeleteAccount)
	}

	videosGroup := protected.Group("/videos")
	{
		videosGroup.GET("", r.videoHandler.List)
		videosGroup.POST("", r.videoHandler.Publish)
		videosGroup.GET("/:videoId", r.videoHandler.Get)
		videosGroup.PATCH("/:videoId", r.videoHandler.Update)
		videosGroup.DELETE("/:videoId", r.videoHandler.Delete)
		videosGroup.PATCH("/toggle/publish/:videoId", r.videoHandler.TogglePublish)
	}

	commentsGroup := protected.Group("/comments")
	{
		commentsGroup.GET("/:videoId", r.commentHandler.List)
		commentsGroup.POST("/:videoId", r.commentHandler.Add)
		commentsGroup.PATCH("/c/:commentId", r.commentHandler.Update)
		commentsGroup.DELETE("/c/:commentId", r.commentHandler.Delete)
	}

	tweetsGroup := protected.Group("/tweets")
	{
		tweetsGroup.POST("", r.tweetHandler.Create)
		tweetsGroup.GET("/user/:userId", r.tweetHandler.ListByUser)
		tweetsGroup.PATCH("/:tweetId", r.tweetHandler.Update)
		tweetsGroup.DELETE("/:tweetId", r.tweetHandler.Delete)
	}

	playlistGroup := protected.Group("/playlist")
	{
		playlistGroup.POST("", r.playlistHandler.Create)
		playlistGroup.GET("/user/:userId", r.playlistHandler.ListByUser)
		playlistGroup.GET("/:playlistId", r.playlistHandler.Get)
		playlistGroup.PATCH("/:playlistId", r.playlistHandler.Update)
		playlistGroup.DELETE("/:playlistId", r.playlistHandler.Delete)
		playlistGroup.PATCH("/add/:videoId/:playlistId", r.playlistHandler.AddVideo)
		playlistGroup.PATCH("/remove/:videoId/:playlistId", r.playlistHandler.RemoveVideo)
	}

	likesGroup := protected.Group("/likes")
	{
		likesGroup.POST("/toggle/v/:videoId", r.likeHandler.ToggleVideo)
		likesGroup.POST("/toggle/c/:commentId", r.likeHandler.ToggleComment)
		likesGroup.POST("/toggle/t/:tweetId", r.likeHandler.ToggleTweet)
		likesGroup.GET("/videos", r.likeHandler.LikedVideos)
		likesGroup.GET("/comments", r.likeHandler.LikedComments)
		likesGroup.GET("/tweets", r.likeHandler.LikedTweets)
		likesGroup.GET("/v/:videoId", r.likeHandler.VideoLikes)
	}

	subscriptionsGroup := protected.Group("/subscriptions")
	{
		subscriptionsGroup.POST("/c/:channelId", r.subscriptionHandler.Toggle)
		subscriptionsGroup.GET("/c/:channelId", r.subscriptionHandler.Subscribers)
		subscriptionsGroup.GET("/u/:subscriberId", r.subscriptionHandler.SubscribedChannels)
	}

	dashboardGroup := protected.Group("/dashboard")
	{
		dashboardGroup.GET("/stats", r.dashboardHandler.Stats)
		dashboardGroup.GET("/videos", r.dashboardHandler.Videos)
	}
}
