package main

import (
	"context"
	"log/slog"
	"os"

	"vidtube/config"
	"vidtube/internal/delivery"
	"vidtube/internal/delivery/api"
	apimiddleware "vidtube/internal/delivery/api/middleware"
	"vidtube/internal/delivery/api/router/handler"
	"vidtube/internal/delivery/middleware"
	"vidtube/internal/infra/auth"
	"vidtube/internal/infra/cache"
	logs "vidtube/internal/infra/log"
	"vidtube/internal/infra/persistence/mongo"
	"vidtube/internal/infra/storage"
	"vidtube/internal/usecase"
	"vidtube/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		mongo.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongo.NewUserRepository,
			mongo.NewVideoRepository,
			mongo.NewCommentRepository,
			mongo.NewTweetRepository,
			mongo.NewPlaylistRepository,
			mongo.NewLikeRepository,
			mongo.NewSubscriptionRepository,
			mongo.NewReadModelRepository,
			mongo.NewHealthRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.NewS3Storage,
			cache.NewStatsCache,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			usecase.NewPagination,
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewVideoService,
			impl.NewCommentService,
			impl.NewTweetService,
			impl.NewPlaylistService,
			impl.NewLikeService,
			impl.NewSubscriptionService,
			impl.NewDashboardService,
			impl.NewHealthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
			middleware.NewMetricsMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewVideoHandler,
			handler.NewCommentHandler,
			handler.NewTweetHandler,
			handler.NewPlaylistHandler,
			handler.NewLikeHandler,
			handler.NewSubscriptionHandler,
			handler.NewDashboardHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
