// Package cache memoises dashboard read models in Redis.
package cache

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"vidtube/config"
	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/lifecycle"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	keyPrefix       = "vidtube:dashboard:stats:"
	defaultStatsTTL = time.Minute
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewStatsCache returns a Redis backed cache, or a no-op cache when Redis is not configured.
func NewStatsCache(params Params) (service.StatsCache, error) {
	if params.Config.Redis == nil {
		params.Logger.Info("redis not configured, dashboard stats cache disabled")

		return noopStatsCache{}, nil
	}

	opt, err := redis.ParseURL(params.Config.Redis.URL)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis url")
	}
	rdb := redis.NewClient(opt)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(rdb.Ping(ctx).Err(), "ping redis")
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(rdb.Close())
		},
	})

	return newRedisStatsCache(rdb, params.Config.Redis.StatsTTL), nil
}

type redisStatsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func newRedisStatsCache(rdb *redis.Client, ttl time.Duration) *redisStatsCache {
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}

	return &redisStatsCache{rdb: rdb, ttl: ttl}
}

func (c *redisStatsCache) key(channelID string) string { return keyPrefix + channelID }

// Stored as a hash with one field per total.
func (c *redisStatsCache) Get(ctx context.Context, channelID string) (*entity.DashboardStats, error) {
	m, err := c.rdb.HGetAll(ctx, c.key(channelID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "redis hgetall")
	}
	if len(m) == 0 {
		return nil, nil
	}

	var stats entity.DashboardStats
	fields := map[string]*int64{
		"views":       &stats.TotalViews,
		"videos":      &stats.TotalVideos,
		"subscribers": &stats.TotalSubscribers,
		"likes":       &stats.TotalLikes,
	}
	for name, dst := range fields {
		v, err := strconv.ParseInt(m[name], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "cached %s", name)
		}
		*dst = v
	}

	return &stats, nil
}

func (c *redisStatsCache) Set(ctx context.Context, channelID string, stats *entity.DashboardStats) error {
	kv := map[string]string{
		"views":       strconv.FormatInt(stats.TotalViews, 10),
		"videos":      strconv.FormatInt(stats.TotalVideos, 10),
		"subscribers": strconv.FormatInt(stats.TotalSubscribers, 10),
		"likes":       strconv.FormatInt(stats.TotalLikes, 10),
	}

	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, c.key(channelID), kv)
	pipe.Expire(ctx, c.key(channelID), c.ttl)

	_, err := pipe.Exec(ctx)

	return errors.Wrap(err, "redis set stats")
}

func (c *redisStatsCache) Invalidate(ctx context.Context, channelID string) error {
	return errors.Wrap(c.rdb.Del(ctx, c.key(channelID)).Err(), "redis del stats")
}

type noopStatsCache struct{}

func (noopStatsCache) Get(context.Context, string) (*entity.DashboardStats, error) { return nil, nil }

func (noopStatsCache) Set(context.Context, string, *entity.DashboardStats) error { return nil }

func (noopStatsCache) Invalidate(context.Context, string) error { return nil }
