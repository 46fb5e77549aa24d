package service

import (
	"context"

	"vidtube/internal/domain/entity"
)

// StatsCache memoises dashboard totals per channel.
// A miss returns (nil, nil).
type StatsCache interface {
	Get(ctx context.Context, channelID string) (*entity.DashboardStats, error)
	Set(ctx context.Context, channelID string, stats *entity.DashboardStats) error
	Invalidate(ctx context.Context, channelID string) error
}
