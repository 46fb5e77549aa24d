package impl

import (
	"context"
	"log/slog"
	"net"
	"time"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/lifecycle"
	"vidtube/internal/domain/repository"
	"vidtube/internal/usecase"

	"go.uber.org/fx"
)

type healthService struct {
	healthRepo repository.HealthRepository
	addrs      func() ([]net.Addr, error)
	now        func() time.Time
	logger     *slog.Logger
}

type HealthServiceParams struct {
	fx.In

	HealthRepo repository.HealthRepository
	Logger     *slog.Logger
}

func NewHealthService(params HealthServiceParams) usecase.HealthUsecase {
	return &healthService{
		healthRepo: params.HealthRepo,
		addrs:      net.InterfaceAddrs,
		now:        time.Now,
		logger:     params.Logger,
	}
}

// Check pings the database and lists the host's IPv4 addresses.
func (srv *healthService) Check(ctx context.Context) *usecase.HealthStatus {
	status := &usecase.HealthStatus{
		Healthy: true,
		Message: "database is connected",
		Hosts:   srv.ipv4Hosts(ctx),
		Time:    srv.now().UTC(),
	}

	pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := srv.healthRepo.Ping(pingCtx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Database ping failed", slog.Any("error", err))
		status.Healthy = false
		status.Message = "database is disconnected"
	}

	return status
}

func (srv *healthService) ipv4Hosts(ctx context.Context) []string {
	hosts := []string{}

	addrs, err := srv.addrs()
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Failed to list interface addresses", slog.Any("error", err))

		return hosts
	}

	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}
		if ip4 := ipNet.IP.To4(); ip4 != nil {
			hosts = append(hosts, ip4.String())
		}
	}

	return hosts
}
