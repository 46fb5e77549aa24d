package usecase

import (
	"context"
	"time"
)

// HealthStatus reports the service and datastore state.
type HealthStatus struct {
	Healthy bool
	Message string
	Hosts   []string
	Time    time.Time
}

type HealthUsecase interface {
	Check(ctx context.Context) *HealthStatus
}
