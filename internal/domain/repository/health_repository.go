package repository

import "context"

// HealthRepository probes the primary datastore.
type HealthRepository interface {
	Ping(ctx context.Context) error
}
