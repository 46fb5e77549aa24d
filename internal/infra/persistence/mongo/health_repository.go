package mongo

import (
	"context"

	"vidtube/internal/domain/repository"
	"vidtube/internal/errors"

	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type healthRepository struct {
	client *mongodriver.Client
}

func NewHealthRepository(db *mongodriver.Database) repository.HealthRepository {
	return &healthRepository{client: db.Client()}
}

func (repo *healthRepository) Ping(ctx context.Context) error {
	return errors.Wrap(repo.client.Ping(ctx, readpref.Primary()), "mongo ping")
}
