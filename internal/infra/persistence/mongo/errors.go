package mongo

import (
	"time"

	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// parseID converts a hex identifier, reporting ErrInvalidID for anything else.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(repository.ErrInvalidID, "%q", id)
	}

	return oid, nil
}

// parseIDs parses several identifiers, stopping at the first invalid one.
func parseIDs(ids ...string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := parseID(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}

	return oids, nil
}

func hexIDs(oids []primitive.ObjectID) []string {
	ids := make([]string, 0, len(oids))
	for _, oid := range oids {
		ids = append(ids, oid.Hex())
	}

	return ids
}

// notFoundOr maps ErrNoDocuments to the given sentinel and anything else to a database error.
func notFoundOr(err error, notFound error, details string) error {
	if errors.Is(err, mongodriver.ErrNoDocuments) {
		return errors.Wrap(notFound, details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// now is truncated to milliseconds, the precision MongoDB stores.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
