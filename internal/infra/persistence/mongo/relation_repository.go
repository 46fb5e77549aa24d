package mongo

import (
	"context"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/errors"
	"vidtube/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

type likeRepository struct {
	likes *mongodriver.Collection
}

func NewLikeRepository(db *mongodriver.Database) repository.LikeRepository {
	return &likeRepository{likes: db.Collection(model.LikesCollection)}
}

func (repo *likeRepository) Find(ctx context.Context, subject entity.LikeSubject, subjectID, userID string) (*entity.Like, error) {
	oids, err := parseIDs(subjectID, userID)
	if err != nil {
		return nil, err
	}

	filter := bson.D{
		{Key: string(subject), Value: oids[0]},
		{Key: "likedBy", Value: oids[1]},
	}

	var likeM model.LikeModel
	if err := repo.likes.FindOne(ctx, filter).Decode(&likeM); err != nil {
		return nil, notFoundOr(err, repository.ErrLikeNotFound, "failed to find like")
	}

	return toLikeDomain(&likeM), nil
}

// Create relies on the partial unique index of the subject to reject a second like.
func (repo *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	oids, err := parseIDs(like.SubjectID, like.LikedBy)
	if err != nil {
		return err
	}

	likeM := fromLikeDomain(like, oids[0], oids[1])
	ts := now()
	likeM.CreatedAt, likeM.UpdatedAt = ts, ts

	res, err := repo.likes.InsertOne(ctx, likeM)
	if err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return errors.Wrap(repository.ErrLikeExists, like.SubjectID)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create like")
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	like.ID = oid.Hex()
	like.CreatedAt = ts

	return nil
}

func (repo *likeRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := repo.likes.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete like")
	}
	if res.DeletedCount == 0 {
		return errors.Wrap(repository.ErrLikeNotFound, id)
	}

	return nil
}

func (repo *likeRepository) DeleteBySubject(ctx context.Context, subject entity.LikeSubject, subjectID string) error {
	oid, err := parseID(subjectID)
	if err != nil {
		return err
	}

	if _, err := repo.likes.DeleteMany(ctx, bson.D{{Key: string(subject), Value: oid}}); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete likes of "+string(subject))
	}

	return nil
}

func (repo *likeRepository) DeleteBySubjects(ctx context.Context, subject entity.LikeSubject, subjectIDs []string) error {
	if len(subjectIDs) == 0 {
		return nil
	}
	oids, err := parseIDs(subjectIDs...)
	if err != nil {
		return err
	}

	filter := bson.D{{Key: string(subject), Value: bson.D{{Key: "$in", Value: oids}}}}
	if _, err := repo.likes.DeleteMany(ctx, filter); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete likes of "+string(subject))
	}

	return nil
}

type subscriptionRepository struct {
	subscriptions *mongodriver.Collection
}

func NewSubscriptionRepository(db *mongodriver.Database) repository.SubscriptionRepository {
	return &subscriptionRepository{subscriptions: db.Collection(model.SubscriptionsCollection)}
}

func (repo *subscriptionRepository) Find(ctx context.Context, subscriberID, channelID string) (*entity.Subscription, error) {
	oids, err := parseIDs(subscriberID, channelID)
	if err != nil {
		return nil, err
	}

	filter := bson.D{
		{Key: "subscriber", Value: oids[0]},
		{Key: "channel", Value: oids[1]},
	}

	var subM model.SubscriptionModel
	if err := repo.subscriptions.FindOne(ctx, filter).Decode(&subM); err != nil {
		return nil, notFoundOr(err, repository.ErrSubscriptionNotFound, "failed to find subscription")
	}

	return toSubscriptionDomain(&subM), nil
}

func (repo *subscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	oids, err := parseIDs(sub.Subscriber, sub.Channel)
	if err != nil {
		return err
	}

	ts := now()
	res, err := repo.subscriptions.InsertOne(ctx, &model.SubscriptionModel{
		Subscriber: oids[0],
		Channel:    oids[1],
		CreatedAt:  ts,
		UpdatedAt:  ts,
	})
	if err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return errors.Wrap(repository.ErrSubscriptionExists, sub.Channel)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	sub.ID = oid.Hex()
	sub.CreatedAt = ts

	return nil
}

func (repo *subscriptionRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := repo.subscriptions.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete subscription")
	}
	if res.DeletedCount == 0 {
		return errors.Wrap(repository.ErrSubscriptionNotFound, id)
	}

	return nil
}
