package mongo

import (
	"context"

	"vidtube/internal/errors"
	"vidtube/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collectionIndexes lists the indexes each collection needs. Unique indexes back
// the username/email invariant and keep like and subscription pairs single.
func collectionIndexes() map[string][]mongodriver.IndexModel {
	return map[string][]mongodriver.IndexModel{
		model.UsersCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetName("username_unique").SetUnique(true)},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("email_unique").SetUnique(true)},
		},
		model.VideosCollection: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("owner_created_desc")},
			{Keys: bson.D{{Key: "isPublished", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("published_created_desc")},
		},
		model.CommentsCollection: {
			{Keys: bson.D{{Key: "video", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("video_created_desc")},
		},
		model.TweetsCollection: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("owner_created_desc")},
		},
		model.PlaylistsCollection: {
			{Keys: bson.D{{Key: "owner", Value: 1}}, Options: options.Index().SetName("owner")},
		},
		model.SubscriptionsCollection: {
			{Keys: bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}}, Options: options.Index().SetName("subscriber_channel_unique").SetUnique(true)},
			{Keys: bson.D{{Key: "channel", Value: 1}}, Options: options.Index().SetName("channel")},
		},
		model.LikesCollection: {
			likePairIndex("video"),
			likePairIndex("comment"),
			likePairIndex("tweet"),
			{Keys: bson.D{{Key: "likedBy", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("likedBy_created_desc")},
		},
	}
}

// likePairIndex only covers likes whose subject field is set.
func likePairIndex(subject string) mongodriver.IndexModel {
	opts := options.Index().
		SetName(subject + "_likedBy_unique").
		SetUnique(true).
		SetPartialFilterExpression(bson.D{{Key: subject, Value: bson.D{{Key: "$exists", Value: true}}}})

	return mongodriver.IndexModel{
		Keys:    bson.D{{Key: subject, Value: 1}, {Key: "likedBy", Value: 1}},
		Options: opts,
	}
}

// EnsureIndexes creates missing indexes; existing ones with the same keys and options are left alone.
func EnsureIndexes(ctx context.Context, db *mongodriver.Database) error {
	for collection, models := range collectionIndexes() {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "mongo ensure indexes on %s", collection)
		}
	}

	return nil
}
