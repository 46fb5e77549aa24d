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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type videoRepository struct {
	videos *mongodriver.Collection
}

func NewVideoRepository(db *mongodriver.Database) repository.VideoRepository {
	return &videoRepository{videos: db.Collection(model.VideosCollection)}
}

// ownedBy matches a document by id and owner, so a foreign id looks missing.
func ownedBy(id, owner primitive.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}}
}

func (repo *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	owner, err := parseID(video.Owner)
	if err != nil {
		return err
	}

	ts := now()
	videoM := &model.VideoModel{
		VideoFile:   video.VideoFile,
		Thumbnail:   video.Thumbnail,
		Title:       video.Title,
		Description: video.Description,
		Duration:    video.Duration,
		Viewers:     []primitive.ObjectID{},
		IsPublished: video.IsPublished,
		Owner:       owner,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	res, err := repo.videos.InsertOne(ctx, videoM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create video")
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	video.ID = oid.Hex()
	video.Views = 0
	video.Viewers = []string{}
	video.CreatedAt = ts
	video.UpdatedAt = ts

	return nil
}

func (repo *videoRepository) FindByID(ctx context.Context, id string) (*entity.Video, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var videoM model.VideoModel
	if err := repo.videos.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&videoM); err != nil {
		return nil, notFoundOr(err, repository.ErrVideoNotFound, "failed to find video")
	}

	return toVideoDomain(&videoM), nil
}

func (repo *videoRepository) Update(ctx context.Context, id, ownerID string, update repository.VideoUpdate) (*entity.Video, error) {
	set := bson.D{{Key: "updatedAt", Value: now()}}
	if update.Title != "" {
		set = append(set, bson.E{Key: "title", Value: update.Title})
	}
	if update.Description != "" {
		set = append(set, bson.E{Key: "description", Value: update.Description})
	}
	if update.Thumbnail != "" {
		set = append(set, bson.E{Key: "thumbnail", Value: update.Thumbnail})
	}

	return repo.findOwnedAndUpdate(ctx, id, ownerID, bson.D{{Key: "$set", Value: set}})
}

// TogglePublish flips the flag server side so concurrent toggles cannot lose an update.
func (repo *videoRepository) TogglePublish(ctx context.Context, id, ownerID string) (*entity.Video, error) {
	flip := mongodriver.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "isPublished", Value: bson.D{{Key: "$not", Value: bson.A{"$isPublished"}}}},
			{Key: "updatedAt", Value: now()},
		}}},
	}

	return repo.findOwnedAndUpdate(ctx, id, ownerID, flip)
}

func (repo *videoRepository) findOwnedAndUpdate(ctx context.Context, id, ownerID string, update any) (*entity.Video, error) {
	oids, err := parseIDs(id, ownerID)
	if err != nil {
		return nil, err
	}

	var videoM model.VideoModel
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := repo.videos.FindOneAndUpdate(ctx, ownedBy(oids[0], oids[1]), update, opts).Decode(&videoM); err != nil {
		return nil, notFoundOr(err, repository.ErrVideoNotFound, "failed to update video")
	}

	return toVideoDomain(&videoM), nil
}

func (repo *videoRepository) Delete(ctx context.Context, id, ownerID string) (*entity.Video, error) {
	oids, err := parseIDs(id, ownerID)
	if err != nil {
		return nil, err
	}

	var videoM model.VideoModel
	if err := repo.videos.FindOneAndDelete(ctx, ownedBy(oids[0], oids[1])).Decode(&videoM); err != nil {
		return nil, notFoundOr(err, repository.ErrVideoNotFound, "failed to delete video")
	}

	return toVideoDomain(&videoM), nil
}

// RecordView counts each viewer once. The $ne guard keeps the update atomic
// against concurrent views by the same user.
func (repo *videoRepository) RecordView(ctx context.Context, videoID, viewerID string) (bool, error) {
	oids, err := parseIDs(videoID, viewerID)
	if err != nil {
		return false, err
	}
	video, viewer := oids[0], oids[1]

	filter := bson.D{
		{Key: "_id", Value: video},
		{Key: "viewers", Value: bson.D{{Key: "$ne", Value: viewer}}},
	}
	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: "viewers", Value: viewer}}},
		{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}},
	}

	res, err := repo.videos.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to record view")
	}
	if res.MatchedCount > 0 {
		return true, nil
	}

	// distinguish "already counted" from "no such video"
	n, err := repo.videos.CountDocuments(ctx, bson.D{{Key: "_id", Value: video}}, options.Count().SetLimit(1))
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check video")
	}
	if n == 0 {
		return false, errors.Wrap(repository.ErrVideoNotFound, videoID)
	}

	return false, nil
}
