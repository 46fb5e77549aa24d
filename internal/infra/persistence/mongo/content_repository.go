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

// exists reports whether a document with the id is present.
func exists(ctx context.Context, coll *mongodriver.Collection, id string) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, err
	}

	n, err := coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: oid}}, options.Count().SetLimit(1))
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check "+coll.Name())
	}

	return n > 0, nil
}

// deleteOwned removes a document only when ownerID owns it.
func deleteOwned(ctx context.Context, coll *mongodriver.Collection, id, ownerID string, notFound error) error {
	oids, err := parseIDs(id, ownerID)
	if err != nil {
		return err
	}

	res, err := coll.DeleteOne(ctx, ownedBy(oids[0], oids[1]))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete from "+coll.Name())
	}
	if res.DeletedCount == 0 {
		return errors.Wrap(notFound, id)
	}

	return nil
}

// updateOwned applies update to a document owned by ownerID and decodes the result into out.
func updateOwned(ctx context.Context, coll *mongodriver.Collection, id, ownerID string, update bson.D, notFound error, out any) error {
	oids, err := parseIDs(id, ownerID)
	if err != nil {
		return err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := coll.FindOneAndUpdate(ctx, ownedBy(oids[0], oids[1]), update, opts).Decode(out); err != nil {
		return notFoundOr(err, notFound, "failed to update "+coll.Name())
	}

	return nil
}

func setFields(fields ...bson.E) bson.D {
	return bson.D{{Key: "$set", Value: append(bson.D(fields), bson.E{Key: "updatedAt", Value: now()})}}
}

type commentRepository struct {
	comments *mongodriver.Collection
}

func NewCommentRepository(db *mongodriver.Database) repository.CommentRepository {
	return &commentRepository{comments: db.Collection(model.CommentsCollection)}
}

func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	oids, err := parseIDs(comment.Video, comment.Owner)
	if err != nil {
		return err
	}

	ts := now()
	commentM := &model.CommentModel{
		Content:   comment.Content,
		Video:     oids[0],
		Owner:     oids[1],
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	res, err := repo.comments.InsertOne(ctx, commentM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	comment.ID = oid.Hex()
	comment.CreatedAt = ts
	comment.UpdatedAt = ts

	return nil
}

func (repo *commentRepository) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, repo.comments, id)
}

func (repo *commentRepository) Update(ctx context.Context, id, ownerID, content string) (*entity.Comment, error) {
	var commentM model.CommentModel
	update := setFields(bson.E{Key: "content", Value: content})
	if err := updateOwned(ctx, repo.comments, id, ownerID, update, repository.ErrCommentNotFound, &commentM); err != nil {
		return nil, err
	}

	return toCommentDomain(&commentM), nil
}

func (repo *commentRepository) Delete(ctx context.Context, id, ownerID string) error {
	return deleteOwned(ctx, repo.comments, id, ownerID, repository.ErrCommentNotFound)
}

func (repo *commentRepository) ListIDsByVideo(ctx context.Context, videoID string) ([]string, error) {
	oid, err := parseID(videoID)
	if err != nil {
		return nil, err
	}

	cursor, err := repo.comments.Find(ctx, bson.D{{Key: "video", Value: oid}},
		options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list video comments")
	}

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode video comments")
	}

	oids := make([]primitive.ObjectID, 0, len(docs))
	for _, doc := range docs {
		oids = append(oids, doc.ID)
	}

	return hexIDs(oids), nil
}

func (repo *commentRepository) DeleteByVideo(ctx context.Context, videoID string) error {
	oid, err := parseID(videoID)
	if err != nil {
		return err
	}

	if _, err := repo.comments.DeleteMany(ctx, bson.D{{Key: "video", Value: oid}}); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete video comments")
	}

	return nil
}

type tweetRepository struct {
	tweets *mongodriver.Collection
}

func NewTweetRepository(db *mongodriver.Database) repository.TweetRepository {
	return &tweetRepository{tweets: db.Collection(model.TweetsCollection)}
}

func (repo *tweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	owner, err := parseID(tweet.Owner)
	if err != nil {
		return err
	}

	ts := now()
	res, err := repo.tweets.InsertOne(ctx, &model.TweetModel{
		Content:   tweet.Content,
		Owner:     owner,
		CreatedAt: ts,
		UpdatedAt: ts,
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create tweet")
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	tweet.ID = oid.Hex()
	tweet.CreatedAt = ts
	tweet.UpdatedAt = ts

	return nil
}

func (repo *tweetRepository) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, repo.tweets, id)
}

func (repo *tweetRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Tweet, error) {
	owner, err := parseID(ownerID)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := repo.tweets.Find(ctx, bson.D{{Key: "owner", Value: owner}}, opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list tweets")
	}

	var tweetsM []model.TweetModel
	if err := cursor.All(ctx, &tweetsM); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode tweets")
	}

	return mapAll(tweetsM, func(m *model.TweetModel) entity.Tweet { return *toTweetDomain(m) }), nil
}

func (repo *tweetRepository) Update(ctx context.Context, id, ownerID, content string) (*entity.Tweet, error) {
	var tweetM model.TweetModel
	update := setFields(bson.E{Key: "content", Value: content})
	if err := updateOwned(ctx, repo.tweets, id, ownerID, update, repository.ErrTweetNotFound, &tweetM); err != nil {
		return nil, err
	}

	return toTweetDomain(&tweetM), nil
}

func (repo *tweetRepository) Delete(ctx context.Context, id, ownerID string) error {
	return deleteOwned(ctx, repo.tweets, id, ownerID, repository.ErrTweetNotFound)
}

type playlistRepository struct {
	playlists *mongodriver.Collection
}

func NewPlaylistRepository(db *mongodriver.Database) repository.PlaylistRepository {
	return &playlistRepository{playlists: db.Collection(model.PlaylistsCollection)}
}

func (repo *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	owner, err := parseID(playlist.Owner)
	if err != nil {
		return err
	}

	ts := now()
	res, err := repo.playlists.InsertOne(ctx, &model.PlaylistModel{
		Name:        playlist.Name,
		Description: playlist.Description,
		Videos:      []primitive.ObjectID{},
		Owner:       owner,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create playlist")
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	playlist.ID = oid.Hex()
	playlist.Videos = []string{}
	playlist.CreatedAt = ts
	playlist.UpdatedAt = ts

	return nil
}

func (repo *playlistRepository) FindByID(ctx context.Context, id string) (*entity.Playlist, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var playlistM model.PlaylistModel
	if err := repo.playlists.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&playlistM); err != nil {
		return nil, notFoundOr(err, repository.ErrPlaylistNotFound, "failed to find playlist")
	}

	return toPlaylistDomain(&playlistM), nil
}

func (repo *playlistRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Playlist, error) {
	owner, err := parseID(ownerID)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := repo.playlists.Find(ctx, bson.D{{Key: "owner", Value: owner}}, opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list playlists")
	}

	var playlistsM []model.PlaylistModel
	if err := cursor.All(ctx, &playlistsM); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode playlists")
	}

	return mapAll(playlistsM, func(m *model.PlaylistModel) entity.Playlist { return *toPlaylistDomain(m) }), nil
}

func (repo *playlistRepository) Update(ctx context.Context, id, ownerID, name, description string) (*entity.Playlist, error) {
	update := setFields(
		bson.E{Key: "name", Value: name},
		bson.E{Key: "description", Value: description},
	)

	return repo.updateOwned(ctx, id, ownerID, update)
}

func (repo *playlistRepository) Delete(ctx context.Context, id, ownerID string) error {
	return deleteOwned(ctx, repo.playlists, id, ownerID, repository.ErrPlaylistNotFound)
}

func (repo *playlistRepository) AddVideo(ctx context.Context, id, ownerID, videoID string) (*entity.Playlist, error) {
	return repo.changeVideos(ctx, id, ownerID, videoID, "$addToSet")
}

func (repo *playlistRepository) RemoveVideo(ctx context.Context, id, ownerID, videoID string) (*entity.Playlist, error) {
	return repo.changeVideos(ctx, id, ownerID, videoID, "$pull")
}

func (repo *playlistRepository) changeVideos(ctx context.Context, id, ownerID, videoID, operator string) (*entity.Playlist, error) {
	video, err := parseID(videoID)
	if err != nil {
		return nil, err
	}

	update := bson.D{
		{Key: operator, Value: bson.D{{Key: "videos", Value: video}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: now()}}},
	}

	return repo.updateOwned(ctx, id, ownerID, update)
}

func (repo *playlistRepository) updateOwned(ctx context.Context, id, ownerID string, update bson.D) (*entity.Playlist, error) {
	var playlistM model.PlaylistModel
	if err := updateOwned(ctx, repo.playlists, id, ownerID, update, repository.ErrPlaylistNotFound, &playlistM); err != nil {
		return nil, err
	}

	return toPlaylistDomain(&playlistM), nil
}
