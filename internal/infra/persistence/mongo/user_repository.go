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

// identityProjection never selects credentials.
var identityProjection = bson.D{
	{Key: "username", Value: 1},
	{Key: "email", Value: 1},
	{Key: "fullName", Value: 1},
	{Key: "avatar", Value: 1},
	{Key: "coverImage", Value: 1},
}

type userRepository struct {
	users *mongodriver.Collection
}

// NewUserRepository returns the MongoDB backed credential store.
func NewUserRepository(db *mongodriver.Database) repository.UserRepository {
	return &userRepository{users: db.Collection(model.UsersCollection)}
}

// activeUser matches a user that has not been soft deleted.
func activeUser(id primitive.ObjectID) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "isDeleted", Value: bson.D{{Key: "$ne", Value: true}}},
	}
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	ts := now()
	userM := &model.UserModel{
		Username:     user.Username,
		Email:        user.Email,
		FullName:     user.FullName,
		Password:     user.Password,
		Avatar:       user.Avatar,
		CoverImage:   user.CoverImage,
		WatchHistory: []primitive.ObjectID{},
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	res, err := repo.users.InsertOne(ctx, userM)
	if err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return errors.Wrap(repository.ErrUserAlreadyExists, user.Username)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	user.ID = oid.Hex()
	user.WatchHistory = []string{}
	user.CreatedAt = ts
	user.UpdatedAt = ts

	return nil
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var userM model.UserModel
	if err := repo.users.FindOne(ctx, activeUser(oid)).Decode(&userM); err != nil {
		return nil, notFoundOr(err, repository.ErrUserNotFound, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) FindIdentityByID(ctx context.Context, id string) (*entity.Identity, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var userM model.UserModel
	opts := options.FindOne().SetProjection(identityProjection)
	if err := repo.users.FindOne(ctx, activeUser(oid), opts).Decode(&userM); err != nil {
		return nil, notFoundOr(err, repository.ErrUserNotFound, "failed to find identity by id")
	}

	return toIdentity(&userM), nil
}

// loginFilter ORs the non-empty login handles.
func loginFilter(username, email string) bson.A {
	or := bson.A{}
	if username != "" {
		or = append(or, bson.D{{Key: "username", Value: username}})
	}
	if email != "" {
		or = append(or, bson.D{{Key: "email", Value: email}})
	}

	return or
}

func (repo *userRepository) FindByLogin(ctx context.Context, username, email string) (*entity.User, error) {
	or := loginFilter(username, email)
	if len(or) == 0 {
		return nil, repository.ErrUserNotFound
	}

	filter := bson.D{
		{Key: "$or", Value: or},
		{Key: "isDeleted", Value: bson.D{{Key: "$ne", Value: true}}},
	}

	var userM model.UserModel
	if err := repo.users.FindOne(ctx, filter).Decode(&userM); err != nil {
		return nil, notFoundOr(err, repository.ErrUserNotFound, "failed to find user by login")
	}

	return toUserDomain(&userM), nil
}

// ExistsByUsernameOrEmail also sees soft-deleted users, whose handles stay reserved by the unique indexes.
func (repo *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	or := loginFilter(username, email)
	if len(or) == 0 {
		return false, nil
	}

	n, err := repo.users.CountDocuments(ctx, bson.D{{Key: "$or", Value: or}}, options.Count().SetLimit(1))
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check user existence")
	}

	return n > 0, nil
}

func (repo *userRepository) SetRefreshToken(ctx context.Context, id, token string) error {
	return repo.set(ctx, id, bson.D{{Key: "refreshToken", Value: token}})
}

func (repo *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return repo.set(ctx, id, bson.D{
		{Key: "password", Value: passwordHash},
		{Key: "refreshToken", Value: ""},
	})
}

func (repo *userRepository) SoftDelete(ctx context.Context, id string) error {
	return repo.set(ctx, id, bson.D{
		{Key: "isDeleted", Value: true},
		{Key: "refreshToken", Value: ""},
	})
}

// set applies a $set to an active user, bumping updatedAt.
func (repo *userRepository) set(ctx context.Context, id string, fields bson.D) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	fields = append(fields, bson.E{Key: "updatedAt", Value: now()})
	res, err := repo.users.UpdateOne(ctx, activeUser(oid), bson.D{{Key: "$set", Value: fields}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if res.MatchedCount == 0 {
		return errors.Wrap(repository.ErrUserNotFound, id)
	}

	return nil
}

func (repo *userRepository) UpdateAccount(ctx context.Context, id, fullName, email string) (*entity.Identity, error) {
	return repo.setAndReturn(ctx, id, bson.D{
		{Key: "fullName", Value: fullName},
		{Key: "email", Value: email},
	})
}

func (repo *userRepository) UpdateAvatar(ctx context.Context, id, url string) (*entity.Identity, error) {
	return repo.setAndReturn(ctx, id, bson.D{{Key: "avatar", Value: url}})
}

func (repo *userRepository) UpdateCoverImage(ctx context.Context, id, url string) (*entity.Identity, error) {
	return repo.setAndReturn(ctx, id, bson.D{{Key: "coverImage", Value: url}})
}

// setAndReturn applies a $set and returns the updated identity.
func (repo *userRepository) setAndReturn(ctx context.Context, id string, fields bson.D) (*entity.Identity, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	fields = append(fields, bson.E{Key: "updatedAt", Value: now()})
	opts := options.FindOneAndUpdate().
		SetProjection(identityProjection).
		SetReturnDocument(options.After)

	var userM model.UserModel
	err = repo.users.FindOneAndUpdate(ctx, activeUser(oid), bson.D{{Key: "$set", Value: fields}}, opts).Decode(&userM)
	if err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return nil, errors.Wrap(repository.ErrUserAlreadyExists, "email is taken")
		}

		return nil, notFoundOr(err, repository.ErrUserNotFound, "failed to update user")
	}

	return toIdentity(&userM), nil
}

func (repo *userRepository) AddToWatchHistory(ctx context.Context, userID, videoID string) (bool, error) {
	oids, err := parseIDs(userID, videoID)
	if err != nil {
		return false, err
	}
	user, video := oids[0], oids[1]

	filter := append(activeUser(user), bson.E{Key: "watchHistory", Value: bson.D{{Key: "$ne", Value: video}}})
	update := bson.D{{Key: "$push", Value: bson.D{{Key: "watchHistory", Value: video}}}}

	res, err := repo.users.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to record watch history")
	}

	return res.ModifiedCount > 0, nil
}
