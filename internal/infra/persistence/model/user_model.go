// Package model holds the BSON documents stored in MongoDB. One file per collection.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const UsersCollection = "users"

// UserModel mirrors a document in the 'users' collection.
type UserModel struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Username     string               `bson:"username"`
	Email        string               `bson:"email"`
	FullName     string               `bson:"fullName"`
	Password     string               `bson:"password,omitempty"`
	Avatar       string               `bson:"avatar"`
	CoverImage   string               `bson:"coverImage"`
	WatchHistory []primitive.ObjectID `bson:"watchHistory"`
	RefreshToken string               `bson:"refreshToken"`
	IsDeleted    bool                 `bson:"isDeleted"`
	CreatedAt    time.Time            `bson:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt"`
}

// OwnerModel is the public user projection joined into other documents.
type OwnerModel struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	FullName string             `bson:"fullName"`
	Email    string             `bson:"email,omitempty"`
	Avatar   string             `bson:"avatar"`
}
