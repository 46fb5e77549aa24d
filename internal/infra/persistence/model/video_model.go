package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const VideosCollection = "videos"

// VideoModel mirrors a document in the 'videos' collection.
type VideoModel struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	VideoFile   string               `bson:"videoFile"`
	Thumbnail   string               `bson:"thumbnail"`
	Title       string               `bson:"title"`
	Description string               `bson:"description"`
	Duration    float64              `bson:"duration"`
	Views       int64                `bson:"views"`
	Viewers     []primitive.ObjectID `bson:"viewers"`
	IsPublished bool                 `bson:"isPublished"`
	Owner       primitive.ObjectID   `bson:"owner"`
	CreatedAt   time.Time            `bson:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt"`
}

// VideoViewModel is a video whose owner was replaced by the joined user.
type VideoViewModel struct {
	ID          primitive.ObjectID `bson:"_id"`
	VideoFile   string             `bson:"videoFile"`
	Thumbnail   string             `bson:"thumbnail"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Duration    float64            `bson:"duration"`
	Views       int64              `bson:"views"`
	IsPublished bool               `bson:"isPublished"`
	Owner       *OwnerModel        `bson:"owner"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}
