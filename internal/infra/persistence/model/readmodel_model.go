package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Documents produced by aggregation pipelines.

type ChannelProfileModel struct {
	ID                      primitive.ObjectID `bson:"_id"`
	FullName                string             `bson:"fullName"`
	Username                string             `bson:"username"`
	Email                   string             `bson:"email"`
	Avatar                  string             `bson:"avatar"`
	CoverImage              string             `bson:"coverImage"`
	SubscribersCount        int64              `bson:"subscribersCount"`
	ChannelsSubscribedCount int64              `bson:"channelsSubscribedCount"`
	IsSubscribed            bool               `bson:"isSubscribed"`
}

type DashboardStatsModel struct {
	TotalViews       int64 `bson:"totalViews"`
	TotalVideos      int64 `bson:"totalVideos"`
	TotalSubscribers int64 `bson:"totalSubscribers"`
	TotalLikes       int64 `bson:"totalLikes"`
}

// FacetModel is the single document returned by a $facet pagination stage.
type FacetModel[T any] struct {
	Metadata []struct {
		Total int64 `bson:"total"`
	} `bson:"metadata"`
	Data []T `bson:"data"`
}

// Total is zero when the metadata branch counted nothing.
func (f FacetModel[T]) Total() int64 {
	if len(f.Metadata) == 0 {
		return 0
	}

	return f.Metadata[0].Total
}

type VideoSummaryModel struct {
	ID          primitive.ObjectID `bson:"_id"`
	VideoFile   string             `bson:"videoFile"`
	Thumbnail   string             `bson:"thumbnail"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Duration    float64            `bson:"duration"`
	Views       int64              `bson:"views"`
	IsPublished bool               `bson:"isPublished"`
	Owner       primitive.ObjectID `bson:"owner"`
}

type LikedVideoModel struct {
	ID           primitive.ObjectID `bson:"_id"`
	Video        primitive.ObjectID `bson:"video"`
	LikedBy      primitive.ObjectID `bson:"likedBy"`
	VideoDetails VideoSummaryModel  `bson:"videoDetails"`
}

type CommentSummaryModel struct {
	ID      primitive.ObjectID `bson:"_id"`
	Content string             `bson:"content"`
	Video   primitive.ObjectID `bson:"video"`
	Owner   primitive.ObjectID `bson:"owner"`
}

type LikedCommentModel struct {
	ID             primitive.ObjectID  `bson:"_id"`
	Comment        primitive.ObjectID  `bson:"comment"`
	LikedBy        primitive.ObjectID  `bson:"likedBy"`
	CommentDetails CommentSummaryModel `bson:"commentDetails"`
}

type TweetSummaryModel struct {
	ID      primitive.ObjectID `bson:"_id"`
	Content string             `bson:"content"`
	Owner   primitive.ObjectID `bson:"owner"`
}

type LikedTweetModel struct {
	ID           primitive.ObjectID `bson:"_id"`
	Tweet        primitive.ObjectID `bson:"tweet"`
	LikedBy      primitive.ObjectID `bson:"likedBy"`
	TweetDetails TweetSummaryModel  `bson:"tweetDetails"`
}

type SubscriberSummaryModel struct {
	FullName string `bson:"fullName"`
	Email    string `bson:"email"`
}

type ChannelSummaryModel struct {
	FullName   string `bson:"fullName"`
	Email      string `bson:"email"`
	Avatar     string `bson:"avatar"`
	CoverImage string `bson:"coverImage"`
}
