package mongo

import (
	"regexp"
	"strings"

	"vidtube/internal/domain/entity"
	"vidtube/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// Every read model follows match -> join -> unwind or size -> project.
// The builders below are pure so their shape can be tested without a server.

func matchStage(filter bson.D) bson.D {
	return bson.D{{Key: "$match", Value: filter}}
}

func sortStage(sort bson.D) bson.D {
	return bson.D{{Key: "$sort", Value: sort}}
}

func unwindStage(path string) bson.D {
	return bson.D{{Key: "$unwind", Value: "$" + path}}
}

func projectStage(fields bson.D) bson.D {
	return bson.D{{Key: "$project", Value: fields}}
}

// lookupStage is a plain foreign-key join.
func lookupStage(from, localField, foreignField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: foreignField},
		{Key: "as", Value: as},
	}}}
}

// lookupWithPipeline is a foreign-key join whose matches are reshaped by an inner pipeline.
func lookupWithPipeline(from, localField, foreignField, as string, inner mongodriver.Pipeline) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: foreignField},
		{Key: "as", Value: as},
		{Key: "pipeline", Value: inner},
	}}}
}

func include(fields ...string) bson.D {
	projection := make(bson.D, 0, len(fields))
	for _, f := range fields {
		projection = append(projection, bson.E{Key: f, Value: 1})
	}

	return projection
}

// ownerJoin resolves the owner id into a single embedded user document.
func ownerJoin(projection bson.D) []bson.D {
	return []bson.D{
		lookupWithPipeline(model.UsersCollection, "owner", "_id", "owner", mongodriver.Pipeline{
			projectStage(projection),
		}),
		unwindStage("owner"),
	}
}

// facetPage splits one match into a total count and a page window. The count
// branch never sees skip/limit, so the total is independent of the window.
// Joins run inside the data branch to only touch the page's documents.
func facetPage(page entity.PageRequest, join ...bson.D) bson.D {
	data := bson.A{
		bson.D{{Key: "$skip", Value: page.Skip()}},
		bson.D{{Key: "$limit", Value: int64(page.Limit)}},
	}
	for _, stage := range join {
		data = append(data, stage)
	}

	return bson.D{{Key: "$facet", Value: bson.D{
		{Key: "metadata", Value: bson.A{bson.D{{Key: "$count", Value: "total"}}}},
		{Key: "data", Value: data},
	}}}
}

// channelProfilePipeline joins subscriptions twice: once as the channel, once as the subscriber.
func channelProfilePipeline(username string, requester primitive.ObjectID) mongodriver.Pipeline {
	return mongodriver.Pipeline{
		matchStage(bson.D{
			{Key: "username", Value: strings.ToLower(strings.TrimSpace(username))},
			{Key: "isDeleted", Value: bson.D{{Key: "$ne", Value: true}}},
		}),
		lookupStage(model.SubscriptionsCollection, "_id", "channel", "subscribers"),
		lookupStage(model.SubscriptionsCollection, "_id", "subscriber", "subscribedTo"),
		{{Key: "$addFields", Value: bson.D{
			{Key: "subscribersCount", Value: bson.D{{Key: "$size", Value: "$subscribers"}}},
			{Key: "channelsSubscribedCount", Value: bson.D{{Key: "$size", Value: "$subscribedTo"}}},
			{Key: "isSubscribed", Value: bson.D{{Key: "$in", Value: bson.A{requester, "$subscribers.subscriber"}}}},
		}}},
		projectStage(include(
			"fullName",
			"username",
			"email",
			"avatar",
			"coverImage",
			"subscribersCount",
			"channelsSubscribedCount",
			"isSubscribed",
		)),
	}
}

// dashboardStatsPipeline totals a channel's videos, subscribers and likes.
// A channel without videos produces no document.
func dashboardStatsPipeline(channel primitive.ObjectID) mongodriver.Pipeline {
	return mongodriver.Pipeline{
		matchStage(bson.D{{Key: "owner", Value: channel}}),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$owner"},
			{Key: "totalViews", Value: bson.D{{Key: "$sum", Value: "$views"}}},
			{Key: "totalVideos", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "videoIds", Value: bson.D{{Key: "$addToSet", Value: "$_id"}}},
		}}},
		lookupStage(model.SubscriptionsCollection, "_id", "channel", "subscriptions"),
		{{Key: "$addFields", Value: bson.D{
			{Key: "totalSubscribers", Value: bson.D{{Key: "$size", Value: "$subscriptions"}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: model.LikesCollection},
			{Key: "let", Value: bson.D{{Key: "videoIds", Value: "$videoIds"}}},
			{Key: "pipeline", Value: mongodriver.Pipeline{
				matchStage(bson.D{{Key: "$expr", Value: bson.D{{Key: "$in", Value: bson.A{"$video", "$$videoIds"}}}}}),
				{{Key: "$group", Value: bson.D{
					{Key: "_id", Value: "$video"},
					{Key: "totalLikes", Value: bson.D{{Key: "$sum", Value: 1}}},
				}}},
			}},
			{Key: "as", Value: "videoLikes"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "totalLikes", Value: bson.D{{Key: "$sum", Value: "$videoLikes.totalLikes"}}},
		}}},
		projectStage(bson.D{
			{Key: "_id", Value: 0},
			{Key: "totalViews", Value: 1},
			{Key: "totalVideos", Value: 1},
			{Key: "totalLikes", Value: 1},
			{Key: "totalSubscribers", Value: 1},
		}),
	}
}

// watchHistoryPipeline unwinds the history with each entry's position so the
// joined videos come back in watch order; deleted videos drop out.
func watchHistoryPipeline(user primitive.ObjectID) mongodriver.Pipeline {
	return mongodriver.Pipeline{
		matchStage(bson.D{{Key: "_id", Value: user}}),
		projectStage(include("watchHistory")),
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$watchHistory"},
			{Key: "includeArrayIndex", Value: "position"},
		}}},
		lookupWithPipeline(model.VideosCollection, "watchHistory", "_id", "video", mongodriver.Pipeline{
			lookupWithPipeline(model.UsersCollection, "owner", "_id", "owner", mongodriver.Pipeline{
				projectStage(include("fullName", "username", "avatar")),
			}),
			{{Key: "$addFields", Value: bson.D{{Key: "owner", Value: bson.D{{Key: "$first", Value: "$owner"}}}}}},
		}),
		unwindStage("video"),
		sortStage(bson.D{{Key: "position", Value: 1}}),
		{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$video"}}}},
	}
}

// videoListFilter builds the match for a video listing. The query is matched
// literally, case-insensitive, against title and description.
func videoListFilter(filter entity.VideoFilter, owner *primitive.ObjectID) bson.D {
	match := bson.D{}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
		match = append(match, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: pattern}},
			bson.D{{Key: "description", Value: pattern}},
		}})
	}
	if owner != nil {
		match = append(match, bson.E{Key: "owner", Value: *owner})
	}
	if filter.OnlyPublished {
		match = append(match, bson.E{Key: "isPublished", Value: true})
	}

	return match
}

// videoListPipeline sorts by the requested field with _id as a stable tie-break.
func videoListPipeline(filter entity.VideoFilter, owner *primitive.ObjectID, page entity.PageRequest) mongodriver.Pipeline {
	direction := -1
	if filter.Ascending {
		direction = 1
	}
	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = entity.SortByCreatedAt
	}

	return mongodriver.Pipeline{
		matchStage(videoListFilter(filter, owner)),
		sortStage(bson.D{{Key: string(sortBy), Value: direction}, {Key: "_id", Value: direction}}),
		facetPage(page, ownerJoin(include("fullName", "username", "avatar"))...),
	}
}

// channelVideosPipeline pages every video of a channel, newest first.
func channelVideosPipeline(channel primitive.ObjectID, page entity.PageRequest) mongodriver.Pipeline {
	return mongodriver.Pipeline{
		matchStage(bson.D{{Key: "owner", Value: channel}}),
		sortStage(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}),
		facetPage(page),
	}
}

// videoCommentsPipeline pages a video's comments, newest first, with authors resolved.
func videoCommentsPipeline(video primitive.ObjectID, page entity.PageRequest) mongodriver.Pipeline {
	author := ownerJoin(bson.D{
		{Key: "_id", Value: 0},
		{Key: "username", Value: 1},
		{Key: "fullName", Value: 1},
		{Key: "email", Value: 1},
		{Key: "avatar", Value: 1},
	})

	return mongodriver.Pipeline{
		matchStage(bson.D{{Key: "video", Value: video}}),
		sortStage(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}),
		facetPage(page, author...),
	}
}

// likeSubjectFields is the stable subset projected for each liked subject.
func likeSubjectFields(subject entity.LikeSubject) []string {
	switch subject {
	case entity.LikeComment:
		return []string{"_id", "content", "video", "owner"}
	case entity.LikeTweet:
		return []string{"_id", "content", "owner"}
	default:
		return []string{"_id", "videoFile", "thumbnail", "title", "description", "duration", "views", "isPublished", "owner"}
	}
}

// likeRollupPipeline joins each like to its subject 1:1. Likes whose subject
// no longer exists are dropped by the unwind.
func likeRollupPipeline(filter bson.D, subject entity.LikeSubject) mongodriver.Pipeline {
	field := string(subject)
	details := field + "Details"

	if !hasKey(filter, field) {
		filter = append(filter, bson.E{Key: field, Value: bson.D{{Key: "$exists", Value: true}}})
	}

	return mongodriver.Pipeline{
		matchStage(filter),
		sortStage(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}),
		lookupStage(subject.Collection(), field, "_id", details),
		unwindStage(details),
		projectStage(bson.D{
			{Key: "_id", Value: 1},
			{Key: field, Value: 1},
			{Key: "likedBy", Value: 1},
			{Key: details, Value: include(likeSubjectFields(subject)...)},
		}),
	}
}

func hasKey(doc bson.D, key string) bool {
	for _, e := range doc {
		if e.Key == key {
			return true
		}
	}

	return false
}

// subscriberListPipeline lists who follows a channel.
func subscriberListPipeline(channel primitive.ObjectID) mongodriver.Pipeline {
	return mongodriver.Pipeline{
		matchStage(bson.D{{Key: "channel", Value: channel}}),
		lookupStage(model.UsersCollection, "subscriber", "_id", "subscriberDetails"),
		unwindStage("subscriberDetails"),
		projectStage(bson.D{
			{Key: "_id", Value: 0},
			{Key: "fullName", Value: "$subscriberDetails.fullName"},
			{Key: "email", Value: "$subscriberDetails.email"},
		}),
	}
}

// subscribedChannelsPipeline lists the channels a user follows.
func subscribedChannelsPipeline(subscriber primitive.ObjectID) mongodriver.Pipeline {
	return mongodriver.Pipeline{
		matchStage(bson.D{{Key: "subscriber", Value: subscriber}}),
		lookupStage(model.UsersCollection, "channel", "_id", "channelDetails"),
		unwindStage("channelDetails"),
		projectStage(bson.D{
			{Key: "_id", Value: 0},
			{Key: "fullName", Value: "$channelDetails.fullName"},
			{Key: "email", Value: "$channelDetails.email"},
			{Key: "avatar", Value: "$channelDetails.avatar"},
			{Key: "coverImage", Value: "$channelDetails.coverImage"},
		}),
	}
}
