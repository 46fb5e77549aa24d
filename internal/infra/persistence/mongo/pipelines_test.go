package mongo

import (
	"testing"

	"vidtube/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// stageNames lists the operator of every stage in order.
func stageNames(pipeline []bson.D) []string {
	names := make([]string, 0, len(pipeline))
	for _, stage := range pipeline {
		names = append(names, stage[0].Key)
	}

	return names
}

func field(t *testing.T, doc bson.D, key string) any {
	t.Helper()
	for _, e := range doc {
		if e.Key == key {
			return e.Value
		}
	}
	t.Fatalf("key %q not found in %v", key, doc)

	return nil
}

func TestFacetPage_CountIgnoresWindow(t *testing.T) {
	stage := facetPage(entity.PageRequest{Page: 3, Limit: 20})
	facet := field(t, stage, "$facet").(bson.D)

	metadata := field(t, facet, "metadata").(bson.A)
	require.Len(t, metadata, 1)
	assert.Equal(t, bson.D{{Key: "$count", Value: "total"}}, metadata[0])

	data := field(t, facet, "data").(bson.A)
	require.Len(t, data, 2)
	assert.Equal(t, bson.D{{Key: "$skip", Value: int64(40)}}, data[0])
	assert.Equal(t, bson.D{{Key: "$limit", Value: int64(20)}}, data[1])
}

func TestVideoListPipeline(t *testing.T) {
	owner := primitive.NewObjectID()

	t.Run("query is escaped and case insensitive", func(t *testing.T) {
		match := videoListFilter(entity.VideoFilter{Query: "a.b*"}, nil)
		or := field(t, match, "$or").(bson.A)
		require.Len(t, or, 2)

		title := field(t, or[0].(bson.D), "title").(primitive.Regex)
		assert.Equal(t, `a\.b\*`, title.Pattern)
		assert.Equal(t, "i", title.Options)
	})

	t.Run("owner and published filters", func(t *testing.T) {
		match := videoListFilter(entity.VideoFilter{OnlyPublished: true}, &owner)
		assert.Equal(t, owner, field(t, match, "owner"))
		assert.Equal(t, true, field(t, match, "isPublished"))
	})

	t.Run("empty filter matches everything", func(t *testing.T) {
		assert.Empty(t, videoListFilter(entity.VideoFilter{Query: "   "}, nil))
	})

	t.Run("sort has a stable tie-break", func(t *testing.T) {
		p := videoListPipeline(entity.VideoFilter{SortBy: entity.SortByViews, Ascending: true}, nil, entity.PageRequest{Page: 1, Limit: 10})
		assert.Equal(t, []string{"$match", "$sort", "$facet"}, stageNames(p))

		sort := field(t, p[1], "$sort").(bson.D)
		assert.Equal(t, bson.D{{Key: "views", Value: 1}, {Key: "_id", Value: 1}}, sort)
	})

	t.Run("default sort is newest first", func(t *testing.T) {
		p := videoListPipeline(entity.VideoFilter{}, nil, entity.PageRequest{Page: 1, Limit: 10})
		sort := field(t, p[1], "$sort").(bson.D)
		assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, sort)
	})

	t.Run("owner join runs inside the page window", func(t *testing.T) {
		p := videoListPipeline(entity.VideoFilter{}, nil, entity.PageRequest{Page: 1, Limit: 10})
		data := field(t, field(t, p[2], "$facet").(bson.D), "data").(bson.A)
		require.Len(t, data, 4)
		assert.Equal(t, "$lookup", data[2].(bson.D)[0].Key)
		assert.Equal(t, bson.D{{Key: "$unwind", Value: "$owner"}}, data[3])
	})
}

func TestChannelProfilePipeline(t *testing.T) {
	requester := primitive.NewObjectID()
	p := channelProfilePipeline("  Alice ", requester)

	assert.Equal(t, []string{"$match", "$lookup", "$lookup", "$addFields", "$project"}, stageNames(p))

	match := field(t, p[0], "$match").(bson.D)
	assert.Equal(t, "alice", field(t, match, "username"))

	addFields := field(t, p[3], "$addFields").(bson.D)
	isSubscribed := field(t, addFields, "isSubscribed").(bson.D)
	assert.Equal(t, bson.A{requester, "$subscribers.subscriber"}, field(t, isSubscribed, "$in"))

	project := field(t, p[4], "$project").(bson.D)
	for _, e := range project {
		assert.NotEqual(t, "password", e.Key)
		assert.NotEqual(t, "refreshToken", e.Key)
	}
}

func TestDashboardStatsPipeline(t *testing.T) {
	p := dashboardStatsPipeline(primitive.NewObjectID())
	assert.Equal(t, []string{"$match", "$group", "$lookup", "$addFields", "$lookup", "$addFields", "$project"}, stageNames(p))

	project := field(t, p[6], "$project").(bson.D)
	assert.Equal(t, 0, field(t, project, "_id"))
}

func TestWatchHistoryPipeline_KeepsOrder(t *testing.T) {
	p := watchHistoryPipeline(primitive.NewObjectID())
	assert.Equal(t, []string{"$match", "$project", "$unwind", "$lookup", "$unwind", "$sort", "$replaceRoot"}, stageNames(p))

	unwind := field(t, p[2], "$unwind").(bson.D)
	assert.Equal(t, "position", field(t, unwind, "includeArrayIndex"))
	assert.Equal(t, bson.D{{Key: "position", Value: 1}}, field(t, p[5], "$sort"))
}

func TestVideoCommentsPipeline_HidesAuthorID(t *testing.T) {
	p := videoCommentsPipeline(primitive.NewObjectID(), entity.PageRequest{Page: 1, Limit: 10})
	data := field(t, field(t, p[2], "$facet").(bson.D), "data").(bson.A)
	require.Len(t, data, 4)

	lookup := field(t, data[2].(bson.D), "$lookup").(bson.D)
	inner := field(t, lookup, "pipeline").(mongodriver.Pipeline)
	project := field(t, inner[0], "$project").(bson.D)
	assert.Equal(t, 0, field(t, project, "_id"))
}

func TestLikeRollupPipeline(t *testing.T) {
	user := primitive.NewObjectID()

	t.Run("likedBy filter gets subject existence check", func(t *testing.T) {
		p := likeRollupPipeline(bson.D{{Key: "likedBy", Value: user}}, entity.LikeTweet)
		assert.Equal(t, []string{"$match", "$sort", "$lookup", "$unwind", "$project"}, stageNames(p))

		match := field(t, p[0], "$match").(bson.D)
		assert.Equal(t, bson.D{{Key: "$exists", Value: true}}, field(t, match, "tweet"))

		lookup := field(t, p[2], "$lookup").(bson.D)
		assert.Equal(t, "tweets", field(t, lookup, "from"))
		assert.Equal(t, "tweetDetails", field(t, lookup, "as"))
	})

	t.Run("subject filter is not duplicated", func(t *testing.T) {
		video := primitive.NewObjectID()
		p := likeRollupPipeline(bson.D{{Key: "video", Value: video}}, entity.LikeVideo)

		match := field(t, p[0], "$match").(bson.D)
		require.Len(t, match, 1)
		assert.Equal(t, video, match[0].Value)
	})
}

func TestSubscriptionListPipelines(t *testing.T) {
	id := primitive.NewObjectID()

	subs := subscriberListPipeline(id)
	assert.Equal(t, id, field(t, field(t, subs[0], "$match").(bson.D), "channel"))

	channels := subscribedChannelsPipeline(id)
	assert.Equal(t, id, field(t, field(t, channels[0], "$match").(bson.D), "subscriber"))
	project := field(t, channels[3], "$project").(bson.D)
	assert.Equal(t, "$channelDetails.coverImage", field(t, project, "coverImage"))
}
