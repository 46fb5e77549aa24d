package mongo

import (
	"vidtube/internal/domain/entity"
	"vidtube/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func toUserDomain(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID.Hex(),
		Username:     m.Username,
		Email:        m.Email,
		FullName:     m.FullName,
		Password:     m.Password,
		Avatar:       m.Avatar,
		CoverImage:   m.CoverImage,
		WatchHistory: hexIDs(m.WatchHistory),
		RefreshToken: m.RefreshToken,
		IsDeleted:    m.IsDeleted,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toIdentity(m *model.UserModel) *entity.Identity {
	if m == nil {
		return nil
	}

	return &entity.Identity{
		ID:         m.ID.Hex(),
		Username:   m.Username,
		Email:      m.Email,
		FullName:   m.FullName,
		Avatar:     m.Avatar,
		CoverImage: m.CoverImage,
	}
}

func toOwnerSummary(m *model.OwnerModel) *entity.OwnerSummary {
	if m == nil {
		return nil
	}
	owner := &entity.OwnerSummary{
		Username: m.Username,
		FullName: m.FullName,
		Email:    m.Email,
		Avatar:   m.Avatar,
	}
	if !m.ID.IsZero() {
		owner.ID = m.ID.Hex()
	}

	return owner
}

func toVideoDomain(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}

	return &entity.Video{
		ID:          m.ID.Hex(),
		VideoFile:   m.VideoFile,
		Thumbnail:   m.Thumbnail,
		Title:       m.Title,
		Description: m.Description,
		Duration:    m.Duration,
		Views:       m.Views,
		Viewers:     hexIDs(m.Viewers),
		IsPublished: m.IsPublished,
		Owner:       m.Owner.Hex(),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toVideoView(m *model.VideoViewModel) entity.VideoView {
	return entity.VideoView{
		ID:          m.ID.Hex(),
		VideoFile:   m.VideoFile,
		Thumbnail:   m.Thumbnail,
		Title:       m.Title,
		Description: m.Description,
		Duration:    m.Duration,
		Views:       m.Views,
		IsPublished: m.IsPublished,
		Owner:       toOwnerSummary(m.Owner),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toVideoSummary(m *model.VideoSummaryModel) entity.VideoSummary {
	return entity.VideoSummary{
		ID:          m.ID.Hex(),
		VideoFile:   m.VideoFile,
		Thumbnail:   m.Thumbnail,
		Title:       m.Title,
		Description: m.Description,
		Duration:    m.Duration,
		Views:       m.Views,
		IsPublished: m.IsPublished,
		Owner:       m.Owner.Hex(),
	}
}

func toCommentDomain(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID.Hex(),
		Content:   m.Content,
		Video:     m.Video.Hex(),
		Owner:     m.Owner.Hex(),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toCommentView(m *model.CommentViewModel) entity.CommentView {
	return entity.CommentView{
		ID:        m.ID.Hex(),
		Content:   m.Content,
		Video:     m.Video.Hex(),
		Owner:     toOwnerSummary(m.Owner),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toTweetDomain(m *model.TweetModel) *entity.Tweet {
	if m == nil {
		return nil
	}

	return &entity.Tweet{
		ID:        m.ID.Hex(),
		Content:   m.Content,
		Owner:     m.Owner.Hex(),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toPlaylistDomain(m *model.PlaylistModel) *entity.Playlist {
	if m == nil {
		return nil
	}

	return &entity.Playlist{
		ID:          m.ID.Hex(),
		Name:        m.Name,
		Description: m.Description,
		Videos:      hexIDs(m.Videos),
		Owner:       m.Owner.Hex(),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toSubscriptionDomain(m *model.SubscriptionModel) *entity.Subscription {
	if m == nil {
		return nil
	}

	return &entity.Subscription{
		ID:         m.ID.Hex(),
		Subscriber: m.Subscriber.Hex(),
		Channel:    m.Channel.Hex(),
		CreatedAt:  m.CreatedAt,
	}
}

func toLikeDomain(m *model.LikeModel) *entity.Like {
	if m == nil {
		return nil
	}
	like := &entity.Like{
		ID:        m.ID.Hex(),
		LikedBy:   m.LikedBy.Hex(),
		CreatedAt: m.CreatedAt,
	}
	switch {
	case m.Video != nil:
		like.Subject, like.SubjectID = entity.LikeVideo, m.Video.Hex()
	case m.Comment != nil:
		like.Subject, like.SubjectID = entity.LikeComment, m.Comment.Hex()
	case m.Tweet != nil:
		like.Subject, like.SubjectID = entity.LikeTweet, m.Tweet.Hex()
	}

	return like
}

// fromLikeDomain sets only the reference matching the like's subject.
func fromLikeDomain(like *entity.Like, subjectID, likedBy primitive.ObjectID) *model.LikeModel {
	m := &model.LikeModel{LikedBy: likedBy}
	switch like.Subject {
	case entity.LikeComment:
		m.Comment = &subjectID
	case entity.LikeTweet:
		m.Tweet = &subjectID
	default:
		m.Video = &subjectID
	}

	return m
}

func toLikedVideo(m *model.LikedVideoModel) entity.LikedVideo {
	return entity.LikedVideo{
		ID:           m.ID.Hex(),
		Video:        m.Video.Hex(),
		LikedBy:      m.LikedBy.Hex(),
		VideoDetails: toVideoSummary(&m.VideoDetails),
	}
}

func toLikedComment(m *model.LikedCommentModel) entity.LikedComment {
	return entity.LikedComment{
		ID:      m.ID.Hex(),
		Comment: m.Comment.Hex(),
		LikedBy: m.LikedBy.Hex(),
		CommentDetails: entity.CommentSummary{
			ID:      m.CommentDetails.ID.Hex(),
			Content: m.CommentDetails.Content,
			Video:   m.CommentDetails.Video.Hex(),
			Owner:   m.CommentDetails.Owner.Hex(),
		},
	}
}

func toLikedTweet(m *model.LikedTweetModel) entity.LikedTweet {
	return entity.LikedTweet{
		ID:      m.ID.Hex(),
		Tweet:   m.Tweet.Hex(),
		LikedBy: m.LikedBy.Hex(),
		TweetDetails: entity.TweetSummary{
			ID:      m.TweetDetails.ID.Hex(),
			Content: m.TweetDetails.Content,
			Owner:   m.TweetDetails.Owner.Hex(),
		},
	}
}

// mapAll converts a slice of models, never returning nil.
func mapAll[M, E any](models []M, convert func(*M) E) []E {
	out := make([]E, 0, len(models))
	for i := range models {
		out = append(out, convert(&models[i]))
	}

	return out
}
