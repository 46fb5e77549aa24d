package entity

import "time"

// LikeSubject is the kind of entity a like points at.
type LikeSubject string

const (
	LikeVideo   LikeSubject = "video"
	LikeComment LikeSubject = "comment"
	LikeTweet   LikeSubject = "tweet"
)

// Collection returns the collection holding subjects of this kind.
func (s LikeSubject) Collection() string {
	switch s {
	case LikeComment:
		return "comments"
	case LikeTweet:
		return "tweets"
	default:
		return "videos"
	}
}

// Like is keyed by (subject kind, subject id, likedBy).
type Like struct {
	ID        string      `json:"_id"`
	Subject   LikeSubject `json:"-"`
	SubjectID string      `json:"-"`
	LikedBy   string      `json:"likedBy"`
	CreatedAt time.Time   `json:"createdAt"`
}

type LikedVideo struct {
	ID           string       `json:"_id"`
	Video        string       `json:"video"`
	LikedBy      string       `json:"likedBy"`
	VideoDetails VideoSummary `json:"videoDetails"`
}

type CommentSummary struct {
	ID      string `json:"_id"`
	Content string `json:"content"`
	Video   string `json:"video"`
	Owner   string `json:"owner"`
}

type LikedComment struct {
	ID             string         `json:"_id"`
	Comment        string         `json:"comment"`
	LikedBy        string         `json:"likedBy"`
	CommentDetails CommentSummary `json:"commentDetails"`
}

type TweetSummary struct {
	ID      string `json:"_id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

type LikedTweet struct {
	ID           string       `json:"_id"`
	Tweet        string       `json:"tweet"`
	LikedBy      string       `json:"likedBy"`
	TweetDetails TweetSummary `json:"tweetDetails"`
}
