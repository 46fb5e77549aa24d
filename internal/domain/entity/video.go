package entity

import "time"

// Video is an uploaded media item owned by a single channel.
type Video struct {
	ID          string    `json:"_id"`
	VideoFile   string    `json:"videoFile"` // Public URL of the media file.
	Thumbnail   string    `json:"thumbnail"` // Public URL of the thumbnail image.
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"` // Seconds, as reported by the object store.
	Views       int64     `json:"views"`    // Distinct viewers.
	Viewers     []string  `json:"-"`        // Users already counted in Views.
	IsPublished bool      `json:"isPublished"`
	Owner       string    `json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// VideoView is a video with its owner resolved.
type VideoView struct {
	ID          string        `json:"_id"`
	VideoFile   string        `json:"videoFile"`
	Thumbnail   string        `json:"thumbnail"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Duration    float64       `json:"duration"`
	Views       int64         `json:"views"`
	IsPublished bool          `json:"isPublished"`
	Owner       *OwnerSummary `json:"owner"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// VideoSummary is the stable subset of video fields used by like rollups.
type VideoSummary struct {
	ID          string  `json:"_id"`
	VideoFile   string  `json:"videoFile"`
	Thumbnail   string  `json:"thumbnail"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Views       int64   `json:"views"`
	IsPublished bool    `json:"isPublished"`
	Owner       string  `json:"owner"`
}

// VideoSortField enumerates the sortable video columns.
type VideoSortField string

const (
	SortByTitle       VideoSortField = "title"
	SortByDescription VideoSortField = "description"
	SortByDuration    VideoSortField = "duration"
	SortByCreatedAt   VideoSortField = "createdAt"
	SortByUpdatedAt   VideoSortField = "updatedAt"
	SortByViews       VideoSortField = "views"
)

// ParseVideoSortField accepts an empty value as createdAt.
func ParseVideoSortField(s string) (VideoSortField, bool) {
	switch f := VideoSortField(s); f {
	case "":
		return SortByCreatedAt, true
	case SortByTitle, SortByDescription, SortByDuration, SortByCreatedAt, SortByUpdatedAt, SortByViews:
		return f, true
	default:
		return "", false
	}
}

// VideoFilter narrows a video listing.
type VideoFilter struct {
	Query         string // Case-insensitive substring of title or description.
	OwnerID       string
	OnlyPublished bool
	SortBy        VideoSortField
	Ascending     bool
}
