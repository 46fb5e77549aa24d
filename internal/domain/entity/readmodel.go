package entity

// ChannelProfile is the public view of a channel as seen by a requester.
type ChannelProfile struct {
	ID                      string `json:"_id"`
	FullName                string `json:"fullName"`
	Username                string `json:"username"`
	Email                   string `json:"email"`
	Avatar                  string `json:"avatar"`
	CoverImage              string `json:"coverImage"`
	SubscribersCount        int64  `json:"subscribersCount"`
	ChannelsSubscribedCount int64  `json:"channelsSubscribedCount"`
	IsSubscribed            bool   `json:"isSubscribed"`
}

// DashboardStats totals a channel's activity. The zero value is a valid result.
type DashboardStats struct {
	TotalViews       int64 `json:"totalViews"`
	TotalVideos      int64 `json:"totalVideos"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes"`
}

// PageRequest is a validated 1-based page window.
type PageRequest struct {
	Page  int
	Limit int
}

// Skip is the number of documents before the window.
func (p PageRequest) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// Page is one window of a result set plus the total size of that set.
type Page[T any] struct {
	Items []T
	Total int64
	PageRequest
}

// TotalPages is ceil(Total / Limit).
func (p Page[T]) TotalPages() int64 {
	if p.Limit <= 0 {
		return 0
	}
	limit := int64(p.Limit)

	return (p.Total + limit - 1) / limit
}
