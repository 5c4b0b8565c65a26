package dto

import "time"

// VideoResponse is one entry of the channel's latest uploads feed.
type VideoResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	PublishedAt  time.Time `json:"publishedAt"`
	URL          string    `json:"url"`
}
