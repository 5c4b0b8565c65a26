// Package videofeed reads the community channel's latest uploads from
// the hosted video platform API.
package videofeed

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"
	requestTimeout = 10 * time.Second
	maxResults     = 50
)

// Config carries the video platform credentials.
type Config struct {
	APIKey    string
	ChannelID string
	BaseURL   string
}

// Video is one published upload.
type Video struct {
	ID           string
	Title        string
	Description  string
	ThumbnailURL string
	PublishedAt  time.Time
}

// Client queries the video platform search API.
type Client struct {
	http *resty.Client
	cfg  Config
}

// New creates a video feed client. An empty API key disables the feed.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Client{
		http: resty.New().SetTimeout(requestTimeout).SetBaseURL(cfg.BaseURL),
		cfg:  cfg,
	}
}

// Enabled reports whether credentials are configured.
func (c *Client) Enabled() bool {
	return c.cfg.APIKey != "" && c.cfg.ChannelID != ""
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title       string    `json:"title"`
			Description string    `json:"description"`
			PublishedAt time.Time `json:"publishedAt"`
			Thumbnails  struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// Latest returns the channel's most recent uploads, newest first.
func (c *Client) Latest(ctx context.Context, limit int) ([]Video, error) {
	if !c.Enabled() {
		return []Video{}, nil
	}
	if limit <= 0 || limit > maxResults {
		limit = 10
	}

	var out searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":        c.cfg.APIKey,
			"channelId":  c.cfg.ChannelID,
			"part":       "snippet,id",
			"order":      "date",
			"type":       "video",
			"maxResults": fmt.Sprintf("%d", limit),
		}).
		SetResult(&out).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("video feed request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("video feed returned status %d", resp.StatusCode())
	}

	videos := make([]Video, 0, len(out.Items))
	for _, item := range out.Items {
		if item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, Video{
			ID:           item.ID.VideoID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ThumbnailURL: item.Snippet.Thumbnails.High.URL,
			PublishedAt:  item.Snippet.PublishedAt,
		})
	}
	return videos, nil
}
