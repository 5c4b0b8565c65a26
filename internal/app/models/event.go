package models

import "time"

// Event represents a community event shown on the public site
type Event struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Location    string    `json:"location" db:"location"`
	EventDate   time.Time `json:"eventDate" db:"event_date"`
	DayOfWeek   string    `json:"dayOfWeek" db:"day_of_week"`
	ImageURL    string    `json:"imageUrl" db:"image_url"`
	Tags        []string  `json:"tags" db:"tags"`
	Link        string    `json:"link" db:"link"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
