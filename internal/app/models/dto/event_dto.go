package dto

// CreateEventRequest carries the event creation form.
// Required fields are validated in declaration order.
type CreateEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	EventDate   string   `json:"eventDate"` // calendar date, YYYY-MM-DD
	DayOfWeek   string   `json:"dayOfWeek"`
	ImageURL    string   `json:"imageUrl"`
	Tags        []string `json:"tags"`
	Link        string   `json:"link"`
}

// UpdateEventRequest carries a partial event update; only fields
// present in the body are applied.
type UpdateEventRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Location    *string   `json:"location"`
	EventDate   *string   `json:"eventDate"`
	DayOfWeek   *string   `json:"dayOfWeek"`
	ImageURL    *string   `json:"imageUrl"`
	Tags        *[]string `json:"tags"`
	Link        *string   `json:"link"`
}

// EventFilter holds the list parameters for events.
type EventFilter struct {
	Search string
	Tag    string
	Month  int // 1-12, 0 means unfiltered
	Page   int
	Limit  int
}
