package model

import "time"

const (
	StateIdle         = "idle"
	StateRunning      = "running"
	StateBreakingNews = "breaking_news"
)

const (
	FocusFacts        = "facts"
	FocusImplications = "implications"
	FocusContext      = "context"
)

// Story is a normalized feed item. Immutable once constructed.
type Story struct {
	GUID        string    `json:"guid"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Link        string    `json:"link"`
	Source      string    `json:"source"`
	Publisher   string    `json:"publisher"`
	ImageURL    string    `json:"image_url"`
	PublishedAt time.Time `json:"published_at"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// Anchor is a named narrative perspective. The ordered anchor set is loaded
// once at startup and never changes during a run.
type Anchor struct {
	Name        string
	Focus       string
	Perspective string
	Color       string
	Voice       string
}
