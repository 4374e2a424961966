package model

import "time"

type BannerRender struct {
	Enabled    bool
	Height     int
	FontSize   int
	AnchorName string
	Focus      string
	Story      string
	Color      string
	Text       string
}

type TickerRender struct {
	Enabled  bool
	Height   int
	FontSize int
	Position float64
	Speed    float64
	Text     string
}

type LiveTagRender struct {
	Enabled     bool
	Position    string
	Timestamp   string
	EpisodeID   string
	DisplayText string
}

type ImageRender struct {
	Enabled  bool
	ImageURL string
	PanX     float64
	PanY     float64
	Zoom     float64
	Elapsed  float64
}

// FrameSnapshot is one composed, read-only description of the visual state,
// produced fresh every tick and never mutated after creation.
type FrameSnapshot struct {
	Banner      BannerRender
	Ticker      TickerRender
	LiveTag     LiveTagRender
	Image       ImageRender
	Timestamp   time.Time
	Story       *Story
	AnchorName  string
	Perspective string
	State       string
	Sequence    uint64
	EpisodeID   string
}

type Status struct {
	EpisodeID       string
	State           string
	Running         bool
	StoryTitle      string
	AnchorName      string
	StoriesCovered  int
	AnchorRotations int
	RotationCount   int
	TimeOnAnchor    float64
	FrameCount      uint64
	FramesRendered  uint64
	UptimeSeconds   float64
}
