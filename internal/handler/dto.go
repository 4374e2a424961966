package handler

type StatusResponse struct {
	EpisodeID       string  `json:"episode_id"`
	State           string  `json:"state"`
	Running         bool    `json:"running"`
	StoryTitle      string  `json:"story_title"`
	AnchorName      string  `json:"anchor_name"`
	StoriesCovered  int     `json:"stories_covered"`
	AnchorRotations int     `json:"anchor_rotations"`
	RotationCount   int     `json:"rotation_count"`
	TimeOnAnchor    float64 `json:"time_on_anchor"`
	FrameCount      uint64  `json:"frame_count"`
	FramesRendered  uint64  `json:"frames_rendered"`
	UptimeSeconds   float64 `json:"uptime_seconds"`
}

type FrameResponse struct {
	Sequence    uint64          `json:"sequence"`
	State       string          `json:"state"`
	EpisodeID   string          `json:"episode_id"`
	Timestamp   string          `json:"timestamp"`
	AnchorName  string          `json:"anchor_name"`
	Perspective string          `json:"perspective"`
	Story       StoryResponse   `json:"story"`
	Banner      BannerResponse  `json:"banner"`
	Ticker      TickerResponse  `json:"ticker"`
	LiveTag     LiveTagResponse `json:"live_tag"`
	Image       ImageResponse   `json:"image"`
}

type StoryResponse struct {
	GUID        string `json:"guid"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Link        string `json:"link"`
	Source      string `json:"source"`
	Publisher   string `json:"publisher"`
	ImageURL    string `json:"image_url"`
	PublishedAt string `json:"published_at"`
}

type BannerResponse struct {
	Enabled    bool   `json:"enabled"`
	Height     int    `json:"height,omitempty"`
	FontSize   int    `json:"font_size,omitempty"`
	AnchorName string `json:"anchor_name,omitempty"`
	Focus      string `json:"focus,omitempty"`
	Story      string `json:"story,omitempty"`
	Color      string `json:"color,omitempty"`
	Text       string `json:"text,omitempty"`
}

type TickerResponse struct {
	Enabled  bool    `json:"enabled"`
	Height   int     `json:"height,omitempty"`
	FontSize int     `json:"font_size,omitempty"`
	Position float64 `json:"position,omitempty"`
	Speed    float64 `json:"speed,omitempty"`
	Text     string  `json:"text,omitempty"`
}

type LiveTagResponse struct {
	Enabled     bool   `json:"enabled"`
	Position    string `json:"position,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
	EpisodeID   string `json:"episode_id,omitempty"`
	DisplayText string `json:"display_text,omitempty"`
}

type ImageResponse struct {
	Enabled  bool    `json:"enabled"`
	ImageURL string  `json:"image_url,omitempty"`
	PanX     float64 `json:"pan_x"`
	PanY     float64 `json:"pan_y"`
	Zoom     float64 `json:"zoom"`
	Elapsed  float64 `json:"elapsed"`
}

type NarrationResponse struct {
	ID         int64  `json:"id"`
	StoryGUID  string `json:"story_guid"`
	AnchorName string `json:"anchor_name"`
	Text       string `json:"text"`
	Voice      string `json:"voice"`
	AudioPath  string `json:"audio_path"`
	VideoPath  string `json:"video_path"`
	CacheHit   bool   `json:"cache_hit"`
	EpisodeID  string `json:"episode_id"`
	CreatedAt  string `json:"created_at"`
}

type NarrationListResponse struct {
	Narrations []NarrationResponse `json:"narrations"`
	Limit      int                 `json:"limit"`
}
