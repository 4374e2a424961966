package model

import "time"

// NarrationEvent is the unit of work pushed onto the narration queue when an
// anchor rotation produces new perspective text. The full story is carried so
// the worker can archive it without a second lookup.
type NarrationEvent struct {
	Story       Story     `json:"story"`
	AnchorName  string    `json:"anchor_name"`
	Focus       string    `json:"focus"`
	Perspective string    `json:"perspective"`
	Text        string    `json:"text"`
	Voice       string    `json:"voice"`
	EpisodeID   string    `json:"episode_id"`
	RequestedAt time.Time `json:"requested_at"`
	Attempts    int       `json:"attempts"`
}

// NarrationRecord is a persisted narration outcome. AudioPath and VideoPath
// stay empty when synthesis or encoding degraded; downstream renderers skip
// that rotation's narration rather than retry.
type NarrationRecord struct {
	ID         int64
	StoryGUID  string
	AnchorName string
	Text       string
	Voice      string
	AudioPath  string
	VideoPath  string
	CacheHit   bool
	EpisodeID  string
	CreatedAt  time.Time
}
