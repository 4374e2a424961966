package config

import (
	"fmt"
	"os"

	"github.com/keepitcheesy/agente/internal/model"

	"gopkg.in/yaml.v3"
)

type Config struct {
	RSS       RSSConfig       `yaml:"rss"`
	Anchors   AnchorsConfig   `yaml:"anchors"`
	Visuals   VisualsConfig   `yaml:"visuals"`
	Broadcast BroadcastConfig `yaml:"broadcast"`
}

type RSSConfig struct {
	URL             string  `yaml:"url"`
	PollingInterval float64 `yaml:"polling_interval"`
	DebounceTimeout float64 `yaml:"debounce_timeout"`
}

type AnchorsConfig struct {
	RotationInterval float64        `yaml:"rotation_interval"`
	CycleOrder       []AnchorConfig `yaml:"cycle_order"`
}

type AnchorConfig struct {
	Name        string `yaml:"name"`
	Focus       string `yaml:"focus"`
	Perspective string `yaml:"perspective"`
	Color       string `yaml:"color"`
	Voice       string `yaml:"voice"`
}

type VisualsConfig struct {
	LowerThird BannerConfig     `yaml:"lower_third"`
	Ticker     TickerConfig     `yaml:"ticker"`
	LiveTag    LiveTagConfig    `yaml:"live_tag"`
	StoryImage StoryImageConfig `yaml:"story_image"`
}

type BannerConfig struct {
	Enabled  bool `yaml:"enabled"`
	Height   int  `yaml:"height"`
	FontSize int  `yaml:"font_size"`
}

type TickerConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Speed    float64 `yaml:"speed"`
	Height   int     `yaml:"height"`
	FontSize int     `yaml:"font_size"`
}

type LiveTagConfig struct {
	Enabled       bool   `yaml:"enabled"`
	Position      string `yaml:"position"`
	ShowTimestamp bool   `yaml:"show_timestamp"`
	ShowEpisodeID bool   `yaml:"show_episode_id"`
}

type StoryImageConfig struct {
	Enabled    bool    `yaml:"enabled"`
	PanSpeed   float64 `yaml:"pan_speed"`
	ZoomFactor float64 `yaml:"zoom_factor"`
	Duration   float64 `yaml:"duration"`
}

type BroadcastConfig struct {
	Mode               string  `yaml:"mode"`
	TransitionDuration float64 `yaml:"breaking_news_transition_duration"`
}

// Default returns a config with every tunable at its standard value. The
// anchor cycle order has no default; it must come from the config file.
func Default() *Config {
	return &Config{
		RSS: RSSConfig{
			PollingInterval: 60,
			DebounceTimeout: 5,
		},
		Anchors: AnchorsConfig{
			RotationInterval: 30,
		},
		Visuals: VisualsConfig{
			LowerThird: BannerConfig{Enabled: true, Height: 120, FontSize: 18},
			Ticker:     TickerConfig{Enabled: true, Speed: 2, Height: 40, FontSize: 14},
			LiveTag:    LiveTagConfig{Enabled: true, Position: "top-left", ShowTimestamp: true, ShowEpisodeID: true},
			StoryImage: StoryImageConfig{Enabled: true, PanSpeed: 0.5, ZoomFactor: 1.1, Duration: 120},
		},
		Broadcast: BroadcastConfig{
			Mode:               "24/7",
			TransitionDuration: 2,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Anchors.CycleOrder) == 0 {
		return fmt.Errorf("config: anchor cycle order is empty")
	}
	if c.Anchors.RotationInterval <= 0 {
		return fmt.Errorf("config: rotation_interval must be positive, got %v", c.Anchors.RotationInterval)
	}
	if c.RSS.PollingInterval <= 0 {
		return fmt.Errorf("config: polling_interval must be positive, got %v", c.RSS.PollingInterval)
	}
	if c.RSS.DebounceTimeout <= 0 {
		return fmt.Errorf("config: debounce_timeout must be positive, got %v", c.RSS.DebounceTimeout)
	}
	if c.Broadcast.TransitionDuration <= 0 {
		return fmt.Errorf("config: breaking_news_transition_duration must be positive, got %v", c.Broadcast.TransitionDuration)
	}
	if c.Visuals.StoryImage.Duration <= 0 {
		return fmt.Errorf("config: story_image duration must be positive, got %v", c.Visuals.StoryImage.Duration)
	}
	return nil
}

// AnchorList converts the configured cycle order into model anchors,
// preserving order and filling the default voice.
func (c *Config) AnchorList() []model.Anchor {
	anchors := make([]model.Anchor, len(c.Anchors.CycleOrder))
	for i, a := range c.Anchors.CycleOrder {
		voice := a.Voice
		if voice == "" {
			voice = "default"
		}
		anchors[i] = model.Anchor{
			Name:        a.Name,
			Focus:       a.Focus,
			Perspective: a.Perspective,
			Color:       a.Color,
			Voice:       voice,
		}
	}
	return anchors
}
