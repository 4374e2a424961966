package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/assert/v2"
)

const sampleConfig = `
rss:
  url: "https://feeds.bbci.co.uk/news/rss.xml"
  polling_interval: 30
  debounce_timeout: 10

anchors:
  rotation_interval: 45
  cycle_order:
    - name: "Anchor A"
      focus: "facts"
      color: "#FF0000"
      voice: "alloy"
    - name: "Anchor B"
      focus: "implications"

visuals:
  ticker:
    speed: 3.5

broadcast:
  breaking_news_transition_duration: 4
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	assert.Equal(t, nil, err)

	assert.Equal(t, "https://feeds.bbci.co.uk/news/rss.xml", cfg.RSS.URL)
	assert.Equal(t, 30.0, cfg.RSS.PollingInterval)
	assert.Equal(t, 10.0, cfg.RSS.DebounceTimeout)
	assert.Equal(t, 45.0, cfg.Anchors.RotationInterval)
	assert.Equal(t, 2, len(cfg.Anchors.CycleOrder))
	assert.Equal(t, 3.5, cfg.Visuals.Ticker.Speed)
	assert.Equal(t, 4.0, cfg.Broadcast.TransitionDuration)
}

func TestLoadKeepsDefaultsForOmittedFields(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	assert.Equal(t, nil, err)

	// Untouched by the sample file, so the defaults survive the merge.
	assert.Equal(t, true, cfg.Visuals.LowerThird.Enabled)
	assert.Equal(t, 120, cfg.Visuals.LowerThird.Height)
	assert.Equal(t, 0.5, cfg.Visuals.StoryImage.PanSpeed)
	assert.Equal(t, 1.1, cfg.Visuals.StoryImage.ZoomFactor)
	assert.Equal(t, "24/7", cfg.Broadcast.Mode)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NotEqual(t, nil, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "rss: [unclosed"))
	assert.NotEqual(t, nil, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := Default()
		cfg.Anchors.CycleOrder = []AnchorConfig{{Name: "Anchor A", Focus: "facts"}}
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"no anchors", func(c *Config) { c.Anchors.CycleOrder = nil }, true},
		{"zero rotation", func(c *Config) { c.Anchors.RotationInterval = 0 }, true},
		{"negative polling", func(c *Config) { c.RSS.PollingInterval = -1 }, true},
		{"zero debounce", func(c *Config) { c.RSS.DebounceTimeout = 0 }, true},
		{"zero transition", func(c *Config) { c.Broadcast.TransitionDuration = 0 }, true},
		{"zero image duration", func(c *Config) { c.Visuals.StoryImage.Duration = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.NotEqual(t, nil, err)
			} else {
				assert.Equal(t, nil, err)
			}
		})
	}
}

func TestAnchorList(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	assert.Equal(t, nil, err)

	anchors := cfg.AnchorList()
	assert.Equal(t, 2, len(anchors))
	assert.Equal(t, "Anchor A", anchors[0].Name)
	assert.Equal(t, "alloy", anchors[0].Voice)
	assert.Equal(t, "#FF0000", anchors[0].Color)

	// Missing voice falls back to the default.
	assert.Equal(t, "default", anchors[1].Voice)
	assert.Equal(t, "implications", anchors[1].Focus)
}
