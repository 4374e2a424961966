package visual

import (
	"testing"
	"time"

	"github.com/keepitcheesy/agente/internal/config"
	"github.com/keepitcheesy/agente/internal/model"

	"github.com/go-playground/assert/v2"
)

func visualsConfig() config.VisualsConfig {
	return config.VisualsConfig{
		LowerThird: config.BannerConfig{Enabled: true, Height: 120, FontSize: 18},
		Ticker:     tickerConfig(),
		LiveTag:    config.LiveTagConfig{Enabled: true, Position: "top-left", ShowTimestamp: true, ShowEpisodeID: true},
		StoryImage: imageConfig(),
	}
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 3, 1, 12, 30, 45, 0, time.UTC)
	}
}

func TestStack_RenderFrameComposition(t *testing.T) {
	s := NewStack(visualsConfig(), "ep-1")
	s.now = fixedClock()
	s.liveTag.now = fixedClock()

	a := model.Anchor{Name: "Anchor A", Focus: model.FocusFacts, Color: "#FF0000"}
	frame := s.RenderFrame(a, "Big Event")

	assert.Equal(t, true, frame.Banner.Enabled)
	assert.Equal(t, "Anchor A", frame.Banner.AnchorName)
	assert.Equal(t, "Anchor A - facts", frame.Banner.Text)
	assert.Equal(t, "Big Event", frame.Banner.Story)
	assert.Equal(t, "#FF0000", frame.Banner.Color)

	assert.Equal(t, true, frame.Ticker.Enabled)
	assert.Equal(t, defaultTickerText, frame.Ticker.Text)

	assert.Equal(t, true, frame.LiveTag.Enabled)
	assert.Equal(t, "LIVE | 12:30:45 | EP:ep-1", frame.LiveTag.DisplayText)
	assert.Equal(t, "ep-1", frame.LiveTag.EpisodeID)

	assert.Equal(t, true, frame.Image.Enabled)
	assert.Equal(t, fixedClock()(), frame.Timestamp)
}

func TestStack_BannerDefaultsColor(t *testing.T) {
	s := NewStack(visualsConfig(), "ep-1")

	frame := s.RenderFrame(model.Anchor{Name: "Anchor A", Focus: model.FocusFacts}, "Big Event")

	assert.Equal(t, "#FFFFFF", frame.Banner.Color)
}

func TestStack_SetTickerTextKeepsScroll(t *testing.T) {
	s := NewStack(visualsConfig(), "ep-1")
	a := model.Anchor{Name: "Anchor A", Focus: model.FocusFacts}

	s.Update(1)
	before := s.RenderFrame(a, "Big Event").Ticker.Position

	s.SetTickerText("BREAKING: something happened")
	frame := s.RenderFrame(a, "Big Event")

	assert.Equal(t, before, frame.Ticker.Position)
	assert.Equal(t, "BREAKING: something happened", frame.Ticker.Text)
}

func TestStack_SetStoryImageResetsOnlyImage(t *testing.T) {
	s := NewStack(visualsConfig(), "ep-1")
	a := model.Anchor{Name: "Anchor A", Focus: model.FocusFacts}

	s.Update(2)
	s.SetStoryImage("https://example.com/new.jpg")
	frame := s.RenderFrame(a, "Big Event")

	assert.Equal(t, 0.0, frame.Image.Elapsed)
	assert.Equal(t, "https://example.com/new.jpg", frame.Image.ImageURL)
	assert.NotEqual(t, 0.0, frame.Ticker.Position)
}

func TestStack_DisabledElements(t *testing.T) {
	cfg := visualsConfig()
	cfg.LowerThird.Enabled = false
	cfg.Ticker.Enabled = false
	cfg.LiveTag.Enabled = false
	cfg.StoryImage.Enabled = false

	s := NewStack(cfg, "ep-1")
	frame := s.RenderFrame(model.Anchor{Name: "Anchor A"}, "Big Event")

	assert.Equal(t, false, frame.Banner.Enabled)
	assert.Equal(t, false, frame.Ticker.Enabled)
	assert.Equal(t, false, frame.LiveTag.Enabled)
	assert.Equal(t, false, frame.Image.Enabled)
	assert.Equal(t, "", frame.Banner.Text)
	assert.Equal(t, "", frame.LiveTag.DisplayText)
}

func TestLiveTag_OptionalParts(t *testing.T) {
	cfg := config.LiveTagConfig{Enabled: true, Position: "top-left"}
	tag := NewLiveTag(cfg, "ep-1")
	tag.now = fixedClock()

	r := tag.Render()

	assert.Equal(t, "LIVE", r.DisplayText)
	assert.Equal(t, "", r.Timestamp)
	assert.Equal(t, "", r.EpisodeID)
}
