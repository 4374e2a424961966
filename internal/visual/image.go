package visual

import (
	"math"

	"github.com/keepitcheesy/agente/internal/config"
	"github.com/keepitcheesy/agente/internal/model"
)

// StoryImage animates a slow pan/zoom over the story image. Pan and zoom are
// pure functions of the accumulated elapsed time, so many small deltas and
// one large delta land on the same values. Only SetImage resets the clock.
type StoryImage struct {
	enabled    bool
	panSpeed   float64
	zoomFactor float64
	duration   float64

	imageURL string
	elapsed  float64
}

func NewStoryImage(cfg config.StoryImageConfig) *StoryImage {
	return &StoryImage{
		enabled:    cfg.Enabled,
		panSpeed:   cfg.PanSpeed,
		zoomFactor: cfg.ZoomFactor,
		duration:   cfg.Duration,
	}
}

func (s *StoryImage) SetImage(imageURL string) {
	s.imageURL = imageURL
	s.elapsed = 0
}

func (s *StoryImage) Update(delta float64) {
	if s.enabled {
		s.elapsed += delta
	}
}

func (s *StoryImage) Render() model.ImageRender {
	if !s.enabled {
		return model.ImageRender{Enabled: false}
	}

	progress := math.Mod(s.elapsed, s.duration) / s.duration

	return model.ImageRender{
		Enabled:  true,
		ImageURL: s.imageURL,
		PanX:     math.Sin(2*math.Pi*progress) * s.panSpeed * 100,
		PanY:     math.Cos(2*math.Pi*progress) * s.panSpeed * 50,
		Zoom:     1 + math.Sin(math.Pi*progress)*(s.zoomFactor-1),
		Elapsed:  s.elapsed,
	}
}
