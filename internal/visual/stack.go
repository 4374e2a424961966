package visual

import (
	"time"

	"github.com/keepitcheesy/agente/internal/config"
	"github.com/keepitcheesy/agente/internal/model"
)

const defaultTickerText = "Breaking news coverage continues 24/7 • Stay tuned for updates"

// Stack composes the four overlay elements into one frame snapshot. Ticker
// text lives here behind accessors; the pipeline driver owns the stack.
type Stack struct {
	banner  *Banner
	ticker  *Ticker
	liveTag *LiveTag
	image   *StoryImage

	tickerText string
	now        func() time.Time
}

func NewStack(cfg config.VisualsConfig, episodeID string) *Stack {
	return &Stack{
		banner:     NewBanner(cfg.LowerThird),
		ticker:     NewTicker(cfg.Ticker),
		liveTag:    NewLiveTag(cfg.LiveTag, episodeID),
		image:      NewStoryImage(cfg.StoryImage),
		tickerText: defaultTickerText,
		now:        time.Now,
	}
}

// Update advances the time-driven elements.
func (s *Stack) Update(delta float64) {
	s.ticker.Update(delta)
	s.image.Update(delta)
}

// RenderFrame composes all four element renders plus a timestamp into a
// fresh snapshot. Pipeline-level fields are filled in by the caller.
func (s *Stack) RenderFrame(a model.Anchor, storyTitle string) model.FrameSnapshot {
	return model.FrameSnapshot{
		Banner:    s.banner.Render(a, storyTitle),
		Ticker:    s.ticker.Render(s.tickerText),
		LiveTag:   s.liveTag.Render(),
		Image:     s.image.Render(),
		Timestamp: s.now(),
	}
}

func (s *Stack) SetStoryImage(imageURL string) {
	s.image.SetImage(imageURL)
}

func (s *Stack) SetTickerText(text string) {
	s.tickerText = text
}

func (s *Stack) TickerText() string {
	return s.tickerText
}
