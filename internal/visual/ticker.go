package visual

import (
	"github.com/keepitcheesy/agente/internal/config"
	"github.com/keepitcheesy/agente/internal/model"
)

// tickerFrameRate scales the scroll speed so configured speeds match a 60fps
// pixel-per-frame convention regardless of actual tick cadence.
const tickerFrameRate = 60

// Ticker scrolls continuously. Position accumulates monotonically and is
// never reset by content changes, so the crawl is seamless across stories.
type Ticker struct {
	enabled  bool
	speed    float64
	height   int
	fontSize int
	position float64
}

func NewTicker(cfg config.TickerConfig) *Ticker {
	return &Ticker{
		enabled:  cfg.Enabled,
		speed:    cfg.Speed,
		height:   cfg.Height,
		fontSize: cfg.FontSize,
	}
}

func (t *Ticker) Update(delta float64) {
	if t.enabled {
		t.position += t.speed * delta * tickerFrameRate
	}
}

func (t *Ticker) Render(text string) model.TickerRender {
	if !t.enabled {
		return model.TickerRender{Enabled: false}
	}

	return model.TickerRender{
		Enabled:  true,
		Height:   t.height,
		FontSize: t.fontSize,
		Position: t.position,
		Speed:    t.speed,
		Text:     text,
	}
}
