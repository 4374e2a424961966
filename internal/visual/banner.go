// Package visual owns the per-tick render state of the broadcast overlays:
// lower-third banner, scrolling ticker, live tag and story image pan/zoom.
package visual

import (
	"fmt"

	"github.com/keepitcheesy/agente/internal/config"
	"github.com/keepitcheesy/agente/internal/model"
)

const defaultAnchorColor = "#FFFFFF"

// Banner renders the lower third. It holds no animation state; the render is
// re-derived every frame from the current anchor and story title.
type Banner struct {
	enabled  bool
	height   int
	fontSize int
}

func NewBanner(cfg config.BannerConfig) *Banner {
	return &Banner{
		enabled:  cfg.Enabled,
		height:   cfg.Height,
		fontSize: cfg.FontSize,
	}
}

func (b *Banner) Render(a model.Anchor, storyTitle string) model.BannerRender {
	if !b.enabled {
		return model.BannerRender{Enabled: false}
	}

	color := a.Color
	if color == "" {
		color = defaultAnchorColor
	}

	return model.BannerRender{
		Enabled:    true,
		Height:     b.height,
		FontSize:   b.fontSize,
		AnchorName: a.Name,
		Focus:      a.Focus,
		Story:      storyTitle,
		Color:      color,
		Text:       fmt.Sprintf("%s - %s", a.Name, a.Focus),
	}
}
