package visual

import (
	"fmt"
	"strings"
	"time"

	"github.com/keepitcheesy/agente/internal/config"
	"github.com/keepitcheesy/agente/internal/model"
)

// LiveTag renders the LIVE indicator. Stateless: every render derives from
// the wall clock and the fixed episode identity.
type LiveTag struct {
	enabled       bool
	position      string
	showTimestamp bool
	showEpisodeID bool
	episodeID     string
	now           func() time.Time
}

func NewLiveTag(cfg config.LiveTagConfig, episodeID string) *LiveTag {
	return &LiveTag{
		enabled:       cfg.Enabled,
		position:      cfg.Position,
		showTimestamp: cfg.ShowTimestamp,
		showEpisodeID: cfg.ShowEpisodeID,
		episodeID:     episodeID,
		now:           time.Now,
	}
}

func (l *LiveTag) Render() model.LiveTagRender {
	if !l.enabled {
		return model.LiveTagRender{Enabled: false}
	}

	timestamp := l.now().Format("15:04:05")

	render := model.LiveTagRender{
		Enabled:  true,
		Position: l.position,
	}
	parts := []string{"LIVE"}

	if l.showTimestamp {
		render.Timestamp = timestamp
		parts = append(parts, timestamp)
	}
	if l.showEpisodeID {
		render.EpisodeID = l.episodeID
		parts = append(parts, fmt.Sprintf("EP:%s", l.episodeID))
	}

	render.DisplayText = strings.Join(parts, " | ")
	return render
}
