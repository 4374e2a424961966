package anchor

import (
	"fmt"

	"github.com/keepitcheesy/agente/internal/model"
)

const factsSummaryLimit = 200

// PerspectiveText derives narration text from an anchor's focus tag and the
// story fields. It is a pure function: same anchor and story, same text.
func PerspectiveText(a model.Anchor, story *model.Story) string {
	if story == nil {
		return ""
	}

	switch a.Focus {
	case model.FocusFacts:
		return fmt.Sprintf("Here's what happened: %s. %s", story.Title, truncate(story.Summary, factsSummaryLimit))
	case model.FocusImplications:
		return fmt.Sprintf("Why this matters: %s could have significant impacts. Looking at what comes next...", story.Title)
	case model.FocusContext:
		return fmt.Sprintf("For context on %s: This story builds on recent developments...", story.Title)
	default:
		return story.Summary
	}
}

// truncate cuts on rune boundaries so multibyte summaries stay valid UTF-8.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
