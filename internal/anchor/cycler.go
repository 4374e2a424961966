// Package anchor cycles a fixed set of anchor personas over the active story.
package anchor

import (
	"fmt"
	"log/slog"

	"github.com/keepitcheesy/agente/internal/model"
)

// Cycler rotates through the configured anchors in order, driven purely by
// accumulated tick time. Its only reset trigger is StartStory.
type Cycler struct {
	anchors  []model.Anchor
	interval float64

	index     int
	elapsed   float64
	started   bool
	storyGUID string
	rotations int
}

func NewCycler(anchors []model.Anchor, rotationIntervalSeconds float64) (*Cycler, error) {
	if len(anchors) == 0 {
		return nil, fmt.Errorf("anchor: cycler needs at least one anchor")
	}
	if rotationIntervalSeconds <= 0 {
		return nil, fmt.Errorf("anchor: rotation interval must be positive, got %v", rotationIntervalSeconds)
	}
	return &Cycler{anchors: anchors, interval: rotationIntervalSeconds}, nil
}

// StartStory begins coverage of a new story: back to the first anchor, timer
// and rotation counter cleared. Called exactly once per accepted story.
func (c *Cycler) StartStory(storyGUID string) {
	c.storyGUID = storyGUID
	c.index = 0
	c.elapsed = 0
	c.rotations = 0
	c.started = true
	slog.Info("started story coverage", "guid", storyGUID, "anchor", c.anchors[0].Name)
}

// Update advances the rotation timer and returns the newly active anchor only
// on the tick where a rotation actually occurs.
func (c *Cycler) Update(delta float64) (model.Anchor, bool) {
	if !c.started {
		return model.Anchor{}, false
	}

	c.elapsed += delta
	if c.elapsed < c.interval {
		return model.Anchor{}, false
	}

	c.elapsed = 0
	c.index = (c.index + 1) % len(c.anchors)
	c.rotations++

	current := c.anchors[c.index]
	slog.Info("rotated anchor", "anchor", current.Name, "rotation", c.rotations)
	return current, true
}

func (c *Cycler) Current() model.Anchor {
	return c.anchors[c.index]
}

func (c *Cycler) Rotations() int {
	return c.rotations
}

// TimeOnAnchor is the accumulated time since the last rotation, in seconds.
func (c *Cycler) TimeOnAnchor() float64 {
	return c.elapsed
}

func (c *Cycler) StoryGUID() string {
	return c.storyGUID
}
