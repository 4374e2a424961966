// Package pipeline drives the broadcast: it advances the feed monitor, the
// anchor cycler and the visual stack once per external tick and turns the
// combined state into per-tick frame snapshots.
package pipeline

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/keepitcheesy/agente/internal/anchor"
	"github.com/keepitcheesy/agente/internal/config"
	"github.com/keepitcheesy/agente/internal/model"
	"github.com/keepitcheesy/agente/internal/monitor"
	"github.com/keepitcheesy/agente/internal/visual"
	"github.com/keepitcheesy/agente/pkg/news"
)

// Driver owns all broadcast components and mutates them only from Update and
// the calls documented here. It is not safe for concurrent use; one caller
// ticks it and reads from it.
type Driver struct {
	pollingInterval    float64
	transitionDuration float64

	monitor *monitor.Monitor
	cycler  *anchor.Cycler
	visuals *visual.Stack
	sink    NarrationSink

	episodeID string
	state     string
	story     *model.Story
	running   bool

	sincePoll      float64
	transitionLeft float64

	// narrated memoizes narration text already requested for the active
	// story, so a rotation that reproduces identical text stays silent.
	narrated map[string]bool

	frameCount      uint64
	framesRendered  uint64
	storiesCovered  int
	anchorRotations int
	startTime       time.Time

	now func() time.Time
}

func New(cfg *config.Config, source news.Source, sink NarrationSink) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	now := time.Now

	mon, err := monitor.NewWithClock(source, cfg.RSS.DebounceTimeout, now)
	if err != nil {
		return nil, err
	}

	cyc, err := anchor.NewCycler(cfg.AnchorList(), cfg.Anchors.RotationInterval)
	if err != nil {
		return nil, err
	}

	episodeID := now().Format("20060102-150405")

	return &Driver{
		pollingInterval:    cfg.RSS.PollingInterval,
		transitionDuration: cfg.Broadcast.TransitionDuration,
		monitor:            mon,
		cycler:             cyc,
		visuals:            visual.NewStack(cfg.Visuals, episodeID),
		sink:               sink,
		episodeID:          episodeID,
		state:              model.StateIdle,
		narrated:           map[string]bool{},
		now:                now,
	}, nil
}

func (d *Driver) EpisodeID() string {
	return d.episodeID
}

// Start moves the pipeline to running and performs one immediate feed check.
func (d *Driver) Start() {
	d.running = true
	d.state = model.StateRunning
	d.startTime = d.now()
	slog.Info("broadcast started", "episode_id", d.episodeID)

	d.pollFeed()
	if d.story == nil {
		slog.Warn("no initial story found, waiting for feed update")
	}
}

func (d *Driver) Stop() {
	if !d.running {
		return
	}
	d.running = false
	d.state = model.StateIdle

	uptime := d.now().Sub(d.startTime).Seconds()
	slog.Info("broadcast stopped",
		"episode_id", d.episodeID,
		"uptime_seconds", uptime,
		"stories_covered", d.storiesCovered,
		"anchor_rotations", d.anchorRotations,
		"frames_rendered", d.framesRendered,
	)
}

// Update advances the whole pipeline by delta seconds. No-op when stopped.
func (d *Driver) Update(delta float64) {
	if !d.running {
		return
	}

	if d.state == model.StateBreakingNews {
		d.advanceTransition(delta)
	} else {
		d.sincePoll += delta
		if d.sincePoll >= d.pollingInterval {
			d.sincePoll = 0
			d.pollFeed()
		}

		if d.state != model.StateBreakingNews {
			if s := d.monitor.PendingIfReady(); s != nil {
				d.beginTransition(s)
			}
		}

		if d.state != model.StateBreakingNews && d.story != nil {
			if a, rotated := d.cycler.Update(delta); rotated {
				d.anchorRotations++
				d.requestNarration(a)
			}
		}
	}

	d.visuals.Update(delta)
	d.frameCount++
}

// RenderFrame composes the current frame snapshot, or nil when no story is
// active yet.
func (d *Driver) RenderFrame() *model.FrameSnapshot {
	if d.story == nil {
		return nil
	}

	a := d.cycler.Current()
	frame := d.visuals.RenderFrame(a, d.story.Title)
	frame.Story = d.story
	frame.AnchorName = a.Name
	frame.Perspective = anchor.PerspectiveText(a, d.story)
	frame.State = d.state
	frame.EpisodeID = d.episodeID

	d.framesRendered++
	frame.Sequence = d.framesRendered

	return &frame
}

func (d *Driver) Status() model.Status {
	status := model.Status{
		EpisodeID:       d.episodeID,
		State:           d.state,
		Running:         d.running,
		StoriesCovered:  d.storiesCovered,
		AnchorRotations: d.anchorRotations,
		FrameCount:      d.frameCount,
		FramesRendered:  d.framesRendered,
	}

	if d.running {
		status.UptimeSeconds = d.now().Sub(d.startTime).Seconds()
	}
	if d.story != nil {
		status.StoryTitle = d.story.Title
		status.AnchorName = d.cycler.Current().Name
		status.RotationCount = d.cycler.Rotations()
		status.TimeOnAnchor = d.cycler.TimeOnAnchor()
	}

	return status
}

func (d *Driver) pollFeed() {
	if s := d.monitor.CheckForUpdate(); s != nil {
		d.beginTransition(s)
	}
}

// beginTransition swaps in a new story and enters the breaking-news hold.
// The hold is non-blocking: frames keep flowing, tagged breaking_news, until
// the configured duration of tick time has accumulated.
func (d *Driver) beginTransition(s *model.Story) {
	slog.Info("breaking news transition", "guid", s.GUID, "title", s.Title)

	d.state = model.StateBreakingNews
	d.transitionLeft = d.transitionDuration
	d.story = s
	d.storiesCovered++
	d.narrated = map[string]bool{}

	d.cycler.StartStory(s.GUID)
	d.visuals.SetStoryImage(s.ImageURL)
	d.visuals.SetTickerText(fmt.Sprintf("BREAKING: %s • Stay tuned for details", s.Title))
}

func (d *Driver) advanceTransition(delta float64) {
	d.transitionLeft -= delta
	if d.transitionLeft > 0 {
		return
	}

	d.state = model.StateRunning
	slog.Info("transition complete, resuming coverage", "guid", d.story.GUID)
	d.requestNarration(d.cycler.Current())
}

// requestNarration emits a narration event for the anchor's perspective text
// unless identical text was already narrated for this story. Sink failures
// are logged and swallowed; narration never disturbs pipeline state.
func (d *Driver) requestNarration(a model.Anchor) {
	text := anchor.PerspectiveText(a, d.story)
	if text == "" || d.narrated[text] {
		return
	}
	d.narrated[text] = true

	if d.sink == nil {
		return
	}

	event := model.NarrationEvent{
		Story:       *d.story,
		AnchorName:  a.Name,
		Focus:       a.Focus,
		Perspective: a.Perspective,
		Text:        text,
		Voice:       a.Voice,
		EpisodeID:   d.episodeID,
		RequestedAt: d.now(),
	}

	if err := d.sink.Narrate(event); err != nil {
		slog.Error("narration request failed", "anchor", a.Name, "error", err)
	}
}
