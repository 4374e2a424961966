// Package monitor watches a feed source for new stories and debounces
// acceptance so bursty upstream updates never flap the active story.
package monitor

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/keepitcheesy/agente/internal/model"
	"github.com/keepitcheesy/agente/pkg/news"
)

// Monitor tracks the last accepted story identity and holds at most one
// pending story while the debounce window runs down. A newer candidate always
// overwrites an older pending one.
type Monitor struct {
	source   news.Source
	debounce float64

	lastGUID     string
	lastAccepted time.Time
	hasAccepted  bool
	pending      *model.Story

	now func() time.Time
}

func New(source news.Source, debounceSeconds float64) (*Monitor, error) {
	return NewWithClock(source, debounceSeconds, time.Now)
}

// NewWithClock is New with an injectable clock, for deterministic tests.
func NewWithClock(source news.Source, debounceSeconds float64, now func() time.Time) (*Monitor, error) {
	if source == nil {
		return nil, fmt.Errorf("monitor: source is nil")
	}
	if debounceSeconds <= 0 {
		return nil, fmt.Errorf("monitor: debounce must be positive, got %v", debounceSeconds)
	}
	return &Monitor{source: source, debounce: debounceSeconds, now: now}, nil
}

// CheckForUpdate fetches the latest story and accepts it when its identity
// differs from the last accepted one and the debounce window has elapsed.
// Inside the window the story is stored as pending instead. Fetch failures
// and empty feeds are treated as "no update".
func (m *Monitor) CheckForUpdate() *model.Story {
	stories, err := m.source.Fetch(1)
	if err != nil {
		slog.Warn("feed fetch failed", "source", m.source.Name(), "error", err)
		return nil
	}
	if len(stories) == 0 {
		slog.Warn("feed returned no entries", "source", m.source.Name())
		return nil
	}

	latest := stories[0]
	if latest.GUID == m.lastGUID {
		return nil
	}

	now := m.now()
	if m.hasAccepted && now.Sub(m.lastAccepted).Seconds() < m.debounce {
		s := latest
		m.pending = &s
		slog.Info("debouncing story", "guid", latest.GUID, "title", latest.Title)
		return nil
	}

	return m.accept(latest, now)
}

// PendingIfReady promotes the pending story once the debounce window has
// elapsed since the last acceptance.
func (m *Monitor) PendingIfReady() *model.Story {
	if m.pending == nil {
		return nil
	}

	now := m.now()
	if m.hasAccepted && now.Sub(m.lastAccepted).Seconds() < m.debounce {
		return nil
	}

	return m.accept(*m.pending, now)
}

func (m *Monitor) HasPending() bool {
	return m.pending != nil
}

func (m *Monitor) accept(s model.Story, now time.Time) *model.Story {
	m.lastGUID = s.GUID
	m.lastAccepted = now
	m.hasAccepted = true
	m.pending = nil
	slog.Info("new story accepted", "guid", s.GUID, "title", s.Title)
	return &s
}
