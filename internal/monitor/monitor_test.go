package monitor

import (
	"errors"
	"testing"
	"time"

	"github.com/keepitcheesy/agente/internal/model"

	"github.com/go-playground/assert/v2"
)

type fakeSource struct {
	stories []model.Story
	err     error
}

func (f *fakeSource) Fetch(limit int) ([]model.Story, error) {
	return f.stories, f.err
}

func (f *fakeSource) Name() string {
	return "fake"
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func story(guid, title string) model.Story {
	return model.Story{GUID: guid, Title: title}
}

func newTestMonitor(t *testing.T, src *fakeSource) (*Monitor, *fakeClock) {
	t.Helper()
	clk := &fakeClock{t: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}
	m, err := NewWithClock(src, 5, clk.Now)
	assert.Equal(t, nil, err)
	return m, clk
}

func TestNew_RejectsBadConfig(t *testing.T) {
	_, err := New(nil, 5)
	assert.NotEqual(t, nil, err)

	_, err = New(&fakeSource{}, 0)
	assert.NotEqual(t, nil, err)

	_, err = New(&fakeSource{}, -1)
	assert.NotEqual(t, nil, err)
}

func TestCheckForUpdate_FirstStoryAcceptedImmediately(t *testing.T) {
	src := &fakeSource{stories: []model.Story{story("s1", "First")}}
	m, _ := newTestMonitor(t, src)

	got := m.CheckForUpdate()
	assert.NotEqual(t, nil, got)
	assert.Equal(t, "s1", got.GUID)
	assert.Equal(t, false, m.HasPending())
}

func TestCheckForUpdate_SameIdentityIsNoUpdate(t *testing.T) {
	src := &fakeSource{stories: []model.Story{story("s1", "First")}}
	m, clk := newTestMonitor(t, src)

	m.CheckForUpdate()
	clk.Advance(10 * time.Second)

	got := m.CheckForUpdate()
	assert.Equal(t, (*model.Story)(nil), got)
}

func TestCheckForUpdate_WithinDebounceStoresPending(t *testing.T) {
	src := &fakeSource{stories: []model.Story{story("s1", "First")}}
	m, clk := newTestMonitor(t, src)

	m.CheckForUpdate()

	src.stories = []model.Story{story("s2", "Second")}
	clk.Advance(2 * time.Second)

	got := m.CheckForUpdate()
	assert.Equal(t, (*model.Story)(nil), got)
	assert.Equal(t, true, m.HasPending())

	// Still inside the window.
	assert.Equal(t, (*model.Story)(nil), m.PendingIfReady())
}

func TestPendingIfReady_PromotesAfterWindow(t *testing.T) {
	src := &fakeSource{stories: []model.Story{story("s1", "First")}}
	m, clk := newTestMonitor(t, src)

	m.CheckForUpdate()

	src.stories = []model.Story{story("s2", "Second")}
	clk.Advance(2 * time.Second)
	m.CheckForUpdate()

	clk.Advance(4 * time.Second)

	got := m.PendingIfReady()
	assert.NotEqual(t, nil, got)
	assert.Equal(t, "s2", got.GUID)
	assert.Equal(t, false, m.HasPending())
}

func TestCheckForUpdate_AfterWindowAcceptsDirectly(t *testing.T) {
	src := &fakeSource{stories: []model.Story{story("s1", "First")}}
	m, clk := newTestMonitor(t, src)

	m.CheckForUpdate()

	src.stories = []model.Story{story("s2", "Second")}
	clk.Advance(6 * time.Second)

	got := m.CheckForUpdate()
	assert.NotEqual(t, nil, got)
	assert.Equal(t, "s2", got.GUID)
}

func TestPending_LastWriteWins(t *testing.T) {
	src := &fakeSource{stories: []model.Story{story("s1", "First")}}
	m, clk := newTestMonitor(t, src)

	m.CheckForUpdate()

	src.stories = []model.Story{story("s2", "Second")}
	clk.Advance(1 * time.Second)
	m.CheckForUpdate()

	src.stories = []model.Story{story("s3", "Third")}
	clk.Advance(1 * time.Second)
	m.CheckForUpdate()

	clk.Advance(4 * time.Second)

	got := m.PendingIfReady()
	assert.NotEqual(t, nil, got)
	assert.Equal(t, "s3", got.GUID)
}

func TestCheckForUpdate_FetchFailureIsNoUpdate(t *testing.T) {
	src := &fakeSource{err: errors.New("connection refused")}
	m, _ := newTestMonitor(t, src)

	assert.Equal(t, (*model.Story)(nil), m.CheckForUpdate())
}

func TestCheckForUpdate_EmptyFeedIsNoUpdate(t *testing.T) {
	src := &fakeSource{}
	m, _ := newTestMonitor(t, src)

	assert.Equal(t, (*model.Story)(nil), m.CheckForUpdate())
}
