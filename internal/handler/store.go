package handler

import (
	"sync"

	"github.com/keepitcheesy/agente/internal/model"
)

// SnapshotStore holds the most recently published status and frame. The tick
// loop is the only writer; HTTP handlers read concurrently.
type SnapshotStore struct {
	mu     sync.RWMutex
	status model.Status
	frame  *model.FrameSnapshot
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

func (s *SnapshotStore) Publish(status model.Status, frame *model.FrameSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	if frame != nil {
		s.frame = frame
	}
}

func (s *SnapshotStore) Status() model.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *SnapshotStore) Frame() *model.FrameSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frame
}
