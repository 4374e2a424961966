package pipeline

import (
	"encoding/json"
	"log/slog"

	"github.com/keepitcheesy/agente/internal/model"
)

// NarrationSink receives narration events emitted on anchor rotation. The
// production sink enqueues them for the narrator worker; synthesis latency
// never blocks a tick.
type NarrationSink interface {
	Narrate(event model.NarrationEvent) error
}

// LogSink records narration requests without dispatching them. Used when no
// queue is configured.
type LogSink struct{}

func (LogSink) Narrate(event model.NarrationEvent) error {
	slog.Info("narration requested",
		"anchor", event.AnchorName,
		"focus", event.Focus,
		"text", event.Text,
	)
	return nil
}

// QueueSink marshals events and hands them to a queue push function, such as
// db.PushToQueue.
type QueueSink struct {
	push func(key, data string) error
	key  string
}

func NewQueueSink(push func(key, data string) error, key string) *QueueSink {
	return &QueueSink{push: push, key: key}
}

func (s *QueueSink) Narrate(event model.NarrationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.push(s.key, string(data))
}
