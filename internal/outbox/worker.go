package outbox

import (
	"context"
	"time"

	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/logger"
)

// Sender delivers one message on its channel.
type Sender interface {
	Send(ctx context.Context, m *Message) error
}

// Worker drains the outbox: claim, deliver, mark. A delivery failure never
// touches the record that enqueued the message; it only reschedules or
// fails the message itself.
type Worker struct {
	store    Store
	senders  map[string]Sender
	interval time.Duration
}

func NewWorker(store Store, senders map[string]Sender) *Worker {
	return &Worker{
		store:    store,
		senders:  senders,
		interval: 3 * time.Second,
	}
}

func (w *Worker) Run(ctx context.Context) {
	logger.Log.Info("notification worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("notification worker stopped")
			return
		case <-ticker.C:
			for w.ProcessOne(ctx) {
			}
		}
	}
}

// ProcessOne claims and delivers a single pending message.
// Returns false when the outbox had nothing to do.
func (w *Worker) ProcessOne(ctx context.Context) bool {
	m, err := w.store.ClaimPending(ctx)
	if err != nil {
		logger.Log.Error("outbox claim failed", "err", err)
		return false
	}
	if m == nil {
		return false
	}

	sender, ok := w.senders[m.Channel]
	if !ok {
		_ = w.store.MarkFailed(ctx, m.ID, "unknown channel: "+m.Channel, true)
		return true
	}

	if err := sender.Send(ctx, m); err != nil {
		final := m.Attempts >= MaxAttempts
		_ = w.store.MarkFailed(ctx, m.ID, err.Error(), final)
		logger.Log.Warn("notification delivery failed",
			"id", m.ID, "channel", m.Channel, "attempt", m.Attempts,
			"final", final, "err", err)
		return true
	}

	_ = w.store.MarkSent(ctx, m.ID)
	logger.Log.Info("notification delivered",
		"id", m.ID, "channel", m.Channel, "recipient", m.Recipient)
	return true
}
