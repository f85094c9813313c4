package outbox

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	calls []*Message
	err   error
}

func (f *fakeSender) Send(ctx context.Context, m *Message) error {
	f.calls = append(f.calls, m)
	return f.err
}

func TestWorkerDelivers(t *testing.T) {
	store := NewMemoryStore()
	sender := &fakeSender{}
	w := NewWorker(store, map[string]Sender{ChannelEmail: sender})

	store.Add(NewMessage(ChannelEmail, "ravi@example.com", "hello", "<p>hi</p>"))

	assert.True(t, w.ProcessOne(context.Background()))
	assert.False(t, w.ProcessOne(context.Background()), "outbox should be drained")

	require.Len(t, sender.calls, 1)
	assert.Equal(t, "ravi@example.com", sender.calls[0].Recipient)

	msgs := store.All()
	require.Len(t, msgs, 1)
	assert.Equal(t, StatusSent, msgs[0].Status)
	assert.Equal(t, 1, msgs[0].Attempts)
}

func TestWorkerReschedulesOnFailure(t *testing.T) {
	store := NewMemoryStore()
	sender := &fakeSender{err: errors.New("timeout")}
	w := NewWorker(store, map[string]Sender{ChannelEmail: sender})

	store.Add(NewMessage(ChannelEmail, "ravi@example.com", "hello", "<p>hi</p>"))

	assert.True(t, w.ProcessOne(context.Background()))

	msgs := store.All()
	require.Len(t, msgs, 1)
	assert.Equal(t, StatusPending, msgs[0].Status, "non-final failure goes back to pending")
	assert.Equal(t, 1, msgs[0].Attempts)
	require.NotNil(t, msgs[0].LastError)
	assert.Equal(t, "timeout", *msgs[0].LastError)
}

func TestWorkerGivesUpAfterMaxAttempts(t *testing.T) {
	store := NewMemoryStore()
	sender := &fakeSender{err: errors.New("timeout")}
	w := NewWorker(store, map[string]Sender{ChannelEmail: sender})

	store.Add(NewMessage(ChannelEmail, "ravi@example.com", "hello", "<p>hi</p>"))

	for i := 0; i < MaxAttempts; i++ {
		require.True(t, w.ProcessOne(context.Background()), "attempt %d", i+1)
	}
	assert.False(t, w.ProcessOne(context.Background()))

	msgs := store.All()
	require.Len(t, msgs, 1)
	assert.Equal(t, StatusFailed, msgs[0].Status)
	assert.Equal(t, MaxAttempts, msgs[0].Attempts)
	assert.Len(t, sender.calls, MaxAttempts)
}

func TestWorkerUnknownChannel(t *testing.T) {
	store := NewMemoryStore()
	w := NewWorker(store, map[string]Sender{})

	store.Add(NewMessage("PIGEON", "somewhere", "", "coo"))

	assert.True(t, w.ProcessOne(context.Background()))

	msgs := store.All()
	require.Len(t, msgs, 1)
	assert.Equal(t, StatusFailed, msgs[0].Status)
	require.NotNil(t, msgs[0].LastError)
	assert.Contains(t, *msgs[0].LastError, "unknown channel")
}

func TestWorkerPicksSenderByChannel(t *testing.T) {
	store := NewMemoryStore()
	email := &fakeSender{}
	whatsapp := &fakeSender{}
	w := NewWorker(store, map[string]Sender{
		ChannelEmail:    email,
		ChannelWhatsApp: whatsapp,
	})

	store.Add(
		NewMessage(ChannelEmail, "ravi@example.com", "s", "b"),
		NewMessage(ChannelWhatsApp, "9876500000", "", "table for four"),
	)

	for w.ProcessOne(context.Background()) {
	}

	assert.Len(t, email.calls, 1)
	assert.Len(t, whatsapp.calls, 1)
}
