package outbox

import (
	"context"
	"sync"
)

// MemoryStore is the in-memory outbox used by tests and by the repository
// memory implementations.
type MemoryStore struct {
	mu   sync.Mutex
	msgs []*Message
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Add(msgs ...*Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msgs...)
}

func (s *MemoryStore) All() []*Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Message, len(s.msgs))
	copy(out, s.msgs)
	return out
}

func (s *MemoryStore) ClaimPending(ctx context.Context) (*Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.msgs {
		if m.Status == StatusPending {
			m.Status = StatusSending
			m.Attempts++
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) MarkSent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.msgs {
		if m.ID == id {
			m.Status = StatusSent
			m.LastError = nil
		}
	}
	return nil
}

func (s *MemoryStore) MarkFailed(ctx context.Context, id string, errMsg string, final bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := StatusPending
	if final {
		status = StatusFailed
	}

	for _, m := range s.msgs {
		if m.ID == id {
			m.Status = status
			m.LastError = &errMsg
		}
	}
	return nil
}
