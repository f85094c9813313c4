package booking

import (
	"context"
	"sort"
	"time"

	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/outbox"
)

// InMemoryRepository backs handler and service tests.
type InMemoryRepository struct {
	bookings map[string]*Booking
	Outbox   *outbox.MemoryStore
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		bookings: make(map[string]*Booking),
		Outbox:   outbox.NewMemoryStore(),
	}
}

func (r *InMemoryRepository) Create(
	ctx context.Context,
	b *Booking,
	intents []*outbox.Message,
) error {
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	cp := *b
	r.bookings[b.ID] = &cp
	r.Outbox.Add(intents...)
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context, status string) ([]*Booking, error) {
	var out []*Booking
	for _, b := range r.bookings {
		if status != "" && b.Status != status {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *InMemoryRepository) ApplyUpdate(
	ctx context.Context,
	id string,
	upd *StatusUpdate,
	stampConfirmed bool,
	intents []*outbox.Message,
) (*Booking, error) {

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}

	if upd.Status != nil {
		b.Status = *upd.Status
	}
	if upd.ConfirmationMessage != nil {
		b.ConfirmationMessage = upd.ConfirmationMessage
	}
	if upd.AdminNotes != nil {
		b.AdminNotes = upd.AdminNotes
	}
	if upd.ConfirmedBy != nil {
		b.ConfirmedBy = upd.ConfirmedBy
	}
	if stampConfirmed && b.ConfirmedAt == nil {
		now := time.Now()
		b.ConfirmedAt = &now
	}
	b.UpdatedAt = time.Now()

	r.Outbox.Add(intents...)

	cp := *b
	return &cp, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.bookings[id]; !ok {
		return ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

// Count reports how many bookings are stored; used by tests.
func (r *InMemoryRepository) Count() int {
	return len(r.bookings)
}
