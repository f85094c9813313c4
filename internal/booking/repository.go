package booking

import (
	"context"
	"errors"

	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/outbox"
)

var ErrNotFound = errors.New("booking not found")

// Repository defines all database operations for bookings.
// Writes that trigger notifications take the outbox intents so the record
// and its notification rows commit in one transaction.
type Repository interface {
	Create(ctx context.Context, b *Booking, intents []*outbox.Message) error

	List(ctx context.Context, status string) ([]*Booking, error)

	GetByID(ctx context.Context, id string) (*Booking, error)

	// ApplyUpdate applies the non-nil fields of upd. When stampConfirmed
	// is set, confirmed_at is filled only if it was still empty.
	ApplyUpdate(
		ctx context.Context,
		id string,
		upd *StatusUpdate,
		stampConfirmed bool,
		intents []*outbox.Message,
	) (*Booking, error)

	Delete(ctx context.Context, id string) error
}
