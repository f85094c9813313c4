package outbox

import "context"

// Store is the delivery worker's view of the outbox table.
type Store interface {
	// ClaimPending atomically claims the oldest PENDING message and
	// increments its attempt counter. Returns (nil, nil) when the
	// outbox is empty.
	ClaimPending(ctx context.Context) (*Message, error)

	MarkSent(ctx context.Context, id string) error

	// MarkFailed records the error; final moves the message to FAILED,
	// otherwise it goes back to PENDING for another attempt.
	MarkFailed(ctx context.Context, id string, errMsg string, final bool) error
}
