package offers

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("offer not found")

type Repository interface {
	Create(ctx context.Context, o *Offer) error
	List(ctx context.Context) ([]*Offer, error)
	// ListCurrent returns active offers whose validity window contains now.
	ListCurrent(ctx context.Context, now time.Time) ([]*Offer, error)
	GetByID(ctx context.Context, id string) (*Offer, error)
	Update(ctx context.Context, o *Offer) error
	Delete(ctx context.Context, id string) error
}
