package discount

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("discount not found")

// Repository defines all database operations for discount codes.
// Contact and code uniqueness is backed by unique constraints.
type Repository interface {
	ExistsByContact(ctx context.Context, contact string) (bool, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, d *Discount) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Discount, error)
	MarkUsed(ctx context.Context, id string) (*Discount, error)
}
