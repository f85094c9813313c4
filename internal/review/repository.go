package review

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("review not found")

type Repository interface {
	Create(ctx context.Context, rv *Review) error
	List(ctx context.Context, verifiedOnly bool) ([]*Review, error)
	GetByID(ctx context.Context, id string) (*Review, error)
	SetFlags(ctx context.Context, id string, verified, featured *bool) (*Review, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
