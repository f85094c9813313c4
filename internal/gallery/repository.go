package gallery

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("gallery item not found")

type Repository interface {
	Create(ctx context.Context, item *GalleryItem) error
	List(ctx context.Context, activeOnly bool) ([]*GalleryItem, error)
	GetByID(ctx context.Context, id string) (*GalleryItem, error)
	Update(ctx context.Context, item *GalleryItem) error
	Delete(ctx context.Context, id string) error
}
