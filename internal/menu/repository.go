package menu

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("menu item not found")

// Filter narrows a listing. Query matches name and description.
type Filter struct {
	Query       string
	Category    string
	ActiveOnly  bool
	PopularOnly bool
}

// Repository defines all database operations for menu items.
type Repository interface {
	Create(ctx context.Context, item *MenuItem) error
	List(ctx context.Context, f Filter) ([]*MenuItem, error)
	GetByID(ctx context.Context, id string) (*MenuItem, error)
	Update(ctx context.Context, item *MenuItem) error
	Delete(ctx context.Context, id string) error
}
