package gallery

import (
	"context"
	"sort"
	"time"
)

type InMemoryRepository struct {
	items map[string]*GalleryItem
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items: make(map[string]*GalleryItem),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, item *GalleryItem) error {
	item.CreatedAt = time.Now()
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context, activeOnly bool) ([]*GalleryItem, error) {
	var out []*GalleryItem
	for _, g := range r.items {
		if activeOnly && !g.IsActive {
			continue
		}
		cp := *g
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*GalleryItem, error) {
	g, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, item *GalleryItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return ErrNotFound
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}
