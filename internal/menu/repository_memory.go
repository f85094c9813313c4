package menu

import (
	"context"
	"sort"
	"strings"
	"time"
)

type InMemoryRepository struct {
	items map[string]*MenuItem
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items: make(map[string]*MenuItem),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, item *MenuItem) error {
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context, f Filter) ([]*MenuItem, error) {
	q := strings.ToLower(f.Query)

	var out []*MenuItem
	for _, m := range r.items {
		if f.Category != "" && m.Category != f.Category {
			continue
		}
		if f.ActiveOnly && !m.IsActive {
			continue
		}
		if f.PopularOnly && !m.IsPopular {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(m.Name), q) &&
			!strings.Contains(strings.ToLower(m.Description), q) {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*MenuItem, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, item *MenuItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return ErrNotFound
	}
	item.UpdatedAt = time.Now()
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
