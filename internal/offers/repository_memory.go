package offers

import (
	"context"
	"sort"
	"time"
)

type InMemoryRepository struct {
	offers map[string]*Offer
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		offers: make(map[string]*Offer),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, o *Offer) error {
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now

	cp := *o
	r.offers[o.ID] = &cp
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*Offer, error) {
	var out []*Offer
	for _, o := range r.offers {
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryRepository) ListCurrent(ctx context.Context, now time.Time) ([]*Offer, error) {
	var out []*Offer
	for _, o := range r.offers {
		if !o.IsActive || now.Before(o.ValidFrom) || now.After(o.ValidUntil) {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ValidUntil.Before(out[j].ValidUntil)
	})
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Offer, error) {
	o, ok := r.offers[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, o *Offer) error {
	if _, ok := r.offers[o.ID]; !ok {
		return ErrNotFound
	}
	o.UpdatedAt = time.Now()
	cp := *o
	r.offers[o.ID] = &cp
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.offers[id]; !ok {
		return ErrNotFound
	}
	delete(r.offers, id)
	return nil
}
