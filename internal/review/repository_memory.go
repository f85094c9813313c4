package review

import (
	"context"
	"sort"
	"time"
)

type InMemoryRepository struct {
	reviews map[string]*Review
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		reviews: make(map[string]*Review),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, rv *Review) error {
	if rv.CreatedAt.IsZero() {
		rv.CreatedAt = time.Now()
	}
	cp := *rv
	r.reviews[rv.ID] = &cp
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context, verifiedOnly bool) ([]*Review, error) {
	var out []*Review
	for _, rv := range r.reviews {
		if verifiedOnly && !rv.IsVerified {
			continue
		}
		cp := *rv
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Review, error) {
	rv, ok := r.reviews[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *rv
	return &cp, nil
}

func (r *InMemoryRepository) SetFlags(ctx context.Context, id string, verified, featured *bool) (*Review, error) {
	rv, ok := r.reviews[id]
	if !ok {
		return nil, ErrNotFound
	}
	if verified != nil {
		rv.IsVerified = *verified
	}
	if featured != nil {
		rv.IsFeatured = *featured
	}
	cp := *rv
	return &cp, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.reviews[id]; !ok {
		return ErrNotFound
	}
	delete(r.reviews, id)
	return nil
}

func (r *InMemoryRepository) Count(ctx context.Context) (int, error) {
	return len(r.reviews), nil
}
