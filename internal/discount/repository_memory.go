package discount

import "context"

type InMemoryRepository struct {
	discounts map[string]*Discount // keyed by id
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		discounts: make(map[string]*Discount),
	}
}

func (r *InMemoryRepository) ExistsByContact(ctx context.Context, contact string) (bool, error) {
	for _, d := range r.discounts {
		if d.Contact == contact {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	for _, d := range r.discounts {
		if d.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, d *Discount) error {
	cp := *d
	r.discounts[d.ID] = &cp
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.discounts[id]; !ok {
		return ErrNotFound
	}
	delete(r.discounts, id)
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*Discount, error) {
	var out []*Discount
	for _, d := range r.discounts {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (r *InMemoryRepository) MarkUsed(ctx context.Context, id string) (*Discount, error) {
	d, ok := r.discounts[id]
	if !ok {
		return nil, ErrNotFound
	}
	d.Used = true
	cp := *d
	return &cp, nil
}

// Count reports how many discounts are stored; used by tests.
func (r *InMemoryRepository) Count() int {
	return len(r.discounts)
}
