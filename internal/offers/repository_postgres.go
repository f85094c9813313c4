package offers

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const offerColumns = `
	id, title, description, discount_percent, image_url,
	valid_from, valid_until, is_active, created_at, updated_at`

func scanOffer(row pgx.Row) (*Offer, error) {
	var o Offer
	err := row.Scan(
		&o.ID, &o.Title, &o.Description, &o.DiscountPercent, &o.ImageURL,
		&o.ValidFrom, &o.ValidUntil, &o.IsActive, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PostgresRepository) Create(ctx context.Context, o *Offer) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO offers (
			id, title, description, discount_percent, image_url,
			valid_from, valid_until, is_active
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at, updated_at
	`,
		o.ID, o.Title, o.Description, o.DiscountPercent, o.ImageURL,
		o.ValidFrom, o.ValidUntil, o.IsActive,
	).Scan(&o.CreatedAt, &o.UpdatedAt)
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Offer, error) {
	return r.queryOffers(ctx, `
		SELECT`+offerColumns+`
		FROM offers
		ORDER BY created_at DESC
	`)
}

func (r *PostgresRepository) ListCurrent(ctx context.Context, now time.Time) ([]*Offer, error) {
	return r.queryOffers(ctx, `
		SELECT`+offerColumns+`
		FROM offers
		WHERE is_active = TRUE
		  AND valid_from <= $1
		  AND valid_until >= $1
		ORDER BY valid_until
	`, now)
}

func (r *PostgresRepository) queryOffers(ctx context.Context, query string, args ...any) ([]*Offer, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []*Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Offer, error) {
	o, err := scanOffer(r.db.QueryRow(ctx, `
		SELECT`+offerColumns+`
		FROM offers
		WHERE id = $1
	`, id))
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *PostgresRepository) Update(ctx context.Context, o *Offer) error {
	err := r.db.QueryRow(ctx, `
		UPDATE offers
		SET title = $1, description = $2, discount_percent = $3,
		    image_url = $4, valid_from = $5, valid_until = $6,
		    is_active = $7, updated_at = now()
		WHERE id = $8
		RETURNING updated_at
	`,
		o.Title, o.Description, o.DiscountPercent, o.ImageURL,
		o.ValidFrom, o.ValidUntil, o.IsActive, o.ID,
	).Scan(&o.UpdatedAt)
	if err == pgx.ErrNoRows {
		return ErrNotFound
	}
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
