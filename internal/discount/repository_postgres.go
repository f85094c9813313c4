package discount

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ExistsByContact(ctx context.Context, contact string) (bool, error) {
	var exists int
	err := r.db.QueryRow(ctx,
		`SELECT 1 FROM discounts WHERE contact = $1 LIMIT 1`, contact,
	).Scan(&exists)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *PostgresRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists int
	err := r.db.QueryRow(ctx,
		`SELECT 1 FROM discounts WHERE code = $1 LIMIT 1`, code,
	).Scan(&exists)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *PostgresRepository) Create(ctx context.Context, d *Discount) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO discounts (id, contact, code, used, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, d.ID, d.Contact, d.Code, d.Used, d.ExpiresAt).Scan(&d.CreatedAt)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM discounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Discount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, contact, code, used, expires_at, created_at
		FROM discounts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var discounts []*Discount
	for rows.Next() {
		var d Discount
		if err := rows.Scan(
			&d.ID, &d.Contact, &d.Code, &d.Used, &d.ExpiresAt, &d.CreatedAt,
		); err != nil {
			return nil, err
		}
		discounts = append(discounts, &d)
	}
	return discounts, rows.Err()
}

func (r *PostgresRepository) MarkUsed(ctx context.Context, id string) (*Discount, error) {
	var d Discount
	err := r.db.QueryRow(ctx, `
		UPDATE discounts
		SET used = TRUE
		WHERE id = $1
		RETURNING id, contact, code, used, expires_at, created_at
	`, id).Scan(&d.ID, &d.Contact, &d.Code, &d.Used, &d.ExpiresAt, &d.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}
