package review

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

const reviewColumns = `
	id, name, COALESCE(email, ''), rating, comment,
	is_verified, is_featured, created_at`

func scanReview(row pgx.Row) (*Review, error) {
	var rv Review
	err := row.Scan(
		&rv.ID, &rv.Name, &rv.Email, &rv.Rating, &rv.Comment,
		&rv.IsVerified, &rv.IsFeatured, &rv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *PostgresRepository) Create(ctx context.Context, rv *Review) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO reviews (id, name, email, rating, comment, is_verified, is_featured)
		VALUES ($1,$2,NULLIF($3,''),$4,$5,$6,$7)
		RETURNING created_at
	`,
		rv.ID, rv.Name, rv.Email, rv.Rating, rv.Comment,
		rv.IsVerified, rv.IsFeatured,
	).Scan(&rv.CreatedAt)
}

func (r *PostgresRepository) List(ctx context.Context, verifiedOnly bool) ([]*Review, error) {
	query := `SELECT` + reviewColumns + ` FROM reviews`
	if verifiedOnly {
		query += ` WHERE is_verified = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Review, error) {
	rv, err := scanReview(r.db.QueryRow(ctx, `
		SELECT`+reviewColumns+`
		FROM reviews
		WHERE id = $1
	`, id))
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (r *PostgresRepository) SetFlags(ctx context.Context, id string, verified, featured *bool) (*Review, error) {
	rv, err := scanReview(r.db.QueryRow(ctx, `
		UPDATE reviews
		SET is_verified = COALESCE($1, is_verified),
		    is_featured = COALESCE($2, is_featured)
		WHERE id = $3
		RETURNING `+reviewColumns+`
	`, verified, featured, id))
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&n)
	return n, err
}
