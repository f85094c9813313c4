package gallery

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

func (r *PostgresRepository) Create(ctx context.Context, item *GalleryItem) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO gallery_items (id, title, category, image_url, is_active, sort_order)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at
	`,
		item.ID, item.Title, item.Category, item.ImageURL,
		item.IsActive, item.SortOrder,
	).Scan(&item.CreatedAt)
}

func (r *PostgresRepository) List(ctx context.Context, activeOnly bool) ([]*GalleryItem, error) {
	query := `
		SELECT id, title, category, image_url, is_active, sort_order, created_at
		FROM gallery_items`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY sort_order, created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*GalleryItem
	for rows.Next() {
		var g GalleryItem
		if err := rows.Scan(
			&g.ID, &g.Title, &g.Category, &g.ImageURL,
			&g.IsActive, &g.SortOrder, &g.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &g)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*GalleryItem, error) {
	var g GalleryItem
	err := r.db.QueryRow(ctx, `
		SELECT id, title, category, image_url, is_active, sort_order, created_at
		FROM gallery_items
		WHERE id = $1
	`, id).Scan(
		&g.ID, &g.Title, &g.Category, &g.ImageURL,
		&g.IsActive, &g.SortOrder, &g.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *PostgresRepository) Update(ctx context.Context, item *GalleryItem) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE gallery_items
		SET title = $1, category = $2, image_url = $3,
		    is_active = $4, sort_order = $5
		WHERE id = $6
	`,
		item.Title, item.Category, item.ImageURL,
		item.IsActive, item.SortOrder, item.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM gallery_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
