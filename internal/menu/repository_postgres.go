package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const menuColumns = `
	id, name, description, price, category, image_url,
	is_active, is_popular, created_at, updated_at`

func scanItem(row pgx.Row) (*MenuItem, error) {
	var m MenuItem
	err := row.Scan(
		&m.ID, &m.Name, &m.Description, &m.Price, &m.Category, &m.ImageURL,
		&m.IsActive, &m.IsPopular, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *MenuItem) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO menu_items (
			id, name, description, price, category,
			image_url, is_active, is_popular
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at, updated_at
	`,
		item.ID, item.Name, item.Description, item.Price, item.Category,
		item.ImageURL, item.IsActive, item.IsPopular,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
}

func (r *PostgresRepository) List(ctx context.Context, f Filter) ([]*MenuItem, error) {
	where := []string{}
	args := []any{}
	idx := 1

	if f.Query != "" {
		where = append(where,
			fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", idx, idx))
		args = append(args, "%"+f.Query+"%")
		idx++
	}
	if f.Category != "" {
		where = append(where, fmt.Sprintf("category = $%d", idx))
		args = append(args, f.Category)
		idx++
	}
	if f.ActiveOnly {
		where = append(where, "is_active = TRUE")
	}
	if f.PopularOnly {
		where = append(where, "is_popular = TRUE")
	}

	query := `SELECT` + menuColumns + ` FROM menu_items`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY category, name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*MenuItem
	for rows.Next() {
		m, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*MenuItem, error) {
	m, err := scanItem(r.db.QueryRow(ctx, `
		SELECT`+menuColumns+`
		FROM menu_items
		WHERE id = $1
	`, id))
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *PostgresRepository) Update(ctx context.Context, item *MenuItem) error {
	err := r.db.QueryRow(ctx, `
		UPDATE menu_items
		SET name = $1, description = $2, price = $3, category = $4,
		    image_url = $5, is_active = $6, is_popular = $7,
		    updated_at = now()
		WHERE id = $8
		RETURNING updated_at
	`,
		item.Name, item.Description, item.Price, item.Category,
		item.ImageURL, item.IsActive, item.IsPopular, item.ID,
	).Scan(&item.UpdatedAt)
	if err == pgx.ErrNoRows {
		return ErrNotFound
	}
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
