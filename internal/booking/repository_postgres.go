package booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/outbox"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const bookingColumns = `
	id, name, phone, email, booking_date, booking_time, people,
	special_requests, status, confirmation_message,
	confirmed_at, confirmed_by, admin_notes, created_at, updated_at`

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID, &b.Name, &b.Phone, &b.Email, &b.Date, &b.Time, &b.People,
		&b.SpecialRequests, &b.Status, &b.ConfirmationMessage,
		&b.ConfirmedAt, &b.ConfirmedBy, &b.AdminNotes, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// --------------------------------------------------
// Create
// --------------------------------------------------
func (r *PostgresRepository) Create(
	ctx context.Context,
	b *Booking,
	intents []*outbox.Message,
) error {

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO bookings (
			id, name, phone, email, booking_date, booking_time,
			people, special_requests, status
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING created_at, updated_at
	`,
		b.ID, b.Name, b.Phone, b.Email, b.Date, b.Time,
		b.People, b.SpecialRequests, b.Status,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return err
	}

	if err := outbox.InsertTx(ctx, tx, intents...); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// List (newest first, optional status filter)
// --------------------------------------------------
func (r *PostgresRepository) List(
	ctx context.Context,
	status string,
) ([]*Booking, error) {

	query := `SELECT` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC`
	args := []any{}

	if status != "" {
		query = `SELECT` + bookingColumns + `
			FROM bookings
			WHERE status = $1
			ORDER BY created_at DESC`
		args = append(args, status)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// --------------------------------------------------
// Get
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, `
		SELECT`+bookingColumns+`
		FROM bookings
		WHERE id = $1
	`, id))
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// --------------------------------------------------
// Partial update + outbox intents in one transaction
// --------------------------------------------------
func (r *PostgresRepository) ApplyUpdate(
	ctx context.Context,
	id string,
	upd *StatusUpdate,
	stampConfirmed bool,
	intents []*outbox.Message,
) (*Booking, error) {

	set := []string{"updated_at = now()"}
	args := []any{}
	idx := 1

	addSet := func(col string, val any) {
		set = append(set, fmt.Sprintf("%s = $%d", col, idx))
		args = append(args, val)
		idx++
	}

	if upd.Status != nil {
		addSet("status", *upd.Status)
	}
	if upd.ConfirmationMessage != nil {
		addSet("confirmation_message", *upd.ConfirmationMessage)
	}
	if upd.AdminNotes != nil {
		addSet("admin_notes", *upd.AdminNotes)
	}
	if upd.ConfirmedBy != nil {
		addSet("confirmed_by", *upd.ConfirmedBy)
	}
	if stampConfirmed {
		// only fills an empty timestamp, so it is stamped exactly once
		set = append(set, "confirmed_at = COALESCE(confirmed_at, now())")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	query := fmt.Sprintf(`
		UPDATE bookings
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(set, ", "), idx, bookingColumns)
	args = append(args, id)

	b, err := scanBooking(tx.QueryRow(ctx, query, args...))
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := outbox.InsertTx(ctx, tx, intents...); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return b, nil
}

// --------------------------------------------------
// Delete
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
