package outbox

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// InsertTx writes messages inside the caller's transaction, so the intent
// rows commit or roll back together with the state change that created them.
func InsertTx(ctx context.Context, tx pgx.Tx, msgs ...*Message) error {
	for _, m := range msgs {
		_, err := tx.Exec(ctx, `
			INSERT INTO notification_outbox
				(id, channel, recipient, subject, body, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, m.ID, m.Channel, m.Recipient, m.Subject, m.Body, m.Status, m.CreatedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresStore) ClaimPending(ctx context.Context) (*Message, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var m Message

	err = tx.QueryRow(ctx, `
		SELECT id, channel, recipient, subject, body
		FROM notification_outbox
		WHERE status = $1
		ORDER BY created_at
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`, StatusPending).Scan(&m.ID, &m.Channel, &m.Recipient, &m.Subject, &m.Body)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// Claim atomically so concurrent workers never double-send
	err = tx.QueryRow(ctx, `
		UPDATE notification_outbox
		SET status = $1, attempts = attempts + 1
		WHERE id = $2
		RETURNING attempts
	`, StatusSending, m.ID).Scan(&m.Attempts)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	m.Status = StatusSending
	return &m, nil
}

func (s *PostgresStore) MarkSent(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `
		UPDATE notification_outbox
		SET status = $1, last_error = NULL, sent_at = now()
		WHERE id = $2
	`, StatusSent, id)
	return err
}

func (s *PostgresStore) MarkFailed(ctx context.Context, id string, errMsg string, final bool) error {
	status := StatusPending
	if final {
		status = StatusFailed
	}

	_, err := s.db.Exec(ctx, `
		UPDATE notification_outbox
		SET status = $1, last_error = $2
		WHERE id = $3
	`, status, errMsg, id)
	return err
}
