package messages

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mbaklanov/chatline/internal/server/models"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Append(ctx context.Context, message *models.Message) error {
	query :=
		`INSERT INTO mailbox (id, source, destination, body, sent_at)
		 VALUES ($1, $2, $3, $4, $5)
		 `

	_, err := r.db.ExecContext(ctx, query,
		message.ID, message.Source, message.Destination, message.Text, message.SentAt)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Drain(ctx context.Context, username string) ([]*models.Message, error) {
	// Delete and return in one statement so a concurrent drain cannot see
	// the same rows. Ordering is restored from seq after the delete.
	query :=
		`WITH drained AS (
		     DELETE FROM mailbox WHERE destination = $1
		     RETURNING seq, id, source, destination, body, sent_at
		 )
		 SELECT id, source, destination, body, sent_at FROM drained ORDER BY seq
		 `

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	queued := []*models.Message{}
	for rows.Next() {
		m := &models.Message{}
		if err := rows.Scan(&m.ID, &m.Source, &m.Destination, &m.Text, &m.SentAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		queued = append(queued, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return queued, nil
}

func (r *PostgresRepository) Clear(ctx context.Context, username string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM mailbox WHERE destination = $1`, username); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}
