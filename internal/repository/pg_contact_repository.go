package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository/migrations"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// OpenPostgres connects to connString and creates the contact_messages table if absent.
func OpenPostgres(ctx context.Context, connString string) (*PgContactRepository, error) {
	pool, err := NewPool(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if _, err := ApplyPostgresMigrations(ctx, pool, migrations.Postgres, "postgres"); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return NewPgContactRepository(pool), nil
}

// Save inserts a new contact_messages row and populates msg.ID
// from the database RETURNING clause.
func (r *PgContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	if r == nil || r.pool == nil {
		return ErrNotConfigured
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, message)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		msg.Name, msg.Email, msg.Message,
	).Scan(&msg.ID)
}

// List returns all contact messages in insertion order.
func (r *PgContactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	if r == nil || r.pool == nil {
		return nil, ErrNotConfigured
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, COALESCE(name, ''), COALESCE(email, ''), message
		 FROM contact_messages
		 ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

// Ping checks the pool can reach the server.
func (r *PgContactRepository) Ping(ctx context.Context) error {
	if r == nil || r.pool == nil {
		return ErrNotConfigured
	}
	return r.pool.Ping(ctx)
}

// Close closes every connection in the pool.
func (r *PgContactRepository) Close() error {
	if r == nil || r.pool == nil {
		return nil
	}
	r.pool.Close()
	r.pool = nil
	return nil
}
