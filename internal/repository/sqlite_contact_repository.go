package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository/migrations"

	_ "modernc.org/sqlite"
)

// SQLiteContactRepository is the single-file SQLite implementation of ContactRepository.
type SQLiteContactRepository struct {
	db *sql.DB
}

// Ensure SQLiteContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*SQLiteContactRepository)(nil)

// OpenSQLite opens (creating if absent) the database file at path and
// creates the contact_messages table if it does not exist yet.
func OpenSQLite(ctx context.Context, path string) (*SQLiteContactRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := "file:" + filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One connection: inserts are serialized by the pool instead of by SQLITE_BUSY retries.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := ApplySQLiteMigrations(ctx, db, migrations.SQLite, "sqlite"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &SQLiteContactRepository{db: db}, nil
}

// Save inserts a new contact_messages row and populates msg.ID.
func (r *SQLiteContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	if r == nil || r.db == nil {
		return ErrNotConfigured
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO contact_messages (name, email, message) VALUES (?, ?, ?)`,
		msg.Name, msg.Email, nullableString(msg.Message),
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read inserted id: %w", err)
	}
	msg.ID = id
	return nil
}

// List returns all contact messages in insertion order.
func (r *SQLiteContactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	if r == nil || r.db == nil {
		return nil, ErrNotConfigured
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, COALESCE(name, ''), COALESCE(email, ''), message
		 FROM contact_messages
		 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query contact messages: %w", err)
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		var (
			m       model.ContactMessage
			message sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &message); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		if message.Valid {
			m.Message = &message.String
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

// Ping checks that the database file is still reachable.
func (r *SQLiteContactRepository) Ping(ctx context.Context) error {
	if r == nil || r.db == nil {
		return ErrNotConfigured
	}
	return r.db.PingContext(ctx)
}

// Close releases the database handle.
func (r *SQLiteContactRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}

func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
