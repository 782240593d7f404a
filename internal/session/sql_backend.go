package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SQLBackend keeps keys in the session_items table of MySQL or SQLite.
type SQLBackend struct {
	db *sqlx.DB
}

func NewSQLBackend(db *sqlx.DB) *SQLBackend {
	return &SQLBackend{db: db}
}

func (b *SQLBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := b.db.GetContext(ctx, &value, "SELECT item_value FROM session_items WHERE item_key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(session_item) > %w", err)
	}
	return []byte(value), nil
}

func (b *SQLBackend) Put(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO session_items (item_key, item_value) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE item_value = VALUES(item_value)`
	if b.db.DriverName() == "sqlite" {
		query = `INSERT INTO session_items (item_key, item_value) VALUES (?, ?)
		ON CONFLICT(item_key) DO UPDATE SET item_value = excluded.item_value, updated_at = CURRENT_TIMESTAMP`
	}

	if _, err := b.db.ExecContext(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("db.ExecContext(upsert session_item) > %w", err)
	}
	return nil
}
