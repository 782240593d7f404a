package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/semantle/internal/config"
	"github.com/at-ishikawa/semantle/internal/session"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
	}{
		{
			name: "creates connection with valid config",
			cfg: config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				Database: "semantle",
				Username: "testuser",
				Password: "testpass",
			},
		},
		{
			name: "creates connection with pool settings and params",
			cfg: config.DatabaseConfig{
				Host:            "db.example.com",
				Port:            3307,
				Database:        "semantle",
				Username:        "admin",
				Password:        "secret",
				TLS:             true,
				Params:          map[string]string{"charset": "utf8mb4"},
				MaxOpenConns:    25,
				MaxIdleConns:    5,
				ConnMaxLifetime: 300,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Open(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, got)
			defer got.Close()

			assert.Equal(t, "mysql", got.DriverName())
		})
	}
}

func TestMigrate_sqlite(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "semantle.db"))
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db))
	// a second run must not fail
	require.NoError(t, Migrate(ctx, db))

	backend := session.NewSQLBackend(db)
	_, err = backend.Get(ctx, "session")
	assert.ErrorIs(t, err, session.ErrNotFound)

	require.NoError(t, backend.Put(ctx, "session", []byte("puzzle_number: 1\n")))
	require.NoError(t, backend.Put(ctx, "session", []byte("puzzle_number: 2\n")))

	got, err := backend.Get(ctx, "session")
	require.NoError(t, err)
	assert.Equal(t, "puzzle_number: 2\n", string(got))
}

func TestMigrate_mysql(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS session_items").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Migrate(context.Background(), sqlx.NewDb(sqlDB, "mysql")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_unsupportedDriver(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	err = Migrate(context.Background(), sqlx.NewDb(sqlDB, "postgres"))
	assert.Error(t, err)
}
