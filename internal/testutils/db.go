package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard/internal/config"
	"github.com/phrazzld/taskboard/internal/platform/sqlstore"
)

// NewSQLiteDB opens a fresh SQLite database file under t.TempDir(), applies
// all migrations, and closes the pool when the test finishes.
func NewSQLiteDB(t testing.TB) *sql.DB {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.DatabaseConfig{
		Driver:       string(sqlstore.DialectSQLite),
		DSN:          fmt.Sprintf("file:%s", filepath.Join(t.TempDir(), "tasks.db")),
		MaxOpenConns: 4,
	}

	db, dialect, err := sqlstore.Open(context.Background(), cfg, logger)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, sqlstore.Migrate(context.Background(), db, dialect, "up", logger),
		"failed to migrate test database")
	return db
}

// NewTaskStore returns a TaskStore over a fresh migrated SQLite database.
func NewTaskStore(t testing.TB) *sqlstore.TaskStore {
	t.Helper()
	return sqlstore.NewTaskStore(NewSQLiteDB(t), sqlstore.DialectSQLite, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
