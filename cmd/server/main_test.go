package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MigrateCommands(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	t.Setenv("TASKS_DATABASE_DSN", fmt.Sprintf("file:%s", filepath.Join(t.TempDir(), "tasks.db")))
	t.Setenv("TASKS_SERVER_LOG_LEVEL", "error")

	ctx := context.Background()
	for _, cmd := range []string{"up", "status", "version", "down"} {
		require.NoError(t, run(ctx, "", cmd), cmd)
	}

	assert.Error(t, run(ctx, "", "sideways"))
}

func TestRun_BadConfig(t *testing.T) {
	t.Setenv("TASKS_DATABASE_DRIVER", "oracle")

	err := run(context.Background(), "", "status")

	assert.ErrorContains(t, err, "failed to load configuration")
}

func TestRun_MissingConfigFile(t *testing.T) {
	err := run(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"), "")

	assert.ErrorContains(t, err, "failed to load configuration")
}
