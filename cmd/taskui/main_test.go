package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard/internal/api"
	"github.com/phrazzld/taskboard/internal/client"
	"github.com/phrazzld/taskboard/internal/service"
	"github.com/phrazzld/taskboard/internal/testutils"
	"github.com/phrazzld/taskboard/internal/ui"
)

func newAPIServerURL(t *testing.T) string {
	t.Helper()
	svc, err := service.NewTaskService(testutils.NewTaskStore(t), slog.Default())
	require.NoError(t, err)
	r := chi.NewRouter()
	api.NewTaskHandler(svc, slog.Default()).Routes(r)
	return testutils.CreateTestServer(t, r).URL
}

func TestRun_Session(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	url := newAPIServerURL(t)
	input := strings.Join([]string{
		"add Buy milk",
		"add Walk dog",
		"edit 1",
		"title Buy bread",
		"save",
		"rm 2",
		"bogus",
		"quit",
		"add never reached",
	}, "\n")
	var out, errOut bytes.Buffer

	require.NoError(t, run(context.Background(), "", url, strings.NewReader(input), &out, &errOut))

	screen := out.String()
	assert.Contains(t, screen, " * editing [1]: Buy milk")
	assert.Contains(t, screen, "unknown command: bogus")

	c, err := client.New(url)
	require.NoError(t, err)
	tasks, err := c.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy bread", tasks[0].Title)
}

func TestSession_Exec(t *testing.T) {
	c, err := client.New(newAPIServerURL(t))
	require.NoError(t, err)
	var out bytes.Buffer
	s := &session{ctrl: ui.NewController(c, slog.Default()), out: &out}
	ctx := context.Background()

	assert.NoError(t, s.exec(ctx, "   "))
	assert.ErrorContains(t, s.exec(ctx, "edit abc"), "invalid task id")
	assert.ErrorContains(t, s.exec(ctx, "rm 0"), "invalid task id")
	assert.ErrorIs(t, s.exec(ctx, "quit"), errQuit)

	require.NoError(t, s.exec(ctx, "add Feed cat"))
	assert.Contains(t, out.String(), "[1] Feed cat")

	out.Reset()
	require.NoError(t, s.exec(ctx, "help"))
	assert.Contains(t, out.String(), "add <title>")
}
