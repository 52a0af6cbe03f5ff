package shared_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard/internal/api/shared"
)

func TestSetAndGetTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, shared.GetTraceID(ctx))

	withTrace := shared.SetTraceID(ctx)
	traceID := shared.GetTraceID(withTrace)
	_, err := uuid.Parse(traceID)
	require.NoError(t, err, "trace id should be a UUID")

	assert.Empty(t, shared.GetTraceID(ctx), "original context must be unchanged")
	assert.NotEqual(t, traceID, shared.GetTraceID(shared.SetTraceID(ctx)))
}

func TestGetTraceID_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), shared.TraceIDKey, 123)
	assert.Empty(t, shared.GetTraceID(ctx))
}

func TestWithTraceID(t *testing.T) {
	ctx := shared.WithTraceID(context.Background(), "abc")
	assert.Equal(t, "abc", shared.GetTraceID(ctx))
}
