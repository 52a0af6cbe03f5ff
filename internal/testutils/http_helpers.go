package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard/internal/api/shared"
)

// CreateTestServer creates a httptest server with the given handler and
// registers its shutdown with t.Cleanup.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// Serve runs a request through handler in-process and returns the recorder.
// body may be nil, a string (sent verbatim), or any value encoded as JSON.
func Serve(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err, "failed to marshal request body")
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// DecodeJSON unmarshals the recorded body into v.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "failed to decode body: %s", rec.Body.String())
}

// AssertErrorResponse checks the status code and that the error body contains msgPart.
func AssertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, status int, msgPart string) {
	t.Helper()

	assert.Equal(t, status, rec.Code, "unexpected status, body: %s", rec.Body.String())

	var errResp shared.ErrorResponse
	DecodeJSON(t, rec, &errResp)
	assert.Contains(t, errResp.Error, msgPart)
}
