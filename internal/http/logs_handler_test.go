package http

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/guttosm/translate-gateway/internal/logfile"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{ err error }

func (r failingReader) Read(int, int, int) ([]byte, error) { return nil, r.err }

func newLogsEnv(t *testing.T, store LogReader) *testEnv {
	t.Helper()
	responses := newTestResponses(t, zerolog.Nop())
	return newTestEnv(t, withGroups(NewLogsHandler(store, "gateway", responses, zerolog.Nop())))
}

func TestGetLogs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gateway_2025-04-24.log"), []byte("line one\nline two\n"), 0o644))
	env := newLogsEnv(t, logfile.NewStore(dir, "gateway"))

	t.Run("returns file content", func(t *testing.T) {
		w := env.do(http.MethodGet, "/logs?year=2025&month=4&day=24", "")
		requireStatus(t, w, http.StatusOK)
		assert.Equal(t, "line one\nline two\n", w.Body.String())
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	})

	tests := []struct {
		name    string
		query   string
		message string
	}{
		{name: "no parameters", query: "", message: "Missing required query parameters: year, month, day."},
		{name: "missing day", query: "?year=2025&month=4", message: "Missing required query parameters: year, month, day."},
		{name: "empty month", query: "?year=2025&month=&day=24", message: "Missing required query parameters: year, month, day."},
		{name: "non-integer", query: "?year=2025&month=april&day=24", message: "Invalid query parameters: year, month, day must be integers."},
		{name: "absent file", query: "?year=2025&month=4&day=25", message: "Log file gateway_2025-04-25.log not found."},
		{name: "no calendar validation", query: "?year=2025&month=13&day=40", message: "Log file gateway_2025-13-40.log not found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodGet, "/logs"+tt.query, "")
			requireStatus(t, w, http.StatusBadRequest)
			assert.Equal(t, tt.message, decodeError(t, w).Error.Message)
		})
	}
}

func TestGetLogs_ReadFailure(t *testing.T) {
	env := newLogsEnv(t, failingReader{err: errors.New("permission denied")})

	w := env.do(http.MethodGet, "/logs?year=2025&month=4&day=24", "")
	requireStatus(t, w, http.StatusInternalServerError)
	assert.Equal(t, "Error reading file: permission denied", decodeError(t, w).Error.Message)
}
