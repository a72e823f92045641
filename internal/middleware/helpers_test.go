package middleware

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/translate-gateway/internal/envelope"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestBuilder returns an envelope builder and logger sharing one buffer.
func newTestBuilder(t *testing.T, debug bool) (*envelope.Builder, zerolog.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	log := zerolog.New(buf)
	cfg := envelope.DefaultConfig()
	cfg.Debug = debug
	b, err := envelope.NewBuilder(cfg, log)
	require.NoError(t, err)
	return b, log, buf
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) envelope.ErrorPayload {
	t.Helper()
	var p envelope.ErrorPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p
}
