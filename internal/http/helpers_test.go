package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/translate-gateway/internal/catalog"
	"github.com/guttosm/translate-gateway/internal/envelope"
	"github.com/guttosm/translate-gateway/internal/middleware"
	"github.com/guttosm/translate-gateway/internal/mocks"
	"github.com/guttosm/translate-gateway/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router     *gin.Engine
	translator *mocks.MockTranslator
	logs       *bytes.Buffer
}

type envOption func(*RouterConfig)

func withPolicy(p middleware.AuthorizationPolicy) envOption {
	return func(cfg *RouterConfig) { cfg.Policy = p }
}

func withGroups(groups ...RouteGroup) envOption {
	return func(cfg *RouterConfig) { cfg.Groups = append(cfg.Groups, groups...) }
}

func newTestResponses(t *testing.T, log zerolog.Logger) *envelope.Builder {
	t.Helper()
	b, err := envelope.NewBuilder(envelope.DefaultConfig(), log)
	require.NoError(t, err)
	return b
}

// newTestEnv builds the full router around a mocked translator.
func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()

	buf := &bytes.Buffer{}
	log := zerolog.New(buf)
	responses := newTestResponses(t, log)

	cat, err := catalog.ForModel(catalog.DefaultModel)
	require.NoError(t, err)

	translator := &mocks.MockTranslator{}
	svc := service.NewTranslationService(translator, cat, nil, log)

	cfg := RouterConfig{
		Responses: responses,
		Logger:    log,
		Groups:    []RouteGroup{NewTranslateHandler(svc, responses, 20)},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &testEnv{router: NewRouter(cfg), translator: translator, logs: buf}
}

func (e *testEnv) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) envelope.ErrorPayload {
	t.Helper()
	var p envelope.ErrorPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p), w.Body.String())
	return p
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
}
