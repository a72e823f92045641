//go:build contract

package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestAPI_ContractCompliance checks the documented response shapes.
func TestAPI_ContractCompliance(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setup          func(env *testEnv)
		expectedStatus int
		requiredKeys   []string
		forbiddenKeys  []string
	}{
		{
			name:   "translate success has no envelope",
			method: http.MethodPost,
			path:   "/translate",
			body:   `{"q":"hello","target":"fr"}`,
			setup: func(env *testEnv) {
				env.translator.On("Detect", mock.Anything, "hello").Return("en", 0.9, nil)
				env.translator.On("Translate", mock.Anything, "hello", "en", "fr").Return("bonjour", nil)
			},
			expectedStatus: http.StatusOK,
			requiredKeys:   []string{"data"},
			forbiddenKeys:  []string{"status", "code", "message"},
		},
		{
			name:   "detect success has no envelope",
			method: http.MethodPost,
			path:   "/detect",
			body:   `{"q":"hello"}`,
			setup: func(env *testEnv) {
				env.translator.On("Detect", mock.Anything, "hello").Return("en", 0.9, nil)
			},
			expectedStatus: http.StatusOK,
			requiredKeys:   []string{"data"},
			forbiddenKeys:  []string{"status"},
		},
		{
			name:           "languages success has no envelope",
			method:         http.MethodGet,
			path:           "/languages",
			expectedStatus: http.StatusOK,
			requiredKeys:   []string{"data"},
			forbiddenKeys:  []string{"status"},
		},
		{
			name:           "validation error uses the error envelope",
			method:         http.MethodPost,
			path:           "/translate",
			body:           `{"target":"fr"}`,
			expectedStatus: http.StatusBadRequest,
			requiredKeys:   []string{"status", "error"},
			forbiddenKeys:  []string{"data"},
		},
		{
			name:           "unknown route uses the error envelope",
			method:         http.MethodGet,
			path:           "/missing",
			expectedStatus: http.StatusNotFound,
			requiredKeys:   []string{"status", "error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.setup != nil {
				tt.setup(env)
			}

			w := env.do(tt.method, tt.path, tt.body)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			for _, k := range tt.requiredKeys {
				assert.Contains(t, body, k)
			}
			for _, k := range tt.forbiddenKeys {
				assert.NotContains(t, body, k)
			}

			if errObj, ok := body["error"].(map[string]interface{}); ok {
				for _, k := range []string{"code", "title", "message"} {
					assert.Contains(t, errObj, k)
				}
			}
		})
	}
}
