package translate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/translate-gateway/internal/circuitbreaker"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDetector struct {
	code       string
	confidence float64
	err        error
}

func (f fakeDetector) Detect(context.Context, string) (string, float64, error) {
	return f.code, f.confidence, f.err
}

type fakeBackend struct {
	calls     int
	err       error
	healthErr error
}

func (f *fakeBackend) Translate(_ context.Context, text, src, tgt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return src + ">" + tgt + ":" + text, nil
}

func (f *fakeBackend) CheckHealth(context.Context) error { return f.healthErr }

func newTestEngine(backend *fakeBackend) *Engine {
	breaker := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Hour,
		Name:             "test",
	}, zerolog.Nop())
	return New(fakeDetector{code: "en", confidence: 0.9}, backend, breaker)
}

func TestEngine_Translate(t *testing.T) {
	backend := &fakeBackend{}
	e := newTestEngine(backend)

	out, err := e.Translate(context.Background(), "hi", "en", "fr")
	require.NoError(t, err)
	assert.Equal(t, "en>fr:hi", out)

	code, confidence, err := e.Detect(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "en", code)
	assert.Equal(t, 0.9, confidence)
}

func TestEngine_BreakerOpensOnBackendFailures(t *testing.T) {
	backendErr := errors.New("backend down")
	backend := &fakeBackend{err: backendErr}
	e := newTestEngine(backend)

	for i := 0; i < 2; i++ {
		_, err := e.Translate(context.Background(), "hi", "en", "fr")
		assert.ErrorIs(t, err, backendErr)
	}

	_, err := e.Translate(context.Background(), "hi", "en", "fr")
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	assert.Equal(t, 2, backend.calls)
	assert.Equal(t, "open", e.BreakerStats().State)
	assert.ErrorIs(t, e.CheckHealth(context.Background()), circuitbreaker.ErrCircuitOpen)

	// detection is local and unaffected
	code, _, err := e.Detect(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "en", code)
}

func TestEngine_CheckHealth(t *testing.T) {
	healthErr := errors.New("not ready")
	e := newTestEngine(&fakeBackend{healthErr: healthErr})
	assert.ErrorIs(t, e.CheckHealth(context.Background()), healthErr)

	e = newTestEngine(&fakeBackend{})
	assert.NoError(t, e.CheckHealth(context.Background()))
}

func TestParseEngineType(t *testing.T) {
	tests := []struct {
		in      string
		want    EngineType
		wantErr bool
	}{
		{in: "libretranslate", want: EngineLibreTranslate},
		{in: " LibreTranslate ", want: EngineLibreTranslate},
		{in: "LIBRETRANSLATE", want: EngineLibreTranslate},
		{in: "argos", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEngineType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewEngine_UnknownEngine(t *testing.T) {
	_, err := NewEngine(Config{Engine: "argos"}, []string{"en", "fr"}, zerolog.Nop())
	assert.Error(t, err)
}
