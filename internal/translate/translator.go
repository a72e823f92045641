// Package translate provides the machine translation capability behind the
// gateway: language detection plus a translation backend.
package translate

import "context"

// Undetermined is the code reported when no language could be detected.
const Undetermined = "und"

// Translator is what the HTTP surface needs from the engine.
type Translator interface {
	// Detect returns the detected language code and a confidence in [0,1].
	Detect(ctx context.Context, text string) (string, float64, error)
	// Translate translates text between two catalog language codes.
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Detector identifies the language of a text.
type Detector interface {
	Detect(ctx context.Context, text string) (string, float64, error)
}

// Backend performs the actual translation.
type Backend interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
	// CheckHealth verifies that the backend is ready and operational.
	CheckHealth(ctx context.Context) error
}

// HealthChecker is implemented by translators that can report readiness.
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}
