package envelope

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is returned when a caller passes a value the builder
// cannot accept. It signals a programming error, not a client fault.
var ErrInvalidArgument = errors.New("invalid argument")

// Format selects how error payloads are serialized.
type Format string

const (
	// FormatJSON renders error payloads as JSON objects.
	FormatJSON Format = "json"
	// FormatText renders error payloads as a single line of plain text.
	FormatText Format = "text"
)

// ParseFormat parses a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("%w: format must be either 'text' or 'json', got %q", ErrInvalidArgument, s)
	}
}

// Config holds the process wide response settings. It is built once at
// startup and never mutated afterwards.
type Config struct {
	// Debug enables the debug field in error payloads.
	Debug bool
	// DefaultFormat is used when a caller does not ask for a specific format.
	DefaultFormat Format
	// GoogleCompat adds the errors list and status string of the Google APIs
	// error model to JSON error payloads.
	GoogleCompat bool
}

// DefaultConfig returns the production defaults: no debug output, JSON
// payloads, plain envelope shape.
func DefaultConfig() Config {
	return Config{
		Debug:         false,
		DefaultFormat: FormatJSON,
	}
}
