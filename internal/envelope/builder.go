package envelope

import (
	"fmt"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Response is a fully built envelope ready to be written to a client.
// Payload is an ErrorPayload, a SuccessPayload or, for text errors, a string.
type Response struct {
	Status  int
	Format  Format
	Payload interface{}
}

// Write renders the response onto the gin context.
func (r Response) Write(c *gin.Context) {
	switch r.Format {
	case FormatText:
		text, _ := r.Payload.(string)
		c.Data(r.Status, "text/plain; charset=utf-8", []byte(text))
	default:
		c.PureJSON(r.Status, r.Payload)
	}
}

// Abort renders the response and stops the handler chain.
func (r Response) Abort(c *gin.Context) {
	r.Write(c)
	c.Abort()
}

// Builder constructs envelopes according to an immutable Config.
// A Builder is safe for concurrent use.
type Builder struct {
	cfg Config
	log zerolog.Logger
}

// NewBuilder creates a Builder. An empty DefaultFormat means JSON; any other
// unknown format is rejected.
func NewBuilder(cfg Config, log zerolog.Logger) (*Builder, error) {
	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = FormatJSON
	}
	f, err := ParseFormat(string(cfg.DefaultFormat))
	if err != nil {
		return nil, err
	}
	cfg.DefaultFormat = f
	return &Builder{cfg: cfg, log: log}, nil
}

// Config returns the configuration the builder was created with.
func (b *Builder) Config() Config {
	return b.cfg
}

// WithDebug returns a copy of the builder with debug output switched on or off.
func (b *Builder) WithDebug(debug bool) *Builder {
	cp := *b
	cp.cfg.Debug = debug
	return &cp
}

// WithDefaultFormat returns a copy of the builder using the given default format.
func (b *Builder) WithDefaultFormat(format string) (*Builder, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	cp := *b
	cp.cfg.DefaultFormat = f
	return &cp, nil
}

// Error builds an error envelope in the default format.
func (b *Builder) Error(kind Kind, details, debugDetails string) Response {
	return b.ErrorAs(kind, details, debugDetails, "")
}

// ErrorAs builds an error envelope in the given format. An empty or unknown
// format falls back to the default one.
func (b *Builder) ErrorAs(kind Kind, details, debugDetails string, format Format) Response {
	if format != FormatJSON && format != FormatText {
		format = b.cfg.DefaultFormat
	}

	escaped := html.EscapeString(details)
	b.logError(kind, escaped)

	var escapedDebug string
	if b.cfg.Debug && debugDetails != "" {
		escapedDebug = html.EscapeString(debugDetails)
	}

	if format == FormatText {
		return Response{
			Status:  kind.Code(),
			Format:  FormatText,
			Payload: textMessage(kind, escaped, escapedDebug),
		}
	}

	return Response{
		Status:  kind.Code(),
		Format:  FormatJSON,
		Payload: b.errorPayload(kind, escaped, escapedDebug),
	}
}

func (b *Builder) errorPayload(kind Kind, message, debug string) ErrorPayload {
	if message == "" {
		message = kind.Title()
	}

	detail := ErrorDetail{
		Code:    kind.Code(),
		Title:   kind.Title(),
		Message: message,
		Debug:   debug,
	}
	if b.cfg.GoogleCompat {
		detail.Errors = []GoogleError{{
			Message: message,
			Domain:  googleDomain,
			Reason:  googleReason,
		}}
		detail.Status = GoogleStatus(kind.Code())
	}

	return ErrorPayload{Status: statusError, Error: detail}
}

func textMessage(kind Kind, message, debug string) string {
	text := kind.Title()
	if message != "" {
		text += ": " + message
	}
	if debug != "" {
		text += " (Debug: " + debug + ")"
	}
	return text
}

func (b *Builder) logError(kind Kind, details string) {
	event := b.log.Error()
	if kind == NotFound {
		event = b.log.Warn()
	}
	event.
		Int("code", kind.Code()).
		Str("title", kind.Title()).
		Msgf("Error %d: %s - %s", kind.Code(), kind.Title(), details)
}

// BadRequest builds a 400 envelope in the default format.
func (b *Builder) BadRequest(details, debugDetails string) Response {
	return b.Error(BadRequest, details, debugDetails)
}

// Unauthorized builds a 401 envelope in the default format.
func (b *Builder) Unauthorized(details, debugDetails string) Response {
	return b.Error(Unauthorized, details, debugDetails)
}

// Forbidden builds a 403 envelope in the default format.
func (b *Builder) Forbidden(details, debugDetails string) Response {
	return b.Error(Forbidden, details, debugDetails)
}

// NotFound builds a 404 envelope in the default format.
func (b *Builder) NotFound(details, debugDetails string) Response {
	return b.Error(NotFound, details, debugDetails)
}

// Internal builds a 500 envelope in the default format.
func (b *Builder) Internal(details, debugDetails string) Response {
	return b.Error(InternalError, details, debugDetails)
}

// Success builds a success envelope. It fails with ErrInvalidArgument when
// statusCode is not a 2xx code. Success envelopes are always JSON.
func (b *Builder) Success(message string, data interface{}, statusCode int) (Response, error) {
	if statusCode < http.StatusOK || statusCode > 299 {
		return Response{}, fmt.Errorf("%w: success status code must be in [200, 299], got %d", ErrInvalidArgument, statusCode)
	}

	b.log.Info().
		Int("code", statusCode).
		Msgf("Success %d: %s", statusCode, message)

	return Response{
		Status: statusCode,
		Format: FormatJSON,
		Payload: SuccessPayload{
			Status:  statusSuccess,
			Code:    statusCode,
			Message: message,
			Data:    data,
		},
	}, nil
}

// OK builds a 200 success envelope.
func (b *Builder) OK(message string, data interface{}) Response {
	resp, _ := b.Success(message, data, http.StatusOK)
	return resp
}
