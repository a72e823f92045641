// Package envelope builds the uniform success and error payloads returned by
// every endpoint of the gateway.
//
// Error payloads come in two formats (JSON and plain text) and, in JSON, an
// optional Google Translate v2 compatible variant. All user supplied text is
// HTML-escaped before it is embedded in a payload.
package envelope

import "net/http"

// Kind classifies a failure into one of the five HTTP fault categories the
// gateway recognises.
type Kind int

const (
	// BadRequest is a client fault caused by invalid input.
	BadRequest Kind = iota
	// Unauthorized is a client fault caused by missing or invalid credentials.
	Unauthorized
	// Forbidden is a client fault caused by insufficient permissions.
	Forbidden
	// NotFound is a client fault caused by an unknown resource.
	NotFound
	// InternalError is a server fault.
	InternalError
)

type kindInfo struct {
	code  int
	title string
}

var kinds = [...]kindInfo{
	BadRequest:    {code: http.StatusBadRequest, title: "Bad request"},
	Unauthorized:  {code: http.StatusUnauthorized, title: "Unauthorized"},
	Forbidden:     {code: http.StatusForbidden, title: "Forbidden"},
	NotFound:      {code: http.StatusNotFound, title: "Not found"},
	InternalError: {code: http.StatusInternalServerError, title: "Internal server error"},
}

// Kinds returns every defined Kind in ascending status code order.
func Kinds() []Kind {
	return []Kind{BadRequest, Unauthorized, Forbidden, NotFound, InternalError}
}

func (k Kind) info() kindInfo {
	if k < 0 || int(k) >= len(kinds) {
		return kinds[InternalError]
	}
	return kinds[k]
}

// Code returns the HTTP status code of the kind. Unknown kinds report 500.
func (k Kind) Code() int {
	return k.info().code
}

// Title returns the fixed human readable title of the kind.
func (k Kind) Title() string {
	return k.info().title
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return k.Title()
}

// IsClientFault reports whether the kind is a 4xx fault.
func (k Kind) IsClientFault() bool {
	return k.Code() < http.StatusInternalServerError
}

// GoogleStatus maps an HTTP status code to the status string used by the
// Google APIs error model. Codes outside the table map to "UNKNOWN".
func GoogleStatus(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "INVALID_ARGUMENT"
	case http.StatusUnauthorized:
		return "UNAUTHENTICATED"
	case http.StatusForbidden:
		return "PERMISSION_DENIED"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusInternalServerError:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}
