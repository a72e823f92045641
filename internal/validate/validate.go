// Package validate extracts required values from parsed request bodies,
// query strings and headers.
//
// Every function returns the value and a nil error, or a nil value and an
// error whose message is meant to be shown to the client in a 400 envelope.
package validate

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Source names where a required value was looked up.
type Source string

const (
	// SourceBody is the JSON request body.
	SourceBody Source = "body"
	// SourceParameter is the URL query string.
	SourceParameter Source = "parameter"
	// SourceHeader is the request headers.
	SourceHeader Source = "header"
)

// MissingError reports a required value that is absent or null.
type MissingError struct {
	Source Source
	Name   string
}

func (e *MissingError) Error() string {
	switch e.Source {
	case SourceBody:
		return fmt.Sprintf("%s is not defined in the body (JSON) of request.", e.Name)
	default:
		return fmt.Sprintf("%s %s is not defined", e.Name, e.Source)
	}
}

// TypeError reports a body field holding a value of the wrong JSON type.
type TypeError struct {
	Name     string
	Expected string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s must be a %s in the body (JSON) of request.", e.Name, e.Expected)
}

// BodyField returns body[key] when it is present and not null.
func BodyField(body map[string]interface{}, key string) (interface{}, error) {
	value, ok := body[key]
	if !ok || value == nil {
		return nil, &MissingError{Source: SourceBody, Name: key}
	}
	return value, nil
}

// BodyString returns body[key] when it is present and a JSON string.
func BodyString(body map[string]interface{}, key string) (string, error) {
	value, err := BodyField(body, key)
	if err != nil {
		return "", err
	}
	s, ok := value.(string)
	if !ok {
		return "", &TypeError{Name: key, Expected: "string"}
	}
	return s, nil
}

// QueryParam returns the named query parameter when it is present.
// A present but empty parameter is returned as an empty string.
func QueryParam(c *gin.Context, name string) (string, error) {
	value, ok := c.GetQuery(name)
	if !ok {
		return "", &MissingError{Source: SourceParameter, Name: name}
	}
	return value, nil
}

// Header returns the named request header when it is present.
func Header(c *gin.Context, name string) (string, error) {
	values, ok := c.Request.Header[http.CanonicalHeaderKey(name)]
	if !ok || len(values) == 0 {
		return "", &MissingError{Source: SourceHeader, Name: name}
	}
	return values[0], nil
}
