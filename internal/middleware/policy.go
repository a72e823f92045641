package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUnauthorized means the request carries no usable credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the credentials are understood but not accepted.
	ErrForbidden = errors.New("forbidden")
)

// AuthorizationPolicy decides whether a request may reach a protected path.
// credentials is the raw Authorization header value, possibly empty.
// Returning an error wrapping ErrUnauthorized or ErrForbidden rejects the
// request with 401 or 403; any other error is reported as 500.
type AuthorizationPolicy interface {
	Authorize(ctx context.Context, credentials string) error
}

// AlwaysAllow accepts every request.
type AlwaysAllow struct{}

// Authorize implements AuthorizationPolicy.
func (AlwaysAllow) Authorize(context.Context, string) error { return nil }

// bearerToken strips an optional "Bearer " scheme.
func bearerToken(credentials string) string {
	credentials = strings.TrimSpace(credentials)
	if len(credentials) > 7 && strings.EqualFold(credentials[:7], "bearer ") {
		return strings.TrimSpace(credentials[7:])
	}
	return credentials
}

// APIKeyPolicy accepts keys matching one of a set of bcrypt hashes.
type APIKeyPolicy struct {
	hashes [][]byte
}

// NewAPIKeyPolicy validates the hashes up front so a typo fails at startup.
func NewAPIKeyPolicy(hashes []string) (*APIKeyPolicy, error) {
	if len(hashes) == 0 {
		return nil, errors.New("api key policy requires at least one key hash")
	}
	p := &APIKeyPolicy{hashes: make([][]byte, 0, len(hashes))}
	for i, h := range hashes {
		if _, err := bcrypt.Cost([]byte(h)); err != nil {
			return nil, fmt.Errorf("api key hash %d: %w", i, err)
		}
		p.hashes = append(p.hashes, []byte(h))
	}
	return p, nil
}

// Authorize implements AuthorizationPolicy.
func (p *APIKeyPolicy) Authorize(_ context.Context, credentials string) error {
	key := bearerToken(credentials)
	if key == "" {
		return fmt.Errorf("%w: API key is required", ErrUnauthorized)
	}
	for _, h := range p.hashes {
		if bcrypt.CompareHashAndPassword(h, []byte(key)) == nil {
			return nil
		}
	}
	return fmt.Errorf("%w: API key is not accepted", ErrForbidden)
}

// JWTPolicy accepts HS256-signed bearer tokens.
type JWTPolicy struct {
	secret   []byte
	audience string
}

// NewJWTPolicy creates a JWT policy. When audience is set, tokens must carry
// it in their aud claim.
func NewJWTPolicy(secret, audience string) (*JWTPolicy, error) {
	if secret == "" {
		return nil, errors.New("jwt policy requires a secret key")
	}
	return &JWTPolicy{secret: []byte(secret), audience: audience}, nil
}

// Authorize implements AuthorizationPolicy.
func (p *JWTPolicy) Authorize(_ context.Context, credentials string) error {
	tokenString := bearerToken(credentials)
	if tokenString == "" {
		return fmt.Errorf("%w: bearer token is required", ErrUnauthorized)
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if p.audience != "" {
		opts = append(opts, jwt.WithAudience(p.audience))
	}

	_, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secret, nil
	}, opts...)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return fmt.Errorf("%w: token is not valid for this service", ErrForbidden)
	default:
		return fmt.Errorf("%w: invalid token: %v", ErrUnauthorized, err)
	}
}
