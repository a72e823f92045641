package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAlwaysAllow(t *testing.T) {
	assert.NoError(t, AlwaysAllow{}.Authorize(context.Background(), ""))
	assert.NoError(t, AlwaysAllow{}.Authorize(context.Background(), "anything"))
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer  abc "))
	assert.Equal(t, "abc", bearerToken("abc"))
	assert.Equal(t, "", bearerToken("  "))
}

func TestAPIKeyPolicy(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	p, err := NewAPIKeyPolicy([]string{string(hash)})
	require.NoError(t, err)

	tests := []struct {
		name        string
		credentials string
		wantErr     error
	}{
		{name: "raw key", credentials: "s3cret"},
		{name: "bearer key", credentials: "Bearer s3cret"},
		{name: "missing key", credentials: "", wantErr: ErrUnauthorized},
		{name: "wrong key", credentials: "nope", wantErr: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.Authorize(context.Background(), tt.credentials)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewAPIKeyPolicy_Invalid(t *testing.T) {
	_, err := NewAPIKeyPolicy(nil)
	assert.Error(t, err)

	_, err = NewAPIKeyPolicy([]string{"not-a-bcrypt-hash"})
	assert.Error(t, err)
}

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.RegisteredClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestJWTPolicy(t *testing.T) {
	secret := []byte("test-secret")
	p, err := NewJWTPolicy(string(secret), "translate-gateway")
	require.NoError(t, err)

	valid := jwt.RegisteredClaims{
		Subject:   "client-1",
		Audience:  jwt.ClaimStrings{"translate-gateway"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	otherAudience := valid
	otherAudience.Audience = jwt.ClaimStrings{"billing"}

	tests := []struct {
		name        string
		credentials string
		wantErr     error
	}{
		{name: "valid token", credentials: "Bearer " + signToken(t, jwt.SigningMethodHS256, secret, valid)},
		{name: "missing token", credentials: "", wantErr: ErrUnauthorized},
		{name: "garbage", credentials: "Bearer not.a.jwt", wantErr: ErrUnauthorized},
		{name: "expired", credentials: "Bearer " + signToken(t, jwt.SigningMethodHS256, secret, expired), wantErr: ErrUnauthorized},
		{name: "wrong secret", credentials: "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), valid), wantErr: ErrUnauthorized},
		{name: "other signing method", credentials: "Bearer " + signToken(t, jwt.SigningMethodHS512, secret, valid), wantErr: ErrUnauthorized},
		{name: "wrong audience", credentials: "Bearer " + signToken(t, jwt.SigningMethodHS256, secret, otherAudience), wantErr: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.Authorize(context.Background(), tt.credentials)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewJWTPolicy_RequiresSecret(t *testing.T) {
	_, err := NewJWTPolicy("", "")
	assert.Error(t, err)
}
