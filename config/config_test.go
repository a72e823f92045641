package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	os.Clearenv()
	// keep godotenv away from any .env in the package directory
	_ = os.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		clearEnv(t)
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "translate-gateway", cfg.App.Name)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, ":8080", cfg.Server.Addr())
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.False(t, cfg.Response.Debug)
		assert.Equal(t, "json", cfg.Response.Format)
		assert.False(t, cfg.Response.GoogleCompat)
		assert.Equal(t, "facebook/m2m100_418M", cfg.Translate.Model)
		assert.Equal(t, 1000, cfg.Translate.MaxTextLength)
		assert.Equal(t, "libretranslate", cfg.Translate.Engine)
		assert.Equal(t, 10*time.Minute, cfg.Translate.CacheTTL)
		assert.False(t, cfg.Auth.Enabled)
		assert.Nil(t, cfg.Auth.APIKeyHashes)
		assert.Equal(t, "logs", cfg.Log.Dir)
		assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.Server.CORSOrigins)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		clearEnv(t)
		_ = os.Setenv("HOST", "127.0.0.1")
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("DEBUG", "true")
		_ = os.Setenv("RESPONSE_FORMAT", "text")
		_ = os.Setenv("GOOGLE_COMPAT", "true")
		_ = os.Setenv("MAX_TEXT_LENGTH", "250")
		_ = os.Setenv("TRANSLATE_MODEL", "facebook/m2m100_1.2B")
		_ = os.Setenv("TRANSLATION_CACHE_TTL", "1m")
		_ = os.Setenv("AUTH_ENABLED", "true")
		_ = os.Setenv("API_KEY_HASHES", " hash1 , hash2 ")
		_ = os.Setenv("CORS_ORIGINS", "https://example.com")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
		assert.True(t, cfg.Response.Debug)
		assert.Equal(t, "text", cfg.Response.Format)
		assert.True(t, cfg.Response.GoogleCompat)
		assert.Equal(t, 250, cfg.Translate.MaxTextLength)
		assert.Equal(t, "facebook/m2m100_1.2B", cfg.Translate.Model)
		assert.Equal(t, time.Minute, cfg.Translate.CacheTTL)
		assert.True(t, cfg.Auth.Enabled)
		assert.Equal(t, []string{"hash1", "hash2"}, cfg.Auth.APIKeyHashes)
		assert.Contains(t, cfg.Server.CORSOrigins, "https://example.com")
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		clearEnv(t)
		_ = os.Setenv("MAX_TEXT_LENGTH", "invalid")
		_ = os.Setenv("DEBUG", "invalid")
		_ = os.Setenv("TRANSLATE_TIMEOUT", "invalid")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 1000, cfg.Translate.MaxTextLength)
		assert.False(t, cfg.Response.Debug)
		assert.Equal(t, 30*time.Second, cfg.Translate.Timeout)
	})

	t.Run("reads env file without overriding the environment", func(t *testing.T) {
		os.Clearenv()
		envFile := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(envFile, []byte("PORT=7000\nAPP_NAME=from-file\n"), 0o600))
		_ = os.Setenv("ENV_FILE", envFile)
		_ = os.Setenv("APP_NAME", "from-env")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "7000", cfg.Server.Port)
		assert.Equal(t, "from-env", cfg.App.Name)
	})
}

func TestParseList(t *testing.T) {
	assert.Nil(t, parseList(""))
	assert.Nil(t, parseList(" , "))
	assert.Equal(t, []string{"a", "b"}, parseList("a, ,b"))
}
