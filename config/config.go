// Package config provides configuration management for the translate gateway.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Build information reported on the root page and at startup.
const (
	Version     = "0.1.0"
	VersionDate = "2025.04.24"
	VersionInfo = "Google Translate v2 compatible gateway"
)

// Config holds the complete application configuration.
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Response  ResponseConfig
	Translate TranslateConfig
	Auth      AuthConfig
	Log       LogConfig
}

// AppConfig identifies the running application.
type AppConfig struct {
	Name string
	Mode string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  []string
	SwaggerUser  string
	SwaggerPass  string
}

// ResponseConfig controls the response envelopes.
type ResponseConfig struct {
	Debug        bool
	Format       string
	GoogleCompat bool
}

// TranslateConfig selects and tunes the translation engine.
type TranslateConfig struct {
	Model         string
	MaxTextLength int
	Engine        string
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	CacheSize     int
	CacheTTL      time.Duration
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// AuthConfig holds authorization configuration.
type AuthConfig struct {
	Enabled      bool
	APIKeyHashes []string
	JWTSecretKey string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Pretty bool
	Dir    string
}

// Load creates a Config from environment variables. Variables from the file
// named by ENV_FILE (default ".env") are loaded first when it exists; values
// already present in the environment win.
func Load() Config {
	_ = godotenv.Load(getEnv("ENV_FILE", ".env"))

	return Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "translate-gateway"),
			Mode: getEnv("APP_MODE", "development"),
		},
		Server: ServerConfig{
			Host:         getEnv("HOST", ""),
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvDuration("READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvDuration("WRITE_TIMEOUT", 60*time.Second),
			CORSOrigins:  parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:  getEnv("SWAGGER_USER", ""),
			SwaggerPass:  getEnv("SWAGGER_PASS", ""),
		},
		Response: ResponseConfig{
			Debug:        getEnvBool("DEBUG", false),
			Format:       getEnv("RESPONSE_FORMAT", "json"),
			GoogleCompat: getEnvBool("GOOGLE_COMPAT", false),
		},
		Translate: TranslateConfig{
			Model:                          getEnv("TRANSLATE_MODEL", "facebook/m2m100_418M"),
			MaxTextLength:                  getEnvInt("MAX_TEXT_LENGTH", 1000),
			Engine:                         getEnv("TRANSLATE_ENGINE", "libretranslate"),
			BaseURL:                        getEnv("TRANSLATE_URL", "http://localhost:5000"),
			APIKey:                         getEnv("TRANSLATE_API_KEY", ""),
			Timeout:                        getEnvDuration("TRANSLATE_TIMEOUT", 30*time.Second),
			CacheSize:                      getEnvInt("TRANSLATION_CACHE_SIZE", 1000),
			CacheTTL:                       getEnvDuration("TRANSLATION_CACHE_TTL", 10*time.Minute),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Auth: AuthConfig{
			Enabled:      getEnvBool("AUTH_ENABLED", false),
			APIKeyHashes: parseList(os.Getenv("API_KEY_HASHES")),
			JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
			Dir:    getEnv("LOG_DIR", "logs"),
		},
	}
}

// Addr returns the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	return append(defaults, parseList(s)...)
}
