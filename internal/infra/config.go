package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Backend identifiers for the image transform call.
const (
	BackendGemini = "gemini"
	BackendRelay  = "relay"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string
	Port               string
	WebDir             string
	TransformBackend   string
	GeminiAPIKey       string
	GeminiModel        string
	GeminiBaseURL      string
	AuthBaseURL        string
	AuthPublicKey      string
	RelayFunction      string
	CORSAllowedOrigins []string
	SessionTTL         time.Duration
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	RateLimitPerMin    int
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		WebDir:             os.Getenv("WEB_DIR"),
		TransformBackend:   getEnv("TRANSFORM_BACKEND", BackendGemini),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.5-flash-image-preview"),
		GeminiBaseURL:      getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		AuthBaseURL:        strings.TrimRight(os.Getenv("AUTH_BASE_URL"), "/"),
		AuthPublicKey:      os.Getenv("AUTH_PUBLIC_KEY"),
		RelayFunction:      getEnv("RELAY_FUNCTION", "gemini-function"),
		CORSAllowedOrigins: splitEnvList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		SessionTTL:         time.Minute * time.Duration(getEnvInt("SESSION_TTL_MINUTES", 30)),
		HTTPReadTimeout:    time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 60)),
		HTTPIdleTimeout:    time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:    getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
	}

	switch cfg.TransformBackend {
	case BackendGemini, BackendRelay:
	default:
		return nil, fmt.Errorf("TRANSFORM_BACKEND must be %q or %q", BackendGemini, BackendRelay)
	}

	if cfg.TransformBackend == BackendRelay && cfg.AuthBaseURL == "" {
		return nil, fmt.Errorf("AUTH_BASE_URL is required when TRANSFORM_BACKEND=%s", BackendRelay)
	}

	return cfg, nil
}

// DevMode reports whether the service runs with development defaults:
// debug-level console logging and no TLS-terminated proxy in front.
func (c *Config) DevMode() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitEnvList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
