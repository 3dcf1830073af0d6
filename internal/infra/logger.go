package infra

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the service logger from the loaded configuration.
// Development runs get a console writer at debug level so the capture and
// transform flow can be followed locally; everything else emits JSON at info
// level. Every event carries the active transform backend.
func NewLogger(cfg *Config) zerolog.Logger {
	var out io.Writer = os.Stdout
	level := zerolog.InfoLevel
	if cfg.DevMode() {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		level = zerolog.DebugLevel
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("backend", cfg.TransformBackend).
		Logger()
}

// Logger aliases the zerolog.Logger so callers outside the infra package can
// depend on the logging contract without importing the third-party module
// directly. It keeps the freedom to replace the underlying logger in the
// future while presenting a stable surface area.
type Logger = zerolog.Logger
