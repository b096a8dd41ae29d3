package logging

import (
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global logger. level is one of debug, info, warn or
// error (default: info). Output goes to stderr because stdout carries MCP
// frames and CLI results.
func Init(level string) {
	zerolog.SetGlobalLevel(ParseLevel(level))
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// ParseLevel maps a level name to a zerolog level, falling back to info.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New returns a JSON logger writing to w, for components that take an
// explicit logger instead of the global one.
func New(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// Startup emits one event summarising how a binary was configured. Only
// non-sensitive values belong in fields.
func Startup(logger zerolog.Logger, name, version string, fields map[string]string) {
	d := zerolog.Dict()
	for k, v := range fields {
		d = d.Str(k, v)
	}

	logger.Info().
		Str("name", name).
		Str("version", version).
		Str("goVersion", runtime.Version()).
		Dict("config", d).
		Msg("startup complete")
}
