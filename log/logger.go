// Package log owns the process-wide zerolog base logger
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the base logger
type Config struct {
	Level   string    // optional level name ("debug", "info", ...); defaults to info
	Output  io.Writer // optional writer, defaults to os.Stderr
	Service string    // attached to every entry, defaults to "snake"
}

// Canonical field names
const (
	FieldComponent = "component"
	FieldService   = "service"
	FieldSession   = "session"
)

var (
	mu   sync.RWMutex
	base = zerolog.Nop()
)

// New builds a logger from cfg without touching the process-wide base
func New(cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	}

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}

	service := cfg.Service
	if service == "" {
		service = "snake"
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str(FieldService, service).
		Logger()
}

// Configure replaces the base logger; until called the base discards everything
func Configure(cfg Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	l := New(cfg)
	mu.Lock()
	base = l
	mu.Unlock()
	return l
}

// Base returns the configured base logger
func Base() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// WithComponent returns a child logger annotated with the component name
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str(FieldComponent, component).Logger()
}

// Derive attaches arbitrary fields to a child logger using build
func Derive(build func(*zerolog.Context)) zerolog.Logger {
	ctx := Base().With()
	if build != nil {
		build(&ctx)
	}
	return ctx.Logger()
}
