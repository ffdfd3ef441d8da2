package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/snake/log"
)

const (
	logFileName = "snake.log"
	maxLogSize  = 10 * 1024 * 1024
)

// logDir is relative to the working directory
var logDir = "logs"

// setupLogging configures the base logger for terminal play
// Without debug every entry is discarded so nothing corrupts the screen
func setupLogging(debug bool, level string) (*os.File, zerolog.Logger) {
	if !debug {
		return nil, log.Configure(log.Config{Level: level, Output: io.Discard})
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, log.Configure(log.Config{Level: level, Output: io.Discard})
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("snake-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, log.Configure(log.Config{Level: level, Output: io.Discard})
	}

	return f, log.Configure(log.Config{Level: level, Output: f})
}

// setupServiceLogging configures the base logger for headless commands
func setupServiceLogging(level string) zerolog.Logger {
	return log.Configure(log.Config{Level: level, Output: os.Stderr})
}
