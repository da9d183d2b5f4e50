package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logFile *os.File

// setupLogging points the global zerolog logger at path. The terminal
// belongs to the UI, so logs never go to stdout or stderr; an empty path
// disables logging.
func setupLogging(path, level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)

	closeLogging()
	if path == "" {
		log.Logger = zerolog.Nop()
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return nil
}

// closeLogging closes the log file, if one is open.
func closeLogging() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}
