package logging

import (
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup configures the standard logger with JSON output to path, falling
// back to stderr when path is empty or cannot be opened.
func Setup(level, path string) io.Closer {
	log.SetFormatter(&log.JSONFormatter{})
	if lvl, err := log.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}

	if path == "" {
		log.SetOutput(os.Stderr)
		return nopCloser{}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		log.SetOutput(os.Stderr)
		log.WithError(err).Warn("Failed to create log directory, logging to stderr")
		return nopCloser{}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.WithError(err).Warn("Failed to open log file, logging to stderr")
		return nopCloser{}
	}
	log.SetOutput(file)
	return file
}
