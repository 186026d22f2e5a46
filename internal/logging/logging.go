package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// DefaultDir returns ~/.embudo/logs
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".embudo", "logs"), nil
}

// Init points slog and the standard log package at dir/embudo.log.
// An empty dir means DefaultDir. The returned closer closes the file.
func Init(dir string) (io.Closer, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(filepath.Join(dir, "embudo.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	// Text handler keeps the file readable with tail
	Logger = slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(Logger)

	// golang-migrate and other libraries log through the standard logger
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}
