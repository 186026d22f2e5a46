package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_WritesToLogFile(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(previous)
		log.SetOutput(os.Stderr)
	})

	dir := filepath.Join(t.TempDir(), "logs")
	closer, err := Init(dir)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	slog.Info("board loaded", "vacancy_id", 7)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "embudo.log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "board loaded") || !strings.Contains(string(data), "vacancy_id=7") {
		t.Errorf("Expected log line in file, got %q", string(data))
	}
}
