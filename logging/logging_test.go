package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/collecta/config"
)

func TestNewEmptyPathIsNop(t *testing.T) {
	log, err := New(config.LoggingConfig{Level: "debug"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log.Core().Enabled(-1) {
		t.Error("Nop logger should not enable any level")
	}
}

func TestNewJSONWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collecta.log")
	log, err := New(config.LoggingConfig{Level: "info", Format: "json", Path: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debug("hidden")
	log.Info("level loaded")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1 (debug filtered): %q", len(lines), data)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	if entry["msg"] != "level loaded" {
		t.Errorf("msg = %v, want %q", entry["msg"], "level loaded")
	}
}

func TestNewConsoleUnknownLevelDefaultsToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collecta.log")
	log, err := New(config.LoggingConfig{Level: "loud", Format: "console", Path: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debug("hidden")
	log.Warn("music file unavailable")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Error("Debug entry should be filtered at the default info level")
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "music file unavailable") {
		t.Errorf("Missing warn entry in %q", out)
	}
}
