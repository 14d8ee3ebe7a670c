package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFanoutToTerminalAndFile(t *testing.T) {
	var term bytes.Buffer
	path := filepath.Join(t.TempDir(), "life.log")

	logger, err := New(Options{Level: "debug", Terminal: &term, File: path})
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("generation", "n", 3)
	if err := logger.Close(); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(term.String(), "msg=generation") || !strings.Contains(term.String(), "n=3") {
		t.Fatalf("terminal output missing record: %q", term.String())
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(content), &record); err != nil {
		t.Fatalf("file output is not JSON: %v", err)
	}
	if record["msg"] != "generation" {
		t.Fatalf("unexpected record %v", record)
	}
}

func TestLevelFilters(t *testing.T) {
	var term bytes.Buffer
	logger, err := New(Options{Level: "warn", Terminal: &term})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(term.String(), "hidden") || !strings.Contains(term.String(), "shown") {
		t.Fatalf("level filter not applied: %q", term.String())
	}

	logger.Level().Set(slog.LevelInfo)
	logger.Info("now visible")
	if !strings.Contains(term.String(), "now visible") {
		t.Fatal("runtime level change not honored")
	}
}

func TestUnknownLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}
