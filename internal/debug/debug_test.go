package debug

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigure_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	Configure(&buf, "DEBUG")
	defer Configure(nil, "")

	Log("pruned %d subscribers", 2)

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "pruned 2 subscribers" {
		t.Errorf("msg = %v, want %q", entry["msg"], "pruned 2 subscribers")
	}
	if entry["level"] != "DEBUG" {
		t.Errorf("level = %v, want DEBUG", entry["level"])
	}
}

func TestConfigure_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Configure(&buf, "warn")
	defer Configure(nil, "")

	Log("hidden")
	Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestConfigure_NilDisables(t *testing.T) {
	Configure(nil, "")
	if Enabled() && os.Getenv(EnvVar) == "" {
		t.Error("Enabled() = true after Configure(nil)")
	}
	// Must not panic with no logger installed.
	Log("nothing")
}

func TestInit_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	if err := Init(path, "INFO"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Error("boom")
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), `"msg":"boom"`) {
		t.Errorf("log file = %q, want boom entry", data)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"Warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelDebug,
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			if got := ParseLevel(in); got != want {
				t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
			}
		})
	}
}
