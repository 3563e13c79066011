package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"Warn", LevelWarn, false},
		{"error", LevelError, false},
		{"", LevelInfo, false},
		{"verbose", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetOutputFiltersLevel(t *testing.T) {
	defer Close()

	var buf bytes.Buffer
	SetOutput(&buf, Config{Level: LevelWarn})

	GetLogger().Info("hidden")
	WithTable("people").Warn("shown", "rows", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("INFO message logged at WARN level: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "table=people") {
		t.Errorf("expected WARN message with table attribute, got %s", out)
	}
}

func TestInitFileJSON(t *testing.T) {
	defer Close()

	path := filepath.Join(t.TempDir(), "logs", "cursormock.log")
	if err := Init(Config{Level: LevelDebug, OutputPath: path, Format: "json"}); err != nil {
		t.Fatal(err)
	}
	WithComponent("loader").Debug("loaded")
	if err := Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"component":"loader"`) {
		t.Errorf("expected JSON log line, got %s", data)
	}
}

func TestGetLoggerDefault(t *testing.T) {
	Close()
	if GetLogger() == nil {
		t.Fatal("GetLogger() returned nil before Init")
	}
}
