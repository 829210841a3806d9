package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, FormatText)
	logger.Debug("hidden")
	logger.Info("hashed", "file", "a.txt", "bytes", 3)

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("debug record emitted at info level: %q", got)
	}
	if want := "level=INFO msg=hashed file=a.txt bytes=3\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelDebug, FormatJSON).Debug("hashed", "bytes", 3)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("json.Unmarshal() error = %v (output %q)", err, buf.String())
	}
	if _, ok := rec["time"]; ok {
		t.Error("record contains a timestamp")
	}
	if got, want := rec["msg"], "hashed"; got != want {
		t.Errorf("msg = %v, want %v", got, want)
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		if err != nil {
			t.Errorf("ParseLevel(%q) error = %v", in, err)
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) error = nil")
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"text":  FormatText,
		"":      FormatText,
		"JSON":  FormatJSON,
		"plain": FormatText,
	} {
		got, err := ParseFormat(in)
		if err != nil {
			t.Errorf("ParseFormat(%q) error = %v", in, err)
		}
		if got != want {
			t.Errorf("ParseFormat(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) error = nil")
	}
}
