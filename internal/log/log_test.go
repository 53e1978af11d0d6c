package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	original := Logger()
	ReplaceLogger(slog.New(newHandler(buf)))
	t.Cleanup(func() {
		ReplaceLogger(original)
		levelVar.Set(slog.LevelInfo)
	})
	return buf
}

func TestInfoProducesLogfmtWithTimestamp(t *testing.T) {
	buf := captureLogs(t)

	Info(context.Background(), "hello", "user", "test")

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatalf("expected log output, got empty string")
	}
	for _, field := range []string{"ts=", "level=info", "msg=hello", "user=test"} {
		if !strings.Contains(line, field) {
			t.Fatalf("expected %q in log line, got %q", field, line)
		}
	}
}

func TestWithAttrsAddsContextFields(t *testing.T) {
	buf := captureLogs(t)

	ctx := WithAttrs(context.Background(), "path", "/")
	ctx = WithAttrs(ctx, "theme", "ocean")
	Info(ctx, "rendered")

	line := buf.String()
	if !strings.Contains(line, "path=/") || !strings.Contains(line, "theme=ocean") {
		t.Fatalf("expected context attributes in log line, got %q", line)
	}
}

func TestSetLevelFiltersDebug(t *testing.T) {
	buf := captureLogs(t)

	if err := SetLevel("error"); err != nil {
		t.Fatalf("SetLevel() error = %v", err)
	}
	Debug(context.Background(), "hidden")
	Info(context.Background(), "hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below error level, got %q", buf.String())
	}

	if err := SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel() error = %v", err)
	}
	Debug(context.Background(), "visible")
	if !strings.Contains(buf.String(), "level=debug") {
		t.Fatalf("expected debug line, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{" debug ", slog.LevelDebug, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.value)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseLevel(%q) error = %v, wantErr %t", tt.value, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
