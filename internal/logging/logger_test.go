package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLoggerNeverNil(t *testing.T) {
	if NewLogger(Config{}) == nil {
		t.Fatalf("expected logger")
	}
	if NewLogger(Config{Format: "json", Level: "debug", Service: "roster-service", Version: "dev"}) == nil {
		t.Fatalf("expected json logger")
	}
}

func TestContextCarrier(t *testing.T) {
	fallback := slog.Default()
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatalf("expected fallback logger")
	}

	logger := NewLogger(Config{})
	ctx := WithLogger(context.Background(), logger)
	if got := FromContext(ctx, fallback); got != logger {
		t.Fatalf("expected context logger")
	}
}

func TestHelpersNilSafe(t *testing.T) {
	Info(nil, "ignored")
	Warn(nil, "ignored")
	Error(nil, "ignored", nil)
	Error(slog.Default(), "with error", context.Canceled)
}
