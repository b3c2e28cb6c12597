package infra

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLoggerProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("production", &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("plan_id", "42").Msg("plan saved")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a single JSON line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "plan saved" {
		t.Fatalf("unexpected message: %#v", entry["message"])
	}
	if entry["service"] != "nutriflow" {
		t.Fatalf("missing service field: %#v", entry)
	}
	if logger.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("expected info level, got %s", logger.GetLevel())
	}
}

func TestNewLoggerDevelopmentIsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("development", &buf)
	if logger.GetLevel() != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %s", logger.GetLevel())
	}
	logger.Debug().Msg("visible")
	if buf.Len() == 0 {
		t.Fatal("expected debug output in development")
	}
}
