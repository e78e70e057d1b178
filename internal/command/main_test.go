package command

import (
	"log/slog"
	"testing"

	"github.com/bornholm/aspect/internal/config"
)

func TestLogLevel(t *testing.T) {
	conf := &config.Config{
		Logger: config.Logger{Level: int(slog.LevelDebug)},
	}

	if got := logLevel("info", false, conf); got != slog.LevelDebug {
		t.Errorf("expected the configured level to apply when the flag is unset, got %v", got)
	}

	if got := logLevel("error", true, conf); got != slog.LevelError {
		t.Errorf("expected the flag to take precedence, got %v", got)
	}

	if got := logLevel("nonsense", true, conf); got != slog.LevelWarn {
		t.Errorf("expected an unknown flag value to fall back to warn, got %v", got)
	}
}
