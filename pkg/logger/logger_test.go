package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level   string
		enabled slog.Level
		muted   slog.Level
	}{
		{"debug", slog.LevelDebug, slog.LevelDebug - 1},
		{"info", slog.LevelInfo, slog.LevelDebug},
		{"WARN", slog.LevelWarn, slog.LevelInfo},
		{"error", slog.LevelError, slog.LevelWarn},
		{"bogus", slog.LevelInfo, slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log := New(tt.level)
			ctx := context.Background()

			if !log.Enabled(ctx, tt.enabled) {
				t.Errorf("expected level %v to be enabled", tt.enabled)
			}
			if log.Enabled(ctx, tt.muted) {
				t.Errorf("expected level %v to be disabled", tt.muted)
			}
		})
	}
}
