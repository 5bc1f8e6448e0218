package slogobs

import (
	"log/slog"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"TRACE", LevelTrace, false},
		{"debug", slog.LevelDebug, false},
		{"DeBuG", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"  ", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"WARNING", slog.LevelWarn, false},
		{"  error  ", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLogLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLogLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGetLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		answerkit string
		fallback  string
		want      slog.Level
	}{
		{"unset", "", "", slog.LevelInfo},
		{"prefixed", "debug", "", slog.LevelDebug},
		{"fallback", "", "error", slog.LevelError},
		{"prefixed wins", "warn", "error", slog.LevelWarn},
		{"unknown", "loud", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ANSWERKIT_LOG_LEVEL", tt.answerkit)
			t.Setenv("LOG_LEVEL", tt.fallback)

			if got := GetLogLevelFromEnv(); got != tt.want {
				t.Errorf("GetLogLevelFromEnv() = %v, want %v", got, tt.want)
			}
		})
	}
}
