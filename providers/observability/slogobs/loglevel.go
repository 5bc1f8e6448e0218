package slogobs

import (
	"fmt"
	"log/slog"
	"strings"
)

// LevelTrace is more verbose than slog.LevelDebug and is filtered out unless
// explicitly enabled.
const LevelTrace = slog.LevelDebug - 4

// ParseLogLevel parses a level name: TRACE, DEBUG, INFO, WARN, WARNING or
// ERROR, case-insensitively. An empty string is INFO. Unknown names return
// INFO and an error.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return LevelTrace, nil
	case "DEBUG":
		return slog.LevelDebug, nil
	case "", "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// GetLogLevelFromEnv returns the level named by ANSWERKIT_LOG_LEVEL or, if
// unset, LOG_LEVEL. Unset or unknown values yield INFO.
func GetLogLevelFromEnv() slog.Level {
	level, _ := ParseLogLevel(envFirst("ANSWERKIT_LOG_LEVEL", "LOG_LEVEL"))
	return level
}

// levelString maps a slog.Level onto the five names used in output.
func levelString(level slog.Level) string {
	switch {
	case level < slog.LevelDebug:
		return "TRACE"
	case level < slog.LevelInfo:
		return "DEBUG"
	case level < slog.LevelWarn:
		return "INFO"
	case level < slog.LevelError:
		return "WARN"
	default:
		return "ERROR"
	}
}
