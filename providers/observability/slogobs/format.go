package slogobs

import (
	"fmt"
	"os"
	"strings"
)

// Format represents the output format for logs.
type Format string

const (
	// FormatCompact is a single-line format with JSON attributes.
	// Example: 2026-10-19 10:40:35 DEBUG Segmented answer → {"blocks.count":3}
	FormatCompact Format = "compact"

	// FormatJSON writes one JSON object per record.
	// Example: {"time":"2026-10-19T10:40:35","level":"DEBUG","msg":"Segmented answer","blocks.count":3}
	FormatJSON Format = "json"
)

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "compact":
		return FormatCompact, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatCompact, fmt.Errorf("unknown log format %q", s)
	}
}

// GetFormatFromEnv returns the format named by ANSWERKIT_LOG_FORMAT or, if
// unset, LOG_FORMAT. Unset or unknown values yield [FormatCompact].
func GetFormatFromEnv() Format {
	format, _ := ParseFormat(envFirst("ANSWERKIT_LOG_FORMAT", "LOG_FORMAT"))
	return format
}

// String returns the string representation of the Format.
func (f Format) String() string {
	return string(f)
}

func envFirst(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}
