package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultMaxStringLength is the default maximum length for truncated strings
	DefaultMaxStringLength = 500

	// PreviewLength bounds the answer excerpts attached to log records.
	PreviewLength = 80
)

// TruncateString shortens s to at most maxLen bytes, appending a suffix that
// records the original total length so callers know data was omitted. The cut
// never splits a UTF-8 sequence. If maxLen is zero or negative,
// [DefaultMaxStringLength] is used instead.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxStringLength
	}
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return fmt.Sprintf("%s... (truncated, total: %d chars)", s[:cut], len(s))
}

// TruncateStringDefault truncates a string using DefaultMaxStringLength
func TruncateStringDefault(s string) string {
	return TruncateString(s, DefaultMaxStringLength)
}

// Preview returns a single-line excerpt of s for log output: line breaks and
// tabs are replaced with visible escapes and the result is truncated to
// [PreviewLength].
func Preview(s string) string {
	replacer := strings.NewReplacer("\r", `\r`, "\n", `\n`, "\t", `\t`)
	return TruncateString(replacer.Replace(s), PreviewLength)
}
