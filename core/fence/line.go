package fence

import (
	"strings"
	"unicode"
)

const (
	// Backtick is the usual fence marker character.
	Backtick byte = '`'
	// Tilde is the alternative fence marker character.
	Tilde byte = '~'

	// MinWidth is the minimum number of marker characters in a fence line.
	MinWidth = 3
)

// Line describes a fence line: the marker character, the length of the
// marker run and the optional token that immediately follows it.
type Line struct {
	Marker byte
	Width  int
	Tag    string
}

// ParseLine reports whether line, once trimmed of surrounding whitespace,
// consists solely of a run of at least [MinWidth] identical marker characters
// optionally followed by a single non-whitespace token.
//
// A backtick fence token may not itself contain a backtick, so inline code
// such as "```x```" is not a fence line.
func ParseLine(line string) (Line, bool) {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < MinWidth {
		return Line{}, false
	}

	marker := trimmed[0]
	if marker != Backtick && marker != Tilde {
		return Line{}, false
	}

	width := countLeading(trimmed, marker)
	if width < MinWidth {
		return Line{}, false
	}

	tag := trimmed[width:]
	if strings.IndexFunc(tag, unicode.IsSpace) >= 0 {
		return Line{}, false
	}
	if marker == Backtick && strings.IndexByte(tag, Backtick) >= 0 {
		return Line{}, false
	}

	return Line{Marker: marker, Width: width, Tag: tag}, true
}

// Closes reports whether l closes a fence opened by open. The closing run
// must use the same marker and be at least as long as the opening run; any
// trailing token on l is ignored.
func (l Line) Closes(open Line) bool {
	return l.Marker == open.Marker && l.Width >= open.Width
}

// String renders the fence line as it would appear in source.
func (l Line) String() string {
	width := l.Width
	if width < MinWidth {
		width = MinWidth
	}
	marker := l.Marker
	if marker == 0 {
		marker = Backtick
	}
	return strings.Repeat(string(marker), width) + l.Tag
}

// countLeading counts consecutive occurrences of char at the start of s.
func countLeading(s string, char byte) int {
	count := 0
	for count < len(s) && s[count] == char {
		count++
	}
	return count
}

// LongestRun returns the width of the longest fence line in content that
// uses marker, or zero when there is none.
func LongestRun(content string, marker byte) int {
	longest := 0
	for _, line := range strings.Split(content, "\n") {
		if l, ok := ParseLine(line); ok && l.Marker == marker && l.Width > longest {
			longest = l.Width
		}
	}
	return longest
}
