package blocks

import (
	"strings"

	"github.com/leofalp/answerkit/core/fence"
)

type state int

const (
	inText state = iota
	inFence
)

// segmenter is the two-state line scanner behind [Segment]. The fence state
// carries across lines, so a segmenter must see lines strictly in order.
type segmenter struct {
	state    state
	open     fence.Line
	language string
	buf      strings.Builder
	blocks   []Block
}

// Segment splits raw into text and fenced blocks in source order. It never
// fails: a fence that is never closed yields a trailing fenced block holding
// everything after its opening line.
//
// A fence line is a line that, once trimmed, is a run of three or more
// identical backticks or tildes optionally followed by one language token.
// A fence closes on a line using the same marker with a run at least as long
// as the opening run; a closing line's own token is ignored.
//
// Example:
//
//	blocks.Segment("Intro\n```go\nx := 1\n```\nOutro")
//	// [Text("Intro"), Fenced("go", "x := 1\n"), Text("Outro")]
func Segment(raw string) []Block {
	s := &segmenter{blocks: []Block{}}
	for _, line := range strings.SplitAfter(raw, "\n") {
		if line == "" {
			continue
		}
		s.feed(line)
	}
	return s.finish()
}

// feed consumes one newline-terminated line (the last line of the input may
// lack the newline).
func (s *segmenter) feed(line string) {
	switch s.state {
	case inText:
		if open, ok := fence.ParseLine(line); ok {
			s.flushText()
			s.open = open
			s.language = open.Tag
			if s.language == "" {
				s.language = DefaultLanguage
			}
			s.state = inFence
			return
		}
	case inFence:
		if closing, ok := fence.ParseLine(line); ok && closing.Closes(s.open) {
			s.blocks = append(s.blocks, Fenced(s.language, s.buf.String()))
			s.buf.Reset()
			s.state = inText
			return
		}
	}
	s.buf.WriteString(line)
}

func (s *segmenter) flushText() {
	if text := strings.TrimSpace(s.buf.String()); text != "" {
		s.blocks = append(s.blocks, Text(text))
	}
	s.buf.Reset()
}

func (s *segmenter) finish() []Block {
	if s.state == inFence {
		s.blocks = append(s.blocks, Fenced(s.language, s.buf.String()))
		s.buf.Reset()
		s.state = inText
		return s.blocks
	}
	s.flushText()
	return s.blocks
}

// ToSource rebuilds Markdown from blocks. Text blocks are emitted as is;
// fenced blocks get an opening fence carrying their language (omitted for
// [DefaultLanguage]), their content and a bare closing fence. Blocks are
// joined with a single newline.
//
// The fence is lengthened when the content itself holds a backtick fence
// line, and a newline is added before the closing fence when the content
// does not end with one, so the output always segments back to the same
// blocks.
func ToSource(blocks []Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b.Kind != KindFenced {
			parts = append(parts, b.Content)
			continue
		}
		parts = append(parts, fencedSource(b))
	}
	return strings.Join(parts, "\n")
}

func fencedSource(b Block) string {
	width := fence.MinWidth
	if longest := fence.LongestRun(b.Content, fence.Backtick); longest >= width {
		width = longest + 1
	}
	delimiter := strings.Repeat(string(fence.Backtick), width)

	var sb strings.Builder
	sb.WriteString(delimiter)
	if b.Language != DefaultLanguage {
		sb.WriteString(b.Language)
	}
	sb.WriteByte('\n')
	sb.WriteString(b.Content)
	if b.Content != "" && !strings.HasSuffix(b.Content, "\n") {
		sb.WriteByte('\n')
	}
	sb.WriteString(delimiter)
	return sb.String()
}
