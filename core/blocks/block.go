package blocks

import "fmt"

// DefaultLanguage is the language recorded for a fence opened without a tag.
const DefaultLanguage = "code"

// Kind distinguishes plain text from fenced code.
type Kind int

const (
	KindText Kind = iota
	KindFenced
)

// String returns the kind name used in logs and CLI output.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindFenced:
		return "fenced"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name so JSON output stays readable.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name produced by [Kind.MarshalText].
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "text":
		*k = KindText
	case "fenced":
		*k = KindFenced
	default:
		return fmt.Errorf("unknown block kind %q", text)
	}
	return nil
}

// Block is one segment of an answer. Text blocks hold trimmed prose; fenced
// blocks hold the verbatim text between their delimiter lines and the
// language tag of the opening fence. Blocks are values: compare them with ==.
type Block struct {
	Kind     Kind   `json:"kind"`
	Language string `json:"language,omitempty"`
	Content  string `json:"content"`
}

// Text returns a text block.
func Text(content string) Block {
	return Block{Kind: KindText, Content: content}
}

// Fenced returns a fenced block. An empty language is recorded as
// [DefaultLanguage].
func Fenced(language, content string) Block {
	if language == "" {
		language = DefaultLanguage
	}
	return Block{Kind: KindFenced, Language: language, Content: content}
}

// IsText reports whether b is a text block.
func (b Block) IsText() bool { return b.Kind == KindText }

// IsFenced reports whether b is a fenced block.
func (b Block) IsFenced() bool { return b.Kind == KindFenced }
