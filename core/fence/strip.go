package fence

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// Marker is the bare fence recognised by [Strip].
	Marker = "```"

	// DefaultLanguage is the language tag [Strip] accepts on an opening fence
	// when no [WithLanguages] option is given. "```java" is the 7-character
	// opening marker most code-generation prompts get back.
	DefaultLanguage = "java"

	docCommentOpen  = "/**"
	docCommentClose = "*/"
)

// Option is a functional option for [Strip].
type Option func(*config)

type config struct {
	languages  []string
	docComment bool
}

// WithLanguages replaces the list of language tags accepted on an opening
// fence. Tags are tried in order; empty tags are ignored.
func WithLanguages(languages ...string) Option {
	return func(c *config) {
		c.languages = c.languages[:0]
		for _, lang := range languages {
			if lang != "" {
				c.languages = append(c.languages, lang)
			}
		}
	}
}

// WithDocComment enables the trailing documentation-comment unwrap: after
// the fence pass, a result wrapped in "/**" ... "*/" loses the wrapper.
func WithDocComment() Option {
	return func(c *config) {
		c.docComment = true
	}
}

func applyOptions(opts ...Option) *config {
	cfg := &config{languages: []string{DefaultLanguage}}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Strip removes at most one pair of fence markers wrapping the whole of
// input and returns the trimmed remainder.
//
// An opening "```" followed by one of the accepted language tags is tried
// first, then a bare "```". Both the opening and the closing marker must sit
// at the very start and end of the trimmed input; anything else is returned
// trimmed but otherwise unchanged.
//
// Example:
//
//	fence.Strip("```java\nint x;\n```")  // "int x;"
//	fence.Strip("```\nint x;\n```")      // "int x;"
//	fence.Strip("text ```java\nx\n```") // unchanged
func Strip(input string, opts ...Option) string {
	cfg := applyOptions(opts...)

	result := strings.TrimSpace(input)
	result = unwrapFence(result, cfg.languages)
	if cfg.docComment {
		result = unwrapDocComment(result)
	}
	return result
}

// StripDocComment is [Strip] with [WithDocComment] enabled, for call sites
// that expect documentation-comment output.
func StripDocComment(input string, opts ...Option) string {
	return Strip(input, append(opts, WithDocComment())...)
}

func unwrapFence(s string, languages []string) string {
	if !strings.HasSuffix(s, Marker) {
		return s
	}

	for _, lang := range languages {
		open := Marker + lang
		if len(s) >= len(open)+len(Marker) && hasTokenPrefix(s, open) {
			return strings.TrimSpace(s[len(open) : len(s)-len(Marker)])
		}
	}

	if len(s) >= 2*len(Marker) && hasTokenPrefix(s, Marker) {
		return strings.TrimSpace(s[len(Marker) : len(s)-len(Marker)])
	}

	return s
}

func unwrapDocComment(s string) string {
	if len(s) < len(docCommentOpen)+len(docCommentClose) {
		return s
	}
	if strings.HasPrefix(s, docCommentOpen) && strings.HasSuffix(s, docCommentClose) {
		return strings.TrimSpace(s[len(docCommentOpen) : len(s)-len(docCommentClose)])
	}
	return s
}

// hasTokenPrefix reports whether s starts with prefix and prefix ends on a
// token boundary, so "```javascript" does not match "```java".
func hasTokenPrefix(s, prefix string) bool {
	if !strings.HasPrefix(s, prefix) {
		return false
	}
	if len(s) == len(prefix) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(s[len(prefix):])
	return unicode.IsSpace(next)
}
