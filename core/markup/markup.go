package markup

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// blockTags are the elements an HTML answer is expected to start with.
var blockTags = map[string]bool{
	"html": true, "body": true, "div": true, "section": true, "article": true,
	"p": true, "pre": true, "code": true, "blockquote": true,
	"ul": true, "ol": true, "table": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// LooksLikeHTML reports whether s, after leading whitespace, opens with a
// known block-level tag or an HTML doctype.
func LooksLikeHTML(s string) bool {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "<") {
		return false
	}
	if len(s) >= 9 && strings.EqualFold(s[:9], "<!doctype") {
		return true
	}

	name := s[1:]
	end := strings.IndexFunc(name, func(r rune) bool {
		return r == '>' || r == '/' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if end <= 0 {
		return false
	}
	return blockTags[strings.ToLower(name[:end])]
}

// ToMarkdown converts an HTML answer to Markdown. <pre><code> elements become
// fenced code blocks, keeping a "language-xxx" class as the fence tag.
func ToMarkdown(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML answer to markdown: %w", err)
	}
	return markdown, nil
}
