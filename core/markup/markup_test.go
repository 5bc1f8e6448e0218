package markup

import (
	"strings"
	"testing"

	"github.com/leofalp/answerkit/core/blocks"
)

func TestLooksLikeHTML(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"<p>Hello</p>", true},
		{"  \n<PRE><code>x</code></PRE>", true},
		{"<div class=\"answer\">", true},
		{"<h2>Title</h2>", true},
		{"<!DOCTYPE html><html></html>", true},
		{"<br/>", false},
		{"<T> void f()", false},
		{"<", false},
		{"x < y", false},
		{"```java\nx();\n```", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := LooksLikeHTML(tt.input); got != tt.want {
			t.Errorf("LooksLikeHTML(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestToMarkdown(t *testing.T) {
	html := `<p>Use this:</p><pre><code class="language-java">int x = 10;
</code></pre><p>Done.</p>`

	got, err := ToMarkdown(html)
	if err != nil {
		t.Fatalf("ToMarkdown() error = %v", err)
	}
	for _, want := range []string{"Use this:", "```java", "int x = 10;", "Done."} {
		if !strings.Contains(got, want) {
			t.Errorf("ToMarkdown() = %q, missing %q", got, want)
		}
	}
}

func TestToMarkdown_Segments(t *testing.T) {
	html := `<p>First.</p><pre><code class="language-java">int x = 10;
</code></pre>`

	markdown, err := ToMarkdown(html)
	if err != nil {
		t.Fatalf("ToMarkdown() error = %v", err)
	}

	segmented := blocks.Segment(markdown)
	var fenced []blocks.Block
	for _, b := range segmented {
		if b.IsFenced() {
			fenced = append(fenced, b)
		}
	}
	if len(fenced) != 1 {
		t.Fatalf("Segment(ToMarkdown()) = %v, want one fenced block", segmented)
	}
	if fenced[0].Language != "java" || fenced[0].Content != "int x = 10;\n" {
		t.Errorf("fenced block = %+v, want java block with %q", fenced[0], "int x = 10;\n")
	}
}
