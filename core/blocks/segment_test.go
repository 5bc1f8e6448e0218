package blocks

import (
	"reflect"
	"strings"
	"testing"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Block
	}{
		{
			name:  "text fence text",
			input: "First paragraph.\n```tag\n    int x = 10;\n```\nSecond paragraph.",
			want: []Block{
				Text("First paragraph."),
				Fenced("tag", "    int x = 10;\n"),
				Text("Second paragraph."),
			},
		},
		{
			name:  "four backtick fence",
			input: "````tag\n// body\n````",
			want:  []Block{Fenced("tag", "// body\n")},
		},
		{
			name:  "bare fence defaults to code",
			input: "```\necho hi\n```",
			want:  []Block{Fenced(DefaultLanguage, "echo hi\n")},
		},
		{
			name:  "unterminated fence",
			input: "Text before.\n```tag\nbody",
			want:  []Block{Text("Text before."), Fenced("tag", "body")},
		},
		{
			name:  "unterminated fence keeps trailing newline",
			input: "```bash\nls\n",
			want:  []Block{Fenced("bash", "ls\n")},
		},
		{
			name:  "plain text only",
			input: "  Just an answer.\n\nWith two paragraphs.  \n",
			want:  []Block{Text("Just an answer.\n\nWith two paragraphs.")},
		},
		{
			name:  "empty input",
			input: "",
			want:  []Block{},
		},
		{
			name:  "whitespace only",
			input: " \n\t\n",
			want:  []Block{},
		},
		{
			name:  "blank lines inside fence are preserved",
			input: "```java\nint a;\n\n\nint b;\n```",
			want:  []Block{Fenced("java", "int a;\n\n\nint b;\n")},
		},
		{
			name:  "empty fence",
			input: "```html\n```",
			want:  []Block{Fenced("html", "")},
		},
		{
			name:  "adjacent fences produce no empty text block",
			input: "```a\n1\n```\n\n```b\n2\n```",
			want:  []Block{Fenced("a", "1\n"), Fenced("b", "2\n")},
		},
		{
			name:  "shorter run does not close a longer fence",
			input: "````md\n```go\nx\n```\n````",
			want:  []Block{Fenced("md", "```go\nx\n```\n")},
		},
		{
			name:  "longer run closes a shorter fence",
			input: "```go\nx\n`````\nafter",
			want:  []Block{Fenced("go", "x\n"), Text("after")},
		},
		{
			name:  "closing line token is ignored",
			input: "```go\nx\n```java\ny",
			want:  []Block{Fenced("go", "x\n"), Text("y")},
		},
		{
			name:  "tilde fence is not closed by backticks",
			input: "~~~\na\n```\nb\n~~~",
			want:  []Block{Fenced(DefaultLanguage, "a\n```\nb\n")},
		},
		{
			name:  "indented fence lines",
			input: "Run:\n  ```bash\n  make\n  ```\nDone.",
			want:  []Block{Text("Run:"), Fenced("bash", "  make\n"), Text("Done.")},
		},
		{
			name:  "inline triple backticks stay in text",
			input: "Use ```x``` inline.\nNext line.",
			want:  []Block{Text("Use ```x``` inline.\nNext line.")},
		},
		{
			name:  "crlf line endings",
			input: "Intro\r\n```go\r\nx\r\n```\r\nOutro",
			want:  []Block{Text("Intro"), Fenced("go", "x\r\n"), Text("Outro")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segment() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSegment_NoEmptyTextBlocks(t *testing.T) {
	inputs := []string{
		"\n\n```go\nx\n```\n\n\n```go\ny\n```\n\n",
		"```\n```\n```\n```",
		"   \n```sh\n\n```\n   ",
	}
	for _, input := range inputs {
		for i, b := range Segment(input) {
			if b.IsText() && strings.TrimSpace(b.Content) == "" {
				t.Errorf("Segment(%q)[%d] is an empty text block", input, i)
			}
		}
	}
}

func TestToSource(t *testing.T) {
	tests := []struct {
		name   string
		blocks []Block
		want   string
	}{
		{
			name: "text and fenced",
			blocks: []Block{
				Text("First paragraph."),
				Fenced("tag", "    int x = 10;\n"),
				Text("Second paragraph."),
			},
			want: "First paragraph.\n```tag\n    int x = 10;\n```\nSecond paragraph.",
		},
		{
			name:   "default language is omitted",
			blocks: []Block{Fenced(DefaultLanguage, "x\n")},
			want:   "```\nx\n```",
		},
		{
			name:   "missing trailing newline is added before the closing fence",
			blocks: []Block{Fenced("go", "x")},
			want:   "```go\nx\n```",
		},
		{
			name:   "empty fenced block",
			blocks: []Block{Fenced("go", "")},
			want:   "```go\n```",
		},
		{
			name:   "fence is lengthened around nested fences",
			blocks: []Block{Fenced("md", "```go\nx\n```\n")},
			want:   "````md\n```go\nx\n```\n````",
		},
		{
			name:   "no blocks",
			blocks: nil,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToSource(tt.blocks); got != tt.want {
				t.Errorf("ToSource() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	exact := []string{
		"First paragraph.\n```tag\n    int x = 10;\n```\nSecond paragraph.",
		"```\nplain fence\n```",
		"Only text.",
		"Intro\n```java\nclass A {}\n\n// tail\n```\nMiddle\n```bash\nmvn test\n```\nEnd",
	}
	for _, input := range exact {
		if got := ToSource(Segment(input)); got != input {
			t.Errorf("ToSource(Segment(%q)) = %q", input, got)
		}
	}

	// Blank-line runs and surrounding whitespace are normalised away, so
	// these only round-trip at the block level.
	equivalent := []string{
		"\n\nIntro\n\n\n```go\nx\n```\n\n\nOutro\n\n",
		"````tag\n// body\n````",
		"~~~python\nprint(1)\n~~~",
		"````md\n```go\nx\n```\n````",
	}
	for _, input := range append(exact, equivalent...) {
		first := Segment(input)
		second := Segment(ToSource(first))
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Segment(ToSource(Segment(%q))) = %#v, want %#v", input, second, first)
		}
	}
}

func TestKind_Text(t *testing.T) {
	for _, k := range []Kind{KindText, KindFenced} {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText() error = %v", err)
		}
		var got Kind
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if got != k {
			t.Errorf("UnmarshalText(%q) = %v, want %v", text, got, k)
		}
	}

	var k Kind
	if err := k.UnmarshalText([]byte("table")); err == nil {
		t.Error("UnmarshalText() expected error for unknown kind")
	}
	if got := Kind(42).String(); got != "unknown" {
		t.Errorf("String() = %q, want %q", got, "unknown")
	}
}
