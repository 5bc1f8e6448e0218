package fence

import "testing"

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []Option
		want  string
	}{
		{
			name:  "default language fence",
			input: "```java\nint x = 10;\n```",
			want:  "int x = 10;",
		},
		{
			name:  "configured language fence",
			input: "```tag\nfoo\n```",
			opts:  []Option{WithLanguages("tag")},
			want:  "foo",
		},
		{
			name:  "bare fence",
			input: "```\nfoo\n```",
			want:  "foo",
		},
		{
			name:  "surrounding whitespace is trimmed",
			input: "  \n```java\n  foo();\n```\n\n",
			want:  "foo();",
		},
		{
			name:  "no fence returns trimmed input",
			input: "  plain answer \n",
			want:  "plain answer",
		},
		{
			name:  "missing closing fence passes through",
			input: "```java\nfoo();",
			want:  "```java\nfoo();",
		},
		{
			name:  "missing opening fence passes through",
			input: "foo();\n```",
			want:  "foo();\n```",
		},
		{
			name:  "fence not at the start passes through",
			input: "Here you go:\n```java\nfoo();\n```",
			want:  "Here you go:\n```java\nfoo();\n```",
		},
		{
			name:  "longer tag sharing the language prefix is not stripped",
			input: "```javascript\nfoo();\n```",
			want:  "```javascript\nfoo();\n```",
		},
		{
			name:  "unknown language is not stripped",
			input: "```python\nfoo()\n```",
			want:  "```python\nfoo()\n```",
		},
		{
			name:  "only the outer pair is removed",
			input: "```\n```java\nfoo();\n```\n```",
			want:  "```java\nfoo();\n```",
		},
		{
			name:  "lone marker is left alone",
			input: "```",
			want:  "```",
		},
		{
			name:  "empty fenced body",
			input: "```java\n```",
			want:  "",
		},
		{
			name:  "doc comment is kept without the option",
			input: "```java\n/** Adds numbers. */\n```",
			want:  "/** Adds numbers. */",
		},
		{
			name:  "doc comment is unwrapped with the option",
			input: "```java\n/**\n * Adds numbers.\n */\n```",
			opts:  []Option{WithDocComment()},
			want:  "* Adds numbers.",
		},
		{
			name:  "unfenced doc comment is unwrapped with the option",
			input: "/** Returns the sum. */",
			opts:  []Option{WithDocComment()},
			want:  "Returns the sum.",
		},
		{
			name:  "overlapping doc comment markers are left alone",
			input: "/**/",
			opts:  []Option{WithDocComment()},
			want:  "/**/",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.input, tt.opts...); got != tt.want {
				t.Errorf("Strip() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripDocComment(t *testing.T) {
	got := StripDocComment("```java\n/** Returns the sum. */\n```")
	if got != "Returns the sum." {
		t.Errorf("StripDocComment() = %q, want %q", got, "Returns the sum.")
	}

	got = StripDocComment("```kotlin\n/** KDoc */\n```", WithLanguages("kotlin"))
	if got != "KDoc" {
		t.Errorf("StripDocComment() with language = %q, want %q", got, "KDoc")
	}
}

func TestStrip_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"```java\nfoo();\n```",
		"```\nfoo\n```",
		"```python\nfoo()\n```",
		"Intro\n```java\nfoo();\n```\nOutro",
		"```java\nfoo();",
		"/** doc */",
		"```java\n/** doc */\n```",
		"   ```\n\n  bar\n\n```   ",
	}

	for _, input := range inputs {
		for _, opts := range [][]Option{nil, {WithDocComment()}} {
			once := Strip(input, opts...)
			twice := Strip(once, opts...)
			if once != twice {
				t.Errorf("Strip(Strip(%q)) = %q, want %q", input, twice, once)
			}
		}
	}
}
