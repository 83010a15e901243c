package markdown

import (
	"strings"
	"testing"
)

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapses blank runs",
			in:   "One\n\n\n\nTwo\n\n\nThree",
			want: "One\n\nTwo\n\nThree",
		},
		{
			name: "trims trailing spaces and tabs",
			in:   "Line one  \nLine two\t\t\nLine three",
			want: "Line one\nLine two\nLine three",
		},
		{
			name: "whitespace-only lines collapse",
			in:   "One\n   \n\t\n  \nTwo",
			want: "One\n\nTwo",
		},
		{
			name: "trims document edges",
			in:   "\n\n  Body  \n\n",
			want: "Body",
		},
		{
			name: "keeps a single blank line",
			in:   "A\n\nB",
			want: "A\n\nB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeWhitespace(tt.in); got != tt.want {
				t.Fatalf("NormalizeWhitespace() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeWhitespace_PreservesFencedBlocks(t *testing.T) {
	block := "```yaml\n---\ntitle: \"inside\"   \n---\n\n\n\n\n\nkey: value\t\n<Card>\n```"
	in := "Intro   \n\n\n\n" + block + "\n\n\n\nOutro"

	got := NormalizeWhitespace(in)
	want := "Intro\n\n" + block + "\n\nOutro"
	if got != want {
		t.Fatalf("NormalizeWhitespace() = %q, want %q", got, want)
	}
}

func TestNormalizeWhitespace_NeverLeavesTripleNewlinesOutsideCode(t *testing.T) {
	in := "A \n \n \n \nB\n\n\n```\nx\n\n\n\ny\n```\n\t\n\t\n\nC"
	got := NormalizeWhitespace(in)

	protected, _ := protectFences(got)
	if strings.Contains(protected, "\n\n\n") {
		t.Fatalf("found 3+ newlines outside code blocks: %q", got)
	}
	if !strings.Contains(got, "```\nx\n\n\n\ny\n```") {
		t.Fatalf("expected code block untouched: %q", got)
	}
}

func TestProtectFencesAvoidsPlaceholderCollision(t *testing.T) {
	in := "literal " + placeholderStem + "0@@ text\n```\ncode\n```"
	protected, fences := protectFences(in)
	if fences.Len() != 1 {
		t.Fatalf("expected one protected block, got %d", fences.Len())
	}
	if got := fences.restore(protected); got != in {
		t.Fatalf("restore() = %q, want %q", got, in)
	}
}

func TestNormalizeNewlines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lf untouched", input: "a\nb\n", want: "a\nb\n"},
		{name: "crlf", input: "a\r\nb\r\n", want: "a\nb\n"},
		{name: "lone cr", input: "a\rb\r", want: "a\nb\n"},
		{name: "mixed", input: "a\r\n\rb\n", want: "a\n\nb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeNewlines(tt.input); got != tt.want {
				t.Fatalf("NormalizeNewlines(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
