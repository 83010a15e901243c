package markdown

import (
	"regexp"
	"strings"
)

var (
	trailingSpacePattern = regexp.MustCompile(`(?m)[ \t]+$`)
	blankRunPattern      = regexp.MustCompile(`\n{3,}`)

	newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// NormalizeNewlines converts CRLF and lone CR line endings to LF. Every
// later pass matches on "\n" only.
func NormalizeNewlines(content string) string {
	if !strings.Contains(content, "\r") {
		return content
	}
	return newlineReplacer.Replace(content)
}

// NormalizeWhitespace trims trailing spaces and tabs from every line,
// collapses runs of three or more newlines into one blank line, and trims
// the whole text. Fenced code blocks are excluded from both line rules and
// spliced back verbatim.
//
// Trailing whitespace goes first: a line holding only spaces would otherwise
// survive the collapse and leave three newlines behind once emptied.
func NormalizeWhitespace(content string) string {
	protected, fences := protectFences(content)
	protected = trailingSpacePattern.ReplaceAllLiteralString(protected, "")
	protected = blankRunPattern.ReplaceAllLiteralString(protected, "\n\n")
	return strings.TrimSpace(fences.restore(protected))
}
