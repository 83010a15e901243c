package markdown

import "regexp"

// Component tags are JSX elements whose name starts with an upper-case
// letter. The passes run in this order; each removes tags independently so
// nesting never needs balancing.
var componentPasses = []*regexp.Regexp{
	// <Card title="x" icon="y" />
	regexp.MustCompile(`<[A-Z][a-zA-Z]*\s+[^>]*/>`),
	// <Card> or <Card title="x">
	regexp.MustCompile(`<[A-Z][a-zA-Z]*(?:\s+[^>]*)?>`),
	// </Card>
	regexp.MustCompile(`</[A-Z][a-zA-Z]*>`),
	// leftovers such as <Divider/>
	regexp.MustCompile(`<[A-Z][a-zA-Z]*\s*/>`),
}

// StripComponents removes component tags and keeps the text between them.
// Lower-case tags are standard markup and stay. Fenced code blocks are left
// byte-for-byte intact.
//
// The passes repeat until nothing changes, so the result is a fixed point and
// stripping it again is a no-op even when a removal joins the halves of a new
// tag (as in "<<Note>Tip>").
func StripComponents(content string) string {
	protected, fences := protectFences(content)
	for {
		next := stripComponentPass(protected)
		if next == protected {
			break
		}
		protected = next
	}
	return fences.restore(protected)
}

func stripComponentPass(text string) string {
	for _, pattern := range componentPasses {
		text = pattern.ReplaceAllLiteralString(text, "")
	}
	return text
}
