package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-supportdocs/pkg/interfaces"
)

var statsEngine = goldmark.New()

// ComputeStats walks the goldmark AST of a cleaned body and counts headings,
// fenced code blocks, and prose words. Words inside code blocks are not
// counted.
func ComputeStats(body string) interfaces.DocumentStats {
	src := []byte(body)
	doc := statsEngine.Parser().Parse(text.NewReader(src))

	var stats interfaces.DocumentStats
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			stats.Headings++
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			stats.CodeBlocks++
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			stats.Words += len(strings.Fields(string(node.Segment.Value(src))))
		}
		return ast.WalkContinue, nil
	})
	return stats
}
