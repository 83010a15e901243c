package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

// fencePattern matches a triple-backtick fenced block lazily, across lines.
var fencePattern = regexp.MustCompile("(?s)```.*?```")

const placeholderStem = "@@SUPPORTDOCS_FENCE_"

// fencedBlocks holds code blocks lifted out of a text so that rewrite passes
// cannot touch them.
type fencedBlocks struct {
	prefix string
	blocks []string
}

// protectFences replaces every fenced block in text with a placeholder token.
// The token prefix is grown until it does not occur in text, so restore never
// confuses author content with a placeholder.
func protectFences(text string) (string, *fencedBlocks) {
	prefix := placeholderStem
	for strings.Contains(text, prefix) {
		prefix += "_"
	}
	fb := &fencedBlocks{prefix: prefix}
	protected := fencePattern.ReplaceAllStringFunc(text, func(block string) string {
		fb.blocks = append(fb.blocks, block)
		return fb.token(len(fb.blocks) - 1)
	})
	return protected, fb
}

func (fb *fencedBlocks) token(i int) string {
	return fb.prefix + strconv.Itoa(i) + "@@"
}

// restore splices the original blocks back in place of their tokens.
func (fb *fencedBlocks) restore(text string) string {
	if fb == nil || len(fb.blocks) == 0 {
		return text
	}
	pairs := make([]string, 0, len(fb.blocks)*2)
	for i, block := range fb.blocks {
		pairs = append(pairs, fb.token(i), block)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// Len reports how many blocks were protected.
func (fb *fencedBlocks) Len() int {
	if fb == nil {
		return 0
	}
	return len(fb.blocks)
}
