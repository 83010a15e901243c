package markdown

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/goliatone/go-supportdocs/internal/logging"
	"github.com/goliatone/go-supportdocs/pkg/interfaces"
)

// ErrInvalidEncoding is returned for files that are not valid UTF-8.
var ErrInvalidEncoding = errors.New("markdown: file is not valid UTF-8")

// Transformer converts raw MDX sources into extracted documents.
type Transformer struct {
	logger interfaces.Logger
}

var _ interfaces.DocumentTransformer = (*Transformer)(nil)

// NewTransformer builds a Transformer. A nil logger disables logging.
func NewTransformer(logger interfaces.Logger) *Transformer {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Transformer{logger: logger}
}

// Transform extracts the title, strips the metadata header and component
// tags, and normalises whitespace. Line endings are folded to LF first and
// the title is read before the header is removed.
func (t *Transformer) Transform(file interfaces.SourceFile) (*interfaces.ExtractedDocument, error) {
	if !utf8.Valid(file.Content) {
		return nil, fmt.Errorf("%s: %w", file.RelPath, ErrInvalidEncoding)
	}
	content := NormalizeNewlines(string(file.Content))
	logger := logging.WithDocumentContext(t.logger, file.RelPath, "transform")

	fm, err := ParseFrontMatter(content, file.RelPath)
	if err != nil {
		logger.Debug("markdown.frontmatter.decode_failed", "error", err)
	}

	body := StripFrontMatter(content)
	body = StripComponents(body)
	body = NormalizeWhitespace(body)

	doc := &interfaces.ExtractedDocument{
		Title:        fm.Title,
		RelativePath: file.RelPath,
		CleanedBody:  body,
		FrontMatter:  fm,
		Stats:        ComputeStats(body),
	}
	logger.Debug("markdown.document.transformed",
		"title", doc.Title,
		"headings", doc.Stats.Headings,
		"code_blocks", doc.Stats.CodeBlocks,
		"words", doc.Stats.Words,
	)
	return doc, nil
}
