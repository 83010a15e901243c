package interfaces

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// SourceFile is a discovered documentation file read fully into memory.
type SourceFile struct {
	// AbsPath identifies the file on disk.
	AbsPath string
	// RelPath is the slash separated path relative to the content root.
	RelPath string
	Content []byte
}

// FrontMatter carries the metadata header of a documentation page.
type FrontMatter struct {
	// Present reports whether the file opened with a metadata header block.
	Present     bool           `json:"present"`
	Title       string         `yaml:"title" json:"title"`
	Description string         `yaml:"description" json:"description"`
	Raw         map[string]any `yaml:"-" json:"raw"`
}

// DocumentStats summarises the structure of a cleaned body.
type DocumentStats struct {
	Headings   int `json:"headings"`
	CodeBlocks int `json:"code_blocks"`
	Words      int `json:"words"`
}

// Add returns the field-wise sum of both stats.
func (s DocumentStats) Add(other DocumentStats) DocumentStats {
	return DocumentStats{
		Headings:   s.Headings + other.Headings,
		CodeBlocks: s.CodeBlocks + other.CodeBlocks,
		Words:      s.Words + other.Words,
	}
}

// ExtractedDocument is the transformed form of a SourceFile.
type ExtractedDocument struct {
	Title        string
	RelativePath string
	CleanedBody  string
	FrontMatter  FrontMatter
	Stats        DocumentStats
}

// CompiledOutput is the assembled artifact before it is written.
type CompiledOutput struct {
	Header    string
	Sections  []string
	Documents []*ExtractedDocument
}

// Render joins the header and the sections, one blank line between
// sections.
func (o *CompiledOutput) Render() string {
	if o == nil {
		return ""
	}
	return o.Header + strings.Join(o.Sections, "\n\n")
}

// DocumentTransformer turns a raw source file into an extracted document.
type DocumentTransformer interface {
	Transform(file SourceFile) (*ExtractedDocument, error)
}

// FileFailure records a file that could not be transformed.
type FileFailure struct {
	Path string
	Err  error
}

// CompileOptions tunes a single compile run.
type CompileOptions struct {
	// DryRun assembles the output without writing it.
	DryRun bool
}

// CompileResult reports the outcome of a compile run.
type CompileResult struct {
	RunID      uuid.UUID
	Processed  int
	Skipped    int
	Failed     []FileFailure
	OutputPath string
	// OutputSize is the length of the compiled output in characters.
	OutputSize int
	Written    bool
	Stats      DocumentStats
}

// DocsCompiler aggregates a content tree into a single text artifact.
type DocsCompiler interface {
	Compile(ctx context.Context, opts CompileOptions) (*CompileResult, error)
}
