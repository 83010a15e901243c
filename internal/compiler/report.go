package compiler

import (
	"io"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/goliatone/go-supportdocs/pkg/interfaces"
)

// Reporter prints the human-facing progress and summary lines of a run.
// Structured diagnostics go through the logger instead.
type Reporter struct {
	out     io.Writer
	printer *message.Printer
}

// NewReporter writes to out, or stdout when out is nil.
func NewReporter(out io.Writer) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	return &Reporter{out: out, printer: message.NewPrinter(language.English)}
}

// Start announces the run.
func (r *Reporter) Start(product string) {
	r.printf("Compiling %s documentation for support chatbot...\n\n", product)
}

// FileFailed reports a file that was left out of the output.
func (r *Reporter) FileFailed(path string, err error) {
	r.printf("Warning: Failed to process %s: %v\n", path, err)
}

// Summary prints the processed and skipped counts followed by any failures.
func (r *Reporter) Summary(processed, skipped int, failed []interfaces.FileFailure) {
	r.printf("Processed %d files, skipped %d files\n", processed, skipped)
	if len(failed) == 0 {
		return
	}
	r.printf("Failed to process %d files:\n", len(failed))
	for _, failure := range failed {
		r.printf("  - %s\n", failure.Path)
	}
}

// Content prints the aggregate structure of the compiled pages.
func (r *Reporter) Content(stats interfaces.DocumentStats) {
	r.printf("Content: %d headings, %d code blocks, %d words\n", stats.Headings, stats.CodeBlocks, stats.Words)
}

// Written confirms a successful write. publicURL is optional.
func (r *Reporter) Written(path string, size int, publicURL string) {
	r.printf("\nOutput written to: %s\n", path)
	r.printf("File size: %d characters\n", size)
	if publicURL != "" {
		r.printf("Will be accessible at: %s\n", publicURL)
		return
	}
	r.printf("File exists and is ready for deployment\n")
}

// DryRun reports what would have been written.
func (r *Reporter) DryRun(path string, size int) {
	r.printf("\nDry run: output not written to: %s\n", path)
	r.printf("File size: %d characters\n", size)
}

// WriteFailed reports the fatal write error.
func (r *Reporter) WriteFailed(path string, err error) {
	r.printf("\nCRITICAL: Failed to write to output file %s.\nError: %v\n", path, err)
}

func (r *Reporter) printf(format string, args ...any) {
	_, _ = r.printer.Fprintf(r.out, format, args...)
}
