package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/goliatone/go-supportdocs/internal/logging"
	"github.com/goliatone/go-supportdocs/pkg/interfaces"
)

const (
	// DefaultExtension is the markup format compiled by default.
	DefaultExtension = ".mdx"
	// DefaultFragmentsDir holds reusable snippets that are not standalone pages.
	DefaultFragmentsDir = "snippets"
)

// LoaderConfig configures discovery under a content root.
type LoaderConfig struct {
	// Root is the absolute content root; discovered paths are joined onto it.
	Root string
	// Extension selects files by suffix, including the dot (defaults to ".mdx").
	Extension string
	// FragmentsDir names the root-level directory excluded from output.
	FragmentsDir string
	Logger       interfaces.Logger
}

// Loader discovers documentation files under a content root and reads them.
type Loader struct {
	fs        fs.FS
	root      string
	extension string
	fragments string
	logger    interfaces.Logger
}

// NewLoader constructs a Loader over filesystem, which must be rooted at
// cfg.Root (os.DirFS(cfg.Root) in production).
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	ext := strings.TrimSpace(cfg.Extension)
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	fragments := strings.Trim(strings.TrimSpace(cfg.FragmentsDir), `/\`)
	if fragments == "" {
		fragments = DefaultFragmentsDir
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Loader{
		fs:        filesystem,
		root:      filepath.Clean(cfg.Root),
		extension: ext,
		fragments: fragments,
		logger:    logger,
	}
}

// Root returns the content root the loader resolves paths against.
func (l *Loader) Root() string {
	return l.root
}

// Discover returns the absolute paths of every file with the configured
// extension anywhere under the root, sorted lexicographically. A missing or
// empty root yields an empty slice.
func (l *Loader) Discover(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if info, err := fs.Stat(l.fs, "."); err != nil || !info.IsDir() {
		l.logger.Warn("markdown.discover.root_missing", "root", l.root, "error", err)
		return []string{}, nil
	}

	pattern := "**/*" + escapeGlob(l.extension)
	matches, err := doublestar.Glob(l.fs, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("markdown discover %s: %w", pattern, err)
	}

	paths := make([]string, 0, len(matches))
	for _, rel := range matches {
		if hasHiddenSegment(rel) {
			continue
		}
		paths = append(paths, filepath.Join(l.root, filepath.FromSlash(rel)))
	}
	sort.Strings(paths)

	l.logger.Debug("markdown.discover.completed", "root", l.root, "count", len(paths))
	return paths, nil
}

// Filter drops paths that live under the fragments directory and reports how
// many were skipped. Order is preserved.
func (l *Loader) Filter(paths []string) ([]string, int) {
	kept := make([]string, 0, len(paths))
	skipped := 0
	for _, path := range paths {
		if l.IsFragment(path) {
			skipped++
			continue
		}
		kept = append(kept, path)
	}
	return kept, skipped
}

// IsFragment reports whether path, relative to the root, starts with the
// fragments directory. Both "/" and "\" count as separators.
func (l *Loader) IsFragment(path string) bool {
	rel := l.Relative(path)
	return strings.HasPrefix(rel, l.fragments+"/") || strings.HasPrefix(rel, l.fragments+`\`)
}

// Relative returns path relative to the root using forward slashes. Paths
// outside the root are returned cleaned but otherwise unchanged.
func (l *Loader) Relative(path string) string {
	rel, err := filepath.Rel(l.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(filepath.Clean(path))
	}
	return filepath.ToSlash(rel)
}

// Read loads the file at the absolute path into a SourceFile.
func (l *Loader) Read(ctx context.Context, path string) (interfaces.SourceFile, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.SourceFile{}, err
	}
	rel := l.Relative(path)
	data, err := fs.ReadFile(l.fs, rel)
	if err != nil {
		return interfaces.SourceFile{}, fmt.Errorf("markdown read %s: %w", rel, err)
	}
	return interfaces.SourceFile{
		AbsPath: path,
		RelPath: rel,
		Content: data,
	}, nil
}

// hasHiddenSegment mirrors shell globbing, where "*" and "**" never match
// names that start with a dot.
func hasHiddenSegment(rel string) bool {
	for _, segment := range strings.Split(rel, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}

func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '{', '}', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
