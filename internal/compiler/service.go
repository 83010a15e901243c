package compiler

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/goliatone/go-supportdocs/internal/logging"
	"github.com/goliatone/go-supportdocs/internal/markdown"
	"github.com/goliatone/go-supportdocs/pkg/interfaces"
)

// Config describes where a run reads from and writes to.
type Config struct {
	ContentDir          string
	OutputPath          string
	Extension           string
	FragmentsDir        string
	ProductName         string
	PublicURL           string
	IncludeDescriptions bool
}

// ServiceOption customises a Service.
type ServiceOption func(*Service)

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithFS replaces the filesystem rooted at the content directory.
func WithFS(filesystem fs.FS) ServiceOption {
	return func(s *Service) {
		s.fs = filesystem
	}
}

// WithTransformer replaces the default markdown transformer.
func WithTransformer(transformer interfaces.DocumentTransformer) ServiceOption {
	return func(s *Service) {
		s.transformer = transformer
	}
}

// WithWriter replaces the filesystem writer.
func WithWriter(writer Writer) ServiceOption {
	return func(s *Service) {
		s.writer = writer
	}
}

// WithStdout redirects the run summary, which defaults to os.Stdout.
func WithStdout(out io.Writer) ServiceOption {
	return func(s *Service) {
		s.stdout = out
	}
}

// WithRunIDGenerator overrides how run identifiers are minted.
func WithRunIDGenerator(fn func() uuid.UUID) ServiceOption {
	return func(s *Service) {
		if fn != nil {
			s.newRunID = fn
		}
	}
}

// Service compiles a content tree into the support-docs artifact.
type Service struct {
	cfg         Config
	fs          fs.FS
	loader      *markdown.Loader
	transformer interfaces.DocumentTransformer
	assembler   *Assembler
	writer      Writer
	reporter    *Reporter
	stdout      io.Writer
	logger      interfaces.Logger
	newRunID    func() uuid.UUID
}

var _ interfaces.DocsCompiler = (*Service)(nil)

// NewService validates cfg and wires the loader, transformer, and writer.
func NewService(cfg Config, opts ...ServiceOption) (*Service, error) {
	if strings.TrimSpace(cfg.ContentDir) == "" {
		return nil, ErrEmptyContentDir
	}
	if strings.TrimSpace(cfg.OutputPath) == "" {
		return nil, ErrEmptyOutputPath
	}
	cfg.ContentDir = filepath.Clean(cfg.ContentDir)
	cfg.OutputPath = filepath.Clean(cfg.OutputPath)

	s := &Service{
		cfg:      cfg,
		writer:   FileWriter{},
		logger:   logging.NoOp(),
		newRunID: uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.fs == nil {
		s.fs = os.DirFS(cfg.ContentDir)
	}
	if s.transformer == nil {
		s.transformer = markdown.NewTransformer(s.logger)
	}
	s.loader = markdown.NewLoader(s.fs, markdown.LoaderConfig{
		Root:         cfg.ContentDir,
		Extension:    cfg.Extension,
		FragmentsDir: cfg.FragmentsDir,
		Logger:       s.logger,
	})
	s.assembler = NewAssembler(AssemblerConfig{
		ProductName:         cfg.ProductName,
		IncludeDescriptions: cfg.IncludeDescriptions,
	})
	s.reporter = NewReporter(s.stdout)
	return s, nil
}

// Compile discovers, transforms, and assembles every page, then writes the
// result unless opts.DryRun is set. Files that fail to read or transform are
// reported and left out. Only a failed write returns an error; the result is
// returned alongside it.
func (s *Service) Compile(ctx context.Context, opts interfaces.CompileOptions) (*interfaces.CompileResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	result := &interfaces.CompileResult{
		RunID:      s.newRunID(),
		OutputPath: s.cfg.OutputPath,
	}
	logger := logging.WithRunID(s.logger, result.RunID.String())
	logger.Info("compiler.run.start", "content_dir", s.cfg.ContentDir, "output", s.cfg.OutputPath, "dry_run", opts.DryRun)
	s.reporter.Start(s.assembler.product)

	discovered, err := s.loader.Discover(ctx)
	if err != nil {
		return result, err
	}
	paths, skipped := s.loader.Filter(discovered)
	result.Skipped = skipped

	docs := make([]*interfaces.ExtractedDocument, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		doc, err := s.process(ctx, path)
		if err != nil {
			rel := s.loader.Relative(path)
			logging.WithDocumentContext(logger, rel, "compile").Warn("compiler.document.failed", "error", err)
			s.reporter.FileFailed(path, err)
			result.Failed = append(result.Failed, interfaces.FileFailure{Path: path, Err: err})
			continue
		}
		docs = append(docs, doc)
		result.Stats = result.Stats.Add(doc.Stats)
	}
	result.Processed = len(docs)

	output := s.assembler.Assemble(docs).Render()
	result.OutputSize = utf8.RuneCountInString(output)
	s.reporter.Summary(result.Processed, result.Skipped, result.Failed)
	if result.Processed > 0 {
		s.reporter.Content(result.Stats)
	}

	if opts.DryRun {
		s.reporter.DryRun(result.OutputPath, result.OutputSize)
		logger.Info("compiler.run.dry_run",
			"processed", result.Processed,
			"skipped", result.Skipped,
			"failed", len(result.Failed),
			"size", result.OutputSize,
		)
		return result, nil
	}

	if err := s.writer.Write(result.OutputPath, []byte(output)); err != nil {
		s.reporter.WriteFailed(result.OutputPath, err)
		logger.Error("compiler.output.write_failed", "output", result.OutputPath, "error", err)
		return result, wrapWriteError(result.OutputPath, err)
	}
	result.Written = true
	s.reporter.Written(result.OutputPath, result.OutputSize, s.cfg.PublicURL)

	logger.Info("compiler.run.completed",
		"processed", result.Processed,
		"skipped", result.Skipped,
		"failed", len(result.Failed),
		"size", result.OutputSize,
		"headings", result.Stats.Headings,
		"code_blocks", result.Stats.CodeBlocks,
		"words", result.Stats.Words,
	)
	return result, nil
}

func (s *Service) process(ctx context.Context, path string) (*interfaces.ExtractedDocument, error) {
	file, err := s.loader.Read(ctx, path)
	if err != nil {
		return nil, wrapReadError(err)
	}
	doc, err := s.transform(file)
	if err != nil {
		return nil, wrapTransformError(err)
	}
	return doc, nil
}

func (s *Service) transform(file interfaces.SourceFile) (doc *interfaces.ExtractedDocument, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, transformPanic{value: r}
		}
	}()
	return s.transformer.Transform(file)
}
