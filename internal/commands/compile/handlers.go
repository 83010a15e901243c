package compilecmd

import (
	"context"
	"errors"
	"io"
	"strings"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-supportdocs/internal/commands"
	"github.com/goliatone/go-supportdocs/internal/compiler"
	"github.com/goliatone/go-supportdocs/internal/logging"
	"github.com/goliatone/go-supportdocs/pkg/interfaces"
)

const compileOperation = "compile.docs"

// ErrServiceFactoryRequired is returned when the handler has no way to build a compiler.
var ErrServiceFactoryRequired = errors.New("compile command: service factory is nil")

var _ command.Commander[CompileDocsCommand] = (*CompileDocsHandler)(nil)

// ServiceFactory builds a compiler for one run.
type ServiceFactory func(cfg compiler.Config) (interfaces.DocsCompiler, error)

// NewServiceFactory returns the production factory: a compiler.Service that
// logs to logger and prints its summary to stdout.
func NewServiceFactory(logger interfaces.Logger, stdout io.Writer) ServiceFactory {
	return func(cfg compiler.Config) (interfaces.DocsCompiler, error) {
		return compiler.NewService(cfg, compiler.WithLogger(logger), compiler.WithStdout(stdout))
	}
}

// Settings carries the run-independent inputs of the handler.
type Settings struct {
	// Defaults supplies product, URL, description, extension, and fragments
	// settings that the command does not override.
	Defaults compiler.Config
	Factory  ServiceFactory
	// OnResult, when set, receives the result of every run, including runs
	// whose write failed.
	OnResult func(*interfaces.CompileResult)
}

// CompileDocsHandler runs compiles through the shared command handler foundation.
type CompileDocsHandler struct {
	inner *commands.Handler[CompileDocsCommand]
}

// NewCompileDocsHandler creates a handler that compiles with settings.Factory.
func NewCompileDocsHandler(settings Settings, logger interfaces.Logger, opts ...commands.HandlerOption[CompileDocsCommand]) *CompileDocsHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg CompileDocsCommand) error {
		if settings.Factory == nil {
			return ErrServiceFactoryRequired
		}
		svc, err := settings.Factory(mergeConfig(settings.Defaults, msg))
		if err != nil {
			return err
		}

		result, err := svc.Compile(ctx, interfaces.CompileOptions{DryRun: msg.DryRun})
		if result != nil {
			if settings.OnResult != nil {
				settings.OnResult(result)
			}
			logging.WithFields(baseLogger, map[string]any{
				"run_id":          result.RunID.String(),
				"processed_count": result.Processed,
				"skipped_count":   result.Skipped,
				"failed_count":    len(result.Failed),
				"output_size":     result.OutputSize,
				"written":         result.Written,
			}).Info("compile.command.docs.completed")
		}
		return err
	}

	handlerOpts := []commands.HandlerOption[CompileDocsCommand]{
		commands.WithLogger[CompileDocsCommand](baseLogger),
		commands.WithOperation[CompileDocsCommand](compileOperation),
		commands.WithMessageFields(func(msg CompileDocsCommand) map[string]any {
			fields := map[string]any{
				"content_dir": msg.ContentDir,
				"output_path": msg.OutputPath,
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CompileDocsHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CompileDocsCommand].
func (h *CompileDocsHandler) Execute(ctx context.Context, msg CompileDocsCommand) error {
	return h.inner.Execute(ctx, msg)
}

func mergeConfig(defaults compiler.Config, msg CompileDocsCommand) compiler.Config {
	cfg := defaults
	cfg.ContentDir = msg.ContentDir
	cfg.OutputPath = msg.OutputPath
	if ext := strings.TrimSpace(msg.Extension); ext != "" {
		cfg.Extension = ext
	}
	if dir := strings.TrimSpace(msg.FragmentsDir); dir != "" {
		cfg.FragmentsDir = dir
	}
	return cfg
}
