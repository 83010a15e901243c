package bootstrap

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goliatone/go-supportdocs/internal/commands"
	compilecmd "github.com/goliatone/go-supportdocs/internal/commands/compile"
	"github.com/goliatone/go-supportdocs/internal/compiler"
	"github.com/goliatone/go-supportdocs/internal/logging"
	"github.com/goliatone/go-supportdocs/internal/logging/console"
	"github.com/goliatone/go-supportdocs/internal/logging/gologger"
	"github.com/goliatone/go-supportdocs/internal/runtimeconfig"
	"github.com/goliatone/go-supportdocs/pkg/interfaces"
)

// Options captures what the CLI hands to the bootstrap.
type Options struct {
	Config runtimeconfig.Config
	// Stdout receives the run summary; Stderr receives plain-format logs.
	Stdout         io.Writer
	Stderr         io.Writer
	LoggerProvider interfaces.LoggerProvider
	OnResult       func(*interfaces.CompileResult)
}

// Module bundles the compile handler with the loggers it was built with.
type Module struct {
	Config   runtimeconfig.Config
	Handler  *compilecmd.CompileDocsHandler
	Provider interfaces.LoggerProvider
	Logger   interfaces.Logger
}

// BuildModule validates the configuration and wires the compile handler.
func BuildModule(opts Options) (*Module, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	provider := opts.LoggerProvider
	if provider == nil {
		built, err := NewLoggerProvider(cfg.Logging, opts.Stderr)
		if err != nil {
			return nil, err
		}
		provider = built
	}

	compilerLogger := logging.CompilerLogger(provider)
	handler := compilecmd.NewCompileDocsHandler(compilecmd.Settings{
		Defaults: compiler.Config{
			Extension:           cfg.Extension,
			FragmentsDir:        cfg.FragmentsDir,
			ProductName:         cfg.ProductName,
			PublicURL:           cfg.PublicURL,
			IncludeDescriptions: cfg.IncludeDescriptions,
		},
		Factory:  compilecmd.NewServiceFactory(compilerLogger, stdout),
		OnResult: opts.OnResult,
	}, commands.CommandLogger(provider, "compile"))

	return &Module{
		Config:   cfg,
		Handler:  handler,
		Provider: provider,
		Logger:   logging.ModuleLogger(provider, ""),
	}, nil
}

// NewLoggerProvider selects the go-logger adapter or the plain console
// writer based on cfg.Provider.
func NewLoggerProvider(cfg runtimeconfig.LoggingConfig, stderr io.Writer) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "console":
		level, _ := console.ParseLevel(cfg.Level)
		return console.NewProvider(console.Options{Writer: stderr, MinLevel: &level}), nil
	case "", "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return nil, fmt.Errorf("bootstrap logger: %w", err)
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("bootstrap logger: unknown provider %q", cfg.Provider)
	}
}
