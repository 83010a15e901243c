package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-supportdocs/pkg/interfaces"
)

const (
	rootModule     = "supportdocs"
	markdownModule = "supportdocs.markdown"
	compilerModule = "supportdocs.compiler"
)

const (
	fieldDocumentPath  = "doc_path"
	fieldDocumentStage = "stage"
	fieldRunID         = "run_id"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field on every entry.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// MarkdownLogger returns the logger namespace reserved for discovery and transforms.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// CompilerLogger returns the logger namespace reserved for assembly and output.
func CompilerLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, compilerModule)
}

// WithDocumentContext enriches logger with the document path and pipeline
// stage. Empty values are ignored.
func WithDocumentContext(logger interfaces.Logger, path, stage string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldDocumentPath] = trimmed
	}
	if trimmed := strings.TrimSpace(stage); trimmed != "" {
		fields[fieldDocumentStage] = trimmed
	}
	return WithFields(logger, fields)
}

// WithRunID tags logger with the identifier of the current compile run.
func WithRunID(logger interfaces.Logger, runID string) interfaces.Logger {
	if strings.TrimSpace(runID) == "" {
		return logger
	}
	return WithFields(logger, map[string]any{fieldRunID: runID})
}

// NoOp returns a logger that drops every log entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
