package runtimeconfig

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-supportdocs/internal/logging/gologger"
)

const (
	// DefaultContentDir is the content root used when none is configured.
	DefaultContentDir = "docs"
	// DefaultOutputName is the artifact file name placed under marketing/.
	DefaultOutputName = "support-docs.txt"
	// DefaultOutputDir is created as a sibling of the content root.
	DefaultOutputDir = "marketing"
)

var ErrContentDirRequired = errors.New("supportdocs config: content directory is required")
var ErrExtensionInvalid = errors.New("supportdocs config: extension must start with a dot")
var ErrFragmentsDirInvalid = errors.New("supportdocs config: fragments directory must be a single path segment")
var ErrProductNameRequired = errors.New("supportdocs config: product name is required")
var ErrPublicURLInvalid = errors.New("supportdocs config: public url must be an absolute http(s) url")
var ErrLoggingProviderRequired = errors.New("supportdocs config: logging provider is required")
var ErrLoggingProviderUnknown = errors.New("supportdocs config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("supportdocs config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("supportdocs config: logging format is invalid")

// Config captures everything a compile run needs.
type Config struct {
	ContentDir string
	// OutputPath defaults to <ContentDir>/../marketing/support-docs.txt.
	OutputPath   string
	Extension    string
	FragmentsDir string
	ProductName  string
	// PublicURL is only echoed in the summary.
	PublicURL           string
	IncludeDescriptions bool
	Logging             LoggingConfig
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the settings used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		ContentDir:   DefaultContentDir,
		Extension:    ".mdx",
		FragmentsDir: "snippets",
		ProductName:  "ChatAds",
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "warn",
			Format:   "console",
		},
	}
}

// Validate performs consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.ContentDir) == "" {
		return ErrContentDirRequired
	}
	if ext := strings.TrimSpace(cfg.Extension); len(ext) < 2 || !strings.HasPrefix(ext, ".") {
		return fmt.Errorf("%w: %q", ErrExtensionInvalid, cfg.Extension)
	}
	if fragments := strings.TrimSpace(cfg.FragmentsDir); fragments == "" || strings.ContainsAny(fragments, `/\`) {
		return fmt.Errorf("%w: %q", ErrFragmentsDirInvalid, cfg.FragmentsDir)
	}
	if strings.TrimSpace(cfg.ProductName) == "" {
		return ErrProductNameRequired
	}
	if raw := strings.TrimSpace(cfg.PublicURL); raw != "" {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %s", ErrPublicURLInvalid, raw)
		}
	}

	provider := normalizeProvider(cfg.Logging.Provider)
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !gologger.SupportsLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !gologger.SupportsFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

// ResolvedOutputPath returns OutputPath, or the marketing/ sibling of the
// content root when it is unset.
func (cfg Config) ResolvedOutputPath() string {
	if out := strings.TrimSpace(cfg.OutputPath); out != "" {
		return filepath.Clean(out)
	}
	return filepath.Join(cfg.ContentDir, "..", DefaultOutputDir, DefaultOutputName)
}

// Resolve anchors relative content and output paths at base, usually the
// working directory, and fills in the default output path.
func (cfg Config) Resolve(base string) Config {
	cfg.OutputPath = cfg.ResolvedOutputPath()
	cfg.ContentDir = anchor(base, cfg.ContentDir)
	cfg.OutputPath = anchor(base, cfg.OutputPath)
	return cfg
}

func anchor(base, path string) string {
	if filepath.IsAbs(path) || base == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}
