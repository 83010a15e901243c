package commands

import (
	"strings"

	"github.com/goliatone/go-supportdocs/internal/logging"
	"github.com/goliatone/go-supportdocs/pkg/interfaces"
)

// CommandLogger returns the supportdocs.commands.<module> logger, tagged with
// command_module. Blank modules fall back to compile.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	module = strings.ToLower(strings.TrimSpace(module))
	if module == "" {
		module = "compile"
	}
	logger := logging.ModuleLogger(provider, "supportdocs.commands."+module)
	return logging.WithFields(logger, map[string]any{"command_module": module})
}
