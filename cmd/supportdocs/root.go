package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-supportdocs/cmd/supportdocs/internal/bootstrap"
	compilecmd "github.com/goliatone/go-supportdocs/internal/commands/compile"
	"github.com/goliatone/go-supportdocs/internal/runtimeconfig"
	"github.com/goliatone/go-supportdocs/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

type rootOptions struct {
	configFile string
	dryRun     bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "supportdocs",
		Short: "Compile MDX documentation into a single support chatbot context file",
		Long: `supportdocs walks a documentation tree, strips metadata headers and
component markup from every page, and writes one plain-text file with a
section per page for use as chatbot context.

Pages under the fragments directory (snippets/ by default) are skipped.
Files that fail to process are reported and left out; only a failed write
of the output file exits non-zero.`,
		Example: `  # Compile ./docs into ./marketing/support-docs.txt
  supportdocs

  # Preview a custom tree without writing
  supportdocs --content-dir site/docs --dry-run`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompile(cmd.Context(), cmd, opts, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	runtimeconfig.RegisterFlags(flags)
	flags.StringVar(&opts.configFile, "config", os.Getenv(runtimeconfig.EnvPrefix+"_CONFIG"), "path to a YAML config file (default ./supportdocs.yaml when present)")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "assemble and report without writing the output file")
	return cmd
}

func runCompile(ctx context.Context, cmd *cobra.Command, opts *rootOptions, stdout, stderr io.Writer) error {
	cfg, err := runtimeconfig.Load(opts.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	cfg = cfg.Resolve(cwd)

	module, err := moduleBuilder(bootstrap.Options{
		Config: cfg,
		Stdout: stdout,
		Stderr: stderr,
	})
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	sub := dispatcher.SubscribeCommand(module.Handler, runnerOptions(module.Logger)...)
	defer sub.Unsubscribe()

	module.Logger.Debug("supportdocs.compile.dispatch", "content_dir", cfg.ContentDir, "output", cfg.OutputPath)
	return dispatcher.Dispatch(ctx, compilecmd.CompileDocsCommand{
		ContentDir:   cfg.ContentDir,
		OutputPath:   cfg.OutputPath,
		Extension:    cfg.Extension,
		FragmentsDir: cfg.FragmentsDir,
		DryRun:       opts.dryRun,
	})
}

// runnerOptions keeps the runner's error and completion hooks on the
// configured logger. The dispatch error is already returned to the caller.
func runnerOptions(logger interfaces.Logger) []runner.Option {
	return []runner.Option{
		runner.WithErrorHandler(func(err error) {
			logger.Debug("supportdocs.compile.runner_error", "error", err)
		}),
		runner.WithDoneHandler(func(h *runner.Handler) {
			logger.Debug("supportdocs.compile.runner_done", "entry_id", h.EntryID)
		}),
	}
}
