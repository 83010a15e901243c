package compilecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const compileDocsMessageType = "supportdocs.compile.docs"

// CompileDocsCommand compiles the content tree under ContentDir into the
// single support-docs artifact at OutputPath. Empty Extension and
// FragmentsDir fall back to the handler defaults.
type CompileDocsCommand struct {
	ContentDir   string `json:"content_dir"`
	OutputPath   string `json:"output_path"`
	Extension    string `json:"extension,omitempty"`
	FragmentsDir string `json:"fragments_dir,omitempty"`
	// DryRun assembles and reports without writing the artifact.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (CompileDocsCommand) Type() string { return compileDocsMessageType }

// Validate ensures both paths are present and the optional selectors are
// well formed.
func (cmd CompileDocsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.ContentDir, validation.By(requiredPath("content_dir_required", "content directory is required"))),
		validation.Field(&cmd.OutputPath, validation.By(requiredPath("output_path_required", "output path is required"))),
		validation.Field(&cmd.Extension, validation.By(func(value any) error {
			ext := strings.TrimSpace(value.(string))
			if ext == "" {
				return nil
			}
			if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
				return validation.NewError(compileDocsMessageType+".extension_invalid", "extension must start with a dot")
			}
			return nil
		})),
		validation.Field(&cmd.FragmentsDir, validation.By(func(value any) error {
			if strings.ContainsAny(value.(string), `/\`) {
				return validation.NewError(compileDocsMessageType+".fragments_dir_invalid", "fragments directory must be a single path segment")
			}
			return nil
		})),
	)
}

func requiredPath(code, message string) validation.RuleFunc {
	return func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError(compileDocsMessageType+"."+code, message)
		}
		return nil
	}
}
