package compiler

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-supportdocs/internal/markdown"
)

const (
	// CodeReadFailed tags a source file that could not be read.
	CodeReadFailed = "READ_FAILED"
	// CodeTransformFailed tags a source file the transformer rejected.
	CodeTransformFailed = "TRANSFORM_FAILED"
	// CodeOutputWriteFailed tags the fatal write failure of a run.
	CodeOutputWriteFailed = "OUTPUT_WRITE_FAILED"
)

// ErrEmptyContentDir is returned when the service is built without a content root.
var ErrEmptyContentDir = errors.New("compiler: content directory is required")

// ErrEmptyOutputPath is returned when the service is built without an output path.
var ErrEmptyOutputPath = errors.New("compiler: output path is required")

func wrapReadError(err error) error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, "read source file").
		WithTextCode(CodeReadFailed)
}

func wrapTransformError(err error) error {
	category := goerrors.CategoryInternal
	if errors.Is(err, markdown.ErrInvalidEncoding) {
		category = goerrors.CategoryValidation
	}
	return goerrors.Wrap(err, category, "transform source file").
		WithTextCode(CodeTransformFailed)
}

func wrapWriteError(path string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, fmt.Sprintf("write output %s", path)).
		WithTextCode(CodeOutputWriteFailed)
}

// transformPanic turns a panic raised while transforming one file into an
// error so the rest of the run can continue.
type transformPanic struct {
	value any
}

func (p transformPanic) Error() string {
	return fmt.Sprintf("transform panicked: %v", p.value)
}
