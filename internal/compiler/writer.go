package compiler

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer persists the compiled output.
type Writer interface {
	Write(path string, data []byte) error
}

// FileWriter writes the output in one shot: the data lands in a temporary
// file beside the target and is renamed over it, so readers never observe a
// partial artifact.
type FileWriter struct {
	Perm os.FileMode
}

var _ Writer = FileWriter{}

// Write creates missing parent directories and replaces path with data.
func (w FileWriter) Write(path string, data []byte) error {
	perm := w.Perm
	if perm == 0 {
		perm = 0o644
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("rename %s to %s: %w", tmpName, path, err)
	}
	return nil
}
