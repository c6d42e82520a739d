// Package outfile persists generated modules to disk. It is the write-side
// collaborator injected into the pipeline.
package outfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteError reports a failed write for one output path.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// DiskWriter writes generated files, creating parent directories as needed
// and always overwriting any existing file.
type DiskWriter struct{}

func (DiskWriter) Write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
