// Package modinfo detects the default generated-package name from the
// enclosing Go module. The result is passed into the pipeline explicitly;
// nothing below the CLI ever inspects the project.
package modinfo

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/mod/modfile"

	"github.com/MikeNotThePope/oopsie-daisy/internal/daisy/text"
)

// DetectNamespace walks up from dir to the nearest go.mod and derives a
// package name from the module path's base element.
func DetectNamespace(dir string) (string, error) {
	root, err := findModuleRoot(dir)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return "", err
	}
	f, err := modfile.ParseLax("go.mod", data, nil)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", filepath.Join(root, "go.mod"), err)
	}
	if f.Module == nil || f.Module.Mod.Path == "" {
		return "", fmt.Errorf("%s has no module directive", filepath.Join(root, "go.mod"))
	}
	return text.PackageName(path.Base(f.Module.Mod.Path)), nil
}

func findModuleRoot(start string) (string, error) {
	d, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(d, "go.mod")); err == nil {
			return d, nil
		}
		parent := filepath.Dir(d)
		if parent == d {
			return "", fmt.Errorf("could not find go.mod above %s", start)
		}
		d = parent
	}
}
