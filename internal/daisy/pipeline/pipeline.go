// Package pipeline runs the per-file generation flow: extract samples,
// classify variants, synthesize the module, hand the bytes to the injected
// writer. Files are independent; failures stay scoped to their file.
package pipeline

import (
	"context"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/MikeNotThePope/oopsie-daisy/internal/daisy/ast"
	"github.com/MikeNotThePope/oopsie-daisy/internal/daisy/classify"
	"github.com/MikeNotThePope/oopsie-daisy/internal/daisy/extract"
	"github.com/MikeNotThePope/oopsie-daisy/internal/daisy/gen"
)

// File is one documentation file, read by the caller. The pipeline itself
// never touches the filesystem.
type File struct {
	Path  string
	Lines []string
}

// Options configure one run.
type Options struct {
	// Namespace is the generated package name. Required.
	Namespace string
	// OutDir receives the generated files.
	OutDir string
	// Concurrency bounds the per-file fan-out; <= 0 means GOMAXPROCS.
	Concurrency int
}

// Status tags a per-file result.
type Status string

const (
	StatusGenerated Status = "generated"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Summary carries the dry-run reporting fields for one component.
type Summary struct {
	Module     string
	BaseClass  string
	Dimensions []string
	Examples   int
}

// Result is the outcome for one documentation file.
type Result struct {
	Path    string
	OutPath string
	Status  Status
	Summary Summary
	Err     error
}

// Writer persists one generated module. A nil writer turns the run into a
// dry run: everything is computed, nothing is written.
type Writer interface {
	Write(path string, data []byte) error
}

// Runner executes the pipeline. Notify, when set, observes each result as it
// completes; results may arrive in any order.
type Runner struct {
	Writer Writer
	Notify func(Result)
}

// Run processes every file and returns one result per input, in input
// order. Per-file failures never stop the remaining files.
func (r *Runner) Run(ctx context.Context, files []File, opts Options) []Result {
	results := make([]Result, len(files))
	grp, _ := errgroup.WithContext(ctx)
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	grp.SetLimit(limit)
	for i, f := range files {
		i, f := i, f
		grp.Go(func() error {
			results[i] = r.runFile(f, opts)
			if r.Notify != nil {
				r.Notify(results[i])
			}
			return nil
		})
	}
	_ = grp.Wait()
	return results
}

func (r *Runner) runFile(f File, opts Options) Result {
	examples, err := extract.Parse(f.Lines, f.Path)
	if err != nil {
		return Result{Path: f.Path, Status: StatusFailed, Err: err}
	}
	if len(examples) == 0 {
		return Result{Path: f.Path, Status: StatusSkipped}
	}

	spec := classify.Analyze(ast.Group(examples), opts.Namespace)
	src, err := gen.Render(spec)
	if err != nil {
		return Result{Path: f.Path, Status: StatusFailed, Err: err}
	}

	res := Result{
		Path:    f.Path,
		OutPath: filepath.Join(opts.OutDir, spec.FileName),
		Status:  StatusGenerated,
		Summary: summarize(spec),
	}
	if r.Writer != nil {
		if err := r.Writer.Write(res.OutPath, src); err != nil {
			res.Status = StatusFailed
			res.Err = err
		}
	}
	return res
}

func summarize(spec classify.ComponentSpec) Summary {
	s := Summary{
		Module:    spec.ModuleName,
		BaseClass: spec.BaseClass,
	}
	for _, dim := range classify.Dimensions {
		if len(spec.Variants[dim]) > 0 {
			s.Dimensions = append(s.Dimensions, string(dim))
		}
	}
	for _, tg := range spec.TitleGroups {
		s.Examples += len(gen.Build(spec.Name, tg))
	}
	return s
}

// Totals aggregates results for the run report.
type Totals struct {
	Generated int
	Skipped   int
	Failed    int
}

// Tally counts results by status.
func Tally(results []Result) Totals {
	var t Totals
	for _, r := range results {
		switch r.Status {
		case StatusGenerated:
			t.Generated++
		case StatusSkipped:
			t.Skipped++
		case StatusFailed:
			t.Failed++
		}
	}
	return t
}
