// Package source fetches the documentation repository and locates the
// component documentation files inside it.
package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrMissingDocsDir means the documentation directory does not exist. It is
// fatal to the whole run.
var ErrMissingDocsDir = errors.New("documentation directory does not exist")

// Fetch clones the documentation repository at ref into dir, or fast-forward
// pulls when dir already holds a clone.
func Fetch(ctx context.Context, url, ref, dir string) error {
	repo, err := git.PlainOpen(dir)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		_, err = git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
			URL:           url,
			ReferenceName: plumbing.NewBranchReferenceName(ref),
			SingleBranch:  true,
			Depth:         1,
		})
		if err != nil {
			return fmt.Errorf("clone %s: %w", url, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", dir, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return err
	}
	err = wt.PullContext(ctx, &git.PullOptions{
		ReferenceName: plumbing.NewBranchReferenceName(ref),
		SingleBranch:  true,
	})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	return err
}

// DocFiles walks root and returns the markdown documentation files, sorted.
// When components is non-empty, only files whose parent directory matches
// one of the names are kept. A missing root yields ErrMissingDocsDir.
func DocFiles(root string, components []string) ([]string, error) {
	if st, err := os.Stat(root); err != nil || !st.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrMissingDocsDir, root)
	}
	want := map[string]bool{}
	for _, c := range components {
		want[strings.ToLower(c)] = true
	}
	var out []string
	err := filepath.WalkDir(root, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() {
			if strings.HasPrefix(de.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(de.Name(), ".md") {
			return nil
		}
		if len(want) > 0 && !want[strings.ToLower(filepath.Base(filepath.Dir(path)))] {
			return nil
		}
		out = append(out, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}
