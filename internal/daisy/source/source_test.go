package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, root string, parts ...string) string {
	t.Helper()
	path := filepath.Join(append([]string{root}, parts...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("### ~X\n"), 0o644))
	return path
}

func TestDocFilesMissingRoot(t *testing.T) {
	_, err := DocFiles(filepath.Join(t.TempDir(), "nope"), nil)
	assert.ErrorIs(t, err, ErrMissingDocsDir)
}

func TestDocFilesSortedAndFiltered(t *testing.T) {
	root := t.TempDir()
	badge := writeDoc(t, root, "badge", "badge.md")
	button := writeDoc(t, root, "button", "button.md")
	writeDoc(t, root, "button", "notes.txt")
	writeDoc(t, root, ".hidden", "skip.md")

	all, err := DocFiles(root, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{badge, button}, all)

	only, err := DocFiles(root, []string{"Button"})
	require.NoError(t, err)
	assert.Equal(t, []string{button}, only)
}
