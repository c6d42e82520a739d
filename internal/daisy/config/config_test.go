package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingDefaultPathUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultPath), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), true)
	assert.Error(t, err)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
source:
  docs: vendor/daisyui/docs
out: ui
package: widgets
components:
  - button
  - badge
`), 0o644))

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "vendor/daisyui/docs", cfg.Source.Docs)
	assert.Equal(t, "ui", cfg.Out)
	assert.Equal(t, "widgets", cfg.Package)
	assert.Equal(t, []string{"button", "badge"}, cfg.Components)
	// Untouched keys keep their defaults.
	assert.Equal(t, Default().Source.URL, cfg.Source.URL)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("outt: typo\n"), 0o644))
	_, err := Load(path, true)
	assert.Error(t, err)
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
