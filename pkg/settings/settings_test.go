package settings_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-dev/lattice/pkg/settings"
)

func TestLoadDefaults(t *testing.T) {
	loader := settings.NewLoader()
	got, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settings.Default(), got)
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	loader := settings.NewLoader(settings.WithFile(filepath.Join(t.TempDir(), "nope.yaml")))
	got, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settings.Default(), got)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vim_mode: true\nfont_size: 16\n"), 0o644))

	loader := settings.NewLoader(settings.WithFile(path))
	got, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.True(t, got.VimMode)
	assert.Equal(t, 16, got.FontSize)
	// Untouched keys keep their defaults.
	assert.Equal(t, settings.Default().FontFamily, got.FontFamily)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("font_size: 16\n"), 0o644))
	t.Setenv("LATTICE_FONT_SIZE", "18")

	loader := settings.NewLoader(settings.WithFile(path))
	got, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 18, got.FontSize)
}

func TestLoadBadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("font_size: [unclosed"), 0o644))

	loader := settings.NewLoader(settings.WithFile(path))
	_, err := loader.Load(context.Background())
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	want := settings.Default()
	want.Zen = true
	want.FontSize = 13
	require.NoError(t, settings.Save(path, want))

	loader := settings.NewLoader(settings.WithFile(path))
	got, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
