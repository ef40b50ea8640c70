package config

import (
	"os"
	"path/filepath"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/require"
)

func TestCargoHome(t *testing.T) {
	// No CARGO_HOME set: falls back to ~/.cargo.
	t.Setenv(CargoHomeEnv, "")
	home, err := homedir.Dir()
	require.NoError(t, err)
	got, err := CargoHome()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".cargo"), got)

	// CARGO_HOME set: honored verbatim.
	override := t.TempDir()
	t.Setenv(CargoHomeEnv, override)
	got, err = CargoHome()
	require.NoError(t, err)
	require.Equal(t, override, got)
}

func TestRustupHome(t *testing.T) {
	t.Setenv(RustupHomeEnv, "")
	home, err := homedir.Dir()
	require.NoError(t, err)
	got, err := RustupHome()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".rustup"), got)

	override := t.TempDir()
	t.Setenv(RustupHomeEnv, override)
	got, err = RustupHome()
	require.NoError(t, err)
	require.Equal(t, override, got)
}

func TestDefaultToolchainDir(t *testing.T) {
	rustupHome := t.TempDir()
	t.Setenv(RustupHomeEnv, rustupHome)

	dir, err := DefaultToolchainDir("esp")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(rustupHome, "toolchains", "esp"), dir)
}

func TestSkipVersionParse(t *testing.T) {
	t.Setenv(SkipVersionParseEnv, "1")
	require.True(t, SkipVersionParse())

	// Presence is what matters, not the value.
	t.Setenv(SkipVersionParseEnv, "")
	require.True(t, SkipVersionParse())

	require.NoError(t, os.Unsetenv(SkipVersionParseEnv))
	require.False(t, SkipVersionParse())
}
