package toolchain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"xtensup/internal/config"
)

func populate(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		sub := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(sub, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(sub, "marker"), []byte("x"), 0o644))
	}
}

func TestSweepPreservesSiblings(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, "bin", "lib", "xtensa-esp32-elf", "riscv32-esp-elf", "xtensa-esp32-elf-clang")

	require.NoError(t, Sweep(dir, config.DefaultSiblingExclusions))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.ElementsMatch(t, []string{"xtensa-esp32-elf", "riscv32-esp-elf", "xtensa-esp32-elf-clang"}, names)
}

func TestSweepRemovesDirWhenNothingSurvives(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "esp")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	populate(t, dir, "bin", "lib", "share")

	require.NoError(t, Sweep(dir, config.DefaultSiblingExclusions))

	_, err := os.Stat(dir)
	require.True(t, os.IsNotExist(err))
}

func TestSweepMissingDirIsNoOp(t *testing.T) {
	require.NoError(t, Sweep(filepath.Join(t.TempDir(), "absent"), nil))
}

func TestSweepFragmentMatchIsSubstring(t *testing.T) {
	dir := t.TempDir()
	// Versioned sibling directories still carry the fragment in their name.
	populate(t, dir, "xtensa-esp32-elf-gcc8_4_0-esp-2021r2", "bin")

	require.NoError(t, Sweep(dir, []string{"xtensa-esp32-elf"}))

	_, err := os.Stat(filepath.Join(dir, "xtensa-esp32-elf-gcc8_4_0-esp-2021r2"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "bin"))
	require.True(t, os.IsNotExist(err))
}
