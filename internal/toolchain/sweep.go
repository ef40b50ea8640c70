package toolchain

import (
	"os"
	"path/filepath"
	"strings"

	"xtensup/internal/logger"
)

// Sweep removes the Xtensa Rust toolchain's entries from dir. The directory
// is a shared namespace: GCC and clang components installed by other tools
// live alongside the toolchain, so children whose names contain any of the
// exclusion fragments are left untouched and everything else is removed
// recursively. When nothing survives the sweep the directory itself is
// removed, leaving the destination fully absent.
//
// Sweeping a directory that does not exist is a no-op success.
func Sweep(dir string, exclusions []string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("[DEBUG] Nothing to sweep at %s\n", dir)
			return nil
		}
		return &UninstallError{Path: dir, Err: err}
	}

	kept := 0
	for _, entry := range entries {
		if matchesAny(entry.Name(), exclusions) {
			logger.Debug("[DEBUG] Preserving sibling component: %s\n", entry.Name())
			kept++
			continue
		}
		path := filepath.Join(dir, entry.Name())
		logger.Debug("[DEBUG] Removing %s\n", path)
		if err := os.RemoveAll(path); err != nil {
			return &UninstallError{Path: path, Err: err}
		}
	}

	// Only this toolchain lived here; take the directory with it.
	if kept == 0 {
		if err := os.Remove(dir); err != nil && !os.IsNotExist(err) {
			return &UninstallError{Path: dir, Err: err}
		}
	}
	return nil
}

func matchesAny(name string, fragments []string) bool {
	for _, fragment := range fragments {
		if strings.Contains(name, fragment) {
			return true
		}
	}
	return false
}
