package config

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
)

// Environment variables honored for home-directory overrides. They mirror
// the variables cargo and rustup themselves use, so xtensup lands the
// toolchain wherever the rest of the Rust installation lives.
const (
	CargoHomeEnv  = "CARGO_HOME"
	RustupHomeEnv = "RUSTUP_HOME"

	// SkipVersionParseEnv, when present (any value), disables version grammar
	// validation and catalog lookup entirely: the requested version string is
	// treated as already resolved. Escape hatch for testing and automation.
	SkipVersionParseEnv = "XTENSUP_SKIP_VERSION_PARSE"
)

// CargoHome returns the cargo home directory: $CARGO_HOME if set, otherwise
// ~/.cargo.
func CargoHome() (string, error) {
	return homeWithOverride(CargoHomeEnv, ".cargo")
}

// RustupHome returns the rustup home directory: $RUSTUP_HOME if set,
// otherwise ~/.rustup.
func RustupHome() (string, error) {
	return homeWithOverride(RustupHomeEnv, ".rustup")
}

// DefaultToolchainDir returns the directory a toolchain with the given name
// installs into: {RustupHome}/toolchains/{name}.
func DefaultToolchainDir(name string) (string, error) {
	rustupHome, err := RustupHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(rustupHome, "toolchains", name), nil
}

// SkipVersionParse reports whether grammar validation is disabled via the
// environment.
func SkipVersionParse() bool {
	_, ok := os.LookupEnv(SkipVersionParseEnv)
	return ok
}

func homeWithOverride(envVar, dotdir string) (string, error) {
	if v := os.Getenv(envVar); v != "" {
		return v, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, dotdir), nil
}
