package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"xtensup/internal/logger"
)

// Default release locations for the Xtensa Rust toolchain distribution.
const (
	// DefaultReleaseBaseURL is the root under which versioned artifacts are
	// published; the descriptor appends "/v{version}/{file}".
	DefaultReleaseBaseURL = "https://github.com/esp-rs/rust-build/releases/download"
	// DefaultReleasesAPIURL lists all published releases.
	DefaultReleasesAPIURL = "https://api.github.com/repos/esp-rs/rust-build/releases"
	// DefaultLatestAPIURL points at the most recent release.
	DefaultLatestAPIURL = "https://api.github.com/repos/esp-rs/rust-build/releases/latest"
)

// DefaultToolchainName is the rustup toolchain name the distribution is
// installed under ("rustc +esp ..." selects it).
const DefaultToolchainName = "esp"

// DefaultSiblingExclusions names directory fragments belonging to the GCC
// and clang components that other tools install into the same toolchain
// directory. The uninstall sweep must leave these untouched. The clang
// fragment is listed even though it contains an excluded GCC fragment as a
// prefix, so the list stays meaningful if the GCC entries ever change.
var DefaultSiblingExclusions = []string{
	"riscv32-esp-elf",
	"xtensa-esp32-elf",
	"xtensa-esp32s2-elf",
	"xtensa-esp32s3-elf",
	"xtensa-esp32-elf-clang",
}

// Settings holds the tunable configuration, loadable from an optional YAML
// file. Every field has a built-in default; the file only needs to name the
// fields it overrides.
type Settings struct {
	// ReleaseBaseURL is the root URL artifacts are downloaded from.
	ReleaseBaseURL string `yaml:"release_base_url"`
	// ReleasesAPIURL is the catalog endpoint listing all releases.
	ReleasesAPIURL string `yaml:"releases_api_url"`
	// LatestAPIURL is the catalog endpoint for the newest release.
	LatestAPIURL string `yaml:"latest_api_url"`
	// ToolchainName is the rustup toolchain name to install under.
	ToolchainName string `yaml:"toolchain_name"`
	// SiblingExclusions lists name fragments of sibling components the
	// uninstall sweep must preserve.
	SiblingExclusions []string `yaml:"sibling_exclusions"`
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		ReleaseBaseURL:    DefaultReleaseBaseURL,
		ReleasesAPIURL:    DefaultReleasesAPIURL,
		LatestAPIURL:      DefaultLatestAPIURL,
		ToolchainName:     DefaultToolchainName,
		SiblingExclusions: append([]string(nil), DefaultSiblingExclusions...),
	}
}

// Load reads the settings file at path and merges it over the defaults.
// An empty path, or a missing file, yields the defaults; a present but
// unparsable file is an error.
func Load(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("[DEBUG] No settings file at %s, using defaults\n", path)
			return s, nil
		}
		return s, err
	}

	var file Settings
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return s, err
	}

	// Merge: only fields the file actually set override the defaults.
	if file.ReleaseBaseURL != "" {
		s.ReleaseBaseURL = file.ReleaseBaseURL
	}
	if file.ReleasesAPIURL != "" {
		s.ReleasesAPIURL = file.ReleasesAPIURL
	}
	if file.LatestAPIURL != "" {
		s.LatestAPIURL = file.LatestAPIURL
	}
	if file.ToolchainName != "" {
		s.ToolchainName = file.ToolchainName
	}
	if file.SiblingExclusions != nil {
		s.SiblingExclusions = file.SiblingExclusions
	}
	logger.Debug("[DEBUG] Loaded settings from %s\n", path)
	return s, nil
}
