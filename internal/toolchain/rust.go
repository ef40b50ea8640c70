package toolchain

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"xtensup/internal/download"
	"xtensup/internal/logger"
)

// Manager drives the install/uninstall lifecycle of the Xtensa Rust
// toolchain named by its Descriptor. It is the only component that mutates
// the destination directory, and a single Manager operation runs to
// completion before another may begin; concurrent operations against the
// same destination are not supported.
type Manager struct {
	Descriptor Descriptor
	// Downloader fetches artifacts; Runner invokes install scripts and the
	// installed compiler. Both default to the real implementations in
	// NewManager and are fields so tests can substitute them.
	Downloader Downloader
	Runner     Runner
	// Exclusions lists sibling-component name fragments the uninstall sweep
	// preserves.
	Exclusions []string
}

// NewManager builds a Manager wired to the real downloader and subprocess
// runner.
func NewManager(d Descriptor, exclusions []string) *Manager {
	return &Manager{
		Descriptor: d,
		Downloader: download.Client{},
		Runner:     execRunner{},
		Exclusions: exclusions,
	}
}

// Install makes the destination hold exactly the described toolchain
// version. If a matching installation is already present the call is a
// no-op; a stale or unverifiable installation is fully removed first, never
// installed over. On any failure the destination is swept before the error
// returns, so no attempt leaves a partially-written toolchain behind.
func (m *Manager) Install() error {
	d := m.Descriptor
	// The on-disk state is probed fresh on every attempt, never cached.
	if _, err := os.Stat(d.Destination); err == nil {
		if m.installedVersionMatches() {
			logger.Warn("[WARN] Previous installation of Xtensa Rust %s exists in: '%s'. Reusing this installation.\n",
				d.Version, d.Destination)
			return nil
		}
		logger.Info("[INFO] Removing mismatched toolchain installation from %s\n", d.Destination)
		if err := m.Uninstall(); err != nil {
			return err
		}
	}

	logger.Info("[INFO] Installing Xtensa Rust %s toolchain\n", d.Version)
	return m.strategy().install(m)
}

// Uninstall removes the toolchain from the destination, preserving sibling
// components.
func (m *Manager) Uninstall() error {
	logger.Info("[INFO] Uninstalling Xtensa Rust toolchain\n")
	return Sweep(m.Descriptor.Destination, m.Exclusions)
}

// installedVersionMatches probes the installed compiler through rustup's
// toolchain selection ("rustc +NAME --version") and reports whether it
// announces the descriptor's version. Probe failures count as a mismatch.
func (m *Manager) installedVersionMatches() bool {
	d := m.Descriptor
	out, err := m.Runner.Run("rustc", "+"+d.ToolchainName(), "--version")
	if err != nil {
		logger.Debug("[DEBUG] Installed compiler probe failed: %v\n", err)
		return false
	}
	return strings.Contains(string(out), d.Version)
}

// installStrategy is the platform-selected install behavior, chosen once
// from the host triple.
type installStrategy interface {
	install(m *Manager) error
}

func (m *Manager) strategy() installStrategy {
	if m.Descriptor.Triple.IsWindows() {
		// Windows artifacts carry no install script; extraction in place is
		// the whole install.
		return archiveOnly{}
	}
	return scriptBased{}
}

// scriptBased installs platforms whose artifacts bundle an install script:
// the 'rust' component first, then the separate 'rust-src' component, each
// downloaded to its own ephemeral directory and installed by its bundled
// script.
type scriptBased struct{}

func (scriptBased) install(m *Manager) error {
	d := m.Descriptor
	ext := d.Triple.ArtifactExtension()

	// 'rust' component. The ephemeral extraction directory is created fresh
	// per attempt and left for the OS to reclaim; cleanup is best-effort and
	// not retried here.
	tmpDir, err := os.MkdirTemp("", "xtensup-rust-")
	if err != nil {
		return m.cleanupOnFailure(err)
	}
	if err := m.Downloader.Download(d.DistURL, "rust."+ext, tmpDir, true, false); err != nil {
		return m.cleanupOnFailure(err)
	}
	logger.Info("[INFO] Installing 'rust' component for Xtensa Rust toolchain\n")
	script := filepath.Join(tmpDir, fmt.Sprintf("rust-nightly-%s", d.Triple), "install.sh")
	if err := m.runInstallScript(script,
		"--without=rust-docs-json-preview,rust-docs"); err != nil {
		return m.cleanupOnFailure(ErrMainComponentInstall)
	}

	// 'rust-src' component, only attempted after 'rust' succeeded.
	srcTmpDir, err := os.MkdirTemp("", "xtensup-rust-src-")
	if err != nil {
		return m.cleanupOnFailure(err)
	}
	if err := m.Downloader.Download(d.SrcDistURL, "rust-src."+ext, srcTmpDir, true, false); err != nil {
		return m.cleanupOnFailure(err)
	}
	logger.Info("[INFO] Installing 'rust-src' component for Xtensa Rust toolchain\n")
	script = filepath.Join(srcTmpDir, "rust-src-nightly", "install.sh")
	if err := m.runInstallScript(script); err != nil {
		return m.cleanupOnFailure(ErrSourceComponentInstall)
	}
	return nil
}

// runInstallScript invokes a bundled install.sh with the destination and the
// standard arguments, plus any extras, suppressing its output and checking
// its exit status.
func (m *Manager) runInstallScript(script string, extraArgs ...string) error {
	args := []string{"bash", script,
		"--destdir=" + m.Descriptor.Destination,
		"--prefix=",
		"--disable-ldconfig",
	}
	args = append(args, extraArgs...)
	logger.Debug("[DEBUG] Running command: /usr/bin/env %s\n", strings.Join(args, " "))
	_, err := m.Runner.Run("/usr/bin/env", args...)
	return err
}

// archiveOnly installs platforms lacking a bundled install script by
// extracting the single combined bundle directly into the destination.
type archiveOnly struct{}

func (archiveOnly) install(m *Manager) error {
	d := m.Descriptor
	if err := m.Downloader.Download(d.DistURL, "rust.zip", d.Destination, true, true); err != nil {
		return m.cleanupOnFailure(err)
	}
	return nil
}

// cleanupOnFailure sweeps the destination so a failed attempt never leaves a
// partially-populated directory, then hands the causing error back.
func (m *Manager) cleanupOnFailure(cause error) error {
	if err := Sweep(m.Descriptor.Destination, m.Exclusions); err != nil {
		logger.Error("[ERROR] Cleanup after failed install also failed: %v\n", err)
	}
	return cause
}
