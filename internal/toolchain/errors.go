package toolchain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the install lifecycle. Each failed install step sweeps
// the destination before one of these is returned, so callers can report the
// failure without worrying about partial state on disk.
var (
	// ErrMainComponentInstall means the 'rust' component's install script
	// exited non-zero.
	ErrMainComponentInstall = errors.New("failed to install the 'rust' component of the Xtensa Rust toolchain")
	// ErrSourceComponentInstall means the 'rust-src' component's install
	// script exited non-zero.
	ErrSourceComponentInstall = errors.New("failed to install the 'rust-src' component of the Xtensa Rust toolchain")
	// ErrMissingRustup means no rustup binary was found on the system.
	ErrMissingRustup = errors.New("rustup is not installed; install it from https://rustup.rs")
	// ErrRiscvUninstall means removing the RISC-V targets through rustup
	// failed.
	ErrRiscvUninstall = errors.New("failed to uninstall the RISC-V targets")
)

// UninstallError reports a filesystem removal failure while sweeping a
// toolchain directory.
type UninstallError struct {
	Path string
	Err  error
}

func (e *UninstallError) Error() string {
	return fmt.Sprintf("failed to uninstall toolchain entry %s: %v", e.Path, e.Err)
}

func (e *UninstallError) Unwrap() error { return e.Err }

// RustupDetectionError reports that probing the rustup binary failed for a
// reason other than the binary being absent.
type RustupDetectionError struct {
	Detail string
}

func (e *RustupDetectionError) Error() string {
	return fmt.Sprintf("failed to detect rustup: %s", e.Detail)
}

// RiscvInstallError reports a failure installing the RISC-V targets for a
// nightly toolchain.
type RiscvInstallError struct {
	Nightly string
}

func (e *RiscvInstallError) Error() string {
	return fmt.Sprintf("failed to install the RISC-V targets for the '%s' toolchain", e.Nightly)
}
