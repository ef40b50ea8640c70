package main

import (
	"xtensup/cmd" // CLI commands and execution logic
)

// main is the program entry point. It delegates to cmd.Execute() which handles
// command line argument parsing and dispatch.
//
// The xtensup project installs and manages the Xtensa Rust compiler toolchain,
// the esp-rs fork of rustc published as versioned release artifacts:
//   - Resolves a requested version (full "1.65.0.1" form, abbreviated "1.65.0"
//     form, or the latest release) against the published release catalog
//   - Downloads the matching artifact for the host platform and installs it
//     into the rustup toolchains directory, either by running the bundled
//     install script (unix) or by extracting the combined archive in place
//     (windows)
//   - Uninstalls the toolchain from that directory without disturbing the
//     GCC and clang components that other tools install alongside it
//
// Error handling strategy:
//   - A failed install never leaves a half-written toolchain directory behind;
//     the destination is swept before the error is reported
//   - Fatal errors in command execution cause a non-zero exit status
func main() {
	cmd.Execute()
}
