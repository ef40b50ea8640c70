package toolchain

import (
	"errors"
	"os/exec"

	"xtensup/internal/logger"
)

// CheckRustup verifies the host rustup installation. The toolchain installs
// under rustup's toolchains directory and is selected through rustup's
// "+NAME" syntax, so a working rustup must exist before anything else runs.
// A missing binary maps to ErrMissingRustup; any other probe failure maps to
// *RustupDetectionError.
func CheckRustup() error {
	return checkRustup(execRunner{})
}

func checkRustup(r Runner) error {
	logger.Info("[INFO] Checking Rust installation\n")
	if _, err := r.Run("rustup", "--version"); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return ErrMissingRustup
		}
		return &RustupDetectionError{Detail: err.Error()}
	}
	return nil
}
