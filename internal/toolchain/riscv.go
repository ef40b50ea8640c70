package toolchain

import (
	"xtensup/internal/logger"
)

// The RISC-V espressif chips build with the upstream nightly compiler plus
// bare-metal targets rather than the forked Xtensa toolchain; rustup manages
// both directly.
var riscvTargets = []string{
	"riscv32imc-unknown-none-elf",
	"riscv32imac-unknown-none-elf",
}

// RiscvTarget installs and removes the bare-metal RISC-V targets for a
// nightly toolchain through rustup.
type RiscvTarget struct {
	// Nightly is the rustup toolchain the targets attach to, e.g. "nightly".
	Nightly string
	Runner  Runner
}

// NewRiscvTarget builds a RiscvTarget wired to the real subprocess runner.
func NewRiscvTarget(nightly string) *RiscvTarget {
	return &RiscvTarget{Nightly: nightly, Runner: execRunner{}}
}

// Install makes rustup install the nightly toolchain (minimal profile, with
// rust-src) and the RISC-V targets.
func (t *RiscvTarget) Install() error {
	logger.Info("[INFO] Installing RISC-V targets (%v) for '%s' toolchain\n", riscvTargets, t.Nightly)
	args := []string{
		"toolchain", "install", t.Nightly,
		"--profile", "minimal",
		"--component", "rust-src",
		"--target",
	}
	args = append(args, riscvTargets...)
	if _, err := t.Runner.Run("rustup", args...); err != nil {
		return &RiscvInstallError{Nightly: t.Nightly}
	}
	return nil
}

// Uninstall removes the RISC-V targets from the nightly toolchain.
func (t *RiscvTarget) Uninstall() error {
	logger.Info("[INFO] Uninstalling RISC-V targets\n")
	args := []string{"target", "remove", "--toolchain", t.Nightly}
	args = append(args, riscvTargets...)
	if _, err := t.Runner.Run("rustup", args...); err != nil {
		return ErrRiscvUninstall
	}
	return nil
}
