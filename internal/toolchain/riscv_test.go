package toolchain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRiscvTargetInstall(t *testing.T) {
	r := &fakeRunner{}
	target := &RiscvTarget{Nightly: "nightly", Runner: r}

	require.NoError(t, target.Install())
	require.Len(t, r.calls, 1)
	call := strings.Join(r.calls[0], " ")
	require.Contains(t, call, "rustup toolchain install nightly")
	require.Contains(t, call, "--profile minimal")
	require.Contains(t, call, "--component rust-src")
	require.Contains(t, call, "riscv32imc-unknown-none-elf riscv32imac-unknown-none-elf")
}

func TestRiscvTargetInstallFailure(t *testing.T) {
	r := &fakeRunner{behave: func(string, []string) ([]byte, error) {
		return nil, errors.New("exit status 1")
	}}
	target := &RiscvTarget{Nightly: "nightly", Runner: r}

	err := target.Install()
	var installErr *RiscvInstallError
	require.ErrorAs(t, err, &installErr)
	require.Equal(t, "nightly", installErr.Nightly)
}

func TestRiscvTargetUninstall(t *testing.T) {
	r := &fakeRunner{}
	target := &RiscvTarget{Nightly: "nightly", Runner: r}

	require.NoError(t, target.Uninstall())
	require.Len(t, r.calls, 1)
	call := strings.Join(r.calls[0], " ")
	require.Contains(t, call, "rustup target remove --toolchain nightly")

	r.behave = func(string, []string) ([]byte, error) { return nil, errors.New("exit status 1") }
	require.ErrorIs(t, target.Uninstall(), ErrRiscvUninstall)
}
