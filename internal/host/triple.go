package host

import (
	"fmt"
	"runtime"
)

// Triple identifies the host platform as an architecture-OS-environment
// tuple. The set is closed: these are the platforms the Xtensa Rust
// toolchain publishes artifacts for.
type Triple string

const (
	X8664LinuxGnu    Triple = "x86_64-unknown-linux-gnu"
	Aarch64LinuxGnu  Triple = "aarch64-unknown-linux-gnu"
	X8664AppleDarwin Triple = "x86_64-apple-darwin"
	Aarch64Darwin    Triple = "aarch64-apple-darwin"
	X8664WindowsMsvc Triple = "x86_64-pc-windows-msvc"
	X8664WindowsGnu  Triple = "x86_64-pc-windows-gnu"
)

// Detect maps the running OS/architecture onto a Triple.
func Detect() (Triple, error) {
	return fromOSArch(runtime.GOOS, runtime.GOARCH)
}

func fromOSArch(goos, goarch string) (Triple, error) {
	switch goos {
	case "linux":
		switch goarch {
		case "amd64":
			return X8664LinuxGnu, nil
		case "arm64":
			return Aarch64LinuxGnu, nil
		}
	case "darwin":
		switch goarch {
		case "amd64":
			return X8664AppleDarwin, nil
		case "arm64":
			return Aarch64Darwin, nil
		}
	case "windows":
		if goarch == "amd64" {
			return X8664WindowsMsvc, nil
		}
	}
	return "", fmt.Errorf("unsupported host platform %s/%s", goos, goarch)
}

// Parse validates a user-supplied triple string, for overriding detection.
func Parse(s string) (Triple, error) {
	switch t := Triple(s); t {
	case X8664LinuxGnu, Aarch64LinuxGnu, X8664AppleDarwin, Aarch64Darwin,
		X8664WindowsMsvc, X8664WindowsGnu:
		return t, nil
	}
	return "", fmt.Errorf("unknown host triple %q", s)
}

// IsWindows reports whether the triple belongs to the Windows family.
// Windows artifacts ship as zip bundles without a bundled install script.
func (t Triple) IsWindows() bool {
	return t == X8664WindowsMsvc || t == X8664WindowsGnu
}

// ArtifactExtension returns the archive extension the release artifacts use
// for this triple: zip on Windows, xz-compressed tar everywhere else.
func (t Triple) ArtifactExtension() string {
	if t.IsWindows() {
		return "zip"
	}
	return "tar.xz"
}

func (t Triple) String() string {
	return string(t)
}
