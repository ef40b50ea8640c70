package toolchain

import (
	"fmt"
	"path/filepath"

	"xtensup/internal/host"
)

// Descriptor holds everything derived about one install attempt: the
// resolved version, the host platform, the destination directory, and the
// artifact names and URLs composed from them. It is built once per attempt
// and never mutated afterwards.
type Descriptor struct {
	// Version is the resolved four-field toolchain version.
	Version string
	// Triple is the host platform the artifacts target.
	Triple host.Triple
	// Destination is the directory the toolchain installs into.
	Destination string
	// DistFile and DistURL name the main toolchain artifact.
	DistFile string
	DistURL  string
	// SrcDistFile and SrcDistURL name the separate rust-src artifact.
	// Empty on Windows triples, whose single bundle already includes it.
	SrcDistFile string
	SrcDistURL  string
}

// NewDescriptor derives the artifact names and download URLs for installing
// the given toolchain version on the given platform. Pure string
// composition; no I/O.
func NewDescriptor(version string, triple host.Triple, destination, baseURL string) Descriptor {
	ext := triple.ArtifactExtension()
	distFile := fmt.Sprintf("rust-%s-%s.%s", version, triple, ext)

	d := Descriptor{
		Version:     version,
		Triple:      triple,
		Destination: destination,
		DistFile:    distFile,
		DistURL:     fmt.Sprintf("%s/v%s/%s", baseURL, version, distFile),
	}
	if !triple.IsWindows() {
		srcFile := fmt.Sprintf("rust-src-%s.%s", version, ext)
		d.SrcDistFile = srcFile
		d.SrcDistURL = fmt.Sprintf("%s/v%s/%s", baseURL, version, srcFile)
	}
	return d
}

// ToolchainName is the rustup toolchain name implied by the destination
// directory; "rustc +NAME --version" probes the installed compiler.
func (d Descriptor) ToolchainName() string {
	return filepath.Base(d.Destination)
}
