package toolchain

import (
	"bytes"
	"os/exec"
)

// Runner invokes external programs. Output is captured rather than shown on
// the terminal; the returned error is non-nil when the program cannot be
// started or exits non-zero, and exit status is always checked through it.
type Runner interface {
	Run(name string, args ...string) ([]byte, error)
}

// Downloader fetches a release artifact into a directory, optionally
// extracting it. See download.Client for the real implementation; the
// interface exists so install tests can substitute failures without a
// network.
type Downloader interface {
	Download(url, name, destDir string, extract, flattenTopDir bool) error
}

// execRunner is the real Runner, backed by os/exec. Invocations block until
// the program exits.
type execRunner struct{}

func (execRunner) Run(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.Bytes(), err
}
