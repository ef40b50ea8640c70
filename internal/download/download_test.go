package download

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func makeZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func makeTarGz(t *testing.T, files map[string]string, modes map[string]int64) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	for name, content := range files {
		mode := int64(0o644)
		if m, ok := modes[name]; ok {
			mode = m
		}
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name: name,
			Mode: mode,
			Size: int64(len(content)),
		}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func serve(t *testing.T, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDownloadWithoutExtract(t *testing.T) {
	srv := serve(t, []byte("raw artifact bytes"))
	dest := t.TempDir()

	require.NoError(t, Client{}.Download(srv.URL, "artifact.bin", dest, false, false))

	data, err := os.ReadFile(filepath.Join(dest, "artifact.bin"))
	require.NoError(t, err)
	require.Equal(t, "raw artifact bytes", string(data))
}

func TestDownloadExtractsZipAndRemovesArchive(t *testing.T) {
	srv := serve(t, makeZip(t, map[string]string{
		"bin/rustc": "compiler",
		"lib/std":   "stdlib",
	}))
	dest := t.TempDir()

	require.NoError(t, Client{}.Download(srv.URL, "rust.zip", dest, true, false))

	data, err := os.ReadFile(filepath.Join(dest, "bin", "rustc"))
	require.NoError(t, err)
	require.Equal(t, "compiler", string(data))
	_, err = os.Stat(filepath.Join(dest, "rust.zip"))
	require.True(t, os.IsNotExist(err))
}

func TestDownloadFlattensSingleTopDir(t *testing.T) {
	// Windows bundles wrap everything in one versioned directory.
	srv := serve(t, makeZip(t, map[string]string{
		"rust-1.65.0.1/bin/rustc.exe": "compiler",
		"rust-1.65.0.1/lib/std":       "stdlib",
	}))
	dest := t.TempDir()

	require.NoError(t, Client{}.Download(srv.URL, "rust.zip", dest, true, true))

	_, err := os.Stat(filepath.Join(dest, "bin", "rustc.exe"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dest, "rust-1.65.0.1"))
	require.True(t, os.IsNotExist(err))
}

func TestDownloadHTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	err := Client{}.Download(srv.URL, "rust.zip", t.TempDir(), true, false)
	require.Error(t, err)
}

func TestExtractTarGzPreservesMode(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "rust.tar.gz")
	require.NoError(t, os.WriteFile(archive, makeTarGz(t,
		map[string]string{"rust-nightly/install.sh": "#!/bin/sh\n"},
		map[string]int64{"rust-nightly/install.sh": 0o755}), 0o644))
	dest := t.TempDir()

	require.NoError(t, ExtractArchive(archive, dest))

	info, err := os.Stat(filepath.Join(dest, "rust-nightly", "install.sh"))
	require.NoError(t, err)
	require.NotZero(t, info.Mode()&0o111, "install script must stay executable")
}

func TestExtractUnsupportedFormat(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "rust.rar")
	require.NoError(t, os.WriteFile(archive, []byte("x"), 0o644))

	require.Error(t, ExtractArchive(archive, t.TempDir()))
}
