package download

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"xtensup/internal/logger"
)

// Client downloads release artifacts over HTTP. The zero value is ready to
// use.
type Client struct{}

// Download fetches the content at url and saves it as name inside destDir,
// creating the directory if needed. When extract is true the saved file is
// treated as an archive, unpacked into destDir, and the archive itself is
// removed afterwards. When flattenTopDir is also true and the archive
// unpacked to a single top-level directory, that directory's contents are
// moved up into destDir (release bundles often wrap everything in one
// versioned folder).
//
// The download completes (or fails) before any extraction begins; there is
// no streaming overlap between transport and filesystem mutation.
func (Client) Download(url, name, destDir string, extract, flattenTopDir bool) error {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", destDir, err)
	}

	archivePath := filepath.Join(destDir, name)
	logger.Info("[INFO] Downloading %s\n", url)
	if err := fetch(url, archivePath); err != nil {
		return err
	}

	if !extract {
		return nil
	}

	logger.Debug("[DEBUG] Extracting %s to %s\n", archivePath, destDir)
	if err := ExtractArchive(archivePath, destDir); err != nil {
		return err
	}
	if err := os.Remove(archivePath); err != nil {
		return fmt.Errorf("failed to remove archive %s: %w", archivePath, err)
	}
	if flattenTopDir {
		return flattenSingleDir(destDir)
	}
	return nil
}

// fetch performs the HTTP GET and writes the body to destPath.
func fetch(url, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download of %s failed: HTTP status %d", url, resp.StatusCode)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close destination file: %v\n", cerr)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write response to %s: %w", destPath, err)
	}
	logger.Debug("[DEBUG] Downloaded artifact to: %s\n", destPath)
	return nil
}

// flattenSingleDir lifts the contents of a sole top-level directory up into
// dir. A no-op when dir holds anything other than exactly one directory.
func flattenSingleDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	if len(entries) != 1 || !entries[0].IsDir() {
		return nil
	}

	top := filepath.Join(dir, entries[0].Name())
	children, err := os.ReadDir(top)
	if err != nil {
		return err
	}
	for _, child := range children {
		src := filepath.Join(top, child.Name())
		dst := filepath.Join(dir, child.Name())
		if err := os.Rename(src, dst); err != nil {
			return fmt.Errorf("failed to flatten %s: %w", src, err)
		}
	}
	return os.Remove(top)
}
