package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"

	"xtensup/internal/logger"
)

// Client is the release-catalog contract the resolver consumes: the list of
// published release tags, each shaped `vMAJOR.MINOR.PATCH.SUBPATCH` (and
// possibly quoted, depending on the transport).
type Client interface {
	// LatestTag returns the tag of the most recent release.
	LatestTag() (string, error)
	// AllTags returns the tags of every published release, in no particular
	// order.
	AllTags() ([]string, error)
}

// release is the slice of a GitHub release JSON object the catalog needs.
type release struct {
	TagName string `json:"tag_name"` // The release tag (e.g., v1.65.0.1)
}

// GitHubClient lists release tags through the GitHub releases API.
// URLs are fields so tests can point the client at a local server.
type GitHubClient struct {
	ReleasesURL string // endpoint returning the JSON array of all releases
	LatestURL   string // endpoint returning the single latest release
}

// LatestTag fetches the tag of the most recent published release.
func (c *GitHubClient) LatestTag() (string, error) {
	var rel release
	if err := getJSON(c.LatestURL, &rel); err != nil {
		return "", err
	}
	logger.Debug("[DEBUG] Latest release tag: %s\n", rel.TagName)
	return rel.TagName, nil
}

// AllTags fetches the tags of every published release.
func (c *GitHubClient) AllTags() ([]string, error) {
	var releases []release
	if err := getJSON(c.ReleasesURL, &releases); err != nil {
		return nil, err
	}
	logger.Debug("[DEBUG] Release catalog has %d entries\n", len(releases))
	tags := make([]string, 0, len(releases))
	for _, rel := range releases {
		tags = append(tags, rel.TagName)
	}
	return tags, nil
}

// getJSON performs a GET against the given URL and decodes the JSON body
// into out.
func getJSON(url string, out any) error {
	logger.Debug("[DEBUG] Fetching release catalog from URL: %s\n", url)
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("HTTP GET error fetching %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("release catalog fetch failed for %s: HTTP status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode release catalog JSON from %s: %w", url, err)
	}
	return nil
}
