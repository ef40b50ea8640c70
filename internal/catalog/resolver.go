package catalog

import (
	"fmt"
	"strings"

	"xtensup/internal/logger"
	"xtensup/internal/version"
)

// InvalidVersionError reports a version query that failed grammar validation
// or matched no entry in the release catalog.
type InvalidVersionError struct {
	Query string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid toolchain version %q: no matching release", e.Query)
}

// Resolver turns a user-supplied version query into the concrete four-field
// version of a published release.
type Resolver struct {
	// Catalog lists the published release tags.
	Catalog Client
	// SkipValidation, when true, bypasses grammar and catalog checks and
	// returns queries verbatim. Set from XTENSUP_SKIP_VERSION_PARSE; an
	// explicit field here so the bypass is visible in the contract and tests
	// need not mutate process state.
	SkipValidation bool
}

// Resolve maps query onto the canonical extended version of one published
// release. A full "M.N.P.S" query succeeds if that release exists; a
// three-field "M.N.P" query selects the matching release with the highest
// subpatch. Anything else fails with *InvalidVersionError.
func (r *Resolver) Resolve(query string) (string, error) {
	if r.SkipValidation {
		logger.Warn("[WARN] Version validation disabled; treating %q as already resolved\n", query)
		return query, nil
	}

	logger.Debug("[DEBUG] Resolving toolchain version: %s\n", query)
	kind := version.Classify(query)
	if kind == version.Invalid {
		// Fail before any catalog fetch.
		return "", &InvalidVersionError{Query: query}
	}

	published, err := r.publishedVersions()
	if err != nil {
		return "", err
	}

	switch kind {
	case version.Extended:
		for _, v := range published {
			if strings.HasPrefix(v.String(), query) {
				return query, nil
			}
		}
	case version.Abbreviated:
		if best, ok := maxSubpatch(published, query); ok {
			logger.Debug("[DEBUG] Resolved %s to %s\n", query, best)
			return best.String(), nil
		}
	}
	return "", &InvalidVersionError{Query: query}
}

// Latest resolves the newest published release and validates its tag parses
// as an extended version.
func (r *Resolver) Latest() (string, error) {
	tag, err := r.Catalog.LatestTag()
	if err != nil {
		return "", err
	}
	normalized := version.NormalizeTag(tag)
	if _, err := version.ParseExtended(normalized); err != nil {
		return "", fmt.Errorf("latest release tag %q is not an extended version: %w", tag, err)
	}
	logger.Debug("[DEBUG] Latest Xtensa Rust version: %s\n", normalized)
	return normalized, nil
}

// publishedVersions fetches the full catalog and parses each tag, skipping
// entries that do not parse as extended versions. The catalog is never
// assumed sorted; callers always scan the whole slice.
func (r *Resolver) publishedVersions() ([]version.ExtendedVersion, error) {
	tags, err := r.Catalog.AllTags()
	if err != nil {
		return nil, err
	}
	published := make([]version.ExtendedVersion, 0, len(tags))
	for _, tag := range tags {
		v, err := version.ParseExtended(version.NormalizeTag(tag))
		if err != nil {
			// Malformed catalog entries are ignored, never fatal.
			logger.Debug("[DEBUG] Skipping unparsable release tag: %s\n", tag)
			continue
		}
		published = append(published, v)
	}
	return published, nil
}

// maxSubpatch selects, among published versions whose first three fields
// equal the abbreviated query, the one with the highest subpatch. Ties on
// subpatch keep the first entry encountered; a well-formed catalog never
// publishes the same four-field version twice, so the tie arm is moot in
// practice but keeps selection independent of catalog order.
func maxSubpatch(published []version.ExtendedVersion, abbrev string) (version.ExtendedVersion, bool) {
	var best version.ExtendedVersion
	found := false
	for _, v := range published {
		if !v.MatchesAbbreviated(abbrev) {
			continue
		}
		if !found || v.Subpatch > best.Subpatch {
			best = v
			found = true
		}
	}
	return best, found
}
