package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeCatalog implements Client from fixed tag lists and records whether the
// resolver actually hit it.
type fakeCatalog struct {
	latest  string
	tags    []string
	fetched bool
}

func (f *fakeCatalog) LatestTag() (string, error) {
	f.fetched = true
	return f.latest, nil
}

func (f *fakeCatalog) AllTags() ([]string, error) {
	f.fetched = true
	return f.tags, nil
}

func releaseCatalog() *fakeCatalog {
	// Deliberately unsorted; resolution must scan everything.
	return &fakeCatalog{
		latest: "v1.65.0.1",
		tags: []string{
			"v1.63.0.0", "v1.65.0.0", "v1.63.0.1", "v1.64.0.0",
			"v1.63.0.2", "v1.65.0.1",
		},
	}
}

func TestResolveAbbreviatedPicksMaxSubpatch(t *testing.T) {
	r := &Resolver{Catalog: releaseCatalog()}

	for query, want := range map[string]string{
		"1.63.0": "1.63.0.2",
		"1.65.0": "1.65.0.1",
		"1.64.0": "1.64.0.0",
	} {
		got, err := r.Resolve(query)
		require.NoError(t, err, "query %s", query)
		require.Equal(t, want, got, "query %s", query)
	}
}

func TestResolveExtendedExactMatch(t *testing.T) {
	r := &Resolver{Catalog: releaseCatalog()}

	got, err := r.Resolve("1.65.0.1")
	require.NoError(t, err)
	require.Equal(t, "1.65.0.1", got)

	// Published but not the newest; extended queries pin an exact release.
	got, err = r.Resolve("1.63.0.0")
	require.NoError(t, err)
	require.Equal(t, "1.63.0.0", got)
}

func TestResolveNoCatalogMatch(t *testing.T) {
	r := &Resolver{Catalog: releaseCatalog()}

	var invalid *InvalidVersionError
	_, err := r.Resolve("422.0.0")
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "422.0.0", invalid.Query)

	_, err = r.Resolve("422.0.0.0")
	require.ErrorAs(t, err, &invalid)
}

func TestResolveInvalidGrammarSkipsCatalog(t *testing.T) {
	cat := releaseCatalog()
	r := &Resolver{Catalog: cat}

	var invalid *InvalidVersionError
	for _, query := range []string{"1._.*.1", "a.1.1.1", "1.1.1.1.1", "1..1.1"} {
		_, err := r.Resolve(query)
		require.ErrorAs(t, err, &invalid, "query %s", query)
	}
	// Grammar failures must be decided before any catalog fetch.
	require.False(t, cat.fetched)
}

func TestResolveEmptyCatalogIsNoMatch(t *testing.T) {
	r := &Resolver{Catalog: &fakeCatalog{}}

	var invalid *InvalidVersionError
	_, err := r.Resolve("1.65.0")
	require.ErrorAs(t, err, &invalid)
}

func TestResolveIgnoresUnparsableTags(t *testing.T) {
	r := &Resolver{Catalog: &fakeCatalog{
		tags: []string{"not-a-release", "v1.65.0.1", "v1.65", ""},
	}}

	got, err := r.Resolve("1.65.0")
	require.NoError(t, err)
	require.Equal(t, "1.65.0.1", got)
}

func TestResolveSkipValidation(t *testing.T) {
	cat := releaseCatalog()
	r := &Resolver{Catalog: cat, SkipValidation: true}

	// Anything goes, verbatim, with no catalog traffic.
	got, err := r.Resolve("totally-custom-build")
	require.NoError(t, err)
	require.Equal(t, "totally-custom-build", got)
	require.False(t, cat.fetched)
}

func TestResolvePropagatesCatalogErrors(t *testing.T) {
	transportErr := errors.New("connection refused")
	r := &Resolver{Catalog: &errCatalog{err: transportErr}}

	_, err := r.Resolve("1.65.0")
	require.ErrorIs(t, err, transportErr)
}

type errCatalog struct{ err error }

func (e *errCatalog) LatestTag() (string, error) { return "", e.err }
func (e *errCatalog) AllTags() ([]string, error) { return nil, e.err }

func TestLatest(t *testing.T) {
	r := &Resolver{Catalog: releaseCatalog()}
	got, err := r.Latest()
	require.NoError(t, err)
	require.Equal(t, "1.65.0.1", got)
}

func TestLatestRejectsMalformedTag(t *testing.T) {
	r := &Resolver{Catalog: &fakeCatalog{latest: "vnightly"}}
	_, err := r.Latest()
	require.Error(t, err)
}
