package treecfg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/stig/treecfg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileFetcher_ReadsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fpath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(fpath, []byte("a: 1\n"), 0o600))

	fetcher, err := treecfg.NewFileFetcher(fpath)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, []byte("a: 1\n"), data)
}

func TestNewFileFetcher_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := treecfg.NewFileFetcher(filepath.Join(t.TempDir(), "absent.yaml"))()

	require.Error(t, err)
}

func TestNewFileFetcher_Directory(t *testing.T) {
	t.Parallel()

	_, err := treecfg.NewFileFetcher(t.TempDir())()

	require.ErrorIs(t, err, treecfg.ErrPathIsDirectory)
}

func TestFileFetcher_FetchReturnsCopy(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fpath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(fpath, []byte("a: 1\n"), 0o600))

	fetcher, err := treecfg.NewFileFetcher(fpath)()
	require.NoError(t, err)

	first, err := fetcher.Fetch()
	require.NoError(t, err)

	first[0] = 'z'

	second, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, []byte("a: 1\n"), second, "mutating a fetched copy must not affect the cache")
}

func TestFileFetcher_CachesAtConstruction(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fpath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(fpath, []byte("a: 1\n"), 0o600))

	fetcher, err := treecfg.NewFileFetcher(fpath)()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(fpath, []byte("a: 2\n"), 0o600))

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, []byte("a: 1\n"), data, "contents are read once at construction")
}
