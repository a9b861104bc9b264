package treecfg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// FileFetcher implements the Fetcher interface for file-based
// configuration. The file is read at construction time and its
// contents cached.
type FileFetcher struct {
	filepath string
	data     []byte
}

// NewFileFetcher returns a constructor function that creates a new
// FileFetcher for the given path. The constructor-function shape is
// Fx-friendly, letting the DI container control when the read
// happens. The constructor fails if the file cannot be read or the
// path points to a directory.
func NewFileFetcher(fpath string) func() (*FileFetcher, error) {
	return func() (*FileFetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &FileFetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// Fetch returns a copy of the cached data that was read at
// construction time, so callers cannot mutate the cached bytes.
func (f *FileFetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
