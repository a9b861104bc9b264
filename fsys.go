package stig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// FSAccessor resolves segment sequences against filesystem entries
// under a base directory. Resolution always reflects live filesystem
// state: there is no cache, so results can change between calls when
// the underlying tree changes. This is intentional, in contrast to
// LookupAccessor.
type FSAccessor struct {
	fsys fs.FS
}

// NewFSAccessor creates an accessor over fsys. Any fs.FS works,
// including fstest.MapFS in tests.
func NewFSAccessor(fsys fs.FS) *FSAccessor {
	return &FSAccessor{fsys: fsys}
}

// NewDirAccessor creates an accessor rooted at the directory dir.
func NewDirAccessor(dir string) *FSAccessor {
	return NewFSAccessor(os.DirFS(dir))
}

// entryName joins segments into an fs path name. Index segments join
// in their canonical decimal text form.
func (a *FSAccessor) entryName(segs []Segment) string {
	if len(segs) == 0 {
		return "."
	}

	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.String()
	}

	return path.Join(parts...)
}

// Exists reports whether the entry at segs exists at call time.
func (a *FSAccessor) Exists(segs []Segment) bool {
	_, err := fs.Stat(a.fsys, a.entryName(segs))

	return err == nil
}

// Resolve returns the full contents of the file at segs as bytes, with
// no text decoding. It fails with ErrKeyMissing for an absent entry
// and ErrIsDirectory when segs names a directory.
func (a *FSAccessor) Resolve(segs []Segment) (any, error) {
	name := a.entryName(segs)

	info, err := fs.Stat(a.fsys, name)
	if err != nil {
		return nil, statError(name, err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrIsDirectory, name)
	}

	data, err := fs.ReadFile(a.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}

	return data, nil
}

// Keys enumerates the entry names of the directory at segs as text
// segments, in the lexical order fs.ReadDir guarantees.
func (a *FSAccessor) Keys(segs []Segment) ([]Segment, error) {
	entries, err := a.readDir(segs)
	if err != nil {
		return nil, err
	}

	keys := make([]Segment, len(entries))
	for i, entry := range entries {
		keys[i] = Key(entry.Name())
	}

	return keys, nil
}

// Len returns the number of entries of the directory at segs, or the
// byte size of the file at segs.
func (a *FSAccessor) Len(segs []Segment) (int, error) {
	name := a.entryName(segs)

	info, err := fs.Stat(a.fsys, name)
	if err != nil {
		return 0, statError(name, err)
	}

	if !info.IsDir() {
		return int(info.Size()), nil
	}

	entries, err := fs.ReadDir(a.fsys, name)
	if err != nil {
		return 0, fmt.Errorf("reading dir %q: %w", name, err)
	}

	return len(entries), nil
}

// Stat returns metadata for the entry at segs, live at call time. An
// absent entry yields a record with Exists false, not an error.
func (a *FSAccessor) Stat(segs []Segment) (Stat, error) {
	name := a.entryName(segs)

	info, err := fs.Stat(a.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return Stat{}, nil
		}

		return Stat{}, fmt.Errorf("stat %q: %w", name, err)
	}

	stat := Stat{Exists: true, Kind: KindFile, Size: info.Size()}
	if info.IsDir() {
		stat.Kind = KindDir
		stat.Size = 0
	}

	return stat, nil
}

// Open returns an open handle on the file at segs. The caller must
// close it; release is guaranteed by deferring Close on every exit
// path.
func (a *FSAccessor) Open(segs []Segment) (*Handle, error) {
	name := a.entryName(segs)

	file, err := a.fsys.Open(name)
	if err != nil {
		return nil, statError(name, err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()

		return nil, fmt.Errorf("stat %q: %w", name, err)
	}

	if info.IsDir() {
		_ = file.Close()

		return nil, fmt.Errorf("%w: %q", ErrIsDirectory, name)
	}

	return newReaderHandle(file), nil
}

func (a *FSAccessor) readDir(segs []Segment) ([]fs.DirEntry, error) {
	name := a.entryName(segs)

	info, err := fs.Stat(a.fsys, name)
	if err != nil {
		return nil, statError(name, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrNotIndexable, name)
	}

	entries, err := fs.ReadDir(a.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading dir %q: %w", name, err)
	}

	return entries, nil
}

// statError maps filesystem failures onto the accessor taxonomy. An
// invalid fs path name (for example one containing "..") is as
// unresolvable as an absent entry.
func statError(name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
		return fmt.Errorf("%w: %q", ErrKeyMissing, name)
	}

	return fmt.Errorf("%q: %w", name, err)
}
