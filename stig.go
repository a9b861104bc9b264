package stig

import "io/fs"

// Bind attaches an accessor to an empty root path. All further
// composition shares the accessor.
func Bind(acc Accessor, opts ...Option) *BoundPath {
	options := newOptions(opts)

	return newBoundPath(newPath(options.Separator, nil), acc)
}

// FromLookup wraps a LookupAccessor around an arbitrary in-memory
// mapping/sequence tree and returns the root bound path. The tree is
// treated as immutable for the accessor's lifetime.
func FromLookup(root any, opts ...Option) *BoundPath {
	return Bind(NewLookupAccessor(root, opts...), opts...)
}

// FromFS wraps an FSAccessor around fsys and returns the root bound
// path.
func FromFS(fsys fs.FS, opts ...Option) *BoundPath {
	return Bind(NewFSAccessor(fsys), opts...)
}

// FromDir wraps an FSAccessor around the directory dir and returns
// the root bound path.
func FromDir(dir string, opts ...Option) *BoundPath {
	return Bind(NewDirAccessor(dir), opts...)
}
