package stig

import "errors"

// ErrKeyMissing is returned when a mapping key or filesystem entry is absent.
var ErrKeyMissing = errors.New("key missing")

// ErrIndexOutOfRange is returned when a sequence index is out of range.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrNotIndexable is returned when a segment descends into a node that has no children.
var ErrNotIndexable = errors.New("not indexable")

// ErrEmptyPath is returned when taking the parent of an empty path.
var ErrEmptyPath = errors.New("empty path")

// ErrPathMismatch is returned by RelativeTo when the base is not a prefix
// of the path or the separators differ.
var ErrPathMismatch = errors.New("path mismatch")

// ErrInvalidCacheSize is returned by EnableCache for a non-positive size.
var ErrInvalidCacheSize = errors.New("cache size must be positive")

// ErrIsDirectory is returned when resolving or opening a directory as a file.
var ErrIsDirectory = errors.New("is a directory")

// ErrEmptyData is returned by FromYAML when the input document is empty.
var ErrEmptyData = errors.New("empty data")
