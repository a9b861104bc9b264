// Package stig addresses locations inside arbitrarily nested trees
// with composable, immutable path values, and resolves them through
// pluggable accessors.
//
// A Path is a separator plus an ordered sequence of segments, where a
// segment is either a text token (Key) or an integer index (Index).
// Paths are pure values: they parse, compose, compare and render with
// no knowledge of any backend.
//
// A BoundPath pairs a Path with an Accessor, the capability interface
// a backend implements to resolve segment sequences. Two accessors
// ship with the package: LookupAccessor walks in-memory
// mapping/sequence trees with a bounded least-recently-used cache,
// and FSAccessor walks real filesystem entries with no cache at all,
// so existence checks stay live.
//
//	data := map[string]any{"parts": map[string]any{"part2": map[string]any{"name": "Part Two"}}}
//	root := stig.FromLookup(data)
//	name, err := root.Join(stig.Key("parts"), stig.Key("part2"), stig.Key("name")).Value()
//
// Accessors and their caches are not safe for concurrent use; callers
// sharing one accessor across goroutines must provide external mutual
// exclusion.
package stig
