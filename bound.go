package stig

import "fmt"

// BoundPath pairs a Path with the Accessor that resolves it. Every
// composition keeps the same accessor reference and returns a new
// value, so sub-paths stay independent immutable values sharing one
// backend. No live reference into the tree is held between calls.
type BoundPath struct {
	Path

	acc Accessor
}

// Item is one child of a bound path: its key and the child path
// bound to the same accessor.
type Item struct {
	Key  Segment
	Path *BoundPath
}

func newBoundPath(p Path, acc Accessor) *BoundPath {
	return &BoundPath{Path: p, acc: acc}
}

// Accessor returns the accessor shared by this path and everything
// composed from it.
func (p *BoundPath) Accessor() Accessor {
	return p.acc
}

// Join returns a new bound path with segs appended, sharing the same
// accessor.
func (p *BoundPath) Join(segs ...Segment) *BoundPath {
	return newBoundPath(p.Path.Join(segs...), p.acc)
}

// JoinPath returns a new bound path with other's segments appended,
// sharing the same accessor.
func (p *BoundPath) JoinPath(other Path) *BoundPath {
	return newBoundPath(p.Path.JoinPath(other), p.acc)
}

// JoinStrict joins and immediately asserts the result resolves. It
// fails with ErrKeyMissing when it does not, for callers who want to
// assert existence before chaining further.
func (p *BoundPath) JoinStrict(segs ...Segment) (*BoundPath, error) {
	child := p.Join(segs...)
	if !p.acc.Exists(child.segs) {
		return nil, fmt.Errorf("%w: %q", ErrKeyMissing, child.String())
	}

	return child, nil
}

// Parent returns the bound path without its last segment.
func (p *BoundPath) Parent() (*BoundPath, error) {
	parent, err := p.Path.Parent()
	if err != nil {
		return nil, err
	}

	return newBoundPath(parent, p.acc), nil
}

// Value resolves the path and returns the node it addresses.
func (p *BoundPath) Value() (any, error) {
	return p.acc.Resolve(p.segs)
}

// Exists reports whether the path resolves. It never fails.
func (p *BoundPath) Exists() bool {
	return p.acc.Exists(p.segs)
}

// Get resolves the child at key. Any resolution failure is reported
// as ok false, never an error.
func (p *BoundPath) Get(key Segment) (any, bool) {
	value, err := p.Join(key).Value()
	if err != nil {
		return nil, false
	}

	return value, true
}

// GetDefault resolves the child at key, returning def on any
// resolution failure.
func (p *BoundPath) GetDefault(key Segment, def any) any {
	value, ok := p.Get(key)
	if !ok {
		return def
	}

	return value
}

// Contains reports whether the child at key resolves.
func (p *BoundPath) Contains(key Segment) bool {
	return p.acc.Exists(p.Join(key).segs)
}

// Keys returns the child keys of the node the path addresses.
func (p *BoundPath) Keys() ([]Segment, error) {
	return p.acc.Keys(p.segs)
}

// Children returns one child bound path per key, each sharing the
// same accessor. Iteration yields paths, not raw values.
func (p *BoundPath) Children() ([]*BoundPath, error) {
	keys, err := p.acc.Keys(p.segs)
	if err != nil {
		return nil, err
	}

	children := make([]*BoundPath, len(keys))
	for i, key := range keys {
		children[i] = p.Join(key)
	}

	return children, nil
}

// Items returns the node's children as key/path pairs.
func (p *BoundPath) Items() ([]Item, error) {
	keys, err := p.acc.Keys(p.segs)
	if err != nil {
		return nil, err
	}

	items := make([]Item, len(keys))
	for i, key := range keys {
		items[i] = Item{Key: key, Path: p.Join(key)}
	}

	return items, nil
}

// Values resolves every child of the node the path addresses.
func (p *BoundPath) Values() ([]any, error) {
	keys, err := p.acc.Keys(p.segs)
	if err != nil {
		return nil, err
	}

	values := make([]any, len(keys))
	for i, key := range keys {
		value, err := p.acc.Resolve(p.Join(key).segs)
		if err != nil {
			return nil, err
		}

		values[i] = value
	}

	return values, nil
}

// Len returns the number of children of the node the path addresses.
func (p *BoundPath) Len() (int, error) {
	return p.acc.Len(p.segs)
}

// Stat returns the accessor's metadata record for the path.
func (p *BoundPath) Stat() (Stat, error) {
	return p.acc.Stat(p.segs)
}

// Open returns a scoped handle on the node the path addresses. The
// caller must close it.
func (p *BoundPath) Open() (*Handle, error) {
	return p.acc.Open(p.segs)
}
