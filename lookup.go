package stig

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// LookupAccessor resolves segment sequences against an in-memory
// mapping/sequence tree. The root is fixed at construction and is
// documented as immutable for the accessor's lifetime; to point at a
// different tree, construct a new accessor.
//
// Repeated resolution of the same segment sequence is amortized by a
// per-instance bounded cache with least-recently-used eviction. The
// cache is not safe for concurrent use; callers sharing one accessor
// across goroutines must provide external mutual exclusion.
type LookupAccessor struct {
	root  any
	cache *lruCache
}

// NewLookupAccessor creates an accessor over root. Caching is enabled
// by default with DefaultCacheSize capacity; use WithCacheSize or
// WithoutCache to change that.
func NewLookupAccessor(root any, opts ...Option) *LookupAccessor {
	options := newOptions(opts)

	acc := &LookupAccessor{root: root}
	if !options.CacheDisabled {
		acc.cache = newLRUCache(options.CacheSize)
	}

	return acc
}

// Resolve walks the root by successively indexing with each segment.
// With caching enabled, the full segment sequence is the cache key: a
// hit refreshes the entry's recency, a miss walks the tree and caches
// the result. Failures are never cached.
func (a *LookupAccessor) Resolve(segs []Segment) (any, error) {
	if a.cache == nil {
		return walkTree(a.root, segs)
	}

	key := segmentsKey(segs)
	if node, ok := a.cache.get(key); ok {
		return node, nil
	}

	node, err := walkTree(a.root, segs)
	if err != nil {
		return nil, err
	}

	a.cache.put(key, node)

	return node, nil
}

// Exists reports whether segs resolves. It never fails.
func (a *LookupAccessor) Exists(segs []Segment) bool {
	_, err := a.Resolve(segs)

	return err == nil
}

// Keys returns the child keys of the node at segs: mapping keys as
// text segments in sorted order, sequence indices in order.
func (a *LookupAccessor) Keys(segs []Segment) ([]Segment, error) {
	node, err := a.Resolve(segs)
	if err != nil {
		return nil, err
	}

	keys, ok := childKeys(node)
	if !ok {
		return nil, fmt.Errorf("%w: %T at %q has no keys", ErrNotIndexable, node, renderSegments(segs))
	}

	return keys, nil
}

// Len returns the number of children of the node at segs.
func (a *LookupAccessor) Len(segs []Segment) (int, error) {
	node, err := a.Resolve(segs)
	if err != nil {
		return 0, err
	}

	n, ok := containerLen(node)
	if !ok {
		return 0, fmt.Errorf("%w: %T at %q has no length", ErrNotIndexable, node, renderSegments(segs))
	}

	return n, nil
}

// Stat returns metadata for the node at segs. An unresolvable
// sequence yields a record with Exists false, not an error.
func (a *LookupAccessor) Stat(segs []Segment) (Stat, error) {
	node, err := a.Resolve(segs)
	if err != nil {
		return Stat{}, nil
	}

	stat := Stat{Exists: true, Kind: nodeKind(node)}
	if n, ok := containerLen(node); ok {
		stat.Size = int64(n)
	}

	return stat, nil
}

// Open returns the node at segs as a handle. In-memory handles need
// no teardown; Close is a no-op.
func (a *LookupAccessor) Open(segs []Segment) (*Handle, error) {
	node, err := a.Resolve(segs)
	if err != nil {
		return nil, err
	}

	return newValueHandle(node), nil
}

// ClearCache drops all cache entries. The root is unaffected.
func (a *LookupAccessor) ClearCache() {
	if a.cache != nil {
		a.cache.clear()
	}
}

// DisableCache turns caching off and drops all entries.
func (a *LookupAccessor) DisableCache() {
	a.cache = nil
}

// EnableCache turns caching on with the given capacity, starting
// empty. It fails with ErrInvalidCacheSize unless maxsize is
// positive.
func (a *LookupAccessor) EnableCache(maxsize int) error {
	if maxsize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCacheSize, maxsize)
	}

	a.cache = newLRUCache(maxsize)

	return nil
}

// renderSegments joins canonical segment forms for error messages.
func renderSegments(segs []Segment) string {
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.String()
	}

	return strings.Join(parts, "/")
}

// walkTree indexes node by each segment in turn, reporting the first
// segment that cannot be applied.
func walkTree(root any, segs []Segment) (any, error) {
	node := root

	for i, seg := range segs {
		next, err := childOf(node, seg, segs[:i+1])
		if err != nil {
			return nil, err
		}

		node = next
	}

	return node, nil
}

func childOf(node any, seg Segment, at []Segment) (any, error) {
	switch n := node.(type) {
	case map[string]any:
		if seg.IsIndex() {
			// An index is never a string key.
			return nil, missingKeyError(seg, at)
		}

		child, ok := n[seg.Text()]
		if !ok {
			return nil, missingKeyError(seg, at)
		}

		return child, nil

	case map[any]any:
		child, ok := n[seg.Value()]
		if !ok {
			return nil, missingKeyError(seg, at)
		}

		return child, nil

	case []any:
		return sequenceChild(len(n), seg, at, func(i int) any { return n[i] })
	}

	return childOfReflect(node, seg, at)
}

// childOfReflect covers typed maps and slices (map[string]int,
// []string and the like) so callers are not forced to pre-convert
// trees into the generic any-based form.
func childOfReflect(node any, seg Segment, at []Segment) (any, error) {
	val := reflect.ValueOf(node)

	switch val.Kind() {
	case reflect.Map:
		key := reflect.ValueOf(seg.Value())
		if !key.Type().AssignableTo(val.Type().Key()) {
			return nil, missingKeyError(seg, at)
		}

		child := val.MapIndex(key)
		if !child.IsValid() {
			return nil, missingKeyError(seg, at)
		}

		return child.Interface(), nil

	case reflect.Slice, reflect.Array:
		return sequenceChild(val.Len(), seg, at, func(i int) any { return val.Index(i).Interface() })

	default:
		return nil, fmt.Errorf("%w: cannot descend into %T at %q", ErrNotIndexable, node, renderSegments(at))
	}
}

func sequenceChild(length int, seg Segment, at []Segment, index func(int) any) (any, error) {
	if !seg.IsIndex() {
		return nil, fmt.Errorf("%w: cannot index sequence with key %q at %q", ErrNotIndexable, seg.Text(), renderSegments(at))
	}

	i := seg.Int()
	if i < 0 || i >= length {
		return nil, fmt.Errorf("%w: %d at %q (len %d)", ErrIndexOutOfRange, i, renderSegments(at), length)
	}

	return index(i), nil
}

func missingKeyError(seg Segment, at []Segment) error {
	return fmt.Errorf("%w: %q at %q", ErrKeyMissing, seg.String(), renderSegments(at))
}

// childKeys enumerates child keys. Mapping keys are sorted so that
// enumeration is deterministic.
func childKeys(node any) ([]Segment, bool) {
	switch n := node.(type) {
	case map[string]any:
		keys := make([]Segment, 0, len(n))
		for k := range n {
			keys = append(keys, Key(k))
		}

		sortSegments(keys)

		return keys, true

	case map[any]any:
		keys := make([]Segment, 0, len(n))
		for k := range n {
			keys = append(keys, segmentForKey(k))
		}

		sortSegments(keys)

		return keys, true

	case []any:
		return indexSegments(len(n)), true
	}

	val := reflect.ValueOf(node)

	switch val.Kind() {
	case reflect.Map:
		keys := make([]Segment, 0, val.Len())
		for _, k := range val.MapKeys() {
			keys = append(keys, segmentForKey(k.Interface()))
		}

		sortSegments(keys)

		return keys, true

	case reflect.Slice, reflect.Array:
		return indexSegments(val.Len()), true

	default:
		return nil, false
	}
}

func segmentForKey(key any) Segment {
	switch k := key.(type) {
	case string:
		return Key(k)
	case int:
		return Index(k)
	default:
		return Key(fmt.Sprint(k))
	}
}

func sortSegments(segs []Segment) {
	slices.SortFunc(segs, func(a, b Segment) int { return a.Compare(b) })
}

func indexSegments(n int) []Segment {
	keys := make([]Segment, n)
	for i := range keys {
		keys[i] = Index(i)
	}

	return keys
}

func containerLen(node any) (int, bool) {
	switch n := node.(type) {
	case map[string]any:
		return len(n), true
	case map[any]any:
		return len(n), true
	case []any:
		return len(n), true
	}

	val := reflect.ValueOf(node)

	switch val.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return val.Len(), true
	default:
		return 0, false
	}
}

func nodeKind(node any) Kind {
	switch node.(type) {
	case map[string]any, map[any]any:
		return KindMapping
	case []any:
		return KindSequence
	}

	switch reflect.ValueOf(node).Kind() {
	case reflect.Map:
		return KindMapping
	case reflect.Slice, reflect.Array:
		return KindSequence
	default:
		return KindScalar
	}
}
