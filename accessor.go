package stig

import (
	"fmt"
	"io"
)

// Accessor resolves segment sequences against a concrete backend. An
// accessor holds only the backend root it needs; it never owns a path
// value. BoundPath depends only on this interface, so the same path
// shape drives every backend.
type Accessor interface {
	// Exists reports whether segs resolves to a node. It never
	// fails: any unresolvable sequence is simply false.
	Exists(segs []Segment) bool

	// Resolve returns the node reached by successively indexing
	// from the root by each segment. It fails with ErrKeyMissing,
	// ErrIndexOutOfRange or ErrNotIndexable, matching the first
	// segment that cannot be applied.
	Resolve(segs []Segment) (any, error)

	// Keys returns the child keys of the node at segs: mapping
	// keys for mappings, index segments in order for sequences.
	// It fails with the same kinds as Resolve when segs does not
	// resolve to an indexable node.
	Keys(segs []Segment) ([]Segment, error)

	// Len returns the number of children of the node at segs.
	Len(segs []Segment) (int, error)

	// Stat returns a small metadata record for the node at segs.
	// An absent node yields a record with Exists false, not an
	// error.
	Stat(segs []Segment) (Stat, error)

	// Open returns a scoped handle on the node at segs. The caller
	// must close it; closing is idempotent.
	Open(segs []Segment) (*Handle, error)
}

// Kind classifies a resolved node.
type Kind int

const (
	KindScalar Kind = iota
	KindMapping
	KindSequence
	KindFile
	KindDir
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindScalar:   "Scalar",
		KindMapping:  "Mapping",
		KindSequence: "Sequence",
		KindFile:     "File",
		KindDir:      "Dir",
	}[k]
	if ok {
		return s
	}

	return "<unknown kind>"
}

// Stat is the fixed metadata record accessors return. Size is the
// child count for in-memory containers and the byte size for files.
type Stat struct {
	Exists bool
	Kind   Kind
	Size   int64
}

// Handle is a scoped acquisition of a resolved node. In-memory
// handles carry the node itself and need no teardown; filesystem
// handles carry an open file whose release is guaranteed by Close.
type Handle struct {
	value  any
	rc     io.ReadCloser
	closed bool
}

func newValueHandle(value any) *Handle {
	return &Handle{value: value}
}

func newReaderHandle(rc io.ReadCloser) *Handle {
	return &Handle{rc: rc}
}

// Value returns the resolved node for in-memory handles. It is nil
// for filesystem handles; use Reader instead.
func (h *Handle) Value() any {
	return h.value
}

// Reader returns the handle's byte stream, or nil for in-memory
// handles.
func (h *Handle) Reader() io.Reader {
	if h.rc == nil {
		return nil
	}

	return h.rc
}

// Close releases the underlying resource. It is idempotent and a
// no-op for in-memory handles.
func (h *Handle) Close() error {
	if h.closed || h.rc == nil {
		h.closed = true

		return nil
	}

	h.closed = true

	err := h.rc.Close()
	if err != nil {
		return fmt.Errorf("closing handle: %w", err)
	}

	return nil
}
