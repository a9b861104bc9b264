package stig

import (
	"fmt"
	"strings"
)

// DefaultSeparator is the separator used when none is configured.
const DefaultSeparator = '/'

// Path is an immutable sequence of segments plus a separator. A Path
// knows nothing about any backend; it can be freely compared, used as
// a map key via Key (see Compare and Equal), and shared between
// accessors. All composing operations return a new value.
type Path struct {
	sep  rune
	segs []Segment

	// Rendered string and comparison key, computed once at
	// construction. The value never mutates, so neither needs
	// invalidation.
	rendered string
	ckey     string
}

// newPath is the only constructor; segs must already be normalized
// and must not be retained by the caller.
func newPath(sep rune, segs []Segment) Path {
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.String()
	}

	return Path{
		sep:      sep,
		segs:     segs,
		rendered: strings.Join(parts, string(sep)),
		ckey:     segmentsKey(segs),
	}
}

// Parse builds a Path from its string form. The input is split on the
// separator; empty tokens and "." tokens are dropped. Tokens made of
// digits stay text segments: string inputs are never coerced to
// indices. Use NewPath with Index segments to address sequences.
func Parse(s string, opts ...Option) Path {
	options := newOptions(opts)
	sep := options.Separator

	tokens := strings.Split(s, string(sep))
	segs := make([]Segment, 0, len(tokens))

	for _, tok := range tokens {
		if tok == "" || tok == "." {
			continue
		}

		segs = append(segs, Key(tok))
	}

	return newPath(sep, segs)
}

// NewPath builds a Path from explicit segments. Text segments that
// contain the separator are split into multiple stored segments, and
// empty or "." text segments are dropped, exactly as if the caller had
// parsed the equivalent string.
func NewPath(segs []Segment, opts ...Option) Path {
	options := newOptions(opts)
	sep := options.Separator

	return newPath(sep, normalizeSegments(sep, nil, segs))
}

// normalizeSegments appends the normalized form of segs to dst.
func normalizeSegments(sep rune, dst []Segment, segs []Segment) []Segment {
	for _, s := range segs {
		if s.kind == kindIndex {
			dst = append(dst, s)

			continue
		}

		if s.text == "" || s.text == "." {
			continue
		}

		if !strings.ContainsRune(s.text, sep) {
			dst = append(dst, s)

			continue
		}

		for _, tok := range strings.Split(s.text, string(sep)) {
			if tok == "" || tok == "." {
				continue
			}

			dst = append(dst, Key(tok))
		}
	}

	return dst
}

// Separator returns the path's separator.
func (p Path) Separator() rune {
	if p.sep == 0 {
		return DefaultSeparator
	}

	return p.sep
}

// Segments returns a copy of the path's segments.
func (p Path) Segments() []Segment {
	segs := make([]Segment, len(p.segs))
	copy(segs, p.segs)

	return segs
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segs)
}

// String renders the path by joining the canonical text form of each
// segment with the separator. Parsing the result under the same
// separator reproduces the same text segments.
func (p Path) String() string {
	return p.rendered
}

// Key returns a canonical comparable form of the path, suitable as a
// map key. Two paths have the same key iff they are Equal.
func (p Path) Key() string {
	return string(p.Separator()) + "\x00" + p.ckey
}

// Join returns a new Path with segs appended. The new segments are
// normalized under the receiver's separator; the receiver is not
// modified.
func (p Path) Join(segs ...Segment) Path {
	joined := make([]Segment, 0, len(p.segs)+len(segs))
	joined = append(joined, p.segs...)
	joined = normalizeSegments(p.Separator(), joined, segs)

	return newPath(p.Separator(), joined)
}

// JoinPath returns a new Path with other's segments appended,
// re-normalized under the receiver's separator.
func (p Path) JoinPath(other Path) Path {
	return p.Join(other.segs...)
}

// Parent returns the path without its last segment. It fails with
// ErrEmptyPath when the path has no segments.
func (p Path) Parent() (Path, error) {
	if len(p.segs) == 0 {
		return Path{}, fmt.Errorf("%w: no parent of the root path", ErrEmptyPath)
	}

	segs := make([]Segment, len(p.segs)-1)
	copy(segs, p.segs[:len(p.segs)-1])

	return newPath(p.Separator(), segs), nil
}

// RelativeTo returns the suffix of the path after the prefix base. It
// fails with ErrPathMismatch when base is not a prefix of the path or
// the separators differ.
func (p Path) RelativeTo(base Path) (Path, error) {
	if !p.IsRelativeTo(base) {
		return Path{}, fmt.Errorf("%w: %q is not relative to %q", ErrPathMismatch, p.String(), base.String())
	}

	segs := make([]Segment, len(p.segs)-len(base.segs))
	copy(segs, p.segs[len(base.segs):])

	return newPath(p.Separator(), segs), nil
}

// IsRelativeTo reports whether base is a prefix of the path under the
// same separator. It never fails.
func (p Path) IsRelativeTo(base Path) bool {
	if p.Separator() != base.Separator() {
		return false
	}

	if len(base.segs) > len(p.segs) {
		return false
	}

	for i, s := range base.segs {
		if s.Compare(p.segs[i]) != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether two paths have the same separator and the
// same ordered segments. Equality is kind-sensitive: a path built
// from Index(0) is never equal to one built from Key("0").
func (p Path) Equal(other Path) bool {
	return p.Separator() == other.Separator() && p.ckey == other.ckey
}

// Compare defines a total order over paths: first by separator, then
// segment by segment, with shorter prefixes ordering first. Segments
// of different kinds order by kind rank, so mixed sequences always
// compare. The result is -1, 0 or 1.
func (p Path) Compare(other Path) int {
	if s, o := p.Separator(), other.Separator(); s != o {
		if s < o {
			return -1
		}

		return 1
	}

	for i := 0; i < len(p.segs) && i < len(other.segs); i++ {
		if c := p.segs[i].Compare(other.segs[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(p.segs) < len(other.segs):
		return -1
	case len(p.segs) > len(other.segs):
		return 1
	default:
		return 0
	}
}
