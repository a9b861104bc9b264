package stig

import "strconv"

type segmentKind int

const (
	// Index segments rank before text segments when ordering mixed paths.
	kindIndex segmentKind = iota
	kindText
)

// Segment is one atomic component of a path: either a text token
// addressing a mapping key or an integer index addressing a sequence
// element. The two kinds never compare equal, even when their text
// forms coincide (Index(0) is not Key("0")).
type Segment struct {
	kind segmentKind
	text string
	idx  int
}

// Key returns a text segment.
func Key(s string) Segment {
	return Segment{kind: kindText, text: s}
}

// Index returns an integer index segment.
func Index(i int) Segment {
	return Segment{kind: kindIndex, idx: i}
}

// IsIndex reports whether the segment is an integer index.
func (s Segment) IsIndex() bool {
	return s.kind == kindIndex
}

// Text returns the text token. It is empty for index segments.
func (s Segment) Text() string {
	return s.text
}

// Int returns the integer index. It is zero for text segments.
func (s Segment) Int() int {
	return s.idx
}

// Value returns the segment's underlying value: a string for text
// segments, an int for index segments.
func (s Segment) Value() any {
	if s.kind == kindIndex {
		return s.idx
	}

	return s.text
}

// String returns the canonical text form of the segment, as used when
// rendering a path.
func (s Segment) String() string {
	if s.kind == kindIndex {
		return strconv.Itoa(s.idx)
	}

	return s.text
}

// Compare orders two segments. Segments of different kinds order by
// kind (index before text); segments of the same kind order naturally.
// The result is -1, 0 or 1.
func (s Segment) Compare(other Segment) int {
	if s.kind != other.kind {
		if s.kind < other.kind {
			return -1
		}

		return 1
	}

	if s.kind == kindIndex {
		switch {
		case s.idx < other.idx:
			return -1
		case s.idx > other.idx:
			return 1
		default:
			return 0
		}
	}

	switch {
	case s.text < other.text:
		return -1
	case s.text > other.text:
		return 1
	default:
		return 0
	}
}

// appendKey appends an unambiguous encoding of the segment to dst.
// Text segments are length-prefixed so a token can never collide with
// an index or with another token containing the delimiter.
func (s Segment) appendKey(dst []byte) []byte {
	if s.kind == kindIndex {
		dst = append(dst, 'i', ':')
		dst = strconv.AppendInt(dst, int64(s.idx), 10)

		return append(dst, ';')
	}

	dst = append(dst, 't')
	dst = strconv.AppendInt(dst, int64(len(s.text)), 10)
	dst = append(dst, ':')
	dst = append(dst, s.text...)

	return append(dst, ';')
}

// segmentsKey returns a canonical comparable key for a segment
// sequence, usable as a map key. Kind information is preserved, so
// Index(0) and Key("0") never produce the same key.
func segmentsKey(segs []Segment) string {
	var dst []byte
	for _, s := range segs {
		dst = s.appendKey(dst)
	}

	return string(dst)
}
