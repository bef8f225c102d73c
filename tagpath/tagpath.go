// Package tagpath provides the Path value type used to identify
// individual schema and data tree nodes.
package tagpath

import (
	"encoding/binary"
	"strings"

	"github.com/zeebo/xxh3"
)

// Path is an ordered sequence of tag name segments identifying a
// position in a schema or data tree. Paths are immutable once
// constructed and safe to share between goroutines.
type Path struct {
	segments []string
}

// Parse returns the Path for s, splitting on "/". A single leading
// empty segment (from a leading slash) is dropped; all other segments
// are kept verbatim, including empty interior segments from malformed
// input. Parse never fails.
func Parse(s string) Path {
	tags := strings.Split(s, "/")
	if len(tags) > 0 && strings.TrimSpace(tags[0]) == "" {
		tags = tags[1:]
	}
	return FromSegments(tags...)
}

// FromSegments returns a Path over the given segments, unvalidated.
func FromSegments(segments ...string) Path {
	p := Path{segments: make([]string, len(segments))}
	copy(p.segments, segments)
	return p
}

// Len returns the number of segments in the path.
func (p Path) Len() int { return len(p.segments) }

// Segment returns the i'th segment of the path.
func (p Path) Segment(i int) string { return p.segments[i] }

// Last returns the final segment of the path, or "" for a zero
// segment path.
func (p Path) Last() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// Child returns a new Path extending p by one segment.
func (p Path) Child(segment string) Path {
	segments := make([]string, 0, len(p.segments)+1)
	segments = append(segments, p.segments...)
	return Path{segments: append(segments, segment)}
}

// String returns the segments joined with "/". It is the left inverse
// of Parse for input with no leading or trailing slash and no empty
// interior segment.
func (p Path) String() string { return strings.Join(p.segments, "/") }

// Equal reports whether p and o have identical segments in identical
// order.
func (p Path) Equal(o Path) bool {
	if len(p.segments) != len(o.segments) {
		return false
	}
	for i := range p.segments {
		if p.segments[i] != o.segments[i] {
			return false
		}
	}
	return true
}

// Hash returns an order and length sensitive hash of the path.
// Segments are length prefixed before hashing, so paths whose joined
// representations collide (e.g. {"a/b"} and {"a","b"}) hash
// differently.
func (p Path) Hash() uint64 {
	var b []byte
	var n [4]byte
	for _, seg := range p.segments {
		binary.LittleEndian.PutUint32(n[:], uint32(len(seg)))
		b = append(b, n[:]...)
		b = append(b, seg...)
	}
	return xxh3.Hash(b)
}
