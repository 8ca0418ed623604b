package markdown

import "strings"

// RenderSegment returns the replacement when one is attached, even when the
// replacement is empty, and the original captured text otherwise
func RenderSegment(seg Segment) string {
	if seg.Transformed != nil {
		return *seg.Transformed
	}
	return seg.Formatting.Original
}

// Reconstruct rebuilds the final text by concatenating every segment in
// positional order with no separators. A nil or empty list yields ""
func Reconstruct(segs []Segment) string {
	if len(segs) == 0 {
		return ""
	}
	size := 0
	for i := range segs {
		size += len(RenderSegment(segs[i]))
	}
	var b strings.Builder
	b.Grow(size)
	for i := range segs {
		b.WriteString(RenderSegment(segs[i]))
	}
	return b.String()
}
