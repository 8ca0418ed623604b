package markdown

// Segment is the unit of reconstruction: a detected span, or a synthetic
// plain span for the text between detections, optionally carrying a
// replacement supplied by the caller
type Segment struct {
	Formatting  Span
	Transformed *string // nil preserves the original text; "" is a valid replacement
}

// SegmentText produces a total, gap-free segmentation of text from detected
// spans. Spans are swept once in ascending-start order (longest first on
// ties); a span that begins inside an accepted one is dropped from the
// segmentation, and every uncovered stretch becomes a synthetic plain
// segment. Concatenating the segments' original text reproduces the input
// exactly
func SegmentText(text string, spans []Span) []Segment {
	ordered := make([]Span, len(spans))
	copy(ordered, spans)
	sortSpans(ordered)

	segs := make([]Segment, 0, 2*len(ordered)+1)
	cursor := 0
	for _, sp := range ordered {
		if sp.Start < cursor {
			continue // overlapped by an accepted earlier span
		}
		if sp.Start > cursor {
			segs = append(segs, plainSegment(text, cursor, sp.Start))
		}
		segs = append(segs, Segment{Formatting: sp})
		cursor = sp.End
	}
	if cursor < len(text) {
		segs = append(segs, plainSegment(text, cursor, len(text)))
	}
	return segs
}

func plainSegment(text string, start, end int) Segment {
	raw := text[start:end]
	return Segment{Formatting: Span{
		Kind:     KindPlain,
		Content:  raw,
		Original: raw,
		Start:    start,
		End:      end,
	}}
}
