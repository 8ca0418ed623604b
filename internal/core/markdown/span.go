// Package markdown detects formatting spans in free-form text and segments it
// so a caller can rewrite the prose while code survives byte for byte.
//
// Three grammars are recognized: fenced code blocks, inline code, and block
// quotes. Detection is grammar-local: each sub-detector scans the whole input
// and does not suppress matches inside another grammar's span. Overlaps are
// resolved later, during segmentation
package markdown

// Kind identifies the grammar a span belongs to
type Kind string

const (
	// KindCodeBlock is a fenced code block
	KindCodeBlock Kind = "code_block"
	// KindInlineCode is inline code between single markers
	KindInlineCode Kind = "code_inline"
	// KindQuote is a run of quote lines at one nesting level
	KindQuote Kind = "quote"
	// KindPlain is ordinary prose between detections
	KindPlain Kind = "plain"
)

// Span is a detected formatting occurrence over the source text.
// Offsets are byte positions; End is exclusive and always equals
// Start + len(Original)
type Span struct {
	Kind     Kind
	Marker   string // literal delimiter text; empty for plain
	Language string // fence language tag, when declared
	Content  string // text strictly inside the delimiters
	Original string // the complete source substring, delimiters included
	Start    int
	End      int
}

// Contains reports whether s fully contains other
func (s Span) Contains(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// line is a source line by byte offsets; end excludes the line's newline
type line struct {
	start, end int
}

// splitLines walks text once and records every line's offsets.
// The final line has no trailing newline in the source iff end == len(text)
func splitLines(text string) []line {
	lines := make([]line, 0, 16)
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, line{start: start, end: i})
			start = i + 1
		}
	}
	return append(lines, line{start: start, end: len(text)})
}
