package markdown

const (
	inlineMarker = '`'
	escapeChar   = '\\'
)

// inlineState names the cursor walker's states
type inlineState int

const (
	stateScanning inlineState = iota
	stateInCandidate
)

// detectInlineCode walks text with an explicit cursor rather than a single
// pattern: escape runs, fence adjacency and the no-newline rule depend on one
// another, and a composed pattern for them backtracks badly.
//
// Rules, in cursor order:
//   - a marker preceded by an odd run of escape characters neither opens nor
//     closes a span
//   - two adjacent unescaped markers belong to a potential fence; the whole
//     run is skipped
//   - inside a candidate, the first marker closes the span, escaped or not,
//     with the escape bytes kept inside the content
//   - a candidate that reaches a newline or the end of text produces nothing
//     and scanning resumes one byte past its opener
//   - a finished span fully contained in a detected code block is discarded
func detectInlineCode(text string, blocks []Span) []Span {
	var out []Span
	state := stateScanning
	open := 0
	i := 0
	for i < len(text) {
		c := text[i]
		switch state {
		case stateScanning:
			if c != inlineMarker || escaped(text, i) {
				i++
				continue
			}
			if i+1 < len(text) && text[i+1] == inlineMarker {
				for i < len(text) && text[i] == inlineMarker {
					i++
				}
				continue
			}
			open = i
			state = stateInCandidate
			i++
		case stateInCandidate:
			if c == '\n' {
				state = stateScanning
				i = open + 1
				continue
			}
			if c != inlineMarker {
				i++
				continue
			}
			sp := Span{
				Kind:     KindInlineCode,
				Marker:   string(inlineMarker),
				Content:  text[open+1 : i],
				Original: text[open : i+1],
				Start:    open,
				End:      i + 1,
			}
			if !insideBlock(sp, blocks) {
				out = append(out, sp)
			}
			state = stateScanning
			i++
		}
	}
	// a candidate still open at end of text produced no span; everything
	// after its opener held no marker, so there is nothing left to rescan
	return out
}

// escaped reports whether the byte at pos sits behind an odd run of escape
// characters
func escaped(text string, pos int) bool {
	n := 0
	for i := pos - 1; i >= 0 && text[i] == escapeChar; i-- {
		n++
	}
	return n%2 == 1
}

// insideBlock reports whether sp is fully contained in any detected code
// block; code blocks win over inline code
func insideBlock(sp Span, blocks []Span) bool {
	for _, b := range blocks {
		if b.Contains(sp) {
			return true
		}
	}
	return false
}
