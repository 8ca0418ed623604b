package markdown

import "strings"

// quoteMarker prefixes a quote line; its repetition count is the nesting level
const quoteMarker = '>'

// detectQuotes merges consecutive quote lines of equal nesting level into one
// span, content lines joined by newlines with the marker prefix stripped from
// each. A change in level, or a line that is not a quote line, closes the
// current span; a span still open at end of text closes at the final offset
func detectQuotes(text string) []Span {
	var (
		out       []Span
		active    bool
		level     int
		spanStart int
		spanEnd   int
		content   []string
	)
	flush := func() {
		if !active {
			return
		}
		out = append(out, Span{
			Kind:     KindQuote,
			Marker:   strings.Repeat(string(quoteMarker), level),
			Content:  strings.Join(content, "\n"),
			Original: text[spanStart:spanEnd],
			Start:    spanStart,
			End:      spanEnd,
		})
		active = false
		content = content[:0]
	}

	for _, ln := range splitLines(text) {
		lvl, from, ok := matchQuoteLine(text, ln)
		if !ok {
			flush()
			continue
		}
		if active && lvl != level {
			flush()
		}
		if !active {
			active = true
			level = lvl
			spanStart = ln.start
		}
		spanEnd = ln.end
		content = append(content, text[from:ln.end])
	}
	flush()
	return out
}

// matchQuoteLine matches optional leading spaces or tabs, one or more quote
// markers, then an optional single space before the content
func matchQuoteLine(text string, ln line) (level, contentFrom int, ok bool) {
	i := ln.start
	for i < ln.end && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	for i < ln.end && text[i] == quoteMarker {
		level++
		i++
	}
	if level == 0 {
		return 0, 0, false
	}
	if i < ln.end && text[i] == ' ' {
		i++
	}
	return level, i, true
}
