package markdown

import "sort"

// Detect scans text and returns every recognized formatting span, ordered by
// ascending start offset. The three sub-detectors run independently; a span
// of one kind may sit inside a span of another (an inline marker inside a
// fence, a quote-looking line inside a code block) and both are reported.
// Malformed or unterminated markup degrades to fewer spans, never to an error
func Detect(text string) []Span {
	if text == "" {
		return nil
	}
	blocks := detectCodeBlocks(text)
	spans := make([]Span, 0, len(blocks)+8)
	spans = append(spans, blocks...)
	spans = append(spans, detectInlineCode(text, blocks)...)
	spans = append(spans, detectQuotes(text)...)
	sortSpans(spans)
	return spans
}

// sortSpans orders by ascending start; on equal starts the longer span comes
// first, then the higher-priority kind, so the outermost span always leads
func sortSpans(spans []Span) {
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		if spans[i].End != spans[j].End {
			return spans[i].End > spans[j].End
		}
		return kindRank(spans[i].Kind) < kindRank(spans[j].Kind)
	})
}

// kindRank orders overlapping kinds; lower wins
func kindRank(k Kind) int {
	switch k {
	case KindCodeBlock:
		return 0
	case KindInlineCode:
		return 1
	case KindQuote:
		return 2
	default:
		return 3
	}
}
