package markdown

import "strings"

// fenceMarker opens and closes a code block at the start of a line
const fenceMarker = "```"

// detectCodeBlocks pairs fence lines strictly left to right. An opening fence
// with no fence line anywhere after it yields nothing: unclosed blocks are
// invisible, not errors. Pairing is pairwise, so when several opening fences
// appear with no bare closer between them, a later opening fence is consumed
// as the closer of the earlier block. A stricter nearest-bare-fence rule would
// segment some existing inputs differently; keep the pairing as is
func detectCodeBlocks(text string) []Span {
	lines := splitLines(text)
	var out []Span
	for i := 0; i < len(lines); i++ {
		lang, ok := openingFence(text, lines[i])
		if !ok {
			continue
		}
		j := closingFence(text, lines, i+1)
		if j < 0 {
			continue
		}
		open, close := lines[i], lines[j]
		content := ""
		if close.start-1 > open.end+1 {
			content = text[open.end+1 : close.start-1]
		}
		out = append(out, Span{
			Kind:     KindCodeBlock,
			Marker:   fenceMarker,
			Language: lang,
			Content:  content,
			Original: text[open.start:close.end],
			Start:    open.start,
			End:      close.end,
		})
		i = j
	}
	return out
}

// openingFence matches the marker at the start of the line, an optional
// language tag of alphanumerics and hyphens filling the rest of the line, and
// a newline after the line (a fence on the final unterminated line cannot
// open a block)
func openingFence(text string, ln line) (lang string, ok bool) {
	s := text[ln.start:ln.end]
	if !strings.HasPrefix(s, fenceMarker) || ln.end >= len(text) {
		return "", false
	}
	tag := s[len(fenceMarker):]
	if !validLanguageTag(tag) {
		return "", false
	}
	return tag, true
}

// closingFence returns the index of the first fence line at or after from,
// or -1 when the block is unterminated. Any line starting with the marker
// closes, including a line that would itself be a valid opening
func closingFence(text string, lines []line, from int) int {
	for j := from; j < len(lines); j++ {
		if strings.HasPrefix(text[lines[j].start:lines[j].end], fenceMarker) {
			return j
		}
	}
	return -1
}

func validLanguageTag(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return true
}
