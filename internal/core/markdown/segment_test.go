package markdown

import (
	"strings"
	"testing"
)

// roundTripCorpus collects inputs that exercise every grammar interaction;
// each must survive detect -> segment -> reconstruct byte for byte
var roundTripCorpus = []string{
	"",
	"plain prose only",
	"  leading and trailing whitespace  ",
	"tabs\tand\nnewlines\n\n",
	"Use `x()` here",
	"`a` and `b`",
	"``not inline`` `yes`",
	"This `spans\nlines` badly",
	"a \\`b\\` c",
	"`a\\` b",
	"before\n```go\nfmt.Println()\n```\nafter",
	"```js\ncode",
	"```a\nx\n```b\ny\n```c\nz",
	"```\n> not a quote\n`nor inline`\n```",
	"a\n> L1\n>> L2\n> L3\nb",
	"> merged\n> quote\nplain",
	"> has `code` inside",
	"  > indented quote",
	"mixed\n```py\nprint(1)\n```\n> quoted `tick`\nend `inline` text\n",
	"> quote then\n```\nfence\n```\n> quote again",
}

func TestSegmentText_RoundTripCoverage(t *testing.T) {
	for _, text := range roundTripCorpus {
		t.Run(text, func(t *testing.T) {
			segs := SegmentText(text, Detect(text))

			var b strings.Builder
			cursor := 0
			for i, seg := range segs {
				f := seg.Formatting
				if f.Start != cursor {
					t.Fatalf("segment %d starts at %d, cursor at %d", i, f.Start, cursor)
				}
				if f.End != f.Start+len(f.Original) {
					t.Fatalf("segment %d End != Start + len(Original)", i)
				}
				if text[f.Start:f.End] != f.Original {
					t.Fatalf("segment %d original does not match source slice", i)
				}
				b.WriteString(f.Original)
				cursor = f.End
			}
			if cursor != len(text) {
				t.Fatalf("coverage ends at %d, want %d", cursor, len(text))
			}
			if b.String() != text {
				t.Fatalf("concatenated originals = %q, want %q", b.String(), text)
			}
		})
	}
}

func TestSegmentText_PlainGapsSynthesized(t *testing.T) {
	text := "Use `x()` here"
	segs := SegmentText(text, Detect(text))
	if len(segs) != 3 {
		t.Fatalf("segments = %d, want 3: %+v", len(segs), segs)
	}
	if segs[0].Formatting.Kind != KindPlain || segs[0].Formatting.Original != "Use " {
		t.Fatalf("segment 0 = %+v", segs[0].Formatting)
	}
	if segs[1].Formatting.Kind != KindInlineCode || segs[1].Formatting.Original != "`x()`" {
		t.Fatalf("segment 1 = %+v", segs[1].Formatting)
	}
	if segs[2].Formatting.Kind != KindPlain || segs[2].Formatting.Original != " here" {
		t.Fatalf("segment 2 = %+v", segs[2].Formatting)
	}
}

// A quote-looking line and an inline marker inside a code block are detected
// but lose to the block during segmentation
func TestSegmentText_CodeBlockWinsOverlaps(t *testing.T) {
	text := "```\n> not a quote\n`nor inline`\n```"
	spans := Detect(text)
	if len(spans) < 2 {
		t.Fatalf("expected grammar-local detections, got %+v", spans)
	}
	segs := SegmentText(text, spans)
	if len(segs) != 1 {
		t.Fatalf("segments = %d, want 1: %+v", len(segs), segs)
	}
	if segs[0].Formatting.Kind != KindCodeBlock {
		t.Fatalf("kind = %q, want code block", segs[0].Formatting.Kind)
	}
	if segs[0].Formatting.Original != text {
		t.Fatalf("block should cover the whole input")
	}
}

func TestSegmentText_QuoteWinsOverInnerInline(t *testing.T) {
	text := "> has `code` inside"
	segs := SegmentText(text, Detect(text))
	if len(segs) != 1 {
		t.Fatalf("segments = %d, want 1: %+v", len(segs), segs)
	}
	if segs[0].Formatting.Kind != KindQuote {
		t.Fatalf("kind = %q, want quote", segs[0].Formatting.Kind)
	}
}

func TestSegmentText_EmptyAndNoSpans(t *testing.T) {
	if segs := SegmentText("", nil); len(segs) != 0 {
		t.Fatalf("empty text should yield no segments, got %+v", segs)
	}
	segs := SegmentText("just prose", nil)
	if len(segs) != 1 {
		t.Fatalf("segments = %d, want 1", len(segs))
	}
	if segs[0].Formatting.Kind != KindPlain || segs[0].Formatting.Original != "just prose" {
		t.Fatalf("segment = %+v", segs[0].Formatting)
	}
}

func TestSegmentText_DoesNotMutateInputSpans(t *testing.T) {
	text := "x `a` y\n> q"
	spans := Detect(text)
	// deliberately unsorted copy
	shuffled := []Span{spans[len(spans)-1]}
	shuffled = append(shuffled, spans[:len(spans)-1]...)
	before := make([]Span, len(shuffled))
	copy(before, shuffled)

	_ = SegmentText(text, shuffled)

	for i := range before {
		if shuffled[i] != before[i] {
			t.Fatalf("input spans reordered at %d", i)
		}
	}
}

func TestDetect_OrderedByStart(t *testing.T) {
	text := "mixed\n```py\nprint(1)\n```\n> quoted `tick`\nend `inline` text\n"
	spans := Detect(text)
	for i := 1; i < len(spans); i++ {
		if spans[i].Start < spans[i-1].Start {
			t.Fatalf("spans out of order at %d: %+v", i, spans)
		}
	}
}

func TestDetect_EmptyInput(t *testing.T) {
	if got := Detect(""); len(got) != 0 {
		t.Fatalf("Detect(\"\") = %+v, want none", got)
	}
}

func TestDetect_SameKindSpansNeverPartiallyOverlap(t *testing.T) {
	for _, text := range roundTripCorpus {
		spans := Detect(text)
		for _, k := range []Kind{KindCodeBlock, KindInlineCode, KindQuote} {
			ks := onlyKind(spans, k)
			for i := 1; i < len(ks); i++ {
				if ks[i].Start < ks[i-1].End {
					t.Fatalf("%q: %s spans overlap: %+v", text, k, ks)
				}
			}
		}
	}
}
