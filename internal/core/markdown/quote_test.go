package markdown

import "testing"

func TestQuote_NestingTransitions(t *testing.T) {
	text := "a\n> L1\n>> L2\n> L3\nb"
	quotes := onlyKind(Detect(text), KindQuote)
	if len(quotes) != 3 {
		t.Fatalf("quotes = %d, want 3: %+v", len(quotes), quotes)
	}
	want := []struct {
		marker  string
		content string
	}{
		{">", "L1"},
		{">>", "L2"},
		{">", "L3"},
	}
	for i, w := range want {
		if quotes[i].Marker != w.marker {
			t.Fatalf("quote %d marker = %q, want %q", i, quotes[i].Marker, w.marker)
		}
		if quotes[i].Content != w.content {
			t.Fatalf("quote %d content = %q, want %q", i, quotes[i].Content, w.content)
		}
	}
}

func TestQuote_MergesEqualLevels(t *testing.T) {
	text := "> a\n> b\nc"
	quotes := onlyKind(Detect(text), KindQuote)
	if len(quotes) != 1 {
		t.Fatalf("quotes = %d, want 1", len(quotes))
	}
	q := quotes[0]
	if q.Content != "a\nb" {
		t.Fatalf("content = %q, want %q", q.Content, "a\nb")
	}
	if q.Original != "> a\n> b" {
		t.Fatalf("original = %q", q.Original)
	}
	if q.Start != 0 || q.End != 7 {
		t.Fatalf("offsets = [%d,%d), want [0,7)", q.Start, q.End)
	}
}

func TestQuote_ClosesAtEndOfText(t *testing.T) {
	text := "intro\n> tail"
	quotes := onlyKind(Detect(text), KindQuote)
	if len(quotes) != 1 {
		t.Fatalf("quotes = %d, want 1", len(quotes))
	}
	if quotes[0].End != len(text) {
		t.Fatalf("End = %d, want %d", quotes[0].End, len(text))
	}
	if quotes[0].Content != "tail" {
		t.Fatalf("content = %q", quotes[0].Content)
	}
}

func TestQuote_LeadingWhitespaceKeptInOriginal(t *testing.T) {
	text := "  > q"
	quotes := onlyKind(Detect(text), KindQuote)
	if len(quotes) != 1 {
		t.Fatalf("quotes = %d, want 1", len(quotes))
	}
	q := quotes[0]
	if q.Original != "  > q" || q.Start != 0 {
		t.Fatalf("span = %+v", q)
	}
	if q.Content != "q" || q.Marker != ">" {
		t.Fatalf("content = %q marker = %q", q.Content, q.Marker)
	}
}

func TestQuote_OptionalSingleSpace(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{">no space", "no space"},
		{"> one space", "one space"},
		{">  two spaces", " two spaces"}, // only one space is part of the marker
		{">", ""},
	}
	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			quotes := onlyKind(Detect(c.text), KindQuote)
			if len(quotes) != 1 {
				t.Fatalf("quotes = %d, want 1", len(quotes))
			}
			if quotes[0].Content != c.want {
				t.Fatalf("content = %q, want %q", quotes[0].Content, c.want)
			}
		})
	}
}

// Detection is grammar-local: a quote-looking line inside a code block is
// still reported; segmentation is what drops it
func TestQuote_DetectedInsideCodeBlock(t *testing.T) {
	text := "```\n> not prose\n```"
	quotes := onlyKind(Detect(text), KindQuote)
	if len(quotes) != 1 {
		t.Fatalf("quotes = %d, want 1: %+v", len(quotes), quotes)
	}
	if quotes[0].Content != "not prose" {
		t.Fatalf("content = %q", quotes[0].Content)
	}
}

func TestQuote_DeepNesting(t *testing.T) {
	text := ">>> deep\n>>> again"
	quotes := onlyKind(Detect(text), KindQuote)
	if len(quotes) != 1 {
		t.Fatalf("quotes = %d, want 1", len(quotes))
	}
	if quotes[0].Marker != ">>>" {
		t.Fatalf("marker = %q", quotes[0].Marker)
	}
	if quotes[0].Content != "deep\nagain" {
		t.Fatalf("content = %q", quotes[0].Content)
	}
}
