// Package elevator splits free-form text that mixes prose with
// markdown-style formatting into an ordered, gap-free list of segments, so a
// caller-supplied capability can rewrite the prose and quotes while fenced
// code blocks and inline code survive byte for byte, then reassembles the
// text exactly.
//
// The three pure operations compose one way:
//
//	spans := elevator.Detect(text)
//	segs := elevator.SegmentText(text, spans)
//	// attach replacements to eligible segments, then
//	out := elevator.Reconstruct(segs)
//
// Elevate runs the whole pipeline, fanning the capability out over eligible
// segments concurrently and preserving any segment whose rewrite fails
package elevator

import (
	"context"

	"elevator/internal/core/markdown"
	"elevator/internal/platform/config"
	"elevator/internal/services/elevate/domain"
	elevmod "elevator/internal/services/elevate/module"
)

// Kind identifies the grammar a span belongs to
type Kind = markdown.Kind

// Span kinds
const (
	KindCodeBlock  = markdown.KindCodeBlock
	KindInlineCode = markdown.KindInlineCode
	KindQuote      = markdown.KindQuote
	KindPlain      = markdown.KindPlain
)

// Span is a detected formatting occurrence with exact byte offsets
type Span = markdown.Span

// Segment is the unit of reconstruction, optionally carrying a replacement
type Segment = markdown.Segment

// ElevatorFunc is the transformation capability consumed by Elevate
type ElevatorFunc = domain.ElevatorFunc

// Result summarizes one Elevate run
type Result = domain.Result

// Detect scans text and returns every recognized formatting span ordered by
// ascending start. Malformed input degrades to fewer spans, never an error
func Detect(text string) []Span { return markdown.Detect(text) }

// SegmentText produces a total, gap-free segmentation of text from spans;
// concatenating the segments' original text reproduces text exactly
func SegmentText(text string, spans []Span) []Segment { return markdown.SegmentText(text, spans) }

// RenderSegment returns a segment's replacement when present (an empty
// replacement counts), otherwise its original text
func RenderSegment(seg Segment) string { return markdown.RenderSegment(seg) }

// Reconstruct concatenates segments in order; a nil or empty list yields ""
func Reconstruct(segs []Segment) string { return markdown.Reconstruct(segs) }

// Elevate runs detect, segment, concurrent per-segment rewriting of plain
// and quote segments through fn, and reconstruction. Failed rewrites keep
// their segment's original text; the returned string is always complete
func Elevate(ctx context.Context, text string, fn ElevatorFunc) (string, error) {
	res, err := ElevateWithResult(ctx, text, fn)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// ElevateWithResult is Elevate with the run's segment counters included
func ElevateWithResult(ctx context.Context, text string, fn ElevatorFunc) (Result, error) {
	m, err := elevmod.New(config.New(), fn, elevmod.Options{})
	if err != nil {
		return Result{}, err
	}
	return m.Ports().Runner.Run(ctx, domain.Input{Text: text})
}
