// Package domain defines the core types and interfaces for the elevate service
package domain

import "elevator/internal/core/markdown"

// Input carries one elevation request through the pipeline
type Input struct {
	Text string
}

// Result is the outcome of one elevation run. Text is always a complete
// string: segments whose rewrite failed or was skipped appear verbatim
type Result struct {
	Text      string
	Segments  int // total segments produced
	Elevated  int // segments replaced by the capability
	Preserved int // segments kept verbatim, failed rewrites included
	Failed    int // eligible segments whose rewrite errored
}

// DefaultEligible returns the conventional set of kinds handed to the
// capability: prose and quotes, never code
func DefaultEligible() map[markdown.Kind]bool {
	return map[markdown.Kind]bool{
		markdown.KindPlain: true,
		markdown.KindQuote: true,
	}
}
