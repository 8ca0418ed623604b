// Package service implements the elevate pipeline
package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"elevator/internal/core/markdown"
	"elevator/internal/platform/logger"
	str "elevator/internal/platform/strings"
	"elevator/internal/services/elevate/domain"
)

// newRunID stamps each run for log correlation; swappable in tests
var newRunID = uuid.NewString

// Config for the elevate service
type Config struct {
	Workers  int
	Eligible map[markdown.Kind]bool // nil means the conventional plain+quote set
}

// Service implements domain.RunnerPort
type Service struct {
	Elev domain.ElevatorPort
	Cfg  Config
}

// New constructs a new elevate service
func New(elev domain.ElevatorPort, cfg Config) *Service {
	if elev == nil {
		panic("elevate service: ElevatorPort is required")
	}
	w := cfg.Workers
	if w <= 0 {
		w = 4
	}
	el := cfg.Eligible
	if el == nil {
		el = domain.DefaultEligible()
	}
	return &Service{Elev: elev, Cfg: Config{Workers: w, Eligible: el}}
}

// outcome records one segment's capability call
type outcome struct {
	attempted bool
	text      string
	err       error
}

// Run detects formatting in the input, hands eligible segments to the
// capability concurrently under a worker cap, and reassembles the text in
// positional order regardless of completion order. A failed rewrite keeps
// that segment verbatim; Run always returns a complete string
func (s *Service) Run(ctx context.Context, in domain.Input) (domain.Result, error) {
	ctx = logger.WithRun(ctx, newRunID())
	log := logger.C(ctx)

	spans := markdown.Detect(in.Text)
	segs := markdown.SegmentText(in.Text, spans)

	out := make([]outcome, len(segs))
	sem := make(chan struct{}, s.Cfg.Workers)
	wg := sync.WaitGroup{}

	for i := range segs {
		if !s.Cfg.Eligible[segs[i].Formatting.Kind] || segs[i].Formatting.Original == "" {
			continue
		}
		out[i].attempted = true
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem; wg.Done() }()
			t, err := s.Elev.Elevate(ctx, segs[i].Formatting.Original)
			out[i].text, out[i].err = t, err
		}(i)
	}
	wg.Wait()

	res := domain.Result{Segments: len(segs)}
	for i := range segs {
		switch {
		case !out[i].attempted:
			res.Preserved++
		case out[i].err != nil:
			res.Failed++
			res.Preserved++
			log.Warn().
				Err(out[i].err).
				Int("segment", i).
				Str("kind", string(segs[i].Formatting.Kind)).
				Msg("rewrite failed; keeping original")
		default:
			segs[i].Transformed = str.Ref(out[i].text)
			res.Elevated++
		}
	}

	res.Text = markdown.Reconstruct(segs)
	log.Debug().
		Int("segments", res.Segments).
		Int("elevated", res.Elevated).
		Int("preserved", res.Preserved).
		Int("failed", res.Failed).
		Msg("run complete")
	return res, nil
}
