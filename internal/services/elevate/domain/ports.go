package domain

import "context"

// ElevatorPort is the external capability that rewrites a single piece of
// prose. Implementations live outside this module; transport, retries, rate
// limits and timeouts are theirs to handle
type ElevatorPort interface {
	Elevate(ctx context.Context, text string) (string, error)
}

// ElevatorFunc adapts a plain function to ElevatorPort
type ElevatorFunc func(ctx context.Context, text string) (string, error)

// Elevate implements ElevatorPort
func (f ElevatorFunc) Elevate(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}

// RunnerPort is the external port for the elevate pipeline
type RunnerPort interface {
	Run(ctx context.Context, in Input) (Result, error)
}
