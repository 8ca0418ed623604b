// Package module wires the elevate service to its capability port
package module

import (
	"elevator/internal/core/markdown"
	"elevator/internal/platform/config"
	perr "elevator/internal/platform/errors"
	"elevator/internal/platform/validate"
	"elevator/internal/services/elevate/domain"
	"elevator/internal/services/elevate/service"
)

// Ports exposed by the elevate module
type Ports struct {
	Runner domain.RunnerPort
}

// Module owns the assembled elevate service
type Module struct {
	cfg   Options
	ports Ports
}

// New constructs the module around the caller-supplied capability.
// Config comes from cfg; non-zero overrides win. An explicit eligible kind
// set replaces the conventional plain+quote default, so elevation policy
// stays with the caller
func New(cfg config.Conf, elev domain.ElevatorPort, overrides Options, eligible ...markdown.Kind) (*Module, error) {
	if elev == nil {
		return nil, perr.InvalidArgf("elevate module: capability is required")
	}

	merged := FromConfig(cfg)
	if overrides.Workers != 0 {
		merged.Workers = overrides.Workers
	}
	if err := validate.Struct(merged); err != nil {
		return nil, perr.WithOp(err, "elevate.New")
	}

	var el map[markdown.Kind]bool
	if len(eligible) > 0 {
		el = make(map[markdown.Kind]bool, len(eligible))
		for _, k := range eligible {
			el[k] = true
		}
	}

	m := &Module{cfg: merged}
	m.ports = Ports{
		Runner: service.New(elev, service.Config{
			Workers:  merged.Workers,
			Eligible: el,
		}),
	}
	return m, nil
}

// Name identifies the module
func (m *Module) Name() string { return "elevate" }

// Ports returns the module's exposed ports
func (m *Module) Ports() Ports { return m.ports }

// Options returns the merged, validated options
func (m *Module) Options() Options { return m.cfg }
