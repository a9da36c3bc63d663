// Package sim orchestrates patrol simulations: per-floor sessions that
// turn a floor plan plus a fill snapshot into routes and movement-frame
// sequences, and buildings that chain floors through a shared transfer
// cell.
package sim

import (
	"fmt"

	"github.com/ecotrack/patrolsim/internal/algo"
	"github.com/ecotrack/patrolsim/internal/core"
	"github.com/ecotrack/patrolsim/internal/layout"
)

// Config carries the run parameters shared by every floor session.
type Config struct {
	Threshold float64 // due fraction, 0..1
	Dwell     algo.DwellConfig
}

// DefaultConfig returns the reference parameters: 80% threshold, 4s
// service pause, 1s quick check, 8 frames per second.
func DefaultConfig() Config {
	return Config{
		Threshold: 0.80,
		Dwell: algo.DwellConfig{
			ServicePauseSec: 4,
			QuickCheckSec:   1,
			FPS:             8,
		},
	}
}

// ConfigFromScenario lifts a scenario's run parameters into a Config.
func ConfigFromScenario(s *layout.Scenario) Config {
	return Config{
		Threshold: s.Threshold,
		Dwell: algo.DwellConfig{
			ServicePauseSec: s.ServicePauseSec,
			QuickCheckSec:   s.QuickCheckSec,
			FPS:             s.FPS,
		},
	}
}

// FloorSession owns one floor's grid and clusters for a single
// simulation run. It holds no state between runs; a new fill snapshot
// means a new session.
type FloorSession struct {
	Plan     *layout.FloorPlan
	Grid     *core.Grid
	Clusters []*core.Cluster
	cfg      Config
}

// NewFloorSession builds the floor grid, injects the fill snapshot
// (clusters missing from it default to zero), and verifies that every
// start, end, transfer, and service position is passable. A blocked
// required position is a setup-time contract violation and aborts
// construction before any pathfinding.
func NewFloorSession(plan *layout.FloorPlan, fills map[string]float64, cfg Config) (*FloorSession, error) {
	grid, clusters, err := plan.Build()
	if err != nil {
		return nil, err
	}
	for _, c := range clusters {
		c.FillPct = fills[c.Name]
	}
	s := &FloorSession{Plan: plan, Grid: grid, Clusters: clusters, cfg: cfg}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FloorSession) validate() error {
	check := func(what string, p core.Pos) error {
		blocked, err := s.Grid.Blocked(p.X, p.Y)
		if err != nil {
			return fmt.Errorf("sim: floor %s: %s: %w", s.Plan.Name, what, err)
		}
		if blocked {
			return fmt.Errorf("sim: floor %s: %s at (%d,%d): %w", s.Plan.Name, what, p.X, p.Y, core.ErrBlockedPosition)
		}
		return nil
	}

	if err := check("start", s.Plan.Start); err != nil {
		return err
	}
	if s.Plan.End != nil {
		if err := check("end", *s.Plan.End); err != nil {
			return err
		}
	}
	if s.Plan.Transfer != nil {
		if err := check("transfer", *s.Plan.Transfer); err != nil {
			return err
		}
	}
	for _, c := range s.Clusters {
		if err := check(fmt.Sprintf("service point %q", c.Name), c.Service); err != nil {
			return err
		}
	}
	return nil
}

// Due returns the names of clusters at or past the threshold, in
// declaration order.
func (s *FloorSession) Due() []string {
	var names []string
	for _, c := range s.Clusters {
		if c.IsDue(s.cfg.Threshold) {
			names = append(names, c.Name)
		}
	}
	return names
}

// duePredicate reports due status by service position.
func (s *FloorSession) duePredicate() func(core.Pos) bool {
	return func(p core.Pos) bool {
		for _, c := range s.Clusters {
			if c.Service == p {
				return c.IsDue(s.cfg.Threshold)
			}
		}
		return false
	}
}

// BuildRoute runs one route strategy over the floor.
func (s *FloorSession) BuildRoute(strategy core.Strategy) []core.Pos {
	rs := algo.ForStrategy(strategy)
	return rs.BuildRoute(s.Clusters, s.cfg.Threshold, s.Plan.Start, s.Plan.End)
}

// Run produces the route and frame sequence for one strategy and
// pathfinding algorithm. Unreachable segments are reported on the
// result, not swallowed.
func (s *FloorSession) Run(strategy core.Strategy, algorithm core.Algorithm) *Report {
	return s.runReport(strategy, algorithm, algo.ForAlgorithm(algorithm))
}
