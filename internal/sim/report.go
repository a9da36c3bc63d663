package sim

import (
	"time"

	"github.com/google/uuid"

	"github.com/ecotrack/patrolsim/internal/algo"
	"github.com/ecotrack/patrolsim/internal/core"
)

// Report is the outcome of one (floor, strategy, algorithm) run: the
// ordered waypoint route, the per-tick frame sequence, and everything a
// caller needs to judge or render it. Route and Frames are values owned
// by the caller from here on.
type Report struct {
	RunID     string
	Floor     string
	Strategy  core.Strategy
	Algorithm core.Algorithm

	Route  []core.Pos
	Frames []core.Pos
	Due    []string // due cluster names, declaration order

	// Unreachable lists route segments with no path between them. A
	// non-empty list means the route is not a physically valid patrol
	// and the layout should be fixed.
	Unreachable []algo.Segment

	Elapsed time.Duration
}

// Valid reports whether every route segment was pathable.
func (r *Report) Valid() bool {
	return len(r.Unreachable) == 0
}

func (s *FloorSession) runReport(strategy core.Strategy, algorithm core.Algorithm, pf algo.PathFinder) *Report {
	start := time.Now()
	route := s.BuildRoute(strategy)
	frames, unreachable := algo.BuildFrames(
		s.Grid, route, s.duePredicate(), strategy, pf, s.cfg.Dwell, s.Plan.End,
	)
	return &Report{
		RunID:       uuid.NewString(),
		Floor:       s.Plan.Name,
		Strategy:    strategy,
		Algorithm:   algorithm,
		Route:       route,
		Frames:      frames,
		Due:         s.Due(),
		Unreachable: unreachable,
		Elapsed:     time.Since(start),
	}
}
