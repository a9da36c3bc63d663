package algo

import (
	"math"

	"github.com/ecotrack/patrolsim/internal/core"
)

// DwellConfig converts stop durations into frame repetitions.
type DwellConfig struct {
	ServicePauseSec float64 // full stop at a due service position
	QuickCheckSec   float64 // short stop at a non-due position (full patrol)
	FPS             int
}

// Frames returns the repetition count for a stop of the given duration,
// rounded to the nearest frame and never fewer than one.
func (d DwellConfig) Frames(sec float64) int {
	n := int(math.Round(sec * float64(d.FPS)))
	if n < 1 {
		n = 1
	}
	return n
}

// Segment identifies one waypoint pair of a route.
type Segment struct {
	From, To core.Pos
}

// BuildFrames expands a route into the literal per-tick trajectory a
// renderer can play back: each segment is pathfound with pf, the path is
// appended without its first cell to avoid duplicating the previous
// arrival, and arrival cells repeat for dwell time. Due arrivals dwell
// for the service pause; non-due arrivals dwell for a quick check in
// full-patrol mode only. The configured end waypoint is a handoff, not a
// checkpoint, and never dwells.
//
// Segments with no path contribute neither movement nor dwell and are
// returned so the caller can report the layout problem instead of
// playing back a teleporting agent.
func BuildFrames(g *core.Grid, route []core.Pos, due func(core.Pos) bool, mode core.Strategy, pf PathFinder, dwell DwellConfig, end *core.Pos) ([]core.Pos, []Segment) {
	if len(route) < 2 {
		return nil, nil
	}

	var frames []core.Pos
	var unreachable []Segment

	for i := 0; i < len(route)-1; i++ {
		a, b := route[i], route[i+1]
		seg := pf.FindPath(g, a, b)
		if len(seg) == 0 {
			unreachable = append(unreachable, Segment{From: a, To: b})
			continue
		}
		if len(seg) > 1 {
			frames = append(frames, seg[1:]...)
		}
		if end != nil && b == *end {
			continue
		}
		switch {
		case due(b):
			frames = append(frames, repeat(b, dwell.Frames(dwell.ServicePauseSec))...)
		case mode == core.FullPatrol:
			frames = append(frames, repeat(b, dwell.Frames(dwell.QuickCheckSec))...)
		}
	}
	return frames, unreachable
}

func repeat(p core.Pos, n int) []core.Pos {
	out := make([]core.Pos, n)
	for i := range out {
		out[i] = p
	}
	return out
}
