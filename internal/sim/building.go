package sim

import (
	"errors"
	"fmt"

	"github.com/ecotrack/patrolsim/internal/core"
	"github.com/ecotrack/patrolsim/internal/layout"
)

// ErrTransferMismatch indicates floors that are supposed to hand off
// through the same cell declare different transfer positions.
var ErrTransferMismatch = errors.New("sim: transfer positions differ between floors")

// Building composes floor sessions into one itinerary: the ground floor
// ends its route at the shared transfer cell, upper floors start and end
// there, so per-floor routes concatenate into a building-wide patrol.
// Floors share no state and could run independently.
type Building struct {
	Sessions []*FloorSession
}

// NewBuilding creates a session per scenario floor and checks that all
// declared transfer positions agree.
func NewBuilding(scn *layout.Scenario, cfg Config) (*Building, error) {
	if len(scn.Floors) == 0 {
		return nil, errors.New("sim: scenario has no floors")
	}

	var transfer *core.Pos
	sessions := make([]*FloorSession, 0, len(scn.Floors))
	for _, plan := range scn.Floors {
		if plan.Transfer != nil {
			if transfer == nil {
				transfer = plan.Transfer
			} else if *plan.Transfer != *transfer {
				return nil, fmt.Errorf("%w: floor %s has (%d,%d), want (%d,%d)",
					ErrTransferMismatch, plan.Name,
					plan.Transfer.X, plan.Transfer.Y, transfer.X, transfer.Y)
			}
		}
		s, err := NewFloorSession(plan, scn.FloorFills(plan.Name), cfg)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return &Building{Sessions: sessions}, nil
}

// Run produces one report per floor for the given strategy and
// algorithm, in floor order.
func (b *Building) Run(strategy core.Strategy, algorithm core.Algorithm) []*Report {
	reports := make([]*Report, len(b.Sessions))
	for i, s := range b.Sessions {
		reports[i] = s.Run(strategy, algorithm)
	}
	return reports
}

// ConcatRoutes joins per-floor routes into the building-wide itinerary,
// dropping the duplicated transfer cell where one floor's end meets the
// next floor's start.
func ConcatRoutes(reports []*Report) []core.Pos {
	var route []core.Pos
	for _, r := range reports {
		seg := r.Route
		if len(route) > 0 && len(seg) > 0 && route[len(route)-1] == seg[0] {
			seg = seg[1:]
		}
		route = append(route, seg...)
	}
	return route
}
