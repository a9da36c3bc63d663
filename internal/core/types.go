// Package core defines domain models for waste-patrol route planning.
package core

// Zone categorizes where a cluster sits on a floor. The fixed order of
// the enumeration drives the full-patrol visiting sequence.
type Zone int

const (
	ZoneBottomLeft Zone = iota
	ZoneBottomCenter
	ZoneBottomRight
	ZoneCanteen
	ZoneCoop
	ZoneOther
)

var zoneNames = [...]string{"bottom_left", "bottom_center", "bottom_right", "canteen", "coop", "other"}

func (z Zone) String() string {
	if z < 0 || int(z) >= len(zoneNames) {
		return "other"
	}
	return zoneNames[z]
}

// Rank returns the total order used by full patrol. Zones outside the
// enumeration sort last, together with ZoneOther.
func (z Zone) Rank() int {
	if z < 0 || z > ZoneOther {
		return int(ZoneOther)
	}
	return int(z)
}

// ParseZone maps a scenario label to a Zone. Unknown labels are ZoneOther.
func ParseZone(s string) Zone {
	for i, name := range zoneNames {
		if name == s {
			return Zone(i)
		}
	}
	return ZoneOther
}

// Strategy tags a route-ordering policy.
type Strategy int

const (
	NearestDue Strategy = iota // Visit only due clusters, greedy by distance
	FullPatrol                 // Visit every cluster in fixed zone order
)

func (s Strategy) String() string {
	return [...]string{"nearest-due", "full-patrol"}[s]
}

// Strategies returns all route strategies.
func Strategies() []Strategy {
	return []Strategy{NearestDue, FullPatrol}
}

// Algorithm tags a per-segment pathfinding variant.
type Algorithm int

const (
	AStar Algorithm = iota
	Dijkstra
)

func (a Algorithm) String() string {
	return [...]string{"astar", "dijkstra"}[a]
}

// Algorithms returns all pathfinding variants.
func Algorithms() []Algorithm {
	return []Algorithm{AStar, Dijkstra}
}
