package algo

import (
	"sort"

	"github.com/ecotrack/patrolsim/internal/core"
)

// RouteStrategy orders the waypoints an agent visits on one floor.
type RouteStrategy interface {
	// BuildRoute returns [start] + selected service positions, with the
	// configured end appended last when set. Each selected service
	// position appears exactly once.
	BuildRoute(clusters []*core.Cluster, threshold float64, start core.Pos, end *core.Pos) []core.Pos

	// Mode returns the tagged strategy variant.
	Mode() core.Strategy

	// Name returns the strategy name.
	Name() string
}

// ForStrategy returns the RouteStrategy for a tagged variant.
func ForStrategy(s core.Strategy) RouteStrategy {
	if s == core.FullPatrol {
		return FullPatrolRoute{}
	}
	return NearestDueRoute{}
}

// NearestDueRoute visits only due clusters. From the current position it
// repeatedly picks the remaining due service position with the smallest
// Manhattan distance; equidistant candidates resolve to the earliest in
// cluster declaration order.
type NearestDueRoute struct{}

func (NearestDueRoute) Name() string        { return "Nearest-Due" }
func (NearestDueRoute) Mode() core.Strategy { return core.NearestDue }

// BuildRoute implements RouteStrategy.
func (NearestDueRoute) BuildRoute(clusters []*core.Cluster, threshold float64, start core.Pos, end *core.Pos) []core.Pos {
	var remaining []core.Pos
	for _, c := range clusters {
		if c.IsDue(threshold) {
			remaining = append(remaining, c.Service)
		}
	}

	route := []core.Pos{start}
	cur := start
	for len(remaining) > 0 {
		best := 0
		for i := 1; i < len(remaining); i++ {
			if core.ManhattanDist(remaining[i], cur) < core.ManhattanDist(remaining[best], cur) {
				best = i
			}
		}
		cur = remaining[best]
		route = append(route, cur)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	return appendEnd(route, end)
}

// FullPatrolRoute visits every cluster regardless of fill, sorted by
// (zone rank, y, x). The order never depends on the agent position, so
// coverage is exhaustive and predictable rather than optimal.
type FullPatrolRoute struct{}

func (FullPatrolRoute) Name() string        { return "Full-Patrol" }
func (FullPatrolRoute) Mode() core.Strategy { return core.FullPatrol }

// BuildRoute implements RouteStrategy.
func (FullPatrolRoute) BuildRoute(clusters []*core.Cluster, threshold float64, start core.Pos, end *core.Pos) []core.Pos {
	ordered := make([]*core.Cluster, len(clusters))
	copy(ordered, clusters)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Zone.Rank() != b.Zone.Rank() {
			return a.Zone.Rank() < b.Zone.Rank()
		}
		if a.Service.Y != b.Service.Y {
			return a.Service.Y < b.Service.Y
		}
		return a.Service.X < b.Service.X
	})

	route := make([]core.Pos, 0, len(ordered)+2)
	route = append(route, start)
	for _, c := range ordered {
		route = append(route, c.Service)
	}
	return appendEnd(route, end)
}

// appendEnd adds the configured end waypoint unless the route never left
// a start identical to it, which would duplicate the single cell of a
// degenerate route.
func appendEnd(route []core.Pos, end *core.Pos) []core.Pos {
	if end == nil {
		return route
	}
	if len(route) == 1 && route[0] == *end {
		return route
	}
	return append(route, *end)
}
