package algo

import "github.com/ecotrack/patrolsim/internal/core"

// Dijkstra searches by accumulated cost alone, equivalent to AStar with
// a zero heuristic. It returns a path of the same length as AStar for
// every reachable goal.
type Dijkstra struct{}

func (Dijkstra) Name() string { return "Dijkstra" }

// FindPath implements PathFinder.
func (Dijkstra) FindPath(g *core.Grid, start, goal core.Pos) []core.Pos {
	return search(g, start, goal, func(core.Pos) int { return 0 })
}
