package algo

import "github.com/ecotrack/patrolsim/internal/core"

// AStar searches with the Manhattan-distance heuristic. On a uniform-
// cost 4-connected grid the heuristic is admissible and consistent, so
// the returned path is optimal and no finalized cell is re-expanded.
type AStar struct{}

func (AStar) Name() string { return "A*" }

// FindPath implements PathFinder.
func (AStar) FindPath(g *core.Grid, start, goal core.Pos) []core.Pos {
	return search(g, start, goal, func(p core.Pos) int {
		return core.ManhattanDist(p, goal)
	})
}
