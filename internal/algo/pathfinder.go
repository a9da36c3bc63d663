// Package algo implements grid pathfinding, route ordering, and frame
// expansion for patrol simulations.
package algo

import (
	"container/heap"

	"github.com/ecotrack/patrolsim/internal/core"
)

// PathFinder computes a shortest 4-connected path between two cells.
type PathFinder interface {
	// FindPath returns the cell sequence from start to goal inclusive.
	// An empty path means the goal is unreachable, which is a normal
	// outcome the caller must handle; start == goal yields [start].
	// When several optimal paths exist, only the length is guaranteed,
	// not the exact cell sequence.
	FindPath(g *core.Grid, start, goal core.Pos) []core.Pos

	// Name returns the algorithm name.
	Name() string
}

// ForAlgorithm returns the PathFinder for a tagged algorithm variant.
func ForAlgorithm(a core.Algorithm) PathFinder {
	if a == core.Dijkstra {
		return Dijkstra{}
	}
	return AStar{}
}

// steps are the four axis-aligned moves; diagonals are not permitted.
var steps = [4]core.Pos{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}

// node is an entry on the search frontier.
type node struct {
	pos    core.Pos
	g      int // cost from start
	f      int // g + heuristic
	parent *node
	index  int // heap index
}

// frontier implements heap.Interface ordered by f.
type frontier []*node

func (h frontier) Len() int           { return len(h) }
func (h frontier) Less(i, j int) bool { return h[i].f < h[j].f }
func (h frontier) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *frontier) Push(x any) {
	n := x.(*node)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *frontier) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

// search runs best-first search over uniform-cost 4-connected cells.
// With h == 0 it is Dijkstra; with an admissible h it is A*. The first
// pop of a cell is final. Every expanded node carries a parent pointer,
// the start node a nil one, so reconstruction terminates exactly at the
// start.
func search(g *core.Grid, start, goal core.Pos, h func(core.Pos) int) []core.Pos {
	if start == goal {
		return []core.Pos{start}
	}

	open := &frontier{}
	heap.Init(open)
	heap.Push(open, &node{pos: start, g: 0, f: h(start)})

	gScore := map[core.Pos]int{start: 0}
	visited := make(map[core.Pos]bool)

	for open.Len() > 0 {
		cur := heap.Pop(open).(*node)
		if visited[cur.pos] {
			continue
		}
		visited[cur.pos] = true

		if cur.pos == goal {
			return reconstruct(cur)
		}

		for _, d := range steps {
			next := core.Pos{X: cur.pos.X + d.X, Y: cur.pos.Y + d.Y}
			if !g.Passable(next.X, next.Y) || visited[next] {
				continue
			}
			ng := cur.g + 1
			if best, ok := gScore[next]; ok && ng >= best {
				continue
			}
			gScore[next] = ng
			heap.Push(open, &node{pos: next, g: ng, f: ng + h(next), parent: cur})
		}
	}

	return nil // goal unreachable
}

func reconstruct(n *node) []core.Pos {
	var rev []core.Pos
	for ; n != nil; n = n.parent {
		rev = append(rev, n.pos)
	}
	path := make([]core.Pos, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}
