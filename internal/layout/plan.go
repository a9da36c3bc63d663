package layout

import (
	"fmt"

	"github.com/ecotrack/patrolsim/internal/core"
)

// ClusterSpec is the declarative form of a bin cluster.
type ClusterSpec struct {
	Name    string     `json:"name"`
	Zone    string     `json:"zone"`
	Bins    []core.Pos `json:"bins"`
	Service core.Pos   `json:"service"`
}

// FloorPlan declares one floor: grid size, obstacle directives, bin
// clusters, and the fixed start/end/transfer positions for the floor's
// role in a multi-floor itinerary.
type FloorPlan struct {
	Name      string        `json:"name"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Obstacles []Directive   `json:"obstacles"`
	Clusters  []ClusterSpec `json:"clusters"`
	Start     core.Pos      `json:"start"`
	End       *core.Pos     `json:"end,omitempty"`
	Transfer  *core.Pos     `json:"transfer,omitempty"`
}

// Build realizes the plan: it applies the obstacle directives, exempts
// each service position from them, blocks every bin cell, and finally
// force-clears the start/end/transfer cells so they stay passable even
// under a drawn fixture. Bins block after the service exemptions on
// purpose: a bin declared on top of a service position re-blocks it,
// which the floor session then rejects as a misconfigured layout
// instead of silently repairing. The returned clusters carry no fill
// yet.
func (p *FloorPlan) Build() (*core.Grid, []*core.Cluster, error) {
	g, err := core.NewGrid(p.Width, p.Height)
	if err != nil {
		return nil, nil, fmt.Errorf("layout %q: %w", p.Name, err)
	}
	for _, d := range p.Obstacles {
		if err := d.Apply(g); err != nil {
			return nil, nil, fmt.Errorf("layout %q: %w", p.Name, err)
		}
	}

	clusters := make([]*core.Cluster, 0, len(p.Clusters))
	for _, cs := range p.Clusters {
		if err := g.ClearCell(cs.Service.X, cs.Service.Y); err != nil {
			return nil, nil, fmt.Errorf("layout %q: service of %q: %w", p.Name, cs.Name, err)
		}
		clusters = append(clusters, &core.Cluster{
			Name:    cs.Name,
			Zone:    core.ParseZone(cs.Zone),
			Bins:    cs.Bins,
			Service: cs.Service,
		})
	}

	for _, cs := range p.Clusters {
		for _, b := range cs.Bins {
			if err := g.BlockCell(b.X, b.Y); err != nil {
				return nil, nil, fmt.Errorf("layout %q: bin of %q: %w", p.Name, cs.Name, err)
			}
		}
	}

	for _, pt := range p.fixedPositions() {
		if err := g.ClearCell(pt.X, pt.Y); err != nil {
			return nil, nil, fmt.Errorf("layout %q: %w", p.Name, err)
		}
	}
	return g, clusters, nil
}

func (p *FloorPlan) fixedPositions() []core.Pos {
	pts := []core.Pos{p.Start}
	if p.End != nil {
		pts = append(pts, *p.End)
	}
	if p.Transfer != nil {
		pts = append(pts, *p.Transfer)
	}
	return pts
}
