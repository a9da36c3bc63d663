// Command wastepatrol runs waste-collection patrol simulations over a
// multi-floor building and prints per-floor route and frame summaries.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/ecotrack/patrolsim/internal/core"
	"github.com/ecotrack/patrolsim/internal/layout"
	"github.com/ecotrack/patrolsim/internal/sim"
)

func main() {
	scenarioPath := flag.String("scenario", "", "scenario JSON file (default: built-in building)")
	flag.Parse()

	scn := layout.DefaultScenario()
	if *scenarioPath != "" {
		loaded, err := layout.LoadScenario(*scenarioPath)
		if err != nil {
			log.Fatalf("load scenario: %v", err)
		}
		scn = loaded
	}

	cfg := sim.ConfigFromScenario(scn)
	building, err := sim.NewBuilding(scn, cfg)
	if err != nil {
		log.Fatalf("build %s: %v", scn.Name, err)
	}

	fmt.Printf("=== Waste patrol: %s (threshold %.0f%%) ===\n", scn.Name, cfg.Threshold*100)

	for _, strategy := range core.Strategies() {
		for _, algorithm := range core.Algorithms() {
			fmt.Printf("\n--- %s / %s ---\n", strategy, algorithm)
			reports := building.Run(strategy, algorithm)
			for _, r := range reports {
				fmt.Printf("  %s: %d waypoints, %d frames, due=[%s], %v\n",
					r.Floor, len(r.Route), len(r.Frames),
					strings.Join(r.Due, " "), r.Elapsed)
				for _, seg := range r.Unreachable {
					fmt.Printf("  %s: WARNING no path (%d,%d)->(%d,%d)\n",
						r.Floor, seg.From.X, seg.From.Y, seg.To.X, seg.To.Y)
				}
			}
			itinerary := sim.ConcatRoutes(reports)
			fmt.Printf("  building itinerary: %d waypoints\n", len(itinerary))
		}
	}
}
