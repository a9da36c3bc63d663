package layout

import (
	"encoding/json"
	"fmt"
	"os"
)

// Scenario bundles floor plans with one simulation run's external
// inputs: the due threshold, dwell durations, frame rate, and the fill
// snapshot per floor and cluster.
type Scenario struct {
	Name            string                        `json:"name"`
	Threshold       float64                       `json:"threshold"` // fraction, 0..1
	ServicePauseSec float64                       `json:"service_pause_sec"`
	QuickCheckSec   float64                       `json:"quick_check_sec"`
	FPS             int                           `json:"fps"`
	Floors          []*FloorPlan                  `json:"floors"`
	Fills           map[string]map[string]float64 `json:"fills"` // floor -> cluster -> pct
}

// FloorFills returns the fill snapshot for one floor. Missing floors or
// cluster names default to zero fill.
func (s *Scenario) FloorFills(floor string) map[string]float64 {
	if f, ok := s.Fills[floor]; ok {
		return f
	}
	return nil
}

// LoadScenario reads a scenario JSON file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: read scenario: %w", err)
	}
	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("layout: parse scenario %s: %w", path, err)
	}
	return &s, nil
}

// Save writes the scenario as indented JSON.
func (s *Scenario) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("layout: encode scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("layout: write scenario: %w", err)
	}
	return nil
}

// DefaultScenario returns the built-in four-floor building (lobby plus
// floors 4-6) with the reference fill snapshot.
func DefaultScenario() *Scenario {
	return &Scenario{
		Name:            "campus-building",
		Threshold:       0.80,
		ServicePauseSec: 4,
		QuickCheckSec:   1,
		FPS:             8,
		Floors: []*FloorPlan{
			GroundFloor(),
			UpperFloor("L4"),
			UpperFloor("L5"),
			UpperFloor("L6"),
		},
		Fills: map[string]map[string]float64{
			"L1": {
				"top_left_row":     83,
				"top_right_col":    55,
				"bottom_left_col":  92,
				"bottom_mid_row":   48,
				"bottom_right_col": 88,
			},
			"L4": {"left_stack": 70, "right_stack": 90},
			"L5": {"left_stack": 40, "right_stack": 85},
			"L6": {"left_stack": 95, "right_stack": 55},
		},
	}
}
