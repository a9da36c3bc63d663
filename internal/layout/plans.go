package layout

import "github.com/ecotrack/patrolsim/internal/core"

// Dimensions shared by the built-in floor plans.
const (
	PlanWidth  = 35
	PlanHeight = 20

	corridorTopY = 7
	corridorBotY = 13
)

// TransferPos is the elevator handoff cell shared by every built-in
// floor, in the top-center corridor gap.
var TransferPos = core.Pos{X: PlanWidth / 2, Y: 1}

// GroundFloor returns the lobby-level plan: coop and canteen rooms off a
// hammer-shaped corridor, five three-bin clusters. Its route starts at
// the lobby entrance and ends at the transfer cell.
func GroundFloor() *FloorPlan {
	transfer := TransferPos
	return &FloorPlan{
		Name:   "L1",
		Width:  PlanWidth,
		Height: PlanHeight,
		Obstacles: []Directive{
			// outline
			HLine(0, PlanWidth-1, 0),
			VLine(0, 0, PlanHeight-1),
			// hammer corridor with the x=17..18 shaft left open
			HLine(0, 16, corridorTopY),
			HLine(19, PlanWidth-1, corridorTopY),
			HLine(0, 16, corridorBotY),
			HLine(19, PlanWidth-1, corridorBotY),
			VLine(16, corridorTopY, corridorBotY),
			VLine(19, corridorTopY, corridorBotY),
			// rooms
			Rect(2, 0, 7, 5),             // coop
			Rect(PlanWidth-11, 0, 11, 6), // canteen
			Rect(13, 7, 3, 3),            // lifts
			Rect(13, 10, 3, 3),
			Rect(19, 7, 3, 3),
			Rect(19, 10, 3, 3),
		},
		Clusters: []ClusterSpec{
			{
				Name: "top_left_row", Zone: "coop",
				Bins:    []core.Pos{{X: 2, Y: 5}, {X: 3, Y: 5}, {X: 4, Y: 5}},
				Service: core.Pos{X: 3, Y: 6},
			},
			{
				Name: "top_right_col", Zone: "canteen",
				Bins:    []core.Pos{{X: PlanWidth - 12, Y: 3}, {X: PlanWidth - 12, Y: 4}, {X: PlanWidth - 12, Y: 5}},
				Service: core.Pos{X: PlanWidth - 13, Y: 4},
			},
			{
				Name: "bottom_left_col", Zone: "bottom_left",
				Bins:    []core.Pos{{X: 1, Y: 15}, {X: 1, Y: 16}, {X: 1, Y: 17}},
				Service: core.Pos{X: 2, Y: 16},
			},
			{
				Name: "bottom_mid_row", Zone: "bottom_center",
				Bins:    []core.Pos{{X: 16, Y: 19}, {X: 17, Y: 19}, {X: 18, Y: 19}},
				Service: core.Pos{X: 17, Y: 18},
			},
			{
				Name: "bottom_right_col", Zone: "bottom_right",
				Bins:    []core.Pos{{X: PlanWidth - 2, Y: 15}, {X: PlanWidth - 2, Y: 16}, {X: PlanWidth - 2, Y: 17}},
				Service: core.Pos{X: PlanWidth - 3, Y: 16},
			},
		},
		Start:    core.Pos{X: 1, Y: 19},
		End:      &transfer,
		Transfer: &transfer,
	}
}

// UpperFloor returns the classroom-level plan used by the floors above
// the lobby: four classrooms, four lifts, and one bin stack on each
// outer wall. Its route starts and ends at the transfer cell.
func UpperFloor(name string) *FloorPlan {
	transfer := TransferPos
	return &FloorPlan{
		Name:   name,
		Width:  PlanWidth,
		Height: PlanHeight,
		Obstacles: []Directive{
			Rect(13, 11, 3, 3), // lifts
			Rect(13, 14, 3, 3),
			Rect(19, 11, 3, 3),
			Rect(19, 14, 3, 3),
			Rect(19, 0, 12, 6), // classrooms
			Rect(4, 0, 12, 6),
			Rect(22, 9, 9, 11),
			Rect(4, 9, 9, 11),
		},
		Clusters: []ClusterSpec{
			{
				Name: "left_stack", Zone: "other",
				Bins:    []core.Pos{{X: 0, Y: 3}, {X: 0, Y: 4}, {X: 0, Y: 5}},
				Service: core.Pos{X: 1, Y: 4},
			},
			{
				Name: "right_stack", Zone: "other",
				Bins:    []core.Pos{{X: PlanWidth - 1, Y: 9}, {X: PlanWidth - 1, Y: 10}, {X: PlanWidth - 1, Y: 11}},
				Service: core.Pos{X: PlanWidth - 2, Y: 10},
			},
		},
		Start:    transfer,
		End:      &transfer,
		Transfer: &transfer,
	}
}
