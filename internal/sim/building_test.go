package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotrack/patrolsim/internal/core"
	"github.com/ecotrack/patrolsim/internal/layout"
)

func TestNewBuilding_DefaultScenario(t *testing.T) {
	scn := layout.DefaultScenario()
	b, err := NewBuilding(scn, ConfigFromScenario(scn))
	require.NoError(t, err)
	require.Len(t, b.Sessions, 4)

	floors := make([]string, len(b.Sessions))
	for i, s := range b.Sessions {
		floors[i] = s.Plan.Name
	}
	assert.Equal(t, []string{"L1", "L4", "L5", "L6"}, floors)

	// Per-floor due sets from the reference snapshot.
	assert.Equal(t, []string{"top_left_row", "bottom_left_col", "bottom_right_col"}, b.Sessions[0].Due())
	assert.Equal(t, []string{"right_stack"}, b.Sessions[1].Due())
	assert.Equal(t, []string{"right_stack"}, b.Sessions[2].Due())
	assert.Equal(t, []string{"left_stack"}, b.Sessions[3].Due())
}

func TestNewBuilding_EmptyScenario(t *testing.T) {
	_, err := NewBuilding(&layout.Scenario{}, DefaultConfig())
	require.Error(t, err)
}

func TestNewBuilding_TransferMismatch(t *testing.T) {
	scn := layout.DefaultScenario()
	moved := core.Pos{X: 5, Y: 1}
	scn.Floors[2].Transfer = &moved
	scn.Floors[2].Start = moved
	scn.Floors[2].End = &moved

	_, err := NewBuilding(scn, ConfigFromScenario(scn))
	require.ErrorIs(t, err, ErrTransferMismatch)
	assert.Contains(t, err.Error(), "L5")
}

func TestBuilding_Run(t *testing.T) {
	scn := layout.DefaultScenario()
	b, err := NewBuilding(scn, ConfigFromScenario(scn))
	require.NoError(t, err)

	for _, strategy := range core.Strategies() {
		reports := b.Run(strategy, core.AStar)
		require.Len(t, reports, 4)
		for _, r := range reports {
			assert.Truef(t, r.Valid(), "%s %s: unreachable %v", r.Floor, strategy, r.Unreachable)
			assert.NotEmpty(t, r.Frames, "%s %s", r.Floor, strategy)
		}
	}
}

func TestBuilding_UpperFloorRoundTrip(t *testing.T) {
	scn := layout.DefaultScenario()
	b, err := NewBuilding(scn, ConfigFromScenario(scn))
	require.NoError(t, err)

	// L4: only right_stack (90%) is due; the route is a transfer round
	// trip through its service position.
	route := b.Sessions[1].BuildRoute(core.NearestDue)
	assert.Equal(t, []core.Pos{
		layout.TransferPos,
		{X: layout.PlanWidth - 2, Y: 10},
		layout.TransferPos,
	}, route)
}

func TestConcatRoutes(t *testing.T) {
	scn := layout.DefaultScenario()
	b, err := NewBuilding(scn, ConfigFromScenario(scn))
	require.NoError(t, err)

	reports := b.Run(core.NearestDue, core.AStar)
	itinerary := ConcatRoutes(reports)

	// Every floor ends at the transfer cell the next floor starts from,
	// so each join drops one duplicate.
	wantLen := 0
	for _, r := range reports {
		wantLen += len(r.Route)
	}
	assert.Equal(t, wantLen-(len(reports)-1), len(itinerary))
	assert.Equal(t, core.Pos{X: 1, Y: 19}, itinerary[0])
	assert.Equal(t, layout.TransferPos, itinerary[len(itinerary)-1])
}
