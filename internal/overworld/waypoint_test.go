package overworld

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tsc-editor/internal/core"
)

func TestAddExitDefaults(t *testing.T) {
	w := NewWaypoint()
	i := w.AddExit()

	require.Equal(t, 0, i)
	ex, err := w.Exit(0)
	require.NoError(t, err)
	assert.Equal(t, Exit{Direction: core.DirUp, LevelExitName: "", LineStartUID: 0, Locked: true}, ex)
}

func TestRemoveExitShiftsIndices(t *testing.T) {
	w := NewWaypoint()
	w.AddExit()
	w.AddExit()
	require.NoError(t, w.SetExitDirection(1, core.DirLeft))
	require.NoError(t, w.SetExitLevelExitName(1, "secret"))
	require.NoError(t, w.SetExitLineStartUID(1, 7))
	require.NoError(t, w.SetExitLocked(1, false))
	second, _ := w.Exit(1)

	require.NoError(t, w.RemoveExit(0))

	require.Equal(t, 1, w.Len())
	got, err := w.Exit(0)
	require.NoError(t, err)
	assert.Equal(t, second, got)
	assert.Equal(t, Exit{Direction: core.DirLeft, LevelExitName: "secret", LineStartUID: 7, Locked: false}, got)
}

func TestExitIndexErrors(t *testing.T) {
	w := NewWaypoint()
	assert.ErrorIs(t, w.RemoveExit(0), ErrExitIndex)
	assert.ErrorIs(t, w.SetExitLocked(-1, false), ErrExitIndex)

	w.AddExit()
	_, err := w.Exit(1)
	assert.ErrorIs(t, err, ErrExitIndex)
	assert.ErrorIs(t, w.SetExitDirection(0, core.DirUndefined), core.ErrBadDirection)
}

func TestExitLabels(t *testing.T) {
	w := NewWaypoint()
	assert.Equal(t, []string{"(None)"}, w.ExitLabels())

	w.AddExit()
	w.AddExit()
	assert.Equal(t, []string{"(None)", "1", "2"}, w.ExitLabels())
	assert.Equal(t, -1, w.ExitIndexForLabel("(None)"))
	assert.Equal(t, 1, w.ExitIndexForLabel("2"))
	assert.Equal(t, -1, w.ExitIndexForLabel("3"))
}

func TestSaveLoad(t *testing.T) {
	w := NewWaypoint()
	w.Type = WaypointWorldLink
	w.Destination = "world_2"
	w.Access = false
	w.AddExit()
	w.AddExit()
	require.NoError(t, w.SetExitDirection(1, core.DirRight))
	require.NoError(t, w.SetExitLevelExitName(1, "end"))
	require.NoError(t, w.SetExitLineStartUID(1, 42))
	require.NoError(t, w.SetExitLocked(1, false))

	props := map[string]string{}
	w.Save(props)

	assert.Equal(t, "right", props["waypoint_exit_1_direction"])
	assert.Equal(t, "end", props["waypoint_exit_1_level_exit_name"])
	assert.Equal(t, "42", props["waypoint_exit_1_line_start_uid"])
	assert.Equal(t, "0", props["waypoint_exit_1_locked"])
	assert.Equal(t, "1", props["waypoint_exit_0_locked"])

	got, err := Load(props)
	require.NoError(t, err)
	assert.Equal(t, w, got)
}

func TestLoadDefaultsAndCap(t *testing.T) {
	props := map[string]string{"level": "lvl_1"}
	for i := 0; i < MaxExits+2; i++ {
		props["waypoint_exit_"+strconv.Itoa(i)+"_direction"] = "down"
	}
	// slot 1 missing entirely is skipped, not an error
	delete(props, "waypoint_exit_1_direction")

	w, err := Load(props)
	require.NoError(t, err)

	assert.Equal(t, WaypointNormal, w.Type)
	assert.Equal(t, "lvl_1", w.Destination)
	assert.True(t, w.Access)
	require.Len(t, w.Exits, MaxExits-1)
	for _, ex := range w.Exits {
		assert.Equal(t, 0, ex.LineStartUID)
		assert.True(t, ex.Locked)
		assert.Equal(t, core.DirDown, ex.Direction)
	}
}

func TestLoadBadDirection(t *testing.T) {
	_, err := Load(map[string]string{"waypoint_exit_0_direction": "sideways"})
	assert.ErrorIs(t, err, core.ErrBadDirection)
}

func TestCopyIsDeep(t *testing.T) {
	w := NewWaypoint()
	w.AddExit()
	c := w.Copy()
	require.NoError(t, c.SetExitLocked(0, false))

	orig, _ := w.Exit(0)
	assert.True(t, orig.Locked)
}
