package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tsc-editor/internal/core"
	"github.com/vovakirdan/tsc-editor/internal/overworld"
)

func TestSceneAddAssignsUIDs(t *testing.T) {
	s := New()
	a := NewSprite("a.png", 10, 10)
	b := NewSprite("b.png", 10, 10)
	b.UID = 7
	c := NewSprite("c.png", 10, 10)
	s.Add(a, b, c)

	assert.Equal(t, 1, a.UID)
	assert.Equal(t, 7, b.UID)
	assert.Equal(t, 8, c.UID)
	assert.Same(t, b, s.ByUID(7))
	assert.Nil(t, s.ByUID(99))
}

func TestSceneOrdering(t *testing.T) {
	s := New()
	a, b, c := NewSprite("a", 1, 1), NewSprite("b", 1, 1), NewSprite("c", 1, 1)
	s.Add(a, b, c)

	s.BringToFront(a)
	assert.Equal(t, []*Sprite{b, c, a}, s.Objects())

	s.SendToBack(c)
	assert.Equal(t, []*Sprite{c, b, a}, s.Objects())

	// unknown objects are ignored
	s.BringToFront(NewSprite("x", 1, 1))
	assert.Equal(t, 3, s.Len())
}

func TestSceneAtPicksTopmost(t *testing.T) {
	s := New()
	bottom := NewSprite("bottom", 10, 10)
	top := NewSprite("top", 10, 10)
	top.SetPos(5, 5)
	s.Add(bottom, top)

	assert.Same(t, top, s.At(6, 6))
	assert.Same(t, bottom, s.At(1, 1))
	assert.Nil(t, s.At(50, 50))
}

func TestSceneRemove(t *testing.T) {
	s := New()
	a := NewSprite("a", 1, 1)
	s.Add(a)

	require.True(t, s.Remove(a))
	assert.False(t, s.Remove(a))
	assert.False(t, s.Contains(a))
	assert.Zero(t, s.Len())
}

func TestSpriteCopyIsDeep(t *testing.T) {
	orig := NewSprite("a.png", 4, 4)
	orig.UID = 3
	orig.Props["speed"] = "2"
	orig.Waypoint = overworld.NewWaypoint()
	orig.Waypoint.AddExit()

	c := orig.Copy()
	c.Props["speed"] = "5"
	require.NoError(t, c.Waypoint.SetExitLocked(0, false))

	assert.Zero(t, c.UID)
	assert.Equal(t, "2", orig.Props["speed"])
	ex, _ := orig.Waypoint.Exit(0)
	assert.True(t, ex.Locked)
}

func TestSetMassiveMovesArray(t *testing.T) {
	s := NewSprite("a", 1, 1)
	s.SetMassive(core.MassMassive)
	assert.Equal(t, ArrayMassive, s.Array)
	s.SetMassive(core.MassClimbable)
	assert.Equal(t, ArrayActive, s.Array)
	s.SetMassive(core.MassFrontPassive)
	assert.Equal(t, ArrayPassive, s.Array)

	lava := NewSprite("lava", 1, 1)
	lava.Array = ArrayLava
	lava.SetMassive(core.MassMassive)
	assert.Equal(t, ArrayLava, lava.Array)
}

func TestAttributesRoundTrip(t *testing.T) {
	s := NewSprite("ground/green/1.png", 32, 16)
	s.SetPos(64, -8)
	s.SetMassive(core.MassHalfMassive)
	s.Rotation = [3]float64{0, 0, 90}
	s.Props["custom"] = "x"

	back := &Sprite{Type: TypeSprite}
	back.ApplyAttributes(s.Attributes())

	assert.Equal(t, s.Pos, back.Pos)
	assert.Equal(t, s.Image, back.Image)
	assert.Equal(t, core.MassHalfMassive, back.Massive)
	assert.Equal(t, ArrayActive, back.Array)
	assert.Equal(t, s.Rotation, back.Rotation)
	assert.Equal(t, "x", back.Props["custom"])
}

func TestAttributesKeepNameAndDisplayNameApart(t *testing.T) {
	s := NewSprite("game/editor/entry.png", 20, 20)
	s.Name = "Entry"
	s.Props["name"] = "east"

	a := s.Attributes()
	assert.Equal(t, "Entry", a[DisplayNameKey])
	assert.Equal(t, "east", a["name"])

	back := &Sprite{Type: TypeSprite}
	back.ApplyAttributes(a)
	assert.Equal(t, "Entry", back.Name)
	assert.Equal(t, "east", back.Props["name"])
}
