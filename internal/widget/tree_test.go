package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeCreateDestroy(t *testing.T) {
	tr := NewTree()
	require.NoError(t, tr.Create("root", KindPanel, ""))
	require.NoError(t, tr.Create("a", KindLabel, "root"))
	require.NoError(t, tr.Create("b", KindPanel, "root"))
	require.NoError(t, tr.Create("b1", KindButton, "b"))

	assert.ErrorIs(t, tr.Create("a", KindLabel, ""), ErrExists)
	assert.ErrorIs(t, tr.Create("c", KindLabel, "nope"), ErrNoParent)
	assert.Equal(t, []ID{"a", "b"}, tr.Children("root"))

	tr.Destroy("b")
	assert.False(t, tr.Exists("b1"))
	assert.Equal(t, []ID{"a"}, tr.Children("root"))
	assert.Equal(t, 2, tr.Len())

	tr.Destroy("missing")
}

func TestTreeAttachDetach(t *testing.T) {
	tr := NewTree()
	require.NoError(t, tr.Create("left", KindPanel, ""))
	require.NoError(t, tr.Create("right", KindPanel, ""))
	require.NoError(t, tr.Create("x", KindLabel, "left"))

	tr.Attach("x", "right")
	assert.Empty(t, tr.Children("left"))
	assert.Equal(t, []ID{"x"}, tr.Children("right"))

	tr.Detach("x")
	assert.Empty(t, tr.Children("right"))
	assert.True(t, tr.Exists("x"))
}

func TestTreeEmit(t *testing.T) {
	tr := NewTree()
	require.NoError(t, tr.Create("list", KindList, ""))
	tr.SetItems("list", []string{"one", "two"})

	var got []Event
	tr.Subscribe("list", EventSelectionChanged, func(ev Event) { got = append(got, ev) })

	tr.Emit(Event{Kind: EventSelectionChanged, Widget: "list", Index: 1})
	tr.Emit(Event{Kind: EventClicked, Widget: "list"})

	require.Len(t, got, 1)
	assert.Equal(t, "two", got[0].Text)
	n, _ := tr.Get("list")
	assert.Equal(t, 1, n.Selected)
}

func TestTreeSetters(t *testing.T) {
	tr := NewTree()
	require.NoError(t, tr.Create("w", KindEdit, ""))
	tr.SetAlpha("w", 1.5)
	tr.SetText("w", "hi")
	tr.SetItems("w", []string{"a"})
	tr.SetSelected("w", 3)

	n, ok := tr.Get("w")
	require.True(t, ok)
	assert.Equal(t, 1.0, n.Alpha)
	assert.Equal(t, "hi", n.Text)
	assert.Equal(t, -1, n.Selected)

	var visited []ID
	tr.Walk("w", func(n Node, depth int) { visited = append(visited, n.ID) })
	assert.Equal(t, []ID{"w"}, visited)
}
