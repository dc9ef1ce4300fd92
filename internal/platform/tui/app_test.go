package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tsc-editor/internal/core"
	"github.com/vovakirdan/tsc-editor/internal/editor"
	"github.com/vovakirdan/tsc-editor/internal/storage"
)

var testRuntime = core.RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 30, DisplayScale: 1}

func send(t *testing.T, m AppModel, msgs ...tea.Msg) AppModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(AppModel)
		require.True(t, ok)
	}
	return m
}

func TestAppPlacesItemFromPalette(t *testing.T) {
	ws, store := newWorkspace(t)
	m, err := NewAppModel(ws, store, DefaultEditorKeyMap(), testRuntime, &Target{Kind: storage.KindLevel, Name: "lvl_1", Create: true})
	require.NoError(t, err)
	require.NotNil(t, m.editor)

	m = send(t, m,
		tea.KeyMsg{Type: tea.KeyTab},   // palette
		tea.KeyMsg{Type: tea.KeyEnter}, // show "Enemies"
	)
	ed := ws.Core()
	require.NotNil(t, ed.ActiveEntry())
	assert.Equal(t, "Enemies", ed.ActiveEntry().Name())

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, 1, ws.Scene().Len())
	assert.Equal(t, focusScene, m.editor.focus)

	view := m.View()
	assert.Contains(t, view, "lvl_1")
}

func TestAppPointerAndSelection(t *testing.T) {
	ws, store := newWorkspace(t)
	m, err := NewAppModel(ws, store, DefaultEditorKeyMap(), testRuntime, &Target{Kind: storage.KindLevel, Name: "lvl_1", Create: true})
	require.NoError(t, err)

	ed := ws.Core()
	ed.MovePointer(0, 0)
	obj := ed.PlaceItem(ed.Templates()[0])
	require.NotNil(t, obj)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	x, y := ed.Pointer()
	assert.Equal(t, cellW, x)
	assert.Equal(t, 0, y)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, ed.IsSelected(obj))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDelete})
	assert.Equal(t, 0, ws.Scene().Len())
	assert.False(t, m.editor.IsQuitting())
}

func TestAppFadeRunsOnTicks(t *testing.T) {
	ws, store := newWorkspace(t)
	m, err := NewAppModel(ws, store, DefaultEditorKeyMap(), testRuntime, &Target{Kind: storage.KindLevel, Name: "lvl_1", Create: true})
	require.NoError(t, err)

	gen := m.editor.gen
	start := time.Unix(0, 0)
	m = send(t, m,
		TickMsg{At: start, Gen: gen},
		TickMsg{At: start.Add(3 * time.Second), Gen: gen},
		TickMsg{At: start.Add(4 * time.Second), Gen: gen},
	)

	root, ok := ws.Tree().Get(editor.WidgetRoot)
	require.True(t, ok)
	assert.Less(t, root.X, 0.0, "the idle palette slides away")

	// Ticks of another screen are ignored
	before := root
	m = send(t, m, TickMsg{At: start.Add(10 * time.Second), Gen: gen + 100})
	root, _ = ws.Tree().Get(editor.WidgetRoot)
	assert.Equal(t, before.X, root.X)
	assert.NotEmpty(t, m.View())
}

func TestAppBrowserOpensDocument(t *testing.T) {
	ws, store := newWorkspace(t)
	require.NoError(t, store.Create(storage.KindWorld, "world_1"))

	m, err := NewAppModel(ws, store, DefaultEditorKeyMap(), testRuntime, nil)
	require.NoError(t, err)
	assert.Nil(t, m.editor)
	assert.Contains(t, m.View(), "Levels")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.editor)
	assert.Equal(t, storage.KindWorld, ws.Kind())
	assert.Equal(t, "world_1", ws.Document().Name)
}

func TestAppBrowserCreatesLevel(t *testing.T) {
	ws, store := newWorkspace(t)
	m, err := NewAppModel(ws, store, DefaultEditorKeyMap(), testRuntime, nil)
	require.NoError(t, err)

	m = send(t, m, keyRunes("n"), keyRunes("fresh"), tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.editor)
	assert.Equal(t, "fresh", ws.Document().Name)

	// Deleting the level goes back to the browser
	require.NoError(t, ws.Core().SelectMenuEntry("Delete"))
	m = send(t, m, keyRunes("y"))
	assert.Nil(t, m.editor)
	assert.False(t, m.quitting)
}

func TestAppQuit(t *testing.T) {
	ws, store := newWorkspace(t)
	m, err := NewAppModel(ws, store, DefaultEditorKeyMap(), testRuntime, &Target{Kind: storage.KindLevel, Name: "lvl_1", Create: true})
	require.NoError(t, err)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	require.NotNil(t, cmd)
	assert.True(t, next.(AppModel).quitting)
	assert.Empty(t, next.(AppModel).View())
}
