package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tsc-editor/internal/config"
	"github.com/vovakirdan/tsc-editor/internal/core"
	"github.com/vovakirdan/tsc-editor/internal/storage"
)

const levelMenu = `<editor_menu>
	<item>
		<property name="name" value="Enemies"/>
		<property name="tags" value="enemy"/>
		<property name="color" value="FF2F0FFF"/>
	</item>
	<item>
		<property name="name" value="Save"/>
		<property name="tags" value="function;save"/>
	</item>
	<item>
		<property name="name" value="Delete"/>
		<property name="tags" value="function;delete"/>
	</item>
</editor_menu>
`

const levelItems = `<items>
	<item>
		<property name="object_name" value="turtle"/>
		<property name="object_tags" value="enemy;level"/>
	</item>
</items>
`

const worldMenu = `<editor_menu>
	<item>
		<property name="name" value="Waypoints"/>
		<property name="tags" value="waypoint"/>
	</item>
</editor_menu>
`

const worldItems = `<items>
	<item>
		<property name="object_name" value="waypoint"/>
		<property name="object_tags" value="waypoint;world"/>
	</item>
</items>
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newWorkspace(t *testing.T) (*Workspace, *storage.Store) {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "editor", "level_menu.xml"), levelMenu)
	writeFile(t, filepath.Join(dir, "editor", "level_items.xml"), levelItems)
	writeFile(t, filepath.Join(dir, "editor", "world_menu.xml"), worldMenu)
	writeFile(t, filepath.Join(dir, "editor", "world_items.xml"), worldItems)

	cfg := config.DefaultEditorConfig()
	cfg.DataDir = dir

	store, err := storage.Open(filepath.Join(dir, "editor.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ws, err := NewWorkspace(cfg, store, nil)
	require.NoError(t, err)
	t.Cleanup(ws.Close)
	return ws, store
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestWorkspaceStartsWithoutDocument(t *testing.T) {
	ws, _ := newWorkspace(t)

	assert.Nil(t, ws.Core())
	assert.Nil(t, ws.Scene())
	assert.Equal(t, storage.Kind(""), ws.Kind())
	assert.False(t, ws.Mode().Active())
	require.NoError(t, ws.Execute(core.CmdSave), "commands without a document are ignored")
}

func TestWorkspaceCreateLevel(t *testing.T) {
	ws, store := newWorkspace(t)

	require.NoError(t, ws.Open(storage.KindLevel, "lvl_1", true))

	require.NotNil(t, ws.Core())
	assert.True(t, ws.Core().Enabled())
	assert.True(t, ws.Mode().Level())
	assert.False(t, ws.Mode().World())
	assert.Equal(t, "lvl_1", ws.Document().Name)
	assert.Equal(t, 0, ws.Scene().Len())

	ok, err := store.Exists(storage.KindLevel, "lvl_1")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.ErrorIs(t, ws.Open(storage.KindLevel, "lvl_1", true), storage.ErrExists)
	assert.ErrorIs(t, ws.Open(storage.KindLevel, "", true), storage.ErrBadName)
	assert.Error(t, ws.Open(storage.Kind("cave"), "x", true))
}

func TestWorkspaceSaveAndReload(t *testing.T) {
	ws, _ := newWorkspace(t)
	require.NoError(t, ws.Open(storage.KindLevel, "lvl_1", true))

	ed := ws.Core()
	require.Len(t, ed.Templates(), 1)
	ed.MovePointer(64, 32)
	require.NotNil(t, ed.PlaceItem(ed.Templates()[0]))

	// The save hotkey asks first
	require.NoError(t, ws.Execute(core.CmdSave))
	require.True(t, ws.Dialogs().Active())
	assert.Equal(t, "Save lvl_1 ?", ws.Dialogs().Title())
	ws.Dialogs().Update(keyRunes("y"))
	assert.False(t, ws.Dialogs().Active())

	require.NoError(t, ws.Open(storage.KindLevel, "lvl_1", false))
	require.Equal(t, 1, ws.Scene().Len())
	obj := ws.Scene().Objects()[0]
	assert.Equal(t, "turtle", string(obj.Type))
	assert.Equal(t, 64, obj.Pos.X)
}

func TestWorkspaceNewLevelThroughDialog(t *testing.T) {
	ws, _ := newWorkspace(t)
	require.NoError(t, ws.Open(storage.KindLevel, "lvl_1", true))

	require.NoError(t, ws.Execute(core.CmdNew))
	require.True(t, ws.Dialogs().Active())
	ws.Dialogs().Update(keyRunes("lvl_2"))
	ws.Dialogs().Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, ws.Apply())
	assert.Equal(t, "lvl_2", ws.Document().Name)
	assert.True(t, ws.Core().Enabled())
}

func TestWorkspaceDeleteReturnsToMenu(t *testing.T) {
	ws, store := newWorkspace(t)
	require.NoError(t, ws.Open(storage.KindLevel, "lvl_1", true))

	require.NoError(t, ws.Core().SelectMenuEntry("Delete"))
	require.True(t, ws.Dialogs().Active())
	ws.Dialogs().Update(keyRunes("y"))

	assert.True(t, ws.Apply())
	assert.Nil(t, ws.Core())
	assert.False(t, ws.Mode().Active())

	ok, err := store.Exists(storage.KindLevel, "lvl_1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWorkspaceToggle(t *testing.T) {
	ws, _ := newWorkspace(t)
	require.NoError(t, ws.Open(storage.KindLevel, "lvl_1", true))

	require.NoError(t, ws.Execute(core.CmdToggle))
	assert.False(t, ws.Core().Enabled())
	assert.False(t, ws.Mode().Level())

	require.NoError(t, ws.Execute(core.CmdToggle))
	assert.True(t, ws.Core().Enabled())
}

func TestWorkspaceSwitchesEditors(t *testing.T) {
	ws, _ := newWorkspace(t)

	require.NoError(t, ws.Open(storage.KindLevel, "lvl_1", true))
	levelCore := ws.Core()

	require.NoError(t, ws.Open(storage.KindWorld, "world_1", true))
	assert.NotSame(t, levelCore, ws.Core())
	assert.False(t, levelCore.Enabled(), "opening a world closes the level")
	assert.True(t, ws.Mode().World())
	assert.False(t, ws.Mode().Level())
	assert.Same(t, ws.worldTree, ws.Tree())
}

func TestWorkspaceLoadMissing(t *testing.T) {
	ws, _ := newWorkspace(t)

	ws.actions.Push(core.NewGameAction(core.ActionEnterLevel, "load_level", "nope"))
	assert.False(t, ws.Apply())
	assert.True(t, ws.Dialogs().Active(), "failures are shown to the user")
	assert.Nil(t, ws.Core())
}
