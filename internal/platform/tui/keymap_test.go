package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tsc-editor/internal/config"
	"github.com/vovakirdan/tsc-editor/internal/core"
)

func TestEditorKeyMapDefaults(t *testing.T) {
	km := DefaultEditorKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Command
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlS}, core.CmdSave},
		{tea.KeyMsg{Type: tea.KeyCtrlUp}, core.CmdFastCopyUp},
		{tea.KeyMsg{Type: tea.KeyShiftLeft}, core.CmdMoveLeft},
		{tea.KeyMsg{Type: tea.KeyDelete}, core.CmdDelete},
		{keyRunes("m"), core.CmdCycleMassive},
		{keyRunes("+"), core.CmdToFront},
		{tea.KeyMsg{Type: tea.KeyF8}, core.CmdToggle},
	}
	for _, tt := range tests {
		got, ok := km.Command(tt.msg)
		assert.True(t, ok, tt.msg.String())
		assert.Equal(t, tt.want, got, tt.msg.String())
	}

	_, ok := km.Command(keyRunes("z"))
	assert.False(t, ok)
	// Every command has a binding
	assert.Len(t, km.Commands, int(core.CmdToggle))
}

func TestEditorKeyMapOverride(t *testing.T) {
	km := DefaultEditorKeyMap()

	require.NoError(t, km.Override(map[string][]string{"FastCopyUp": {"W"}}))
	got, ok := km.Command(keyRunes("W"))
	require.True(t, ok)
	assert.Equal(t, core.CmdFastCopyUp, got)
	assert.Equal(t, "copy up", km.Commands[core.CmdFastCopyUp].Help().Desc)

	_, ok = km.Command(tea.KeyMsg{Type: tea.KeyCtrlUp})
	assert.False(t, ok, "the old binding is replaced")

	assert.Error(t, km.Override(map[string][]string{"Jump": {"space"}}))
	assert.Error(t, km.Override(map[string][]string{"Cut": {}}))

	require.NoError(t, km.Override(config.DefaultEditorConfig().Keys))
}

func TestEditorKeyMapHelp(t *testing.T) {
	km := DefaultEditorKeyMap()

	assert.NotEmpty(t, km.ShortHelp())
	total := 0
	for _, g := range km.FullHelp()[2:] {
		total += len(g)
	}
	assert.Equal(t, len(defaultCommands), total)
}
