package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialogsTextInput(t *testing.T) {
	d := NewDialogs()

	var got string
	var gotOK bool
	d.TextInput("Save Level as", "Name", "lvl", func(text string, ok bool) { got, gotOK = text, ok })
	require.True(t, d.Active())
	assert.Equal(t, "Save Level as", d.Title())
	assert.Contains(t, d.View(80), "Save Level as")

	d.Update(keyRunes("_2"))
	d.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, d.Active())
	assert.True(t, gotOK)
	assert.Equal(t, "lvl_2", got)
}

func TestDialogsCancel(t *testing.T) {
	d := NewDialogs()

	called := false
	d.TextInput("t", "l", "keep", func(text string, ok bool) {
		called = true
		assert.False(t, ok)
		assert.Empty(t, text)
	})
	d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, called)

	answer := true
	d.YesNo("q", func(yes bool) { answer = yes })
	d.Update(keyRunes("x"))
	assert.True(t, d.Active(), "other keys leave a yes/no dialog open")
	d.Update(keyRunes("n"))
	assert.False(t, answer)
	assert.False(t, d.Active())
}

func TestDialogsQueue(t *testing.T) {
	d := NewDialogs()

	var order []string
	d.Message("first")
	d.YesNo("second", func(bool) {
		order = append(order, "second")
		// A callback may open the next dialog
		d.Message("third")
	})
	assert.Equal(t, 2, d.Pending())

	d.Update(keyRunes("z"))
	assert.Equal(t, "second", d.Title())
	d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"second"}, order)
	assert.Equal(t, "third", d.Title())
	d.Update(keyRunes("z"))
	assert.False(t, d.Active())
	assert.Empty(t, d.View(80))
}
