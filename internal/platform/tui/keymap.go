package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tsc-editor/internal/core"
)

// commandBinding is the default key binding of an editor command.
type commandBinding struct {
	cmd  core.Command
	keys []string
	help string
}

// defaultCommands lists the editor commands in help order. Terminals do
// not report ctrl+shift, so the shifted shortcuts use capital letters.
var defaultCommands = []commandBinding{
	{core.CmdNew, []string{"ctrl+n"}, "new"},
	{core.CmdSave, []string{"ctrl+s"}, "save"},
	{core.CmdSaveAs, []string{"S"}, "save as"},
	{core.CmdHelp, []string{"f1", "?"}, "help"},
	{core.CmdHome, []string{"home"}, "level start"},
	{core.CmdEnd, []string{"end"}, "last exit"},
	{core.CmdNextScreen, []string{"pgdown"}, "next screen"},
	{core.CmdPrevScreen, []string{"pgup"}, "prev screen"},
	{core.CmdGotoCamera, []string{"ctrl+g"}, "goto"},
	{core.CmdToFront, []string{"+"}, "to front"},
	{core.CmdToBack, []string{"-"}, "to back"},
	{core.CmdFastCopyUp, []string{"ctrl+up"}, "copy up"},
	{core.CmdFastCopyDown, []string{"ctrl+down"}, "copy down"},
	{core.CmdFastCopyLeft, []string{"ctrl+left"}, "copy left"},
	{core.CmdFastCopyRight, []string{"ctrl+right"}, "copy right"},
	{core.CmdMoveUp, []string{"shift+up"}, "nudge up"},
	{core.CmdMoveDown, []string{"shift+down"}, "nudge down"},
	{core.CmdMoveLeft, []string{"shift+left"}, "nudge left"},
	{core.CmdMoveRight, []string{"shift+right"}, "nudge right"},
	{core.CmdDeselectAll, []string{"D"}, "deselect all"},
	{core.CmdSelectAll, []string{"ctrl+a"}, "select all"},
	{core.CmdPaste, []string{"ctrl+v", "insert"}, "paste"},
	{core.CmdCut, []string{"ctrl+x"}, "cut"},
	{core.CmdCopy, []string{"ctrl+c"}, "copy"},
	{core.CmdReplace, []string{"ctrl+r"}, "replace image"},
	{core.CmdDelete, []string{"delete", "backspace"}, "delete"},
	{core.CmdSnap, []string{"o"}, "snap"},
	{core.CmdCycleMassive, []string{"m"}, "massive type"},
	{core.CmdToggle, []string{"f8"}, "editor on/off"},
}

// EditorKeyMap defines the key bindings of the editing screen. Commands
// go to the editor; the rest drive the terminal pointer and focus.
type EditorKeyMap struct {
	Commands map[core.Command]key.Binding
	order    []core.Command

	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Click      key.Binding
	AddClick   key.Binding
	TypeClick  key.Binding
	Focus      key.Binding
	Select     key.Binding
	Config     key.Binding
	Back       key.Binding
	Quit       key.Binding
	ToggleHelp key.Binding
}

// DefaultEditorKeyMap returns default key bindings.
func DefaultEditorKeyMap() EditorKeyMap {
	km := EditorKeyMap{
		Commands: make(map[core.Command]key.Binding, len(defaultCommands)),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "right"),
		),
		Click: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "click"),
		),
		AddClick: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add to selection"),
		),
		TypeClick: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "select same type"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "items/scene"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Config: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "object settings"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "f10"),
			key.WithHelp("ctrl+q", "quit"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "more keys"),
		),
	}
	for _, d := range defaultCommands {
		km.Commands[d.cmd] = key.NewBinding(key.WithKeys(d.keys...), key.WithHelp(d.keys[0], d.help))
		km.order = append(km.order, d.cmd)
	}
	return km
}

// Override rebinds commands by name, as read from the configuration.
func (k *EditorKeyMap) Override(bindings map[string][]string) error {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd, ok := core.ParseCommand(name)
		if !ok {
			return fmt.Errorf("keymap: unknown command %q", name)
		}
		keys := bindings[name]
		if len(keys) == 0 {
			return fmt.Errorf("keymap: %s has no keys", name)
		}
		help := k.Commands[cmd].Help().Desc
		k.Commands[cmd] = key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
	}
	return nil
}

// Command returns the editor command bound to msg.
func (k EditorKeyMap) Command(msg tea.KeyMsg) (core.Command, bool) {
	for _, cmd := range k.order {
		if key.Matches(msg, k.Commands[cmd]) {
			return cmd, true
		}
	}
	return core.CmdNone, false
}

// ShortHelp returns key bindings for the short help view.
func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Focus, k.Click, k.Config,
		k.Commands[core.CmdSave], k.Commands[core.CmdHelp],
		k.ToggleHelp, k.Quit,
	}
}

// FullHelp returns key bindings for the full help view.
func (k EditorKeyMap) FullHelp() [][]key.Binding {
	nav := []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Click, k.AddClick, k.TypeClick}
	ui := []key.Binding{k.Focus, k.Select, k.Config, k.Back, k.ToggleHelp, k.Quit}

	groups := [][]key.Binding{nav, ui}
	var group []key.Binding
	for _, cmd := range k.order {
		group = append(group, k.Commands[cmd])
		if len(group) == 8 {
			groups = append(groups, group)
			group = nil
		}
	}
	if len(group) > 0 {
		groups = append(groups, group)
	}
	return groups
}

// BrowserKeyMap defines the key bindings for the level browser.
type BrowserKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	New     key.Binding
	Delete  key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.New, k.Delete, k.NextTab, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Open, k.New, k.Delete, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "levels/worlds"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "levels/worlds"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
