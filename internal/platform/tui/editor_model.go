package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leonelquinteros/gotext"

	"github.com/vovakirdan/tsc-editor/internal/core"
	"github.com/vovakirdan/tsc-editor/internal/editor"
	"github.com/vovakirdan/tsc-editor/internal/widget"
)

// focus is the part of the screen receiving navigation keys.
type focus int

const (
	focusScene focus = iota
	focusPalette
	focusConfig
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("236"))
	helpWindowStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("57")).
			Padding(0, 2)
)

// EditorModel is the Bubble Tea model of the editing screen. It maps
// keys to pointer moves and editor commands, drives the editor at the
// configured frame rate and draws the scene with the editor's widgets.
type EditorModel struct {
	ws     *Workspace
	keys   EditorKeyMap
	help   help.Model
	screen *core.Screen
	tick   time.Duration
	gen    uint64
	last   time.Time

	width  int
	height int

	focus        focus
	menuCursor   int
	itemCursor   int
	configCursor int

	backToMenu bool
	quitting   bool
}

// NewEditorModel creates the editing screen for the workspace's open
// document.
func NewEditorModel(ws *Workspace, keys EditorKeyMap, cfg core.RuntimeConfig) EditorModel {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 30
	}
	h := help.New()
	h.ShowAll = false

	m := EditorModel{
		ws:     ws,
		keys:   keys,
		help:   h,
		screen: core.NewScreen(1, 1),
		tick:   time.Second / time.Duration(cfg.TickRate),
		gen:    nextTickGen(),
	}
	m.resize(cfg.ScreenW, cfg.ScreenH)
	return m
}

// Init starts the frame ticks.
func (m EditorModel) Init() tea.Cmd {
	return tickCmd(m.tick, m.gen)
}

// Update handles messages and updates the model state.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		m.applyActions()
		return m, cmd

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		now := msg.At
		dt := m.tick.Seconds()
		if !m.last.IsZero() {
			dt = now.Sub(m.last).Seconds()
		}
		m.last = now
		m.ws.Tick(dt)
		m.applyActions()
		if m.quitting || m.backToMenu {
			return m, nil
		}
		return m, tickCmd(m.tick, m.gen)
	}
	return m, nil
}

func (m *EditorModel) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	m.layout()
}

// layout sizes the scene screen to what the side panels leave free.
func (m *EditorModel) layout() {
	w := max(m.width-sidebarWidth, 1)
	if ed := m.ws.Core(); ed != nil && ed.ConfigObject() != nil {
		w = max(w-configWidth, 1)
	}
	h := max(m.height-2, 1)
	if m.screen.Width() != w || m.screen.Height() != h {
		m.screen.Resize(w, h)
	}
	m.ws.Camera(w, h)
}

func (m *EditorModel) applyActions() {
	if m.ws.Apply() {
		m.backToMenu = true
	}
	if m.ws.Core() == nil && !m.ws.Dialogs().Active() {
		m.backToMenu = true
	}
	if m.focus == focusConfig {
		if ed := m.ws.Core(); ed == nil || ed.ConfigObject() == nil {
			m.focus = focusScene
		}
	}
}

// handleKey processes keyboard input.
func (m *EditorModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.ws.Dialogs().Active() {
		return m.ws.Dialogs().Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}

	ed := m.ws.Core()
	if ed == nil {
		return nil
	}

	if ed.HelpVisible() && key.Matches(msg, m.keys.Back) {
		m.ws.Tree().Emit(widget.Event{Kind: widget.EventClosed, Widget: editor.WidgetHelp})
		return nil
	}

	if key.Matches(msg, m.keys.Focus) {
		m.cycleFocus(ed)
		return nil
	}

	switch m.focus {
	case focusPalette:
		if m.paletteKey(ed, msg) {
			return nil
		}
	case focusConfig:
		if m.configKey(ed, msg) {
			return nil
		}
	}

	if cmd, ok := m.keys.Command(msg); ok {
		m.execute(cmd)
		return nil
	}

	if m.focus == focusScene {
		m.sceneKey(ed, msg)
	}
	return nil
}

func (m *EditorModel) execute(cmd core.Command) {
	if err := m.ws.Execute(cmd); err != nil {
		m.ws.Status().SetStatus(err.Error())
	}
	m.layout()
}

// cycleFocus moves between the scene and the palette. Entering the
// palette counts as the pointer hovering the editor window.
func (m *EditorModel) cycleFocus(ed *editor.Editor) {
	if !ed.Enabled() {
		return
	}
	if m.focus == focusPalette {
		m.focus = focusScene
		ed.MouseLeave()
		return
	}
	m.focus = focusPalette
	ed.MouseEnter()
}

func (m *EditorModel) paletteKey(ed *editor.Editor, msg tea.KeyMsg) bool {
	tree := m.ws.Tree()
	menu, _ := tree.Get(editor.WidgetMenu)

	var items []widget.ID
	if active := ed.ActiveEntry(); active != nil {
		items = active.Items()
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.menuCursor = max(m.menuCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.menuCursor = core.Clamp(m.menuCursor+1, 0, max(len(menu.Items)-1, 0))
	case key.Matches(msg, m.keys.Left):
		m.itemCursor = max(m.itemCursor-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.itemCursor = core.Clamp(m.itemCursor+1, 0, max(len(items)-1, 0))
	case key.Matches(msg, m.keys.Select):
		if m.menuCursor < len(menu.Items) {
			prev := ed.ActiveEntry()
			tree.Emit(widget.Event{Kind: widget.EventSelectionChanged, Widget: editor.WidgetMenu, Index: m.menuCursor})
			if ed.ActiveEntry() != prev {
				m.itemCursor = 0
			}
		}
	case key.Matches(msg, m.keys.Click):
		if m.itemCursor < len(items) {
			tree.Emit(widget.Event{Kind: widget.EventClicked, Widget: items[m.itemCursor]})
			m.focus = focusScene
		}
	case key.Matches(msg, m.keys.Back):
		m.focus = focusScene
		ed.MouseLeave()
	default:
		return false
	}
	return true
}

func (m *EditorModel) configKey(ed *editor.Editor, msg tea.KeyMsg) bool {
	tree := m.ws.Tree()
	rows := configRows(tree)
	if len(rows) == 0 {
		m.focus = focusScene
		return false
	}
	m.configCursor = core.Clamp(m.configCursor, 0, len(rows)-1)
	field := rows[m.configCursor].field

	switch {
	case key.Matches(msg, m.keys.Up):
		m.configCursor = max(m.configCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.configCursor = core.Clamp(m.configCursor+1, 0, len(rows)-1)
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		if !field.Enabled || len(field.Items) == 0 {
			return true
		}
		step := 1
		if key.Matches(msg, m.keys.Left) {
			step = -1
		}
		next := (field.Selected + step + len(field.Items)) % len(field.Items)
		tree.Emit(widget.Event{Kind: widget.EventSelectionChanged, Widget: field.ID, Index: next})
	case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Click):
		if !field.Enabled {
			return true
		}
		switch field.Kind {
		case widget.KindButton:
			tree.Emit(widget.Event{Kind: widget.EventClicked, Widget: field.ID})
		case widget.KindEdit:
			id := field.ID
			label := rows[m.configCursor].label.Text
			m.ws.Dialogs().TextInput(label, gotext.Get("Value"), field.Text, func(text string, ok bool) {
				if ok && tree.Exists(id) {
					tree.Emit(widget.Event{Kind: widget.EventTextChanged, Widget: id, Text: text})
				}
			})
		}
	case key.Matches(msg, m.keys.Back):
		m.focus = focusScene
	default:
		return false
	}
	return true
}

func (m *EditorModel) sceneKey(ed *editor.Editor, msg tea.KeyMsg) {
	x, y := ed.Pointer()
	cam := ed.Camera()

	move := func(dx, dy int) {
		x, y = x+dx, y+dy
		switch {
		case x < cam.X:
			cam.Move(-cam.W/2, 0)
		case x >= cam.X+cam.W:
			cam.Move(cam.W/2, 0)
		}
		switch {
		case y < cam.Y:
			cam.Move(0, -cam.H/2)
		case y >= cam.Y+cam.H:
			cam.Move(0, cam.H/2)
		}
		ed.MovePointer(x, y)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		move(0, -cellH)
	case key.Matches(msg, m.keys.Down):
		move(0, cellH)
	case key.Matches(msg, m.keys.Left):
		move(-cellW, 0)
	case key.Matches(msg, m.keys.Right):
		move(cellW, 0)
	case key.Matches(msg, m.keys.Click):
		ed.Click(core.Pointer{X: x, Y: y})
	case key.Matches(msg, m.keys.AddClick):
		ed.Click(core.Pointer{X: x, Y: y, Shift: true})
	case key.Matches(msg, m.keys.TypeClick):
		ed.Click(core.Pointer{X: x, Y: y, Shift: true, Ctrl: true})
	case key.Matches(msg, m.keys.Config):
		if ed.ConfigObject() != nil {
			m.focus = focusConfig
			m.configCursor = 0
		}
	case key.Matches(msg, m.keys.Back):
		ed.ClearSelection()
		ed.HideConfigPanel()
	}
	m.layout()
}

// View renders the editing screen.
func (m EditorModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	ed := m.ws.Core()
	if ed == nil {
		return ""
	}
	tree := m.ws.Tree()
	bodyH := max(m.height-2, 1)

	x, y := ed.Pointer()
	cam := ed.Camera()
	DrawScene(m.screen, sceneView{
		Scene:    m.ws.Scene(),
		CamX:     cam.X,
		CamY:     cam.Y,
		PointerX: x,
		PointerY: y,
		Hovered:  ed.Hovered(),
		Selected: ed.IsSelected,
		Cursor:   ed.Enabled() && m.focus == focusScene,
	})
	main := RenderScreen(m.screen)

	if n, ok := tree.Get(editor.WidgetHelp); ok && n.Visible {
		main = lipgloss.Place(m.screen.Width(), bodyH, lipgloss.Center, lipgloss.Center,
			helpWindowStyle.Render(strings.TrimRight(n.Text, "\n")))
	}
	if m.ws.Dialogs().Active() {
		main = lipgloss.Place(m.screen.Width(), bodyH, lipgloss.Center, lipgloss.Center,
			m.ws.Dialogs().View(m.screen.Width()))
	}

	cols := []string{}
	if side := renderPalette(ed, tree, paletteState{
		menuCursor: m.menuCursor,
		itemCursor: m.itemCursor,
		focused:    m.focus == focusPalette,
	}, bodyH); side != "" {
		cols = append(cols, side)
	}
	cols = append(cols, main)
	if cfg := renderConfig(tree, m.configCursor, m.focus == focusConfig, bodyH); cfg != "" {
		cols = append(cols, cfg)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	return body + "\n" + m.statusBar(ed) + "\n" + mutedStyle.Render(m.help.View(m.keys))
}

func (m EditorModel) statusBar(ed *editor.Editor) string {
	doc := m.ws.Document()
	name := doc.Name
	if name == "" {
		name = gotext.Get("unnamed")
	}
	state := gotext.Get("editing")
	if !ed.Enabled() {
		state = gotext.Get("preview")
	}
	x, y := ed.Pointer()
	left := fmt.Sprintf(" %s %s | %s | %d,%d | %s ",
		m.ws.Kind(), name, state, x, y,
		gotext.GetN("%d selected", "%d selected", len(ed.Selection()), len(ed.Selection())))
	if ed.Snap() {
		left += "| snap "
	}
	if text := m.ws.Status().Text(); text != "" {
		left += "| " + text + " "
	}
	return statusStyle.Width(max(m.width, 1)).Render(truncate(left, max(m.width, 1)))
}

// IsQuitting returns true if user requested to quit.
func (m EditorModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the editor asked to return to the browser.
func (m EditorModel) BackToMenu() bool {
	return m.backToMenu
}
