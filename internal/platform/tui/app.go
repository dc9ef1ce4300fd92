package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tsc-editor/internal/core"
	"github.com/vovakirdan/tsc-editor/internal/storage"
)

// AppModel manages the full editing session flow: browser -> editor ->
// browser. It is the top-level model of both the local and SSH front ends.
type AppModel struct {
	ws      *Workspace
	store   *storage.Store
	keys    EditorKeyMap
	config  core.RuntimeConfig
	browser BrowserModel
	editor  *EditorModel
	quitting bool
}

// NewAppModel creates the session model. When open is set the document
// is opened straight away and the session starts in the editor.
func NewAppModel(ws *Workspace, store *storage.Store, keys EditorKeyMap, cfg core.RuntimeConfig, open *Target) (AppModel, error) {
	m := AppModel{
		ws:      ws,
		store:   store,
		keys:    keys,
		config:  cfg,
		browser: NewBrowserModel(store, storage.KindLevel, cfg.ScreenW, cfg.ScreenH),
	}
	if open != nil {
		if err := ws.Open(open.Kind, open.Name, open.Create); err != nil {
			return m, err
		}
		em := NewEditorModel(ws, keys, cfg)
		m.editor = &em
	}
	return m, nil
}

// Init initializes the session.
func (m AppModel) Init() tea.Cmd {
	if m.editor != nil {
		return m.editor.Init()
	}
	return m.browser.Init()
}

// Update handles messages for the session.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.editor != nil {
		return m.updateEditor(msg)
	}
	return m.updateBrowser(msg)
}

func (m AppModel) updateBrowser(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.browser.Update(msg)
	if b, ok := next.(BrowserModel); ok {
		m.browser = b
	}

	if m.browser.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if t := m.browser.Chosen(); t != nil {
		if err := m.ws.Open(t.Kind, t.Name, t.Create); err != nil {
			m.browser.SetError(err)
			return m, nil
		}
		em := NewEditorModel(m.ws, m.keys, m.config)
		m.editor = &em
		return m, m.editor.Init()
	}
	return m, cmd
}

func (m AppModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.editor.Update(msg)
	if em, ok := next.(EditorModel); ok {
		m.editor = &em
	}

	if m.editor.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.editor.BackToMenu() {
		kind := m.ws.Kind()
		if kind == "" {
			kind = storage.KindLevel
		}
		m.editor = nil
		m.browser = NewBrowserModel(m.store, kind, m.config.ScreenW, m.config.ScreenH)
		return m, m.browser.Init()
	}
	return m, cmd
}

// View renders the current view.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	if m.editor != nil {
		return m.editor.View()
	}
	return m.browser.View()
}

// Run starts the Bubble Tea program on the local terminal.
func Run(ws *Workspace, store *storage.Store, keys EditorKeyMap, cfg core.RuntimeConfig, open *Target) error {
	model, err := NewAppModel(ws, store, keys, cfg, open)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
