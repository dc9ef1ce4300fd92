package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leonelquinteros/gotext"

	"github.com/vovakirdan/tsc-editor/internal/storage"
)

// browserKinds are the browser tabs, in order.
var browserKinds = []storage.Kind{storage.KindLevel, storage.KindWorld}

// Target names a document the browser asked to edit.
type Target struct {
	Kind   storage.Kind
	Name   string
	Create bool
}

// BrowserModel is the Bubble Tea model listing stored levels and worlds.
type BrowserModel struct {
	store   *storage.Store
	dialogs *Dialogs
	records []storage.Record
	table   table.Model
	help    help.Model
	keys    BrowserKeyMap
	tab     int
	width   int
	height  int
	err     string
	result  *dialogResult

	chosen   *Target
	quitting bool
}

// NewBrowserModel creates a browser showing the given tab.
func NewBrowserModel(store *storage.Store, kind storage.Kind, width, height int) BrowserModel {
	h := help.New()
	h.ShowAll = false

	m := BrowserModel{
		store:   store,
		dialogs: NewDialogs(),
		result:  &dialogResult{},
		keys:    DefaultBrowserKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	for i, k := range browserKinds {
		if k == kind {
			m.tab = i
		}
	}
	m.table = m.createTable()
	m.reload()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: gotext.Get("Name"), Width: 24},
		{Title: gotext.Get("Objects"), Width: 8},
		{Title: gotext.Get("Updated"), Width: 14},
	}

	// Give the name column what the terminal has to spare
	if extra := m.width - 4 - 50; extra > 0 {
		columns[0].Width += min(extra, 40)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *BrowserModel) kind() storage.Kind {
	return browserKinds[m.tab]
}

// reload loads the records of the current tab.
func (m *BrowserModel) reload() {
	m.records = nil
	if m.store != nil {
		records, err := m.store.List(m.kind())
		if err != nil {
			m.err = err.Error()
		} else {
			m.records = records
		}
	}

	rows := make([]table.Row, len(m.records))
	for i, r := range m.records {
		rows[i] = table.Row{
			r.Name,
			fmt.Sprintf("%d", r.Objects),
			r.UpdatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.dialogs.Active() {
			cmd = m.dialogs.Update(msg)
			m.collect()
			return m, cmd
		}
		m.err = ""

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % len(browserKinds)
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + len(browserKinds) - 1) % len(browserKinds)
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.Open):
			if r, ok := m.current(); ok {
				m.chosen = &Target{Kind: r.Kind, Name: r.Name}
			}
			return m, nil

		case key.Matches(msg, m.keys.New):
			m.promptNew()
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			m.promptDelete()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.reload()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *BrowserModel) current() (storage.Record, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.records) {
		return storage.Record{}, false
	}
	return m.records[i], true
}

// dialogResult carries dialog answers back to the model. Answers arrive
// while a later copy of the model is updating, so the copies share it.
type dialogResult struct {
	create  *Target
	deleted bool
	err     error
}

// promptNew asks for the name of a new document.
func (m *BrowserModel) promptNew() {
	kind := m.kind()
	title := gotext.Get("Create a new Level")
	if kind == storage.KindWorld {
		title = gotext.Get("Create a new World")
	}
	res := m.result
	m.dialogs.TextInput(title, gotext.Get("Name"), "", func(name string, ok bool) {
		if ok && name != "" {
			res.create = &Target{Kind: kind, Name: name, Create: true}
		}
	})
}

func (m *BrowserModel) promptDelete() {
	r, ok := m.current()
	if !ok || m.store == nil {
		return
	}
	store, res := m.store, m.result
	m.dialogs.YesNo(gotext.Get("Delete %s ?", r.Name), func(yes bool) {
		if !yes {
			return
		}
		res.err = store.Delete(r.Kind, r.Name)
		res.deleted = true
	})
}

// collect applies dialog answers received since the last update.
func (m *BrowserModel) collect() {
	res := m.result
	if res.create != nil {
		m.chosen = res.create
		res.create = nil
	}
	if res.err != nil {
		m.err = res.err.Error()
		res.err = nil
	}
	if res.deleted {
		res.deleted = false
		m.reload()
	}
}

// SetError shows err above the table, for example when opening the
// chosen document failed. The choice is cleared.
func (m *BrowserModel) SetError(err error) {
	m.chosen = nil
	m.err = err.Error()
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText(gotext.Get("S E C R E T   C H R O N I C L E S   E D I T O R"), m.width)))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	tabs := make([]string, len(browserKinds))
	for i, k := range browserKinds {
		label := gotext.Get("Levels")
		if k == storage.KindWorld {
			label = gotext.Get("Worlds")
		}
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(label)
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(m.records) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		content = emptyStyle.Render(gotext.Get("Nothing saved yet.\nPress n to create one."))
	} else {
		content = m.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(content)))
	b.WriteString("\n")

	if m.dialogs.Active() {
		b.WriteString(m.dialogs.View(m.width))
		b.WriteString("\n")
	}
	if m.err != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.err))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Chosen returns the document to edit, or nil.
func (m BrowserModel) Chosen() *Target {
	return m.chosen
}

// IsQuitting returns true if user wants to quit entirely.
func (m BrowserModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
