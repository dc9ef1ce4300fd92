package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leonelquinteros/gotext"

	"github.com/vovakirdan/tsc-editor/internal/editor"
	"github.com/vovakirdan/tsc-editor/internal/widget"
)

// Sidebar layout constants
const (
	sidebarWidth   = 28 // Width of the item palette
	configWidth    = 34 // Width of the object settings panel
	collapsedWidth = 3  // Width of the palette when it has slid away
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	focusedPanelStyle = panelStyle.
				BorderForeground(lipgloss.Color("57"))
	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)
)

// paletteState is the cursor state of the palette sidebar.
type paletteState struct {
	menuCursor int
	itemCursor int
	focused    bool
}

// renderPalette draws the editor window from the widget tree: the
// category list followed by the rows of the shown category. It returns
// "" while the window is invisible.
func renderPalette(ed *editor.Editor, tree *widget.Tree, st paletteState, height int) string {
	root, ok := tree.Get(editor.WidgetRoot)
	if !ok || !root.Visible {
		return ""
	}
	if root.X < 0 {
		return mutedStyle.Render(strings.Repeat("»\n", nonNeg(height-1)) + "»")
	}

	inner := sidebarWidth - 4
	var b strings.Builder

	menu, _ := tree.Get(editor.WidgetMenu)
	entries := ed.Entries()
	for i, name := range menu.Items {
		line := truncate(name, inner-2)
		style := lipgloss.NewStyle()
		if i < len(entries) {
			style = colorStyle(entries[i].Color())
			if entries[i].IsHeader() {
				style = headerStyle
			}
		}
		prefix := "  "
		if i == menu.Selected {
			prefix = "• "
		}
		if st.focused && i == st.menuCursor {
			style = cursorStyle
		}
		b.WriteString(style.Render(prefix + line))
		b.WriteString("\n")
	}

	if active := ed.ActiveEntry(); active != nil {
		b.WriteString(mutedStyle.Render(strings.Repeat("─", inner)))
		b.WriteString("\n")
		items := active.Items()
		if len(items) == 0 {
			b.WriteString(mutedStyle.Render(gotext.Get("(no items)")))
			b.WriteString("\n")
		}
		for i, id := range items {
			n, _ := tree.Get(id)
			line := "  " + truncate(n.Tooltip, inner-2)
			if st.focused && i == st.itemCursor {
				line = cursorStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	style := panelStyle
	if st.focused {
		style = focusedPanelStyle
	}
	if root.Alpha < 0.5 {
		style = style.Faint(true)
	}
	return style.Width(sidebarWidth - 2).Height(nonNeg(height - 2)).Render(strings.TrimRight(b.String(), "\n"))
}

// configRow is one editable row of the object settings panel.
type configRow struct {
	label widget.Node
	field widget.Node
}

// configRows pairs the label and field widgets of the settings panel.
func configRows(tree *widget.Tree) []configRow {
	var rows []configRow
	var label *widget.Node
	for _, id := range tree.Children(editor.WidgetConfig) {
		n, ok := tree.Get(id)
		if !ok {
			continue
		}
		if n.Kind == widget.KindLabel && label == nil {
			label = &n
			continue
		}
		row := configRow{field: n}
		if label != nil {
			row.label = *label
		}
		rows = append(rows, row)
		label = nil
	}
	return rows
}

// renderConfig draws the object settings panel, or "" when it is closed.
func renderConfig(tree *widget.Tree, cursor int, focused bool, height int) string {
	pane, ok := tree.Get(editor.WidgetConfig)
	if !ok || !pane.Visible {
		return ""
	}
	rows := configRows(tree)
	if len(rows) == 0 {
		return ""
	}

	inner := configWidth - 4
	var b strings.Builder
	for i, r := range rows {
		value := fieldValue(r.field)
		line := fmt.Sprintf("%s: %s", r.label.Text, value)
		line = truncate(line, inner)
		switch {
		case focused && i == cursor:
			line = cursorStyle.Render(line)
		case !r.field.Enabled:
			line = mutedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	style := panelStyle
	if focused {
		style = focusedPanelStyle
	}
	return style.Width(configWidth - 2).Height(nonNeg(height - 2)).Render(strings.TrimRight(b.String(), "\n"))
}

func fieldValue(n widget.Node) string {
	switch n.Kind {
	case widget.KindChoice, widget.KindList:
		if n.Selected >= 0 && n.Selected < len(n.Items) {
			return "< " + n.Items[n.Selected] + " >"
		}
		if len(n.Items) == 0 {
			return "-"
		}
		return "< ? >"
	case widget.KindButton:
		return "[" + n.Text + "]"
	}
	return n.Text
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

func nonNeg(v int) int {
	return max(v, 0)
}
