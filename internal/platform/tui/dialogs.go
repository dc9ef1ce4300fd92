package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leonelquinteros/gotext"
)

type dialogKind int

const (
	dialogText dialogKind = iota
	dialogYesNo
	dialogMessage
)

type dialog struct {
	kind   dialogKind
	title  string
	input  textinput.Model
	onText func(string, bool)
	onYes  func(bool)
}

// Dialogs is the editor.Prompter of the terminal front end. Requests are
// queued and shown one at a time; the answer callback runs when the user
// closes the dialog, after it has been removed from the queue, so a
// callback may open the next dialog itself.
type Dialogs struct {
	queue []*dialog
}

// NewDialogs creates an empty dialog queue.
func NewDialogs() *Dialogs {
	return &Dialogs{}
}

// TextInput implements editor.Prompter.
func (d *Dialogs) TextInput(title, label, initial string, fn func(text string, ok bool)) {
	ti := textinput.New()
	ti.Prompt = label + ": "
	ti.CharLimit = 128
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()
	d.queue = append(d.queue, &dialog{kind: dialogText, title: title, input: ti, onText: fn})
}

// YesNo implements editor.Prompter.
func (d *Dialogs) YesNo(question string, fn func(yes bool)) {
	d.queue = append(d.queue, &dialog{kind: dialogYesNo, title: question, onYes: fn})
}

// Message implements editor.Prompter.
func (d *Dialogs) Message(text string) {
	d.queue = append(d.queue, &dialog{kind: dialogMessage, title: text})
}

// Active reports whether a dialog is waiting for input.
func (d *Dialogs) Active() bool {
	return len(d.queue) > 0
}

// Pending returns the number of queued dialogs.
func (d *Dialogs) Pending() int {
	return len(d.queue)
}

// Title returns the title of the shown dialog.
func (d *Dialogs) Title() string {
	if len(d.queue) == 0 {
		return ""
	}
	return d.queue[0].title
}

func (d *Dialogs) pop() *dialog {
	top := d.queue[0]
	d.queue = d.queue[1:]
	return top
}

// Update feeds a key to the shown dialog.
func (d *Dialogs) Update(msg tea.KeyMsg) tea.Cmd {
	if len(d.queue) == 0 {
		return nil
	}
	top := d.queue[0]

	switch top.kind {
	case dialogText:
		switch msg.Type {
		case tea.KeyEnter:
			d.pop()
			top.onText(strings.TrimSpace(top.input.Value()), true)
			return nil
		case tea.KeyEsc:
			d.pop()
			top.onText("", false)
			return nil
		}
		var cmd tea.Cmd
		top.input, cmd = top.input.Update(msg)
		return cmd

	case dialogYesNo:
		switch strings.ToLower(msg.String()) {
		case "y", "enter":
			d.pop()
			top.onYes(true)
		case "n", "esc":
			d.pop()
			top.onYes(false)
		}
		return nil

	default:
		d.pop()
		return nil
	}
}

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("57")).
			Padding(0, 2)
	dialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229"))
	dialogHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// View renders the shown dialog, or nothing.
func (d *Dialogs) View(width int) string {
	if len(d.queue) == 0 {
		return ""
	}
	top := d.queue[0]

	var b strings.Builder
	b.WriteString(dialogTitleStyle.Render(top.title))
	b.WriteString("\n\n")
	switch top.kind {
	case dialogText:
		b.WriteString(top.input.View())
		b.WriteString("\n\n")
		b.WriteString(dialogHintStyle.Render(gotext.Get("enter: ok  esc: cancel")))
	case dialogYesNo:
		b.WriteString(dialogHintStyle.Render(gotext.Get("y: yes  n: no")))
	default:
		b.WriteString(dialogHintStyle.Render(gotext.Get("press any key")))
	}

	box := dialogStyle.Render(b.String())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}
