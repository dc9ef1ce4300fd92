package editor

import (
	"strings"

	"github.com/leonelquinteros/gotext"

	"github.com/vovakirdan/tsc-editor/internal/widget"
)

var helpGeneral = []string{
	"F1|Toggle this help window",
	"F8|Open / close the editor",
	"F10|Toggle sound effects",
	"F11|Toggle music",
	"Home|Focus level start",
	"End|Focus last level exit",
	"Ctrl + G|Go to camera position",
	"N|Step one screen to the right (next screen)",
	"P|Step one screen to the left (previous screen)",
	"Ctrl + N|Create a new level",
	"Ctrl + S|Save the current level",
	"Ctrl + Shift + S|Save the current level under a new name",
}

var helpObjects = []string{
	"M|Cycle selected object(s) through massive types",
	"O|Toggle snap to grid",
	"Ctrl + Shift + click|Select all objects with the same type",
	"Ctrl + A|Select all objects",
	"Ctrl + Shift + A|Deselect all objects",
	"Ctrl + X|Cut currently selected objects",
	"Ctrl + C|Copy currently selected objects",
	"Ctrl + V or Insert|Paste current copied objects",
	"Ctrl + R|Replace the selected basic sprite(s) image with another one",
	"Del|Delete the hovered object, or the selection",
	"Shift + arrows|Fast copy the hovered object or selection",
	"Alt + arrows|Move the selected object(s) by one unit",
	"+|Bring object to front",
	"-|Send object to back",
}

// HelpText returns the localized help text, one "keys  description"
// line per binding.
func HelpText() string {
	var b strings.Builder
	section := func(title string, lines []string) {
		b.WriteString("# " + gotext.Get(title) + "\n")
		for _, l := range lines {
			keys, desc, _ := strings.Cut(l, "|")
			b.WriteString(keys + "  " + gotext.Get(desc) + "\n")
		}
	}
	section("General", helpGeneral)
	b.WriteString("\n")
	section("Objects", helpObjects)
	return b.String()
}

// HelpVisible reports whether the help window is shown.
func (e *Editor) HelpVisible() bool {
	return e.helpVisible
}

// ToggleHelp shows or closes the help window.
func (e *Editor) ToggleHelp() {
	if e.helpVisible {
		e.hideHelp()
		return
	}
	if !e.host.Exists(WidgetHelp) {
		if err := e.host.Create(WidgetHelp, widget.KindWindow, ""); err != nil {
			e.report(err)
			return
		}
		e.host.SetText(WidgetHelp, HelpText())
		e.host.Subscribe(WidgetHelp, widget.EventClosed, func(widget.Event) { e.hideHelp() })
	}
	e.host.SetVisible(WidgetHelp, true)
	e.helpVisible = true
}

func (e *Editor) hideHelp() {
	if e.host.Exists(WidgetHelp) {
		e.host.SetVisible(WidgetHelp, false)
	}
	e.helpVisible = false
}
