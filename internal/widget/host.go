// Package widget defines the widget host the editor draws its panels into,
// and Tree, an in-memory host that keeps the widget hierarchy for a
// terminal front end to render.
package widget

import "github.com/vovakirdan/tsc-editor/internal/core"

// ID names a widget inside a Host. IDs are unique per host.
type ID string

// Kind selects what a created widget is.
type Kind int

const (
	KindPanel  Kind = iota // container
	KindList               // selectable text list
	KindLabel              // static text
	KindImage              // clickable image
	KindEdit               // single line text input
	KindChoice             // drop-down with fixed items
	KindButton             // push button
	KindWindow             // framed, closable window
)

var kindNames = [...]string{"panel", "list", "label", "image", "edit", "choice", "button", "window"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// EventKind enumerates the widget events the editor subscribes to.
type EventKind int

const (
	EventHoverEnter EventKind = iota
	EventHoverLeave
	EventSelectionChanged
	EventClicked
	EventTextChanged
	EventClosed
)

// Event is delivered to a Handler. Index is the selected row for lists and
// choices (-1 for none); Text is the selected or entered text.
type Event struct {
	Kind   EventKind
	Widget ID
	Index  int
	Text   string
}

// Handler receives widget events. Handlers run to completion on the
// caller's goroutine.
type Handler func(Event)

// Host is the widget toolkit the editor builds its panels in. The editor
// treats it as a sink: it creates, positions, shows, hides and destroys
// widgets and reacts to the subscribed events.
type Host interface {
	// Create makes a detached widget, or a child of parent if non-empty.
	Create(id ID, kind Kind, parent ID) error
	// Destroy removes a widget with all its children. Unknown ids are ignored.
	Destroy(id ID)
	// Attach moves a widget under parent, detaching it from any old parent.
	Attach(id, parent ID)
	// Detach removes a widget from its parent without destroying it.
	Detach(id ID)
	// Children lists the direct children of a widget in insertion order.
	Children(id ID) []ID
	Exists(id ID) bool

	SetText(id ID, text string)
	SetTooltip(id ID, text string)
	SetColor(id ID, c core.Color)
	SetImage(id ID, ident string)
	SetRotation(id ID, degrees [3]float64)
	SetItems(id ID, items []string)
	SetSelected(id ID, index int)
	SetPosition(id ID, x, y float64)
	SetSize(id ID, w, h float64)
	SetVisible(id ID, visible bool)
	SetEnabled(id ID, enabled bool)
	SetAlpha(id ID, alpha float64)

	Subscribe(id ID, kind EventKind, h Handler)
}
