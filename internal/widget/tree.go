package widget

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tsc-editor/internal/core"
)

// ErrExists is returned by Create for a duplicate id.
var ErrExists = errors.New("widget: id already exists")

// ErrNoParent is returned by Create when the parent does not exist.
var ErrNoParent = errors.New("widget: parent does not exist")

// Node is the retained state of one widget.
type Node struct {
	ID       ID
	Kind     Kind
	Parent   ID
	Text     string
	Tooltip  string
	Color    core.Color
	Image    string
	Rotation [3]float64
	Items    []string
	Selected int
	X, Y     float64
	W, H     float64
	Visible  bool
	Enabled  bool
	Alpha    float64

	children []ID
	handlers map[EventKind][]Handler
}

// Children returns the node's child ids in insertion order.
func (n *Node) Children() []ID {
	return slices.Clone(n.children)
}

// Tree is an in-memory Host. A mutex guards the map so a renderer on
// another goroutine may snapshot nodes, but events are expected to be
// emitted from the editor's goroutine.
type Tree struct {
	mu    sync.RWMutex
	nodes map[ID]*Node
}

var _ Host = (*Tree)(nil)

// NewTree creates an empty widget tree.
func NewTree() *Tree {
	return &Tree{nodes: make(map[ID]*Node)}
}

// Create implements Host.
func (t *Tree) Create(id ID, kind Kind, parent ID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.nodes[id]; ok {
		return fmt.Errorf("%w: %q", ErrExists, id)
	}
	if parent != "" {
		if _, ok := t.nodes[parent]; !ok {
			return fmt.Errorf("%w: %q", ErrNoParent, parent)
		}
	}

	t.nodes[id] = &Node{
		ID:       id,
		Kind:     kind,
		Selected: -1,
		Visible:  true,
		Enabled:  true,
		Alpha:    1,
		handlers: make(map[EventKind][]Handler),
	}
	if parent != "" {
		t.attach(id, parent)
	}
	return nil
}

// Destroy implements Host.
func (t *Tree) Destroy(id ID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, ok := t.nodes[id]
	if !ok {
		return
	}
	t.detach(n)
	t.destroy(n)
}

func (t *Tree) destroy(n *Node) {
	for _, c := range n.children {
		if child, ok := t.nodes[c]; ok {
			t.destroy(child)
		}
	}
	delete(t.nodes, n.ID)
}

// Attach implements Host.
func (t *Tree) Attach(id, parent ID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.nodes[id]; !ok {
		return
	}
	if _, ok := t.nodes[parent]; !ok {
		return
	}
	t.attach(id, parent)
}

func (t *Tree) attach(id, parent ID) {
	n := t.nodes[id]
	t.detach(n)
	n.Parent = parent
	p := t.nodes[parent]
	p.children = append(p.children, id)
}

// Detach implements Host.
func (t *Tree) Detach(id ID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if n, ok := t.nodes[id]; ok {
		t.detach(n)
	}
}

func (t *Tree) detach(n *Node) {
	if n.Parent == "" {
		return
	}
	if p, ok := t.nodes[n.Parent]; ok {
		if i := slices.Index(p.children, n.ID); i >= 0 {
			p.children = slices.Delete(p.children, i, i+1)
		}
	}
	n.Parent = ""
}

// Children implements Host.
func (t *Tree) Children(id ID) []ID {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n, ok := t.nodes[id]; ok {
		return n.Children()
	}
	return nil
}

// Exists implements Host.
func (t *Tree) Exists(id ID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.nodes[id]
	return ok
}

// Len returns the number of live widgets.
func (t *Tree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.nodes)
}

// Get returns a copy of a node's state.
func (t *Tree) Get(id ID) (Node, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n, ok := t.nodes[id]
	if !ok {
		return Node{}, false
	}
	c := *n
	c.children = slices.Clone(n.children)
	c.Items = slices.Clone(n.Items)
	c.handlers = nil
	return c, true
}

func (t *Tree) update(id ID, fn func(n *Node)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if n, ok := t.nodes[id]; ok {
		fn(n)
	}
}

// SetText implements Host.
func (t *Tree) SetText(id ID, text string) { t.update(id, func(n *Node) { n.Text = text }) }

// SetTooltip implements Host.
func (t *Tree) SetTooltip(id ID, text string) { t.update(id, func(n *Node) { n.Tooltip = text }) }

// SetColor implements Host.
func (t *Tree) SetColor(id ID, c core.Color) { t.update(id, func(n *Node) { n.Color = c }) }

// SetImage implements Host.
func (t *Tree) SetImage(id ID, ident string) { t.update(id, func(n *Node) { n.Image = ident }) }

// SetRotation implements Host.
func (t *Tree) SetRotation(id ID, deg [3]float64) { t.update(id, func(n *Node) { n.Rotation = deg }) }

// SetItems implements Host. The selection is reset.
func (t *Tree) SetItems(id ID, items []string) {
	t.update(id, func(n *Node) {
		n.Items = slices.Clone(items)
		n.Selected = -1
	})
}

// SetSelected implements Host. Out of range indices clear the selection.
func (t *Tree) SetSelected(id ID, index int) {
	t.update(id, func(n *Node) {
		if index < 0 || index >= len(n.Items) {
			index = -1
		}
		n.Selected = index
	})
}

// SetPosition implements Host.
func (t *Tree) SetPosition(id ID, x, y float64) { t.update(id, func(n *Node) { n.X, n.Y = x, y }) }

// SetSize implements Host.
func (t *Tree) SetSize(id ID, w, h float64) { t.update(id, func(n *Node) { n.W, n.H = w, h }) }

// SetVisible implements Host.
func (t *Tree) SetVisible(id ID, v bool) { t.update(id, func(n *Node) { n.Visible = v }) }

// SetEnabled implements Host.
func (t *Tree) SetEnabled(id ID, e bool) { t.update(id, func(n *Node) { n.Enabled = e }) }

// SetAlpha implements Host.
func (t *Tree) SetAlpha(id ID, a float64) { t.update(id, func(n *Node) { n.Alpha = core.ClampF(a, 0, 1) }) }

// Subscribe implements Host.
func (t *Tree) Subscribe(id ID, kind EventKind, h Handler) {
	t.update(id, func(n *Node) { n.handlers[kind] = append(n.handlers[kind], h) })
}

// Emit delivers an event to the handlers subscribed on ev.Widget.
// Selection and text events also update the node first, the way a real
// toolkit changes the widget before notifying.
func (t *Tree) Emit(ev Event) {
	t.mu.Lock()
	n, ok := t.nodes[ev.Widget]
	if !ok {
		t.mu.Unlock()
		return
	}
	switch ev.Kind {
	case EventSelectionChanged:
		if ev.Index >= 0 && ev.Index < len(n.Items) {
			n.Selected = ev.Index
			if ev.Text == "" {
				ev.Text = n.Items[ev.Index]
			}
		}
	case EventTextChanged:
		n.Text = ev.Text
	}
	handlers := slices.Clone(n.handlers[ev.Kind])
	t.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}

// Walk visits id and its visible descendants depth-first.
func (t *Tree) Walk(id ID, fn func(n Node, depth int)) {
	t.walk(id, 0, fn)
}

func (t *Tree) walk(id ID, depth int, fn func(n Node, depth int)) {
	n, ok := t.Get(id)
	if !ok || !n.Visible {
		return
	}
	fn(n, depth)
	for _, c := range n.children {
		t.walk(c, depth+1, fn)
	}
}
