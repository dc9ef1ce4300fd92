package editor

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tsc-editor/internal/catalog"
	"github.com/vovakirdan/tsc-editor/internal/core"
	"github.com/vovakirdan/tsc-editor/internal/widget"
)

// Palette row metrics, multiplied by the display scale.
const (
	itemLabelHeight = 24
	itemImageHeight = 48
	itemRowGap      = 24
)

// MenuEntry is one category of the item palette. Regular entries own a
// panel of placeable items; header entries only decorate the category
// list and function entries trigger an editor function.
type MenuEntry struct {
	host     widget.Host
	name     string
	color    core.Color
	tags     []string
	header   bool
	function bool
	scale    float64

	panel widget.ID
	built bool
	y     float64
	items []widget.ID
}

// NewMenuEntry creates an entry. Its panel is built lazily by the first
// AddItem or Activate call.
func NewMenuEntry(host widget.Host, def MenuDef, scale float64) *MenuEntry {
	if scale <= 0 {
		scale = 1
	}
	return &MenuEntry{
		host:     host,
		name:     def.Name,
		color:    def.Color,
		tags:     slices.Clone(def.Tags),
		header:   def.Header,
		function: def.Function,
		scale:    scale,
		panel:    widget.ID("editor_items_" + def.Name),
	}
}

func (m *MenuEntry) Name() string      { return m.name }
func (m *MenuEntry) Color() core.Color { return m.color }
func (m *MenuEntry) IsHeader() bool    { return m.header }
func (m *MenuEntry) IsFunction() bool  { return m.function }
func (m *MenuEntry) Panel() widget.ID  { return m.panel }

// RequiredTags returns the tags an item must carry to be listed here.
func (m *MenuEntry) RequiredTags() []string {
	return slices.Clone(m.tags)
}

// Items returns the image widgets of the entry's items in panel order.
func (m *MenuEntry) Items() []widget.ID {
	return slices.Clone(m.items)
}

func (m *MenuEntry) build() error {
	if m.built {
		return nil
	}
	if err := m.host.Create(m.panel, widget.KindPanel, ""); err != nil {
		return fmt.Errorf("editor: menu entry %q: %w", m.name, err)
	}
	m.built = true
	return nil
}

// AddItem appends a label and image row for item and returns the image
// widget, which the editor listens on for clicks.
func (m *MenuEntry) AddItem(item *catalog.ItemTemplate) (widget.ID, error) {
	if err := m.build(); err != nil {
		return "", err
	}

	n := len(m.items)
	label := widget.ID(fmt.Sprintf("%s_label_%d", m.panel, n))
	image := widget.ID(fmt.Sprintf("%s_image_%d", m.panel, n))

	if err := m.host.Create(label, widget.KindLabel, m.panel); err != nil {
		return "", err
	}
	m.host.SetText(label, item.Name)
	m.host.SetPosition(label, 0, m.y)
	m.host.SetSize(label, 1, itemLabelHeight*m.scale)

	if err := m.host.Create(image, widget.KindImage, m.panel); err != nil {
		m.host.Destroy(label)
		return "", err
	}
	m.host.SetImage(image, item.Image)
	m.host.SetRotation(image, item.Rotation)
	m.host.SetTooltip(image, item.Name)
	m.host.SetPosition(image, 0, m.y+itemLabelHeight*m.scale)
	m.host.SetSize(image, itemImageHeight*m.scale, itemImageHeight*m.scale)

	m.y += (itemLabelHeight + itemImageHeight + itemRowGap) * m.scale
	m.items = append(m.items, image)
	return image, nil
}

// Activate shows the entry's panel inside target, detaching any other
// panel shown there. Activating the shown entry again changes nothing.
func (m *MenuEntry) Activate(target widget.ID) error {
	if err := m.build(); err != nil {
		return err
	}
	for _, c := range m.host.Children(target) {
		if c != m.panel {
			m.host.Detach(c)
		}
	}
	if !slices.Contains(m.host.Children(target), m.panel) {
		m.host.Attach(m.panel, target)
	}
	return nil
}

// destroy tears down the entry's panel and rows.
func (m *MenuEntry) destroy() {
	if m.built {
		m.host.Destroy(m.panel)
	}
	m.built = false
	m.items = nil
	m.y = 0
}
