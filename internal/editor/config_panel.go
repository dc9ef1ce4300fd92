package editor

import (
	"fmt"
	"slices"

	"github.com/leonelquinteros/gotext"

	"github.com/vovakirdan/tsc-editor/internal/registry"
	"github.com/vovakirdan/tsc-editor/internal/scene"
	"github.com/vovakirdan/tsc-editor/internal/widget"
)

// MinConfigRowHeight is the smallest height of a config panel row.
const MinConfigRowHeight = 28

// ConfigObject returns the object the config panel is open for, or nil.
func (e *Editor) ConfigObject() *scene.Sprite {
	return e.configObj
}

// ConfigWidgetCount returns the number of live config widgets, labels
// included.
func (e *Editor) ConfigWidgetCount() int {
	return len(e.config)
}

// AddConfigWidget adds a labelled row to the config panel and returns the
// id of the created widget. Rows stack top to bottom; height is clamped
// to MinConfigRowHeight.
func (e *Editor) AddConfigWidget(name, tooltip string, kind widget.Kind, height float64) (widget.ID, error) {
	height = max(height, MinConfigRowHeight) * e.opts.DisplayScale

	n := len(e.config)
	label := widget.ID(fmt.Sprintf("%s_label_%d", WidgetConfig, n))
	id := widget.ID(fmt.Sprintf("%s_widget_%d", WidgetConfig, n))

	if err := e.host.Create(label, widget.KindLabel, WidgetConfig); err != nil {
		return "", err
	}
	e.config = append(e.config, label)
	e.host.SetText(label, name)
	e.host.SetTooltip(label, tooltip)
	e.host.SetPosition(label, 0, e.configY)
	e.host.SetSize(label, 0.5, height)

	if err := e.host.Create(id, kind, WidgetConfig); err != nil {
		return "", err
	}
	e.config = append(e.config, id)
	e.host.SetTooltip(id, tooltip)
	e.host.SetPosition(id, 0.5, e.configY)
	e.host.SetSize(id, 0.5, height)

	e.configY += height
	return id, nil
}

// ShowConfigPanel builds the config widgets for obj. A concrete editor
// implementing ConfigBuilder gets the first chance; otherwise the
// registry fields of obj's type are offered.
func (e *Editor) ShowConfigPanel(obj *scene.Sprite) {
	e.HideConfigPanel()
	if obj == nil {
		return
	}
	e.configObj = obj

	handled := false
	if b, ok := e.funcs.(ConfigBuilder); ok {
		handled = b.BuildConfig(obj)
	}
	if !handled {
		if err := e.buildFieldWidgets(obj); err != nil {
			e.report(err)
		}
	}

	if len(e.config) == 0 {
		e.configObj = nil
		return
	}
	e.host.SetPosition(WidgetConfig, configX, 0)
	e.host.SetVisible(WidgetConfig, true)
}

// HideConfigPanel destroys every config widget and moves the panel out
// of sight. Widgets are never reused for another object.
func (e *Editor) HideConfigPanel() {
	for _, id := range e.config {
		e.host.Destroy(id)
	}
	e.config = nil
	e.configY = 0
	e.configObj = nil
	e.host.SetPosition(WidgetConfig, configHidden, 0)
	e.host.SetVisible(WidgetConfig, false)
}

func (e *Editor) buildFieldWidgets(obj *scene.Sprite) error {
	info, ok := registry.Info(string(obj.Type))
	if !ok {
		return nil
	}

	for _, f := range info.Fields {
		value, set := obj.Props[f.Key]
		if !set {
			value = f.Default
		}

		if len(f.Choices) > 0 {
			id, err := e.AddConfigWidget(gotext.Get(f.Label), gotext.Get(f.Tip), widget.KindChoice, 0)
			if err != nil {
				return err
			}
			e.host.SetItems(id, f.Choices)
			e.host.SetSelected(id, slices.Index(f.Choices, value))
			e.host.Subscribe(id, widget.EventSelectionChanged, func(ev widget.Event) {
				obj.Props[f.Key] = ev.Text
			})
			continue
		}

		id, err := e.AddConfigWidget(gotext.Get(f.Label), gotext.Get(f.Tip), widget.KindEdit, 0)
		if err != nil {
			return err
		}
		e.host.SetText(id, value)
		e.host.Subscribe(id, widget.EventTextChanged, func(ev widget.Event) {
			obj.Props[f.Key] = ev.Text
		})
	}
	return nil
}
