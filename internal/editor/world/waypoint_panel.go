package world

import (
	"slices"
	"strconv"

	"github.com/leonelquinteros/gotext"

	"github.com/vovakirdan/tsc-editor/internal/core"
	"github.com/vovakirdan/tsc-editor/internal/overworld"
	"github.com/vovakirdan/tsc-editor/internal/scene"
	"github.com/vovakirdan/tsc-editor/internal/widget"
)

var (
	typeLabels   = []string{overworld.WaypointNormal.String(), overworld.WaypointWorldLink.String()}
	accessLabels = []string{"Enabled", "Disabled"}
	lockLabels   = []string{"Locked", "Unlocked"}
	dirLabels    = []string{"up", "down", "right", "left"}
)

// waypointPanel holds the config widgets of the waypoint being edited.
// selected is the 0-based exit shown in the exit fields, or -1.
type waypointPanel struct {
	obj      *scene.Sprite
	wp       *overworld.Waypoint
	selected int

	exitList  widget.ID
	direction widget.ID
	levelExit widget.ID
	lineStart widget.ID
	locked    widget.ID
	remove    widget.ID
}

// BuildConfig implements editor.ConfigBuilder for waypoints.
func (h hooks) BuildConfig(obj *scene.Sprite) bool {
	if obj.Type != scene.TypeWaypoint {
		return false
	}
	if obj.Waypoint == nil {
		obj.Waypoint = overworld.NewWaypoint()
	}
	if err := h.e.buildWaypointPanel(obj); err != nil {
		h.e.fail(err)
	}
	return true
}

// SelectedExit returns the selected exit of the open waypoint panel, or -1
// when no exit is selected or no waypoint panel is open.
func (e *Editor) SelectedExit() int {
	if p := e.openPanel(); p != nil {
		return p.selected
	}
	return -1
}

// openPanel returns the waypoint panel if it is the config panel shown.
func (e *Editor) openPanel() *waypointPanel {
	if e.panel == nil || e.panel.obj != e.ConfigObject() {
		return nil
	}
	return e.panel
}

func (e *Editor) buildWaypointPanel(obj *scene.Sprite) error {
	host := e.Host()
	wp := obj.Waypoint
	p := &waypointPanel{obj: obj, wp: wp, selected: -1}
	e.panel = p

	id, err := e.AddConfigWidget(gotext.Get("Type"), gotext.Get("Waypoint type"), widget.KindChoice, 0)
	if err != nil {
		return err
	}
	host.SetItems(id, typeLabels)
	host.SetSelected(id, slices.Index(typeLabels, wp.Type.String()))
	host.Subscribe(id, widget.EventSelectionChanged, func(ev widget.Event) {
		if ev.Text == overworld.WaypointWorldLink.String() {
			wp.Type = overworld.WaypointWorldLink
		} else {
			wp.Type = overworld.WaypointNormal
		}
	})

	id, err = e.AddConfigWidget(gotext.Get("Destination"), gotext.Get("Level or world entered from here"), widget.KindEdit, 0)
	if err != nil {
		return err
	}
	host.SetText(id, wp.Destination)
	host.Subscribe(id, widget.EventTextChanged, func(ev widget.Event) { wp.Destination = ev.Text })

	id, err = e.AddConfigWidget(gotext.Get("Default Access"), gotext.Get("Accessible without unlocking"), widget.KindChoice, 0)
	if err != nil {
		return err
	}
	host.SetItems(id, accessLabels)
	if wp.Access {
		host.SetSelected(id, 0)
	} else {
		host.SetSelected(id, 1)
	}
	host.Subscribe(id, widget.EventSelectionChanged, func(ev widget.Event) { wp.Access = ev.Text == accessLabels[0] })

	if p.exitList, err = e.AddConfigWidget(gotext.Get("Waypoint Exit"), gotext.Get("Exit to edit"), widget.KindChoice, 0); err != nil {
		return err
	}
	host.Subscribe(p.exitList, widget.EventSelectionChanged, func(ev widget.Event) {
		p.selected = wp.ExitIndexForLabel(ev.Text)
		e.updateExitWidgets()
	})

	add, err := e.AddConfigWidget(gotext.Get("New Exit"), gotext.Get("Add an exit"), widget.KindButton, 0)
	if err != nil {
		return err
	}
	host.SetText(add, gotext.Get("New"))
	host.Subscribe(add, widget.EventClicked, func(widget.Event) { e.AddExit() })

	if p.remove, err = e.AddConfigWidget(gotext.Get("Delete Exit"), gotext.Get("Delete the selected exit"), widget.KindButton, 0); err != nil {
		return err
	}
	host.SetText(p.remove, gotext.Get("Delete"))
	host.Subscribe(p.remove, widget.EventClicked, func(widget.Event) { e.RemoveSelectedExit() })

	if p.direction, err = e.AddConfigWidget(gotext.Get("Leave direction"), gotext.Get("Key that leaves through this exit"), widget.KindChoice, 0); err != nil {
		return err
	}
	host.SetItems(p.direction, dirLabels)
	host.Subscribe(p.direction, widget.EventSelectionChanged, func(ev widget.Event) {
		d, err := core.ParseDirection(ev.Text)
		if err == nil {
			err = wp.SetExitDirection(p.selected, d)
		}
		if err != nil {
			e.Logger().Warn("waypoint exit direction", "err", err)
		}
	})

	if p.levelExit, err = e.AddConfigWidget(gotext.Get("Level Exit"), gotext.Get("Level exit that unlocks this exit"), widget.KindEdit, 0); err != nil {
		return err
	}
	host.Subscribe(p.levelExit, widget.EventTextChanged, func(ev widget.Event) {
		if err := wp.SetExitLevelExitName(p.selected, ev.Text); err != nil {
			e.Logger().Warn("waypoint exit level exit", "err", err)
		}
	})

	if p.lineStart, err = e.AddConfigWidget(gotext.Get("Line start UID"), gotext.Get("Line point the player walks onto"), widget.KindEdit, 0); err != nil {
		return err
	}
	host.Subscribe(p.lineStart, widget.EventTextChanged, func(ev widget.Event) {
		uid, err := strconv.Atoi(ev.Text)
		if err == nil {
			err = wp.SetExitLineStartUID(p.selected, uid)
		}
		if err != nil {
			e.Logger().Warn("waypoint exit line start", "err", err)
		}
	})

	if p.locked, err = e.AddConfigWidget(gotext.Get("Lock state"), gotext.Get("Whether the exit starts locked"), widget.KindChoice, 0); err != nil {
		return err
	}
	host.SetItems(p.locked, lockLabels)
	host.Subscribe(p.locked, widget.EventSelectionChanged, func(ev widget.Event) {
		if err := wp.SetExitLocked(p.selected, ev.Text == lockLabels[0]); err != nil {
			e.Logger().Warn("waypoint exit lock", "err", err)
		}
	})

	e.refreshExitList(-1)
	return nil
}

// refreshExitList rebuilds the exit selector and selects exit i, or
// "(None)" for -1.
func (e *Editor) refreshExitList(i int) {
	p := e.panel
	host := e.Host()
	host.SetItems(p.exitList, p.wp.ExitLabels())
	host.SetSelected(p.exitList, i+1)
	p.selected = i
	e.updateExitWidgets()
}

// updateExitWidgets fills the exit fields from the selected exit, or
// resets and disables them when no exit is selected.
func (e *Editor) updateExitWidgets() {
	p := e.panel
	host := e.Host()

	ex, err := p.wp.Exit(p.selected)
	enabled := err == nil
	if !enabled {
		p.selected = -1
		ex = overworld.NewExit()
	}

	host.SetSelected(p.direction, slices.Index(dirLabels, ex.Direction.String()))
	host.SetText(p.levelExit, ex.LevelExitName)
	host.SetText(p.lineStart, strconv.Itoa(ex.LineStartUID))
	if ex.Locked {
		host.SetSelected(p.locked, 0)
	} else {
		host.SetSelected(p.locked, 1)
	}

	for _, id := range []widget.ID{p.direction, p.levelExit, p.lineStart, p.locked, p.remove} {
		host.SetEnabled(id, enabled)
	}
}

// AddExit appends a default exit to the open waypoint and selects it.
func (e *Editor) AddExit() int {
	p := e.openPanel()
	if p == nil {
		return -1
	}
	if p.wp.Len() >= overworld.MaxExits {
		e.Status(gotext.Get("A waypoint has at most %d exits", overworld.MaxExits))
		return -1
	}
	i := p.wp.AddExit()
	e.refreshExitList(i)
	return i
}

// RemoveSelectedExit deletes the selected exit of the open waypoint. The
// selector is rebuilt since the following exits move down by one.
func (e *Editor) RemoveSelectedExit() bool {
	p := e.openPanel()
	if p == nil || p.selected < 0 {
		return false
	}
	if err := p.wp.RemoveExit(p.selected); err != nil {
		e.Logger().Warn("remove waypoint exit", "err", err)
		return false
	}
	e.refreshExitList(-1)
	return true
}
