package editor

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leonelquinteros/gotext"

	"github.com/vovakirdan/tsc-editor/internal/core"
	"github.com/vovakirdan/tsc-editor/internal/scene"
)

// snapGrid is the grid placed and pasted objects align to with snap on.
const snapGrid = 4

type pointerState struct {
	x, y    int
	hovered *scene.Sprite
}

func (e *Editor) resetPointer() {
	e.pointer = pointerState{}
	e.selection = nil
}

// MovePointer updates the pointer position, in scene coordinates, and the
// hovered object under it.
func (e *Editor) MovePointer(x, y int) {
	e.pointer.x, e.pointer.y = x, y
	e.pointer.hovered = nil
	if e.enabled && e.scene != nil {
		e.pointer.hovered = e.scene.At(x, y)
	}
}

// Pointer returns the last pointer position.
func (e *Editor) Pointer() (int, int) {
	return e.pointer.x, e.pointer.y
}

// Hovered returns the object under the pointer, or nil.
func (e *Editor) Hovered() *scene.Sprite {
	return e.pointer.hovered
}

// Snap reports whether placement snaps to the grid.
func (e *Editor) Snap() bool {
	return e.snap
}

func (e *Editor) snapped(x, y int) (int, int) {
	if !e.snap {
		return x, y
	}
	return snapTo(x), snapTo(y)
}

func snapTo(v int) int {
	if v < 0 {
		return -snapTo(-v)
	}
	return (v + snapGrid/2) / snapGrid * snapGrid
}

// Click handles a primary button press at p. Plain clicks select the
// hovered object alone, Shift toggles it in the selection and
// Ctrl+Shift selects every object of the same type.
func (e *Editor) Click(p core.Pointer) {
	if !e.enabled {
		return
	}
	e.MovePointer(p.X, p.Y)
	obj := e.pointer.hovered

	switch {
	case obj == nil:
		if !p.Shift {
			e.ClearSelection()
		}
	case p.Ctrl && p.Shift:
		e.SelectSameType(obj)
	case p.Shift:
		if e.IsSelected(obj) {
			e.Deselect(obj)
		} else {
			e.Select(obj)
		}
	default:
		e.selection = []*scene.Sprite{obj}
	}

	if len(e.selection) == 1 {
		e.ShowConfigPanel(e.selection[0])
	} else {
		e.HideConfigPanel()
	}
}

// Selection returns the selected objects in selection order.
func (e *Editor) Selection() []*scene.Sprite {
	return slices.Clone(e.selection)
}

// IsSelected reports whether obj is selected.
func (e *Editor) IsSelected(obj *scene.Sprite) bool {
	return slices.Contains(e.selection, obj)
}

// Select adds obj to the selection.
func (e *Editor) Select(obj *scene.Sprite) {
	if obj != nil && !e.IsSelected(obj) {
		e.selection = append(e.selection, obj)
	}
}

// Deselect removes obj from the selection.
func (e *Editor) Deselect(obj *scene.Sprite) {
	if i := slices.Index(e.selection, obj); i >= 0 {
		e.selection = slices.Delete(e.selection, i, i+1)
	}
}

// ClearSelection deselects everything.
func (e *Editor) ClearSelection() {
	e.selection = nil
	e.HideConfigPanel()
}

// SelectAll replaces the selection with every object in the scene.
func (e *Editor) SelectAll() {
	e.ClearSelection()
	if e.scene == nil {
		return
	}
	e.selection = e.scene.Objects()
}

// SelectSameType adds every object of obj's type to the selection. Basic
// sprites only match sprites showing the same image; a basic sprite
// without an image selects nothing.
func (e *Editor) SelectSameType(obj *scene.Sprite) {
	if e.scene == nil || obj == nil {
		return
	}
	if obj.IsBasic() && obj.Image == "" {
		return
	}
	for _, o := range e.scene.Objects() {
		if o.Type != obj.Type {
			continue
		}
		if obj.IsBasic() && o.Image != obj.Image {
			continue
		}
		e.Select(o)
	}
}

// targets returns the selection, or the hovered object when nothing is
// selected.
func (e *Editor) targets() []*scene.Sprite {
	if len(e.selection) > 0 {
		return e.Selection()
	}
	if e.pointer.hovered != nil {
		return []*scene.Sprite{e.pointer.hovered}
	}
	return nil
}

// Execute runs an editor command. Commands are ignored while the editor
// is disabled. Errors end the command only; the editor stays enabled.
func (e *Editor) Execute(cmd core.Command) error {
	if !e.enabled {
		return nil
	}
	if h, ok := e.funcs.(CommandHandler); ok {
		done, err := h.HandleCommand(cmd)
		if done || err != nil {
			return err
		}
	}

	switch {
	case cmd.IsFastCopy():
		e.FastCopy(cmd.Direction())
		return nil
	case cmd.IsNudge():
		dx, dy := cmd.Direction().Delta()
		for _, o := range e.targets() {
			o.Move(dx, dy)
		}
		return nil
	}

	switch cmd {
	case core.CmdNew:
		e.funcs.New()
	case core.CmdSave:
		e.funcs.Save(e.opts.ConfirmSave)
	case core.CmdSaveAs:
		e.funcs.SaveAs()
	case core.CmdHelp:
		e.ToggleHelp()
	case core.CmdHome:
		e.camera.Reset()
	case core.CmdNextScreen:
		e.camera.Step(1)
	case core.CmdPrevScreen:
		e.camera.Step(-1)
	case core.CmdGotoCamera:
		e.promptCamera()
	case core.CmdToFront:
		e.BringToFront()
	case core.CmdToBack:
		e.SendToBack()
	case core.CmdDeselectAll:
		e.ClearSelection()
	case core.CmdSelectAll:
		e.SelectAll()
	case core.CmdPaste:
		e.Paste()
	case core.CmdCut:
		e.Cut()
	case core.CmdCopy:
		e.Copy()
	case core.CmdReplace:
		e.ReplaceImages()
	case core.CmdDelete:
		e.Delete()
	case core.CmdSnap:
		e.snap = !e.snap
		if e.snap {
			e.env.SetStatus(gotext.Get("Snap to grid on"))
		} else {
			e.env.SetStatus(gotext.Get("Snap to grid off"))
		}
	case core.CmdToggle:
		e.Disable()
	case core.CmdNone, core.CmdEnd, core.CmdCycleMassive:
		// handled by concrete editors, if at all
	default:
		return fmt.Errorf("editor: unsupported command %s", cmd)
	}
	return nil
}

// BringToFront moves the targeted objects on top of the draw order.
func (e *Editor) BringToFront() {
	if e.scene == nil {
		return
	}
	for _, o := range e.targets() {
		e.scene.BringToFront(o)
	}
}

// SendToBack moves the targeted objects to the bottom of the draw order,
// keeping their relative order.
func (e *Editor) SendToBack() {
	if e.scene == nil {
		return
	}
	objs := e.targets()
	for i := len(objs) - 1; i >= 0; i-- {
		e.scene.SendToBack(objs[i])
	}
}

// CopyOffset returns how far a directional copy of objs moves: the
// extent of their bounding box along the direction's axis, so copies sit
// right next to the originals.
func CopyOffset(objs []*scene.Sprite, dir core.Direction) (dx, dy int) {
	ux, uy := dir.Delta()
	if len(objs) == 0 || (ux == 0 && uy == 0) {
		return 0, 0
	}

	bounds := objs[0].Pos
	for _, o := range objs[1:] {
		bounds = bounds.Union(o.Pos)
	}

	offset := bounds.H
	if dir.Horizontal() {
		offset = bounds.W
	}
	if offset <= 0 {
		offset = 1
	}
	return ux * offset, uy * offset
}

// FastCopy duplicates the hovered object, or the whole selection when
// the hovered object is part of it, next to the originals in dir. The
// copies become the selection and the camera follows them.
func (e *Editor) FastCopy(dir core.Direction) []*scene.Sprite {
	hovered := e.pointer.hovered
	if e.scene == nil || hovered == nil {
		return nil
	}

	objs := []*scene.Sprite{hovered}
	if e.IsSelected(hovered) {
		objs = e.Selection()
	}
	dx, dy := CopyOffset(objs, dir)

	copies := make([]*scene.Sprite, 0, len(objs))
	for _, o := range objs {
		c := o.Copy()
		c.Move(dx, dy)
		e.scene.Add(c)
		copies = append(copies, c)
		if o == hovered {
			e.pointer.hovered = c
		}
	}

	e.selection = copies
	e.camera.Move(dx, dy)
	e.pointer.x += dx
	e.pointer.y += dy
	return copies
}

// Copy puts copies of the targeted objects on the clipboard.
func (e *Editor) Copy() int {
	objs := e.targets()
	if len(objs) == 0 {
		return 0
	}
	e.clipboard = e.clipboard[:0]
	for _, o := range objs {
		e.clipboard = append(e.clipboard, o.Copy())
	}
	return len(objs)
}

// Cut copies the targeted objects to the clipboard and deletes them.
func (e *Editor) Cut() int {
	objs := e.targets()
	n := e.Copy()
	for _, o := range objs {
		e.remove(o)
	}
	return n
}

// Paste adds the clipboard contents at the pointer, keeping the objects'
// layout relative to each other. The pasted objects become the selection.
func (e *Editor) Paste() []*scene.Sprite {
	if e.scene == nil || len(e.clipboard) == 0 {
		return nil
	}

	minX, minY := e.clipboard[0].Pos.X, e.clipboard[0].Pos.Y
	for _, o := range e.clipboard[1:] {
		minX = min(minX, o.Pos.X)
		minY = min(minY, o.Pos.Y)
	}
	px, py := e.snapped(e.pointer.x, e.pointer.y)

	pasted := make([]*scene.Sprite, 0, len(e.clipboard))
	for _, o := range e.clipboard {
		c := o.Copy()
		c.SetPos(px+o.Pos.X-minX, py+o.Pos.Y-minY)
		e.scene.Add(c)
		pasted = append(pasted, c)
	}
	e.HideConfigPanel()
	e.selection = pasted
	return pasted
}

// Clipboard returns the number of objects on the clipboard.
func (e *Editor) Clipboard() int {
	return len(e.clipboard)
}

// Delete removes the hovered object, or the selection if nothing is
// hovered.
func (e *Editor) Delete() int {
	if e.pointer.hovered != nil {
		e.remove(e.pointer.hovered)
		return 1
	}
	objs := e.Selection()
	for _, o := range objs {
		e.remove(o)
	}
	return len(objs)
}

func (e *Editor) remove(obj *scene.Sprite) {
	if e.scene != nil {
		e.scene.Remove(obj)
	}
	e.Deselect(obj)
	if e.pointer.hovered == obj {
		e.pointer.hovered = nil
	}
	if e.configObj == obj {
		e.HideConfigPanel()
	}
}

// ReplaceImages asks for an image and shows it on every selected basic
// sprite. An empty answer cancels; an image that cannot be found keeps
// the old one.
func (e *Editor) ReplaceImages() {
	if len(e.selection) == 0 || e.selection[0].Image == "" {
		return
	}
	objs := e.Selection()
	title := gotext.GetN("Change image of %d sprite", "Change image of %d sprites", len(objs), len(objs))

	e.prompt.TextInput(title, gotext.Get("Image"), objs[0].Image, func(text string, ok bool) {
		text = strings.TrimSpace(text)
		if !ok || text == "" {
			return
		}
		image, found := e.newLoader().FindImage(text)
		if !found {
			e.logger.Warn("replacement image not found", "image", text)
			e.env.SetStatus(gotext.Get("Image %s not found", text))
			return
		}
		for _, o := range objs {
			if o.IsBasic() {
				o.Image = image
			}
		}
	})
}

func (e *Editor) promptCamera() {
	initial := fmt.Sprintf("%d %d", e.camera.X, e.camera.Y)
	e.prompt.TextInput(gotext.Get("Go to position"), gotext.Get("X Y"), initial, func(text string, ok bool) {
		if !ok {
			return
		}
		var x, y int
		if _, err := fmt.Sscanf(text, "%d %d", &x, &y); err != nil {
			e.prompt.Message(gotext.Get("Invalid position"))
			return
		}
		e.camera.SetPos(x, y)
	})
}
