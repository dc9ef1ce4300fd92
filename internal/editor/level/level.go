// Package level is the level editor: the editor core wired to level
// persistence, plus the massive type cycling and exit focus commands
// only levels have.
package level

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"github.com/vovakirdan/tsc-editor/internal/core"
	"github.com/vovakirdan/tsc-editor/internal/editor"
	"github.com/vovakirdan/tsc-editor/internal/scene"
	"github.com/vovakirdan/tsc-editor/internal/widget"
)

// Editor edits the active level.
type Editor struct {
	*editor.Editor

	store   editor.Store
	actions editor.ActionQueue
	doc     editor.Document
}

// New creates a level editor. opts.ItemTag is forced to "level".
func New(host widget.Host, opts editor.Options, store editor.Store, actions editor.ActionQueue) *Editor {
	opts.ItemTag = editor.TagLevel
	e := &Editor{
		Editor:  editor.New(host, opts),
		store:   store,
		actions: actions,
	}
	e.SetFunctions(hooks{e})
	return e
}

// Open tells the editor which level its scene belongs to.
func (e *Editor) Open(doc editor.Document) {
	e.doc = doc
}

// Document returns the open level.
func (e *Editor) Document() editor.Document {
	return e.doc
}

// hooks implements the editor function and command hooks. It is a
// separate type so the level functions do not shadow the object commands
// of the embedded core.
type hooks struct{ e *Editor }

func (h hooks) New() bool {
	e := h.e
	e.Prompter().TextInput(gotext.Get("Create a new Level"), gotext.Get("Name"), "", func(name string, ok bool) {
		if !ok || name == "" {
			return
		}
		exists, err := e.store.Exists(name)
		if err != nil {
			e.fail(err)
			return
		}
		if exists {
			e.Prompter().Message(gotext.Get("Level %s already exists", name))
			return
		}
		e.actions.Push(core.NewGameAction(core.ActionEnterLevel, "new_level", name))
	})
	return true
}

func (h hooks) Load() bool {
	h.e.promptLoad("")
	return true
}

// promptLoad asks for a level name until an existing one is given or the
// dialog is cancelled.
func (e *Editor) promptLoad(initial string) {
	e.Prompter().TextInput(gotext.Get("Load a Level"), gotext.Get("Name"), initial, func(name string, ok bool) {
		if !ok || name == "" {
			return
		}
		exists, err := e.store.Exists(name)
		if err != nil {
			e.fail(err)
			return
		}
		if !exists {
			e.Status(gotext.Get("Couldn't load level %s", name))
			e.promptLoad(name)
			return
		}
		e.actions.Push(core.NewGameAction(core.ActionEnterLevel, "load_level", name, "reset_save", "1"))
	})
}

func (h hooks) Save(withConfirm bool) {
	e := h.e
	if e.doc.Name == "" {
		h.SaveAs()
		return
	}
	if !withConfirm {
		e.save(e.doc.Name)
		return
	}
	e.Prompter().YesNo(gotext.Get("Save %s ?", e.doc.Name), func(yes bool) {
		if yes {
			e.save(e.doc.Name)
		}
	})
}

func (h hooks) SaveAs() {
	e := h.e
	e.Prompter().TextInput(gotext.Get("Save Level as"), gotext.Get("Name"), e.doc.Name, func(name string, ok bool) {
		if ok && name != "" {
			e.save(name)
		}
	})
}

func (e *Editor) save(name string) {
	sc := e.Scene()
	if sc == nil {
		return
	}
	if err := e.store.Save(name, sc.Objects()); err != nil {
		e.fail(err)
		return
	}
	e.doc = editor.Document{Name: name, Saved: true}
	e.Status(gotext.Get("Level %s saved", name))
	e.Logger().Info("level saved", "name", name, "objects", sc.Len())
}

func (h hooks) Delete() bool {
	e := h.e
	if !e.doc.Saved {
		e.Prompter().Message(gotext.Get("Level was not yet saved"))
		return false
	}
	name := e.doc.Name
	e.Prompter().YesNo(gotext.Get("Delete and Unload %s ?", name), func(yes bool) {
		if !yes {
			return
		}
		if err := e.store.Delete(name); err != nil {
			e.fail(err)
			return
		}
		e.doc = editor.Document{}
		e.Disable()
		e.actions.Push(core.NewGameAction(core.ActionEnterMenu))
		e.Logger().Info("level deleted", "name", name)
	})
	return true
}

func (h hooks) Reload() bool {
	e := h.e
	if e.doc.Name == "" {
		return false
	}
	name := e.doc.Name
	e.Prompter().YesNo(gotext.Get("Reload Level ?"), func(yes bool) {
		if yes {
			e.actions.Push(core.NewGameAction(core.ActionEnterLevel, "unload_levels", "1", "load_level", name))
		}
	})
	return true
}

func (h hooks) Settings() {
	h.e.actions.Push(core.NewGameAction(core.ActionEnterLevelSettings))
}

// HandleCommand implements editor.CommandHandler.
func (h hooks) HandleCommand(cmd core.Command) (bool, error) {
	switch cmd {
	case core.CmdCycleMassive:
		h.e.CycleMassive()
		return true, nil
	case core.CmdEnd:
		h.e.FocusLastExit()
		return true, nil
	}
	return false, nil
}

func (e *Editor) fail(err error) {
	e.Logger().Error("level editor", "err", err)
	e.Prompter().Message(fmt.Sprintf("%s: %v", gotext.Get("Error"), err))
}

// CycleMassive advances the hovered object, or the first selected one,
// to the next massive type and gives every other selected object that
// same type. It reports the applied type.
func (e *Editor) CycleMassive() (core.MassiveType, bool) {
	primary := e.Hovered()
	selection := e.Selection()
	if primary == nil && len(selection) > 0 {
		primary = selection[0]
	}
	return Cycle(primary, selection)
}

// Cycle moves primary to the next massive type and forces the result on
// others. Lava and objects outside the cycle are left alone.
func Cycle(primary *scene.Sprite, others []*scene.Sprite) (core.MassiveType, bool) {
	if primary == nil || primary.Array == scene.ArrayLava {
		return core.MassInvalid, false
	}
	next, ok := primary.Massive.Next()
	if !ok {
		return core.MassInvalid, false
	}

	primary.SetMassive(next)
	for _, o := range others {
		if o == primary || o.Array == scene.ArrayLava {
			continue
		}
		if _, ok := o.Massive.Next(); !ok {
			continue
		}
		o.SetMassive(next)
	}
	return next, true
}

// FocusLastExit centers the camera on the rightmost level exit.
func (e *Editor) FocusLastExit() *scene.Sprite {
	sc := e.Scene()
	if sc == nil {
		return nil
	}

	var last *scene.Sprite
	for _, o := range sc.Filter(func(o *scene.Sprite) bool { return o.Type == scene.TypeLevelExit }) {
		if last == nil || o.Pos.X > last.Pos.X {
			last = o
		}
	}
	if last == nil {
		return nil
	}

	cam := e.Camera()
	cx, cy := last.Pos.Center()
	cam.SetPos(cx-cam.W/2, cy-cam.H/2)
	return last
}
