// Package world is the overworld editor: the editor core wired to world
// persistence, plus the waypoint config panel for editing exits.
package world

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"github.com/vovakirdan/tsc-editor/internal/core"
	"github.com/vovakirdan/tsc-editor/internal/editor"
	"github.com/vovakirdan/tsc-editor/internal/widget"
)

// Editor edits the active world.
type Editor struct {
	*editor.Editor

	store   editor.Store
	actions editor.ActionQueue
	doc     editor.Document

	panel *waypointPanel
}

// New creates a world editor. opts.ItemTag is forced to "world".
func New(host widget.Host, opts editor.Options, store editor.Store, actions editor.ActionQueue) *Editor {
	opts.ItemTag = editor.TagWorld
	e := &Editor{
		Editor:  editor.New(host, opts),
		store:   store,
		actions: actions,
	}
	e.SetFunctions(hooks{e: e})
	return e
}

// Open tells the editor which world its scene belongs to.
func (e *Editor) Open(doc editor.Document) {
	e.doc = doc
}

// Document returns the open world.
func (e *Editor) Document() editor.Document {
	return e.doc
}

type hooks struct {
	editor.NopFunctions
	e *Editor
}

func (h hooks) New() bool {
	e := h.e
	e.Prompter().TextInput(gotext.Get("Create a new World"), gotext.Get("Name"), "", func(name string, ok bool) {
		if !ok || name == "" {
			return
		}
		exists, err := e.store.Exists(name)
		if err != nil {
			e.fail(err)
			return
		}
		if exists {
			e.Prompter().Message(gotext.Get("World %s already exists", name))
			return
		}
		e.actions.Push(core.NewGameAction(core.ActionEnterWorld, "new_world", name))
	})
	return true
}

func (h hooks) Load() bool {
	h.e.promptLoad("")
	return true
}

func (e *Editor) promptLoad(initial string) {
	e.Prompter().TextInput(gotext.Get("Load a World"), gotext.Get("Name"), initial, func(name string, ok bool) {
		if !ok || name == "" {
			return
		}
		exists, err := e.store.Exists(name)
		if err != nil {
			e.fail(err)
			return
		}
		if !exists {
			e.Status(gotext.Get("Couldn't load world %s", name))
			e.promptLoad(name)
			return
		}
		e.actions.Push(core.NewGameAction(core.ActionEnterWorld, "load_world", name))
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
	e.Prompter().TextInput(gotext.Get("Save World as"), gotext.Get("Name"), e.doc.Name, func(name string, ok bool) {
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
	e.Status(gotext.Get("World %s saved", name))
	e.Logger().Info("world saved", "name", name, "objects", sc.Len())
}

func (h hooks) Delete() bool {
	e := h.e
	if !e.doc.Saved {
		e.Prompter().Message(gotext.Get("World was not yet saved"))
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
	})
	return true
}

// Reload throws away unsaved changes by loading the world again.
func (h hooks) Reload() bool {
	e := h.e
	if !e.doc.Saved {
		return false
	}
	name := e.doc.Name
	e.Prompter().YesNo(gotext.Get("Reload World ?"), func(yes bool) {
		if yes {
			e.actions.Push(core.NewGameAction(core.ActionEnterWorld, "load_world", name, "reload", "1"))
		}
	})
	return true
}

func (e *Editor) fail(err error) {
	e.Logger().Error("world editor", "err", err)
	e.Prompter().Message(fmt.Sprintf("%s: %v", gotext.Get("Error"), err))
}
