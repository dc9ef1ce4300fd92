package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/leonelquinteros/gotext"

	"github.com/vovakirdan/tsc-editor/internal/catalog"
	"github.com/vovakirdan/tsc-editor/internal/config"
	"github.com/vovakirdan/tsc-editor/internal/core"
	"github.com/vovakirdan/tsc-editor/internal/editor"
	"github.com/vovakirdan/tsc-editor/internal/editor/level"
	"github.com/vovakirdan/tsc-editor/internal/editor/world"
	"github.com/vovakirdan/tsc-editor/internal/registry"
	"github.com/vovakirdan/tsc-editor/internal/scene"
	"github.com/vovakirdan/tsc-editor/internal/storage"
	"github.com/vovakirdan/tsc-editor/internal/widget"
)

// Workspace owns both editors and the open document. It plays the part of
// the game: it applies the mode transitions the editors queue, loading
// and creating levels and worlds through storage.
type Workspace struct {
	cfg    config.EditorConfig
	store  *storage.Store
	logger *log.Logger

	mode    *editor.Mode
	actions *editor.ActionList
	dialogs *Dialogs
	status  *StatusLine

	levelTree *widget.Tree
	worldTree *widget.Tree
	level     *level.Editor
	world     *world.Editor

	kind  storage.Kind
	scene *scene.Scene
}

// NewWorkspace builds and initialises the level and world editors.
func NewWorkspace(cfg config.EditorConfig, store *storage.Store, logger *log.Logger) (*Workspace, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w := &Workspace{
		cfg:       cfg,
		store:     store,
		logger:    logger,
		mode:      &editor.Mode{},
		actions:   &editor.ActionList{},
		dialogs:   NewDialogs(),
		status:    NewStatusLine(logger),
		levelTree: widget.NewTree(),
		worldTree: widget.NewTree(),
	}

	cache := catalog.NewSettingsCache(cfg.ImageCacheSize)
	pixmaps := cfg.Resolve(cfg.PixmapsDir)
	images := pixmaps
	if _, err := os.Stat(images); err != nil {
		logger.Warn("pixmaps directory missing, image items disabled", "dir", images)
		images = ""
	}

	opts := func(menu, items string) editor.Options {
		return editor.Options{
			MenuFile:     cfg.Resolve(menu),
			ItemsFile:    cfg.Resolve(items),
			ImagesDir:    images,
			PixmapsDir:   pixmaps,
			Placeholder:  cfg.PlaceholderImage,
			DisplayScale: cfg.DisplayScale,
			FadeTimeout:  cfg.FadeTimeout(),
			ConfirmSave:  cfg.ConfirmSave,
			Factory:      registry.Create,
			Cache:        cache,
			Logger:       logger.WithPrefix("level"),
		}
	}

	levelOpts := opts(cfg.LevelMenu, cfg.LevelItems)
	worldOpts := opts(cfg.WorldMenu, cfg.WorldItems)
	worldOpts.Logger = logger.WithPrefix("world")

	w.level = level.New(w.levelTree, levelOpts, store.Levels(), w.actions)
	w.world = world.New(w.worldTree, worldOpts, store.Worlds(), w.actions)

	for _, ed := range []*editor.Editor{w.level.Editor, w.world.Editor} {
		ed.SetPrompter(w.dialogs)
		ed.SetEnvironment(w.status)
		ed.SetMode(w.mode)
		if err := ed.Init(); err != nil {
			w.Close()
			return nil, fmt.Errorf("tui: init %s editor: %w", ed.ItemTag(), err)
		}
	}
	return w, nil
}

// Close unloads both editors.
func (w *Workspace) Close() {
	w.closeDocument()
	w.level.Unload()
	w.world.Unload()
}

// Core returns the editor of the open document, or nil.
func (w *Workspace) Core() *editor.Editor {
	switch w.kind {
	case storage.KindLevel:
		return w.level.Editor
	case storage.KindWorld:
		return w.world.Editor
	}
	return nil
}

// Tree returns the widget tree of the open document's editor.
func (w *Workspace) Tree() *widget.Tree {
	if w.kind == storage.KindWorld {
		return w.worldTree
	}
	return w.levelTree
}

// Kind returns the kind of the open document, or "" when none is open.
func (w *Workspace) Kind() storage.Kind { return w.kind }

// Scene returns the open document's objects.
func (w *Workspace) Scene() *scene.Scene { return w.scene }

// Mode returns the shared editor mode.
func (w *Workspace) Mode() *editor.Mode { return w.mode }

// Dialogs returns the prompt queue shared by both editors.
func (w *Workspace) Dialogs() *Dialogs { return w.dialogs }

// Status returns the status line shared by both editors.
func (w *Workspace) Status() *StatusLine { return w.status }

// Document returns the open document.
func (w *Workspace) Document() editor.Document {
	switch w.kind {
	case storage.KindLevel:
		return w.level.Document()
	case storage.KindWorld:
		return w.world.Document()
	}
	return editor.Document{}
}

// Open loads an existing document, or creates it when create is set, and
// enables the matching editor on it.
func (w *Workspace) Open(kind storage.Kind, name string, create bool) error {
	if kind != storage.KindLevel && kind != storage.KindWorld {
		return fmt.Errorf("tui: open: unknown kind %q", kind)
	}
	if name == "" {
		return fmt.Errorf("tui: open %s: %w", kind, storage.ErrBadName)
	}

	var objs []*scene.Sprite
	if create {
		if err := w.store.Create(kind, name); err != nil {
			return err
		}
	} else {
		loaded, err := w.store.Load(kind, name)
		if err != nil {
			return err
		}
		objs = loaded
	}

	w.closeDocument()

	sc := scene.New()
	sc.Add(objs...)
	w.scene = sc
	w.kind = kind

	doc := editor.Document{Name: name, Saved: true}
	if kind == storage.KindLevel {
		w.level.Open(doc)
	} else {
		w.world.Open(doc)
	}

	if err := w.Core().Enable(sc); err != nil {
		return err
	}
	w.logger.Info("document opened", "kind", kind, "name", name, "objects", sc.Len())
	return nil
}

func (w *Workspace) closeDocument() {
	if c := w.Core(); c != nil {
		c.Disable()
	}
	w.kind = ""
	w.scene = nil
}

// Execute runs cmd on the open document's editor. The toggle command is
// handled here, since a disabled editor ignores every command.
func (w *Workspace) Execute(cmd core.Command) error {
	c := w.Core()
	if c == nil {
		return nil
	}
	if cmd == core.CmdToggle {
		return c.Toggle(w.scene)
	}
	return c.Execute(cmd)
}

// Tick advances the open editor by dt seconds.
func (w *Workspace) Tick(dt float64) {
	if c := w.Core(); c != nil {
		c.Update(dt)
	}
}

// Apply drains the action queue. It reports whether an editor asked to
// return to the menu.
func (w *Workspace) Apply() (toMenu bool) {
	for _, a := range w.actions.Drain() {
		if err := w.apply(a, &toMenu); err != nil {
			w.logger.Error("action failed", "action", a.Kind, "err", err)
			w.dialogs.Message(fmt.Sprintf("%s: %v", gotext.Get("Error"), err))
		}
	}
	return toMenu
}

func (w *Workspace) apply(a core.GameAction, toMenu *bool) error {
	w.logger.Debug("game action", "kind", a.Kind, "data", a.Data)

	switch a.Kind {
	case core.ActionEnterLevel:
		if name := a.Data["new_level"]; name != "" {
			return w.Open(storage.KindLevel, name, true)
		}
		if name := a.Data["load_level"]; name != "" {
			return w.Open(storage.KindLevel, name, false)
		}

	case core.ActionEnterWorld:
		if name := a.Data["new_world"]; name != "" {
			return w.Open(storage.KindWorld, name, true)
		}
		if name := a.Data["load_world"]; name != "" {
			return w.Open(storage.KindWorld, name, false)
		}

	case core.ActionEnterMenu:
		w.closeDocument()
		*toMenu = true

	case core.ActionEnterLevelSettings:
		w.status.SetStatus(gotext.Get("Level settings are edited in the game"))

	default:
		return errors.New("tui: unknown game action")
	}
	return nil
}

// Camera sizes the editor camera to a terminal of cols x rows cells.
func (w *Workspace) Camera(cols, rows int) {
	for _, c := range []*editor.Editor{w.level.Editor, w.world.Editor} {
		cam := c.Camera()
		cam.W = cols * cellW
		cam.H = rows * cellH
	}
}
