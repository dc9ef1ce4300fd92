// Package editor implements the in-game level and world editor core: the
// tag driven item palette, the enable/disable lifecycle with its idle
// fade, object commands and the dispatch of function menu entries to the
// concrete editor.
package editor

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/leonelquinteros/gotext"

	"github.com/vovakirdan/tsc-editor/internal/catalog"
	"github.com/vovakirdan/tsc-editor/internal/scene"
	"github.com/vovakirdan/tsc-editor/internal/tags"
	"github.com/vovakirdan/tsc-editor/internal/widget"
)

var (
	// ErrUnknownMenuEntry is returned when a menu entry name is not in the menu.
	ErrUnknownMenuEntry = errors.New("editor: element not in editor menu list")
	// ErrInvalidFunction is returned for a function entry without a known verb.
	ErrInvalidFunction = errors.New("editor: invalid function menu item")
	// ErrNotInitialized is returned by Enable before Init.
	ErrNotInitialized = errors.New("editor: not initialized")
)

// Widget ids owned by the editor.
const (
	WidgetRoot    widget.ID = "editor_window"
	WidgetMenu    widget.ID = "editor_menu"
	WidgetTabPane widget.ID = "editor_tabpane"
	WidgetConfig  widget.ID = "editor_configpane"
	WidgetHelp    widget.ID = "editor_help"
)

// Panel placement, as fractions of the screen width.
const (
	panelX       = 0.0
	panelHiddenX = -0.19
	configX      = 0.7
	configHidden = 0.99
)

// DefaultFadeTimeout is the idle time in seconds before the panel fades.
const DefaultFadeTimeout = 2.0

// Function verbs recognized on function menu entries, in match order.
var functionVerbs = []string{"new", "load", "save", "save_as", "delete", "reload", "settings"}

// Options configures an Editor.
type Options struct {
	ItemTag      string          // "level" or "world"
	MenuFile     string          // menu manifest
	ItemsFile    string          // special items manifest
	ImagesDir    string          // directory walked for .settings descriptors
	PixmapsDir   string          // root of image idents
	Placeholder  string          // image ident used for missing images
	DisplayScale float64         // palette layout scale
	FadeTimeout  float64         // seconds, DefaultFadeTimeout if zero
	ConfirmSave  bool            // Save hotkey asks before writing
	Factory      catalog.Factory // builds special items
	Cache        *catalog.SettingsCache
	Logger       *log.Logger
}

// Editor is the shared editor core. Concrete editors plug in through
// Functions and, optionally, CommandHandler and ConfigBuilder.
type Editor struct {
	opts   Options
	host   widget.Host
	logger *log.Logger

	funcs  Functions
	prompt Prompter
	env    Environment
	mode   *Mode

	entries     []*MenuEntry
	templates   []*catalog.ItemTemplate
	itemWidgets map[widget.ID]int
	palette     *scene.Scene
	active      *MenuEntry

	initialized bool
	enabled     bool
	scene       *scene.Scene

	mouseInside bool
	rested      bool
	fadeTimer   float64

	pointer   pointerState
	selection []*scene.Sprite
	clipboard []*scene.Sprite
	snap      bool
	camera    Camera

	helpVisible bool

	configObj *scene.Sprite
	config    []widget.ID
	configY   float64
}

// New creates an editor drawing into host. Collaborators default to
// no-ops until set.
func New(host widget.Host, opts Options) *Editor {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.DisplayScale <= 0 {
		opts.DisplayScale = 1
	}
	if opts.FadeTimeout <= 0 {
		opts.FadeTimeout = DefaultFadeTimeout
	}
	if opts.Placeholder == "" {
		opts.Placeholder = catalog.DefaultPlaceholder
	}
	return &Editor{
		opts:        opts,
		host:        host,
		logger:      opts.Logger,
		funcs:       NopFunctions{},
		prompt:      NopPrompter{},
		env:         NopEnvironment{},
		mode:        &Mode{},
		itemWidgets: make(map[widget.ID]int),
		palette:     scene.New(),
	}
}

// SetFunctions installs the concrete editor's hooks.
func (e *Editor) SetFunctions(f Functions) {
	if f == nil {
		f = NopFunctions{}
	}
	e.funcs = f
}

// SetPrompter installs the dialog collaborator.
func (e *Editor) SetPrompter(p Prompter) {
	if p == nil {
		p = NopPrompter{}
	}
	e.prompt = p
}

// SetEnvironment installs the game environment collaborator.
func (e *Editor) SetEnvironment(env Environment) {
	if env == nil {
		env = NopEnvironment{}
	}
	e.env = env
}

// SetMode shares a mode context with other editors and systems.
func (e *Editor) SetMode(m *Mode) {
	if m != nil {
		e.mode = m
	}
}

func (e *Editor) Mode() *Mode             { return e.mode }
func (e *Editor) Prompter() Prompter      { return e.prompt }
func (e *Editor) Host() widget.Host       { return e.host }
func (e *Editor) Logger() *log.Logger     { return e.logger }
func (e *Editor) ItemTag() string         { return e.opts.ItemTag }
func (e *Editor) Enabled() bool           { return e.enabled }
func (e *Editor) Initialized() bool       { return e.initialized }
func (e *Editor) Scene() *scene.Scene     { return e.scene }
func (e *Editor) Palette() *scene.Scene   { return e.palette }
func (e *Editor) Camera() *Camera         { return &e.camera }
func (e *Editor) ActiveEntry() *MenuEntry { return e.active }

// Entries returns the menu entries in manifest order.
func (e *Editor) Entries() []*MenuEntry {
	return slices.Clone(e.entries)
}

// Templates returns the loaded item templates.
func (e *Editor) Templates() []*catalog.ItemTemplate {
	return slices.Clone(e.templates)
}

// Init builds the editor window, parses the menu manifest and fills the
// palette. On error everything built so far is torn down again.
func (e *Editor) Init() error {
	if e.initialized {
		return nil
	}
	if err := e.init(); err != nil {
		e.teardown()
		return err
	}
	e.initialized = true
	e.logger.Info("editor initialized", "tag", e.opts.ItemTag, "entries", len(e.entries), "items", len(e.templates))
	return nil
}

func (e *Editor) init() error {
	if err := e.buildWindow(); err != nil {
		return err
	}

	defs, err := LoadMenu(e.opts.MenuFile)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		e.entries = append(e.entries, NewMenuEntry(e.host, def, e.opts.DisplayScale))
		names = append(names, def.Name)
	}
	e.host.SetItems(WidgetMenu, names)

	// Both sources are loaded before any item is placed so a failing
	// manifest leaves every entry empty.
	items, err := e.loadItems()
	if err != nil {
		return err
	}
	for _, item := range items {
		if _, err := e.tryAddItem(item); err != nil {
			return err
		}
	}

	e.host.Subscribe(WidgetRoot, widget.EventHoverEnter, func(widget.Event) { e.MouseEnter() })
	e.host.Subscribe(WidgetRoot, widget.EventHoverLeave, func(widget.Event) { e.MouseLeave() })
	e.host.Subscribe(WidgetMenu, widget.EventSelectionChanged, e.onMenuSelection)
	return nil
}

func (e *Editor) buildWindow() error {
	steps := []struct {
		id     widget.ID
		kind   widget.Kind
		parent widget.ID
	}{
		{WidgetRoot, widget.KindPanel, ""},
		{WidgetMenu, widget.KindList, WidgetRoot},
		{WidgetTabPane, widget.KindPanel, WidgetRoot},
		{WidgetConfig, widget.KindPanel, ""},
	}
	for _, s := range steps {
		if err := e.host.Create(s.id, s.kind, s.parent); err != nil {
			return fmt.Errorf("editor: build window: %w", err)
		}
	}
	e.host.SetVisible(WidgetRoot, false)
	e.host.SetPosition(WidgetRoot, panelX, 0)
	e.host.SetVisible(WidgetConfig, false)
	e.host.SetPosition(WidgetConfig, configHidden, 0)
	return nil
}

func (e *Editor) newLoader() *catalog.Loader {
	loader := catalog.NewLoader(e.opts.PixmapsDir, e.opts.ItemTag, e.logger)
	loader.Placeholder = e.opts.Placeholder
	loader.Cache = e.opts.Cache
	return loader
}

func (e *Editor) loadItems() ([]*catalog.ItemTemplate, error) {
	loader := e.newLoader()

	var items []*catalog.ItemTemplate
	if e.opts.ImagesDir != "" {
		images, err := loader.LoadImageItems(e.opts.ImagesDir)
		if err != nil {
			return nil, fmt.Errorf("editor: load image items: %w", err)
		}
		items = append(items, images...)
	}
	if e.opts.ItemsFile != "" && e.opts.Factory != nil {
		special, err := loader.LoadManifestItems(e.opts.ItemsFile, e.opts.Factory)
		if err != nil {
			return nil, err
		}
		items = append(items, special...)
	}
	return items, nil
}

// tryAddItem stores item in the palette and lists it under every entry
// whose required tags it carries. Items without this editor's master tag
// are skipped and reported as not added.
func (e *Editor) tryAddItem(item *catalog.ItemTemplate) (bool, error) {
	if item.MasterTag != e.opts.ItemTag {
		return false, nil
	}

	idx := len(e.templates)
	e.templates = append(e.templates, item)
	e.palette.Add(item.Object)

	for _, entry := range e.targetEntries(item) {
		id, err := entry.AddItem(item)
		if err != nil {
			return false, err
		}
		e.itemWidgets[id] = idx
		e.host.Subscribe(id, widget.EventClicked, e.onItemClicked)
	}
	return true, nil
}

// targetEntries returns the item entries whose required tags are all
// carried by item. Header and function entries never hold items.
func (e *Editor) targetEntries(item *catalog.ItemTemplate) []*MenuEntry {
	var out []*MenuEntry
	for _, entry := range e.entries {
		if entry.header || entry.function {
			continue
		}
		if tags.HasAll(entry.tags, item.TagSet()) {
			out = append(out, entry)
		}
	}
	return out
}

// Unload disables the editor and destroys the window, menu and palette.
func (e *Editor) Unload() {
	if !e.initialized {
		return
	}
	e.Disable()
	e.teardown()
	e.initialized = false
	e.logger.Debug("editor unloaded", "tag", e.opts.ItemTag)
}

func (e *Editor) teardown() {
	for _, entry := range e.entries {
		entry.destroy()
	}
	e.HideConfigPanel()
	e.host.Destroy(WidgetHelp)
	e.host.Destroy(WidgetConfig)
	e.host.Destroy(WidgetRoot)

	e.entries = nil
	e.templates = nil
	e.active = nil
	e.helpVisible = false
	clear(e.itemWidgets)
	e.palette.Clear()
}

// Enable opens the editor on sc. It does nothing if already enabled.
func (e *Editor) Enable(sc *scene.Scene) error {
	if !e.initialized {
		return ErrNotInitialized
	}
	if e.enabled {
		return nil
	}

	e.env.PlaySound("editor/enter.ogg")
	e.env.SetStatus(gotext.Get("Editor enabled"))
	e.env.StopAmbient()

	e.mouseInside = false
	e.rested = false
	e.fadeTimer = 0
	e.host.SetPosition(WidgetRoot, panelX, 0)
	e.host.SetAlpha(WidgetRoot, 1)
	e.host.SetVisible(WidgetRoot, true)

	e.scene = sc
	e.enabled = true
	e.mode.Set(e.opts.ItemTag, true)
	e.logger.Debug("editor enabled", "tag", e.opts.ItemTag)
	return nil
}

// Disable closes the editor. Config widgets are destroyed before it
// returns. It does nothing if already disabled.
func (e *Editor) Disable() {
	if !e.enabled {
		return
	}

	e.env.PlaySound("editor/leave.ogg")
	e.resetPointer()
	e.HideConfigPanel()
	e.hideHelp()
	e.host.SetVisible(WidgetRoot, false)

	e.scene = nil
	e.enabled = false
	e.mode.Set(e.opts.ItemTag, false)
	e.logger.Debug("editor disabled", "tag", e.opts.ItemTag)
}

// Toggle enables the editor on sc or disables it.
func (e *Editor) Toggle(sc *scene.Scene) error {
	if e.enabled {
		e.Disable()
		return nil
	}
	return e.Enable(sc)
}

// Update advances the idle fade by dt seconds. It must be called once
// per tick.
func (e *Editor) Update(dt float64) {
	if !e.enabled || e.mouseInside || e.rested {
		return
	}

	if e.fadeTimer >= e.opts.FadeTimeout {
		e.host.SetPosition(WidgetRoot, panelHiddenX, 0)
		e.host.SetAlpha(WidgetRoot, 1)
		e.rested = true
		e.fadeTimer = 0
		return
	}

	e.fadeTimer += dt
	e.host.SetAlpha(WidgetRoot, 1-e.fadeTimer/e.opts.FadeTimeout)
}

// MouseEnter is called when the pointer enters the editor window.
func (e *Editor) MouseEnter() {
	e.mouseInside = true
	e.fadeTimer = 0
	e.rested = false
	e.host.SetAlpha(WidgetRoot, 1)
	e.host.SetPosition(WidgetRoot, panelX, 0)
}

// MouseLeave is called when the pointer leaves the editor window.
func (e *Editor) MouseLeave() {
	e.mouseInside = false
}

// hidePanel moves the window out of sight at once.
func (e *Editor) hidePanel() {
	e.mouseInside = false
	e.rested = true
	e.fadeTimer = 0
	e.host.SetAlpha(WidgetRoot, 1)
	e.host.SetPosition(WidgetRoot, panelHiddenX, 0)
}

// MenuEntry looks up an entry by name.
func (e *Editor) MenuEntry(name string) (*MenuEntry, error) {
	for _, entry := range e.entries {
		if entry.name == name {
			return entry, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMenuEntry, name)
}

// SelectMenuEntry behaves as if name was picked in the category list:
// headers do nothing, function entries dispatch and item entries show
// their panel.
func (e *Editor) SelectMenuEntry(name string) error {
	entry, err := e.MenuEntry(name)
	if err != nil {
		return err
	}
	return e.activateEntry(entry)
}

func (e *Editor) onMenuSelection(ev widget.Event) {
	if ev.Index < 0 || ev.Index >= len(e.entries) {
		return
	}
	if err := e.activateEntry(e.entries[ev.Index]); err != nil {
		e.report(err)
	}
}

func (e *Editor) activateEntry(entry *MenuEntry) error {
	switch {
	case entry.header:
		return nil
	case entry.function:
		return e.dispatchFunction(entry)
	}
	if err := entry.Activate(WidgetTabPane); err != nil {
		return err
	}
	e.active = entry
	return nil
}

func (e *Editor) dispatchFunction(entry *MenuEntry) error {
	for _, verb := range functionVerbs {
		if !tags.Contains(entry.tags, verb) {
			continue
		}
		e.logger.Debug("editor function", "entry", entry.name, "verb", verb)
		switch verb {
		case "new":
			e.funcs.New()
		case "load":
			e.funcs.Load()
		case "save":
			e.funcs.Save(false)
		case "save_as":
			e.funcs.SaveAs()
		case "delete":
			e.funcs.Delete()
		case "reload":
			e.funcs.Reload()
		case "settings":
			e.funcs.Settings()
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidFunction, entry.name)
}

func (e *Editor) onItemClicked(ev widget.Event) {
	idx, ok := e.itemWidgets[ev.Widget]
	if !ok {
		return
	}
	e.PlaceItem(e.templates[idx])
}

// PlaceItem copies item's object to the pointer position and makes the
// copy the hovered object.
func (e *Editor) PlaceItem(item *catalog.ItemTemplate) *scene.Sprite {
	if !e.enabled || e.scene == nil {
		return nil
	}
	obj := item.Instantiate()
	x, y := e.snapped(e.pointer.x, e.pointer.y)
	obj.SetPos(x, y)
	e.scene.Add(obj)
	e.pointer.hovered = obj
	e.hidePanel()
	return obj
}

// Status shows text on the game's status line.
func (e *Editor) Status(text string) {
	e.env.SetStatus(text)
}

// report logs an error raised inside an event handler and shows it on
// the status line; the editor stays usable.
func (e *Editor) report(err error) {
	e.logger.Error("editor command failed", "err", err)
	e.env.SetStatus(err.Error())
}
