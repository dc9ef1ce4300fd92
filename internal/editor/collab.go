package editor

import (
	"github.com/vovakirdan/tsc-editor/internal/core"
	"github.com/vovakirdan/tsc-editor/internal/scene"
)

// Functions is the set of persistence hooks a concrete editor supplies.
// Function menu entries and the New/Save/Save As hotkeys dispatch here.
type Functions interface {
	New() bool
	Load() bool
	Save(withConfirm bool)
	SaveAs()
	Delete() bool
	Reload() bool
	Settings()
}

// NopFunctions implements Functions with no-ops. Embed it to override a
// subset of the hooks.
type NopFunctions struct{}

func (NopFunctions) New() bool    { return false }
func (NopFunctions) Load() bool   { return false }
func (NopFunctions) Save(bool)    {}
func (NopFunctions) SaveAs()      {}
func (NopFunctions) Delete() bool { return false }
func (NopFunctions) Reload() bool { return false }
func (NopFunctions) Settings()    {}

// CommandHandler is implemented by concrete editors that own extra
// commands. HandleCommand reports whether it consumed cmd.
type CommandHandler interface {
	HandleCommand(cmd core.Command) (bool, error)
}

// ConfigBuilder is implemented by concrete editors that add their own
// widgets to the object config panel. It reports whether it handled obj;
// unhandled objects get the generic registry fields.
type ConfigBuilder interface {
	BuildConfig(obj *scene.Sprite) bool
}

// Prompter shows modal dialogs. Answers arrive through the callbacks,
// possibly after the call returns; ok is false when the user cancelled.
type Prompter interface {
	TextInput(title, label, initial string, fn func(text string, ok bool))
	YesNo(question string, fn func(yes bool))
	Message(text string)
}

// NopPrompter cancels every dialog.
type NopPrompter struct{}

func (NopPrompter) TextInput(_, _, _ string, fn func(string, bool)) { fn("", false) }
func (NopPrompter) YesNo(_ string, fn func(bool))                   { fn(false) }
func (NopPrompter) Message(string)                                  {}

// Environment is the rest of the game the editor pokes when it opens and
// closes: ambient effects, sounds and the status line.
type Environment interface {
	StopAmbient()
	PlaySound(ident string)
	SetStatus(text string)
}

// NopEnvironment ignores everything.
type NopEnvironment struct{}

func (NopEnvironment) StopAmbient()     {}
func (NopEnvironment) PlaySound(string) {}
func (NopEnvironment) SetStatus(string) {}

// ActionQueue receives mode transitions requested by the editors.
type ActionQueue interface {
	Push(a core.GameAction)
}

// ActionList is an ActionQueue backed by a slice.
type ActionList struct {
	Actions []core.GameAction
}

// Push implements ActionQueue.
func (l *ActionList) Push(a core.GameAction) {
	l.Actions = append(l.Actions, a)
}

// Drain returns the queued actions and empties the list.
func (l *ActionList) Drain() []core.GameAction {
	out := l.Actions
	l.Actions = nil
	return out
}

// Store persists the documents, levels or worlds, an editor works on.
type Store interface {
	Exists(name string) (bool, error)
	Save(name string, objs []*scene.Sprite) error
	Delete(name string) error
}

// Document is the level or world currently open in an editor.
type Document struct {
	Name  string
	Saved bool // a copy exists in the store
}
