package core

// GameActionKind names a mode transition requested by an editor.
type GameActionKind int

const (
	ActionNone GameActionKind = iota
	ActionEnterLevel
	ActionEnterWorld
	ActionEnterMenu
	ActionEnterLevelSettings
)

// String returns a human-readable name for the action kind.
func (k GameActionKind) String() string {
	switch k {
	case ActionEnterLevel:
		return "EnterLevel"
	case ActionEnterWorld:
		return "EnterWorld"
	case ActionEnterMenu:
		return "EnterMenu"
	case ActionEnterLevelSettings:
		return "EnterLevelSettings"
	default:
		return "None"
	}
}

// GameAction is a queued mode transition with its flat parameters
// (for example "load_level" or "new_level" naming the target).
type GameAction struct {
	Kind GameActionKind
	Data map[string]string
}

// NewGameAction builds an action from alternating key/value strings.
func NewGameAction(kind GameActionKind, kv ...string) GameAction {
	a := GameAction{Kind: kind, Data: make(map[string]string, len(kv)/2)}
	for i := 0; i+1 < len(kv); i += 2 {
		a.Data[kv[i]] = kv[i+1]
	}
	return a
}
