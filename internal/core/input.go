package core

// Command is a semantic editor command, abstracted from physical key presses.
// The platform layer maps keys to commands; the editor never sees raw keys.
type Command int

const (
	CmdNone Command = iota
	CmdNew          // Ctrl+N
	CmdSave         // Ctrl+S
	CmdSaveAs       // Ctrl+Shift+S
	CmdHelp         // F1
	CmdHome         // focus level start
	CmdEnd          // focus last level exit
	CmdNextScreen   // N
	CmdPrevScreen   // P
	CmdGotoCamera   // Ctrl+G
	CmdToFront      // numpad +
	CmdToBack       // numpad -
	CmdFastCopyUp
	CmdFastCopyDown
	CmdFastCopyLeft
	CmdFastCopyRight
	CmdMoveUp // pixel nudge
	CmdMoveDown
	CmdMoveLeft
	CmdMoveRight
	CmdDeselectAll // Ctrl+Shift+A
	CmdSelectAll   // Ctrl+A
	CmdPaste       // Ctrl+V, Insert
	CmdCut         // Ctrl+X
	CmdCopy        // Ctrl+C
	CmdReplace     // Ctrl+R
	CmdDelete      // Del
	CmdSnap        // O
	CmdCycleMassive
	CmdToggle // F8, open/close the editor
)

var commandNames = map[Command]string{
	CmdNone:          "None",
	CmdNew:           "New",
	CmdSave:          "Save",
	CmdSaveAs:        "SaveAs",
	CmdHelp:          "Help",
	CmdHome:          "Home",
	CmdEnd:           "End",
	CmdNextScreen:    "NextScreen",
	CmdPrevScreen:    "PrevScreen",
	CmdGotoCamera:    "GotoCamera",
	CmdToFront:       "ToFront",
	CmdToBack:        "ToBack",
	CmdFastCopyUp:    "FastCopyUp",
	CmdFastCopyDown:  "FastCopyDown",
	CmdFastCopyLeft:  "FastCopyLeft",
	CmdFastCopyRight: "FastCopyRight",
	CmdMoveUp:        "MoveUp",
	CmdMoveDown:      "MoveDown",
	CmdMoveLeft:      "MoveLeft",
	CmdMoveRight:     "MoveRight",
	CmdDeselectAll:   "DeselectAll",
	CmdSelectAll:     "SelectAll",
	CmdPaste:         "Paste",
	CmdCut:           "Cut",
	CmdCopy:          "Copy",
	CmdReplace:       "Replace",
	CmdDelete:        "Delete",
	CmdSnap:          "Snap",
	CmdCycleMassive:  "CycleMassive",
	CmdToggle:        "Toggle",
}

// String returns a human-readable name for the command.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Direction returns the direction carried by fast-copy and nudge commands.
func (c Command) Direction() Direction {
	switch c {
	case CmdFastCopyUp, CmdMoveUp:
		return DirUp
	case CmdFastCopyDown, CmdMoveDown:
		return DirDown
	case CmdFastCopyLeft, CmdMoveLeft:
		return DirLeft
	case CmdFastCopyRight, CmdMoveRight:
		return DirRight
	}
	return DirUndefined
}

// IsFastCopy reports whether the command is one of the directional copies.
func (c Command) IsFastCopy() bool {
	return c >= CmdFastCopyUp && c <= CmdFastCopyRight
}

// IsNudge reports whether the command is one of the pixel moves.
func (c Command) IsNudge() bool {
	return c >= CmdMoveUp && c <= CmdMoveRight
}

// Pointer is the mouse state the editor needs alongside a command.
type Pointer struct {
	X, Y  int  // Position in level coordinates
	Shift bool // Shift held
	Ctrl  bool // Ctrl held
}

// ParseCommand looks a command up by its String name.
func ParseCommand(s string) (Command, bool) {
	for c, name := range commandNames {
		if name == s && c != CmdNone {
			return c, true
		}
	}
	return CmdNone, false
}
