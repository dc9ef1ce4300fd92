// Package overworld models overworld waypoints and the exits that link
// them to level-exit triggers.
package overworld

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/tsc-editor/internal/core"
)

// MaxExits is the number of exit slots read back from a save record.
const MaxExits = 4

// ErrExitIndex is returned for an exit index outside the current sequence.
var ErrExitIndex = errors.New("overworld: exit index out of range")

// WaypointType selects what entering the waypoint does.
type WaypointType int

const (
	WaypointNormal    WaypointType = 1 // enters a level
	WaypointWorldLink WaypointType = 2 // switches to another world
)

// String returns the editor label for the type.
func (t WaypointType) String() string {
	if t == WaypointWorldLink {
		return "World Link"
	}
	return "Level"
}

// Exit is one directional departure option from a waypoint.
type Exit struct {
	Direction     core.Direction // key to press to leave through this exit
	LevelExitName string         // level exit that unlocks this exit
	LineStartUID  int            // line point the player is set onto
	Locked        bool
}

// NewExit returns an exit with the editor defaults: up, unnamed, line 0, locked.
func NewExit() Exit {
	return Exit{Direction: core.DirUp, Locked: true}
}

// Waypoint is an overworld node. Exits are positional: removing one shifts
// the following exits down by one, so indices are not stable identifiers.
type Waypoint struct {
	Type        WaypointType
	Destination string // level or world name
	Access      bool   // accessible from the start
	Exits       []Exit
}

// NewWaypoint returns an accessible normal waypoint with no exits.
func NewWaypoint() *Waypoint {
	return &Waypoint{Type: WaypointNormal, Access: true}
}

// Copy returns a deep copy.
func (w *Waypoint) Copy() *Waypoint {
	c := *w
	c.Exits = append([]Exit(nil), w.Exits...)
	return &c
}

// Len returns the number of exits.
func (w *Waypoint) Len() int {
	return len(w.Exits)
}

// AddExit appends a default exit and returns its index.
func (w *Waypoint) AddExit() int {
	w.Exits = append(w.Exits, NewExit())
	return len(w.Exits) - 1
}

// RemoveExit deletes the exit at index i.
func (w *Waypoint) RemoveExit(i int) error {
	if err := w.check(i); err != nil {
		return err
	}
	w.Exits = append(w.Exits[:i], w.Exits[i+1:]...)
	return nil
}

// Exit returns a copy of the exit at index i.
func (w *Waypoint) Exit(i int) (Exit, error) {
	if err := w.check(i); err != nil {
		return Exit{}, err
	}
	return w.Exits[i], nil
}

// SetExitDirection changes the leave direction of exit i.
func (w *Waypoint) SetExitDirection(i int, d core.Direction) error {
	if err := w.check(i); err != nil {
		return err
	}
	if d == core.DirUndefined {
		return fmt.Errorf("overworld: exit %d: %w", i, core.ErrBadDirection)
	}
	w.Exits[i].Direction = d
	return nil
}

// SetExitLevelExitName changes the level exit name of exit i.
func (w *Waypoint) SetExitLevelExitName(i int, name string) error {
	if err := w.check(i); err != nil {
		return err
	}
	w.Exits[i].LevelExitName = name
	return nil
}

// SetExitLineStartUID changes the line start point of exit i.
func (w *Waypoint) SetExitLineStartUID(i, uid int) error {
	if err := w.check(i); err != nil {
		return err
	}
	w.Exits[i].LineStartUID = uid
	return nil
}

// SetExitLocked changes the lock state of exit i.
func (w *Waypoint) SetExitLocked(i int, locked bool) error {
	if err := w.check(i); err != nil {
		return err
	}
	w.Exits[i].Locked = locked
	return nil
}

func (w *Waypoint) check(i int) error {
	if i < 0 || i >= len(w.Exits) {
		return fmt.Errorf("%w: %d of %d", ErrExitIndex, i, len(w.Exits))
	}
	return nil
}

// NoneLabel is the first entry of the exit selector.
const NoneLabel = "(None)"

// ExitLabels returns the selector entries: "(None)" then "1".."n".
func (w *Waypoint) ExitLabels() []string {
	labels := make([]string, 0, len(w.Exits)+1)
	labels = append(labels, NoneLabel)
	for i := range w.Exits {
		labels = append(labels, strconv.Itoa(i+1))
	}
	return labels
}

// ExitIndexForLabel converts a selector label back to a 0-based index.
// "(None)" and anything out of range give -1.
func (w *Waypoint) ExitIndexForLabel(label string) int {
	n, err := strconv.Atoi(label)
	if err != nil || n <= 0 || n > len(w.Exits) {
		return -1
	}
	return n - 1
}
