package editor

import "sync/atomic"

// Mode tells other systems which editor, if any, currently owns input.
// One Mode is shared by the level and world editor of a session.
type Mode struct {
	level atomic.Bool
	world atomic.Bool
}

// Set marks the editor for the given item tag as active or inactive.
func (m *Mode) Set(itemTag string, active bool) {
	switch itemTag {
	case TagLevel:
		m.level.Store(active)
	case TagWorld:
		m.world.Store(active)
	}
}

// Level reports whether the level editor is enabled.
func (m *Mode) Level() bool { return m.level.Load() }

// World reports whether the world editor is enabled.
func (m *Mode) World() bool { return m.world.Load() }

// Active reports whether any editor is enabled.
func (m *Mode) Active() bool { return m.Level() || m.World() }
