package overworld

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tsc-editor/internal/core"
)

// The save format has no nested groups, so exits are flattened into
// index-suffixed keys.
func exitKey(i int, field string) string {
	return "waypoint_exit_" + strconv.Itoa(i) + "_" + field
}

// Save writes the waypoint into a flat property bag.
func (w *Waypoint) Save(props map[string]string) {
	props["type"] = strconv.Itoa(int(w.Type))
	props["destination"] = w.Destination
	props["access"] = formatBool(w.Access)

	for i, ex := range w.Exits {
		props[exitKey(i, "direction")] = ex.Direction.String()
		props[exitKey(i, "level_exit_name")] = ex.LevelExitName
		props[exitKey(i, "line_start_uid")] = strconv.Itoa(ex.LineStartUID)
		props[exitKey(i, "locked")] = formatBool(ex.Locked)
	}
}

// Load reads a waypoint back from a flat property bag. Only the first
// MaxExits slots are considered and a slot exists iff its direction key
// is present. Missing line start ids default to 0, missing lock states
// to locked.
func Load(props map[string]string) (*Waypoint, error) {
	w := NewWaypoint()

	if v, ok := props["type"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("overworld: type %q: %w", v, err)
		}
		w.Type = WaypointType(n)
	}

	// older saves name the destination after its kind
	switch {
	case props["world"] != "":
		w.Destination = props["world"]
	case props["level"] != "":
		w.Destination = props["level"]
	default:
		w.Destination = props["destination"]
	}

	if v, ok := props["access"]; ok {
		w.Access = parseBool(v, true)
	}

	for i := 0; i < MaxExits; i++ {
		dir, ok := props[exitKey(i, "direction")]
		if !ok {
			continue
		}
		d, err := core.ParseDirection(dir)
		if err != nil {
			return nil, fmt.Errorf("overworld: exit %d: %w", i, err)
		}

		ex := Exit{
			Direction:     d,
			LevelExitName: props[exitKey(i, "level_exit_name")],
			Locked:        true,
		}
		if v, ok := props[exitKey(i, "line_start_uid")]; ok {
			if n, err := strconv.Atoi(v); err == nil {
				ex.LineStartUID = n
			}
		}
		if v, ok := props[exitKey(i, "locked")]; ok {
			ex.Locked = parseBool(v, true)
		}
		w.Exits = append(w.Exits, ex)
	}

	return w, nil
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func parseBool(s string, def bool) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return b
}

// IsWaypointKey reports whether a property key belongs to the waypoint
// record rather than to its sprite.
func IsWaypointKey(k string) bool {
	switch k {
	case "type", "destination", "access", "world", "level":
		return true
	}
	return strings.HasPrefix(k, "waypoint_exit_")
}
