package objects

import (
	"github.com/vovakirdan/tsc-editor/internal/core"
	"github.com/vovakirdan/tsc-editor/internal/overworld"
	"github.com/vovakirdan/tsc-editor/internal/registry"
	"github.com/vovakirdan/tsc-editor/internal/scene"
)

var linePoint = objectDef{
	typ: scene.TypeLinePoint, title: "Line Point", image: "world/editor/line_point.png",
	w: 4, h: 4, massive: core.MassPassive, array: scene.ArrayPassive,
	props: map[string]string{"origin": "0"},
	fields: []registry.Field{
		{Key: "origin", Label: "Origin", Tip: "Waypoint number this line starts from.", Default: "0"},
	},
}

// buildWaypoint splits the waypoint record out of the attribute bag so the
// exits are only stored once, on the Waypoint.
func buildWaypoint(attrs map[string]string) []*scene.Sprite {
	wp, err := overworld.Load(attrs)
	if err != nil {
		return nil
	}

	rest := make(map[string]string, len(attrs))
	for k, v := range attrs {
		if !overworld.IsWaypointKey(k) {
			rest[k] = v
		}
	}

	s := &scene.Sprite{
		Type:     scene.TypeWaypoint,
		Image:    "world/waypoint/default_1.png",
		Pos:      core.NewRect(0, 0, 32, 32),
		Massive:  core.MassPassive,
		Array:    scene.ArrayPassive,
		Props:    map[string]string{},
		Waypoint: wp,
	}
	s.ApplyAttributes(rest)
	return []*scene.Sprite{s}
}

func init() {
	linePoint.register()
	registry.Register(registry.TypeInfo{
		Name:  string(scene.TypeWaypoint),
		Title: "Waypoint",
	}, buildWaypoint)
}
