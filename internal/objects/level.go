package objects

import (
	"strconv"

	"github.com/vovakirdan/tsc-editor/internal/core"
	"github.com/vovakirdan/tsc-editor/internal/registry"
	"github.com/vovakirdan/tsc-editor/internal/scene"
)

var directionChoices = []string{"up", "down", "left", "right"}

var levelTypes = []objectDef{
	{
		typ: scene.TypeSprite, title: "Sprite",
		w: 32, h: 32, massive: core.MassPassive, array: scene.ArrayPassive,
	},
	{
		typ: scene.TypeFurball, title: "Furball", image: "enemy/furball/brown/turn.png",
		w: 32, h: 32, massive: core.MassMassive, array: scene.ArrayActive,
		props: map[string]string{"color": "brown", "direction": "left"},
		fields: []registry.Field{
			{Key: "direction", Label: "Direction", Tip: "Starting direction.", Choices: []string{"left", "right"}, Default: "left"},
			{Key: "color", Label: "Color", Tip: "Color of the Furball.", Choices: []string{"brown", "blue", "black"}, Default: "brown"},
		},
	},
	{
		typ: scene.TypeTurtle, title: "Turtle", image: "enemy/army/red/walk_0.png",
		w: 32, h: 48, massive: core.MassMassive, array: scene.ArrayActive,
		props: map[string]string{"color": "red", "direction": "left"},
		fields: []registry.Field{
			{Key: "direction", Label: "Direction", Tip: "Starting direction.", Choices: []string{"left", "right"}, Default: "left"},
			{Key: "color", Label: "Color", Tip: "Color of the Turtle.", Choices: []string{"red", "green"}, Default: "red"},
		},
	},
	{
		typ: scene.TypeEato, title: "Eato", image: "enemy/eato/green/1.png",
		w: 32, h: 32, massive: core.MassMassive, array: scene.ArrayActive,
		props: map[string]string{"direction": "up_left", "image_dir": "enemy/eato/green/"},
		fields: []registry.Field{
			{Key: "direction", Label: "Direction", Tip: "Direction it faces.", Choices: []string{"up_left", "up_right", "down_left", "down_right"}, Default: "up_left"},
			{Key: "image_dir", Label: "Image directory", Tip: "Directory containing the images."},
		},
	},
	{
		typ: scene.TypeEnemyStopper, title: "Enemy Stopper", image: "game/editor/enemystopper.png",
		w: 16, h: 16, massive: core.MassPassive, array: scene.ArrayActive,
	},
	{
		typ: scene.TypeBox, title: "Box", image: "game/box/yellow/default.png",
		w: 32, h: 32, massive: core.MassMassive, array: scene.ArrayActive,
		props: map[string]string{"box_type": "bonus", "animation": "Bonus", "useable_count": "1", "invisible": "0"},
		fields: []registry.Field{
			{Key: "box_type", Label: "Box type", Tip: "What the box contains.", Choices: []string{"bonus", "spin", "text"}, Default: "bonus"},
			{Key: "useable_count", Label: "Useable Count", Tip: "Useable Count (-1 means infinite)", Default: "1"},
			{Key: "invisible", Label: "Invisible", Tip: "Massive is invisible until activated.", Choices: []string{"0", "1"}, Default: "0"},
		},
	},
	{
		typ: scene.TypeLevelEntry, title: "Level Entry", image: "game/editor/entry.png",
		w: 20, h: 20, massive: core.MassPassive, array: scene.ArrayActive,
		props: map[string]string{"direction": "up", "name": ""},
		fields: []registry.Field{
			{Key: "direction", Label: "Direction", Tip: "Direction to come out.", Choices: directionChoices, Default: "up"},
			{Key: "name", Label: "Name", Tip: "Name for identification."},
		},
	},
	{
		typ: scene.TypeLevelExit, title: "Level Exit", image: "game/editor/exit.png",
		w: 20, h: 20, massive: core.MassPassive, array: scene.ArrayActive,
		props: map[string]string{"type": "beam", "direction": "down", "level_name": "", "entry": ""},
		fields: []registry.Field{
			{Key: "type", Label: "Type", Tip: "Exit type.", Choices: []string{"beam", "warp"}, Default: "beam"},
			{Key: "direction", Label: "Direction", Tip: "Direction to enter a warp.", Choices: directionChoices, Default: "down"},
			{Key: "level_name", Label: "Destination Level", Tip: "Level to go to; empty returns to the world."},
			{Key: "entry", Label: "Destination Entry", Tip: "Entry name in the destination level."},
		},
	},
	{
		typ: scene.TypeSecretArea, title: "Secret Area", image: "game/editor/secret_area.png",
		w: 64, h: 64, massive: core.MassPassive, array: scene.ArrayActive,
		props: map[string]string{"activated": "0"},
	},
	{
		typ: scene.TypeRescueItem, title: "Rescue Item", image: "game/items/rescue.png",
		w: 32, h: 32, massive: core.MassPassive, array: scene.ArrayActive,
	},
	{
		typ: scene.TypeCrate, title: "Crate", image: "ground/underground/crate.png",
		w: 32, h: 32, massive: core.MassMassive, array: scene.ArrayActive,
	},
}

// legacyRowType expands into "count" sprites placed side by side, the way
// pre-2.0 levels described runs of identical blocks.
const legacyRowType = "sprite_row"

func buildLegacyRow(attrs map[string]string) []*scene.Sprite {
	count, err := strconv.Atoi(attrs["count"])
	if err != nil || count < 1 {
		return nil
	}
	base := levelTypes[0].build(attrs)
	delete(base.Props, "count")

	objs := make([]*scene.Sprite, 0, count)
	for i := 0; i < count; i++ {
		s := base.Copy()
		s.Move(i*base.Pos.W, 0)
		objs = append(objs, s)
	}
	return objs
}

func init() {
	for _, sp := range levelTypes {
		sp.register()
	}
	registry.Register(registry.TypeInfo{
		Name:   legacyRowType,
		Title:  "Sprite Row",
		Legacy: true,
	}, buildLegacyRow)
}
