// Package catalog loads the placeable item templates offered by the
// editor palette: image items described by .settings files next to their
// pixmaps, and special items listed in an XML items manifest.
package catalog

import (
	"github.com/vovakirdan/tsc-editor/internal/scene"
	"github.com/vovakirdan/tsc-editor/internal/tags"
)

// ItemTemplate is one placeable object variant.
type ItemTemplate struct {
	Name      string     // display name
	Image     string     // image ident shown in the palette
	Rotation  [3]float64 // degrees around x, y, z
	MasterTag string     // "level" or "world" when the item carries it, else ""
	Tags      []string   // full tag sequence

	// Object is the prototype copied each time the item is placed.
	Object *scene.Sprite

	set tags.Set
}

func newTemplate(tagString, masterTag string) *ItemTemplate {
	t := &ItemTemplate{
		Tags: tags.Split(tagString),
		set:  tags.Parse(tagString),
	}
	if t.set.Has(masterTag) {
		t.MasterTag = masterTag
	}
	return t
}

// TagSet returns the item's tags as a set.
func (t *ItemTemplate) TagSet() tags.Set {
	return t.set
}

// Matches reports whether the item carries every required tag.
func (t *ItemTemplate) Matches(required []string) bool {
	return tags.HasAll(required, t.set)
}

// Instantiate returns a fresh copy of the prototype object.
func (t *ItemTemplate) Instantiate() *scene.Sprite {
	return t.Object.Copy()
}
