// Package objects registers the level and world object types with the
// registry. Import it for its side effects.
package objects

import (
	"strconv"

	"github.com/vovakirdan/tsc-editor/internal/core"
	"github.com/vovakirdan/tsc-editor/internal/registry"
	"github.com/vovakirdan/tsc-editor/internal/scene"
)

// objectDef is the static description of a single-object type.
type objectDef struct {
	typ     scene.ObjectType
	title   string
	image   string
	w, h    int
	massive core.MassiveType
	array   scene.Array
	props   map[string]string
	fields  []registry.Field
}

func (sp objectDef) build(attrs map[string]string) *scene.Sprite {
	s := &scene.Sprite{
		Type:    sp.typ,
		Image:   sp.image,
		Pos:     core.NewRect(0, 0, sp.w, sp.h),
		Massive: sp.massive,
		Array:   sp.array,
		Props:   map[string]string{},
	}
	for k, v := range sp.props {
		s.Props[k] = v
	}
	s.ApplyAttributes(attrs)
	return s
}

func (sp objectDef) register() {
	registry.Register(registry.TypeInfo{
		Name:   string(sp.typ),
		Title:  sp.title,
		Fields: sp.fields,
	}, func(attrs map[string]string) []*scene.Sprite {
		return []*scene.Sprite{sp.build(attrs)}
	})
}

// Build recreates one saved object. Types that expand into several
// objects are not allowed in save records.
func Build(typ string, attrs map[string]string) (*scene.Sprite, error) {
	objs, err := registry.Create(typ, attrs)
	if err != nil {
		return nil, err
	}
	if len(objs) != 1 {
		return nil, &CountError{Type: typ, Count: len(objs)}
	}
	return objs[0], nil
}

// CountError reports a factory that produced the wrong number of objects.
type CountError struct {
	Type  string
	Count int
}

func (e *CountError) Error() string {
	return "objects: type " + strconv.Quote(e.Type) + " built " + strconv.Itoa(e.Count) + " objects, expected 1"
}
