// Package scene holds the editable game objects and the ordered collection
// they live in. Physics and drawing live elsewhere; here an object is only
// its identity, placement and persisted attributes.
package scene

import (
	"maps"
	"strconv"

	"github.com/vovakirdan/tsc-editor/internal/core"
	"github.com/vovakirdan/tsc-editor/internal/overworld"
)

// ObjectType names the kind of a game object as it appears in save files
// and item manifests.
type ObjectType string

// Object types known to the editor. The value doubles as the registry
// name of the type's factory.
const (
	TypeSprite       ObjectType = "sprite"
	TypeFurball      ObjectType = "furball"
	TypeTurtle       ObjectType = "turtle"
	TypeEato         ObjectType = "eato"
	TypeEnemyStopper ObjectType = "enemystopper"
	TypeBox          ObjectType = "box"
	TypeLevelEntry   ObjectType = "level_entry"
	TypeLevelExit    ObjectType = "level_exit"
	TypeSecretArea   ObjectType = "secret_area"
	TypeRescueItem   ObjectType = "rescue_item"
	TypeCrate        ObjectType = "crate"
	TypeWaypoint     ObjectType = "waypoint"
	TypeLinePoint    ObjectType = "line_point"
)

// Array is the update/draw bucket an object is sorted into.
type Array int

const (
	ArrayPassive Array = iota
	ArrayMassive
	ArrayActive
	ArrayLava
)

// String returns the persisted name of the array.
func (a Array) String() string {
	switch a {
	case ArrayMassive:
		return "massive"
	case ArrayActive:
		return "active"
	case ArrayLava:
		return "lava"
	default:
		return "passive"
	}
}

// ParseArray converts a persisted name to an Array, defaulting to passive.
func ParseArray(s string) Array {
	switch s {
	case "massive":
		return ArrayMassive
	case "active":
		return ArrayActive
	case "lava":
		return ArrayLava
	}
	return ArrayPassive
}

// Sprite is a game object placed in a level or world.
type Sprite struct {
	UID      int
	Type     ObjectType
	Name     string
	Image    string    // image ident, relative to the pixmaps directory
	Pos      core.Rect // start position and extent
	Massive  core.MassiveType
	Array    Array
	Rotation [3]float64
	Tags     string            // editor tags, semicolon separated
	Props    map[string]string // type specific attributes

	// Waypoint is set for overworld waypoints only.
	Waypoint *overworld.Waypoint
}

// NewSprite returns a passive basic sprite showing image.
func NewSprite(image string, w, h int) *Sprite {
	return &Sprite{
		Type:    TypeSprite,
		Image:   image,
		Pos:     core.NewRect(0, 0, w, h),
		Massive: core.MassPassive,
		Array:   ArrayPassive,
		Props:   map[string]string{},
	}
}

// Copy returns a deep copy with UID cleared, ready to be added to a scene.
func (s *Sprite) Copy() *Sprite {
	c := *s
	c.UID = 0
	c.Props = maps.Clone(s.Props)
	if c.Props == nil {
		c.Props = map[string]string{}
	}
	if s.Waypoint != nil {
		c.Waypoint = s.Waypoint.Copy()
	}
	return &c
}

// IsBasic reports whether the object is a plain image sprite.
func (s *Sprite) IsBasic() bool {
	return s.Type == TypeSprite
}

// SetPos moves the object's start position.
func (s *Sprite) SetPos(x, y int) {
	s.Pos.X = x
	s.Pos.Y = y
}

// Move shifts the object by (dx, dy).
func (s *Sprite) Move(dx, dy int) {
	s.Pos = s.Pos.Translate(dx, dy)
}

// SetMassive changes the collision category and re-sorts the object into
// the matching array. Lava objects keep their array.
func (s *Sprite) SetMassive(m core.MassiveType) {
	s.Massive = m
	if s.Array == ArrayLava {
		return
	}
	switch m {
	case core.MassMassive:
		s.Array = ArrayMassive
	case core.MassHalfMassive, core.MassClimbable:
		s.Array = ArrayActive
	case core.MassPassive, core.MassFrontPassive:
		s.Array = ArrayPassive
	}
}

// DisplayNameKey persists Sprite.Name. Types keep their own "name"
// attribute in Props.
const DisplayNameKey = "display_name"

// Attributes flattens the object into the key/value form used by save
// records and item manifests.
func (s *Sprite) Attributes() map[string]string {
	a := maps.Clone(s.Props)
	if a == nil {
		a = map[string]string{}
	}
	a["posx"] = strconv.Itoa(s.Pos.X)
	a["posy"] = strconv.Itoa(s.Pos.Y)
	a["width"] = strconv.Itoa(s.Pos.W)
	a["height"] = strconv.Itoa(s.Pos.H)
	if s.Image != "" {
		a["image"] = s.Image
	}
	if s.Name != "" {
		a[DisplayNameKey] = s.Name
	}
	a["massive_type"] = s.Massive.String()
	a["array"] = s.Array.String()
	if s.Rotation != [3]float64{} {
		a["rotx"] = strconv.FormatFloat(s.Rotation[0], 'f', -1, 64)
		a["roty"] = strconv.FormatFloat(s.Rotation[1], 'f', -1, 64)
		a["rotz"] = strconv.FormatFloat(s.Rotation[2], 'f', -1, 64)
	}
	if s.Waypoint != nil {
		s.Waypoint.Save(a)
	}
	return a
}

// ApplyAttributes reads the common placement attributes back from a flat
// bag. Unknown keys are left in Props for the type to interpret.
func (s *Sprite) ApplyAttributes(a map[string]string) {
	if s.Props == nil {
		s.Props = map[string]string{}
	}
	for k, v := range a {
		switch k {
		case "posx":
			s.Pos.X = atoi(v, s.Pos.X)
		case "posy":
			s.Pos.Y = atoi(v, s.Pos.Y)
		case "width":
			s.Pos.W = atoi(v, s.Pos.W)
		case "height":
			s.Pos.H = atoi(v, s.Pos.H)
		case "image":
			s.Image = v
		case DisplayNameKey:
			s.Name = v
		case "massive_type":
			if m := core.ParseMassiveType(v); m != core.MassInvalid {
				s.SetMassive(m)
			}
		case "array":
			// applied last so it wins over the massive type default
		case "rotx":
			s.Rotation[0] = atof(v)
		case "roty":
			s.Rotation[1] = atof(v)
		case "rotz":
			s.Rotation[2] = atof(v)
		default:
			s.Props[k] = v
		}
	}
	if v, ok := a["array"]; ok {
		s.Array = ParseArray(v)
	}
}

func atoi(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func atof(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
