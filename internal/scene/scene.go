package scene

import "slices"

// Scene is an ordered object collection. Order is draw order: the last
// object is drawn on top of the others.
type Scene struct {
	objects []*Sprite
	nextUID int
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{nextUID: 1}
}

// Add appends objects on top of the scene, giving each a UID if it has none.
func (s *Scene) Add(objs ...*Sprite) {
	for _, o := range objs {
		if o.UID == 0 {
			o.UID = s.nextUID
		}
		if o.UID >= s.nextUID {
			s.nextUID = o.UID + 1
		}
		s.objects = append(s.objects, o)
	}
}

// Remove deletes obj from the scene. It reports whether obj was present.
func (s *Scene) Remove(obj *Sprite) bool {
	i := s.Index(obj)
	if i < 0 {
		return false
	}
	s.objects = slices.Delete(s.objects, i, i+1)
	return true
}

// Clear removes all objects.
func (s *Scene) Clear() {
	s.objects = nil
}

// Objects returns the objects in draw order. The slice is a copy; the
// objects are not.
func (s *Scene) Objects() []*Sprite {
	return slices.Clone(s.objects)
}

// Len returns the number of objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Index returns the draw position of obj, or -1.
func (s *Scene) Index(obj *Sprite) int {
	return slices.Index(s.objects, obj)
}

// Contains reports whether obj is in the scene.
func (s *Scene) Contains(obj *Sprite) bool {
	return s.Index(obj) >= 0
}

// ByUID finds an object by UID.
func (s *Scene) ByUID(uid int) *Sprite {
	for _, o := range s.objects {
		if o.UID == uid {
			return o
		}
	}
	return nil
}

// At returns the topmost object covering (x, y), or nil.
func (s *Scene) At(x, y int) *Sprite {
	for i := len(s.objects) - 1; i >= 0; i-- {
		if s.objects[i].Pos.Contains(x, y) {
			return s.objects[i]
		}
	}
	return nil
}

// BringToFront moves obj to the end of the draw order.
func (s *Scene) BringToFront(obj *Sprite) {
	if !s.Remove(obj) {
		return
	}
	s.objects = append(s.objects, obj)
}

// SendToBack moves obj to the start of the draw order.
func (s *Scene) SendToBack(obj *Sprite) {
	if !s.Remove(obj) {
		return
	}
	s.objects = slices.Insert(s.objects, 0, obj)
}

// Filter returns the objects for which keep returns true, in draw order.
func (s *Scene) Filter(keep func(*Sprite) bool) []*Sprite {
	var out []*Sprite
	for _, o := range s.objects {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}
