package core

import (
	"errors"
	"fmt"
)

// ErrBadDirection is returned when a direction name is not recognized.
var ErrBadDirection = errors.New("core: invalid direction")

// Direction is one of the four cardinal directions.
type Direction int

const (
	DirUndefined Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the valid directions in selector order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the persisted name of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "undefined"
	}
}

// ParseDirection converts a persisted name back to a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if d.String() == s {
			return d, nil
		}
	}
	return DirUndefined, fmt.Errorf("%w: %q", ErrBadDirection, s)
}

// Delta returns the unit offset of the direction in screen coordinates.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Horizontal reports whether the direction is left or right.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}
