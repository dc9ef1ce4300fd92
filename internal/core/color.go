package core

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrBadColor is returned when a colour string is not RRGGBBAA hex.
var ErrBadColor = errors.New("core: invalid colour")

// Color is an 8-bit RGBA colour as written in menu manifests.
type Color struct {
	R, G, B, A uint8
}

// Predefined colours used by the editor.
var (
	ColorWhite  = Color{0xFF, 0xFF, 0xFF, 0xFF}
	ColorGray   = Color{0x80, 0x80, 0x80, 0xFF}
	ColorYellow = Color{0xFF, 0xCF, 0x5F, 0xFF}
	ColorRed    = Color{0xFF, 0x2F, 0x0F, 0xFF}
	ColorOrange = Color{0xFF, 0xAF, 0x2F, 0xFF}
	ColorPurple = Color{0xDF, 0x00, 0xFF, 0xFF}
	ColorGreen  = Color{0x1F, 0xFF, 0x1F, 0xFF}
	ColorBlue   = Color{0x2F, 0x7F, 0xFF, 0xFF}
)

// ParseColor parses an "RRGGBBAA" (or "RRGGBB", alpha 0xFF) hex string.
func ParseColor(s string) (Color, error) {
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	if len(s) == 6 {
		v = v<<8 | 0xFF
	}
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// RGB returns the colour as "#RRGGBB", the form terminal styles accept.
func (c Color) RGB() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
