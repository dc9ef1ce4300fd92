package core

import "testing"

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Ch != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.GetCell(x, y).Ch, x, y)
			}
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorWhite)
	if s.GetCell(5, 5).Ch != 'X' {
		t.Errorf("GetCell(5, 5) = %q, expected 'X'", s.GetCell(5, 5).Ch)
	}

	// Out of bounds should be silent
	s.SetColored(-1, 0, 'A', ColorWhite)  // Should not panic
	s.SetColored(100, 0, 'A', ColorWhite) // Should not panic
	s.SetColored(0, -1, 'A', ColorWhite)  // Should not panic
	s.SetColored(0, 100, 'A', ColorWhite) // Should not panic

	// Out of bounds get should return space
	if s.GetCell(-1, 0).Ch != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}
	if s.GetCell(100, 0).Ch != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	// Fill with some characters
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetColored(x, y, 'X', ColorWhite)
		}
	}

	s.Clear()

	// Should all be spaces now
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y).Ch != ' ' {
				t.Errorf("After Clear, expected space at (%d, %d), got %q", x, y, s.GetCell(x, y).Ch)
			}
		}
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Hello", ColorYellow)

	expected := "Hello"
	for i, ch := range expected {
		if s.GetCell(2+i, 1).Ch != ch {
			t.Errorf("DrawTextColored: expected %q at (%d, 1), got %q", ch, 2+i, s.GetCell(2+i, 1).Ch)
		}
	}
	if s.GetCell(2, 1).FG != ColorYellow {
		t.Errorf("DrawTextColored: expected yellow cell, got %v", s.GetCell(2, 1).FG)
	}

	// Text should be clipped at boundaries
	s.DrawTextColored(18, 0, "Hello", ColorYellow) // Only "He" should fit
	if s.GetCell(18, 0).Ch != 'H' || s.GetCell(19, 0).Ch != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(2, 2, 3, 3)
	s.DrawRect(r, '#', ColorRed)

	// Check filled area
	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.GetCell(x, y).Ch != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d), got %q", x, y, s.GetCell(x, y).Ch)
			}
		}
	}

	if s.GetCell(3, 3).FG != ColorRed {
		t.Errorf("DrawRect: expected red cell, got %v", s.GetCell(3, 3).FG)
	}

	// Check outside is still space
	if s.GetCell(1, 1).Ch != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
	if s.GetCell(5, 5).Ch != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(1, 1, 5, 4)
	s.DrawBox(r, ColorWhite)

	// Check corners
	if s.GetCell(1, 1).Ch != '┌' {
		t.Errorf("Top-left corner should be '┌', got %q", s.GetCell(1, 1).Ch)
	}
	if s.GetCell(5, 1).Ch != '┐' {
		t.Errorf("Top-right corner should be '┐', got %q", s.GetCell(5, 1).Ch)
	}
	if s.GetCell(1, 4).Ch != '└' {
		t.Errorf("Bottom-left corner should be '└', got %q", s.GetCell(1, 4).Ch)
	}
	if s.GetCell(5, 4).Ch != '┘' {
		t.Errorf("Bottom-right corner should be '┘', got %q", s.GetCell(5, 4).Ch)
	}

	// Check horizontal edges
	for x := 2; x < 5; x++ {
		if s.GetCell(x, 1).Ch != '─' {
			t.Errorf("Top edge should be '─' at x=%d, got %q", x, s.GetCell(x, 1).Ch)
		}
		if s.GetCell(x, 4).Ch != '─' {
			t.Errorf("Bottom edge should be '─' at x=%d, got %q", x, s.GetCell(x, 4).Ch)
		}
	}

	// Check vertical edges
	for y := 2; y < 4; y++ {
		if s.GetCell(1, y).Ch != '│' {
			t.Errorf("Left edge should be '│' at y=%d, got %q", y, s.GetCell(1, y).Ch)
		}
		if s.GetCell(5, y).Ch != '│' {
			t.Errorf("Right edge should be '│' at y=%d, got %q", y, s.GetCell(5, y).Ch)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorWhite)
	s.DrawTextColored(0, 5, "World", ColorWhite)

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	if s.GetCell(0, 0).Ch != 'H' || s.GetCell(4, 0).Ch != 'o' {
		t.Errorf("Content should be preserved, row 0 starts %q%q", s.GetCell(0, 0).Ch, s.GetCell(4, 0).Ch)
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	if s.GetCell(0, 0).Ch != 'H' || s.GetCell(4, 0).Ch != 'o' {
		t.Errorf("Content should be preserved after enlarging, row 0 starts %q%q", s.GetCell(0, 0).Ch, s.GetCell(4, 0).Ch)
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, 'M', ColorRed)

	cell := s.GetCell(1, 1)
	if cell.Ch != 'M' || cell.FG != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, expected M in red", cell)
	}

	// SetColored replaces the colour, Clear drops it
	s.SetColored(1, 1, 'N', ColorWhite)
	if s.GetCell(1, 1).FG != ColorWhite {
		t.Error("SetColored should replace the existing colour")
	}
	s.Clear()
	if s.GetCell(1, 1) != (Cell{Ch: ' '}) {
		t.Errorf("After Clear, expected blank cell, got %+v", s.GetCell(1, 1))
	}
}

func TestScreenDrawBoxTiny(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawBox(NewRect(1, 1, 1, 1), ColorGreen)

	if s.GetCell(1, 1).Ch != '■' {
		t.Errorf("1x1 box should be a filled block, got %q", s.GetCell(1, 1).Ch)
	}
}
