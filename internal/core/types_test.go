package core

import (
	"errors"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		wantErr  bool
	}{
		{"FFFFFFFF", ColorWhite, false},
		{"FF2F0FFF", ColorRed, false},
		{"1FFF1F", ColorGreen, false},
		{"ffcf5fff", ColorYellow, false},
		{"", Color{}, true},
		{"GGGGGGGG", Color{}, true},
		{"FFF", Color{}, true},
	}

	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrBadColor) {
				t.Errorf("ParseColor(%q) error = %v, expected ErrBadColor", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseColor(%q) = %+v, expected %+v", tc.in, got, tc.expected)
		}
	}

	if ColorRed.RGB() != "#FF2F0F" {
		t.Errorf("RGB() = %q, expected #FF2F0F", ColorRed.RGB())
	}
}

func TestDirectionRoundTrip(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := ParseDirection("north"); !errors.Is(err, ErrBadDirection) {
		t.Errorf("ParseDirection(north) error = %v, expected ErrBadDirection", err)
	}
	if dx, dy := DirLeft.Delta(); dx != -1 || dy != 0 {
		t.Errorf("DirLeft.Delta() = (%d, %d), expected (-1, 0)", dx, dy)
	}
}

func TestMassiveCycle(t *testing.T) {
	m := MassMassive
	order := []MassiveType{MassHalfMassive, MassClimbable, MassPassive, MassFrontPassive, MassMassive}
	for i, want := range order {
		next, ok := m.Next()
		if !ok {
			t.Fatalf("step %d: Next() reported not cyclable", i)
		}
		if next != want {
			t.Errorf("step %d: Next() = %v, expected %v", i, next, want)
		}
		m = next
	}
	if m != MassMassive {
		t.Errorf("five cycles from massive ended at %v", m)
	}

	if _, ok := MassInvalid.Next(); ok {
		t.Error("MassInvalid should not be cyclable")
	}
}

func TestParseMassiveType(t *testing.T) {
	tests := map[string]MassiveType{
		"massive":       MassMassive,
		"passive":       MassPassive,
		"front_passive": MassFrontPassive,
		"halfmassive":   MassHalfMassive,
		"half_massive":  MassHalfMassive,
		"climbable":     MassClimbable,
		"lava":          MassInvalid,
	}
	for in, want := range tests {
		if got := ParseMassiveType(in); got != want {
			t.Errorf("ParseMassiveType(%q) = %v, expected %v", in, got, want)
		}
	}
}

func TestCommandDirection(t *testing.T) {
	if CmdFastCopyRight.Direction() != DirRight {
		t.Error("CmdFastCopyRight should carry DirRight")
	}
	if !CmdMoveUp.IsNudge() || CmdMoveUp.IsFastCopy() {
		t.Error("CmdMoveUp should be a nudge only")
	}
	if CmdSave.Direction() != DirUndefined {
		t.Error("CmdSave should carry no direction")
	}
	if CmdCut.String() != "Cut" {
		t.Errorf("CmdCut.String() = %q", CmdCut.String())
	}
}

func TestParseCommand(t *testing.T) {
	if c, ok := ParseCommand("FastCopyLeft"); !ok || c != CmdFastCopyLeft {
		t.Errorf("ParseCommand(FastCopyLeft) = %v, %v", c, ok)
	}
	if _, ok := ParseCommand("None"); ok {
		t.Error("None should not parse")
	}
	if _, ok := ParseCommand("Jump"); ok {
		t.Error("unknown names should not parse")
	}
}

func TestNewGameAction(t *testing.T) {
	a := NewGameAction(ActionEnterLevel, "load_level", "lvl_1", "reset_save", "1")
	if a.Kind != ActionEnterLevel || a.Data["load_level"] != "lvl_1" || a.Data["reset_save"] != "1" {
		t.Errorf("NewGameAction() = %+v", a)
	}
}
