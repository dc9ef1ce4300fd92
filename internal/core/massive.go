package core

// MassiveType is the collision category of a level object.
type MassiveType int

const (
	MassInvalid MassiveType = iota
	MassPassive
	MassMassive
	MassFrontPassive
	MassHalfMassive
	MassClimbable
)

var massiveNames = map[MassiveType]string{
	MassPassive:      "passive",
	MassMassive:      "massive",
	MassFrontPassive: "front_passive",
	MassHalfMassive:  "halfmassive",
	MassClimbable:    "climbable",
}

// String returns the persisted name of the massive type.
func (m MassiveType) String() string {
	if name, ok := massiveNames[m]; ok {
		return name
	}
	return "invalid"
}

// ParseMassiveType converts a persisted name to a MassiveType.
// Unknown names yield MassInvalid.
func ParseMassiveType(s string) MassiveType {
	for m, name := range massiveNames {
		if name == s {
			return m
		}
	}
	// Older descriptors spell it with a dash or an underscore.
	switch s {
	case "half_massive", "half-massive":
		return MassHalfMassive
	case "front-passive", "frontpassive":
		return MassFrontPassive
	}
	return MassInvalid
}

// Next returns the following type in the editor cycle
// Massive, HalfMassive, Climbable, Passive, FrontPassive, Massive.
// The second result is false for types outside the cycle.
func (m MassiveType) Next() (MassiveType, bool) {
	switch m {
	case MassFrontPassive:
		return MassMassive, true
	case MassMassive:
		return MassHalfMassive, true
	case MassHalfMassive:
		return MassClimbable, true
	case MassClimbable:
		return MassPassive, true
	case MassPassive:
		return MassFrontPassive, true
	}
	return MassInvalid, false
}

// Color returns the highlight colour the editor uses for the type.
func (m MassiveType) Color() Color {
	switch m {
	case MassMassive:
		return ColorRed
	case MassHalfMassive:
		return ColorOrange
	case MassClimbable:
		return ColorPurple
	case MassPassive, MassFrontPassive:
		return ColorGreen
	}
	return ColorWhite
}
