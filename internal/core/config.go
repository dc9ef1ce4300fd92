package core

// RuntimeConfig contains the settings the platform passes to the editor
// screen at start up.
type RuntimeConfig struct {
	ScreenW      int     // Screen width in characters
	ScreenH      int     // Screen height in characters
	TickRate     int     // Updates per second (default 30)
	DisplayScale float64 // Multiplier for panel layout metrics
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickRate:     30,
		DisplayScale: 1,
	}
}
