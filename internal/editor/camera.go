package editor

// Camera is the editor's view offset into the scene, in scene units.
type Camera struct {
	X, Y int
	W, H int // viewport size, used for screen steps
}

// Reset moves the camera back to the origin.
func (c *Camera) Reset() {
	c.X, c.Y = 0, 0
}

// SetPos moves the camera to (x, y).
func (c *Camera) SetPos(x, y int) {
	c.X, c.Y = x, y
}

// Move shifts the camera by (dx, dy).
func (c *Camera) Move(dx, dy int) {
	c.X += dx
	c.Y += dy
}

// Step moves the camera horizontally by n viewport widths.
func (c *Camera) Step(n int) {
	c.X += n * c.W
}
