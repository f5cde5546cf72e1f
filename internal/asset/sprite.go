// Package asset resolves sprites and backgrounds by their logical names.
//
// Sprites are vector outlines in unit space: the shape fits a circle of radius
// 1 around the origin and points up (towards negative y). A Sprite carries the
// width it is drawn at, which also fixes the collision radius of whatever uses it.
package asset

import (
	"errors"

	"github.com/tomz197/destroyds/internal/physics"
)

// ErrMissing is returned when a sprite or background name is not in the catalog.
var ErrMissing = errors.New("asset not found")

// Sprite is a named vector image.
type Sprite struct {
	Name   string
	Width  float64          // Drawn width in logical units
	Paths  [][]physics.Vec2 // Closed outlines in unit space
	Filled bool
}

// Radius is half the sprite width.
func (s Sprite) Radius() float64 {
	return s.Width / 2
}

// Scaled returns a copy drawn at f times the width. Paths are shared.
func (s Sprite) Scaled(f float64) Sprite {
	s.Width *= f
	return s
}

// Valid reports whether the sprite can be drawn and collided with.
func (s Sprite) Valid() bool {
	return s.Width > 0 && len(s.Paths) > 0
}

// Transform maps a unit-space point onto the screen for a sprite centred at pos
// and rotated so that its "up" matches heading.
func (s Sprite) Transform(p, pos, heading physics.Vec2) physics.Vec2 {
	angle := physics.Up.AngleTo(heading)
	if heading == (physics.Vec2{}) {
		angle = 0
	}
	return p.Rotate(angle).Scale(s.Radius()).Add(pos)
}
