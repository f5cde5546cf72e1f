package physics

import "math"

// Vec2 is a 2D vector in logical screen units (y grows downwards).
// It is a value type; every method returns a new vector.
type Vec2 struct {
	X, Y float64
}

// Up is the initial heading of ships and asteroid sprites.
var Up = Vec2{X: 0, Y: -1}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vec2) DistanceTo(o Vec2) float64 {
	return Distance(v.X, v.Y, o.X, o.Y)
}

// Rotate rotates v by deg degrees. With y pointing down a positive angle
// turns clockwise on screen.
func (v Vec2) Rotate(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// ScaleToLength returns v rescaled to the given length.
// The zero vector cannot be rescaled and is returned unchanged.
func (v Vec2) ScaleToLength(length float64) Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(length / l)
}

// Angle returns the heading of v in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleTo returns the signed angle in degrees that rotates v onto o.
func (v Vec2) AngleTo(o Vec2) float64 {
	deg := (o.Angle() - v.Angle()) * 180 / math.Pi
	for deg > 180 {
		deg -= 360
	}
	for deg <= -180 {
		deg += 360
	}
	return deg
}

// Rect is an axis-aligned rectangle with its top-left corner at (X, Y).
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}
