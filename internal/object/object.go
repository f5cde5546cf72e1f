// Package object defines the game entities and their per-tick kinematics.
package object

import (
	"github.com/tomz197/destroyds/internal/asset"
	"github.com/tomz197/destroyds/internal/draw"
	"github.com/tomz197/destroyds/internal/physics"
)

// Renderer is the drawing surface entities paint themselves on.
// Coordinates are logical screen units.
type Renderer interface {
	DrawSprite(s asset.Sprite, pos, heading physics.Vec2)
	DrawRing(center physics.Vec2, radius float64)
	DrawLine(from, to physics.Vec2)
	DrawPoint(p physics.Vec2)
	DrawText(text string, at physics.Vec2, style draw.TextStyle) physics.Rect
}

// Drawable is implemented by everything that appears on screen.
type Drawable interface {
	Draw(r Renderer)
}

// Positioned is anything with a location.
type Positioned interface {
	Position() physics.Vec2
}

// Collidable is a circle used for collision tests.
type Collidable interface {
	Positioned
	CollisionRadius() float64
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal at the end of the tick.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj any) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// Body is the shared kinematic state of every sprite-backed entity.
type Body struct {
	Pos       physics.Vec2
	Vel       physics.Vec2
	Radius    float64 // Half the sprite width
	Sprite    asset.Sprite
	destroyed bool
}

// NewBody places a sprite at pos moving with vel.
func NewBody(pos, vel physics.Vec2, sprite asset.Sprite) Body {
	return Body{
		Pos:    pos,
		Vel:    vel,
		Radius: sprite.Radius(),
		Sprite: sprite,
	}
}

// Move advances the position by one tick of velocity.
func (b *Body) Move() {
	b.Pos = b.Pos.Add(b.Vel)
}

// Position implements Positioned.
func (b *Body) Position() physics.Vec2 {
	return b.Pos
}

// CollisionRadius implements Collidable.
func (b *Body) CollisionRadius() float64 {
	return b.Radius
}

// Collides reports whether the two circles overlap. The test is symmetric.
func (b *Body) Collides(other Collidable) bool {
	return physics.CirclesOverlap(b.Pos, b.Radius, other.Position(), other.CollisionRadius())
}

// MarkDestroyed implements Destructible.
func (b *Body) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed implements Destructible.
func (b *Body) IsDestroyed() bool {
	return b.destroyed
}

// Draw paints the sprite upright at the body position.
func (b *Body) Draw(r Renderer) {
	r.DrawSprite(b.Sprite, b.Pos, physics.Up)
}

// ShouldRenderBlink returns true if an object with remaining protection time
// should be rendered this frame (for blinking effect).
// Returns true always if remainingMs <= 0 (no protection).
func ShouldRenderBlink(remainingMs int64, frequency float64) bool {
	if remainingMs <= 0 {
		return true
	}
	phase := int(float64(remainingMs) / 1000 * frequency)
	return phase%2 != 0
}
