package collision

import (
	"github.com/lixenwraith/space-tanks/vmath"
)

// Collider is an oriented square footprint on the X/Z plane plus its circumscribed circle
// The square is axis aligned in local space; the pair of transforms is rebuilt on every Configure
type Collider struct {
	localToWorld vmath.Transform2D
	worldToLocal vmath.Transform2D
	position     vmath.Vec2
	halfBoxWidth int64
	radius       int64
	mask         Mask
	surfaceAngle int64
}

// Configure projects a 3D pose onto the collision plane and caches the derived volume
// Must be called every tick the owner moved or rotated, a stale transform yields a stale volume
func (c *Collider) Configure(pose vmath.Transform3D, halfBoxWidth int64, mask Mask, surfaceAngle int64) {
	if mask == 0 {
		panic("collision: Configure with zero mask would mark the slot free")
	}
	c.localToWorld = pose.Flatten()
	c.worldToLocal = c.localToWorld.OrthonormalInvert()
	c.position = c.localToWorld.T
	c.halfBoxWidth = halfBoxWidth
	c.radius = vmath.Mul(halfBoxWidth, vmath.Sqrt2)
	c.mask = mask
	c.surfaceAngle = surfaceAngle
}

func (c *Collider) Mask() Mask {
	return c.mask
}

// Position is the world-space center on the collision plane (world X, world Z)
func (c *Collider) Position() vmath.Vec2 {
	return c.position
}

func (c *Collider) HalfBoxWidth() int64 {
	return c.halfBoxWidth
}

func (c *Collider) Radius() int64 {
	return c.radius
}

func (c *Collider) SurfaceAngle() int64 {
	return c.surfaceAngle
}

// LocalToWorld exposes the planar transform for tracing the box outline
func (c *Collider) LocalToWorld() vmath.Transform2D {
	return c.localToWorld
}

func (c *Collider) configured() bool {
	return c.mask != 0 && c.mask != maskPending
}
