package collision

import (
	"github.com/lixenwraith/space-tanks/vmath"
)

// Query describes a moving circular probe for one Test call
// Delta is the displacement covered this tick; zero for stationary probes
type Query struct {
	pos    vmath.Vec2
	delta  vmath.Vec2
	radius int64
	mask   Mask
}

// NewQuery drops the vertical components of pos and delta
func NewQuery(pos, delta vmath.Vec3, radius int64, mask Mask) Query {
	return Query{
		pos:    vmath.V3XZ(pos),
		delta:  vmath.V3XZ(delta),
		radius: radius,
		mask:   mask &^ maskPending,
	}
}

func (q Query) Pos() vmath.Vec2   { return q.pos }
func (q Query) Delta() vmath.Vec2 { return q.delta }
func (q Query) Radius() int64     { return q.radius }
func (q Query) Mask() Mask        { return q.mask }

// Contact is the narrow-phase result
// Pos has Y = 0 and callers substitute their own height; Normal.Y carries the surface tilt
// In circles-only mode only Collider and Mask are written
type Contact struct {
	Pos      vmath.Vec3
	Normal   vmath.Vec3
	Collider Handle
	Mask     Mask
}
