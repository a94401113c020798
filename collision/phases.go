package collision

import (
	"github.com/lixenwraith/space-tanks/vmath"
)

// Test runs the query against every slot whose mask intersects q's mask
//
// Broad phase rejects on Manhattan distance first, using additions only so the circle test
// never squares a far-away offset, then on the circumscribed circles.
// With circlesOnly set the survivor with the smallest circle separation is reported; the first
// one found wins ties. Otherwise each survivor runs the oriented box test, and when out is non-nil
// the swept contact is resolved. In that mode the last matching slot in iteration order is the one
// left in out, not necessarily the nearest.
func (r *Registry) Test(q Query, circlesOnly bool, out *Contact) bool {
	found := false
	var closest int64
	for i := range r.slots {
		c := &r.slots[i].collider
		if !c.mask.Intersects(q.mask) {
			continue
		}
		dx, dz, near := manhattanAccept(c, &q)
		if !near {
			continue
		}
		sep := circleSeparation(c, &q, dx, dz)
		if sep > 0 {
			continue
		}

		if circlesOnly {
			if found && sep >= closest {
				continue
			}
			if out != nil {
				out.Collider = r.handleAt(i)
				out.Mask = c.mask
			}
		} else if !r.sweep(c, &q, i, out) {
			continue
		}

		found = true
		closest = sep
	}
	return found
}

// manhattanAccept returns the per-axis offsets and whether |dx|+|dz| is within twice the
// extended half width
func manhattanAccept(c *Collider, q *Query) (dx, dz int64, ok bool) {
	dx = vmath.Abs(c.position.X - q.pos.X)
	dz = vmath.Abs(c.position.Y - q.pos.Y)
	return dx, dz, dx+dz <= (c.halfBoxWidth+q.radius)<<1
}

// circleSeparation is d² - (R+r)², positive when the circles are apart
func circleSeparation(c *Collider, q *Query, dx, dz int64) int64 {
	reach := c.radius + q.radius
	return vmath.Mul(dx, dx) + vmath.Mul(dz, dz) - vmath.Mul(reach, reach)
}

// sweep is the oriented box test for slot i
// Without out it only checks the local AABB; with out it also needs an edge crossing this tick
func (r *Registry) sweep(c *Collider, q *Query, i int, out *Contact) bool {
	local := c.worldToLocal.TransformPoint(q.pos)
	extended := c.halfBoxWidth + q.radius
	if r.logger != nil {
		r.logger.Printf("collision: slot %d local pos (%.4f, %.4f)", i, vmath.ToFloat(local.X), vmath.ToFloat(local.Y))
	}
	if vmath.Abs(local.X) > extended || vmath.Abs(local.Y) > extended {
		return false
	}
	if out == nil {
		return true
	}

	// Work with non-positive deltas against the positive edges
	delta := c.worldToLocal.RotateVector(q.delta)
	flipX := delta.X > 0
	flipY := delta.Y > 0
	if flipX {
		delta.X = -delta.X
		local.X = -local.X
	}
	if flipY {
		delta.Y = -delta.Y
		local.Y = -local.Y
	}

	edge := c.halfBoxWidth
	prev := vmath.V2Sub(local, delta)
	crossedX := local.X < edge && prev.X >= edge
	crossedY := local.Y < edge && prev.Y >= edge
	if r.logger != nil {
		r.logger.Printf("collision: slot %d flip (%t, %t) prev (%.4f, %.4f) crossed (%t, %t)", i, flipX, flipY,
			vmath.ToFloat(prev.X), vmath.ToFloat(prev.Y), crossedX, crossedY)
	}
	if !crossedX && !crossedY {
		// Grazing step: broad phase matched but no edge was crossed
		return false
	}

	var xt, yt int64
	if crossedX {
		xt = vmath.Div(edge-local.X, prev.X-local.X)
	}
	if crossedY {
		yt = vmath.Div(edge-local.Y, prev.Y-local.Y)
	}

	surfaceSin, surfaceCos := vmath.SinCos(c.surfaceAngle)
	var hit, normal vmath.Vec2
	if xt > yt {
		hit = vmath.V2Sub(local, vmath.V2Scale(delta, xt))
		normal = vmath.Vec2{X: surfaceCos}
	} else {
		hit = vmath.V2Sub(local, vmath.V2Scale(delta, yt))
		normal = vmath.Vec2{Y: surfaceCos}
	}
	if flipX {
		hit.X = -hit.X
		normal.X = -normal.X
	}
	if flipY {
		hit.Y = -hit.Y
		normal.Y = -normal.Y
	}

	pos := c.localToWorld.TransformPoint(hit)
	n := c.localToWorld.RotateVector(normal)
	out.Pos = vmath.Vec3{X: pos.X, Z: pos.Y}
	out.Normal = vmath.Vec3{X: n.X, Y: surfaceSin, Z: n.Y}
	out.Collider = r.handleAt(i)
	out.Mask = c.mask
	return true
}
