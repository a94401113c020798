package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/space-tanks/vmath"
)

func place(r *Registry, x, z, half float64, mask Mask) Handle {
	h := r.Allocate()
	r.Collider(h).Configure(vmath.Pose3D(vmath.V3(x, 0, z), 0), vmath.FromFloat(half), mask, 0)
	return h
}

func TestRegistry_AllocateFreeReuse(t *testing.T) {
	r := NewRegistry(4)

	h1 := r.Allocate()
	require.False(t, h1.IsZero())
	assert.Equal(t, 1, r.InUse())
	assert.True(t, r.Free(h1))
	assert.Equal(t, 0, r.InUse())

	h2 := r.Allocate()
	assert.Equal(t, h1.Index(), h2.Index(), "freed slot should be reused first")
	assert.NotEqual(t, h1, h2, "reallocated slot must carry a new generation")

	assert.False(t, r.Live(h1), "stale handle reported live")
	assert.Nil(t, r.Collider(h1))
	assert.False(t, r.Free(h1), "freeing a stale handle must not release the new owner")
	assert.True(t, r.Live(h2))
}

func TestRegistry_DoubleFree(t *testing.T) {
	r := NewRegistry(2)
	h := r.Allocate()
	assert.True(t, r.Free(h))
	assert.False(t, r.Free(h))
	assert.Equal(t, 0, r.InUse())
	assert.False(t, r.Free(Handle{}))
}

func TestRegistry_DistinctSlots(t *testing.T) {
	r := NewRegistry(DefaultCapacity)
	seen := make(map[int]bool)
	for i := 0; i < DefaultCapacity; i++ {
		h := r.Allocate()
		require.False(t, seen[h.Index()], "slot %d handed out twice", h.Index())
		seen[h.Index()] = true
	}
	assert.Equal(t, DefaultCapacity, r.InUse())
}

func TestRegistry_PendingSlotIsNotFree(t *testing.T) {
	r := NewRegistry(2)
	a := r.Allocate()
	b := r.Allocate()
	assert.NotEqual(t, a.Index(), b.Index(), "unconfigured slot was handed out again")

	// Pending slots are invisible to queries
	q := NewQuery(vmath.Vec3{}, vmath.Vec3{}, vmath.FromFloat(1), MaskAll)
	assert.False(t, r.Test(q, true, nil))
	assert.False(t, r.Test(q, false, nil))
}

func TestRegistry_ExhaustionPanics(t *testing.T) {
	r := NewRegistry(3)
	for i := 0; i < 3; i++ {
		r.Allocate()
	}
	assert.PanicsWithValue(t,
		"collision: registry exhausted, all 3 colliders in use; "+
			"obstacle colliders + enemy tanks + player must not exceed capacity",
		func() { r.Allocate() })
}

func TestRegistry_ResetStalesHandles(t *testing.T) {
	r := NewRegistry(2)
	h := place(r, 0, 0, 1, MaskTankObstacle)
	r.Reset()
	assert.Equal(t, 0, r.InUse())
	assert.False(t, r.Live(h))

	h2 := r.Allocate()
	assert.Equal(t, h.Index(), h2.Index())
	assert.False(t, r.Free(h))
	assert.True(t, r.Live(h2))
}

func TestCollider_ConfigureZeroMaskPanics(t *testing.T) {
	var c Collider
	assert.Panics(t, func() {
		c.Configure(vmath.Identity3D(), vmath.FromInt(1), 0, 0)
	})
}

func TestCollider_RadiusIsCircumscribed(t *testing.T) {
	var c Collider
	c.Configure(vmath.Pose3D(vmath.V3(2, 5, -3), 0), vmath.FromInt(1), MaskEnemy, 0)
	assert.InDelta(t, 1.41421356, vmath.ToFloat(c.Radius()), 1e-8)
	assert.LessOrEqual(t, vmath.ToFloat(c.Radius()), 1.4142135624)
	assert.Equal(t, vmath.V2(2, -3), c.Position(), "height must be dropped")
}

func TestRegistry_MaskIndependence(t *testing.T) {
	r := NewRegistry(4)
	place(r, 0, 0, 1, MaskTankObstacle)
	place(r, 0, 0, 1, MaskEnemy)

	q := NewQuery(vmath.Vec3{}, vmath.V3(-3, 0, 0), 0, MaskProjectileObstacle|MaskPlayer)
	var out Contact
	assert.False(t, r.Test(q, true, nil))
	assert.False(t, r.Test(q, true, &out))
	assert.False(t, r.Test(q, false, nil))
	assert.False(t, r.Test(q, false, &out))
	assert.Equal(t, Contact{}, out, "contact written without a match")
}

func TestRegistry_CirclesOnlyPicksClosest(t *testing.T) {
	r := NewRegistry(4)
	far := place(r, 0, 0, 0.5, MaskTankObstacle)
	near := place(r, 0.5, 0, 0.5, MaskTankObstacle)

	q := NewQuery(vmath.V3(0.6, 0, 0), vmath.Vec3{}, vmath.FromFloat(0.1), MaskTankObstacle)
	var out Contact
	require.True(t, r.Test(q, true, &out))
	assert.Equal(t, near, out.Collider)
	assert.NotEqual(t, far, out.Collider)
	assert.Equal(t, MaskTankObstacle, out.Mask)
	assert.Equal(t, vmath.Vec3{}, out.Pos, "circles-only mode must not compute geometry")
}

func TestRegistry_CirclesOnlyFirstWinsTies(t *testing.T) {
	r := NewRegistry(4)
	first := place(r, 1, 1, 0.5, MaskTankObstacle)
	place(r, 1, 1, 0.5, MaskTankObstacle|MaskProjectileObstacle)

	q := NewQuery(vmath.V3(1, 0, 1), vmath.Vec3{}, 0, MaskTankObstacle)
	var out Contact
	require.True(t, r.Test(q, true, &out))
	assert.Equal(t, first, out.Collider)
}

func TestRegistry_CircleTestAfterManhattan(t *testing.T) {
	r := NewRegistry(2)
	place(r, 0, 0, 1, MaskTankObstacle)

	// Diagonal offset inside both bounds
	q := NewQuery(vmath.V3(1, 0, 1), vmath.Vec3{}, vmath.FromFloat(0.1), MaskTankObstacle)
	assert.True(t, r.Test(q, true, nil))

	// Within the Manhattan bound of 2 but beyond the circumscribed radius
	q = NewQuery(vmath.V3(1.9, 0, 0), vmath.Vec3{}, 0, MaskTankObstacle)
	assert.False(t, r.Test(q, true, nil))
	assert.False(t, r.Test(q, false, nil))
}

func TestRegistry_AppendStateTracksLiveSlots(t *testing.T) {
	r := NewRegistry(4)
	assert.Empty(t, r.AppendState(nil))

	h := place(r, 3, 4, 1, MaskEnemy)
	one := r.AppendState(nil)
	assert.Len(t, one, 4*3+8*4)

	r.Collider(h).Configure(vmath.Pose3D(vmath.V3(3.5, 0, 4), 0), vmath.FromInt(1), MaskEnemy, 0)
	assert.NotEqual(t, one, r.AppendState(nil))

	r.Free(h)
	assert.Empty(t, r.AppendState(nil))
}

func TestRegistry_EachSkipsPending(t *testing.T) {
	r := NewRegistry(4)
	a := place(r, 0, 0, 1, MaskTankObstacle)
	r.Allocate()
	b := place(r, 4, 0, 1, MaskEnemy)

	var got []Handle
	r.Each(func(h Handle, c *Collider) { got = append(got, h) })
	assert.Equal(t, []Handle{a, b}, got)
}

func TestMask_String(t *testing.T) {
	assert.Equal(t, "none", Mask(0).String())
	assert.Equal(t, "pending", maskPending.String())
	assert.Equal(t, "ProjectileObstacle|Enemy", MaskProjectileObstacle.Union(MaskEnemy).String())
	assert.True(t, MaskAll.Has(MaskPlayer|MaskEnemy))
	assert.False(t, MaskPlayer.Has(MaskPlayer|MaskEnemy))
	assert.False(t, MaskPlayer.Intersects(MaskEnemy))
}
