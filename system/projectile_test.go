package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/space-tanks/collision"
	"github.com/lixenwraith/space-tanks/constant"
	"github.com/lixenwraith/space-tanks/event"
	"github.com/lixenwraith/space-tanks/parameter"
	"github.com/lixenwraith/space-tanks/vmath"
)

func TestProjectile_HitsObstacleFace(t *testing.T) {
	ctx := newTestContext(8)
	wall := staticCollider(ctx.Registry, 2, 0, 0.5, collision.MaskProjectileObstacle, 0)
	particles := NewParticleSystem(ctx, parameter.MaxParticles)
	ps := NewProjectileSystem(ctx, parameter.MaxProjectiles, particles)

	require.True(t, ps.Fire(0, vmath.Pose3D(vmath.V3(0, 0.625, 0), 0), collision.MaskProjectileObstacle))
	assert.False(t, ps.Fire(0, vmath.Identity3D(), collision.MaskProjectileObstacle), "slot busy")

	n := stepUntil(ctx, ps, parameter.ProjectileLifeTicks, func() bool { return !ps.Active(0) })
	require.Positive(t, n, "projectile never stopped")

	events := ctx.drain()
	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, event.EventImpactObstacle, ev.Type)
	assert.Equal(t, wall, ev.Collider)
	assert.Equal(t, 0, ev.Owner)
	assert.InDelta(t, 1.5, vmath.ToFloat(ev.Pos.X), 1e-6)
	assert.InDelta(t, 0.625, vmath.ToFloat(ev.Pos.Y), 1e-9)
	assert.InDelta(t, -1, vmath.ToFloat(ev.Normal.X), 1e-9)
	assert.Equal(t, parameter.ProjectileBurstCount, particles.Len())
	assert.Equal(t, int64(n), ctx.Queries)
}

func TestProjectile_Expires(t *testing.T) {
	ctx := newTestContext(4)
	ps := NewProjectileSystem(ctx, parameter.MaxProjectiles, nil)
	require.True(t, ps.Fire(2, vmath.Identity3D(), collision.MaskProjectileObstacle))

	n := stepUntil(ctx, ps, 1000, func() bool { return !ps.Active(2) })
	assert.Equal(t, parameter.ProjectileLifeTicks, n)

	events := ctx.drain()
	require.Len(t, events, 1)
	assert.Equal(t, event.EventProjectileExpired, events[0].Type)
	assert.Equal(t, 2, events[0].Owner)
	// Last translate happened on the tick before expiry
	want := vmath.ToFloat(constant.ProjectileStep) * float64(parameter.ProjectileLifeTicks-1)
	assert.InDelta(t, want, vmath.ToFloat(events[0].Pos.X), 1e-6)
}

func TestProjectile_FireOutOfRangePanics(t *testing.T) {
	ps := NewProjectileSystem(newTestContext(1), 2, nil)
	assert.Panics(t, func() { ps.Fire(2, vmath.Identity3D(), collision.MaskEnemy) })
}

func TestProjectile_MaskFiltersOwnSide(t *testing.T) {
	ctx := newTestContext(4)
	// Enemy body in the path of an enemy shot: ignored
	staticCollider(ctx.Registry, 2, 0, 0.5, collision.MaskEnemy, 0)
	ps := NewProjectileSystem(ctx, parameter.MaxProjectiles, nil)
	ps.Fire(1, vmath.Identity3D(), collision.MaskProjectileObstacle|collision.MaskPlayer)

	stepUntil(ctx, ps, parameter.ProjectileLifeTicks, func() bool { return !ps.Active(1) })
	events := ctx.drain()
	require.Len(t, events, 1)
	assert.Equal(t, event.EventProjectileExpired, events[0].Type)
}

func TestProjectile_DestroysTank(t *testing.T) {
	ctx := newTestContext(8)
	debris := &countingDebris{}
	tanks := NewTankSystem(ctx, parameter.MaxEnemyTanks, 0, 16, &recordingShooter{}, fixedTarget{}, debris)
	require.True(t, tanks.Activate(0))
	tank := tanks.Get(0)
	tank.Pose = vmath.Pose3D(vmath.V3(3, 0.625, 0), 0)
	tanks.configure(tank)
	handle := tank.Collider

	particles := NewParticleSystem(ctx, parameter.MaxParticles)
	ps := NewProjectileSystem(ctx, parameter.MaxProjectiles, particles)
	ps.SetTargets(tanks, nil)
	ps.Fire(0, vmath.Pose3D(vmath.V3(0, 0.625, 0), 0), collision.MaskProjectileObstacle|collision.MaskEnemy)

	require.Positive(t, stepUntil(ctx, ps, parameter.ProjectileLifeTicks, func() bool { return !ps.Active(0) }))
	events := ctx.drain()
	require.Len(t, events, 1)
	assert.Equal(t, event.EventTankDestroyed, events[0].Type)
	assert.Equal(t, 0, events[0].Target)
	assert.InDelta(t, 2.7, vmath.ToFloat(events[0].Pos.X), 1e-6)
	assert.Equal(t, vmath.Sin(constant.EnemySurfaceAngle), events[0].Normal.Y)

	assert.Equal(t, BehaviourDead, tank.Behaviour)
	assert.False(t, ctx.Registry.Live(handle), "wreck must release its collider")
	assert.Len(t, debris.bursts, 1)
	assert.Equal(t, parameter.ProjectileBurstCount, particles.Len())

	_, again := tanks.DestroyByCollider(handle)
	assert.False(t, again, "stale handle destroyed a tank twice")
}

func TestProjectile_HitsPlayer(t *testing.T) {
	ctx := newTestContext(8)
	shooter := &recordingShooter{}
	player := NewPlayerSystem(ctx, shooter)
	player.Reset()

	ps := NewProjectileSystem(ctx, parameter.MaxProjectiles, nil)
	ps.SetTargets(nil, player)
	ps.Fire(1, vmath.Pose3D(vmath.V3(0, 0.625, 0), 0), collision.MaskProjectileObstacle|collision.MaskPlayer)

	require.Positive(t, stepUntil(ctx, ps, parameter.ProjectileLifeTicks, func() bool { return !ps.Active(1) }))
	events := ctx.drain()
	require.Len(t, events, 1)
	assert.Equal(t, event.EventPlayerHit, events[0].Type)
	assert.Equal(t, player.Collider(), events[0].Collider)
	assert.Equal(t, 1, player.Hits())
	assert.InDelta(t, 3.7, vmath.ToFloat(events[0].Pos.X), 1e-6)
}
