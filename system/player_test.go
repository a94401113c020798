package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/space-tanks/collision"
	"github.com/lixenwraith/space-tanks/constant"
	"github.com/lixenwraith/space-tanks/parameter"
	"github.com/lixenwraith/space-tanks/vmath"
)

func newPlayerFixture(t *testing.T) (*Context, *PlayerSystem, *recordingShooter) {
	t.Helper()
	ctx := newTestContext(8)
	shooter := &recordingShooter{busy: map[int]bool{}}
	p := NewPlayerSystem(ctx, shooter)
	p.Reset()
	return ctx, p, shooter
}

func TestPlayer_ResetOwnsOneCollider(t *testing.T) {
	ctx, p, _ := newPlayerFixture(t)
	first := p.Collider()
	require.True(t, ctx.Registry.Live(first))
	assert.Equal(t, collision.MaskPlayer, ctx.Registry.Collider(first).Mask())
	assert.Equal(t, constant.PlayerSpawnPosition, p.Position())
	assert.Equal(t, constant.PlayerSpawnYaw, p.Yaw())

	p.Reset()
	assert.Equal(t, 1, ctx.Registry.InUse())
	assert.False(t, ctx.Registry.Live(first))
}

func TestPlayer_ThrustMovesForward(t *testing.T) {
	_, p, _ := newPlayerFixture(t)
	start := p.Position()
	forward := p.Pose().M[0]

	p.SetInput(PlayerInput{Thrust: true})
	for i := 0; i < 10; i++ {
		p.Update()
	}
	assert.Equal(t, 10*constant.PlayerAccel, p.Speed())

	moved := vmath.V3Sub(p.Position(), start)
	// Accumulated speed 1+2+...+10 accel steps
	dist := 55 * constant.PlayerAccel
	assert.InDelta(t, vmath.ToFloat(vmath.Mul(forward.X, dist)), vmath.ToFloat(moved.X), 1e-6)
	assert.InDelta(t, vmath.ToFloat(vmath.Mul(forward.Z, dist)), vmath.ToFloat(moved.Z), 1e-6)
	assert.Equal(t, constant.EntityHeight, p.Position().Y)

	p.SetInput(PlayerInput{})
	for i := 0; i < 10; i++ {
		p.Update()
	}
	assert.Zero(t, p.Speed())
}

func TestPlayer_SpeedClamped(t *testing.T) {
	_, p, _ := newPlayerFixture(t)
	p.SetInput(PlayerInput{Thrust: true})
	for i := 0; i < 1000; i++ {
		p.Update()
		if p.Blocked() > 0 {
			t.Fatal("open arena should never block")
		}
	}
	assert.Equal(t, constant.PlayerSpeedMax, p.Speed())
}

func TestPlayer_YawAccelAndDamping(t *testing.T) {
	_, p, _ := newPlayerFixture(t)
	yaw0 := p.Yaw()

	p.SetInput(PlayerInput{Left: true})
	for i := 0; i < 3; i++ {
		p.Update()
	}
	assert.Equal(t, vmath.WrapAngle(yaw0-6*constant.PlayerYawAccel), p.Yaw())

	p.SetInput(PlayerInput{})
	for i := 0; i < 3; i++ {
		p.Update()
	}
	// Speed decays -2a, -a, 0
	assert.Equal(t, vmath.WrapAngle(yaw0-9*constant.PlayerYawAccel), p.Yaw())
	p.Update()
	assert.Equal(t, vmath.WrapAngle(yaw0-9*constant.PlayerYawAccel), p.Yaw())
}

func TestPlayer_FireIsEdgeTriggered(t *testing.T) {
	_, p, shooter := newPlayerFixture(t)

	p.SetInput(PlayerInput{Fire: true})
	p.Update()
	p.Update()
	require.Len(t, shooter.shots, 1)
	s := shooter.shots[0]
	assert.Equal(t, parameter.PlayerProjectileSlot, s.slot)
	assert.Equal(t, collision.MaskProjectileObstacle|collision.MaskEnemy, s.mask)
	assert.Equal(t, p.Pose(), s.pose)

	shooter.busy[parameter.PlayerProjectileSlot] = true
	p.SetInput(PlayerInput{Fire: true})
	p.Update()
	assert.Len(t, shooter.shots, 1)
}

func TestPlayer_BlockedByObstacle(t *testing.T) {
	ctx, p, _ := newPlayerFixture(t)
	spawn := p.Position()
	// Just ahead along the spawn heading (-X)
	staticCollider(ctx.Registry, vmath.ToFloat(spawn.X)-0.8, vmath.ToFloat(spawn.Z), 0.5, collision.MaskTankObstacle, 0)

	p.SetInput(PlayerInput{Thrust: true})
	p.Update()
	assert.Equal(t, spawn, p.Position())
	assert.Zero(t, p.Speed())
	assert.Equal(t, 1, p.Blocked())
}

func TestPlayer_Hit(t *testing.T) {
	ctx, p, _ := newPlayerFixture(t)
	other := ctx.Registry.Allocate()

	assert.False(t, p.Hit(collision.Handle{}))
	assert.False(t, p.Hit(other))
	assert.True(t, p.Hit(p.Collider()))
	assert.Equal(t, 1, p.Hits())
}
