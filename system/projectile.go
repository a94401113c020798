package system

import (
	"fmt"

	"github.com/lixenwraith/space-tanks/collision"
	"github.com/lixenwraith/space-tanks/constant"
	"github.com/lixenwraith/space-tanks/event"
	"github.com/lixenwraith/space-tanks/parameter"
	"github.com/lixenwraith/space-tanks/pool"
	"github.com/lixenwraith/space-tanks/vmath"
)

// Projectile is a shell travelling along its pose's X axis
type Projectile struct {
	Pose  vmath.Transform3D
	Step  vmath.Vec3
	Mask  collision.Mask
	ticks int
}

// ProjectileSystem owns one slot per shooter: slot 0 is the player, slot i+1 enemy tank i
// Projectiles have no collider of their own; each tick they sweep a query along their step
type ProjectileSystem struct {
	ctx       *Context
	pool      *pool.Pool[Projectile]
	particles ParticleSpawner
	tanks     TankDestroyer
	player    PlayerHitter
}

func NewProjectileSystem(ctx *Context, slots int, particles ParticleSpawner) *ProjectileSystem {
	return &ProjectileSystem{
		ctx:       ctx,
		pool:      pool.New[Projectile](slots),
		particles: particles,
	}
}

// SetTargets wires the receivers of enemy and player hits; either may be nil
func (s *ProjectileSystem) SetTargets(tanks TankDestroyer, player PlayerHitter) {
	s.tanks = tanks
	s.player = player
}

func (s *ProjectileSystem) Name() string { return "projectile" }

func (s *ProjectileSystem) Reset() {
	s.pool.Clear(nil)
}

// Fire launches from pose in slot; false while the slot's previous shot is still alive
func (s *ProjectileSystem) Fire(slot int, pose vmath.Transform3D, mask collision.Mask) bool {
	if slot < 0 || slot >= s.pool.Cap() {
		panic(fmt.Sprintf("projectile: slot %d outside [0, %d)", slot, s.pool.Cap()))
	}
	p, ok := s.pool.SpawnAt(slot)
	if !ok {
		return false
	}
	p.Pose = pose
	p.Step = pose.RotateVector(vmath.Vec3{X: constant.ProjectileStep})
	p.Mask = mask
	p.ticks = parameter.ProjectileLifeTicks
	return true
}

func (s *ProjectileSystem) Active(slot int) bool {
	return s.pool.Active(slot)
}

func (s *ProjectileSystem) Get(slot int) *Projectile {
	return s.pool.Get(slot)
}

func (s *ProjectileSystem) Update() {
	s.pool.Each(s.advance)
}

func (s *ProjectileSystem) advance(slot int, p *Projectile) {
	p.ticks--
	if p.ticks <= 0 {
		s.pool.Despawn(slot)
		s.ctx.emit(event.GameEvent{Type: event.EventProjectileExpired, Pos: p.Pose.T, Owner: slot})
		return
	}

	p.Pose.Translate(p.Step)
	q := collision.NewQuery(p.Pose.T, p.Step, constant.ProjectileRadius, p.Mask)
	var contact collision.Contact
	s.ctx.Queries++
	if !s.ctx.Registry.Test(q, false, &contact) {
		return
	}

	s.pool.Despawn(slot)
	contact.Pos.Y = p.Pose.T.Y
	ev := event.GameEvent{
		Type:     event.EventImpactObstacle,
		Pos:      contact.Pos,
		Normal:   contact.Normal,
		Collider: contact.Collider,
		Owner:    slot,
		Target:   -1,
	}

	struck := contact.Mask
	if struck.Intersects(collision.MaskProjectileObstacle|collision.MaskEnemy) && s.particles != nil {
		s.particles.Spawn(contact.Pos, contact.Normal, p.Step, parameter.ProjectileBurstCount)
	}
	if struck.Has(collision.MaskEnemy) && s.tanks != nil {
		if tank, ok := s.tanks.DestroyByCollider(contact.Collider); ok {
			ev.Type = event.EventTankDestroyed
			ev.Target = tank
		}
	}
	if struck.Has(collision.MaskPlayer) && s.player != nil && s.player.Hit(contact.Collider) {
		ev.Type = event.EventPlayerHit
	}
	s.ctx.emit(ev)
}

func (s *ProjectileSystem) Len() int {
	return s.pool.Len()
}

func (s *ProjectileSystem) Each(fn func(slot int, p *Projectile)) {
	s.pool.Each(fn)
}
