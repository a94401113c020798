package system

import (
	"github.com/lixenwraith/space-tanks/collision"
	"github.com/lixenwraith/space-tanks/constant"
	"github.com/lixenwraith/space-tanks/event"
	"github.com/lixenwraith/space-tanks/parameter"
	"github.com/lixenwraith/space-tanks/pool"
	"github.com/lixenwraith/space-tanks/vmath"
)

// Behaviour is the enemy tank phase
type Behaviour uint8

const (
	BehaviourTurnToPlayer Behaviour = iota
	BehaviourMove
	BehaviourDead
)

var behaviourTicks = [...]int{
	BehaviourTurnToPlayer: parameter.EnemyTurnTicks,
	BehaviourMove:         parameter.EnemyMoveTicks,
	BehaviourDead:         parameter.EnemyDeadTicks,
}

func (b Behaviour) String() string {
	switch b {
	case BehaviourTurnToPlayer:
		return "turn"
	case BehaviourMove:
		return "move"
	case BehaviourDead:
		return "dead"
	}
	return "unknown"
}

// respawnAttempts bounds the search for a spawn point clear of obstacles
const respawnAttempts = 8

// Tank is an enemy; its collider exists only while it is alive
type Tank struct {
	Pose      vmath.Transform3D
	Yaw       int64
	RadarYaw  int64
	Behaviour Behaviour
	Collider  collision.Handle

	ticksLeft int
}

// TankSystem runs the enemy behaviour machine: turn toward the player and fire when aligned,
// drive forward for a while, and after being destroyed wait as a wreck before respawning
type TankSystem struct {
	ctx        *Context
	pool       *pool.Pool[Tank]
	shooter    Shooter
	target     Target
	debris     DebrisEmitter
	initial    int
	spawnRange int64
}

func NewTankSystem(ctx *Context, capacity, initial int, spawnRange float64, shooter Shooter, target Target, debris DebrisEmitter) *TankSystem {
	return &TankSystem{
		ctx:        ctx,
		pool:       pool.New[Tank](capacity),
		shooter:    shooter,
		target:     target,
		debris:     debris,
		initial:    initial,
		spawnRange: vmath.FromFloat(spawnRange),
	}
}

func (s *TankSystem) Name() string { return "tank" }

// SetSpawnRange bounds later respawns to [-r, r) on both axes
func (s *TankSystem) SetSpawnRange(r float64) {
	s.spawnRange = vmath.FromFloat(r)
}

// Reset despawns every tank, freeing colliders, and activates the initial ones
func (s *TankSystem) Reset() {
	s.pool.Clear(func(_ int, t *Tank) {
		s.ctx.Registry.Free(t.Collider)
	})
	for i := 0; i < s.initial; i++ {
		s.Activate(i)
	}
}

// Activate brings tank slot idx into play; false if out of range or already active
func (s *TankSystem) Activate(idx int) bool {
	t, ok := s.pool.SpawnAt(idx)
	if !ok {
		return false
	}
	s.respawn(t)
	return true
}

// ActivateNext activates the first idle slot
func (s *TankSystem) ActivateNext() (int, bool) {
	for i := 0; i < s.pool.Cap(); i++ {
		if s.Activate(i) {
			return i, true
		}
	}
	return -1, false
}

// Deactivate removes a tank from play entirely
func (s *TankSystem) Deactivate(idx int) bool {
	t := s.pool.Get(idx)
	if t == nil {
		return false
	}
	s.ctx.Registry.Free(t.Collider)
	t.Collider = collision.Handle{}
	return s.pool.Despawn(idx)
}

func (s *TankSystem) respawn(t *Tank) {
	rng := s.ctx.Rand
	var pos vmath.Vec3
	for attempt := 0; attempt < respawnAttempts; attempt++ {
		pos = vmath.Vec3{
			X: vmath.Mul(rng.Signed(), s.spawnRange),
			Y: constant.EntityHeight,
			Z: vmath.Mul(rng.Signed(), s.spawnRange),
		}
		if !s.ctx.overlaps(pos, constant.EnemyColliderHalf, collision.MaskTankObstacle|collision.MaskPlayer) {
			break
		}
	}
	t.Yaw = rng.Unit()
	t.RadarYaw = 0
	t.Pose = vmath.Pose3D(pos, t.Yaw)
	t.Behaviour = BehaviourTurnToPlayer
	t.ticksLeft = behaviourTicks[BehaviourTurnToPlayer]
	t.Collider = s.ctx.Registry.Allocate()
	s.configure(t)
}

func (s *TankSystem) configure(t *Tank) {
	s.ctx.Registry.Collider(t.Collider).Configure(t.Pose, constant.EnemyColliderHalf, collision.MaskEnemy, constant.EnemySurfaceAngle)
}

func (s *TankSystem) Update() {
	s.pool.Each(s.advance)
}

func (s *TankSystem) advance(idx int, t *Tank) {
	t.RadarYaw = vmath.WrapAngle(t.RadarYaw + constant.EnemyRadarRotation)

	t.ticksLeft--
	if t.ticksLeft <= 0 {
		switch t.Behaviour {
		case BehaviourTurnToPlayer:
			t.Behaviour = BehaviourMove
		case BehaviourMove:
			t.Behaviour = BehaviourTurnToPlayer
		case BehaviourDead:
			s.respawn(t)
			s.ctx.emit(event.GameEvent{Type: event.EventTankRespawned, Pos: t.Pose.T, Target: idx})
		}
		t.ticksLeft = behaviourTicks[t.Behaviour]
	}

	switch t.Behaviour {
	case BehaviourTurnToPlayer:
		diff := s.aimError(t)
		tol := constant.EnemyAimTolerance
		if diff > tol {
			t.Yaw = vmath.WrapAngle(t.Yaw + constant.EnemyRotation)
		} else if diff < -tol {
			t.Yaw = vmath.WrapAngle(t.Yaw - constant.EnemyRotation)
		}
		t.Pose.SetRotationY(t.Yaw)
		slot := idx + 1
		if vmath.Abs(diff) < tol && !s.shooter.Active(slot) {
			s.shooter.Fire(slot, t.Pose, collision.MaskProjectileObstacle|collision.MaskPlayer)
		}
	case BehaviourMove:
		step := t.Pose.RotateVector(vmath.Vec3{X: constant.EnemySpeed})
		next := vmath.V3Add(t.Pose.T, step)
		if !s.ctx.overlaps(next, constant.EnemyColliderHalf, collision.MaskTankObstacle|collision.MaskPlayer) {
			t.Pose.SetTranslation(next)
		}
	case BehaviourDead:
		return
	}
	s.configure(t)
}

// aimError is the signed yaw change that points the tank's X axis at the target
func (s *TankSystem) aimError(t *Tank) int64 {
	d := vmath.V3Sub(s.target.Position(), t.Pose.T)
	want := vmath.Atan2(-d.Z, d.X)
	return vmath.AngleDiff(t.Yaw, want)
}

// DestroyByCollider wrecks the live tank owning h; wrecks and unknown handles are ignored
func (s *TankSystem) DestroyByCollider(h collision.Handle) (int, bool) {
	if h.IsZero() {
		return -1, false
	}
	for i := 0; i < s.pool.Cap(); i++ {
		t := s.pool.Get(i)
		if t == nil || t.Behaviour == BehaviourDead || t.Collider != h {
			continue
		}
		s.destroy(t)
		return i, true
	}
	return -1, false
}

func (s *TankSystem) destroy(t *Tank) {
	t.Behaviour = BehaviourDead
	t.ticksLeft = behaviourTicks[BehaviourDead]
	s.ctx.Registry.Free(t.Collider)
	t.Collider = collision.Handle{}
	if s.debris != nil {
		s.debris.Burst(t.Pose.T)
	}
}

func (s *TankSystem) Get(idx int) *Tank {
	return s.pool.Get(idx)
}

func (s *TankSystem) Len() int {
	return s.pool.Len()
}

// Alive counts active tanks that are not wrecks
func (s *TankSystem) Alive() int {
	n := 0
	s.pool.Each(func(_ int, t *Tank) {
		if t.Behaviour != BehaviourDead {
			n++
		}
	})
	return n
}

func (s *TankSystem) Each(fn func(idx int, t *Tank)) {
	s.pool.Each(fn)
}
