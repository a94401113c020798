package system

import (
	"github.com/lixenwraith/space-tanks/collision"
	"github.com/lixenwraith/space-tanks/constant"
	"github.com/lixenwraith/space-tanks/parameter"
	"github.com/lixenwraith/space-tanks/vmath"
)

// PlayerInput is the control state for one tick
// Fire is edge-triggered: set only on the tick the button went down
type PlayerInput struct {
	Left   bool
	Right  bool
	Thrust bool
	Fire   bool
}

// PlayerSystem drives the player tank
// The view frame looks down its +Z axis while tank models face +X, so shots use a rotated copy of it
type PlayerSystem struct {
	ctx      *Context
	shooter  Shooter
	input    PlayerInput
	view     vmath.Transform3D
	yaw      int64
	yawSpeed int64
	speed    int64
	spawn    vmath.Vec3
	spawnYaw int64
	collider collision.Handle
	hits     int
	blocked  int
}

func NewPlayerSystem(ctx *Context, shooter Shooter) *PlayerSystem {
	return &PlayerSystem{
		ctx:      ctx,
		shooter:  shooter,
		spawn:    constant.PlayerSpawnPosition,
		spawnYaw: constant.PlayerSpawnYaw,
	}
}

func (s *PlayerSystem) Name() string { return "player" }

// SetSpawn overrides the spawn point; height is forced to the entity plane
func (s *PlayerSystem) SetSpawn(x, z float64, yawTurns float64) {
	s.spawn = vmath.V3(x, parameter.EntityHeightFloat, z)
	s.spawnYaw = vmath.WrapAngle(vmath.FromFloat(yawTurns))
}

func (s *PlayerSystem) Reset() {
	s.ctx.Registry.Free(s.collider)
	s.yaw = s.spawnYaw
	s.yawSpeed = 0
	s.speed = 0
	s.hits = 0
	s.blocked = 0
	s.input = PlayerInput{}
	s.view = vmath.Pose3D(s.spawn, s.yaw)
	s.collider = s.ctx.Registry.Allocate()
	s.configure()
}

// SetInput latches the controls for the next Update
func (s *PlayerSystem) SetInput(in PlayerInput) {
	s.input = in
}

func (s *PlayerSystem) Update() {
	in := s.input
	s.input.Fire = false

	accel := constant.PlayerYawAccel
	maxYaw := constant.PlayerYawSpeedMax
	switch {
	case in.Left && !in.Right:
		s.yawSpeed = max(s.yawSpeed-accel, -maxYaw)
	case in.Right && !in.Left:
		s.yawSpeed = min(s.yawSpeed+accel, maxYaw)
	case in.Left && in.Right:
		s.yawSpeed = vmath.Clamp(s.yawSpeed, -maxYaw, maxYaw)
	case s.yawSpeed > 0:
		s.yawSpeed = max(s.yawSpeed-accel, 0)
	default:
		s.yawSpeed = min(s.yawSpeed+accel, 0)
	}
	s.yaw = vmath.WrapAngle(s.yaw + s.yawSpeed)
	s.view.SetRotationY(s.yaw)

	if in.Thrust {
		s.speed = min(s.speed+constant.PlayerAccel, constant.PlayerSpeedMax)
	} else {
		s.speed = max(s.speed-constant.PlayerAccel, 0)
	}
	if s.speed > 0 {
		next := vmath.V3Add(s.view.T, vmath.V3Scale(s.view.M[2], s.speed))
		next.Y = constant.EntityHeight
		if s.ctx.overlaps(next, constant.PlayerColliderHalf, collision.MaskTankObstacle|collision.MaskEnemy) {
			s.speed = 0
			s.blocked++
		} else {
			s.view.SetTranslation(next)
		}
	}

	if in.Fire && !s.shooter.Active(parameter.PlayerProjectileSlot) {
		s.shooter.Fire(parameter.PlayerProjectileSlot, s.Pose(), collision.MaskProjectileObstacle|collision.MaskEnemy)
	}
	s.configure()
}

// Pose is the model frame: X forward along the view direction
func (s *PlayerSystem) Pose() vmath.Transform3D {
	return vmath.Transform3D{
		M: [3]vmath.Vec3{s.view.M[2], s.view.M[1], vmath.V3Neg(s.view.M[0])},
		T: s.view.T,
	}
}

func (s *PlayerSystem) configure() {
	s.ctx.Registry.Collider(s.collider).Configure(s.Pose(), constant.PlayerColliderHalf, collision.MaskPlayer, constant.PlayerSurfaceAngle)
}

func (s *PlayerSystem) Position() vmath.Vec3 {
	return s.view.T
}

// Yaw is the view heading in turns
func (s *PlayerSystem) Yaw() int64 {
	return s.yaw
}

func (s *PlayerSystem) Speed() int64 {
	return s.speed
}

// Hit counts a strike when h is the player's collider
func (s *PlayerSystem) Hit(h collision.Handle) bool {
	if h.IsZero() || h != s.collider {
		return false
	}
	s.hits++
	return true
}

func (s *PlayerSystem) Hits() int {
	return s.hits
}

// Blocked counts ticks where movement was vetoed by a collider
func (s *PlayerSystem) Blocked() int {
	return s.blocked
}

func (s *PlayerSystem) Collider() collision.Handle {
	return s.collider
}
