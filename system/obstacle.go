package system

import (
	"github.com/lixenwraith/space-tanks/arena"
	"github.com/lixenwraith/space-tanks/collision"
	"github.com/lixenwraith/space-tanks/vmath"
)

// Obstacle is one static instance placed from the arena layout
type Obstacle struct {
	Position vmath.Vec3
	Type     *arena.ObstacleType

	// Tank is always allocated; Projectile is zero when Tank also stops projectiles or the type lets shots pass
	Tank       collision.Handle
	Projectile collision.Handle
}

// ObstacleSystem owns the static colliders; they are configured once and never move
type ObstacleSystem struct {
	ctx       *Context
	layout    *arena.Arena
	obstacles []Obstacle
}

func NewObstacleSystem(ctx *Context, layout *arena.Arena) *ObstacleSystem {
	return &ObstacleSystem{ctx: ctx, layout: layout}
}

func (s *ObstacleSystem) Name() string { return "obstacle" }

// SetLayout swaps the arena; takes effect on the next Reset
func (s *ObstacleSystem) SetLayout(layout *arena.Arena) {
	s.layout = layout
}

// Reset releases any previous colliders and builds the layout
func (s *ObstacleSystem) Reset() {
	reg := s.ctx.Registry
	for _, o := range s.obstacles {
		reg.Free(o.Tank)
		reg.Free(o.Projectile)
	}
	s.obstacles = s.obstacles[:0]

	pose := vmath.Identity3D()
	for _, inst := range s.layout.Obstacles {
		typ := s.layout.TypeOf(inst)
		if typ == nil {
			continue
		}
		o := Obstacle{
			Position: vmath.V3(inst.X, typ.ScaleY*0.625, inst.Z),
			Type:     typ,
		}
		pose.SetTranslation(o.Position)

		mask := collision.MaskTankObstacle
		if typ.SharedCollider() {
			mask = mask.Union(collision.MaskProjectileObstacle)
		}
		o.Tank = reg.Allocate()
		reg.Collider(o.Tank).Configure(pose, vmath.FromFloat(typ.TankRadius), mask, 0)

		if typ.Colliders() == 2 {
			o.Projectile = reg.Allocate()
			reg.Collider(o.Projectile).Configure(pose, vmath.FromFloat(typ.ProjectileRadius),
				collision.MaskProjectileObstacle, vmath.FromRadians(typ.SurfaceAngle))
		}
		s.obstacles = append(s.obstacles, o)
	}
}

// Update is a no-op: obstacle transforms never change
func (s *ObstacleSystem) Update() {}

func (s *ObstacleSystem) Obstacles() []Obstacle {
	return s.obstacles
}
