package system

import (
	"github.com/lixenwraith/space-tanks/constant"
	"github.com/lixenwraith/space-tanks/parameter"
	"github.com/lixenwraith/space-tanks/pool"
	"github.com/lixenwraith/space-tanks/vmath"
)

var worldUp = vmath.Vec3{Y: vmath.Scale}

// body is the ballistic state shared by impact particles and wreck debris
type body struct {
	Pos        vmath.Vec3
	Vel        vmath.Vec3
	Brightness int64

	ticks           int
	startTicks      int
	startBrightness int64
}

// launch draws a lifetime in [0.25, 1) s and starts the body at pos
func (b *body) launch(rng *vmath.FastRand, pos, vel vmath.Vec3) {
	relLife := constant.ParticleLifeMin + vmath.Mul(rng.Unit(), constant.ParticleLifeSpan)
	b.startTicks = max(vmath.ToInt(relLife*parameter.TicksPerSecond), 1)
	b.startBrightness = vmath.Mul(relLife, constant.ParticleBrightness)
	b.ticks = b.startTicks
	b.Brightness = b.startBrightness
	b.Pos = pos
	b.Vel = vel
}

// step integrates one tick and reports whether the body is still alive
func (b *body) step() bool {
	b.ticks--
	if b.ticks <= 0 {
		return false
	}
	b.Vel.Y -= constant.ParticleGravity
	b.Vel = vmath.V3Scale(b.Vel, constant.ParticleDamping)
	b.Pos = vmath.V3Add(b.Pos, b.Vel)
	if b.Pos.Y < 0 {
		b.Pos.Y = 0
		b.Vel = vmath.V3MulComponents(b.Vel, constant.ParticleBounce)
	}
	b.Brightness = vmath.MulDiv(b.startBrightness, int64(b.ticks), int64(b.startTicks))
	return true
}

// Particle is a single spark from a projectile impact
type Particle struct {
	body
}

// ParticleSystem sprays sparks from impact points
// A full pool drops the remainder of a burst
type ParticleSystem struct {
	ctx  *Context
	pool *pool.Pool[Particle]
}

func NewParticleSystem(ctx *Context, capacity int) *ParticleSystem {
	return &ParticleSystem{ctx: ctx, pool: pool.New[Particle](capacity)}
}

func (s *ParticleSystem) Name() string { return "particle" }

func (s *ParticleSystem) Reset() {
	s.pool.Clear(nil)
}

func (s *ParticleSystem) Update() {
	s.pool.Each(func(idx int, p *Particle) {
		if !p.step() {
			s.pool.Despawn(idx)
		}
	})
}

// Spawn emits up to count particles in a frame whose Y axis is the surface normal
// A quarter of the tangential impact velocity carries into the spray; the normal component is dropped
func (s *ParticleSystem) Spawn(pos, normal, impactVelocity vmath.Vec3, count int) int {
	basis := surfaceBasis(normal)
	toSurface := basis.OrthonormalInvert()
	carried := toSurface.RotateVector(impactVelocity)
	carried.Y = 0
	carried = vmath.V3Scale(carried, constant.ParticleImpactShare)

	rng := s.ctx.Rand
	spawned := 0
	for spawned < count {
		_, p, ok := s.pool.Spawn()
		if !ok {
			break
		}
		v := vmath.Vec3{
			X: rng.Signed(),
			Y: vmath.Mul(rng.Unit(), constant.ParticleSprayUp),
			Z: rng.Signed(),
		}
		v = vmath.V3Add(vmath.V3Scale(v, constant.ParticleSpraySpeed), carried)
		p.launch(rng, pos, basis.RotateVector(v))
		spawned++
	}
	return spawned
}

func (s *ParticleSystem) Len() int {
	return s.pool.Len()
}

func (s *ParticleSystem) Each(fn func(p *Particle)) {
	s.pool.Each(func(_ int, p *Particle) { fn(p) })
}

// surfaceBasis builds a right-handed orthonormal frame with M[1] along normal
// The tangent axes are arbitrary but perpendicular
func surfaceBasis(normal vmath.Vec3) vmath.Transform3D {
	var t vmath.Transform3D
	t.M[1] = normal
	t.M[0] = vmath.V3Normalize(vmath.V3Cross(normal, worldUp))
	if t.M[0] == (vmath.Vec3{}) {
		t.M[0] = vmath.Vec3{X: vmath.Scale}
	}
	t.M[2] = vmath.V3Cross(t.M[0], normal)
	return t
}
