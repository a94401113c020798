package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/space-tanks/constant"
	"github.com/lixenwraith/space-tanks/parameter"
	"github.com/lixenwraith/space-tanks/vmath"
)

var up = vmath.Vec3{Y: vmath.Scale}

func TestParticle_SpawnDropsOverflow(t *testing.T) {
	ps := NewParticleSystem(newTestContext(1), 10)
	assert.Equal(t, 10, ps.Spawn(vmath.Vec3{}, up, vmath.Vec3{}, parameter.ProjectileBurstCount))
	assert.Equal(t, 10, ps.Len())
	assert.Zero(t, ps.Spawn(vmath.Vec3{}, up, vmath.Vec3{}, 5))
}

func TestParticle_LifetimeAndGround(t *testing.T) {
	ps := NewParticleSystem(newTestContext(1), parameter.MaxParticles)
	ps.Spawn(vmath.V3(0, 0.625, 0), up, vmath.Vec3{}, parameter.MaxParticles)

	for tick := 0; tick < parameter.TicksPerSecond+1; tick++ {
		ps.Update()
		ps.Each(func(p *Particle) {
			if p.Pos.Y < 0 {
				t.Fatalf("particle below ground: %v", p.Pos)
			}
			if p.Brightness < 0 || p.Brightness > constant.ParticleBrightness {
				t.Fatalf("brightness out of range: %d", p.Brightness)
			}
		})
	}
	assert.Zero(t, ps.Len(), "every particle lives at most one second")
}

func TestParticle_CarriesTangentialVelocity(t *testing.T) {
	ps := NewParticleSystem(newTestContext(3), parameter.MaxParticles)
	ps.Spawn(vmath.Vec3{}, up, vmath.V3(0.4, 0, 0), 32)
	ps.Each(func(p *Particle) {
		// A quarter of 0.4 dominates the spray
		assert.Greater(t, p.Vel.X, vmath.FromFloat(0.08))
	})
}

func TestParticle_DropsNormalVelocity(t *testing.T) {
	ps := NewParticleSystem(newTestContext(5), parameter.MaxParticles)
	ps.Spawn(vmath.Vec3{}, up, vmath.V3(0, -0.4, 0), 32)
	ps.Each(func(p *Particle) {
		assert.GreaterOrEqual(t, p.Vel.Y, int64(0))
		assert.LessOrEqual(t, vmath.Abs(p.Vel.X), constant.ParticleSpraySpeed)
	})
}

func TestSurfaceBasis_Orthonormal(t *testing.T) {
	sin, cos := vmath.SinCos(vmath.FromRadians(0.3))
	normals := []vmath.Vec3{
		up,
		{X: vmath.Scale},
		{X: -vmath.Scale},
		{Z: vmath.Scale},
		{X: cos, Y: sin},
		{Y: sin, Z: -cos},
	}
	const eps = vmath.Scale >> 16
	for _, n := range normals {
		b := surfaceBasis(n)
		assert.Equal(t, n, b.M[1])
		for i := 0; i < 3; i++ {
			assert.InDelta(t, float64(vmath.Scale), float64(vmath.V3Mag(b.M[i])), eps, "axis %d of %v", i, n)
			for j := i + 1; j < 3; j++ {
				assert.InDelta(t, 0, float64(vmath.V3Dot(b.M[i], b.M[j])), eps, "axes %d,%d of %v", i, j, n)
			}
		}
		// Same handedness as SetRotationY poses: M0 × M1 = M2
		cross := vmath.V3Cross(b.M[0], b.M[1])
		assert.InDelta(t, float64(b.M[2].X), float64(cross.X), eps, "handedness of %v", n)
		assert.InDelta(t, float64(b.M[2].Y), float64(cross.Y), eps, "handedness of %v", n)
		assert.InDelta(t, float64(b.M[2].Z), float64(cross.Z), eps, "handedness of %v", n)
	}
}

func TestDebris_Burst(t *testing.T) {
	ds := NewDebrisSystem(newTestContext(9), parameter.DebrisChunks)
	ds.Burst(vmath.V3(1, 0.625, 2))
	assert.Equal(t, parameter.DebrisChunks, ds.Len())

	shapes := map[int]bool{}
	ds.Each(func(c *Chunk) { shapes[c.Shape] = true })
	assert.Len(t, shapes, parameter.DebrisChunks)

	ds.Update()
	ds.Burst(vmath.Vec3{})
	assert.Equal(t, parameter.DebrisChunks, ds.Len(), "second burst restarts the same chunks")
	ds.Each(func(c *Chunk) { assert.Equal(t, vmath.Vec3{}, c.Pos) })

	for tick := 0; tick < parameter.TicksPerSecond+1; tick++ {
		ds.Update()
	}
	assert.Zero(t, ds.Len())
}
