package system

import (
	"github.com/lixenwraith/space-tanks/constant"
	"github.com/lixenwraith/space-tanks/pool"
	"github.com/lixenwraith/space-tanks/vmath"
)

// Chunk is a tumbling piece of a destroyed tank
type Chunk struct {
	body
	Shape  int
	Angles vmath.Vec3 // accumulated rotation per axis, in turns
	spin   vmath.Vec3
}

// DebrisSystem has one slot per chunk shape; a new burst restarts every chunk
type DebrisSystem struct {
	ctx  *Context
	pool *pool.Pool[Chunk]
}

func NewDebrisSystem(ctx *Context, chunks int) *DebrisSystem {
	return &DebrisSystem{ctx: ctx, pool: pool.New[Chunk](chunks)}
}

func (s *DebrisSystem) Name() string { return "debris" }

func (s *DebrisSystem) Reset() {
	s.pool.Clear(nil)
}

func (s *DebrisSystem) Update() {
	s.pool.Each(func(idx int, c *Chunk) {
		if !c.step() {
			s.pool.Despawn(idx)
			return
		}
		c.Angles = vmath.V3Add(c.Angles, c.spin)
	})
}

// Burst throws every chunk from pos, upward and outward
func (s *DebrisSystem) Burst(pos vmath.Vec3) {
	rng := s.ctx.Rand
	for i := 0; i < s.pool.Cap(); i++ {
		s.pool.Despawn(i)
		c, _ := s.pool.SpawnAt(i)
		c.Shape = i

		vel := vmath.V3Scale(vmath.Vec3{X: rng.Signed(), Y: rng.Unit(), Z: rng.Signed()}, constant.DebrisSpeed)
		c.launch(rng, pos, vel)
		c.spin = vmath.V3Scale(vmath.Vec3{X: rng.Signed(), Y: rng.Signed(), Z: rng.Signed()}, constant.DebrisSpinMax)
	}
}

func (s *DebrisSystem) Len() int {
	return s.pool.Len()
}

func (s *DebrisSystem) Each(fn func(c *Chunk)) {
	s.pool.Each(func(_ int, c *Chunk) { fn(c) })
}
