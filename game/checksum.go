package game

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/lixenwraith/space-tanks/system"
	"github.com/lixenwraith/space-tanks/vmath"
)

// Checksum hashes the simulation state: collider slots, entity state and the RNG
// Two worlds fed the same seed and inputs produce the same sequence of checksums
func (w *World) Checksum() uint64 {
	b := w.scratch[:0]
	b = binary.LittleEndian.AppendUint64(b, uint64(w.ctx.Tick))
	b = binary.LittleEndian.AppendUint64(b, w.ctx.Rand.State())
	b = w.ctx.Registry.AppendState(b)

	p := w.player
	b = appendVec3(b, p.Position())
	b = binary.LittleEndian.AppendUint64(b, uint64(p.Yaw()))
	b = binary.LittleEndian.AppendUint64(b, uint64(p.Speed()))

	w.tanks.Each(func(idx int, t *system.Tank) {
		b = binary.LittleEndian.AppendUint32(b, uint32(idx))
		b = append(b, byte(t.Behaviour))
		b = binary.LittleEndian.AppendUint64(b, uint64(t.Yaw))
		b = appendVec3(b, t.Pose.T)
	})
	w.projectiles.Each(func(slot int, pr *system.Projectile) {
		b = binary.LittleEndian.AppendUint32(b, uint32(slot))
		b = appendVec3(b, pr.Pose.T)
	})
	w.particles.Each(func(pt *system.Particle) {
		b = appendVec3(b, pt.Pos)
	})
	w.debris.Each(func(c *system.Chunk) {
		b = appendVec3(b, c.Pos)
	})

	w.scratch = b
	return xxhash.Sum64(b)
}

func appendVec3(b []byte, v vmath.Vec3) []byte {
	b = binary.LittleEndian.AppendUint64(b, uint64(v.X))
	b = binary.LittleEndian.AppendUint64(b, uint64(v.Y))
	return binary.LittleEndian.AppendUint64(b, uint64(v.Z))
}
