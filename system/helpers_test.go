package system

import (
	"github.com/lixenwraith/space-tanks/collision"
	"github.com/lixenwraith/space-tanks/event"
	"github.com/lixenwraith/space-tanks/vmath"
)

func newTestContext(capacity int) *Context {
	return &Context{
		Registry: collision.NewRegistry(capacity),
		Rand:     vmath.NewFastRand(1234),
		Events:   event.NewEventQueue(),
	}
}

func (c *Context) drain() []event.GameEvent {
	return c.Events.Consume(nil)
}

type shot struct {
	slot int
	pose vmath.Transform3D
	mask collision.Mask
}

// recordingShooter accepts every shot and remembers it; slots stay free
type recordingShooter struct {
	shots []shot
	busy  map[int]bool
}

func (r *recordingShooter) Fire(slot int, pose vmath.Transform3D, mask collision.Mask) bool {
	r.shots = append(r.shots, shot{slot, pose, mask})
	return true
}

func (r *recordingShooter) Active(slot int) bool {
	return r.busy[slot]
}

type fixedTarget struct {
	pos vmath.Vec3
}

func (f fixedTarget) Position() vmath.Vec3 { return f.pos }

type countingDebris struct {
	bursts []vmath.Vec3
}

func (d *countingDebris) Burst(pos vmath.Vec3) {
	d.bursts = append(d.bursts, pos)
}

func staticCollider(reg *collision.Registry, x, z, half float64, mask collision.Mask, surface int64) collision.Handle {
	h := reg.Allocate()
	reg.Collider(h).Configure(vmath.Pose3D(vmath.V3(x, 0, z), 0), vmath.FromFloat(half), mask, surface)
	return h
}

func stepUntil(ctx *Context, sys System, limit int, done func() bool) int {
	for i := 1; i <= limit; i++ {
		ctx.Tick++
		sys.Update()
		if done() {
			return i
		}
	}
	return -1
}
