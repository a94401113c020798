// Package system holds the entity kinds advanced once per simulation tick
package system

import (
	"github.com/lixenwraith/space-tanks/collision"
	"github.com/lixenwraith/space-tanks/event"
	"github.com/lixenwraith/space-tanks/vmath"
)

// System is one entity kind; the world calls Update for every system in a fixed order each tick
type System interface {
	Name() string
	Reset()
	Update()
}

// Context is the shared simulation state handed to every system
// All access happens on the simulation goroutine
type Context struct {
	Registry *collision.Registry
	Rand     *vmath.FastRand
	Events   *event.EventQueue
	Tick     int64

	// Queries counts Registry.Test calls issued by systems
	Queries int64
}

func (c *Context) emit(ev event.GameEvent) {
	ev.Tick = c.Tick
	c.Events.Push(ev)
}

// overlaps is the circles-only probe used to veto moves into blocking colliders
func (c *Context) overlaps(pos vmath.Vec3, radius int64, mask collision.Mask) bool {
	c.Queries++
	return c.Registry.Test(collision.NewQuery(pos, vmath.Vec3{}, radius, mask), true, nil)
}

// ParticleSpawner enqueues an impact burst
type ParticleSpawner interface {
	Spawn(pos, normal, impactVelocity vmath.Vec3, count int) int
}

// TankDestroyer deactivates the tank owning a struck collider, reporting its slot
type TankDestroyer interface {
	DestroyByCollider(h collision.Handle) (int, bool)
}

// PlayerHitter registers a hit when h is the player's collider
type PlayerHitter interface {
	Hit(h collision.Handle) bool
}

// Shooter owns the projectile slots
type Shooter interface {
	Fire(slot int, pose vmath.Transform3D, mask collision.Mask) bool
	Active(slot int) bool
}

// Target exposes the position enemy tanks aim at
type Target interface {
	Position() vmath.Vec3
}

// DebrisEmitter throws wreck chunks from a destroyed tank
type DebrisEmitter interface {
	Burst(pos vmath.Vec3)
}
