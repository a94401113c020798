package event

import (
	"github.com/lixenwraith/space-tanks/collision"
	"github.com/lixenwraith/space-tanks/vmath"
)

// GameEvent is a flat value so the queue never allocates; unused fields stay zero
type GameEvent struct {
	Type     EventType
	Tick     int64
	Pos      vmath.Vec3
	Normal   vmath.Vec3
	Collider collision.Handle
	Owner    int // projectile slot
	Target   int // tank slot
}
