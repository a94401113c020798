package collision

import (
	"encoding/binary"
	"fmt"
	"log"
)

// DefaultCapacity covers the default arena (32 obstacle colliders: 11 pyramids at two each, 10 boxes), 4 enemy tanks and the player with headroom
const DefaultCapacity = 48

// Handle identifies a registry slot at one point of its lifetime
// The zero Handle is never issued; a handle goes stale once its slot is freed and reallocated
type Handle struct {
	index int32
	gen   uint32
}

func (h Handle) Index() int {
	return int(h.index)
}

func (h Handle) IsZero() bool {
	return h.gen == 0
}

func (h Handle) String() string {
	if h.gen == 0 {
		return "Handle(nil)"
	}
	return fmt.Sprintf("Handle(%d#%d)", h.index, h.gen)
}

type slot struct {
	collider Collider
	gen      uint32
}

// Registry is a fixed-capacity pool of colliders
// Not safe for concurrent use; every caller runs inside the single simulation tick
type Registry struct {
	slots  []slot
	inUse  int
	logger *log.Logger
}

func NewRegistry(capacity int) *Registry {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Registry{slots: make([]slot, capacity)}
}

// SetLogger enables narrow-phase tracing; nil disables it
func (r *Registry) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Registry) Logger() *log.Logger {
	return r.logger
}

func (r *Registry) Capacity() int {
	return len(r.slots)
}

func (r *Registry) InUse() int {
	return r.inUse
}

// Reset frees every slot; outstanding handles become stale on their slot's next Allocate
func (r *Registry) Reset() {
	for i := range r.slots {
		r.slots[i].collider.mask = 0
	}
	r.inUse = 0
}

// Allocate claims the first free slot and marks it pending until Configure runs
// Running out of slots means the capacity arithmetic is wrong, which is unrecoverable
func (r *Registry) Allocate() Handle {
	for i := range r.slots {
		s := &r.slots[i]
		if s.collider.mask != 0 {
			continue
		}
		s.collider = Collider{mask: maskPending}
		s.gen++
		if s.gen == 0 {
			s.gen = 1
		}
		r.inUse++
		return Handle{index: int32(i), gen: s.gen}
	}
	panic(fmt.Sprintf("collision: registry exhausted, all %d colliders in use; "+
		"obstacle colliders + enemy tanks + player must not exceed capacity", len(r.slots)))
}

// Free releases the slot; stale or zero handles report false and change nothing
func (r *Registry) Free(h Handle) bool {
	s := r.lookup(h)
	if s == nil {
		return false
	}
	s.collider.mask = 0
	r.inUse--
	return true
}

// Collider returns the live collider behind h, nil for stale handles
func (r *Registry) Collider(h Handle) *Collider {
	s := r.lookup(h)
	if s == nil {
		return nil
	}
	return &s.collider
}

func (r *Registry) Live(h Handle) bool {
	return r.lookup(h) != nil
}

// Each visits configured colliders in slot order
func (r *Registry) Each(fn func(h Handle, c *Collider)) {
	for i := range r.slots {
		s := &r.slots[i]
		if !s.collider.configured() {
			continue
		}
		fn(Handle{index: int32(i), gen: s.gen}, &s.collider)
	}
}

// AppendState appends the geometry of every allocated slot in a fixed little-endian layout
func (r *Registry) AppendState(b []byte) []byte {
	for i := range r.slots {
		s := &r.slots[i]
		c := &s.collider
		if c.mask == 0 {
			continue
		}
		b = binary.LittleEndian.AppendUint32(b, uint32(i))
		b = binary.LittleEndian.AppendUint32(b, s.gen)
		b = binary.LittleEndian.AppendUint32(b, uint32(c.mask))
		b = binary.LittleEndian.AppendUint64(b, uint64(c.position.X))
		b = binary.LittleEndian.AppendUint64(b, uint64(c.position.Y))
		b = binary.LittleEndian.AppendUint64(b, uint64(c.halfBoxWidth))
		b = binary.LittleEndian.AppendUint64(b, uint64(c.surfaceAngle))
	}
	return b
}

func (r *Registry) lookup(h Handle) *slot {
	if h.gen == 0 || h.index < 0 || int(h.index) >= len(r.slots) {
		return nil
	}
	s := &r.slots[h.index]
	if s.gen != h.gen || s.collider.mask == 0 {
		return nil
	}
	return s
}

func (r *Registry) handleAt(i int) Handle {
	return Handle{index: int32(i), gen: r.slots[i].gen}
}
