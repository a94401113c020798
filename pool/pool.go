// Package pool provides the fixed-capacity slot array shared by every entity kind
package pool

// Pool is a fixed array of T with an active flag per slot
// Slots never move, so indices double as stable entity identifiers (projectile owner slots rely on this)
type Pool[T any] struct {
	items  []T
	active []bool
	count  int
}

// New creates a pool of capacity inactive slots
func New[T any](capacity int) *Pool[T] {
	return &Pool[T]{
		items:  make([]T, capacity),
		active: make([]bool, capacity),
	}
}

func (p *Pool[T]) Cap() int {
	return len(p.items)
}

// Len returns the number of active slots
func (p *Pool[T]) Len() int {
	return p.count
}

// Spawn activates the first inactive slot with zeroed state
// Returns ok=false when every slot is active; callers drop the spawn
func (p *Pool[T]) Spawn() (int, *T, bool) {
	for i := range p.active {
		if !p.active[i] {
			return i, p.activate(i), true
		}
	}
	return -1, nil, false
}

// SpawnAt activates a specific slot; false if out of range or already active
func (p *Pool[T]) SpawnAt(idx int) (*T, bool) {
	if idx < 0 || idx >= len(p.items) || p.active[idx] {
		return nil, false
	}
	return p.activate(idx), true
}

func (p *Pool[T]) activate(idx int) *T {
	var zero T
	p.items[idx] = zero
	p.active[idx] = true
	p.count++
	return &p.items[idx]
}

// Despawn marks the slot inactive, state is left until the next spawn
func (p *Pool[T]) Despawn(idx int) bool {
	if !p.Active(idx) {
		return false
	}
	p.active[idx] = false
	p.count--
	return true
}

func (p *Pool[T]) Active(idx int) bool {
	return idx >= 0 && idx < len(p.active) && p.active[idx]
}

// Get returns the slot state, nil when inactive
func (p *Pool[T]) Get(idx int) *T {
	if !p.Active(idx) {
		return nil
	}
	return &p.items[idx]
}

// Each visits active slots in index order; fn may despawn the slot it is given
func (p *Pool[T]) Each(fn func(idx int, item *T)) {
	for i := range p.items {
		if p.active[i] {
			fn(i, &p.items[i])
		}
	}
}

// Clear despawns every active slot, calling fn first so owned resources can be released
func (p *Pool[T]) Clear(fn func(idx int, item *T)) {
	for i := range p.items {
		if !p.active[i] {
			continue
		}
		if fn != nil {
			fn(i, &p.items[i])
		}
		p.active[i] = false
	}
	p.count = 0
}
