package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entity struct {
	ticks int
	owned int
}

func TestPool_SpawnLinearScan(t *testing.T) {
	p := New[entity](3)
	for want := 0; want < 3; want++ {
		idx, e, ok := p.Spawn()
		require.True(t, ok)
		assert.Equal(t, want, idx)
		e.ticks = 10 + want
	}
	_, _, ok := p.Spawn()
	assert.False(t, ok, "exhausted pool must refuse, not abort")
	assert.Equal(t, 3, p.Len())

	require.True(t, p.Despawn(1))
	idx, e, ok := p.Spawn()
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, entity{}, *e, "respawned slot must start zeroed")
}

func TestPool_SpawnAt(t *testing.T) {
	p := New[entity](5)
	e, ok := p.SpawnAt(3)
	require.True(t, ok)
	e.ticks = 7

	_, ok = p.SpawnAt(3)
	assert.False(t, ok, "slot already active")
	_, ok = p.SpawnAt(5)
	assert.False(t, ok, "out of range")
	_, ok = p.SpawnAt(-1)
	assert.False(t, ok)

	assert.Equal(t, 7, p.Get(3).ticks)
	assert.Nil(t, p.Get(0))
	assert.Equal(t, 1, p.Len())
}

func TestPool_DespawnInactive(t *testing.T) {
	p := New[entity](2)
	assert.False(t, p.Despawn(0))
	assert.False(t, p.Despawn(9))
	assert.Equal(t, 0, p.Len())
}

func TestPool_EachAllowsDespawn(t *testing.T) {
	p := New[entity](4)
	for i := 0; i < 4; i++ {
		_, e, _ := p.Spawn()
		e.ticks = i
	}
	p.Despawn(2)

	var visited []int
	p.Each(func(idx int, e *entity) {
		visited = append(visited, idx)
		if e.ticks == 1 {
			p.Despawn(idx)
		}
	})
	assert.Equal(t, []int{0, 1, 3}, visited)
	assert.Equal(t, 2, p.Len())
	assert.False(t, p.Active(1))
}

func TestPool_ClearReleasesOwned(t *testing.T) {
	p := New[entity](3)
	for i := 0; i < 3; i++ {
		_, e, _ := p.Spawn()
		e.owned = 100 + i
	}
	p.Despawn(0)

	var released []int
	p.Clear(func(idx int, e *entity) { released = append(released, e.owned) })
	assert.Equal(t, []int{101, 102}, released)
	assert.Equal(t, 0, p.Len())
	for i := 0; i < p.Cap(); i++ {
		assert.False(t, p.Active(i))
	}

	p.Clear(nil)
	assert.Equal(t, 0, p.Len())
}
