package game

import (
	"github.com/lixenwraith/space-tanks/event"
	"github.com/lixenwraith/space-tanks/status"
)

// Stats are cumulative counters since the last Reset plus current occupancy
type Stats struct {
	Tick       int64
	Queries    int64
	Impacts    int
	Kills      int
	PlayerHits int
	Expired    int
	Respawns   int

	Colliders   int
	TanksAlive  int
	Projectiles int
	Particles   int
}

func (s *Stats) record(ev event.GameEvent) {
	switch ev.Type {
	case event.EventImpactObstacle:
		s.Impacts++
	case event.EventTankDestroyed:
		s.Impacts++
		s.Kills++
	case event.EventPlayerHit:
		s.Impacts++
		s.PlayerHits++
	case event.EventProjectileExpired:
		s.Expired++
	case event.EventTankRespawned:
		s.Respawns++
	}
}

func (w *World) refreshStats() {
	s := &w.stats
	s.Tick = w.ctx.Tick
	s.Queries = w.ctx.Queries
	s.Colliders = w.ctx.Registry.InUse()
	s.TanksAlive = w.tanks.Alive()
	s.Projectiles = w.projectiles.Len()
	s.Particles = w.particles.Len()
}

func (w *World) Stats() Stats {
	return w.stats
}

// Publish copies the counters into reg for display on another goroutine
func (s Stats) Publish(reg *status.Registry) {
	reg.Ints.Get("sim.tick").Store(s.Tick)
	reg.Ints.Get("sim.queries").Store(s.Queries)
	reg.Ints.Get("sim.colliders").Store(int64(s.Colliders))
	reg.Ints.Get("hits.impacts").Store(int64(s.Impacts))
	reg.Ints.Get("hits.kills").Store(int64(s.Kills))
	reg.Ints.Get("hits.player").Store(int64(s.PlayerHits))
	reg.Ints.Get("entity.tanks").Store(int64(s.TanksAlive))
	reg.Ints.Get("entity.projectiles").Store(int64(s.Projectiles))
	reg.Ints.Get("entity.particles").Store(int64(s.Particles))
}
