// Package game advances one arena at a fixed 240 Hz step
package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/space-tanks/arena"
	"github.com/lixenwraith/space-tanks/collision"
	"github.com/lixenwraith/space-tanks/event"
	"github.com/lixenwraith/space-tanks/system"
	"github.com/lixenwraith/space-tanks/vmath"
)

// ErrCapacityChanged rejects an in-place arena swap whose pool sizes differ
var ErrCapacityChanged = errors.New("capacity changed")

// Input is the player control state for one tick
type Input = system.PlayerInput

// World owns the collider registry and every entity system of one arena
// It is single-threaded: Tick, Reset and all accessors must be called from one goroutine
type World struct {
	arena *arena.Arena
	seed  uint64
	ctx   *system.Context

	obstacles   *system.ObstacleSystem
	player      *system.PlayerSystem
	tanks       *system.TankSystem
	projectiles *system.ProjectileSystem
	particles   *system.ParticleSystem
	debris      *system.DebrisSystem

	// Update order; obstacles first so Reset rebuilds static geometry before anything spawns
	systems []system.System

	events  []event.GameEvent
	impacts []event.GameEvent
	stats   Stats
	scratch []byte
}

// New builds a world for cfg and resets it; identical seeds and inputs replay identically
func New(cfg *arena.Arena, seed uint64) (*World, error) {
	if cfg == nil {
		return nil, fmt.Errorf("game: nil arena")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: arena %q: %w", cfg.Name, err)
	}

	c := cfg.Capacity
	ctx := &system.Context{
		Registry: collision.NewRegistry(c.Colliders),
		Rand:     vmath.NewFastRand(seed),
		Events:   event.NewEventQueue(),
	}

	w := &World{arena: cfg, seed: seed, ctx: ctx}
	w.particles = system.NewParticleSystem(ctx, c.Particles)
	// Slot 0 belongs to the player, slot i+1 to tank i
	w.projectiles = system.NewProjectileSystem(ctx, c.MaxTanks+1, w.particles)
	w.player = system.NewPlayerSystem(ctx, w.projectiles)
	w.player.SetSpawn(cfg.Player.X, cfg.Player.Z, cfg.Player.YawTurns)
	w.debris = system.NewDebrisSystem(ctx, c.Debris)
	w.tanks = system.NewTankSystem(ctx, c.MaxTanks, c.InitialTanks, cfg.TankSpawnRange, w.projectiles, w.player, w.debris)
	w.projectiles.SetTargets(w.tanks, w.player)
	w.obstacles = system.NewObstacleSystem(ctx, cfg)

	w.systems = []system.System{w.obstacles, w.player, w.tanks, w.projectiles, w.particles, w.debris}
	w.Reset()
	return w, nil
}

// Reset restarts the arena from the seed
func (w *World) Reset() {
	w.ctx.Registry.Reset()
	w.ctx.Events.Reset()
	*w.ctx.Rand = *vmath.NewFastRand(w.seed)
	w.ctx.Tick = 0
	w.ctx.Queries = 0
	for _, s := range w.systems {
		s.Reset()
	}
	w.events = w.events[:0]
	w.impacts = w.impacts[:0]
	w.stats = Stats{}
	w.refreshStats()
	log.Printf("game: reset arena %q seed %d, %d/%d colliders", w.arena.Name, w.seed, w.ctx.Registry.InUse(), w.ctx.Registry.Capacity())
}

// SetArena swaps the layout and spawn settings in place, then resets
// Pools keep their size, so a cfg with different capacities needs a new World
func (w *World) SetArena(cfg *arena.Arena) error {
	if cfg == nil {
		return fmt.Errorf("game: nil arena")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("game: arena %q: %w", cfg.Name, err)
	}
	if cfg.Capacity != w.arena.Capacity {
		return fmt.Errorf("game: arena %q: %w", cfg.Name, ErrCapacityChanged)
	}
	w.arena = cfg
	w.obstacles.SetLayout(cfg)
	w.player.SetSpawn(cfg.Player.X, cfg.Player.Z, cfg.Player.YawTurns)
	w.tanks.SetSpawnRange(cfg.TankSpawnRange)
	w.Reset()
	return nil
}

// Tick advances one step: player, tanks, projectiles, then particles and debris
func (w *World) Tick(in Input) {
	w.ctx.Tick++
	w.player.SetInput(in)
	for _, s := range w.systems {
		s.Update()
	}

	w.events = w.ctx.Events.Consume(w.events[:0])
	w.impacts = w.impacts[:0]
	for _, ev := range w.events {
		w.stats.record(ev)
		if ev.Type.IsImpact() {
			w.impacts = append(w.impacts, ev)
		}
	}
	w.refreshStats()
}

// Events returns every event of the last tick; valid until the next Tick
func (w *World) Events() []event.GameEvent {
	return w.events
}

// Impacts returns the projectile contacts of the last tick; valid until the next Tick
func (w *World) Impacts() []event.GameEvent {
	return w.impacts
}

// AddTank activates the next idle enemy slot
func (w *World) AddTank() (int, bool) {
	return w.tanks.ActivateNext()
}

// SetLogger routes collision narrow-phase tracing; nil disables it
func (w *World) SetLogger(l *log.Logger) {
	w.ctx.Registry.SetLogger(l)
}

func (w *World) Logger() *log.Logger {
	return w.ctx.Registry.Logger()
}

func (w *World) Arena() *arena.Arena                   { return w.arena }
func (w *World) Seed() uint64                          { return w.seed }
func (w *World) Registry() *collision.Registry         { return w.ctx.Registry }
func (w *World) Obstacles() []system.Obstacle          { return w.obstacles.Obstacles() }
func (w *World) Player() *system.PlayerSystem          { return w.player }
func (w *World) Tanks() *system.TankSystem             { return w.tanks }
func (w *World) Projectiles() *system.ProjectileSystem { return w.projectiles }
func (w *World) Particles() *system.ParticleSystem     { return w.particles }
func (w *World) Debris() *system.DebrisSystem          { return w.debris }
