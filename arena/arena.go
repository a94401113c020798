// Package arena describes the static obstacle layout and the entity budgets of a level
package arena

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/space-tanks/parameter"
)

var (
	ErrUnknownType = errors.New("unknown obstacle type")
	ErrInvalid     = errors.New("invalid value")
	ErrCapacity    = errors.New("collider capacity exceeded")
)

// ObstacleType is shared geometry for a family of obstacles
// TankRadius and ProjectileRadius are collider half widths in world units
type ObstacleType struct {
	Name             string  `yaml:"name"`
	Shape            string  `yaml:"shape"`
	ScaleXZ          float64 `yaml:"scale_xz"`
	ScaleY           float64 `yaml:"scale_y"`
	TankRadius       float64 `yaml:"tank_radius"`
	ProjectileRadius float64 `yaml:"projectile_radius"`
	SurfaceAngle     float64 `yaml:"surface_angle"` // radians
}

// SharedCollider reports whether one collider serves both tanks and projectiles
func (t *ObstacleType) SharedCollider() bool {
	return t.TankRadius == t.ProjectileRadius
}

// Colliders is the number of registry slots one instance of this type occupies
func (t *ObstacleType) Colliders() int {
	if !t.SharedCollider() && t.ProjectileRadius > 0 {
		return 2
	}
	return 1
}

type Obstacle struct {
	X    float64 `yaml:"x"`
	Z    float64 `yaml:"z"`
	Type string  `yaml:"type"`
}

type Capacity struct {
	Colliders    int `yaml:"colliders"`
	MaxTanks     int `yaml:"max_tanks"`
	InitialTanks int `yaml:"initial_tanks"`
	Particles    int `yaml:"particles"`
	Debris       int `yaml:"debris"`
}

type PlayerSpawn struct {
	X        float64 `yaml:"x"`
	Z        float64 `yaml:"z"`
	YawTurns float64 `yaml:"yaw_turns"`
}

// Arena is a complete level description
type Arena struct {
	Name           string         `yaml:"name"`
	Types          []ObstacleType `yaml:"obstacle_types"`
	Obstacles      []Obstacle     `yaml:"obstacles"`
	Capacity       Capacity       `yaml:"capacity"`
	Player         PlayerSpawn    `yaml:"player"`
	TankSpawnRange float64        `yaml:"tank_spawn_range"`

	types map[string]int
}

// Default returns the embedded arena
func Default() (*Arena, error) {
	a, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("arena: %s: %w", DefaultName, err)
	}
	return a, nil
}

// MustDefault is Default for callers that treat a broken embedded arena as a build error
func MustDefault() *Arena {
	a, err := Default()
	if err != nil {
		panic(err)
	}
	return a
}

// Load reads and validates an arena file
func Load(path string) (*Arena, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("arena: read %s: %w", path, err)
	}
	a, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("arena: %s: %w", path, err)
	}
	log.Printf("arena: loaded %s (%d obstacles, %d/%d colliders)", path, len(a.Obstacles), a.ColliderBudget(), a.Capacity.Colliders)
	return a, nil
}

// Parse decodes YAML and validates the result; missing capacities fall back to the built-in tunables
func Parse(data []byte) (*Arena, error) {
	var a Arena
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	a.applyDefaults()
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

func (a *Arena) applyDefaults() {
	if a.Capacity.Colliders == 0 {
		a.Capacity.Colliders = parameter.ColliderCapacity
	}
	if a.Capacity.MaxTanks == 0 {
		a.Capacity.MaxTanks = parameter.MaxEnemyTanks
	}
	if a.Capacity.InitialTanks == 0 {
		a.Capacity.InitialTanks = parameter.InitialEnemyTanks
	}
	if a.Capacity.Particles == 0 {
		a.Capacity.Particles = parameter.MaxParticles
	}
	if a.Capacity.Debris == 0 {
		a.Capacity.Debris = parameter.DebrisChunks
	}
	if a.TankSpawnRange == 0 {
		a.TankSpawnRange = parameter.EnemySpawnRangeFloat
	}
}

// Validate checks type references, value ranges and the collider budget
// obstacle colliders + max tanks + player must fit the registry, since running out of slots mid-game is fatal
func (a *Arena) Validate() error {
	a.types = make(map[string]int, len(a.Types))
	for i := range a.Types {
		t := &a.Types[i]
		if t.Name == "" {
			return fmt.Errorf("obstacle type %d: %w: empty name", i, ErrInvalid)
		}
		if _, dup := a.types[t.Name]; dup {
			return fmt.Errorf("obstacle type %q: %w: duplicate name", t.Name, ErrInvalid)
		}
		if t.TankRadius <= 0 {
			return fmt.Errorf("obstacle type %q: %w: tank_radius %v must be positive", t.Name, ErrInvalid, t.TankRadius)
		}
		if t.ProjectileRadius < 0 {
			return fmt.Errorf("obstacle type %q: %w: projectile_radius %v is negative", t.Name, ErrInvalid, t.ProjectileRadius)
		}
		a.types[t.Name] = i
	}

	for i, o := range a.Obstacles {
		if _, ok := a.types[o.Type]; !ok {
			return fmt.Errorf("obstacle %d: %w: %q", i, ErrUnknownType, o.Type)
		}
		if o.X < -1024 || o.X > 1024 || o.Z < -1024 || o.Z > 1024 {
			return fmt.Errorf("obstacle %d: %w: position (%v, %v) outside +-1024", i, ErrInvalid, o.X, o.Z)
		}
	}

	c := a.Capacity
	if c.MaxTanks < 0 || c.MaxTanks > parameter.MaxEnemyTanks {
		return fmt.Errorf("capacity: %w: max_tanks %d not in [0, %d]", ErrInvalid, c.MaxTanks, parameter.MaxEnemyTanks)
	}
	if c.InitialTanks < 0 || c.InitialTanks > c.MaxTanks {
		return fmt.Errorf("capacity: %w: initial_tanks %d not in [0, %d]", ErrInvalid, c.InitialTanks, c.MaxTanks)
	}
	if c.Particles < 0 || c.Debris < 0 {
		return fmt.Errorf("capacity: %w: negative particle or debris count", ErrInvalid)
	}
	if budget := a.ColliderBudget(); budget > c.Colliders {
		return fmt.Errorf("%w: %d obstacle + %d tank + %d player colliders = %d > %d",
			ErrCapacity, a.ObstacleColliders(), c.MaxTanks, parameter.PlayerColliders, budget, c.Colliders)
	}
	return nil
}

// TypeOf returns the obstacle type referenced by o
func (a *Arena) TypeOf(o Obstacle) *ObstacleType {
	if a.types == nil {
		if err := a.Validate(); err != nil {
			return nil
		}
	}
	i, ok := a.types[o.Type]
	if !ok {
		return nil
	}
	return &a.Types[i]
}

// ObstacleColliders counts the static colliders the layout needs
func (a *Arena) ObstacleColliders() int {
	n := 0
	for _, o := range a.Obstacles {
		for i := range a.Types {
			if a.Types[i].Name == o.Type {
				n += a.Types[i].Colliders()
				break
			}
		}
	}
	return n
}

// ColliderBudget is the worst-case simultaneous collider count
func (a *Arena) ColliderBudget() int {
	return a.ObstacleColliders() + a.Capacity.MaxTanks + parameter.PlayerColliders
}
