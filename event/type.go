package event

// EventType identifies what a simulation event reports
type EventType int

const (
	// EventImpactObstacle: a projectile stopped on an obstacle face
	// Payload: Pos, Normal, Collider, Owner (projectile slot)
	EventImpactObstacle EventType = iota

	// EventTankDestroyed: a projectile struck a live enemy tank
	// Payload: Pos, Normal, Collider, Owner, Target (tank slot)
	EventTankDestroyed

	// EventPlayerHit: an enemy projectile struck the player
	// Payload: Pos, Normal, Collider, Owner
	EventPlayerHit

	// EventTankRespawned: a dead tank finished its wreck phase and reappeared
	// Payload: Pos, Target
	EventTankRespawned

	// EventProjectileExpired: a projectile ran out of lifetime without hitting anything
	// Payload: Pos, Owner
	EventProjectileExpired
)

var typeNames = map[EventType]string{
	EventImpactObstacle:    "ImpactObstacle",
	EventTankDestroyed:     "TankDestroyed",
	EventPlayerHit:         "PlayerHit",
	EventTankRespawned:     "TankRespawned",
	EventProjectileExpired: "ProjectileExpired",
}

func (t EventType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "Unknown"
}

// IsImpact reports whether the event carries a contact position and normal
func (t EventType) IsImpact() bool {
	return t == EventImpactObstacle || t == EventTankDestroyed || t == EventPlayerHit
}
