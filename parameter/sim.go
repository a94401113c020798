package parameter

// Simulation clock
const (
	// TicksPerSecond is the fixed simulation rate; every per-second tunable is divided by it
	TicksPerSecond = 240

	// PerTick converts a per-second rate into a per-tick step
	PerTick = 1.0 / TicksPerSecond
)

// Collision capacity budget
const (
	// ColliderCapacity is the registry size: 32 obstacle colliders + MaxEnemyTanks + player, with headroom
	ColliderCapacity = 48

	// PlayerColliders is the player's own footprint
	PlayerColliders = 1
)

// EntityHeightFloat is the Y of tanks, the player and projectiles
const EntityHeightFloat = 0.625

// Event queue
const (
	// EventQueueSize must be a power of two
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)
