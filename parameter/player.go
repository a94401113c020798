package parameter

// Player motion, per second unless noted
const (
	PlayerYawSpeedMaxRadians = 1.0
	PlayerYawAccelRadians    = 0.01
	PlayerSpeedMaxFloat      = 2.5
	PlayerAccelFloat         = 0.02

	PlayerSpawnXFloat   = 4.0
	PlayerSpawnZFloat   = 0.0
	PlayerSpawnYawTurns = 0.75

	PlayerProjectileSlot = 0
)

// Player footprint, so enemy shots can land
const (
	PlayerColliderHalfFloat    = 0.3
	PlayerColliderSurfaceAngle = 0.3
)
