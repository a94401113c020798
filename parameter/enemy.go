package parameter

// Enemy tank behaviour
const (
	MaxEnemyTanks     = 4
	InitialEnemyTanks = 1

	// Phase lengths in seconds
	EnemyTurnSeconds = 6.0
	EnemyMoveSeconds = 1.5
	EnemyDeadSeconds = 4.0

	EnemyTurnTicks = int(EnemyTurnSeconds * TicksPerSecond)
	EnemyMoveTicks = int(EnemyMoveSeconds * TicksPerSecond)
	EnemyDeadTicks = int(EnemyDeadSeconds * TicksPerSecond)

	// EnemyRotationRadians is turn rate per second while aiming
	EnemyRotationRadians = 0.3

	// EnemyAimToleranceRadians is the yaw error under which the tank fires
	EnemyAimToleranceRadians = 3.14159265358979 * 0.001

	EnemySpeedFloat = 2.0

	EnemyColliderHalfFloat    = 0.3
	EnemyColliderSurfaceAngle = 0.3

	// EnemySpawnRangeFloat bounds respawn X and Z to [-range, range)
	EnemySpawnRangeFloat = 16.0

	// EnemyRadarRadiansPerSecond spins the dish drawn on top of each tank
	EnemyRadarRadiansPerSecond = 3.0
)

// Debris thrown when a tank is destroyed
const (
	DebrisChunks         = 5
	DebrisSpeedFloat     = 5.0
	DebrisSpinRadiansMax = 0.2
)
