package parameter

// Projectiles: slot 0 belongs to the player, slot i+1 to enemy tank i
const (
	MaxProjectiles = 1 + MaxEnemyTanks

	ProjectileSpeedFloat  = 8.0
	ProjectileLifeSeconds = 1.5
	ProjectileLifeTicks   = int(ProjectileLifeSeconds * TicksPerSecond)
	ProjectileRadiusFloat = 0.01
	ProjectileBurstCount  = 64
)
