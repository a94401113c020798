package constant

import (
	"github.com/lixenwraith/space-tanks/parameter"
	"github.com/lixenwraith/space-tanks/vmath"
)

// Pre-computed Q32.32 simulation constants, initialized once from the float tunables

var EntityHeight = vmath.FromFloat(parameter.EntityHeightFloat)

// Player
var (
	PlayerYawSpeedMax   = vmath.FromRadians(parameter.PlayerYawSpeedMaxRadians * parameter.PerTick)
	PlayerYawAccel      = vmath.FromRadians(parameter.PlayerYawAccelRadians * parameter.PerTick)
	PlayerSpeedMax      = vmath.FromFloat(parameter.PlayerSpeedMaxFloat * parameter.PerTick)
	PlayerAccel         = vmath.FromFloat(parameter.PlayerAccelFloat * parameter.PerTick)
	PlayerColliderHalf  = vmath.FromFloat(parameter.PlayerColliderHalfFloat)
	PlayerSurfaceAngle  = vmath.FromRadians(parameter.PlayerColliderSurfaceAngle)
	PlayerSpawnYaw      = vmath.FromFloat(parameter.PlayerSpawnYawTurns)
	PlayerSpawnPosition = vmath.V3(parameter.PlayerSpawnXFloat, parameter.EntityHeightFloat, parameter.PlayerSpawnZFloat)
)

// Enemy tanks
var (
	EnemyRotation      = vmath.FromRadians(parameter.EnemyRotationRadians * parameter.PerTick)
	EnemyAimTolerance  = vmath.FromRadians(parameter.EnemyAimToleranceRadians)
	EnemySpeed         = vmath.FromFloat(parameter.EnemySpeedFloat * parameter.PerTick)
	EnemyColliderHalf  = vmath.FromFloat(parameter.EnemyColliderHalfFloat)
	EnemySurfaceAngle  = vmath.FromRadians(parameter.EnemyColliderSurfaceAngle)
	EnemyRadarRotation = vmath.FromRadians(parameter.EnemyRadarRadiansPerSecond * parameter.PerTick)
)

// Projectiles
var (
	ProjectileStep   = vmath.FromFloat(parameter.ProjectileSpeedFloat * parameter.PerTick)
	ProjectileRadius = vmath.FromFloat(parameter.ProjectileRadiusFloat)
)

// Particles
var (
	ParticleGravity     = vmath.FromFloat(parameter.ParticleGravityFloat)
	ParticleDamping     = vmath.FromFloat(parameter.ParticleDampingFloat)
	ParticleBounce      = vmath.V3(parameter.ParticleBounceXZFloat, parameter.ParticleBounceYFloat, parameter.ParticleBounceXZFloat)
	ParticleSpraySpeed  = vmath.FromFloat(parameter.ParticleSpraySpeedFloat * parameter.PerTick)
	ParticleSprayUp     = vmath.FromFloat(parameter.ParticleSprayUpFloat)
	ParticleImpactShare = vmath.FromFloat(parameter.ParticleImpactShareFloat)
	ParticleLifeMin     = vmath.FromFloat(parameter.ParticleLifeMinSeconds)
	ParticleLifeSpan    = vmath.FromFloat(parameter.ParticleLifeSpanSeconds)
	ParticleBrightness  = vmath.FromFloat(parameter.ParticleBrightnessScale)
)

// Debris
var (
	DebrisSpeed   = vmath.FromFloat(parameter.DebrisSpeedFloat * parameter.PerTick)
	DebrisSpinMax = vmath.FromRadians(parameter.DebrisSpinRadiansMax * parameter.PerTick)
)
