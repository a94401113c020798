package parameter

// Impact particles
const (
	MaxParticles = 128

	// Lifetime is drawn from [ParticleLifeMinSeconds, ParticleLifeMinSeconds + ParticleLifeSpanSeconds)
	ParticleLifeMinSeconds  = 0.25
	ParticleLifeSpanSeconds = 0.75

	// ParticleBrightnessScale maps relative lifetime to starting brightness
	ParticleBrightnessScale = 0.3

	// Per-tick kinematics
	ParticleGravityFloat = 0.0001
	ParticleDampingFloat = 0.999

	// Ground bounce multiplies velocity per axis
	ParticleBounceXZFloat = 0.75
	ParticleBounceYFloat  = -0.5

	// Spray speed per second and share of the tangential impact velocity kept
	ParticleSpraySpeedFloat  = 3.0
	ParticleSprayUpFloat     = 0.5
	ParticleImpactShareFloat = 0.25
)
