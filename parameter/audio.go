package parameter

import "time"

// Impact cue synthesis
const (
	AudioSampleRate   = 44100
	AudioBufferLength = 100 * time.Millisecond
	AudioMasterVolume = 0.5

	ObstacleCueDuration = 120 * time.Millisecond
	ObstacleCueAttack   = 2 * time.Millisecond
	ObstacleCueRelease  = 90 * time.Millisecond
	ObstacleCueFreq     = 90.0

	KillCueDuration = 400 * time.Millisecond
	KillCueAttack   = 5 * time.Millisecond
	KillCueRelease  = 300 * time.Millisecond
	KillCueFreq     = 70.0

	PlayerHitCueDuration = 180 * time.Millisecond
	PlayerHitCueAttack   = 5 * time.Millisecond
	PlayerHitCueRelease  = 60 * time.Millisecond
	PlayerHitCueFreq     = 140.0
)
