package audio

import (
	"log"
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/space-tanks/event"
	"github.com/lixenwraith/space-tanks/parameter"
)

// Config controls cue playback
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
}

func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
}

// LoadConfig applies SPACE_TANKS_AUDIO_ENABLED and SPACE_TANKS_MASTER_VOLUME (0-100) over the defaults
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("SPACE_TANKS_AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = b
		}
	}
	if v := os.Getenv("SPACE_TANKS_MASTER_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MasterVolume = min(max(float64(n)/100, 0), 1)
		}
	}
	return cfg
}

// Player mixes impact cues into the speaker
// When the speaker cannot start, the player stays silent and Play reports false
type Player struct {
	mu     sync.Mutex
	cfg    Config
	rate   beep.SampleRate
	mixer  *beep.Mixer
	ready  bool
	muted  atomic.Bool
	played atomic.Int64
}

func NewPlayer(cfg Config) *Player {
	p := &Player{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Start opens the speaker; an error leaves the player silent
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready || !p.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferLength)); err != nil {
		log.Printf("audio: speaker unavailable, running silent: %v", err)
		return err
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Play queues the cue for kind; false when silent, muted, or kind has no cue
func (p *Player) Play(kind event.EventType) bool {
	if p.muted.Load() {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return false
	}
	cue := ImpactCue(kind, p.rate, p.cfg.MasterVolume)
	if cue == nil {
		return false
	}
	speaker.Lock()
	p.mixer.Add(cue)
	speaker.Unlock()
	p.played.Add(1)
	return true
}

// PlayEvents plays one cue per impact in a tick's events
func (p *Player) PlayEvents(events []event.GameEvent) {
	for _, ev := range events {
		if ev.Type.IsImpact() {
			p.Play(ev.Type)
		}
	}
}

// ToggleMute flips mute and reports whether sound is now on
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	return !muted
}

func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Played counts cues handed to the mixer
func (p *Player) Played() int64 {
	return p.played.Load()
}

// Close drops queued cues; beep keeps the speaker device open for the process lifetime
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.ready = false
}
