package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/vmath-kit/logger"
	"github.com/lixenwraith/vmath-kit/vmath"
)

const (
	sampleRate   = beep.SampleRate(48000)
	bufferLength = 100 * time.Millisecond
	noiseGain    = 0.25
	blipDuration = 60 * time.Millisecond
	blipVolume   = 0.3
)

// blipFrequencies indexed by intersection count
var blipFrequencies = [...]float64{330, 660, 880}

// Player owns the speaker and mixes the noise bed with one-shot blips
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	noise       *ChokeNoise
	noiseCtrl   *beep.Ctrl
	initialized bool
}

// NewPlayer creates a player whose noise bed samples from rng
func NewPlayer(rng vmath.Source, choke int) *Player {
	noise := NewChokeNoise(rng, choke)
	return &Player{
		mixer:     &beep.Mixer{},
		noise:     noise,
		noiseCtrl: &beep.Ctrl{Streamer: noise, Paused: true},
	}
}

// Initialize opens the speaker; failure leaves the player silent but usable
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferLength)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	p.mixer.Add(p.noiseCtrl)
	speaker.Play(p.mixer)
	p.initialized = true
	logger.Log().Info().Int("rate", int(sampleRate)).Msg("audio initialized")
	return nil
}

// Cleanup stops all sounds
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.noiseCtrl.Paused = true
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// ToggleNoise starts or pauses the noise bed, returning whether it now plays
func (p *Player) ToggleNoise() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return false
	}

	speaker.Lock()
	playing := p.noiseCtrl.Paused
	p.noiseCtrl.Paused = !playing
	speaker.Unlock()

	if playing {
		p.noise.SetGain(noiseGain)
	} else {
		p.noise.SetGain(0)
	}
	return playing
}

// SetChoke reshapes the noise bed
func (p *Player) SetChoke(choke int) {
	p.noise.SetChoke(choke)
}

// PlayIntersections signals a change in intersection count with a pitched blip
func (p *Player) PlayIntersections(count int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	idx := min(max(count, 0), len(blipFrequencies)-1)
	blip, err := NewBlip(sampleRate, blipFrequencies[idx], blipDuration, blipVolume)
	if err != nil {
		logger.Log().Error().Err(err).Msg("blip generation failed")
		return
	}

	speaker.Lock()
	p.mixer.Add(blip)
	speaker.Unlock()
}
