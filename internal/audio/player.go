// Package audio synthesises the game's sound effects and plays them in
// response to collision events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sound names one effect.
type Sound int

const (
	SoundPaddle Sound = iota
	SoundBounce
	SoundPowerUp
	SoundGameOver
)

// Streamer builds a fresh stream for s.
func Streamer(s Sound) beep.Streamer {
	switch s {
	case SoundPaddle:
		return tone(440, 60*time.Millisecond, WaveSquare)
	case SoundBounce:
		return tone(660, 40*time.Millisecond, WaveSine)
	case SoundPowerUp:
		return beep.Seq(
			tone(880, 70*time.Millisecond, WaveSine),
			tone(1320, 90*time.Millisecond, WaveSine),
		)
	case SoundGameOver:
		return beep.Seq(
			tone(220, 150*time.Millisecond, WaveSquare),
			tone(110, 300*time.Millisecond, WaveSquare),
		)
	}
	return tone(0, time.Millisecond, WaveNoise)
}

// Player mixes sound effects into the speaker. A nil *Player is silent, as
// is one whose Init was never called.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

func NewPlayer(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts s without waiting for it to finish.
func (p *Player) Play(s Sound) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	st := withVolume(Streamer(s), p.volume)
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// Close silences everything still playing.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}
