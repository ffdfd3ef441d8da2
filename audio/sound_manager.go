// Package audio plays short tones in reaction to session changes
package audio

import (
	"context"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/snake/engine"
)

const (
	sampleRate = beep.SampleRate(48000)

	eatDuration      = 80 * time.Millisecond
	startDuration    = 60 * time.Millisecond
	gameOverDuration = 400 * time.Millisecond
)

// SoundManager manages all game audio
// Every Play method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64 // 0..1
	initialized bool
	logger      zerolog.Logger
}

// NewSoundManager creates a new sound manager
func NewSoundManager(volume float64, logger zerolog.Logger) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Initialize sets up the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues the tone for cue
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := Tone(cue)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(sm.withVolume(streamer))
	speaker.Unlock()
}

// withVolume scales s by the configured linear volume
func (sm *SoundManager) withVolume(s beep.Streamer) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: sm.volume - 1}
}

// Listen plays cues for every snapshot change until ctx ends or the stream closes
func (sm *SoundManager) Listen(ctx context.Context, snapshots <-chan engine.Snapshot) {
	var prev engine.Snapshot
	first := true

	for {
		select {
		case <-ctx.Done():
			return
		case next, ok := <-snapshots:
			if !ok {
				return
			}
			if !first {
				if cue := Detect(prev, next); cue != CueNone {
					sm.logger.Debug().Str("cue", cue.String()).Msg("audio cue")
					sm.Play(cue)
				}
			}
			prev, first = next, false
		}
	}
}

// Tone returns a finite streamer for cue, nil for CueNone
func Tone(cue Cue) beep.Streamer {
	switch cue {
	case CueEat:
		return NewChirpGenerator(sampleRate, 660, 1320, eatDuration)
	case CueStart:
		return NewChirpGenerator(sampleRate, 440, 660, startDuration)
	case CueGameOver:
		return beep.Take(sampleRate.N(gameOverDuration), NewBuzzGenerator(sampleRate, 120))
	default:
		return nil
	}
}
