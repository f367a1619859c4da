package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/core"
	"github.com/lixenwraith/drone-runner/status"
)

// SoundManager owns the speaker, plays tone cues and the menu music loop
// All failures are swallowed: a missing audio device only increments the dropped counter
type SoundManager struct {
	mu          sync.Mutex
	cfg         AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
	muted       bool
	musicOn     bool

	// speaker.Lock/Unlock guard the mixer once playback runs
	lock   func()
	unlock func()

	statPlayed  *atomic.Int64
	statDropped *atomic.Int64
}

// NewSoundManager creates a new sound manager; reg may be nil
func NewSoundManager(cfg AudioConfig, reg *status.Registry) *SoundManager {
	if reg == nil {
		reg = status.NewRegistry()
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = constants.DefaultSampleRate
	}
	return &SoundManager{
		cfg:         cfg,
		rate:        beep.SampleRate(cfg.SampleRate),
		mixer:       &beep.Mixer{},
		musicOn:     cfg.MusicEnabled,
		lock:        speaker.Lock,
		unlock:      speaker.Unlock,
		statPlayed:  reg.Ints.Get(status.KeyTonesPlayed),
		statDropped: reg.Ints.Get(status.KeyTonesDropped),
	}
}

// Initialize sets up the audio device; disabled config is a silent no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.SpeakerBuffer)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("Audio initialized at %d Hz", sm.cfg.SampleRate)
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.lock()
	if sm.music != nil {
		sm.music.Paused = true
		sm.music = nil
	}
	sm.mixer.Clear()
	sm.unlock()

	speaker.Clear()
	sm.initialized = false
}

// Play triggers a tone cue, dropping it silently on any failure
func (sm *SoundManager) Play(tone core.Tone) {
	if err := sm.TryPlay(tone); err != nil {
		sm.statDropped.Add(1)
	}
}

// TryPlay triggers a tone cue and reports why it could not be played
// A muted manager accepts the tone without sound
func (sm *SoundManager) TryPlay(tone core.Tone) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	if sm.muted {
		return nil
	}
	if tone.Frequency <= 0 || tone.Duration <= 0 {
		return fmt.Errorf("audio: invalid tone %v Hz for %v", tone.Frequency, tone.Duration)
	}

	streamer := ToneStreamer(tone, sm.rate, sm.cfg.MasterVolume)
	sm.lock()
	sm.mixer.Add(beep.Take(sm.rate.N(tone.Duration), streamer))
	sm.unlock()
	sm.statPlayed.Add(1)
	return nil
}

// SetMuted silences tone cues and music
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if sm.music != nil {
		sm.lock()
		sm.music.Paused = muted
		sm.unlock()
	}
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.Muted()
	sm.SetMuted(muted)
	return muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// MusicEnabled reports whether the menu loop may play
func (sm *SoundManager) MusicEnabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.musicOn
}

// ToggleMusic flips the music preference; the loop follows on the next PlayMusic/StopMusic
func (sm *SoundManager) ToggleMusic() bool {
	sm.mu.Lock()
	sm.musicOn = !sm.musicOn
	on := sm.musicOn
	sm.mu.Unlock()

	if !on {
		sm.StopMusic()
	}
	return on
}

// PlayMusic starts the menu loop if enabled and not already playing
func (sm *SoundManager) PlayMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.musicOn {
		return
	}
	if sm.music != nil && !sm.music.Paused {
		return
	}

	ctrl := &beep.Ctrl{
		Streamer: newVolume(NewMenuMusicGenerator(sm.rate), constants.MusicVolume*sm.cfg.MasterVolume),
		Paused:   sm.muted,
	}
	sm.lock()
	if sm.music != nil {
		sm.music.Streamer = nil
	}
	sm.music = ctrl
	sm.mixer.Add(ctrl)
	sm.unlock()
}

// StopMusic stops the menu loop
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	sm.lock()
	// A nil streamer makes the Ctrl report drained so the mixer drops it
	sm.music.Streamer = nil
	sm.music = nil
	sm.unlock()
}

// MusicPlaying reports whether the menu loop is in the mixer
func (sm *SoundManager) MusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.music != nil && !sm.music.Paused
}
