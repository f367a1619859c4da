package audio

import (
	"errors"

	"github.com/lixenwraith/drone-runner/constants"
)

// ErrNotInitialized is returned when a tone is requested before the speaker is up
var ErrNotInitialized = errors.New("audio: not initialized")

// AudioConfig holds the audio settings
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"` // 0.0 - 1.0
	SampleRate   int     `toml:"sample_rate"`
	MusicEnabled bool    `toml:"music_enabled"`
}

// DefaultAudioConfig returns audio enabled at half volume with menu music
func DefaultAudioConfig() AudioConfig {
	return AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.DefaultSampleRate,
		MusicEnabled: true,
	}
}
