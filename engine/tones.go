package engine

import (
	"math"

	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/core"
)

// SoundTrigger plays short fire-and-forget tones
// Implementations must not block and must swallow their own failures
type SoundTrigger interface {
	Play(tone core.Tone)
}

type silentSound struct{}

func (silentSound) Play(core.Tone) {}

// FlapTone is played on every flap
func FlapTone() core.Tone {
	return core.Tone{
		Frequency: constants.FlapToneFrequency,
		Duration:  constants.FlapToneDuration,
		Wave:      core.WaveTriangle,
		Gain:      constants.ToneGain,
	}
}

// PassTone is played when an obstacle is passed; pitch falls as passedCount grows
func PassTone(passedCount int) core.Tone {
	drop := math.Min(constants.PassToneMaxDrop, float64(passedCount)*constants.PassToneStepFrequency)
	return core.Tone{
		Frequency: constants.PassToneBaseFrequency - drop,
		Duration:  constants.PassToneDuration,
		Wave:      core.WaveSine,
		Gain:      constants.ToneGain,
	}
}

// CrashTone is played when a run ends
func CrashTone() core.Tone {
	return core.Tone{
		Frequency: constants.CrashToneFrequency,
		Duration:  constants.CrashToneDuration,
		Wave:      core.WaveSaw,
		Gain:      constants.ToneGain,
	}
}
