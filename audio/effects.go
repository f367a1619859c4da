package audio

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/core"
)

// waveSample returns the unit amplitude of wave at phase in [0, 1)
func waveSample(wave core.Waveform, phase float64) float64 {
	switch wave {
	case core.WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case core.WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case core.WaveSaw:
		return 2*phase - 1
	case core.WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case core.WaveNoise:
		return rand.Float64()*2 - 1
	}
	return 0
}

// voice streams one tone cue at unit gain, ramped in and out to avoid clicks
type voice struct {
	wave  core.Waveform
	step  float64 // phase advance per sample
	phase float64

	pos     int
	length  int
	attack  int
	release int
}

func newVoice(tone core.Tone, rate beep.SampleRate) *voice {
	return &voice{
		wave:    tone.Wave,
		step:    tone.Frequency / float64(rate),
		length:  rate.N(tone.Duration),
		attack:  rate.N(constants.ToneAttack),
		release: rate.N(constants.ToneRelease),
	}
}

// gain is the ramp at the current position: rising over attack, falling over release
func (v *voice) gain() float64 {
	g := 1.0
	if v.attack > 0 {
		g = math.Min(g, float64(v.pos)/float64(v.attack))
	}
	if v.release > 0 {
		g = math.Min(g, float64(v.length-v.pos)/float64(v.release))
	}
	return math.Max(0, g)
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.pos >= v.length {
			return i, i > 0
		}
		s := waveSample(v.wave, v.phase) * v.gain()
		samples[i] = [2]float64{s, s}

		v.phase += v.step
		v.phase -= math.Floor(v.phase)
		v.pos++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so 0 volume is mapped to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// ToneStreamer renders a tone cue scaled by its gain times master
func ToneStreamer(tone core.Tone, rate beep.SampleRate, master float64) beep.Streamer {
	return newVolume(newVoice(tone, rate), tone.Gain*master)
}
