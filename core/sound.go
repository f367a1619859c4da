package core

import "time"

// Waveform selects the oscillator shape of a tone
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// String returns the waveform name
func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveSaw:
		return "sawtooth"
	case WaveTriangle:
		return "triangle"
	case WaveNoise:
		return "noise"
	default:
		return "unknown"
	}
}

// Tone is a fire-and-forget short sound request
type Tone struct {
	Frequency float64 // Hz
	Duration  time.Duration
	Wave      Waveform
	Gain      float64 // 0.0-1.0 before master volume
}
