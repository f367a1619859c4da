package constants

import "time"

// Tone gain shared by all cues
const ToneGain = 0.12

// Flap Tone
const (
	FlapToneFrequency = 880.0
	FlapToneDuration  = 40 * time.Millisecond
)

// Pass Tone: frequency drops as more obstacles are passed
const (
	PassToneBaseFrequency = 1200.0
	PassToneStepFrequency = 12.0
	PassToneMaxDrop       = 800.0
	PassToneDuration      = 50 * time.Millisecond
)

// Crash Tone
const (
	CrashToneFrequency = 160.0
	CrashToneDuration  = 180 * time.Millisecond
)

// Tone envelope shaping to avoid clicks on short cues
const (
	ToneAttack  = 3 * time.Millisecond
	ToneRelease = 10 * time.Millisecond
)

// Menu Music
const (
	// MusicBeat is one beat of the idle-screen loop (100 BPM)
	MusicBeat = 600 * time.Millisecond

	// MusicKickLength is the kick drum decay at the start of each beat
	MusicKickLength = 100 * time.Millisecond

	MusicBassFrequency = 110.0
	MusicVolume        = 0.5
)

// Audio Engine Defaults
const (
	DefaultSampleRate   = 44100
	DefaultMasterVolume = 0.5

	// SpeakerBuffer is the speaker latency buffer
	SpeakerBuffer = 100 * time.Millisecond
)
