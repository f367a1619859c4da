package pixel

import (
	"github.com/gopxl/beep"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/lixenwraith/drone-runner/audio"
	"github.com/lixenwraith/drone-runner/core"
)

// TonePlayer renders tones with the shared synthesizer and plays them through ebiten's audio context
type TonePlayer struct {
	ctx    *eaudio.Context
	rate   int
	master float64
	muted  bool
}

// NewTonePlayer creates the process-wide audio context; ebiten allows only one
func NewTonePlayer(cfg audio.AudioConfig) *TonePlayer {
	return &TonePlayer{
		ctx:    eaudio.NewContext(cfg.SampleRate),
		rate:   cfg.SampleRate,
		master: cfg.MasterVolume,
		muted:  !cfg.Enabled,
	}
}

// Play renders the tone to PCM and starts a one-shot player
func (p *TonePlayer) Play(tone core.Tone) {
	if p.muted || tone.Duration <= 0 || tone.Frequency <= 0 {
		return
	}
	pcm := audio.PCM16(audio.ToneStreamer(tone, beep.SampleRate(p.rate), p.master))
	player := p.ctx.NewPlayerFromBytes(pcm)
	player.Play()
}

// ToggleMute flips mute and returns the new state
func (p *TonePlayer) ToggleMute() bool {
	p.muted = !p.muted
	return p.muted
}

// Muted reports whether tones are suppressed
func (p *TonePlayer) Muted() bool { return p.muted }
