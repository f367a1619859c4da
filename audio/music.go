package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/drone-runner/constants"
)

// bassLine is the per-beat frequency ratio of the menu bass, one bar of four beats
var bassLine = [4]float64{1, 1, 1.5, 1.335}

// MenuMusicGenerator streams an endless kick and bass loop for the idle screens
type MenuMusicGenerator struct {
	sr       beep.SampleRate
	pos      int
	beat     int
	kickLen  int
	bassFreq float64
}

// NewMenuMusicGenerator creates the idle-screen loop
func NewMenuMusicGenerator(sr beep.SampleRate) *MenuMusicGenerator {
	return &MenuMusicGenerator{
		sr:       sr,
		beat:     sr.N(constants.MusicBeat),
		kickLen:  sr.N(constants.MusicKickLength),
		bassFreq: constants.MusicBassFrequency,
	}
}

func (g *MenuMusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.beat
		bar := (g.pos / g.beat) % len(bassLine)
		t := float64(beatPos) / float64(g.sr)

		kick := 0.0
		if beatPos < g.kickLen {
			kickEnv := 1.0 - float64(beatPos)/float64(g.kickLen)
			kickFreq := 60 * (1 + 2*kickEnv)
			kick = 0.4 * kickEnv * math.Sin(2*math.Pi*kickFreq*t)
		}

		bassEnv := math.Exp(-t * 3)
		bass := 0.15 * bassEnv * math.Sin(2*math.Pi*g.bassFreq*bassLine[bar]*t)

		sample := kick + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MenuMusicGenerator) Err() error {
	return nil
}
