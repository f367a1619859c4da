package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/drone-runner/core"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n < len(buf) {
			return out
		}
	}
}

func TestWaveSampleRange(t *testing.T) {
	for _, wave := range []core.Waveform{core.WaveSine, core.WaveSquare, core.WaveSaw, core.WaveTriangle, core.WaveNoise} {
		for p := 0.0; p < 1; p += 0.01 {
			if v := waveSample(wave, p); v < -1 || v > 1 {
				t.Errorf("%s: sample at phase %.2f out of range: %v", wave, p, v)
				break
			}
		}
	}
}

func TestTriangleShape(t *testing.T) {
	want := map[float64]float64{0: -1, 0.25: 0, 0.5: 1, 0.75: 0}
	for p, w := range want {
		if got := waveSample(core.WaveTriangle, p); math.Abs(got-w) > 1e-9 {
			t.Errorf("Phase %v: expected %v, got %v", p, w, got)
		}
	}
}

func TestVoiceLengthAndRamp(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 50 * time.Millisecond
	// Zero frequency square holds phase 0, a constant +1 before the ramp
	samples := drain(newVoice(core.Tone{Duration: d, Wave: core.WaveSquare}, rate))

	if len(samples) != rate.N(d) {
		t.Fatalf("Expected %d samples, got %d", rate.N(d), len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %v", samples[0][0])
	}
	if mid := samples[len(samples)/2]; mid[0] != 1 || mid[1] != 1 {
		t.Errorf("Expected full sustain on both channels, got %v", mid)
	}
	last := samples[len(samples)-1][0]
	if last <= 0 || last > 0.01 {
		t.Errorf("Expected release near zero at the end, got %v", last)
	}
}

func TestToneStreamerAppliesGain(t *testing.T) {
	rate := beep.SampleRate(44100)
	tone := core.Tone{Frequency: 880, Duration: 40 * time.Millisecond, Wave: core.WaveSquare, Gain: 0.12}
	samples := drain(ToneStreamer(tone, rate, 0.5))

	peak := 0.0
	for _, s := range samples {
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if math.Abs(peak-0.06) > 1e-6 {
		t.Errorf("Expected peak 0.06, got %v", peak)
	}

	silent := drain(ToneStreamer(tone, rate, 0))
	for _, s := range silent {
		if s[0] != 0 {
			t.Fatalf("Expected silence at zero master volume, got %v", s[0])
		}
	}
}

func TestPCM16(t *testing.T) {
	full := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
	pcm := PCM16(beep.Take(80, full))

	if len(pcm) != 80*4 {
		t.Fatalf("Expected %d bytes, got %d", 80*4, len(pcm))
	}
	if pcm[0] != 0xff || pcm[1] != 0x7f {
		t.Errorf("Expected max int16 little-endian, got %x %x", pcm[0], pcm[1])
	}
}

func TestMenuMusicIsEndless(t *testing.T) {
	g := NewMenuMusicGenerator(beep.SampleRate(8000))
	buf := make([][2]float64, 8000)
	for i := 0; i < 5; i++ {
		n, ok := g.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("Expected endless stream, got n=%d ok=%v", n, ok)
		}
	}
	if g.Err() != nil {
		t.Errorf("Expected no error, got %v", g.Err())
	}
}
