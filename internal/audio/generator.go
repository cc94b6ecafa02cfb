package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ToneGenerator is a sine blip with an exponential decay, optionally
// gliding from freq to freq*glide over its length.
type ToneGenerator struct {
	sr     beep.SampleRate
	freq   float64
	glide  float64
	decay  float64
	length int
	pos    int
	phase  float64
}

// NewToneGenerator creates a tone of the given duration.
func NewToneGenerator(sr beep.SampleRate, freq, glide, decay float64, d time.Duration) *ToneGenerator {
	return &ToneGenerator{
		sr:     sr,
		freq:   freq,
		glide:  glide,
		decay:  decay,
		length: sr.N(d),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := 0.0
		if g.length > 0 {
			progress = math.Min(float64(g.pos)/float64(g.length), 1)
		}

		freq := g.freq * (1 + (g.glide-1)*progress)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// Short attack avoids a click at the start
		attack := math.Min(t/0.005, 1)
		sample := 0.3 * attack * math.Exp(-t*g.decay) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// NoiseGenerator is decaying low-passed noise over a low rumble.
type NoiseGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
	last float64
}

// NewNoiseGenerator creates a noise burst. The seed makes it repeatable.
func NewNoiseGenerator(sr beep.SampleRate, seed int64) *NoiseGenerator {
	return &NoiseGenerator{sr: sr, seed: seed}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 6)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		g.last += 0.2 * (noise - g.last)

		rumble := 0.3 * math.Sin(2*math.Pi*70*t)
		sample := envelope * (0.4*g.last + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}

// cueStreamer builds a finite streamer for a cue.
func cueStreamer(sr beep.SampleRate, c Cue) beep.Streamer {
	tone := func(freq, glide, decay float64, d time.Duration) beep.Streamer {
		return beep.Take(sr.N(d), NewToneGenerator(sr, freq, glide, decay, d))
	}

	switch c {
	case CueLaunch:
		return tone(440, 2, 12, 120*time.Millisecond)
	case CueBounce:
		return tone(660, 1, 30, 60*time.Millisecond)
	case CueDrop:
		return beep.Take(sr.N(350*time.Millisecond), NewNoiseGenerator(sr, 1))
	case CueWin:
		// Rising major arpeggio
		return beep.Seq(
			tone(523.25, 1, 6, 120*time.Millisecond),
			tone(659.25, 1, 6, 120*time.Millisecond),
			tone(783.99, 1, 6, 120*time.Millisecond),
			tone(1046.5, 1, 4, 300*time.Millisecond),
		)
	case CueFocus:
		return tone(880, 1, 40, 40*time.Millisecond)
	case CueSelect:
		return tone(660, 1.5, 15, 90*time.Millisecond)
	}
	return beep.Silence(0)
}
