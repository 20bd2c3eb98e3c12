package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave maps a phase in [0, 1) to a sample in [-1, 1]
type Wave func(phase float64) float64

var (
	Sine Wave = func(p float64) float64 { return math.Sin(2 * math.Pi * p) }

	Square Wave = func(p float64) float64 {
		if p < 0.5 {
			return 1
		}
		return -1
	}

	Saw Wave = func(p float64) float64 { return 2*p - 1 }

	// Noise ignores phase
	Noise Wave = func(float64) float64 { return rand.Float64()*2 - 1 }
)

// Tone streams d worth of wave at freq, identical on both channels
func Tone(wave Wave, freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	step := freq / float64(rate)
	var phase float64

	return beep.Take(rate.N(d), beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := wave(phase)
			samples[i] = [2]float64{v, v}
			phase += step
			phase -= math.Floor(phase)
		}
		return len(samples), true
	}))
}

// Shape cuts s to d and applies linear attack and release ramps
// Ramps longer than d are clamped, attack first
func Shape(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	pos := 0

	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := range n {
			g := 1.0
			if pos < att {
				g = float64(pos) / float64(att)
			}
			if left := total - pos; left <= rel {
				g = min(g, float64(left)/float64(rel))
			}
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	}))
}

// newGain wraps s with a linear gain in [0, 1]
// math.Log2(0) is -Inf, so zero gain is expressed as silent
func newGain(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(gain, 1))}
}
