package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// waveType selects the oscillator shape.
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
)

// tone is a fixed-duration oscillator streamer. All effect sounds are
// synthesized; the game ships no audio assets.
type tone struct {
	freq     float64 // current frequency, Hz
	sweep    float64 // Hz change per second, 0 = steady
	phase    float64
	wave     waveType
	rate     beep.SampleRate
	position int
	duration int
	volume   float64
}

// newTone creates an oscillator at freq Hz for the given duration. sweep
// shifts the frequency linearly over the tone's lifetime.
func newTone(freq, sweep float64, d time.Duration, wave waveType, rate beep.SampleRate, volume float64) beep.Streamer {
	return &tone{
		freq:     freq,
		sweep:    sweep,
		wave:     wave,
		rate:     rate,
		duration: rate.N(d),
		volume:   volume,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.position >= t.duration {
		return 0, false
	}
	for i := range samples {
		if t.position >= t.duration {
			// Partial fill; the next call reports the tone drained.
			return i, true
		}

		var val float64
		switch t.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			if t.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveSaw:
			val = 2.0 * (t.phase - 0.5)
		}

		// Linear fade-out over the last 20% avoids clicks.
		fade := 1.0
		if rem := t.duration - t.position; rem < t.duration/5 {
			fade = float64(rem) / (float64(t.duration) / 5)
		}
		val *= t.volume * fade

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.freq += t.sweep / float64(t.rate)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
