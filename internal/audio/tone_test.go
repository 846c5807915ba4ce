package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) int {
	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestTone_StreamsExactDuration(t *testing.T) {
	rate := beep.SampleRate(48000)
	d := 100 * time.Millisecond
	s := newTone(440, 0, d, waveSine, rate, 0.5)

	if got, want := drain(s), rate.N(d); got != want {
		t.Fatalf("streamed %d samples, want %d", got, want)
	}
}

func TestTone_SamplesStayInRange(t *testing.T) {
	rate := beep.SampleRate(48000)
	for _, wave := range []waveType{waveSine, waveSquare, waveSaw} {
		s := newTone(220, 900, 50*time.Millisecond, wave, rate, 1.0)
		buf := make([][2]float64, 256)
		for {
			n, ok := s.Stream(buf)
			for i := 0; i < n; i++ {
				for ch := 0; ch < 2; ch++ {
					if buf[i][ch] < -1.0 || buf[i][ch] > 1.0 {
						t.Fatalf("wave %d sample out of range: %f", wave, buf[i][ch])
					}
				}
			}
			if !ok {
				break
			}
		}
	}
}

func TestTone_FinishedStreamerStops(t *testing.T) {
	rate := beep.SampleRate(48000)
	s := newTone(440, 0, 10*time.Millisecond, waveSquare, rate, 0.5)
	drain(s)

	buf := make([][2]float64, 16)
	n, ok := s.Stream(buf)
	if n != 0 || ok {
		t.Fatalf("finished tone should stream nothing, got n=%d ok=%v", n, ok)
	}
}

func TestManager_SilentWithoutInitialize(t *testing.T) {
	m := NewManager()
	// Must not panic or touch the speaker.
	m.PlayPellet()
	m.PlayPower()
	m.PlayCapture()
	m.PlayLifeLost()
	m.PlayGameOver()
	m.Cleanup()
}
