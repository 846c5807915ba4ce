// Package audio synthesizes the game's effect sounds with beep. The core
// simulation never touches it; the presentation layer forwards session
// events into the typed Play methods.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Manager owns the speaker and mixes effect tones into it.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewManager creates an uninitialized manager. Call Initialize before use;
// an uninitialized manager silently drops every Play call.
func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Failure leaves the manager in its silent
// state and is safe to ignore when no audio device is available.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences and releases the mixer.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	m.mixer.Clear()
	m.initialized = false
}

func (m *Manager) play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// PlayPellet is the short pickup blip.
func (m *Manager) PlayPellet() {
	m.play(newTone(880, 0, 40*time.Millisecond, waveSquare, sampleRate, 0.15))
}

// PlayPower is a rising sweep for a power-pellet pickup.
func (m *Manager) PlayPower() {
	m.play(newTone(220, 1800, 350*time.Millisecond, waveSine, sampleRate, 0.3))
}

// PlayCapture is the two-step chirp for eating a pursuer.
func (m *Manager) PlayCapture() {
	m.play(beep.Seq(
		newTone(440, 0, 80*time.Millisecond, waveSquare, sampleRate, 0.25),
		newTone(660, 0, 120*time.Millisecond, waveSquare, sampleRate, 0.25),
	))
}

// PlayLifeLost is a falling saw for losing a life.
func (m *Manager) PlayLifeLost() {
	m.play(newTone(600, -900, 600*time.Millisecond, waveSaw, sampleRate, 0.3))
}

// PlayGameOver is a slow low descent for the terminal phase.
func (m *Manager) PlayGameOver() {
	m.play(newTone(300, -220, 1200*time.Millisecond, waveSine, sampleRate, 0.35))
}
