package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Manager owns the hover tone lifecycle. Audio is strictly best-effort: when
// the backend cannot be acquired the manager stays in silent mode and every
// method is a no-op.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	tone        *beep.Ctrl
	initialized bool
	closed      bool
}

func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Init acquires the speaker and starts the long-lived mixer. The returned
// error is for logging only; the manager simply stays silent on failure.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized || m.closed {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Ready reports whether the speaker is live.
func (m *Manager) Ready() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized && !m.closed
}

// Apply reconciles the tone with the current state: the playing tone is torn
// down and, while sound is enabled, a fresh oscillator is built at the
// hover-derived shape. Rebuild instead of retune keeps every stream immutable
// once it is audible; the mixer drains the detached tone.
func (m *Manager) Apply(soundEnabled, hovered bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.closed {
		return
	}

	speaker.Lock()
	if m.tone != nil {
		m.tone.Streamer = nil
		m.tone = nil
	}
	if soundEnabled {
		spec := ToneFor(hovered)
		ctrl := &beep.Ctrl{Streamer: newVolume(NewOscillator(spec.Freq, sampleRate), spec.Gain)}
		m.tone = ctrl
		m.mixer.Add(ctrl)
	}
	speaker.Unlock()
}

// Close tears down the tone and releases the speaker. Safe in any state and
// safe to repeat.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.closed {
		m.closed = true
		return
	}

	speaker.Lock()
	if m.tone != nil {
		m.tone.Streamer = nil
		m.tone = nil
	}
	m.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	m.initialized = false
	m.closed = true
}
