package scene

// State centralizes interaction state and display preferences. The main loop
// owns it; everything else reads per-frame snapshots. Nothing here persists
// across runs.
type State struct {
	// Interaction state (pointer-driven)
	hovered bool
	clicked bool

	// Display preferences (toggle-driven, seeded from config)
	highContrast bool
	soundEnabled bool
}

// View is an immutable per-frame snapshot of State for renderers and audio.
type View struct {
	Hovered      bool
	Clicked      bool
	HighContrast bool
	SoundEnabled bool
}

// NewState creates scene state with preferences seeded from configuration.
// Interaction state always starts at rest.
func NewState(highContrast, soundEnabled bool) *State {
	return &State{
		highContrast: highContrast,
		soundEnabled: soundEnabled,
	}
}

// SetHovered updates the hover flag and reports whether it changed. The
// caller re-applies the audio tone only on edges.
func (s *State) SetHovered(hovered bool) bool {
	if s.hovered == hovered {
		return false
	}
	s.hovered = hovered
	return true
}

// ToggleClicked flips the clicked flag and returns the new value. A click is
// always a flip, never a set.
func (s *State) ToggleClicked() bool {
	s.clicked = !s.clicked
	return s.clicked
}

// ToggleContrast flips the high-contrast preference and returns the new value.
func (s *State) ToggleContrast() bool {
	s.highContrast = !s.highContrast
	return s.highContrast
}

// ToggleSound flips the sound preference and returns the new value.
func (s *State) ToggleSound() bool {
	s.soundEnabled = !s.soundEnabled
	return s.soundEnabled
}

// Snapshot returns the current view. Renderers and the audio manager receive
// this copy, never the State itself.
func (s *State) Snapshot() View {
	return View{
		Hovered:      s.hovered,
		Clicked:      s.clicked,
		HighContrast: s.highContrast,
		SoundEnabled: s.soundEnabled,
	}
}
