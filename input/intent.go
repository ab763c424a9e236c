package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event

	// Preference toggles
	IntentToggleContrast // c
	IntentToggleSound    // s

	// Pointer interactions
	IntentActivate // Space/Enter, keyboard parity for a click
	IntentClick    // Press and release within the drag threshold
	IntentHover    // Pointer motion with no button held
	IntentDrag     // Pointer moved past the threshold with the button held
	IntentZoom     // Mouse wheel
)

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type IntentType

	// Pointer cell for Click and Hover
	X, Y int

	// Cell delta for Drag
	DX, DY int

	// Wheel steps for Zoom, positive zooms in
	Steps int
}
