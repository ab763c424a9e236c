package input

import (
	"github.com/gdamore/tcell/v2"
)

// dragThreshold is the pointer travel in cells that turns a press into a
// drag instead of a click.
const dragThreshold = 1

// Machine is the input state machine
// Parses tcell events into semantic Intents. A press arms the machine,
// movement past the threshold converts it to a drag, and a release within
// the threshold emits the click.
type Machine struct {
	pressed  bool
	dragging bool
	pressX   int
	pressY   int
	lastX    int
	lastY    int
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{}
}

// Reset clears all pending pointer state
func (m *Machine) Reset() {
	m.pressed = false
	m.dragging = false
	m.pressX, m.pressY = 0, 0
	m.lastX, m.lastY = 0, 0
}

// Process parses a terminal event and returns an Intent
// Returns nil if the event requires no action
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit}
	case tcell.KeyEnter:
		return &Intent{Type: IntentActivate}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return &Intent{Type: IntentQuit}
		case 'c', 'C':
			return &Intent{Type: IntentToggleContrast}
		case 's', 'S':
			return &Intent{Type: IntentToggleSound}
		case ' ':
			return &Intent{Type: IntentActivate}
		}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	buttons := ev.Buttons()

	// Wheel events stand alone; they never interact with press tracking
	if buttons&tcell.WheelUp != 0 {
		return &Intent{Type: IntentZoom, Steps: 1, X: x, Y: y}
	}
	if buttons&tcell.WheelDown != 0 {
		return &Intent{Type: IntentZoom, Steps: -1, X: x, Y: y}
	}

	held := buttons&tcell.Button1 != 0

	switch {
	case held && !m.pressed:
		// Press edge arms click-or-drag discrimination
		m.pressed = true
		m.dragging = false
		m.pressX, m.pressY = x, y
		m.lastX, m.lastY = x, y
		return nil

	case held && m.pressed:
		dx, dy := x-m.lastX, y-m.lastY
		if !m.dragging && abs(x-m.pressX) <= dragThreshold && abs(y-m.pressY) <= dragThreshold {
			return nil
		}
		m.dragging = true
		m.lastX, m.lastY = x, y
		if dx == 0 && dy == 0 {
			return nil
		}
		return &Intent{Type: IntentDrag, DX: dx, DY: dy}

	case !held && m.pressed:
		// Release resolves the gesture: click only if the threshold held
		wasDrag := m.dragging
		m.Reset()
		if wasDrag {
			return nil
		}
		return &Intent{Type: IntentClick, X: x, Y: y}

	default:
		return &Intent{Type: IntentHover, X: x, Y: y}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
