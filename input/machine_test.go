package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func mouse(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, tcell.ModNone)
}

func TestKeyIntents(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want IntentType
	}{
		{"q quits", key(tcell.KeyRune, 'q'), IntentQuit},
		{"Q quits", key(tcell.KeyRune, 'Q'), IntentQuit},
		{"escape quits", key(tcell.KeyEscape, 0), IntentQuit},
		{"ctrl-c quits", key(tcell.KeyCtrlC, 0), IntentQuit},
		{"c toggles contrast", key(tcell.KeyRune, 'c'), IntentToggleContrast},
		{"s toggles sound", key(tcell.KeyRune, 's'), IntentToggleSound},
		{"space activates", key(tcell.KeyRune, ' '), IntentActivate},
		{"enter activates", key(tcell.KeyEnter, 0), IntentActivate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			got := m.Process(tt.ev)
			if got == nil {
				t.Fatal("Expected an intent, got nil")
			}
			if got.Type != tt.want {
				t.Errorf("Expected intent %d, got %d", tt.want, got.Type)
			}
		})
	}
}

func TestUnboundKeyYieldsNothing(t *testing.T) {
	m := NewMachine()
	if got := m.Process(key(tcell.KeyRune, 'z')); got != nil {
		t.Errorf("Expected nil for an unbound key, got %+v", got)
	}
}

func TestResizeIntent(t *testing.T) {
	m := NewMachine()
	got := m.Process(tcell.NewEventResize(80, 24))
	if got == nil || got.Type != IntentResize {
		t.Fatalf("Expected resize intent, got %+v", got)
	}
}

func TestClickWithinThreshold(t *testing.T) {
	m := NewMachine()

	if got := m.Process(mouse(10, 10, tcell.Button1)); got != nil {
		t.Fatalf("Expected press to be silent, got %+v", got)
	}
	// One cell of travel stays a click.
	if got := m.Process(mouse(11, 10, tcell.Button1)); got != nil {
		t.Fatalf("Expected sub-threshold motion to be silent, got %+v", got)
	}
	got := m.Process(mouse(11, 10, tcell.ButtonNone))
	if got == nil || got.Type != IntentClick {
		t.Fatalf("Expected click on release, got %+v", got)
	}
	if got.X != 11 || got.Y != 10 {
		t.Errorf("Expected click at release position (11, 10), got (%d, %d)", got.X, got.Y)
	}
}

func TestDragPastThreshold(t *testing.T) {
	m := NewMachine()

	m.Process(mouse(10, 10, tcell.Button1))
	got := m.Process(mouse(13, 10, tcell.Button1))
	if got == nil || got.Type != IntentDrag {
		t.Fatalf("Expected drag past the threshold, got %+v", got)
	}
	if got.DX != 3 || got.DY != 0 {
		t.Errorf("Expected drag delta (3, 0), got (%d, %d)", got.DX, got.DY)
	}

	// Once dragging, every move reports its delta.
	got = m.Process(mouse(14, 12, tcell.Button1))
	if got == nil || got.Type != IntentDrag || got.DX != 1 || got.DY != 2 {
		t.Fatalf("Expected incremental drag delta (1, 2), got %+v", got)
	}

	// Release after a drag is not a click.
	if got := m.Process(mouse(14, 12, tcell.ButtonNone)); got != nil {
		t.Errorf("Expected silent release after a drag, got %+v", got)
	}
}

func TestVerticalDragConverts(t *testing.T) {
	m := NewMachine()
	m.Process(mouse(5, 5, tcell.Button1))
	got := m.Process(mouse(5, 8, tcell.Button1))
	if got == nil || got.Type != IntentDrag || got.DY != 3 {
		t.Fatalf("Expected vertical drag, got %+v", got)
	}
}

func TestClickAfterDragRequiresNewPress(t *testing.T) {
	m := NewMachine()
	m.Process(mouse(5, 5, tcell.Button1))
	m.Process(mouse(9, 5, tcell.Button1))
	m.Process(mouse(9, 5, tcell.ButtonNone))

	m.Process(mouse(9, 5, tcell.Button1))
	got := m.Process(mouse(9, 5, tcell.ButtonNone))
	if got == nil || got.Type != IntentClick {
		t.Fatalf("Expected a fresh press to click again, got %+v", got)
	}
}

func TestHoverMotion(t *testing.T) {
	m := NewMachine()
	got := m.Process(mouse(7, 3, tcell.ButtonNone))
	if got == nil || got.Type != IntentHover {
		t.Fatalf("Expected hover from free motion, got %+v", got)
	}
	if got.X != 7 || got.Y != 3 {
		t.Errorf("Expected hover at (7, 3), got (%d, %d)", got.X, got.Y)
	}
}

func TestWheelZoom(t *testing.T) {
	m := NewMachine()

	got := m.Process(mouse(0, 0, tcell.WheelUp))
	if got == nil || got.Type != IntentZoom || got.Steps != 1 {
		t.Fatalf("Expected wheel up to zoom in, got %+v", got)
	}

	got = m.Process(mouse(0, 0, tcell.WheelDown))
	if got == nil || got.Type != IntentZoom || got.Steps != -1 {
		t.Fatalf("Expected wheel down to zoom out, got %+v", got)
	}
}

func TestWheelDoesNotBreakPress(t *testing.T) {
	m := NewMachine()
	m.Process(mouse(10, 10, tcell.Button1))
	m.Process(mouse(10, 10, tcell.Button1|tcell.WheelUp))

	got := m.Process(mouse(10, 10, tcell.ButtonNone))
	if got == nil || got.Type != IntentClick {
		t.Fatalf("Expected the armed press to survive a wheel event, got %+v", got)
	}
}
