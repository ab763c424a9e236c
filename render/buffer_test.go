package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestNewBuffer(t *testing.T) {
	buf := NewBuffer(80, 24)

	if buf.Width() != 80 {
		t.Errorf("Expected width 80, got %d", buf.Width())
	}
	if buf.Height() != 24 {
		t.Errorf("Expected height 24, got %d", buf.Height())
	}
	if cell := buf.At(5, 5); cell.Rune != 0 {
		t.Errorf("Expected fresh cell to be empty, got %v", cell.Rune)
	}
}

func TestBufferSetFgOnly(t *testing.T) {
	buf := NewBuffer(10, 10)
	red := RGB{255, 0, 0}

	buf.SetFgOnly(3, 4, 'A', red, AttrBold)

	cell := buf.At(3, 4)
	if cell.Rune != 'A' {
		t.Errorf("Expected rune 'A', got %v", cell.Rune)
	}
	if cell.Fg != red {
		t.Errorf("Expected red foreground, got %v", cell.Fg)
	}
	if cell.Attrs != AttrBold {
		t.Errorf("Expected bold attr, got %v", cell.Attrs)
	}
	if buf.touched[4*10+3] {
		t.Error("Expected SetFgOnly to leave the cell untouched for background finalize")
	}
}

func TestBufferSetWithBg(t *testing.T) {
	buf := NewBuffer(10, 10)
	fg := RGB{1, 2, 3}
	bg := RGB{4, 5, 6}

	buf.SetWithBg(0, 0, 'x', fg, bg)

	cell := buf.At(0, 0)
	if cell.Rune != 'x' || cell.Fg != fg || cell.Bg != bg {
		t.Errorf("Expected cell to carry explicit colors, got %+v", cell)
	}
	if !buf.touched[0] {
		t.Error("Expected SetWithBg to mark the cell touched")
	}
}

func TestBufferOutOfBounds(t *testing.T) {
	buf := NewBuffer(10, 10)

	buf.SetFgOnly(-1, 5, 'A', RGBWhite, AttrNone)
	buf.SetFgOnly(5, 100, 'A', RGBWhite, AttrNone)
	buf.SetBgOnly(10, 0, RGBWhite)

	if cell := buf.At(-1, 5); cell != (Cell{}) {
		t.Errorf("Expected zero cell for out-of-bounds read, got %+v", cell)
	}
}

func TestBufferClear(t *testing.T) {
	buf := NewBuffer(10, 10)
	buf.SetWithBg(2, 2, 'x', RGBWhite, RGBBlack)
	buf.Clear()

	if cell := buf.At(2, 2); cell.Rune != 0 {
		t.Errorf("Expected cleared cell, got %v", cell.Rune)
	}
	if buf.touched[2*10+2] {
		t.Error("Expected clear to reset touched tracking")
	}
}

func TestBufferResizeReuses(t *testing.T) {
	buf := NewBuffer(20, 10)
	buf.SetWithBg(5, 5, 'x', RGBWhite, RGBBlack)

	buf.Resize(10, 5)
	if buf.Width() != 10 || buf.Height() != 5 {
		t.Errorf("Expected 10x5 after shrink, got %dx%d", buf.Width(), buf.Height())
	}
	if cell := buf.At(5, 4); cell.Rune != 0 {
		t.Error("Expected shrunken buffer to be cleared")
	}

	buf.Resize(30, 10)
	if buf.Width() != 30 || buf.Height() != 10 {
		t.Errorf("Expected 30x10 after grow, got %dx%d", buf.Width(), buf.Height())
	}
	buf.SetFgOnly(29, 9, 'z', RGBWhite, AttrNone)
	if cell := buf.At(29, 9); cell.Rune != 'z' {
		t.Error("Expected grown buffer to accept writes at the new extent")
	}
}

func TestBufferFlushAppliesDefaultBackground(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Expected simulation screen to init, got %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 4)

	buf := NewBuffer(10, 4)
	bg := RGB{26, 27, 38}
	fg := RGB{255, 59, 48}
	buf.SetFgOnly(2, 1, '@', fg, AttrNone)
	buf.SetBgOnly(3, 1, RGBWhite)

	buf.Flush(screen, bg)

	mainc, _, style, _ := screen.GetContent(2, 1)
	if mainc != '@' {
		t.Errorf("Expected '@' at (2,1), got %v", mainc)
	}
	fgc, bgc, _ := style.Decompose()
	if fgc != fg.Tcell() {
		t.Errorf("Expected foreground %v, got %v", fg.Tcell(), fgc)
	}
	if bgc != bg.Tcell() {
		t.Errorf("Expected untouched cell to take the default background, got %v", bgc)
	}

	_, _, style2, _ := screen.GetContent(3, 1)
	_, bgc2, _ := style2.Decompose()
	if bgc2 != RGBWhite.Tcell() {
		t.Errorf("Expected touched cell to keep its background, got %v", bgc2)
	}

	mainc, _, _, _ = screen.GetContent(0, 0)
	if mainc != ' ' {
		t.Errorf("Expected empty cell to flush as space, got %v", mainc)
	}
}

func TestRGBBlend(t *testing.T) {
	dst := RGB{0, 0, 0}
	src := RGB{200, 100, 50}

	if got := dst.Blend(src, 0); got != dst {
		t.Errorf("Expected zero alpha to keep dst, got %v", got)
	}
	if got := dst.Blend(src, 1); got != src {
		t.Errorf("Expected full alpha to take src, got %v", got)
	}
	mid := dst.Blend(src, 0.5)
	if mid.R != 100 || mid.G != 50 || mid.B != 25 {
		t.Errorf("Expected half blend {100 50 25}, got %v", mid)
	}
}

func TestRGBMax(t *testing.T) {
	a := RGB{10, 200, 30}
	b := RGB{100, 20, 30}
	got := a.Max(b)
	if got != (RGB{100, 200, 30}) {
		t.Errorf("Expected channel max {100 200 30}, got %v", got)
	}
}

func TestRGBScale(t *testing.T) {
	c := RGB{100, 50, 200}
	if got := c.Scale(0.5); got != (RGB{50, 25, 100}) {
		t.Errorf("Expected half scale {50 25 100}, got %v", got)
	}
	if got := c.Scale(0); got != RGBBlack {
		t.Errorf("Expected zero scale to be black, got %v", got)
	}
	if got := c.Scale(2); got != c {
		t.Errorf("Expected over-unity scale to keep the color, got %v", got)
	}
}
