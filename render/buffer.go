package render

import (
	"github.com/gdamore/tcell/v2"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << 0
	AttrDim  Attr = 1 << 1
)

// Cell represents a single screen cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Buffer is a cell compositor with dirty tracking. Renderers write into it
// in priority order; Flush converts the finished frame to tcell calls.
type Buffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	size := width * height
	return &Buffer{
		cells:   make([]Cell, size),
		touched: make([]bool, size),
		width:   width,
		height:  height,
	}
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Width returns the buffer width in cells
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in cells
func (b *Buffer) Height() int { return b.height }

// inBounds returns true if in screen bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y); the zero Cell when out of bounds.
// Compositors read back cells to merge overlapping marks.
func (b *Buffer) At(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetFgOnly writes rune, foreground, and attrs while preserving existing background.
// Does NOT mark the cell as touched, so the default background applies in Flush.
func (b *Buffer) SetFgOnly(x, y int, r rune, fg RGB, attrs Attr) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
}

// SetBgOnly updates the background color while preserving existing rune/foreground.
// Marks the cell as touched to prevent default background override.
func (b *Buffer) SetBgOnly(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *Buffer) SetWithBg(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg}
	b.touched[idx] = true
}

// finalize sets the default background on untouched cells before flushing
func (b *Buffer) finalize(bg RGB) {
	for i := range b.cells {
		if !b.touched[i] {
			b.cells[i].Bg = bg
		}
	}
}

// Flush finalizes the frame with the given background and writes it to the
// screen. Rune 0 renders as a blank cell.
func (b *Buffer) Flush(screen tcell.Screen, bg RGB) {
	b.finalize(bg)
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			cell := b.cells[row+x]
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.
				Foreground(cell.Fg.Tcell()).
				Background(cell.Bg.Tcell())
			if cell.Attrs&AttrBold != 0 {
				style = style.Bold(true)
			}
			if cell.Attrs&AttrDim != 0 {
				style = style.Dim(true)
			}
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}
