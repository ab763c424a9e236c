package render

import "math"

// Braille cell geometry: every terminal cell subdivides into a 2×4 dot grid.
// With the usual 1:2 glyph aspect the dots come out square, so wireframe
// geometry projects straight into dot coordinates.
const (
	DotsPerCellX = 2
	DotsPerCellY = 4
)

// brailleBase is the first rune of the braille patterns block; the low byte
// of the offset is the dot bitmask.
const brailleBase rune = 0x2800

// brailleBits maps an in-cell dot position to its pattern bit.
var brailleBits = [DotsPerCellY][DotsPerCellX]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas plots braille dots and lines onto a Buffer. Dots landing in a cell
// merge with dots already there; colors merge by channel maximum so crossing
// wireframes brighten instead of occluding.
type Canvas struct {
	buf *Buffer
}

func NewCanvas(buf *Buffer) *Canvas {
	return &Canvas{buf: buf}
}

// DotSize returns the canvas dimensions in dots.
func (c *Canvas) DotSize() (w, h int) {
	return c.buf.Width() * DotsPerCellX, c.buf.Height() * DotsPerCellY
}

// Dot plots a single dot at dot coordinates. Out-of-range dots are dropped.
func (c *Canvas) Dot(dx, dy int, color RGB) {
	if dx < 0 || dy < 0 {
		return
	}
	cellX := dx / DotsPerCellX
	cellY := dy / DotsPerCellY
	if !c.buf.inBounds(cellX, cellY) {
		return
	}

	bit := brailleBits[dy%DotsPerCellY][dx%DotsPerCellX]
	cell := c.buf.At(cellX, cellY)
	if cell.Rune >= brailleBase && cell.Rune <= brailleBase+0xFF {
		c.buf.SetFgOnly(cellX, cellY, cell.Rune|bit, cell.Fg.Max(color), cell.Attrs)
		return
	}
	c.buf.SetFgOnly(cellX, cellY, brailleBase|bit, color, AttrNone)
}

// Line rasterizes a segment between two dot-space points.
func (c *Canvas) Line(x0, y0, x1, y1 float64, color RGB) {
	dx := x1 - x0
	dy := y1 - y0
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(x0 + dx*t))
		y := int(math.Round(y0 + dy*t))
		c.Dot(x, y, color)
	}
}
