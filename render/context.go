package render

import (
	"github.com/e-schultz/hypercube/geom"
	"github.com/e-schultz/hypercube/scene"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Scene snapshot for this frame
	Scene scene.View

	// Palette derived from the contrast preference
	Palette scene.Palette

	// Group rotation angles (radians)
	AngleX float64
	AngleY float64

	// Orbital camera for projection
	Camera geom.Camera

	// Screen dimensions (terminal cells)
	Width  int
	Height int
}

// Viewport returns the braille-dot projection target for this frame.
func (ctx RenderContext) Viewport() geom.Viewport {
	return geom.ViewportFor(ctx.Width, ctx.Height)
}

// BackgroundRGB returns the frame background quantized for cell compositing.
func (ctx RenderContext) BackgroundRGB() RGB {
	return FromColorful(ctx.Palette.Background)
}

// GroupModel returns the orientation of the whole cube group: the animated
// rotation, plus the extra 45° yaw while the structure is clicked.
func (ctx RenderContext) GroupModel() geom.Mat3 {
	m := geom.Euler(ctx.AngleX, ctx.AngleY)
	if ctx.Scene.Clicked {
		m = geom.RotY(scene.ClickedYaw).Mul(m)
	}
	return m
}

// CellOf converts a projected dot coordinate to its containing cell.
func CellOf(x, y float64) (cellX, cellY int) {
	return int(x) / DotsPerCellX, int(y) / DotsPerCellY
}
