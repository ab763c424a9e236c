package render

import (
	"github.com/e-schultz/hypercube/geom"
	"github.com/e-schultz/hypercube/scene"
)

// FractalRenderer draws the clicked-state sub-structure: a half-scale group
// of shrinking cubes, each tilted a further 45° about X and Y per level,
// with its caption above. It exists only while the clicked flag holds; no
// state survives a toggle.
type FractalRenderer struct {
	state *scene.State
}

func NewFractalRenderer(state *scene.State) *FractalRenderer {
	return &FractalRenderer{state: state}
}

// IsVisible reports whether the fractal exists this frame.
func (r *FractalRenderer) IsVisible() bool {
	return r.state.Snapshot().Clicked
}

func (r *FractalRenderer) Render(ctx RenderContext, buf *Buffer) {
	if !ctx.Scene.Clicked {
		return
	}

	canvas := NewCanvas(buf)
	group := ctx.GroupModel()

	for level := 0; level < scene.FractalLevels; level++ {
		tilt := scene.FractalTilt(level)
		model := group.Mul(geom.RotY(tilt)).Mul(geom.RotX(tilt))
		cube := geom.Cube{Half: scene.FractalSize(level) * scene.FractalScale / 2}
		drawWireCube(ctx, canvas, cube, model, ctx.Palette.Slot(level))
	}

	anchor := group.Apply(geom.Vec3{Y: scene.FractalCaptionLift})
	drawCaption(ctx, buf, scene.FractalCaption, anchor)
}
