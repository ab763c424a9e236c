package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/e-schultz/hypercube/geom"
	"github.com/e-schultz/hypercube/scene"
)

// HypercubeRenderer draws the nested wireframe layers and tracks their
// projected screen footprint for pointer hit-testing.
type HypercubeRenderer struct {
	bounds geom.Rect
}

func NewHypercubeRenderer() *HypercubeRenderer {
	return &HypercubeRenderer{bounds: geom.EmptyRect()}
}

// Bounds returns the cell rectangle the structure covered on the last frame,
// padded by one cell so hover does not flicker at the silhouette.
func (r *HypercubeRenderer) Bounds() geom.Rect {
	return r.bounds
}

func (r *HypercubeRenderer) Render(ctx RenderContext, buf *Buffer) {
	canvas := NewCanvas(buf)
	model := ctx.GroupModel()
	bounds := geom.EmptyRect()

	for i := 0; i < scene.LayerCount; i++ {
		cube := layerCube(i, ctx.Scene.Hovered)
		covered := drawWireCube(ctx, canvas, cube, model, ctx.Palette.Layer(i))
		if !covered.Empty() {
			bounds = bounds.Extend(covered.MinX, covered.MinY).Extend(covered.MaxX, covered.MaxY)
		}
	}

	r.bounds = bounds.Pad(1)
}

// layerCube returns layer i's local-space cube for this frame: nested at
// rest, fanned out vertically while hovered.
func layerCube(i int, hovered bool) geom.Cube {
	return geom.Cube{
		Center: geom.Vec3{Y: scene.LayerOffset(i, hovered)},
		Half:   scene.LayerSize(i) / 2,
	}
}

// drawWireCube projects one cube under the group model and draws its 12
// edges. Edge color is depth-shaded, blended over the background at the
// layer opacity, and floored by the emissive tint so distant lines keep a
// trace of their hue. Returns the cells covered by visible corners.
func drawWireCube(ctx RenderContext, canvas *Canvas, cube geom.Cube, model geom.Mat3, base colorful.Color) geom.Rect {
	vp := ctx.Viewport()
	bg := ctx.BackgroundRGB()
	emissive := FromColorful(base).Scale(scene.LayerEmissive)
	covered := geom.EmptyRect()

	var px, py, depth [8]float64
	var visible [8]bool
	for c := 0; c < 8; c++ {
		p := cube.Corner(c, model)
		px[c], py[c], visible[c] = ctx.Camera.Project(p, vp)
		depth[c] = ctx.Camera.Depth(p)
		if visible[c] {
			cellX, cellY := CellOf(px[c], py[c])
			covered = covered.Extend(cellX, cellY)
		}
	}

	for _, e := range geom.Edges {
		a, b := e[0], e[1]
		if !visible[a] || !visible[b] {
			continue
		}
		shade := ctx.Camera.ShadeFactor((depth[a] + depth[b]) / 2)
		ink := bg.Blend(FromColorful(ctx.Palette.Shade(base, shade)), scene.LayerOpacity)
		ink = ink.Max(emissive)
		canvas.Line(px[a], py[a], px[b], py[b], ink)
	}

	return covered
}
