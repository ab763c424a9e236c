package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/e-schultz/hypercube/geom"
	"github.com/e-schultz/hypercube/scene"
)

// fallbackMarker replaces a caption that cannot be shown. The scene degrades
// to a dot rather than going blank.
const fallbackMarker = '●'

// StageLabelsRenderer floats each layer's growth-stage caption above its top
// face while the structure is hovered.
type StageLabelsRenderer struct {
	state *scene.State
}

func NewStageLabelsRenderer(state *scene.State) *StageLabelsRenderer {
	return &StageLabelsRenderer{state: state}
}

// IsVisible reports whether captions are shown this frame.
func (r *StageLabelsRenderer) IsVisible() bool {
	return r.state.Snapshot().Hovered
}

func (r *StageLabelsRenderer) Render(ctx RenderContext, buf *Buffer) {
	if !ctx.Scene.Hovered {
		return
	}

	model := ctx.GroupModel()
	for i, caption := range scene.GrowthStages {
		anchor := layerCube(i, true).Top(scene.CaptionLift, model)
		drawCaption(ctx, buf, caption, anchor)
	}
}

// drawCaption draws billboarded text centered on the projected anchor,
// drawn over whatever geometry is already in those cells. Falls back to a
// marker when the text has no measurable width; draws nothing when the
// anchor leaves the screen.
func drawCaption(ctx RenderContext, buf *Buffer, text string, anchor geom.Vec3) {
	x, y, ok := ctx.Camera.Project(anchor, ctx.Viewport())
	if !ok {
		return
	}
	cellX, cellY := CellOf(x, y)
	fg := FromColorful(ctx.Palette.Caption)

	width := runewidth.StringWidth(text)
	if width == 0 {
		buf.SetFgOnly(cellX, cellY, fallbackMarker, fg, AttrNone)
		return
	}

	startX := cellX - width/2
	if cellY < 0 || cellY >= buf.Height() || startX+width <= 0 || startX >= buf.Width() {
		buf.SetFgOnly(cellX, cellY, fallbackMarker, fg, AttrNone)
		return
	}

	pos := startX
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		buf.SetFgOnly(pos, cellY, r, fg, AttrBold)
		pos += w
	}
}
