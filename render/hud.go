package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/e-schultz/hypercube/geom"
)

// HUDRenderer draws the two preference switches and the key hints, and
// exposes the switch hit-boxes so the main loop can route clicks to them
// before the cube itself.
type HUDRenderer struct {
	audioReady  bool
	contrastBox geom.Rect
	soundBox    geom.Rect
}

// NewHUDRenderer creates the HUD. audioReady is fixed at wiring time; when
// false the sound switch carries an unavailability tag (the preference still
// toggles, it just gates nothing).
func NewHUDRenderer(audioReady bool) *HUDRenderer {
	return &HUDRenderer{
		audioReady:  audioReady,
		contrastBox: geom.EmptyRect(),
		soundBox:    geom.EmptyRect(),
	}
}

// ContrastBox returns the clickable cells of the contrast switch.
func (r *HUDRenderer) ContrastBox() geom.Rect { return r.contrastBox }

// SoundBox returns the clickable cells of the sound switch.
func (r *HUDRenderer) SoundBox() geom.Rect { return r.soundBox }

func (r *HUDRenderer) Render(ctx RenderContext, buf *Buffer) {
	fg := FromColorful(ctx.Palette.Caption)
	dim := fg.Scale(0.6)

	r.contrastBox = drawHUDLine(buf, 1, 0, switchLabel(ctx.Scene.HighContrast, "High Contrast", "c"), fg)

	sound := switchLabel(ctx.Scene.SoundEnabled, "Enable Sound", "s")
	if !r.audioReady {
		sound += "  sound unavailable"
	}
	r.soundBox = drawHUDLine(buf, 1, 1, sound, fg)

	drawHUDLine(buf, 1, buf.Height()-1, "q quit   click toggle   drag orbit   wheel zoom", dim)
}

func switchLabel(on bool, label, key string) string {
	box := "[ ]"
	if on {
		box = "[x]"
	}
	return box + " " + label + " (" + key + ")"
}

// drawHUDLine writes one row of text and returns the cells it covered.
func drawHUDLine(buf *Buffer, x, y int, text string, fg RGB) geom.Rect {
	rect := geom.EmptyRect()
	if y < 0 || y >= buf.Height() {
		return rect
	}

	pos := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if pos >= buf.Width() {
			break
		}
		buf.SetFgOnly(pos, y, r, fg, AttrNone)
		rect = rect.Extend(pos, y).Extend(pos+w-1, y)
		pos += w
	}
	return rect
}
