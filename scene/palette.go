package scene

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the frame's colors. Primary/Secondary/Accent cycle across
// layers by slot; Background fills untouched cells; Caption colors stage text.
type Palette struct {
	Primary    colorful.Color
	Secondary  colorful.Color
	Accent     colorful.Color
	Background colorful.Color
	Caption    colorful.Color
}

// mustParseHex panics on a malformed literal; go-colorful exposes only the
// error-returning Hex, with this wrapper left to callers.
func mustParseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("mustParseHex: " + err.Error())
	}
	return c
}

// Fixed palette constants. High contrast collapses the layer triple to a
// single white over pure black.
var (
	colorRed   = mustParseHex("#ff3b30")
	colorBlue  = mustParseHex("#3a7bff")
	colorGold  = mustParseHex("#ffd700")
	colorNight = mustParseHex("#1a1b26")
	colorWhite = mustParseHex("#ffffff")
	colorBlack = mustParseHex("#000000")
)

// PaletteFor derives the palette from the contrast preference. Stateless,
// re-evaluated every frame.
func PaletteFor(highContrast bool) Palette {
	if highContrast {
		return Palette{
			Primary:    colorWhite,
			Secondary:  colorWhite,
			Accent:     colorWhite,
			Background: colorBlack,
			Caption:    colorWhite,
		}
	}
	return Palette{
		Primary:    colorRed,
		Secondary:  colorBlue,
		Accent:     colorGold,
		Background: colorNight,
		Caption:    colorWhite,
	}
}

// Slot returns the layer color for a palette slot (0..2).
func (p Palette) Slot(slot int) colorful.Color {
	switch slot {
	case 0:
		return p.Primary
	case 1:
		return p.Secondary
	default:
		return p.Accent
	}
}

// Layer returns the wireframe color for layer i, cycling slots by index.
func (p Palette) Layer(i int) colorful.Color {
	return p.Slot(LayerSlot(i))
}

// Shade dims a line color toward the background by depth. brightness is 1
// for the nearest geometry; blending happens in Lab space so dimmed colors
// keep their hue.
func (p Palette) Shade(c colorful.Color, brightness float64) colorful.Color {
	if brightness >= 1 {
		return c
	}
	if brightness < 0 {
		brightness = 0
	}
	return c.BlendLab(p.Background, 1-brightness).Clamped()
}
