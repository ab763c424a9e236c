package scene

import "math"

// GrowthStages captions the nested layers, innermost-of-meaning first. Its
// length fixes the layer count; every layer loop indexes this list.
var GrowthStages = [...]string{
	"Seed",
	"Sprout",
	"Branch",
	"Bloom",
	"Compost",
}

// LayerCount is the number of nested wireframe cubes.
const LayerCount = len(GrowthStages)

// Layer material parameters, shared by outer layers and the fractal.
const (
	// LayerEmissive is the emissive intensity applied to wireframe color
	LayerEmissive = 0.3

	// LayerOpacity is the wireframe translucency over the background
	LayerOpacity = 0.7

	// PaletteSlots is the number of layer colors cycled by index
	PaletteSlots = 3

	// CaptionLift raises a stage caption above its layer's top face
	CaptionLift = 0.5
)

// Group pose constants.
const (
	// ClickedYaw is the extra group yaw applied while the structure is clicked
	ClickedYaw = math.Pi / 4

	// HoverSpread is the vertical fan-out distance between adjacent hovered layers
	HoverSpread = 2.0
)

// Fractal sub-structure constants.
const (
	// FractalLevels is the number of nested fractal cubes shown while clicked
	FractalLevels = 3

	// FractalScale shrinks the whole fractal group relative to the outer layers
	FractalScale = 0.5

	// FractalTiltStep is the per-level static rotation about both X and Y
	FractalTiltStep = math.Pi / 4

	// FractalCaptionLift raises the fractal caption above the group
	FractalCaptionLift = 0.75
)

// FractalCaption titles the fractal group while it is visible.
const FractalCaption = "Fractal Self-Reclamation"

// LayerSize returns the edge length of layer i. Sizes strictly decrease
// with index so the cubes nest.
func LayerSize(i int) float64 {
	return 2 - 0.2*float64(i)
}

// LayerOffset returns the vertical displacement of layer i: zero at rest,
// fanned out around the middle layer while hovered.
func LayerOffset(i int, hovered bool) float64 {
	if !hovered {
		return 0
	}
	return float64(i-LayerCount/2) * HoverSpread
}

// LayerSlot returns the palette slot for layer i, cycling through the
// three layer colors.
func LayerSlot(i int) int {
	return i % PaletteSlots
}

// FractalSize returns the edge length of fractal level, before group scale.
func FractalSize(level int) float64 {
	return 1 - 0.3*float64(level)
}

// FractalTilt returns the static rotation of fractal level about X and Y.
func FractalTilt(level int) float64 {
	return float64(level) * FractalTiltStep
}
