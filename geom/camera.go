package geom

import "math"

// Camera presets and limits. Distance is the orbit radius from the origin;
// pitch is clamped short of the poles so the view never flips.
const (
	DefaultDistance = 9.0
	MinDistance     = 4.0
	MaxDistance     = 30.0
	MaxPitch        = 1.2
	ZoomStep        = 0.8
	OrbitStepX      = 0.045 // radians per dragged cell, horizontal
	OrbitStepY      = 0.09  // radians per dragged cell, vertical

	// focalScale sizes the projection relative to the viewport so the scene
	// survives resize without reconfiguration.
	focalScale = 0.8

	nearZ = 0.5
)

// Camera orbits the origin. Yaw/Pitch rotate the scene into view space;
// Distance acts as zoom.
type Camera struct {
	Distance float64
	Yaw      float64
	Pitch    float64
}

func NewCamera() Camera {
	return Camera{Distance: DefaultDistance}
}

// Zoom moves the camera along the view axis. Positive steps zoom in.
func (c *Camera) Zoom(steps int) {
	c.Distance -= float64(steps) * ZoomStep
	if c.Distance < MinDistance {
		c.Distance = MinDistance
	}
	if c.Distance > MaxDistance {
		c.Distance = MaxDistance
	}
}

// Orbit rotates the view by a drag delta measured in cells. Pitch is clamped;
// yaw wraps freely.
func (c *Camera) Orbit(dx, dy int) {
	c.Yaw += float64(dx) * OrbitStepX
	c.Pitch += float64(dy) * OrbitStepY
	if c.Pitch > MaxPitch {
		c.Pitch = MaxPitch
	}
	if c.Pitch < -MaxPitch {
		c.Pitch = -MaxPitch
	}
}

// View returns the world→view rotation for the current orbit angles.
func (c Camera) View() Mat3 {
	return RotX(c.Pitch).Mul(RotY(c.Yaw))
}

// Viewport captures the projection target in braille-dot coordinates:
// 2 dots per cell horizontally, 4 vertically. With the usual 1:2 cell aspect
// this makes dots square, so a single focal length serves both axes.
type Viewport struct {
	DotW, DotH int
}

// ViewportFor derives the dot-space viewport from a cell grid.
func ViewportFor(cellW, cellH int) Viewport {
	return Viewport{DotW: cellW * 2, DotH: cellH * 4}
}

func (vp Viewport) focal() float64 {
	m := vp.DotW
	if vp.DotH < m {
		m = vp.DotH
	}
	return float64(m) * focalScale
}

// Project maps a world point to dot coordinates. The second return is false
// when the point lies behind the near plane and must not be drawn.
func (c Camera) Project(p Vec3, vp Viewport) (x, y float64, ok bool) {
	v := c.View().Apply(p)
	z := c.Distance - v.Z
	if z < nearZ {
		return 0, 0, false
	}
	f := vp.focal()
	x = float64(vp.DotW)/2 + f*v.X/z
	y = float64(vp.DotH)/2 - f*v.Y/z
	return x, y, true
}

// Depth returns the view-space distance of p from the camera, used for
// depth-shading line brightness.
func (c Camera) Depth(p Vec3) float64 {
	v := c.View().Apply(p)
	return c.Distance - v.Z
}

// DepthRange brackets the plausible depth interval for shading given the
// current zoom: anything at the orbit center sits at Distance.
func (c Camera) DepthRange() (near, far float64) {
	spread := 3.0
	near = c.Distance - spread
	if near < nearZ {
		near = nearZ
	}
	return near, c.Distance + spread
}

// ShadeFactor converts a depth to a [0,1] brightness factor, 1 nearest.
func (c Camera) ShadeFactor(depth float64) float64 {
	near, far := c.DepthRange()
	if far <= near {
		return 1
	}
	t := (depth - near) / (far - near)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return 1 - 0.6*t
}

// Rect is an inclusive cell-space rectangle used for pointer hit-testing.
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

// EmptyRect returns a rectangle that contains nothing.
func EmptyRect() Rect {
	return Rect{MinX: math.MaxInt32, MinY: math.MaxInt32, MaxX: math.MinInt32, MaxY: math.MinInt32}
}

func (r Rect) Empty() bool {
	return r.MinX > r.MaxX || r.MinY > r.MaxY
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Extend grows the rectangle to cover the cell at (x, y).
func (r Rect) Extend(x, y int) Rect {
	if x < r.MinX {
		r.MinX = x
	}
	if y < r.MinY {
		r.MinY = y
	}
	if x > r.MaxX {
		r.MaxX = x
	}
	if y > r.MaxY {
		r.MaxY = y
	}
	return r
}

// Pad expands every side by n cells, useful for forgiving hover targets.
func (r Rect) Pad(n int) Rect {
	if r.Empty() {
		return r
	}
	return Rect{MinX: r.MinX - n, MinY: r.MinY - n, MaxX: r.MaxX + n, MaxY: r.MaxY + n}
}
