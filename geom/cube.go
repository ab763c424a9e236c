package geom

// Corners lists the 8 corners of the unit cube, half-extent 1 on every axis.
// Index encodes the sign pattern: bit 0 = +X, bit 1 = +Y, bit 2 = +Z.
var Corners = [8]Vec3{
	{-1, -1, -1},
	{1, -1, -1},
	{-1, 1, -1},
	{1, 1, -1},
	{-1, -1, 1},
	{1, -1, 1},
	{-1, 1, 1},
	{1, 1, 1},
}

// Edges lists the 12 cube edges as corner index pairs. Two corners share an
// edge when their sign patterns differ in exactly one bit.
var Edges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // along X
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // along Y
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // along Z
}

// Cube is an axis-aligned box in its local frame: corners at Center ± Half,
// oriented by an external model matrix at transform time.
type Cube struct {
	Center Vec3
	Half   float64
}

// Corner returns world-space corner i under the given model orientation.
func (c Cube) Corner(i int, model Mat3) Vec3 {
	return model.Apply(c.Center.Add(Corners[i].Mul(c.Half)))
}

// Top returns the point sitting `lift` above the cube's top face in local
// space, transformed by the model orientation. Caption anchors use this.
func (c Cube) Top(lift float64, model Mat3) Vec3 {
	return model.Apply(c.Center.Add(Vec3{0, c.Half + lift, 0}))
}
