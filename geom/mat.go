package geom

import "math"

// Mat3 is a 3×3 matrix (row-major).
type Mat3 struct {
	M [3][3]float64
}

func I3() Mat3 {
	return Mat3{M: [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// RotX rotates about the X axis (YZ plane) by a radians.
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	M := I3()
	M.M[1][1], M.M[1][2] = c, -s
	M.M[2][1], M.M[2][2] = s, c
	return M
}

// RotY rotates about the Y axis (XZ plane) by a radians.
func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	M := I3()
	M.M[0][0], M.M[0][2] = c, s
	M.M[2][0], M.M[2][2] = -s, c
	return M
}

// RotZ rotates about the Z axis (XY plane) by a radians.
func RotZ(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	M := I3()
	M.M[0][0], M.M[0][1] = c, -s
	M.M[1][0], M.M[1][1] = s, c
	return M
}

func (A Mat3) Mul(B Mat3) Mat3 {
	var R Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += A.M[r][k] * B.M[k][c]
			}
			R.M[r][c] = sum
		}
	}
	return R
}

func (A Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		A.M[0][0]*v.X + A.M[0][1]*v.Y + A.M[0][2]*v.Z,
		A.M[1][0]*v.X + A.M[1][1]*v.Y + A.M[1][2]*v.Z,
		A.M[2][0]*v.X + A.M[2][1]*v.Y + A.M[2][2]*v.Z,
	}
}

// Euler composes the animated group orientation from per-axis angles,
// X applied first, then Y.
func Euler(x, y float64) Mat3 {
	return RotY(y).Mul(RotX(x))
}
