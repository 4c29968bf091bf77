package types

import "math"

// Mat4 is a row-major 4x4 matrix stored as a flat 16 element array, mirroring
// the layout used by Vec3/Vec4 above (backed by golang.org/x/image/math/f32
// element order).
type Mat4 [16]float32

// Mat3 is the row-major top-left 3x3 submatrix of a Mat4, used to transform
// normals and directions without translation.
type Mat3 [9]float32

// Ident4 returns the 4x4 identity matrix.
func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate4 builds a translation matrix.
func Translate4(t Vec3) Mat4 {
	m := Ident4()
	m[3], m[7], m[11] = t[0], t[1], t[2]
	return m
}

// Scale4 builds a scaling matrix.
func Scale4(s Vec3) Mat4 {
	return Mat4{
		s[0], 0, 0, 0,
		0, s[1], 0, 0,
		0, 0, s[2], 0,
		0, 0, 0, 1,
	}
}

// RotateAxis4 builds a rotation matrix around an arbitrary (unit) axis by
// angle radians, via the corresponding quaternion.
func RotateAxis4(axis Vec3, angle float32) Mat4 {
	return QuatFromAxisAngle(axis.Normalize(), angle).Normalize().Mat4()
}

// Mul4 multiplies two 4x4 matrices, m*other.
func (m Mat4) Mul4(other Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * other[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// Mul4x1 multiplies the matrix by a column vector.
func (m Mat4) Mul4x1(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]*v[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]*v[3],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]*v[3],
		m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]*v[3],
	}
}

// MulPoint transforms a world/local-space point (implicit w=1), returning
// the transformed point with the perspective divide applied if w != 1.
func (m Mat4) MulPoint(p Vec3) Vec3 {
	v := m.Mul4x1(p.Vec4(1))
	if v[3] != 0 && v[3] != 1 {
		return v.Vec3().Mul(1 / v[3])
	}
	return v.Vec3()
}

// MulVector transforms a direction (implicit w=0); translation is ignored.
func (m Mat4) MulVector(v Vec3) Vec3 {
	return m.Mul4x1(v.Vec4(0)).Vec3()
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[col*4+row] = m[row*4+col]
		}
	}
	return out
}

// Inverse returns the inverse of m via Gauss-Jordan elimination on the
// augmented [m | I] matrix. Used to build a primitive's local<-world
// transform and, transposed, its normal matrix.
func (m Mat4) Inverse() Mat4 {
	var a [4][8]float64
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			a[row][col] = float64(m[row*4+col])
		}
		a[row][4+row] = 1
	}

	for col := 0; col < 4; col++ {
		pivot := col
		maxAbs := math.Abs(a[col][col])
		for row := col + 1; row < 4; row++ {
			if v := math.Abs(a[row][col]); v > maxAbs {
				pivot, maxAbs = row, v
			}
		}
		if maxAbs < 1e-12 {
			// Singular matrix; return identity rather than propagating NaNs
			// into shading.
			return Ident4()
		}
		a[col], a[pivot] = a[pivot], a[col]

		pv := a[col][col]
		for k := 0; k < 8; k++ {
			a[col][k] /= pv
		}
		for row := 0; row < 4; row++ {
			if row == col {
				continue
			}
			factor := a[row][col]
			for k := 0; k < 8; k++ {
				a[row][k] -= factor * a[col][k]
			}
		}
	}

	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row*4+col] = float32(a[row][4+col])
		}
	}
	return out
}

// NormalMatrix returns the inverse-transpose of the upper-left 3x3 of m,
// the matrix used to transform normals back to world space so that
// non-uniform scaling doesn't skew them.
func (m Mat4) NormalMatrix() Mat3 {
	return m.Inverse().Transpose().Mat3()
}

// MulVec3 applies a 3x3 matrix to a vector.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// LookAt builds a world-space transform whose forward (third) axis points
// from eye towards target, with its translation set to eye.
func LookAt(eye, target, up Vec3) Mat4 {
	forward := target.Sub(eye).Normalize()
	right := forward.Cross(up.Normalize()).Normalize()
	newUp := right.Cross(forward)

	return Mat4{
		right[0], newUp[0], forward[0], eye[0],
		right[1], newUp[1], forward[1], eye[1],
		right[2], newUp[2], forward[2], eye[2],
		0, 0, 0, 1,
	}
}
