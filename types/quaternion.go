package types

import "math"

// Quat is a unit quaternion used to build a camera's world-space
// orientation matrix from an axis and an angle instead of composing Euler
// rotations directly. Only the axis-angle constructor, normalization and
// the resulting rotation matrix are needed here; the general quaternion
// algebra (composition, conjugate/inverse, direct vector rotation) that a
// full quaternion type would carry has no caller in this package.
type Quat struct {
	V Vec3
	W float32
}

// QuatIdent returns the identity rotation.
func QuatIdent() Quat {
	return Quat{V: Vec3{}, W: 1}
}

// QuatFromAxisAngle builds the quaternion rotating angle radians around
// axis, which must already be a unit vector.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	sin := float32(math.Sin(float64(angle * 0.5)))
	cos := float32(math.Cos(float64(angle * 0.5)))
	return Quat{V: axis.Mul(sin), W: cos}
}

// Len returns the quaternion's norm, treating it as a 4 component vector.
func (q Quat) Len() float32 {
	return float32(math.Sqrt(float64(q.W*q.W + q.V[0]*q.V[0] + q.V[1]*q.V[1] + q.V[2]*q.V[2])))
}

// Normalize returns q's versor. A quaternion already within floatCmpEpsilon
// of unit length is returned unchanged; a zero-length quaternion falls back
// to the identity rather than dividing by zero.
func (q Quat) Normalize() Quat {
	length := q.Len()
	if absF32(1-length) < floatCmpEpsilon {
		return q
	}
	if length == 0 {
		return QuatIdent()
	}
	return Quat{V: q.V.Mul(1 / length), W: q.W / length}
}

// Mat4 returns the homogeneous rotation matrix q represents.
func (q Quat) Mat4() Mat4 {
	w, x, y, z := q.W, q.V[0], q.V[1], q.V[2]
	return Mat4{
		1 - 2*y*y - 2*z*z, 2*x*y - 2*w*z, 2*x*z + 2*w*y, 0,
		2*x*y + 2*w*z, 1 - 2*x*x - 2*z*z, 2*y*z - 2*w*x, 0,
		2*x*z - 2*w*y, 2*y*z + 2*w*x, 1 - 2*x*x - 2*y*y, 0,
		0, 0, 0, 1,
	}
}

func absF32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
