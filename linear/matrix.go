// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"github.com/chewxy/math32"
)

// M3 is a column-major 3x3 matrix of float32.
type M3 [3]V3

// M4 is a column-major 4x4 matrix of float32.
type M4 [4]V4

// IdentityM3 returns the 3x3 identity matrix.
func IdentityM3() M3 { return M3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} }

// IdentityM4 returns the 4x4 identity matrix.
func IdentityM4() M4 { return M4{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}} }

// MulM3 returns l ⋅ r.
func MulM3(l, r M3) (m M3) {
	for i := range m {
		for j := range m {
			for k := range m {
				m[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	return
}

// MulM4 returns l ⋅ r.
func MulM4(l, r M4) (m M4) {
	for i := range m {
		for j := range m {
			for k := range m {
				m[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	return
}

// MulV3 returns m ⋅ v.
func MulV3(m M3, v V3) (r V3) {
	for i := range r {
		for j := range r {
			r[i] += m[j][i] * v[j]
		}
	}
	return
}

// MulV4 returns m ⋅ v.
func MulV4(m M4, v V4) (r V4) {
	for i := range r {
		for j := range r {
			r[i] += m[j][i] * v[j]
		}
	}
	return
}

// TransposeM3 returns the transpose of m.
func TransposeM3(m M3) (t M3) {
	for i := range m {
		for j := range m {
			t[i][j] = m[j][i]
		}
	}
	return
}

// TransposeM4 returns the transpose of m.
func TransposeM4(m M4) (t M4) {
	for i := range m {
		for j := range m {
			t[i][j] = m[j][i]
		}
	}
	return
}

// M3FromM4 extracts the upper-left 3x3 block of m.
func M3FromM4(m M4) M3 {
	return M3{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

// InvertM3 returns the inverse of n.
//
// n must not be singular; this is a contract error, not a
// recoverable condition, and is not checked here.
func InvertM3(n M3) (m M3) {
	s0 := n[1][1]*n[2][2] - n[1][2]*n[2][1]
	s1 := n[1][0]*n[2][2] - n[1][2]*n[2][0]
	s2 := n[1][0]*n[2][1] - n[1][1]*n[2][0]
	idet := 1 / (n[0][0]*s0 - n[0][1]*s1 + n[0][2]*s2)
	m[0][0] = s0 * idet
	m[0][1] = -(n[0][1]*n[2][2] - n[0][2]*n[2][1]) * idet
	m[0][2] = (n[0][1]*n[1][2] - n[0][2]*n[1][1]) * idet
	m[1][0] = -s1 * idet
	m[1][1] = (n[0][0]*n[2][2] - n[0][2]*n[2][0]) * idet
	m[1][2] = -(n[0][0]*n[1][2] - n[0][2]*n[1][0]) * idet
	m[2][0] = s2 * idet
	m[2][1] = -(n[0][0]*n[2][1] - n[0][1]*n[2][0]) * idet
	m[2][2] = (n[0][0]*n[1][1] - n[0][1]*n[1][0]) * idet
	return
}

// InvertM4 returns the inverse of n, via cofactor expansion.
//
// n must not be singular; this is a contract error, not a
// recoverable condition, and is not checked here.
func InvertM4(n M4) (m M4) {
	s0 := n[0][0]*n[1][1] - n[0][1]*n[1][0]
	s1 := n[0][0]*n[1][2] - n[0][2]*n[1][0]
	s2 := n[0][0]*n[1][3] - n[0][3]*n[1][0]
	s3 := n[0][1]*n[1][2] - n[0][2]*n[1][1]
	s4 := n[0][1]*n[1][3] - n[0][3]*n[1][1]
	s5 := n[0][2]*n[1][3] - n[0][3]*n[1][2]
	c0 := n[2][0]*n[3][1] - n[2][1]*n[3][0]
	c1 := n[2][0]*n[3][2] - n[2][2]*n[3][0]
	c2 := n[2][0]*n[3][3] - n[2][3]*n[3][0]
	c3 := n[2][1]*n[3][2] - n[2][2]*n[3][1]
	c4 := n[2][1]*n[3][3] - n[2][3]*n[3][1]
	c5 := n[2][2]*n[3][3] - n[2][3]*n[3][2]
	idet := 1 / (s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0)
	m[0][0] = (c5*n[1][1] - c4*n[1][2] + c3*n[1][3]) * idet
	m[0][1] = (-c5*n[0][1] + c4*n[0][2] - c3*n[0][3]) * idet
	m[0][2] = (s5*n[3][1] - s4*n[3][2] + s3*n[3][3]) * idet
	m[0][3] = (-s5*n[2][1] + s4*n[2][2] - s3*n[2][3]) * idet
	m[1][0] = (-c5*n[1][0] + c2*n[1][2] - c1*n[1][3]) * idet
	m[1][1] = (c5*n[0][0] - c2*n[0][2] + c1*n[0][3]) * idet
	m[1][2] = (-s5*n[3][0] + s2*n[3][2] - s1*n[3][3]) * idet
	m[1][3] = (s5*n[2][0] - s2*n[2][2] + s1*n[2][3]) * idet
	m[2][0] = (c4*n[1][0] - c2*n[1][1] + c0*n[1][3]) * idet
	m[2][1] = (-c4*n[0][0] + c2*n[0][1] - c0*n[0][3]) * idet
	m[2][2] = (s4*n[3][0] - s2*n[3][1] + s0*n[3][3]) * idet
	m[2][3] = (-s4*n[2][0] + s2*n[2][1] - s0*n[2][3]) * idet
	m[3][0] = (-c3*n[1][0] + c1*n[1][1] - c0*n[1][2]) * idet
	m[3][1] = (c3*n[0][0] - c1*n[0][1] + c0*n[0][2]) * idet
	m[3][2] = (-s3*n[3][0] + s1*n[3][1] - s0*n[3][2]) * idet
	m[3][3] = (s3*n[2][0] - s1*n[2][1] + s0*n[2][2]) * idet
	return
}

// InverseTransposeM3 returns the inverse-transpose of the upper-left
// 3x3 block of m, as used to transform normals under a non-uniform
// scale.
func InverseTransposeM3(m M4) M3 {
	return TransposeM3(InvertM3(M3FromM4(m)))
}

// Translation returns a translation matrix.
func Translation(t V3) M4 {
	m := IdentityM4()
	m[3] = V4{t[0], t[1], t[2], 1}
	return m
}

// Scaling returns a scaling matrix.
func Scaling(s V3) M4 {
	return M4{{s[0], 0, 0, 0}, {0, s[1], 0, 0}, {0, 0, s[2], 0}, {0, 0, 0, 1}}
}

// RotationM4 returns the rotation matrix represented by q.
func RotationM4(q Q) M4 {
	x, y, z, w := q.V[0], q.V[1], q.V[2], q.R
	x2, y2, z2 := x+x, y+y, z+z
	xx, yy, zz := x*x2, y*y2, z*z2
	xy, xz, yz := x*y2, x*z2, y*z2
	wx, wy, wz := w*x2, w*y2, w*z2
	return M4{
		{1 - (yy + zz), xy + wz, xz - wy, 0},
		{xy - wz, 1 - (xx + zz), yz + wx, 0},
		{xz + wy, yz - wx, 1 - (xx + yy), 0},
		{0, 0, 0, 1},
	}
}

// FromTRS composes translation, rotation and scale into a single
// matrix, applied translate · rotate · scale to a column vector.
func FromTRS(t V3, r Q, s V3) M4 {
	return MulM4(Translation(t), MulM4(RotationM4(r), Scaling(s)))
}

// Perspective returns a right-handed perspective projection matrix
// whose post-divide z lies in [-1, +1] (OpenGL convention).
// fovy is the vertical field of view, in radians.
func Perspective(fovy, aspect, near, far float32) M4 {
	f := 1 / math32.Tan(fovy/2)
	nf := 1 / (near - far)
	return M4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) * nf, -1},
		{0, 0, 2 * far * near * nf, 0},
	}
}

// Ortho returns a right-handed orthographic projection matrix whose
// post-divide z lies in [-1, +1] (OpenGL convention).
func Ortho(left, right, bottom, top, near, far float32) M4 {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	fn := 1 / (far - near)
	return M4{
		{2 * rl, 0, 0, 0},
		{0, 2 * tb, 0, 0},
		{0, 0, -2 * fn, 0},
		{-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1},
	}
}

// LookAt returns the view matrix for a camera at eye looking towards
// target, with the given up direction. It is the inverse of the
// camera frame: z = normalize(eye-target), x = normalize(up×z),
// y = z×x.
func LookAt(eye, target, up V3) M4 {
	z := NormV3(SubV3(eye, target))
	x := NormV3(Cross(up, z))
	y := Cross(z, x)
	return M4{
		{x[0], y[0], z[0], 0},
		{x[1], y[1], z[1], 0},
		{x[2], y[2], z[2], 0},
		{-DotV3(x, eye), -DotV3(y, eye), -DotV3(z, eye), 1},
	}
}
