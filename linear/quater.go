// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"github.com/chewxy/math32"
)

// Q is a quaternion of float32.
type Q struct {
	V V3
	R float32
}

// IdentityQ returns the identity quaternion.
func IdentityQ() Q { return Q{R: 1} }

// MulQ returns l ⋅ r.
func MulQ(l, r Q) Q {
	v := AddV3(ScaleV3(r.R, l.V), ScaleV3(l.R, r.V))
	v = AddV3(v, Cross(l.V, r.V))
	return Q{V: v, R: l.R*r.R - DotV3(l.V, r.V)}
}

// DotQ returns l ⋅ r, treating both as 4-component vectors.
func DotQ(l, r Q) float32 { return DotV3(l.V, r.V) + l.R*r.R }

// NegQ returns -q.
func NegQ(q Q) Q { return Q{V: NegV3(q.V), R: -q.R} }

// NormQ returns q normalized.
func NormQ(q Q) Q {
	l := math32.Sqrt(DotQ(q, q))
	if l == 0 {
		return q
	}
	return Q{V: ScaleV3(1/l, q.V), R: q.R / l}
}

// nlerpEpsilon is the |cos θ| threshold above which Slerp falls
// back to normalized linear interpolation, to avoid dividing by a
// near-zero sin θ.
const nlerpEpsilon = 1e-6

// Slerp returns the spherical linear interpolation of a and b by t.
// It flips the sign of b when a·b < 0 to take the short arc, and
// falls back to nlerp when |cos θ| > 1 - nlerpEpsilon.
func Slerp(a, b Q, t float32) Q {
	cosTheta := DotQ(a, b)
	if cosTheta < 0 {
		b = NegQ(b)
		cosTheta = -cosTheta
	}
	if cosTheta > 1-nlerpEpsilon {
		return NormQ(Q{
			V: LerpV3(a.V, b.V, t),
			R: a.R + (b.R-a.R)*t,
		})
	}
	theta := math32.Acos(cosTheta)
	sinTheta := math32.Sin(theta)
	wa := math32.Sin((1-t)*theta) / sinTheta
	wb := math32.Sin(t*theta) / sinTheta
	return Q{
		V: AddV3(ScaleV3(wa, a.V), ScaleV3(wb, b.V)),
		R: wa*a.R + wb*b.R,
	}
}

// FromAxisAngle returns the quaternion representing a rotation of
// angle radians around axis, which must be normalized.
func FromAxisAngle(axis V3, angle float32) Q {
	s := math32.Sin(angle / 2)
	return Q{V: ScaleV3(s, axis), R: math32.Cos(angle / 2)}
}
