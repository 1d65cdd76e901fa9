// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements math for 3D graphics: vectors,
// quaternions, matrices and the projection/view builders the
// rendering pipeline needs.
package linear

import (
	"github.com/chewxy/math32"
)

// V2 is a 2-component vector of float32.
type V2 [2]float32

// V3 is a 3-component vector of float32.
type V3 [3]float32

// V4 is a 4-component vector of float32.
type V4 [4]float32

// AddV2 returns l + r.
func AddV2(l, r V2) V2 { return V2{l[0] + r[0], l[1] + r[1]} }

// SubV2 returns l - r.
func SubV2(l, r V2) V2 { return V2{l[0] - r[0], l[1] - r[1]} }

// ScaleV2 returns s ⋅ v.
func ScaleV2(s float32, v V2) V2 { return V2{s * v[0], s * v[1]} }

// AddV3 returns l + r.
func AddV3(l, r V3) V3 { return V3{l[0] + r[0], l[1] + r[1], l[2] + r[2]} }

// SubV3 returns l - r.
func SubV3(l, r V3) V3 { return V3{l[0] - r[0], l[1] - r[1], l[2] - r[2]} }

// ScaleV3 returns s ⋅ v.
func ScaleV3(s float32, v V3) V3 { return V3{s * v[0], s * v[1], s * v[2]} }

// DotV3 returns l ⋅ r.
func DotV3(l, r V3) float32 { return l[0]*r[0] + l[1]*r[1] + l[2]*r[2] }

// LenV3 returns the length of v.
func LenV3(v V3) float32 { return math32.Sqrt(DotV3(v, v)) }

// NormV3 returns v normalized. The zero vector is returned unchanged.
func NormV3(v V3) V3 {
	l := LenV3(v)
	if l == 0 {
		return v
	}
	return ScaleV3(1/l, v)
}

// Cross returns l × r.
func Cross(l, r V3) V3 {
	return V3{
		l[1]*r[2] - l[2]*r[1],
		l[2]*r[0] - l[0]*r[2],
		l[0]*r[1] - l[1]*r[0],
	}
}

// NegV3 returns -v.
func NegV3(v V3) V3 { return V3{-v[0], -v[1], -v[2]} }

// LerpV3 returns the linear interpolation of a and b by t.
func LerpV3(a, b V3, t float32) V3 {
	return V3{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}

// AddV4 returns l + r.
func AddV4(l, r V4) V4 {
	return V4{l[0] + r[0], l[1] + r[1], l[2] + r[2], l[3] + r[3]}
}

// SubV4 returns l - r.
func SubV4(l, r V4) V4 {
	return V4{l[0] - r[0], l[1] - r[1], l[2] - r[2], l[3] - r[3]}
}

// ScaleV4 returns s ⋅ v.
func ScaleV4(s float32, v V4) V4 {
	return V4{s * v[0], s * v[1], s * v[2], s * v[3]}
}

// DotV4 returns l ⋅ r.
func DotV4(l, r V4) float32 {
	return l[0]*r[0] + l[1]*r[1] + l[2]*r[2] + l[3]*r[3]
}

// LenV4 returns the length of v.
func LenV4(v V4) float32 { return math32.Sqrt(DotV4(v, v)) }

// NormV4 returns v normalized.
func NormV4(v V4) V4 {
	l := LenV4(v)
	if l == 0 {
		return v
	}
	return ScaleV4(1/l, v)
}

// LerpV4 returns the linear interpolation of a and b by t.
func LerpV4(a, b V4, t float32) V4 {
	return V4{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
		a[3] + (b[3]-a[3])*t,
	}
}

// V3FromV4 drops the w component of v.
func V3FromV4(v V4) V3 { return V3{v[0], v[1], v[2]} }

// V4FromV3 extends v with the given w component.
func V4FromV3(v V3, w float32) V4 { return V4{v[0], v[1], v[2], w} }

// Saturate clamps x to [0, 1].
func Saturate(x float32) float32 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

// SaturateV4 clamps every component of v to [0, 1].
func SaturateV4(v V4) V4 {
	return V4{Saturate(v[0]), Saturate(v[1]), Saturate(v[2]), Saturate(v[3])}
}
