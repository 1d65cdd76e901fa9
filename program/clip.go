// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package program

import "github.com/gviegas/raster/linear"

// clipEpsilon is the inside-test tolerance for the positive-w
// half-space (w must reach it, not merely be non-negative, to keep
// the subsequent perspective divide well-defined).
const clipEpsilon = 1e-6

// plane identifies one of the seven clip half-spaces, tested in this
// exact order.
type plane int

const (
	planePositiveW plane = iota
	planePositiveX
	planeNegativeX
	planePositiveY
	planeNegativeY
	planePositiveZ
	planeNegativeZ
	planeCount
)

func inside(pl plane, v linear.V4) bool {
	switch pl {
	case planePositiveW:
		return v[3] >= clipEpsilon
	case planePositiveX:
		return v[0] <= v[3]
	case planeNegativeX:
		return v[0] >= -v[3]
	case planePositiveY:
		return v[1] <= v[3]
	case planeNegativeY:
		return v[1] >= -v[3]
	case planePositiveZ:
		return v[2] <= v[3]
	case planeNegativeZ:
		return v[2] >= -v[3]
	}
	panic(prefix + "bad plane")
}

// ratio returns the parameter t in [0, 1] at which the segment from
// prev to curr crosses pl, for use with linear.LerpV4(prev, curr, t).
func ratio(pl plane, prev, curr linear.V4) float32 {
	var dp, dc float32
	switch pl {
	case planePositiveW:
		dp, dc = prev[3]-clipEpsilon, curr[3]-clipEpsilon
	case planePositiveX:
		dp, dc = prev[3]-prev[0], curr[3]-curr[0]
	case planeNegativeX:
		dp, dc = prev[3]+prev[0], curr[3]+curr[0]
	case planePositiveY:
		dp, dc = prev[3]-prev[1], curr[3]-curr[1]
	case planeNegativeY:
		dp, dc = prev[3]+prev[1], curr[3]+curr[1]
	case planePositiveZ:
		dp, dc = prev[3]-prev[2], curr[3]-curr[2]
	case planeNegativeZ:
		dp, dc = prev[3]+prev[2], curr[3]+curr[2]
	default:
		panic(prefix + "bad plane")
	}
	return dp / (dp - dc)
}

// allInside reports whether v lies inside (or on) every plane,
// letting Clip take a fast path that skips the full Sutherland-Hodgman
// walk for the (common) case of a fully visible triangle.
func allInside(v linear.V4) bool {
	for pl := plane(0); pl < planeCount; pl++ {
		if !inside(pl, v) {
			return false
		}
	}
	return true
}

// Clip takes the three clip-space positions and varying blocks the
// vertex shader produced for a triangle's corners, stores them in the
// input ring, and clips the triangle they form against the canonical clip-space
// frustum, in the fixed order positive-W, +-X, +-Y, +-Z.
//
// It returns the number of vertices in the resulting convex polygon
// (0 if the triangle was entirely discarded, otherwise in [3,
// MaxVaryings]); the clipped coordinates and varyings are left in the
// rings returned by Result.
func (p *Program[A, V, U]) Clip(clip0, clip1, clip2 linear.V4, vary0, vary1, vary2 V) int {
	p.inCoord[0], p.inCoord[1], p.inCoord[2] = clip0, clip1, clip2
	p.inVary[0], p.inVary[1], p.inVary[2] = vary0, vary1, vary2

	if allInside(clip0) && allInside(clip1) && allInside(clip2) {
		p.outCoord[0], p.outCoord[1], p.outCoord[2] = clip0, clip1, clip2
		p.outVary[0], p.outVary[1], p.outVary[2] = vary0, vary1, vary2
		return 3
	}

	n := 3
	for pl := plane(0); pl < planeCount; pl++ {
		var srcCoord, dstCoord *[MaxVaryings]linear.V4
		var srcVary, dstVary *[MaxVaryings]V
		if pl%2 == 0 {
			srcCoord, srcVary = &p.inCoord, &p.inVary
			dstCoord, dstVary = &p.outCoord, &p.outVary
		} else {
			srcCoord, srcVary = &p.outCoord, &p.outVary
			dstCoord, dstVary = &p.inCoord, &p.inVary
		}
		m := 0
		for i := 0; i < n; i++ {
			j := (i - 1 + n) % n
			prevC, currC := srcCoord[j], srcCoord[i]
			prevIn, currIn := inside(pl, prevC), inside(pl, currC)
			if prevIn != currIn {
				t := ratio(pl, prevC, currC)
				dstCoord[m] = linear.LerpV4(prevC, currC, t)
				lerpVarying(&dstVary[m], &srcVary[j], &srcVary[i], t)
				m++
			}
			if currIn {
				dstCoord[m] = currC
				dstVary[m] = srcVary[i]
				m++
			}
		}
		n = m
		if n < 3 {
			return 0
		}
	}
	// planeCount is odd, so the final destination buffer is always
	// "out" (see the pl%2 assignment above).
	return n
}

// Result returns the clipped polygon's i-th clip-space position and
// varying block, as left by the most recent call to Clip.
func (p *Program[A, V, U]) Result(i int) (linear.V4, *V) {
	return p.outCoord[i], &p.outVary[i]
}

func lerpVarying[V any](dst, a, b *V, t float32) {
	df, af, bf := AsFloats(dst), AsFloats(a), AsFloats(b)
	for i := range df {
		df[i] = af[i] + (bf[i]-af[i])*t
	}
}
