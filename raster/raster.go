// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package raster implements the fixed-function back end of the
// pipeline: perspective divide, back-face culling, viewport mapping,
// barycentric triangle setup and scan, depth testing,
// perspective-correct varying interpolation and fragment invocation,
// and the optional alpha-over blend into the framebuffer.
package raster

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/raster/framebuffer"
	"github.com/gviegas/raster/linear"
	"github.com/gviegas/raster/program"
)

const prefix = "raster: "

// coverageEpsilon biases the barycentric inside test: a pixel is
// accepted when every weight is greater than it, so pixel centers on
// an edge (or within 1e-6 outside it) are covered, and a pixel center
// on an edge shared by two triangles is covered by both.
const coverageEpsilon = -1e-6

// Viewport maps NDC x/y in [-1, 1] to a pixel rectangle.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// vertex is one post-clip, post-divide triangle corner ready for
// scan conversion.
type vertex[V any] struct {
	screen linear.V3 // x, y in pixels; z in [0, 1]
	recipW float32
	vary   *V
}

// ndc is clip divided by w; only x and y are needed for the
// back-face test, z is handled by setup.
func ndcXY(clip linear.V4) (float32, float32) {
	recipW := 1 / clip[3]
	return clip[0] * recipW, clip[1] * recipW
}

// signedAreaNDC computes the signed area of the triangle a, b, c in
// NDC x/y; its sign gives the winding used for back-face culling.
func signedAreaNDC(a, b, c linear.V4) float32 {
	ax, ay := ndcXY(a)
	bx, by := ndcXY(b)
	cx, cy := ndcXY(c)
	return (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
}

// backFacing reports whether the NDC triangle a, b, c is back-facing
// under the convention that front-facing triangles have a strictly
// positive signed area.
func backFacing(a, b, c linear.V4) bool {
	return signedAreaNDC(a, b, c) <= 0
}

// setup performs the perspective divide and viewport transform for
// one clip-space vertex.
func setup[V any](vp Viewport, clip linear.V4, vary *V) vertex[V] {
	recipW := 1 / clip[3]
	ndcX := clip[0] * recipW
	ndcY := clip[1] * recipW
	ndcZ := clip[2] * recipW
	return vertex[V]{
		screen: linear.V3{
			(ndcX*0.5+0.5)*float32(vp.Width) + float32(vp.X),
			(ndcY*0.5+0.5)*float32(vp.Height) + float32(vp.Y),
			(ndcZ + 1) * 0.5,
		},
		recipW: recipW,
		vary:   vary,
	}
}

// Result is the outcome of rasterizing one sub-triangle, reported to
// the drawing driver so it can decide whether to keep fanning out the
// remaining sub-triangles of a clipped polygon.
type Result int

const (
	// Drawn means the triangle was tested (and possibly produced
	// fragments); fan-out should continue.
	Drawn Result = iota
	// Culled means the triangle was back-facing and the program is
	// not double-sided; every remaining sub-triangle of the same fan
	// shares this winding, so the driver should stop early.
	Culled
)

// Triangle rasterizes one post-clip triangle (c0, c1, c2 given in
// clip space, with their corresponding varying blocks) into fb, using
// p's shader for fragment invocation.
func Triangle[A, V, U any](p *program.Program[A, V, U], fb *framebuffer.Framebuffer, vp Viewport, c0, c1, c2 linear.V4, v0, v1, v2 *V) Result {
	backface := backFacing(c0, c1, c2)
	if backface && !p.Shader.DoubleSided() {
		return Culled
	}

	a := setup(vp, c0, v0)
	b := setup(vp, c1, v1)
	c := setup(vp, c2, v2)

	minX := math32.Floor(math32.Min(a.screen[0], math32.Min(b.screen[0], c.screen[0])))
	minY := math32.Floor(math32.Min(a.screen[1], math32.Min(b.screen[1], c.screen[1])))
	maxX := math32.Ceil(math32.Max(a.screen[0], math32.Max(b.screen[0], c.screen[0])))
	maxY := math32.Ceil(math32.Max(a.screen[1], math32.Max(b.screen[1], c.screen[1])))

	loX := float32(vp.X)
	loY := float32(vp.Y)
	hiX := float32(vp.X + vp.Width - 1)
	hiY := float32(vp.Y + vp.Height - 1)
	minX = math32.Max(loX, minX)
	minY = math32.Max(loY, minY)
	maxX = math32.Min(hiX, maxX)
	maxY = math32.Min(hiY, maxY)

	if minX > maxX || minY > maxY {
		return Drawn
	}

	abx, aby := b.screen[0]-a.screen[0], b.screen[1]-a.screen[1]
	acx, acy := c.screen[0]-a.screen[0], c.screen[1]-a.screen[1]
	denom := abx*acy - aby*acx
	if denom == 0 {
		return Drawn
	}
	invDenom := 1 / denom

	nFloats := len(program.AsFloats(v0))

	for y := int(minY); y <= int(maxY); y++ {
		py := float32(y) + 0.5
		for x := int(minX); x <= int(maxX); x++ {
			px := float32(x) + 0.5

			apx, apy := px-a.screen[0], py-a.screen[1]
			// Solve AB*s + AC*t = AP for barycentric s (weight on b)
			// and t (weight on c); w0 is the remainder (weight on a).
			s := (apx*acy - apy*acx) * invDenom
			t := (abx*apy - aby*apx) * invDenom
			w0 := 1 - s - t
			w1 := s
			w2 := t

			if w0 <= coverageEpsilon || w1 <= coverageEpsilon || w2 <= coverageEpsilon {
				continue
			}

			depth := w0*a.screen[2] + w1*b.screen[2] + w2*c.screen[2]
			idx := x + y*fb.Width
			if depth > fb.Depth[idx] {
				continue
			}

			r0 := w0 * a.recipW
			r1 := w1 * b.recipW
			r2 := w2 * c.recipW
			normalizer := r0 + r1 + r2

			var current V
			curFloats := program.AsFloats(&current)
			af, bf, cf := program.AsFloats(a.vary), program.AsFloats(b.vary), program.AsFloats(c.vary)
			for j := 0; j < nFloats; j++ {
				curFloats[j] = (r0*af[j] + r1*bf[j] + r2*cf[j]) / normalizer
			}

			var discard bool
			color := p.Shader.Fragment(&current, &p.Uniform, &discard, backface)
			if discard {
				continue
			}

			var out linear.V4
			if p.Shader.EnableBlend() {
				color = linear.SaturateV4(color)
				ci := idx * 4
				dst := linear.V4{
					float32(fb.Color[ci+0]) / 255,
					float32(fb.Color[ci+1]) / 255,
					float32(fb.Color[ci+2]) / 255,
					float32(fb.Color[ci+3]) / 255,
				}
				out = linear.V4{
					color[0]*color[3] + dst[0]*(1-color[3]),
					color[1]*color[3] + dst[1]*(1-color[3]),
					color[2]*color[3] + dst[2]*(1-color[3]),
					dst[3],
				}
			} else {
				out = color
			}

			ci := idx * 4
			fb.Color[ci+0] = toByte(out[0])
			fb.Color[ci+1] = toByte(out[1])
			fb.Color[ci+2] = toByte(out[2])
			fb.Color[ci+3] = toByte(out[3])
			fb.Depth[idx] = depth
		}
	}
	return Drawn
}

func toByte(f float32) byte {
	f = math32.Max(0, math32.Min(1, f))
	return byte(f*255 + 0.5)
}

// DrawTriangle runs the full per-triangle pipeline: the vertex shader
// three times, clipping, and fan-out rasterization of the resulting
// convex polygon.
//
// attrib0..2 must already have been written into p.Attrib(0..2) by
// the caller before invoking DrawTriangle.
func DrawTriangle[A, V, U any](p *program.Program[A, V, U], fb *framebuffer.Framebuffer, vp Viewport) {
	var c [3]linear.V4
	var v [3]V
	for i := 0; i < 3; i++ {
		c[i] = p.Shader.Vertex(p.Attrib(i), &p.Uniform, &v[i])
	}

	n := p.Clip(c[0], c[1], c[2], v[0], v[1], v[2])
	if n == 0 {
		return
	}

	c0, v0 := p.Result(0)
	for i := 0; i < n-2; i++ {
		c1, v1 := p.Result(i + 1)
		c2, v2 := p.Result(i + 2)
		if Triangle(p, fb, vp, c0, c1, c2, v0, v1, v2) == Culled {
			break
		}
	}
}
