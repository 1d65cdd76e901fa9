// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package program implements the shader-program abstraction the
// rasterizer drives: a pair of vertex/fragment functions carrying
// per-vertex attributes, per-triangle varyings and per-draw-call
// uniforms of shader-defined layout, plus the clipping-ring scratch
// storage and the Sutherland-Hodgman clipper that operates on it.
//
// The attrib/varying/uniform payloads are Go generic type
// parameters, so the pipeline is monomorphic per shader. The varying
// payload is interpolated as an array of floats by reinterpreting
// its backing memory via AsFloats (every field of a varying struct
// must be float32; this is a contract, not something the type system
// checks).
package program

import (
	"unsafe"

	"github.com/gviegas/raster/linear"
)

const prefix = "program: "

// MaxVaryings is the fixed capacity of the clipping rings: clipping
// a triangle against 7 half-spaces cannot produce more than 10
// vertices (3 + 1 per plane).
const MaxVaryings = 10

// ShaderProgram is implemented by every concrete shader (Blinn-Phong,
// PBR metal/rough, PBR spec/gloss, skybox, unlit, skinning). A is the
// per-vertex attribute block, V is the per-vertex varying block
// (every field must be float32; see AsFloats), U is the per-draw-call
// uniform block.
type ShaderProgram[A any, V any, U any] interface {
	// Vertex computes the clip-space position for one triangle
	// corner, writing interpolated outputs into varying.
	Vertex(attrib *A, uniform *U, varying *V) linear.V4

	// Fragment computes the fragment color. Setting *discard to true
	// causes the rasterizer to skip writing this pixel.
	Fragment(varying *V, uniform *U, discard *bool, backface bool) linear.V4

	// DoubleSided reports whether back-facing triangles should still
	// be rasterized (with backface=true passed to Fragment) instead
	// of culled.
	DoubleSided() bool

	// EnableBlend reports whether the fragment color should be
	// alpha-composited over the existing color instead of replacing
	// it.
	EnableBlend() bool
}

// AsFloats reinterprets v's backing memory as a flat float32 slice,
// the mechanism by which the clipper and rasterizer interpolate an
// opaque varying payload element-wise.
//
// Every field of *V must be float32 and sizeof(V) must be a multiple
// of 4 bytes; violating this is a contract error on the shader
// author's part; AsFloats panics if the size is not a multiple of 4.
func AsFloats[V any](v *V) []float32 {
	n := int(unsafe.Sizeof(*v))
	if n%4 != 0 {
		panic(prefix + "varying payload size is not a multiple of 4 bytes")
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(v)), n/4)
}

// Program bundles a ShaderProgram with its per-draw-call uniform
// block and the scratch storage (attrib blocks, clipping rings,
// current varying) the pipeline needs during a draw call.
//
// A Program is exclusively owned by its draw call: it is never
// shared across programs or goroutines.
type Program[A any, V any, U any] struct {
	Shader  ShaderProgram[A, V, U]
	Uniform U

	attribs [3]A

	inCoord  [MaxVaryings]linear.V4
	inVary   [MaxVaryings]V
	outCoord [MaxVaryings]linear.V4
	outVary  [MaxVaryings]V

	// current is a varying block for the fragment stage. The raster
	// package interpolates each pixel's fragment input into a local
	// value of its own and does not write this field.
	current V
}

// New creates a Program wrapping the given shader.
func New[A any, V any, U any](shader ShaderProgram[A, V, U]) *Program[A, V, U] {
	return &Program[A, V, U]{Shader: shader}
}

// Attrib returns a pointer to the i-th (0, 1 or 2) input vertex's
// attribute block, for the driver to fill before invoking Vertex.
func (p *Program[A, V, U]) Attrib(i int) *A { return &p.attribs[i] }
