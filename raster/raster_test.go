// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package raster

import (
	"testing"

	"github.com/gviegas/raster/framebuffer"
	"github.com/gviegas/raster/linear"
	"github.com/gviegas/raster/program"
)

// constVarying carries a single interpolated float; used to test the
// interpolation identity and perspective-correctness properties
// independent of any concrete shader.
type constVarying struct {
	V float32
}

type constAttrib struct{}
type constUniform struct {
	Color  linear.V4
	Blend  bool
	Double bool
}

type constShader struct{ u *constUniform }

func (s *constShader) DoubleSided() bool { return s.u.Double }
func (s *constShader) EnableBlend() bool { return s.u.Blend }
func (s *constShader) Vertex(a *constAttrib, u *constUniform, v *constVarying) linear.V4 {
	return linear.V4{}
}
func (s *constShader) Fragment(v *constVarying, u *constUniform, discard *bool, backface bool) linear.V4 {
	return u.Color
}

func newConstProgram(color linear.V4, blend, double bool) *program.Program[constAttrib, constVarying, constUniform] {
	u := &constUniform{Color: color, Blend: blend, Double: double}
	p := program.New[constAttrib, constVarying, constUniform](&constShader{u: u})
	p.Uniform = *u
	p.Shader.(*constShader).u = &p.Uniform
	return p
}

func vp256() Viewport { return Viewport{Width: 256, Height: 256} }

// TestSingleFlatTriangle checks that a white triangle on a black
// background covers the framebuffer's center pixel and leaves a
// pixel outside it untouched.
func TestSingleFlatTriangle(t *testing.T) {
	fb := framebuffer.New(256, 256)
	p := newConstProgram(linear.V4{1, 1, 1, 1}, false, false)

	c0 := linear.V4{-0.5, -0.5, 0, 1}
	c1 := linear.V4{0.5, -0.5, 0, 1}
	c2 := linear.V4{0, 0.5, 0, 1}
	var v0, v1, v2 constVarying

	res := Triangle(p, fb, vp256(), c0, c1, c2, &v0, &v1, &v2)
	if res != Drawn {
		t.Fatalf("Triangle\nhave %v\nwant Drawn", res)
	}

	idx := (128 + 128*256) * 4
	if fb.Color[idx] != 255 || fb.Color[idx+1] != 255 || fb.Color[idx+2] != 255 || fb.Color[idx+3] != 255 {
		t.Fatalf("center pixel\nhave %v %v %v %v\nwant 255 255 255 255", fb.Color[idx], fb.Color[idx+1], fb.Color[idx+2], fb.Color[idx+3])
	}
	// Far corner, outside the triangle.
	idx = (10 + 10*256) * 4
	if fb.Color[idx] != 0 || fb.Color[idx+1] != 0 || fb.Color[idx+2] != 0 || fb.Color[idx+3] != 255 {
		t.Fatalf("outside pixel\nhave %v %v %v %v\nwant 0 0 0 255", fb.Color[idx], fb.Color[idx+1], fb.Color[idx+2], fb.Color[idx+3])
	}
}

// TestBackfaceCull checks that a clockwise-wound triangle with a
// single-sided program produces no fragments.
func TestBackfaceCull(t *testing.T) {
	fb := framebuffer.New(256, 256)
	p := newConstProgram(linear.V4{1, 1, 1, 1}, false, false)

	// Same triangle as above but with v1/v2 swapped, reversing the
	// winding to clockwise in screen space.
	c0 := linear.V4{-0.5, -0.5, 0, 1}
	c1 := linear.V4{0, 0.5, 0, 1}
	c2 := linear.V4{0.5, -0.5, 0, 1}
	var v0, v1, v2 constVarying

	res := Triangle(p, fb, vp256(), c0, c1, c2, &v0, &v1, &v2)
	if res != Culled {
		t.Fatalf("Triangle\nhave %v\nwant Culled", res)
	}

	idx := (128 + 128*256) * 4
	if fb.Color[idx] != 0 || fb.Color[idx+1] != 0 || fb.Color[idx+2] != 0 {
		t.Fatalf("center pixel changed despite culling: %v %v %v", fb.Color[idx], fb.Color[idx+1], fb.Color[idx+2])
	}
}

// TestDepthTest checks that a farther triangle drawn after a nearer
// one does not overwrite the nearer one's color.
func TestDepthTest(t *testing.T) {
	fb := framebuffer.New(256, 256)
	red := newConstProgram(linear.V4{1, 0, 0, 1}, false, false)
	blue := newConstProgram(linear.V4{0, 0, 1, 1}, false, false)

	c0 := linear.V4{-0.5, -0.5, 0, 1}
	c1 := linear.V4{0.5, -0.5, 0, 1}
	c2 := linear.V4{0, 0.5, 0, 1}
	var v0, v1, v2 constVarying

	Triangle(red, fb, vp256(), c0, c1, c2, &v0, &v1, &v2)

	c0f := linear.V4{-0.5, -0.5, 0.5, 1}
	c1f := linear.V4{0.5, -0.5, 0.5, 1}
	c2f := linear.V4{0, 0.5, 0.5, 1}
	Triangle(blue, fb, vp256(), c0f, c1f, c2f, &v0, &v1, &v2)

	idx := (128 + 128*256) * 4
	if fb.Color[idx] != 255 || fb.Color[idx+2] != 0 {
		t.Fatalf("pixel after depth test\nhave R=%v B=%v\nwant R=255 B=0", fb.Color[idx], fb.Color[idx+2])
	}
}

// TestBlendOver checks that alpha-over blend composites the source
// color over the cleared background within ±1 of byte quantization.
func TestBlendOver(t *testing.T) {
	fb := framebuffer.New(256, 256)
	fb.ClearColor(linear.V4{0, 0, 1, 1})

	p := newConstProgram(linear.V4{1, 0, 0, 0.5}, true, false)
	c0 := linear.V4{-0.5, -0.5, 0, 1}
	c1 := linear.V4{0.5, -0.5, 0, 1}
	c2 := linear.V4{0, 0.5, 0, 1}
	var v0, v1, v2 constVarying
	Triangle(p, fb, vp256(), c0, c1, c2, &v0, &v1, &v2)

	idx := (128 + 128*256) * 4
	want := [4]byte{128, 0, 128, 255}
	for i, w := range want {
		if d := int(fb.Color[idx+i]) - int(w); d < -1 || d > 1 {
			t.Fatalf("blended pixel[%d]\nhave %v\nwant %v (±1)", i, fb.Color[idx+i], w)
		}
	}
}

// TestVaryingInterpolationIdentity checks that a constant varying
// value across all three corners survives rasterization unchanged.
func TestVaryingInterpolationIdentity(t *testing.T) {
	fb := framebuffer.New(64, 64)

	var captured float32
	u2 := &constUniform{Color: linear.V4{1, 1, 1, 1}}
	sh := &capturingShader{u: u2, out: &captured}
	p := program.New[constAttrib, constVarying, constUniform](sh)
	p.Uniform = *u2
	sh.u = &p.Uniform

	c0 := linear.V4{-0.5, -0.5, 0, 1}
	c1 := linear.V4{0.5, -0.5, 0, 1}
	c2 := linear.V4{0, 0.5, 0, 1}
	v0 := constVarying{V: 7}
	v1 := constVarying{V: 7}
	v2 := constVarying{V: 7}

	Triangle(p, fb, Viewport{Width: 64, Height: 64}, c0, c1, c2, &v0, &v1, &v2)

	if captured != 7 {
		t.Fatalf("interpolated varying\nhave %v\nwant 7", captured)
	}
}

type capturingShader struct {
	u   *constUniform
	out *float32
}

func (s *capturingShader) DoubleSided() bool { return s.u.Double }
func (s *capturingShader) EnableBlend() bool { return s.u.Blend }
func (s *capturingShader) Vertex(a *constAttrib, u *constUniform, v *constVarying) linear.V4 {
	return linear.V4{}
}
func (s *capturingShader) Fragment(v *constVarying, u *constUniform, discard *bool, backface bool) linear.V4 {
	*s.out = v.V
	return u.Color
}

// TestClippingAcrossNearPlane checks that a triangle with one vertex
// behind the near plane still rasterizes, and every written depth
// lies within [0, 1].
func TestClippingAcrossNearPlane(t *testing.T) {
	fb := framebuffer.New(64, 64)
	p := program.New[constAttrib, constVarying, constUniform](&constShader{u: &constUniform{Color: linear.V4{1, 1, 1, 1}}})
	p.Uniform = constUniform{Color: linear.V4{1, 1, 1, 1}}
	p.Shader.(*constShader).u = &p.Uniform

	c0 := linear.V4{0, 0, 0, -0.1}
	c1 := linear.V4{1, -1, 0, 1}
	c2 := linear.V4{-1, -1, 0, 1}
	var v0, v1, v2 constVarying

	n := p.Clip(c0, c1, c2, v0, v1, v2)
	if n == 0 {
		t.Fatal("Clip discarded a triangle crossing the near plane")
	}

	vp := Viewport{Width: 64, Height: 64}
	cc0, vv0 := p.Result(0)
	drewAny := false
	for i := 0; i < n-2; i++ {
		cc1, vv1 := p.Result(i + 1)
		cc2, vv2 := p.Result(i + 2)
		Triangle(p, fb, vp, cc0, cc1, cc2, vv0, vv1, vv2)
		drewAny = true
	}
	if !drewAny {
		t.Fatal("no sub-triangles produced")
	}
	for _, d := range fb.Depth {
		if d < 0 || d > 1 {
			t.Fatalf("depth out of range: %v", d)
		}
	}
}
