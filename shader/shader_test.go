// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package shader

import (
	"testing"

	"github.com/gviegas/raster/framebuffer"
	"github.com/gviegas/raster/linear"
	"github.com/gviegas/raster/material"
	"github.com/gviegas/raster/texture"
)

func TestBlinnVertexProjectsPosition(t *testing.T) {
	var s Blinn
	a := Attrib{Position: linear.V3{1, 2, 3}, Normal: linear.V3{0, 0, 1}}
	u := BlinnUniform{
		Model:     linear.IdentityM4(),
		View:      linear.IdentityM4(),
		Proj:      linear.IdentityM4(),
		NormalMat: linear.IdentityM3(),
	}
	var v BlinnVarying
	clip := s.Vertex(&a, &u, &v)
	if clip != (linear.V4{1, 2, 3, 1}) {
		t.Fatalf("Vertex clip position\nhave %v\nwant [1 2 3 1]", clip)
	}
	if v.WorldPos != a.Position {
		t.Fatalf("Vertex world position\nhave %v\nwant %v", v.WorldPos, a.Position)
	}
}

func TestBlinnFragmentUnlitAtZeroLight(t *testing.T) {
	var s Blinn
	u := BlinnUniform{
		BaseColor: material.BaseColor{Factor: [4]float32{1, 1, 1, 1}},
		Ambient:   0,
		Punctual:  0,
	}
	v := BlinnVarying{Normal: linear.V3{0, 0, 1}}
	var discard bool
	c := s.Fragment(&v, &u, &discard, false)
	if discard {
		t.Fatal("Fragment unexpectedly discarded")
	}
	if c[0] != 0 || c[1] != 0 || c[2] != 0 {
		t.Fatalf("Fragment with zero light\nhave %v\nwant black", c)
	}
}

func TestUnlitPassesBaseColorThrough(t *testing.T) {
	var s Unlit
	u := UnlitUniform{Material: material.Unlit{BaseColor: material.BaseColor{Factor: [4]float32{0.2, 0.4, 0.6, 1}}}}
	var v UnlitVarying
	var discard bool
	c := s.Fragment(&v, &u, &discard, false)
	if discard {
		t.Fatal("Fragment unexpectedly discarded")
	}
	if c[0] != 0.2 || c[1] != 0.4 || c[2] != 0.6 {
		t.Fatalf("Unlit color\nhave %v\nwant [0.2 0.4 0.6]", c)
	}
}

func TestAlphaMaskDiscardsBelowCutoff(t *testing.T) {
	var s Unlit
	u := UnlitUniform{Material: material.Unlit{
		BaseColor:   material.BaseColor{Factor: [4]float32{1, 1, 1, 0.1}},
		AlphaMode:   material.AlphaMask,
		AlphaCutoff: 0.5,
	}}
	var v UnlitVarying
	var discard bool
	s.Fragment(&v, &u, &discard, false)
	if !discard {
		t.Fatal("Fragment should discard when alpha is below the mask cutoff")
	}
}

func TestSkyboxForcesFarDepth(t *testing.T) {
	var s Skybox
	u := SkyboxUniform{View: linear.IdentityM4(), Proj: linear.IdentityM4()}
	a := Attrib{Position: linear.V3{1, 0, 0}}
	var v SkyboxVarying
	clip := s.Vertex(&a, &u, &v)
	if clip[2] != clip[3] {
		t.Fatalf("Skybox clip z should equal w\nhave z=%v w=%v", clip[2], clip[3])
	}
	if v.Direction != a.Position {
		t.Fatalf("Skybox direction\nhave %v\nwant %v", v.Direction, a.Position)
	}
}

func TestBlinnShadowMapDarkensFragment(t *testing.T) {
	// A shadow map holding depth 0 everywhere: every fragment is
	// occluded from the light's point of view.
	fb := framebuffer.New(2, 2)
	fb.ClearDepth(0)
	occluded := texture.FromDepth(fb)

	var s Blinn
	u := BlinnUniform{
		BaseColor: material.BaseColor{Factor: [4]float32{1, 1, 1, 1}},
		LightDir:  linear.V3{0, 0, -1},
		Ambient:   0.1,
		Punctual:  1,
		ShadowMap: occluded,
	}
	v := BlinnVarying{
		Normal:   linear.V3{0, 0, 1},
		DepthPos: linear.V3{0, 0, 0.5},
	}
	var discard bool
	c := s.Fragment(&v, &u, &discard, false)
	if d := c[0] - 0.1; d > 1e-4 || d < -1e-4 {
		t.Fatalf("shadowed fragment\nhave %v\nwant ambient-only 0.1", c[0])
	}

	// Same fragment with no shadow map bound: lit.
	u.ShadowMap = nil
	c = s.Fragment(&v, &u, &discard, false)
	if c[0] <= 0.5 {
		t.Fatalf("unshadowed fragment\nhave %v\nwant > 0.5", c[0])
	}
}

func TestDepthVertexProjectsThroughLight(t *testing.T) {
	var s Depth
	u := DepthUniform{
		Model:     linear.IdentityM4(),
		LightView: linear.IdentityM4(),
		LightProj: linear.Ortho(-1, 1, -1, 1, 0, 2),
	}
	a := Attrib{Position: linear.V3{0, 0, -1}}
	var v DepthVarying
	clip := s.Vertex(&a, &u, &v)
	if clip[3] != 1 {
		t.Fatalf("Depth clip w\nhave %v\nwant 1", clip[3])
	}
	if clip[2] < -1 || clip[2] > 1 {
		t.Fatalf("Depth clip z out of range: %v", clip[2])
	}
}
