// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package shader

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/raster/linear"
	"github.com/gviegas/raster/material"
	"github.com/gviegas/raster/texture"
)

// BlinnVarying is Blinn's per-vertex output: world-space position
// and normal plus texture coordinates, interpolated by the
// rasterizer. DepthPos is the position in the light's clip space,
// used for the shadow-map comparison.
type BlinnVarying struct {
	WorldPos linear.V3
	Normal   linear.V3
	TexCoord linear.V2
	DepthPos linear.V3
}

// BlinnUniform is Blinn's per-draw-call uniform block.
type BlinnUniform struct {
	Model     linear.M4
	View      linear.M4
	Proj      linear.M4
	NormalMat linear.M3

	LightDir  linear.V3
	CameraPos linear.V3
	Ambient   float32
	Punctual  float32

	// LightVP and ShadowMap enable shadow mapping when ShadowMap is
	// non-nil: LightVP projects world positions into the light's
	// clip space, and ShadowMap holds the depth rendered from the
	// light (see texture.FromDepth).
	LightVP   linear.M4
	ShadowMap *texture.Texture

	BaseColor material.BaseColor
	Shininess float32

	AlphaMode   int
	AlphaCutoff float32
}

// Blinn is a classic Blinn-Phong shader: ambient + diffuse (N·L) +
// specular (N·H)^shininess, with optional shadow mapping.
type Blinn struct {
	DoubleSidedFlag bool
	BlendFlag       bool
}

func (s *Blinn) DoubleSided() bool { return s.DoubleSidedFlag }
func (s *Blinn) EnableBlend() bool { return s.BlendFlag }

func (s *Blinn) Vertex(a *Attrib, u *BlinnUniform, v *BlinnVarying) linear.V4 {
	world := linear.MulV4(u.Model, linear.V4FromV3(a.Position, 1))
	v.WorldPos = linear.V3FromV4(world)
	v.Normal = linear.MulV3(u.NormalMat, a.Normal)
	v.TexCoord = a.TexCoord
	if u.ShadowMap != nil {
		v.DepthPos = linear.V3FromV4(linear.MulV4(u.LightVP, world))
	}
	clip := linear.MulV4(u.Proj, linear.MulV4(u.View, world))
	return clip
}

// inShadow compares the fragment's light-space depth against the
// shadow map, with a slope-scaled bias to avoid acne on surfaces
// nearly parallel to the light.
func inShadow(v *BlinnVarying, u *BlinnUniform, nDotL float32) bool {
	if u.ShadowMap == nil {
		return false
	}
	su := (v.DepthPos[0] + 1) * 0.5
	sv := (v.DepthPos[1] + 1) * 0.5
	d := (v.DepthPos[2] + 1) * 0.5
	bias := math32.Max(0.05*(1-nDotL), 0.005)
	closest := u.ShadowMap.Sample(su, sv)[0]
	return d-bias > closest
}

func (s *Blinn) Fragment(v *BlinnVarying, u *BlinnUniform, discard *bool, backface bool) linear.V4 {
	n := linear.NormV3(v.Normal)
	if backface {
		n = linear.NegV3(n)
	}
	l := linear.NegV3(linear.NormV3(u.LightDir))
	viewDir := linear.NormV3(linear.SubV3(u.CameraPos, v.WorldPos))
	half := linear.NormV3(linear.AddV3(l, viewDir))

	base := sampleBaseColor(&u.BaseColor, v.TexCoord)
	d, alpha := applyAlphaMode(u.AlphaMode, u.AlphaCutoff, base[3])
	if d {
		*discard = true
		return linear.V4{}
	}

	nDotL := math32.Max(0, linear.DotV3(n, l))
	nDotH := math32.Max(0, linear.DotV3(n, half))

	var diffuse, spec float32
	if nDotL > 0 && !inShadow(v, u, nDotL) {
		diffuse = u.Punctual * nDotL
		spec = u.Punctual * math32.Pow(nDotH, u.Shininess)
	}
	ambient := u.Ambient
	color := linear.V3{
		base[0]*(ambient+diffuse) + spec,
		base[1]*(ambient+diffuse) + spec,
		base[2]*(ambient+diffuse) + spec,
	}
	return linear.V4{color[0], color[1], color[2], alpha}
}
