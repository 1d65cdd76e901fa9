// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package shader

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/raster/linear"
	"github.com/gviegas/raster/material"
)

// PBRMetalVarying is the metallic/roughness PBR shader's per-vertex
// output.
type PBRMetalVarying struct {
	WorldPos linear.V3
	Normal   linear.V3
	TexCoord linear.V2
}

// PBRMetalUniform is the metallic/roughness PBR shader's per-draw-call
// uniform block, grounded on material.PBRMetalRough's field layout.
type PBRMetalUniform struct {
	Model     linear.M4
	View      linear.M4
	Proj      linear.M4
	NormalMat linear.M3

	LightDir  linear.V3
	CameraPos linear.V3
	Ambient   float32
	Punctual  float32

	Material material.PBRMetalRough
}

// PBRMetal is a metallic/roughness PBR shader using the
// Cook-Torrance microfacet BRDF (GGX distribution, Smith geometry,
// Schlick Fresnel), grounded on the metallic-roughness workflow
// material.PBRMetalRough encodes.
type PBRMetal struct {
	DoubleSidedFlag bool
	BlendFlag       bool
}

func (s *PBRMetal) DoubleSided() bool { return s.DoubleSidedFlag }
func (s *PBRMetal) EnableBlend() bool { return s.BlendFlag }

func (s *PBRMetal) Vertex(a *Attrib, u *PBRMetalUniform, v *PBRMetalVarying) linear.V4 {
	world := linear.MulV4(u.Model, linear.V4FromV3(a.Position, 1))
	v.WorldPos = linear.V3FromV4(world)
	v.Normal = linear.MulV3(u.NormalMat, a.Normal)
	v.TexCoord = a.TexCoord
	return linear.MulV4(u.Proj, linear.MulV4(u.View, world))
}

func (s *PBRMetal) Fragment(v *PBRMetalVarying, u *PBRMetalUniform, discard *bool, backface bool) linear.V4 {
	m := &u.Material
	base := sampleBaseColor(&m.BaseColor, v.TexCoord)
	d, alpha := applyAlphaMode(m.AlphaMode, m.AlphaCutoff, base[3])
	if d {
		*discard = true
		return linear.V4{}
	}

	metalRough := linear.V4{1, 1, 1, 1}
	if m.MetalRough.Texture != nil {
		metalRough = m.MetalRough.Texture.Sample(v.TexCoord[0], v.TexCoord[1])
	}
	metalness := m.MetalRough.Metalness * metalRough[2]
	roughness := math32.Max(0.045, m.MetalRough.Roughness*metalRough[1])
	occlusion := sampleOcclusion(&m.Occlusion, v.TexCoord)
	emissive := sampleEmissive(&m.Emissive, v.TexCoord)

	n := linear.NormV3(v.Normal)
	if backface {
		n = linear.NegV3(n)
	}
	l := linear.NegV3(linear.NormV3(u.LightDir))
	viewDir := linear.NormV3(linear.SubV3(u.CameraPos, v.WorldPos))
	half := linear.NormV3(linear.AddV3(l, viewDir))

	nDotL := math32.Max(1e-4, linear.DotV3(n, l))
	nDotV := math32.Max(1e-4, linear.DotV3(n, viewDir))
	nDotH := math32.Max(0, linear.DotV3(n, half))

	dielectricF0 := linear.V3{0.04, 0.04, 0.04}
	f0 := linear.V3{
		dielectricF0[0]*(1-metalness) + base[0]*metalness,
		dielectricF0[1]*(1-metalness) + base[1]*metalness,
		dielectricF0[2]*(1-metalness) + base[2]*metalness,
	}
	diffuseColor := linear.ScaleV3(1-metalness, linear.V3{base[0], base[1], base[2]})

	spec, fresnel := cookTorrance(nDotV, nDotL, nDotH, roughness, f0)
	kd := linear.V3{1 - fresnel[0], 1 - fresnel[1], 1 - fresnel[2]}
	diffuse := linear.ScaleV3(1/math32.Pi, linear.V3{kd[0] * diffuseColor[0], kd[1] * diffuseColor[1], kd[2] * diffuseColor[2]})

	direct := linear.ScaleV3(u.Punctual*nDotL, linear.AddV3(diffuse, spec))
	ambient := linear.ScaleV3(u.Ambient*occlusion, diffuseColor)
	color := linear.AddV3(linear.AddV3(direct, ambient), emissive)

	return linear.V4{color[0], color[1], color[2], alpha}
}
