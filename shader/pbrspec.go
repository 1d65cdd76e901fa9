// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package shader

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/raster/linear"
	"github.com/gviegas/raster/material"
)

// PBRSpecVarying is the specular/glossiness PBR shader's per-vertex
// output.
type PBRSpecVarying struct {
	WorldPos linear.V3
	Normal   linear.V3
	TexCoord linear.V2
}

// PBRSpecUniform is the specular/glossiness PBR shader's uniform
// block, grounded on material.PBRSpecGloss's field layout.
type PBRSpecUniform struct {
	Model     linear.M4
	View      linear.M4
	Proj      linear.M4
	NormalMat linear.M3

	LightDir  linear.V3
	CameraPos linear.V3
	Ambient   float32
	Punctual  float32

	Material material.PBRSpecGloss
}

// PBRSpec is a specular/glossiness PBR shader: the same Cook-Torrance
// BRDF as PBRMetal, but f0 and roughness are read directly from a
// specular color and a glossiness factor instead of being derived
// from metalness.
type PBRSpec struct {
	DoubleSidedFlag bool
	BlendFlag       bool
}

func (s *PBRSpec) DoubleSided() bool { return s.DoubleSidedFlag }
func (s *PBRSpec) EnableBlend() bool { return s.BlendFlag }

func (s *PBRSpec) Vertex(a *Attrib, u *PBRSpecUniform, v *PBRSpecVarying) linear.V4 {
	world := linear.MulV4(u.Model, linear.V4FromV3(a.Position, 1))
	v.WorldPos = linear.V3FromV4(world)
	v.Normal = linear.MulV3(u.NormalMat, a.Normal)
	v.TexCoord = a.TexCoord
	return linear.MulV4(u.Proj, linear.MulV4(u.View, world))
}

func (s *PBRSpec) Fragment(v *PBRSpecVarying, u *PBRSpecUniform, discard *bool, backface bool) linear.V4 {
	m := &u.Material
	base := sampleBaseColor(&m.BaseColor, v.TexCoord)
	d, alpha := applyAlphaMode(m.AlphaMode, m.AlphaCutoff, base[3])
	if d {
		*discard = true
		return linear.V4{}
	}

	specGloss := linear.V4{1, 1, 1, 1}
	if m.SpecGloss.Texture != nil {
		specGloss = m.SpecGloss.Texture.Sample(v.TexCoord[0], v.TexCoord[1])
	}
	f0 := linear.V3{
		m.SpecGloss.Specular[0] * specGloss[0],
		m.SpecGloss.Specular[1] * specGloss[1],
		m.SpecGloss.Specular[2] * specGloss[2],
	}
	glossiness := math32.Min(1, m.SpecGloss.Glossiness*specGloss[3])
	roughness := math32.Max(0.045, 1-glossiness)
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

	maxF0 := math32.Max(f0[0], math32.Max(f0[1], f0[2]))
	diffuseColor := linear.ScaleV3(1-maxF0, linear.V3{base[0], base[1], base[2]})

	spec, fresnel := cookTorrance(nDotV, nDotL, nDotH, roughness, f0)
	kd := linear.V3{1 - fresnel[0], 1 - fresnel[1], 1 - fresnel[2]}
	diffuse := linear.ScaleV3(1/math32.Pi, linear.V3{kd[0] * diffuseColor[0], kd[1] * diffuseColor[1], kd[2] * diffuseColor[2]})

	direct := linear.ScaleV3(u.Punctual*nDotL, linear.AddV3(diffuse, spec))
	ambient := linear.ScaleV3(u.Ambient*occlusion, diffuseColor)
	color := linear.AddV3(linear.AddV3(direct, ambient), emissive)

	return linear.V4{color[0], color[1], color[2], alpha}
}
