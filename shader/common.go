// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package shader implements the reference shader programs the
// pipeline exercises: Blinn-Phong, metallic/roughness PBR,
// specular/glossiness PBR, a skybox, an unlit pass, vertex skinning
// and a depth-only shadow pass. Each type satisfies
// program.ShaderProgram with its own attribute/varying/uniform
// blocks.
package shader

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/raster/linear"
	"github.com/gviegas/raster/material"
)

const prefix = "shader: "

// Attrib is the common per-vertex input shared by every shader in
// this package, matching mesh.Vertex's field layout.
type Attrib struct {
	Position linear.V3
	TexCoord linear.V2
	Normal   linear.V3
	Tangent  linear.V4
	Joints   linear.V4
	Weights  linear.V4
}

// sampleBaseColor reads a BaseColor material property at uv,
// modulating the sampled texture (or a flat factor, if no texture is
// bound) by its factor.
func sampleBaseColor(bc *material.BaseColor, uv linear.V2) linear.V4 {
	factor := linear.V4{bc.Factor[0], bc.Factor[1], bc.Factor[2], bc.Factor[3]}
	if bc.Texture == nil {
		return factor
	}
	s := bc.Texture.Sample(uv[0], uv[1])
	return linear.V4{s[0] * factor[0], s[1] * factor[1], s[2] * factor[2], s[3] * factor[3]}
}

// sampleEmissive reads an Emissive material property at uv.
func sampleEmissive(em *material.Emissive, uv linear.V2) linear.V3 {
	factor := linear.V3{em.Factor[0], em.Factor[1], em.Factor[2]}
	if em.Texture == nil {
		return factor
	}
	s := em.Texture.Sample(uv[0], uv[1])
	return linear.V3{s[0] * factor[0], s[1] * factor[1], s[2] * factor[2]}
}

// sampleOcclusion reads an Occlusion material property at uv,
// defaulting to fully unoccluded when no texture is bound.
func sampleOcclusion(oc *material.Occlusion, uv linear.V2) float32 {
	if oc.Texture == nil {
		return 1
	}
	s := oc.Texture.Sample(uv[0], uv[1])
	return 1 + oc.Strength*(s[0]-1)
}

// applyAlphaMode resolves a sampled alpha value against a material's
// alpha mode, reporting whether the fragment should be discarded.
func applyAlphaMode(mode int, cutoff, alpha float32) (discard bool, outAlpha float32) {
	switch mode {
	case material.AlphaMask:
		if alpha < cutoff {
			return true, alpha
		}
		return false, 1
	case material.AlphaBlend:
		return false, alpha
	default: // AlphaOpaque
		return false, 1
	}
}

// fresnelSchlick is the Schlick approximation of the Fresnel term,
// used by both PBR variants' specular lobe.
func fresnelSchlick(f0 linear.V3, cosTheta float32) linear.V3 {
	t := math32.Pow(linear.Saturate(1-cosTheta), 5)
	return linear.V3{
		f0[0] + (1-f0[0])*t,
		f0[1] + (1-f0[1])*t,
		f0[2] + (1-f0[2])*t,
	}
}

// distributionGGX is the Trowbridge-Reitz (GGX) normal distribution
// function.
func distributionGGX(nDotH, roughness float32) float32 {
	a := roughness * roughness
	a2 := a * a
	d := nDotH*nDotH*(a2-1) + 1
	return a2 / (math32.Pi * d * d)
}

// geometrySmith is the Smith joint masking-shadowing term with the
// Schlick-GGX approximation for each direction.
func geometrySmith(nDotV, nDotL, roughness float32) float32 {
	k := (roughness + 1) * (roughness + 1) / 8
	gv := nDotV / (nDotV*(1-k) + k)
	gl := nDotL / (nDotL*(1-k) + k)
	return gv * gl
}

// cookTorrance evaluates the Cook-Torrance specular BRDF term given
// precomputed dot products, the Fresnel reflectance f0 and
// roughness.
func cookTorrance(nDotV, nDotL, nDotH, roughness float32, f0 linear.V3) (spec linear.V3, fresnel linear.V3) {
	d := distributionGGX(nDotH, roughness)
	g := geometrySmith(nDotV, nDotL, roughness)
	f := fresnelSchlick(f0, nDotV)
	denom := 4*nDotV*nDotL + 1e-4
	return linear.V3{
		d * g * f[0] / denom,
		d * g * f[1] / denom,
		d * g * f[2] / denom,
	}, f
}
