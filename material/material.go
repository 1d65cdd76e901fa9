// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package material implements the material property bags the shader
// library's uniform blocks are built from: texture references plus
// the factors each physically inspired shader needs.
package material

import (
	"github.com/gviegas/raster/texture"
)

// TexRef identifies a texture and the UV set it samples with.
type TexRef struct {
	Texture *texture.Texture
	UVSet   int
}

// UV sets matching mesh.TexCoord0; only a single UV channel is
// wired through the pipeline.
const UVSet0 = 0

// BaseColor is the material's base color.
type BaseColor struct {
	TexRef
	Factor [4]float32
}

// MetalRough is the material's metallic-roughness (metal/rough PBR).
type MetalRough struct {
	TexRef
	Metalness float32
	Roughness float32
}

// SpecGloss is the material's specular-glossiness (spec/gloss PBR).
type SpecGloss struct {
	TexRef
	Specular   [3]float32
	Glossiness float32
}

// Normal is the material's normal map.
type Normal struct {
	TexRef
	Scale float32
}

// Occlusion is the material's occlusion map.
type Occlusion struct {
	TexRef
	Strength float32
}

// Emissive is the material's emissive map.
type Emissive struct {
	TexRef
	Factor [3]float32
}

// Alpha modes.
const (
	AlphaOpaque = iota
	AlphaBlend
	AlphaMask
)

// PBRMetalRough is the metallic/roughness PBR material model.
type PBRMetalRough struct {
	BaseColor   BaseColor
	MetalRough  MetalRough
	Normal      Normal
	Occlusion   Occlusion
	Emissive    Emissive
	AlphaMode   int
	AlphaCutoff float32
	DoubleSided bool
}

// PBRSpecGloss is the specular/glossiness PBR material model.
type PBRSpecGloss struct {
	BaseColor   BaseColor
	SpecGloss   SpecGloss
	Normal      Normal
	Occlusion   Occlusion
	Emissive    Emissive
	AlphaMode   int
	AlphaCutoff float32
	DoubleSided bool
}

// Unlit is the unlit material model: base color only.
type Unlit struct {
	BaseColor   BaseColor
	AlphaMode   int
	AlphaCutoff float32
	DoubleSided bool
}
