// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package shader

import (
	"github.com/gviegas/raster/linear"
	"github.com/gviegas/raster/material"
)

// UnlitVarying is the unlit shader's per-vertex output: texture
// coordinates only, since lighting never enters the computation.
type UnlitVarying struct {
	TexCoord linear.V2
}

// UnlitUniform is the unlit shader's uniform block.
type UnlitUniform struct {
	Model linear.M4
	View  linear.M4
	Proj  linear.M4

	Material material.Unlit
}

// Unlit passes the base color straight through, with no lighting
// term; grounded on material.Unlit's base-color-only layout.
type Unlit struct {
	DoubleSidedFlag bool
	BlendFlag       bool
}

func (s *Unlit) DoubleSided() bool { return s.DoubleSidedFlag }
func (s *Unlit) EnableBlend() bool { return s.BlendFlag }

func (s *Unlit) Vertex(a *Attrib, u *UnlitUniform, v *UnlitVarying) linear.V4 {
	v.TexCoord = a.TexCoord
	world := linear.MulV4(u.Model, linear.V4FromV3(a.Position, 1))
	return linear.MulV4(u.Proj, linear.MulV4(u.View, world))
}

func (s *Unlit) Fragment(v *UnlitVarying, u *UnlitUniform, discard *bool, backface bool) linear.V4 {
	base := sampleBaseColor(&u.Material.BaseColor, v.TexCoord)
	d, alpha := applyAlphaMode(u.Material.AlphaMode, u.Material.AlphaCutoff, base[3])
	if d {
		*discard = true
		return linear.V4{}
	}
	return linear.V4{base[0], base[1], base[2], alpha}
}
