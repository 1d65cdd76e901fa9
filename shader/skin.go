// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package shader

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/raster/linear"
	"github.com/gviegas/raster/material"
)

// MaxJointsPerVertex is the number of joint/weight slots a skinned
// vertex carries, matching mesh.Vertex's Joints/Weights fields.
const MaxJointsPerVertex = 4

// SkinUniform is the skinning shader's uniform block: the same
// Blinn-Phong lighting inputs plus the skeleton's current joint and
// normal matrices, indexed by the attribute's joint indices.
//
// JointMatrix/NormalMatrix must be sized to the skeleton's joint
// count by the caller before each draw call (populated from
// skin.Skeleton.JointMatrix/NormalMatrix); this shader does not own
// the skeleton.
type SkinUniform struct {
	Model     linear.M4
	View      linear.M4
	Proj      linear.M4
	NormalMat linear.M3 // model-level normal matrix, composed with each joint's

	JointMatrix  []linear.M4
	JointNormalM []linear.M3

	LightDir  linear.V3
	CameraPos linear.V3
	Ambient   float32
	Punctual  float32

	BaseColor material.BaseColor
	Shininess float32

	AlphaMode   int
	AlphaCutoff float32
}

// Skin is a Blinn-Phong shader whose vertex stage blends up to
// MaxJointsPerVertex joint transforms by the attribute's weights
// before projecting, consuming the joint/normal matrix arrays a
// skin.Skeleton produces per frame.
type Skin struct {
	DoubleSidedFlag bool
	BlendFlag       bool
}

func (s *Skin) DoubleSided() bool { return s.DoubleSidedFlag }
func (s *Skin) EnableBlend() bool { return s.BlendFlag }

// skinMatrix blends the joint matrices indexed by a.Joints, weighted
// by a.Weights. Weights are not renormalized here; the mesh author
// is responsible for weights that sum to 1.
func skinMatrix(a *Attrib, joints []linear.M4) linear.M4 {
	var m linear.M4
	for i := 0; i < MaxJointsPerVertex; i++ {
		w := a.Weights[i]
		if w == 0 {
			continue
		}
		j := int(a.Joints[i])
		jm := joints[j]
		for c := 0; c < 4; c++ {
			for r := 0; r < 4; r++ {
				m[c][r] += w * jm[c][r]
			}
		}
	}
	return m
}

func skinNormalMatrix(a *Attrib, normals []linear.M3) linear.M3 {
	var m linear.M3
	for i := 0; i < MaxJointsPerVertex; i++ {
		w := a.Weights[i]
		if w == 0 {
			continue
		}
		j := int(a.Joints[i])
		jm := normals[j]
		for c := 0; c < 3; c++ {
			for r := 0; r < 3; r++ {
				m[c][r] += w * jm[c][r]
			}
		}
	}
	return m
}

func (s *Skin) Vertex(a *Attrib, u *SkinUniform, v *BlinnVarying) linear.V4 {
	skinM := skinMatrix(a, u.JointMatrix)
	skinN := skinNormalMatrix(a, u.JointNormalM)

	skinned := linear.MulV4(skinM, linear.V4FromV3(a.Position, 1))
	worldV4 := linear.MulV4(u.Model, skinned)
	world := linear.V3FromV4(worldV4)
	v.WorldPos = world
	v.Normal = linear.MulV3(u.NormalMat, linear.MulV3(skinN, a.Normal))
	v.TexCoord = a.TexCoord

	return linear.MulV4(u.Proj, linear.MulV4(u.View, worldV4))
}

func (s *Skin) Fragment(v *BlinnVarying, u *SkinUniform, discard *bool, backface bool) linear.V4 {
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
	spec := math32.Pow(nDotH, u.Shininess)

	ambient := u.Ambient
	diffuse := u.Punctual * nDotL
	color := linear.V3{
		base[0]*(ambient+diffuse) + u.Punctual*spec,
		base[1]*(ambient+diffuse) + u.Punctual*spec,
		base[2]*(ambient+diffuse) + u.Punctual*spec,
	}
	return linear.V4{color[0], color[1], color[2], alpha}
}
