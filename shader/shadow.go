// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package shader

import (
	"github.com/gviegas/raster/linear"
)

// DepthVarying carries no interpolated state; the shadow pass only
// consumes the depth the rasterizer itself interpolates.
type DepthVarying struct{}

// DepthUniform is the depth-only program's uniform block.
type DepthUniform struct {
	Model     linear.M4
	LightView linear.M4
	LightProj linear.M4
}

// Depth is the program bound to a model's shadow drawable: the
// vertex stage projects through the light's view-projection and the
// fragment color is never consumed, leaving only depth writes.
type Depth struct{}

func (s *Depth) DoubleSided() bool { return false }
func (s *Depth) EnableBlend() bool { return false }

func (s *Depth) Vertex(a *Attrib, u *DepthUniform, v *DepthVarying) linear.V4 {
	world := linear.MulV4(u.Model, linear.V4FromV3(a.Position, 1))
	return linear.MulV4(u.LightProj, linear.MulV4(u.LightView, world))
}

func (s *Depth) Fragment(v *DepthVarying, u *DepthUniform, discard *bool, backface bool) linear.V4 {
	return linear.V4{1, 1, 1, 1}
}
