// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package shader

import (
	"github.com/gviegas/raster/linear"
	"github.com/gviegas/raster/texture"
)

// SkyboxVarying is the skybox shader's per-vertex output: the
// direction to sample the cubemap with, equal to the unrotated cube
// position since the skybox mesh is a unit cube centered on the
// camera.
type SkyboxVarying struct {
	Direction linear.V3
}

// SkyboxUniform is the skybox shader's uniform block.
type SkyboxUniform struct {
	// View is the camera's view matrix with its translation column
	// stripped, so the skybox mesh never appears to translate as the
	// camera moves.
	View linear.M4
	Proj linear.M4
	Cube *texture.Cubemap
}

// Skybox samples a cubemap along the view ray reconstructed from the
// cube mesh's own position, producing a background that never
// appears to move relative to infinity.
//
// DoubleSided is always true: the skybox cube is viewed from its
// inside face, which is back-facing under the pipeline's standard
// winding convention.
type Skybox struct{}

func (s *Skybox) DoubleSided() bool { return true }
func (s *Skybox) EnableBlend() bool { return false }

func (s *Skybox) Vertex(a *Attrib, u *SkyboxUniform, v *SkyboxVarying) linear.V4 {
	v.Direction = a.Position
	clip := linear.MulV4(u.Proj, linear.MulV4(u.View, linear.V4FromV3(a.Position, 1)))
	// Force the post-divide depth to the far plane (z == w) so the
	// skybox never occludes, and never is occluded by, anything
	// drawn at the far clip distance.
	clip[2] = clip[3]
	return clip
}

func (s *Skybox) Fragment(v *SkyboxVarying, u *SkyboxUniform, discard *bool, backface bool) linear.V4 {
	return u.Cube.Sample(v.Direction)
}
