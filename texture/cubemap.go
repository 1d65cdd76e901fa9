// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package texture

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/raster/linear"
)

// Cube face indices, in the fixed order the Cubemap constructor and
// sampling both use.
const (
	FacePosX = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
	faceCount
)

// Cubemap samples a direction vector across six Textures, one per
// cube face.
type Cubemap struct {
	Faces [faceCount]*Texture
}

// NewCubemap builds a Cubemap from six equally-sized, equally
// formatted textures ordered +X, -X, +Y, -Y, +Z, -Z.
func NewCubemap(faces [faceCount]*Texture) *Cubemap {
	for _, f := range faces {
		if f == nil {
			panic(prefix + "Cubemap requires all six faces")
		}
	}
	return &Cubemap{Faces: faces}
}

// Sample resolves dir to a face by the largest absolute axis, then
// samples that face's texture using its own wrap mode.
func (c *Cubemap) Sample(dir linear.V3) linear.V4 {
	face, u, v := faceUV(dir)
	return c.Faces[face].Sample(u, v)
}

// faceUV picks the major axis of dir and derives the face-local
// (u, v) coordinates: (u,v) = ((sc/|major|+1)/2, 1-(tc/|major|+1)/2),
// with per-face signs as below.
func faceUV(dir linear.V3) (face int, u, v float32) {
	ax, ay, az := math32.Abs(dir[0]), math32.Abs(dir[1]), math32.Abs(dir[2])
	var sc, tc, major float32
	switch {
	case ax >= ay && ax >= az:
		major = ax
		if dir[0] >= 0 {
			face = FacePosX
			sc, tc = -dir[2], -dir[1]
		} else {
			face = FaceNegX
			sc, tc = dir[2], -dir[1]
		}
	case ay >= ax && ay >= az:
		major = ay
		if dir[1] >= 0 {
			face = FacePosY
			sc, tc = dir[0], dir[2]
		} else {
			face = FaceNegY
			sc, tc = dir[0], -dir[2]
		}
	default:
		major = az
		if dir[2] >= 0 {
			face = FacePosZ
			sc, tc = dir[0], -dir[1]
		} else {
			face = FaceNegZ
			sc, tc = -dir[0], -dir[1]
		}
	}
	u = (sc/major + 1) / 2
	v = 1 - (tc/major+1)/2
	return
}
