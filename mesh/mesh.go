// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package mesh implements the mesh data representation used by the
// rasterizer: an indexed triangle soup expanded to a flat,
// per-corner vertex array.
package mesh

import (
	"github.com/gviegas/raster/linear"
)

const prefix = "mesh: "

// Semantic specifies the intended use of a vertex attribute.
type Semantic int

// Semantics.
const (
	Position Semantic = 1 << iota
	Normal
	Tangent
	TexCoord0
	Joints0
	Weights0
)

// Vertex is a single triangle corner.
type Vertex struct {
	Position linear.V3
	TexCoord linear.V2
	Normal   linear.V3
	// Tangent is a direction (xyz) plus handedness (w, ±1).
	Tangent linear.V4
	// Joints holds joint indices, stored as integers in float32.
	Joints linear.V4
	// Weights holds blend weights, normally summing to 1.
	Weights linear.V4
}

// defaultTangent, defaultJoints and defaultWeights are used for
// corners whose source data omitted the optional extension lines.
var (
	defaultTangent = linear.V4{1, 0, 0, 1}
	defaultJoints  = linear.V4{0, 0, 0, 0}
	defaultWeights = linear.V4{0, 0, 0, 0}
)

// Mesh is a flat array of vertices laid out as triangle corners
// (length = 3*NumFaces).
type Mesh struct {
	Vertices []Vertex
	// Center is the bounding-box midpoint, computed at load time.
	Center linear.V3
}

// NumFaces returns the number of triangles in the mesh.
func (m *Mesh) NumFaces() int { return len(m.Vertices) / 3 }

// New builds a Mesh from a flat per-corner vertex slice.
//
// len(vertices) must be a positive multiple of 3; violating this is
// a contract error.
func New(vertices []Vertex) *Mesh {
	if len(vertices) == 0 || len(vertices)%3 != 0 {
		panic(prefix + "vertex count must be a positive multiple of 3")
	}
	return &Mesh{Vertices: vertices, Center: boundsCenter(vertices)}
}

func boundsCenter(vertices []Vertex) linear.V3 {
	min := vertices[0].Position
	max := vertices[0].Position
	for _, v := range vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Position[i] < min[i] {
				min[i] = v.Position[i]
			}
			if v.Position[i] > max[i] {
				max[i] = v.Position[i]
			}
		}
	}
	return linear.ScaleV3(0.5, linear.AddV3(min, max))
}
