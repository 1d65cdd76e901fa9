// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package model implements the pipeline-facing view of a drawable
// object: a mesh bound to a shader program, a world transform, and
// an optional skeleton for skinned meshes. It also defines the
// per-frame Context the scene driver feeds into shader uniforms.
package model

import (
	"github.com/gviegas/raster/framebuffer"
	"github.com/gviegas/raster/linear"
	"github.com/gviegas/raster/mesh"
	"github.com/gviegas/raster/program"
	"github.com/gviegas/raster/raster"
	"github.com/gviegas/raster/skin"
	"github.com/gviegas/raster/texture"
)

const prefix = "model: "

// Context carries the inputs the scene driver feeds a Model's shader
// uniforms once per frame. Individual shader uniform types copy the
// fields they need out of Context; it is not itself a uniform block.
type Context struct {
	FrameTime float32
	DeltaTime float32

	// LightDir points from the light toward the scene, normalized.
	LightDir  linear.V3
	CameraPos linear.V3

	View linear.M4
	Proj linear.M4

	// HaveShadow indicates whether LightView/LightProj/ShadowMap are
	// populated for a shadow pass.
	HaveShadow bool
	LightView  linear.M4
	LightProj  linear.M4
	ShadowMap  *texture.Texture

	Ambient  float32
	Punctual float32

	// Layer selects a debug visualization layer (0 means "shaded
	// normally"); shaders that don't support layer views ignore it.
	Layer int
}

// Drawable is the scene driver's view of a model: per-frame update,
// a draw that optionally targets the shadow pass, and release. The
// concrete Model type is generic per shader; Drawable is the trait
// object the driver iterates over when models with different shader
// payloads share a scene.
type Drawable interface {
	Update(ctx *Context)
	Draw(fb *framebuffer.Framebuffer, vp raster.Viewport, shadowPass bool)
	Release()
}

// FillAttribFunc writes the shader-specific attribute block for one
// triangle corner. Callers supply it because attribute layout is
// shader-defined.
type FillAttribFunc[A, V, U any] func(dst *A, v *mesh.Vertex, m *Model[A, V, U])

// Model binds a Mesh to a ShaderProgram instance, a world transform,
// and an optional Skeleton for vertex skinning. Populate, not
// construct directly with an accessor, to keep the generic
// instantiation explicit at each call site.
type Model[A, V, U any] struct {
	Mesh  *mesh.Mesh
	Prog  *program.Program[A, V, U]
	World linear.M4

	// FillAttrib populates the attribute blocks during Draw.
	FillAttrib FillAttribFunc[A, V, U]

	// Shadow, when non-nil, is drawn in place of this model during a
	// shadow pass (typically the same mesh bound to a depth-only
	// program projecting through the light's view-projection).
	Shadow Drawable

	Skeleton *skin.Skeleton
	// AttachJoint is the joint index this model is rigidly attached
	// to (e.g. a weapon bound to a hand bone); -1 means unattached.
	AttachJoint int

	// Opaque controls the scene driver's sort bucket (opaque models
	// are drawn front-to-back, transparent back-to-front); the
	// pipeline itself never reads it.
	Opaque bool
	// Distance is a cached sort key the scene driver maintains
	// (e.g. distance to camera); the pipeline never reads it.
	Distance float32
}

// New creates a Model wrapping msh and prog, with an identity world
// transform and no skeleton. fillAttrib is invoked once per triangle
// corner during Draw.
func New[A, V, U any](msh *mesh.Mesh, prog *program.Program[A, V, U], fillAttrib FillAttribFunc[A, V, U]) *Model[A, V, U] {
	return &Model[A, V, U]{
		Mesh:        msh,
		Prog:        prog,
		World:       linear.IdentityM4(),
		FillAttrib:  fillAttrib,
		AttachJoint: -1,
		Opaque:      true,
	}
}

// WorldMatrix returns the model's effective world transform,
// composing the attachment joint's current pose when the model is
// rigidly attached to a skeleton joint. Valid only after Update has
// evaluated the skeleton's pose for the frame.
func (m *Model[A, V, U]) WorldMatrix() linear.M4 {
	if m.Skeleton != nil && m.AttachJoint >= 0 {
		return linear.MulM4(m.Skeleton.JointTransform(m.AttachJoint), m.World)
	}
	return m.World
}

// Update advances the model's skeleton (if any) to the context's
// frame time. It has no effect on unskinned models.
func (m *Model[A, V, U]) Update(ctx *Context) {
	if m.Skeleton != nil {
		m.Skeleton.Update(ctx.FrameTime)
	}
}

// Draw runs the draw-triangle pipeline once per triangle in the
// mesh, filling each corner's attribute block from the mesh vertex
// before invoking raster.DrawTriangle.
//
// When shadowPass is true and a Shadow drawable is bound, the shadow
// drawable is drawn instead; a model with no Shadow casts none and
// produces no output during the pass.
func (m *Model[A, V, U]) Draw(fb *framebuffer.Framebuffer, vp raster.Viewport, shadowPass bool) {
	if shadowPass {
		if m.Shadow != nil {
			m.Shadow.Draw(fb, vp, false)
		}
		return
	}
	verts := m.Mesh.Vertices
	for i := 0; i+3 <= len(verts); i += 3 {
		for c := 0; c < 3; c++ {
			m.FillAttrib(m.Prog.Attrib(c), &verts[i+c], m)
		}
		raster.DrawTriangle(m.Prog, fb, vp)
	}
}

// Release drops the model's references to its mesh, program and
// skeleton; with garbage collection backing resource lifetimes, the
// underlying resources are freed once no other Model or cache entry
// retains them.
func (m *Model[A, V, U]) Release() {
	m.Mesh = nil
	m.Prog = nil
	m.Skeleton = nil
	if m.Shadow != nil {
		m.Shadow.Release()
		m.Shadow = nil
	}
}
