// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package skin implements skeletal animation: a joint hierarchy with
// per-track keyframe interpolation, and the per-frame pose
// evaluation that produces the joint/normal matrices skinning
// shaders sample.
package skin

import (
	"errors"

	"github.com/gviegas/raster/linear"
)

const prefix = "skin: "

// Joint describes a single joint in a skeleton's rest-pose
// hierarchy, as presented to New.
//
// Parent refers to another Joint's index within the slice passed to
// New, and must be less than the joint's own index (parent-before-
// child ordering); a value less than 0 means the joint is a root.
type Joint struct {
	Name        string
	InverseBind linear.M4
	Parent      int
	Translation Track[linear.V3]
	Rotation    Track[linear.Q]
	Scale       Track[linear.V3]
}

// Keyframe pairs a time with a sampled value.
type Keyframe[T any] struct {
	Time  float32
	Value T
}

// Track is a sorted sequence of keyframes for one animation channel.
// Track has no evaluation method of its own: the package's
// evalTranslation/evalRotation/evalScale evaluate it, and an empty
// Track evaluates to the kind-specific identity (zero translation,
// identity quaternion, unit scale) at every time.
type Track[T any] struct {
	Keys []Keyframe[T]
}

// joint is the internal, validated representation of a Joint.
type joint struct {
	parent      int
	inverseBind linear.M4
	translation Track[linear.V3]
	rotation    Track[linear.Q]
	scale       Track[linear.V3]
	// transform is the joint's local-to-model transform, evaluated
	// by Update; parents are evaluated before children.
	transform linear.M4
}

// Skeleton holds a validated joint hierarchy plus the per-frame pose
// cache.
type Skeleton struct {
	joints []joint
	minT   float32
	maxT   float32

	lastTime float32
	haveLast bool
	jointM   []linear.M4
	normalM  []linear.M3
}

// New validates joints (parent-before-child, in-range parent
// indices) and builds a Skeleton.
//
// joints must be non-empty and each Joint.Parent must be less than
// the joint's own index; New returns an error when either does not
// hold. A Parent below -1 is treated as -1 (a root).
func New(joints []Joint, minTime, maxTime float32) (*Skeleton, error) {
	n := len(joints)
	if n == 0 {
		return nil, errors.New(prefix + "[]Joint length is 0")
	}
	js := make([]joint, n)
	for i, j := range joints {
		switch {
		case j.Parent >= i:
			return nil, errors.New(prefix + "Joint.Parent must come before its child")
		case j.Parent < -1:
			j.Parent = -1
		}
		js[i] = joint{
			parent:      j.Parent,
			inverseBind: j.InverseBind,
			translation: j.Translation,
			rotation:    j.Rotation,
			scale:       j.Scale,
		}
	}
	return &Skeleton{
		joints:  js,
		minT:    minTime,
		maxT:    maxTime,
		jointM:  make([]linear.M4, n),
		normalM: make([]linear.M3, n),
	}, nil
}

// NumJoints returns the number of joints in the skeleton.
func (s *Skeleton) NumJoints() int { return len(s.joints) }

// JointMatrix returns the i-th joint's current model-space combined
// transform times its inverse-bind matrix (populated by Update).
func (s *Skeleton) JointMatrix(i int) linear.M4 { return s.jointM[i] }

// NormalMatrix returns the i-th joint's current inverse-transpose
// normal matrix (populated by Update).
func (s *Skeleton) NormalMatrix(i int) linear.M3 { return s.normalM[i] }

// JointTransform returns the i-th joint's current model-space
// transform, before the inverse-bind factor (populated by Update).
// This is the matrix a rigidly attached model composes with.
func (s *Skeleton) JointTransform(i int) linear.M4 { return s.joints[i].transform }

// Update evaluates the pose at frame time t, wrapped by t mod
// max_time. If the wrapped time equals the cached last-evaluated
// time, evaluation is skipped.
func (s *Skeleton) Update(t float32) {
	wrapped := wrapTime(t, s.maxT)
	if s.haveLast && wrapped == s.lastTime {
		return
	}
	s.lastTime = wrapped
	s.haveLast = true

	for i := range s.joints {
		j := &s.joints[i]
		local := linear.FromTRS(
			evalTranslation(j.translation, wrapped),
			evalRotation(j.rotation, wrapped),
			evalScale(j.scale, wrapped),
		)
		if j.parent >= 0 {
			j.transform = linear.MulM4(s.joints[j.parent].transform, local)
		} else {
			j.transform = local
		}
		s.jointM[i] = linear.MulM4(j.transform, j.inverseBind)
		s.normalM[i] = linear.InverseTransposeM3(s.jointM[i])
	}
}

func wrapTime(t, maxTime float32) float32 {
	if maxTime <= 0 {
		return 0
	}
	m := mod32(t, maxTime)
	if m < 0 {
		m += maxTime
	}
	return m
}

func mod32(a, b float32) float32 {
	q := float32(int64(a / b))
	return a - q*b
}
