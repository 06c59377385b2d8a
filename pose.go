// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

import (
	"fmt"

	"github.com/galvanized/animgraph/math/lin"
)

// poseKind distinguishes how a pose's identity element and add/blend
// semantics behave. An absolute pose's identity is the skeleton's rest
// pose; an additive pose's identity is a zero-translation, identity-
// rotation, unit-scale transform layered over some base pose.
type poseKind uint8

const (
	absolute poseKind = iota
	additive
)

// Pose holds one joint-local transform per joint of a bound Skeleton,
// along with a lazily computed parallel sequence of object-space
// transforms. Object-space recomputation is amortised using a
// "shallowest dirty joint" index: any mutation to a joint-local
// transform lowers dirty to min(dirty, index); reads of object-space
// transforms recompute from dirty to the end of the joint list, then
// clear dirty to len(joints).
type Pose struct {
	skeleton *Skeleton
	kind     poseKind
	local    []lin.T // joint-local transforms, one per joint.
	object   []lin.T // cached object-space transforms.
	dirty    int     // shallowest joint needing object-space recompute.
}

// newPose allocates a pose shaped for the given skeleton, reset to the
// identity element of kind. Poses are not created directly by callers;
// they are vended by a PosePool scoped to one player.
func newPose(s *Skeleton, kind poseKind) *Pose {
	n := s.JointCount()
	p := &Pose{skeleton: s, kind: kind, dirty: n}
	p.local = make([]lin.T, n)
	p.object = make([]lin.T, n)
	for i := range p.local {
		p.local[i] = lin.T{Loc: lin.NewV3(), Rot: lin.NewQI(), Scale: lin.NewV3One()}
		p.object[i] = lin.T{Loc: lin.NewV3(), Rot: lin.NewQI(), Scale: lin.NewV3One()}
	}
	p.reset()
	return p
}

// Skeleton returns the skeleton this pose is bound to.
func (p *Pose) Skeleton() *Skeleton { return p.skeleton }

// Kind returns whether this pose is absolute or additive.
func (p *Pose) Kind() poseKind { return p.kind }

// IsAdditive returns true if the pose currently holds additive deltas
// rather than an absolute pose.
func (p *Pose) IsAdditive() bool { return p.kind == additive }

// SetAdditive marks the pose as holding additive deltas. Clip samplers
// for additive clips call this after writing their deltas, per the
// external Sampler contract.
func (p *Pose) SetAdditive() { p.kind = additive }

// Local returns a pointer to the joint-local transform of joint i.
// Callers that mutate the returned transform must call MarkDirty(i).
func (p *Pose) Local(i int) *lin.T { return &p.local[i] }

// MarkDirty records that joint i's local transform has changed,
// lowering the shallowest-dirty index as needed.
func (p *Pose) MarkDirty(i int) {
	if i < p.dirty {
		p.dirty = i
	}
}

// ObjectSpace returns the object-space transform of joint i, recomputing
// any joints from the shallowest-dirty index onward as needed.
func (p *Pose) ObjectSpace(i int) *lin.T {
	p.recompute()
	return &p.object[i]
}

// recompute sweeps forward from the shallowest-dirty index, composing
// each joint's local transform with its parent's already-resolved
// object-space transform. Roots compose against identity.
func (p *Pose) recompute() {
	n := len(p.local)
	for i := p.dirty; i < n; i++ {
		parent := p.skeleton.Parent(i)
		if parent < 0 {
			p.object[i].Set(&p.local[i])
			continue
		}
		p.object[i].Mult(&p.object[parent], &p.local[i])
	}
	p.dirty = n
}

// reset restores the pose to the identity element for its kind: the
// skeleton's rest pose for absolute poses, zero-delta for additive.
func (p *Pose) reset() *Pose {
	switch p.kind {
	case absolute:
		for i := range p.local {
			p.local[i].Set(p.skeleton.joints[i].Rest)
		}
	default:
		for i := range p.local {
			p.local[i].SetIAdditive()
		}
	}
	p.dirty = 0
	return p
}

// copyFrom overwrites p's joint-local data with src's. Both poses must
// share the same skeleton. Used by the pose pool and by jobs that need
// to duplicate a pose into a saved-pose slot.
func (p *Pose) copyFrom(src *Pose) {
	p.kind = src.kind
	for i := range p.local {
		p.local[i].Set(&src.local[i])
	}
	p.dirty = 0
}

// blend writes into p the per-joint blend of a and b by weight w in
// [0,1]: translation/scale lerp, rotation slerps. a, b, and p must all
// be bound to the same skeleton.
func blend(p, a, b *Pose, w float64) error {
	if a.skeleton != p.skeleton || b.skeleton != p.skeleton {
		return fmt.Errorf("pose.blend: mismatched skeletons")
	}
	for i := range p.local {
		p.local[i].Blend(&a.local[i], &b.local[i], w)
	}
	p.kind = absolute
	p.dirty = 0
	return nil
}

// add layers additive pose delta onto base, writing the result into p.
// delta must be of additive kind. base, delta, and p must share a
// skeleton.
func add(p, base, delta *Pose) error {
	if delta.kind != additive {
		return fmt.Errorf("pose.add: delta pose is not additive")
	}
	if base.skeleton != p.skeleton || delta.skeleton != p.skeleton {
		return fmt.Errorf("pose.add: mismatched skeletons")
	}
	for i := range p.local {
		p.local[i].Add(&base.local[i], &delta.local[i])
	}
	p.kind = base.kind
	p.dirty = 0
	return nil
}
