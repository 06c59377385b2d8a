// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

import (
	"fmt"

	"github.com/galvanized/animgraph/math/lin"
)

// Joint is one bone of a Skeleton. Parent is the index of the joint's
// parent within the owning Skeleton's Joints slice, or -1 for a root
// joint. Parent is always strictly less than the joint's own index:
// skeletons are topologically sorted, roots first, so a single forward
// sweep over the joint list is enough to compute object-space transforms.
type Joint struct {
	Name   string  // stable string identifier, unique within the skeleton.
	Parent int     // index of parent joint, -1 for roots.
	Rest   *lin.T  // rest-pose transform, expressed in joint-local space.
}

// Skeleton is an ordered, immutable sequence of joints. A Skeleton is
// created once (typically from cooked asset data) and referenced by
// every Pose and Clip built against it; it is safe to share across
// players and goroutines since nothing ever mutates it after NewSkeleton
// returns.
type Skeleton struct {
	name   string
	tag    aid
	joints []Joint
}

// NewSkeleton validates and builds a Skeleton from the given joints.
// Joints must be ordered so that a joint's parent always has a smaller
// index (roots first). An error is returned, and no Skeleton built, if
// that invariant is violated.
func NewSkeleton(name string, joints []Joint) (*Skeleton, error) {
	for i, j := range joints {
		if j.Parent >= i {
			return nil, fmt.Errorf("skeleton %s: joint %d %q has parent index %d, want < %d",
				name, i, j.Name, j.Parent, i)
		}
		if j.Rest == nil {
			return nil, fmt.Errorf("skeleton %s: joint %d %q missing rest transform", name, i, j.Name)
		}
	}
	s := &Skeleton{name: name, tag: assetID(skl, name), joints: joints}
	return s, nil
}

// implement asset interface.
func (s *Skeleton) aid() aid      { return s.tag }
func (s *Skeleton) label() string { return s.name }

// JointCount returns the number of joints in the skeleton.
func (s *Skeleton) JointCount() int { return len(s.joints) }

// Parent returns the parent index of joint i, or -1 if i is a root.
func (s *Skeleton) Parent(i int) int { return s.joints[i].Parent }

// JointName returns the stable identifier of joint i.
func (s *Skeleton) JointName(i int) string { return s.joints[i].Name }

// RestPose returns a fresh absolute pose holding the skeleton's rest
// transforms, one per joint.
func (s *Skeleton) RestPose() *Pose {
	p := newPose(s, absolute)
	for i, j := range s.joints {
		p.local[i].Set(j.Rest)
	}
	p.dirty = 0
	return p
}
