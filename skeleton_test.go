// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

import (
	"testing"

	"github.com/galvanized/animgraph/math/lin"
)

func threeJointSkeleton(t *testing.T) *Skeleton {
	t.Helper()
	joints := []Joint{
		{Name: "root", Parent: -1, Rest: lin.NewT()},
		{Name: "spine", Parent: 0, Rest: lin.NewT().SetLoc(0, 1, 0)},
		{Name: "head", Parent: 1, Rest: lin.NewT().SetLoc(0, 1, 0)},
	}
	s, err := NewSkeleton("biped", joints)
	if err != nil {
		t.Fatalf("NewSkeleton: %v", err)
	}
	return s
}

func TestNewSkeletonOrderedParents(t *testing.T) {
	s := threeJointSkeleton(t)
	if s.JointCount() != 3 {
		t.Fatalf("got %d joints, want 3", s.JointCount())
	}
	if s.Parent(0) != -1 || s.Parent(1) != 0 || s.Parent(2) != 1 {
		t.Fatalf("unexpected parent chain")
	}
	if s.JointName(2) != "head" {
		t.Fatalf("got joint name %q, want head", s.JointName(2))
	}
}

func TestNewSkeletonRejectsForwardParent(t *testing.T) {
	joints := []Joint{
		{Name: "root", Parent: -1, Rest: lin.NewT()},
		{Name: "bad", Parent: 1, Rest: lin.NewT()}, // parent == own index
	}
	if _, err := NewSkeleton("bad", joints); err == nil {
		t.Fatal("expected an error for a joint whose parent index is not smaller")
	}
}

func TestNewSkeletonRejectsMissingRest(t *testing.T) {
	joints := []Joint{{Name: "root", Parent: -1}}
	if _, err := NewSkeleton("bad", joints); err == nil {
		t.Fatal("expected an error for a joint missing its rest transform")
	}
}

func TestRestPoseMatchesJointRest(t *testing.T) {
	s := threeJointSkeleton(t)
	p := s.RestPose()
	for i := 0; i < s.JointCount(); i++ {
		if !p.Local(i).Eq(s.joints[i].Rest) {
			t.Fatalf("joint %d local transform does not match rest", i)
		}
	}
	// object-space of the head should be the sum of the chain's translations.
	head := p.ObjectSpace(2)
	if head.Loc.Y != 2 {
		t.Fatalf("head object-space Y = %v, want 2", head.Loc.Y)
	}
}
