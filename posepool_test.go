// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

import "testing"

func TestPosePoolReusesReleasedPose(t *testing.T) {
	s := threeJointSkeleton(t)
	pp := newPosePool(s, 1)
	p1 := pp.borrow()
	pp.release(p1)
	p2 := pp.borrow()
	if p1 != p2 {
		t.Fatal("borrow after release did not reuse the same buffer")
	}
}

func TestPosePoolGrowsWhenEmpty(t *testing.T) {
	s := threeJointSkeleton(t)
	pp := newPosePool(s, 0)
	p := pp.borrow()
	if p == nil {
		t.Fatal("borrow on an empty pool should allocate, not fail")
	}
	if pp.lent != 1 {
		t.Fatalf("lent = %d, want 1", pp.lent)
	}
}

func TestPosePoolBorrowResetsToIdentity(t *testing.T) {
	s := threeJointSkeleton(t)
	pp := newPosePool(s, 1)
	p := pp.borrow()
	p.Local(0).SetLoc(9, 9, 9)
	pp.release(p)

	p2 := pp.borrow()
	if p2.Local(0).Loc.X == 9 {
		t.Fatal("borrowed pose was not reset before being lent out again")
	}
}
