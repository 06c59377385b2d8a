// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import (
	"math"
	"testing"
)

func TestQEq(t *testing.T) {
	q1, q2 := &Q{1, 2, 3, 4}, &Q{1, 2, 3, 4}
	if !q1.Eq(q2) {
		t.Error("Q.Eq")
	}
	q2.W = 9
	if q1.Eq(q2) {
		t.Error("Q.Eq should have failed")
	}
}

func TestQAeq(t *testing.T) {
	q1, q2 := &Q{0, 0, 0, 1}, &Q{0.0000001, 0, 0, 1}
	if !q1.Aeq(q2) {
		t.Error("Q.Aeq")
	}
}

func TestQSet(t *testing.T) {
	q, r := NewQ(), &Q{1, 2, 3, 4}
	q.Set(r)
	if !q.Eq(r) {
		t.Errorf(format, q.Dump(), r.Dump())
	}
}

func TestQInv(t *testing.T) {
	q, r := NewQ(), &Q{1, 2, 3, 4}
	q.Inv(r)
	want := &Q{-1, -2, -3, 4}
	if !q.Eq(want) {
		t.Errorf(format, q.Dump(), want.Dump())
	}
}

func TestQMult(t *testing.T) {
	q := NewQI()
	r := NewQI()
	r.SetAa(0, 1, 0, PI/2)
	q.Mult(NewQI(), r)
	if !q.Aeq(r) {
		t.Errorf(format, q.Dump(), r.Dump())
	}
}

func TestQUnit(t *testing.T) {
	q := &Q{2, 0, 0, 0}
	q.Unit()
	if !Aeq(q.Len(), 1) {
		t.Errorf("Q.Unit: got len %v wanted 1", q.Len())
	}
}

func TestQDot(t *testing.T) {
	q := NewQI()
	if got := q.Dot(q); !Aeq(got, 1) {
		t.Errorf("Q.Dot: got %v wanted 1", got)
	}
}

func TestQNlerp(t *testing.T) {
	q := NewQ()
	r, s := NewQI(), NewQI()
	q.Nlerp(r, s, 0.5)
	if !q.Aeq(NewQI()) {
		t.Errorf(format, q.Dump(), NewQI().Dump())
	}
}

func TestQSlerp(t *testing.T) {
	q := NewQ()
	r := NewQI()
	s := NewQ().SetAa(0, 1, 0, PI/2)
	q.Slerp(r, s, 0.5)
	want := NewQ().SetAa(0, 1, 0, PI/4)
	if !q.Aeq(want) {
		t.Errorf(format, q.Dump(), want.Dump())
	}
	if !Aeq(q.Len(), 1) {
		t.Errorf("Q.Slerp: result not unit length: %v", q.Len())
	}
}

func TestQSlerpNearParallelFallsBackToNlerp(t *testing.T) {
	q := NewQ()
	r := NewQI()
	s := &Q{0, 0, 0.0000001, 1}
	s.Unit()
	q.Slerp(r, s, 0.5)
	if !Aeq(q.Len(), 1) {
		t.Errorf("Q.Slerp near-parallel: result not unit length: %v", q.Len())
	}
}

func TestQAa(t *testing.T) {
	q := NewQ().SetAa(0, 1, 0, PI/2)
	ax, ay, az, ang := q.Aa()
	if !Aeq(ax, 0) || !Aeq(ay, 1) || !Aeq(az, 0) || !Aeq(ang, PI/2) {
		t.Errorf("Q.Aa: got (%v,%v,%v,%v)", ax, ay, az, ang)
	}
}

func TestQSetAaZeroAxis(t *testing.T) {
	q := NewQ().SetAa(0, 0, 0, PI/2)
	if !q.Eq(NewQI()) {
		t.Errorf(format, q.Dump(), NewQI().Dump())
	}
}

func TestNewQI(t *testing.T) {
	q := NewQI()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Error("NewQI did not return identity")
	}
}

func TestQIUnchanging(t *testing.T) {
	before := *QI
	_ = NewQ().Mult(QI, QI)
	if *QI != before {
		t.Error("QI should never be mutated")
	}
}

func TestQRotatesVectorByExpectedAngle(t *testing.T) {
	q := NewQ().SetAa(0, 0, 1, math.Pi/2)
	v := NewV3S(1, 0, 0)
	v.MultvQ(v, q)
	want := NewV3S(0, 1, 0)
	if !v.Aeq(want) {
		t.Errorf(format, v.Dump(), want.Dump())
	}
}
