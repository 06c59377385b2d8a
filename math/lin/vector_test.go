// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestV3Eq(t *testing.T) {
	v1, v2 := NewV3S(1, 2, 3), NewV3S(1, 2, 3)
	if !v1.Eq(v2) {
		t.Error("V3.Eq")
	}
	v2.X = 9
	if v1.Eq(v2) {
		t.Error("V3.Eq should have failed")
	}
}

func TestV3Aeq(t *testing.T) {
	v1, v2 := NewV3S(1, 2, 3), NewV3S(1.0000001, 2, 3)
	if !v1.Aeq(v2) {
		t.Error("V3.Aeq")
	}
}

func TestV3AeqZ(t *testing.T) {
	v := NewV3S(0.0000001, 0, 0)
	if !v.AeqZ() {
		t.Error("V3.AeqZ")
	}
	v.SetS(1, 0, 0)
	if v.AeqZ() {
		t.Error("V3.AeqZ should have failed")
	}
}

func TestV3Set(t *testing.T) {
	v, a := NewV3(), NewV3S(1, 2, 3)
	v.Set(a)
	if !v.Eq(a) {
		t.Errorf(format, v.Dump(), a.Dump())
	}
}

func TestV3Add(t *testing.T) {
	v, a, b := NewV3(), NewV3S(1, 2, 3), NewV3S(4, 5, 6)
	v.Add(a, b)
	want := NewV3S(5, 7, 9)
	if !v.Eq(want) {
		t.Errorf(format, v.Dump(), want.Dump())
	}
}

func TestV3Sub(t *testing.T) {
	v, a, b := NewV3(), NewV3S(4, 5, 6), NewV3S(1, 2, 3)
	v.Sub(a, b)
	want := NewV3S(3, 3, 3)
	if !v.Eq(want) {
		t.Errorf(format, v.Dump(), want.Dump())
	}
}

func TestV3Mult(t *testing.T) {
	v, a, b := NewV3(), NewV3S(2, 3, 4), NewV3S(5, 6, 7)
	v.Mult(a, b)
	want := NewV3S(10, 18, 28)
	if !v.Eq(want) {
		t.Errorf(format, v.Dump(), want.Dump())
	}
}

func TestV3Scale(t *testing.T) {
	v, a := NewV3(), NewV3S(1, 2, 3)
	v.Scale(a, 2)
	want := NewV3S(2, 4, 6)
	if !v.Eq(want) {
		t.Errorf(format, v.Dump(), want.Dump())
	}
}

func TestV3Dot(t *testing.T) {
	a, b := NewV3S(1, 2, 3), NewV3S(4, 5, 6)
	if got := a.Dot(b); got != 32 {
		t.Errorf("V3.Dot: got %v wanted 32", got)
	}
}

func TestV3Len(t *testing.T) {
	v := NewV3S(3, 4, 0)
	if !Aeq(v.Len(), 5) {
		t.Errorf("V3.Len: got %v wanted 5", v.Len())
	}
}

func TestV3Lerp(t *testing.T) {
	v, a, b := NewV3(), NewV3S(0, 0, 0), NewV3S(10, 10, 10)
	v.Lerp(a, b, 0.5)
	want := NewV3S(5, 5, 5)
	if !v.Eq(want) {
		t.Errorf(format, v.Dump(), want.Dump())
	}
}

func TestV3MultvQ(t *testing.T) {
	v, a := NewV3(), NewV3S(1, 0, 0)
	q := NewQI()
	v.MultvQ(a, q)
	if !v.Aeq(a) {
		t.Errorf(format, v.Dump(), a.Dump())
	}
}

func TestNewV3One(t *testing.T) {
	one := NewV3One()
	want := NewV3S(1, 1, 1)
	if !one.Eq(want) {
		t.Errorf(format, one.Dump(), want.Dump())
	}
}
