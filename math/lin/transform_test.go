// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestTEq(t *testing.T) {
	a := NewT()
	b := NewT()
	if !a.Eq(b) {
		t.Errorf(format, a.Dump(), b.Dump())
	}
	b.SetLoc(1, 0, 0)
	if a.Eq(b) {
		t.Error("T.Eq should have failed")
	}
}

func TestTSet(t *testing.T) {
	tr := NewT()
	a := NewT().SetLoc(1, 2, 3).SetAa(0, 1, 0, PI/2)
	a.Scale.SetS(2, 2, 2)
	tr.Set(a)
	if !tr.Eq(a) {
		t.Errorf(format, tr.Dump(), a.Dump())
	}
}

func TestTSetI(t *testing.T) {
	tr := NewT().SetLoc(1, 2, 3)
	tr.SetI()
	want := NewT()
	if !tr.Eq(want) {
		t.Errorf(format, tr.Dump(), want.Dump())
	}
}

func TestTSetIAdditive(t *testing.T) {
	tr := NewT().SetLoc(5, 5, 5)
	tr.SetIAdditive()
	want := NewTAdditive()
	if !tr.Eq(want) {
		t.Errorf(format, tr.Dump(), want.Dump())
	}
}

func TestTSetVQS(t *testing.T) {
	tr := NewT()
	loc := NewV3S(1, 2, 3)
	rot := NewQI()
	scale := NewV3S(2, 2, 2)
	tr.SetVQS(loc, rot, scale)
	if !tr.Loc.Eq(loc) || !tr.Rot.Eq(rot) || !tr.Scale.Eq(scale) {
		t.Errorf("T.SetVQS: got %s", tr.Dump())
	}
}

func TestTMultIdentity(t *testing.T) {
	parent := NewT()
	child := NewT().SetLoc(1, 2, 3)
	tr := NewT()
	tr.Mult(parent, child)
	if !tr.Eq(child) {
		t.Errorf(format, tr.Dump(), child.Dump())
	}
}

func TestTMultComposesTranslation(t *testing.T) {
	parent := NewT().SetLoc(10, 0, 0)
	child := NewT().SetLoc(0, 5, 0)
	tr := NewT()
	tr.Mult(parent, child)
	want := NewT().SetLoc(10, 5, 0)
	if !tr.Aeq(want) {
		t.Errorf(format, tr.Dump(), want.Dump())
	}
}

func TestTMultComposesScale(t *testing.T) {
	parent := NewT()
	parent.Scale.SetS(2, 2, 2)
	child := NewT()
	child.Scale.SetS(3, 3, 3)
	tr := NewT()
	tr.Mult(parent, child)
	want := NewV3S(6, 6, 6)
	if !tr.Scale.Eq(want) {
		t.Errorf(format, tr.Scale.Dump(), want.Dump())
	}
}

func TestTMultScalesChildTranslation(t *testing.T) {
	parent := NewT()
	parent.Scale.SetS(2, 2, 2)
	child := NewT().SetLoc(1, 0, 0)
	tr := NewT()
	tr.Mult(parent, child)
	want := NewV3S(2, 0, 0)
	if !tr.Loc.Aeq(want) {
		t.Errorf(format, tr.Loc.Dump(), want.Dump())
	}
}

func TestTApp(t *testing.T) {
	tr := NewT().SetLoc(1, 0, 0)
	v := NewV3S(0, 0, 0)
	tr.App(v)
	want := NewV3S(1, 0, 0)
	if !v.Aeq(want) {
		t.Errorf(format, v.Dump(), want.Dump())
	}
}

func TestTBlendMidpoint(t *testing.T) {
	a := NewT().SetLoc(0, 0, 0)
	b := NewT().SetLoc(10, 0, 0)
	tr := NewT()
	tr.Blend(a, b, 0.5)
	want := NewT().SetLoc(5, 0, 0)
	if !tr.Aeq(want) {
		t.Errorf(format, tr.Dump(), want.Dump())
	}
}

func TestTBlendEndpoints(t *testing.T) {
	a := NewT().SetLoc(1, 1, 1)
	b := NewT().SetLoc(9, 9, 9)
	tr := NewT()
	tr.Blend(a, b, 0)
	if !tr.Aeq(a) {
		t.Errorf(format, tr.Dump(), a.Dump())
	}
	tr.Blend(a, b, 1)
	if !tr.Aeq(b) {
		t.Errorf(format, tr.Dump(), b.Dump())
	}
}

func TestTAddIdentityDeltaLeavesBaseUnchanged(t *testing.T) {
	base := NewT().SetLoc(3, 4, 5)
	delta := NewTAdditive()
	tr := NewT()
	tr.Add(base, delta)
	if !tr.Aeq(base) {
		t.Errorf(format, tr.Dump(), base.Dump())
	}
}

func TestTAddAccumulatesTranslation(t *testing.T) {
	base := NewT().SetLoc(1, 1, 1)
	delta := NewTAdditive()
	delta.Loc.SetS(1, 0, 0)
	tr := NewT()
	tr.Add(base, delta)
	want := NewV3S(2, 1, 1)
	if !tr.Loc.Aeq(want) {
		t.Errorf(format, tr.Loc.Dump(), want.Dump())
	}
}

func TestNewT(t *testing.T) {
	tr := NewT()
	if !tr.Loc.Eq(NewV3()) || !tr.Rot.Eq(NewQI()) || !tr.Scale.Eq(NewV3One()) {
		t.Errorf("NewT: got %s", tr.Dump())
	}
}
