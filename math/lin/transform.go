// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// T is a 3D transform for translation, rotation, and non-uniform scale.
// T is the unit of joint-local and object-space pose data: a pose is an
// ordered sequence of T, one per joint.
//
// T supports linear algebra operations similar to those supported by
// V3 and Q. The main ones are:
//
//	Compose a parent transform with a child transform to produce the
//	child's object-space transform.
//	Blend (lerp/slerp) and additively combine two transforms.
type T struct {
	Loc   *V3 // Location (translation).
	Rot   *Q  // Rotation (orientation).
	Scale *V3 // Non-uniform scale. Identity is (1,1,1).
}

// Eq (==) returns true of all elements of transform t have the same value as
// the corresponding element of transform a.
func (t *T) Eq(a *T) bool { return t.Rot.Eq(a.Rot) && t.Loc.Eq(a.Loc) && t.Scale.Eq(a.Scale) }

// Aeq (~=) almost-equals returns true if all the elements in transform t have
// essentially the same value as the corresponding elements in transform a.
// Used where a direct comparison is unlikely to return true due to floats.
func (t *T) Aeq(a *T) bool {
	return t.Rot.Aeq(a.Rot) && t.Loc.Aeq(a.Loc) && t.Scale.Aeq(a.Scale)
}

// Set (=, copy, clone) assigns all the elements values from transform a to the
// corresponding element values in transform t. The updated transform t is returned.
func (t *T) Set(a *T) *T {
	t.Loc.Set(a.Loc)
	t.Rot.Set(a.Rot)
	t.Scale.Set(a.Scale)
	return t
}

// SetI updates transform t to be the absolute identity transform: zero
// translation, no rotation, unit scale. This is the identity element for
// an absolute pose (see SetIAdditive for additive poses).
// The updated transform t is returned.
func (t *T) SetI() *T {
	t.Loc.SetS(0, 0, 0)
	t.Rot.Set(QI)
	t.Scale.SetS(1, 1, 1)
	return t
}

// SetIAdditive updates transform t to be the additive identity transform:
// zero translation delta, no rotation delta, unit scale delta. Applying an
// additive-identity transform via Add leaves the base transform unchanged.
// The updated transform t is returned.
func (t *T) SetIAdditive() *T {
	t.Loc.SetS(0, 0, 0)
	t.Rot.Set(QI)
	t.Scale.SetS(1, 1, 1)
	return t
}

// SetVQS (=) sets the transform t based on the given translation, rotation,
// and scale. The updated transform t is returned.
func (t *T) SetVQS(loc *V3, rot *Q, scale *V3) *T {
	t.Loc.Set(loc)
	t.Rot.Set(rot)
	t.Scale.Set(scale)
	return t
}

// SetAa updates transform t to have the rotation specified by the given
// axis and angle in radians. The updated transform t is returned.
func (t *T) SetAa(ax, ay, az, ang float64) *T {
	t.Rot.SetAa(ax, ay, az, ang)
	return t
}

// SetLoc updates transform t to have the location specified by lx, ly, lz.
// The updated transform t is returned.
func (t *T) SetLoc(lx, ly, lz float64) *T {
	t.Loc.X, t.Loc.Y, t.Loc.Z = lx, ly, lz
	return t
}

// SetRot updates transform t to have the rotation specified by x, y, z, w.
// The updated transform t is returned.
func (t *T) SetRot(x, y, z, w float64) *T {
	t.Rot.X, t.Rot.Y, t.Rot.Z, t.Rot.W = x, y, z, w
	return t
}

// Mult (*) updates the transform t to be the composition of parent
// transform a with child transform b, i.e. b expressed relative to a
// becomes t expressed in a's space. This is exactly the joint-local to
// object-space composition: t = parentObjectSpace * childJointLocal.
// Transform t may be used as one or both of the input transforms.
// The updated transform t is returned.
func (t *T) Mult(a, b *T) *T {
	// scale b's translation by a's scale, then rotate by a's rotation,
	// then offset by a's translation.
	sx, sy, sz := b.Loc.X*a.Scale.X, b.Loc.Y*a.Scale.Y, b.Loc.Z*a.Scale.Z
	rx, ry, rz := multSQ(sx, sy, sz, a.Rot.X, a.Rot.Y, a.Rot.Z, a.Rot.W)
	tx, ty, tz := a.Loc.X, a.Loc.Y, a.Loc.Z // preserve in case t aliases a.
	t.Scale.Mult(a.Scale, b.Scale)
	t.Rot.Mult(a.Rot, b.Rot)
	t.Loc.X, t.Loc.Y, t.Loc.Z = rx+tx, ry+ty, rz+tz
	return t
}

// App applies transform t's rotation and translation to vector v, ignoring
// scale. The updated vector v is returned.
func (t *T) App(v *V3) *V3 {
	v.MultvQ(v, t.Rot) // apply rotation.
	v.Add(v, t.Loc)    // apply translation.
	return v
}

// Blend (lerp/slerp) updates t to be the per-component blend of transforms
// a and b by weight w: translation and scale lerp, rotation slerps. Used to
// blend two absolute poses joint-by-joint. The updated transform t is
// returned.
func (t *T) Blend(a, b *T, w float64) *T {
	t.Loc.Lerp(a.Loc, b.Loc, w)
	t.Scale.Lerp(a.Scale, b.Scale, w)
	t.Rot.Slerp(a.Rot, b.Rot, w)
	return t
}

// Add layers additive transform delta onto base transform t: translation
// accumulates, rotation composes delta-then-base, scale multiplies. Used to
// apply an additive clip's deltas over an absolute base pose.
// The updated transform t is returned.
func (t *T) Add(base, delta *T) *T {
	t.Rot.Mult(delta.Rot, base.Rot)
	t.Loc.Add(base.Loc, delta.Loc)
	t.Scale.Mult(base.Scale, delta.Scale)
	return t
}

// ============================================================================
// convenience functions for allocating transforms. Nothing else should allocate.

// NewT creates and returns a transform at the origin with no rotation and
// unit scale (the absolute identity transform).
func NewT() *T {
	return &T{Loc: &V3{}, Rot: &Q{W: 1}, Scale: &V3{X: 1, Y: 1, Z: 1}}
}

// NewTAdditive creates and returns the additive identity transform: zero
// translation delta, no rotation delta, unit scale delta.
func NewTAdditive() *T {
	return NewT()
}
