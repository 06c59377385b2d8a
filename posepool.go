// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

import "log"

// PosePool is a bounded pool of pose buffers shaped for one skeleton,
// scoped to the lifetime of a single GraphPlayer. Borrowed poses are
// returned with release; if the pool is empty at borrow time a fresh
// pose is allocated on demand so the pool never blocks or fails a
// borrow. The pool is purely single-threaded, matching the player's
// single-threaded evaluation model.
type PosePool struct {
	skeleton *Skeleton
	free     []*Pose
	lent     int // outstanding borrow count, debug-checked at close.
}

// newPosePool creates a pool for the given skeleton, pre-warmed with
// capacity free poses.
func newPosePool(s *Skeleton, capacity int) *PosePool {
	pp := &PosePool{skeleton: s}
	pp.free = make([]*Pose, 0, capacity)
	for i := 0; i < capacity; i++ {
		pp.free = append(pp.free, newPose(s, absolute))
	}
	return pp
}

// borrow lends out a pose buffer reset to the absolute identity. If the
// pool has no free poses one is allocated.
func (pp *PosePool) borrow() *Pose {
	n := len(pp.free)
	var p *Pose
	if n > 0 {
		p = pp.free[n-1]
		pp.free = pp.free[:n-1]
	} else {
		p = newPose(pp.skeleton, absolute)
	}
	p.kind = absolute // a released pose may have been marked additive by a sampler.
	p.reset()
	pp.lent++
	return p
}

// release returns a borrowed pose to the pool.
func (pp *PosePool) release(p *Pose) {
	if p == nil {
		return
	}
	pp.lent--
	pp.free = append(pp.free, p)
}

// close verifies all borrowed poses have been released. Called when a
// player is torn down; a non-zero outstanding count indicates a pose
// handle outlived the pool, a contract violation under §5.
func (pp *PosePool) close() {
	if pp.lent != 0 {
		log.Printf("posepool.close: %d poses still outstanding", pp.lent)
	}
}
