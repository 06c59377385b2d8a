// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

// sumNode additively combines two pose-node children: an absolute base
// and an additive delta. Its duration is the longer of the two
// children's durations. It owns no phase: each child advances its own
// phase independently. sumNode does not implement poseNode, so it can
// be a graph's root, but the graph builder rejects it wherever a
// pose-node child is expected (blend, random, speed, state or sum
// children).
type sumNode struct {
	a, b poseNode
}

func newSumNode(a, b poseNode) *sumNode { return &sumNode{a: a, b: b} }

func (n *sumNode) updateDuration(ctx *evalContext) {
	n.a.updateDuration(ctx)
	n.b.updateDuration(ctx)
}

func (n *sumNode) duration() float64 {
	if n.a.duration() > n.b.duration() {
		return n.a.duration()
	}
	return n.b.duration()
}

func (n *sumNode) compute(ctx *evalContext) result {
	aIdx := n.a.compute(ctx).mustJob()
	bIdx := n.b.compute(ctx).mustJob()
	idx := ctx.queue.enqueueAdd(aIdx, bIdx)
	return jobResult(idx)
}

func (n *sumNode) collectDescendants(dst []runtimeNode) []runtimeNode {
	dst = append(dst, n)
	dst = n.a.collectDescendants(dst)
	return n.b.collectDescendants(dst)
}
