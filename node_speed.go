// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

// speedNode forwards compute to its pose-node child under a context
// whose dt_s is scaled by a float produced by its speed-provider child.
// It does not itself enqueue jobs or own a phase: phase lives entirely
// on the wrapped child.
type speedNode struct {
	child    poseNode
	provider runtimeNode // produces a float multiplier each compute.
}

func newSpeedNode(child poseNode, provider runtimeNode) *speedNode {
	return &speedNode{child: child, provider: provider}
}

func (n *speedNode) multiplier(ctx *evalContext) float64 {
	v, ok := n.provider.compute(ctx).mustValue().Float()
	if !ok {
		return 1
	}
	return v
}

func (n *speedNode) updateDuration(ctx *evalContext) {
	n.child.updateDuration(ctx)
}

func (n *speedNode) duration() float64 { return n.child.duration() }

func (n *speedNode) compute(ctx *evalContext) result {
	scaled := ctx.withDt(ctx.dtS * n.multiplier(ctx))
	return n.child.compute(&scaled)
}

// speedNode's phase is entirely its wrapped child's: it owns no phase
// state of its own, only the dt_s scaling applied around the child.
func (n *speedNode) phase() float64                                  { return n.child.phase() }
func (n *speedNode) setPhase(p float64)                               { n.child.setPhase(p) }
func (n *speedNode) onStart()                                         { n.child.onStart() }
func (n *speedNode) getNextPhaseUnwrapped(ctx *evalContext) float64 {
	return n.child.getNextPhaseUnwrapped(ctx)
}

func (n *speedNode) collectDescendants(dst []runtimeNode) []runtimeNode {
	dst = append(dst, n)
	dst = n.child.collectDescendants(dst)
	return n.provider.collectDescendants(dst)
}
