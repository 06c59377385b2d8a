// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

import "math/rand"

// andLogicNode evaluates its children short-circuit and returns true
// iff every one of them is true.
type andLogicNode struct {
	children []runtimeNode
}

func newAndLogicNode(children []runtimeNode) *andLogicNode {
	return &andLogicNode{children: children}
}

func (n *andLogicNode) updateDuration(ctx *evalContext) {}
func (n *andLogicNode) duration() float64               { return 0 }

func (n *andLogicNode) compute(ctx *evalContext) result {
	for _, c := range n.children {
		if !c.compute(ctx).mustBool() {
			return boolResult(false)
		}
	}
	return boolResult(true)
}

func (n *andLogicNode) collectDescendants(dst []runtimeNode) []runtimeNode {
	dst = append(dst, n)
	for _, c := range n.children {
		dst = c.collectDescendants(dst)
	}
	return dst
}

// randomNode holds a list of candidate pose nodes and, each time the
// currently-selected child is about to wrap past 1.0 (or on first
// entry), re-draws a uniform random selection from the list. Its own
// phase is copy-derived from the selected child.
type randomNode struct {
	phaseState
	lastSeenCounter
	children []poseNode
	selected int
	rng      *rand.Rand
}

// newRandomNode builds a random node. rng allows deterministic,
// seedable selection for tests; pass nil to use the package default
// (non-deterministic) source.
func newRandomNode(children []poseNode, rng *rand.Rand) *randomNode {
	n := &randomNode{children: children, selected: -1, rng: rng}
	n.rules = phaseCopy
	return n
}

func (n *randomNode) current() poseNode { return n.children[n.selected] }

func (n *randomNode) draw() int {
	if len(n.children) == 1 {
		return 0
	}
	if n.rng != nil {
		return n.rng.Intn(len(n.children))
	}
	return rand.Intn(len(n.children))
}

func (n *randomNode) updateDuration(ctx *evalContext) {
	if n.selected < 0 {
		n.selected = n.draw()
	} else if n.current().getNextPhaseUnwrapped(ctx) > 1 {
		n.selected = n.draw()
	}
	n.current().updateDuration(ctx)
}

func (n *randomNode) duration() float64 { return n.current().duration() }

func (n *randomNode) onStart() {
	n.selected = n.draw()
	n.current().onStart()
}

func (n *randomNode) getNextPhaseUnwrapped(ctx *evalContext) float64 {
	return n.current().getNextPhaseUnwrapped(ctx)
}

func (n *randomNode) compute(ctx *evalContext) result {
	if n.checkStart(ctx.playCounter) {
		n.onStart()
	}
	r := n.current().compute(ctx)
	n.p = n.current().phase()
	return r
}

func (n *randomNode) collectDescendants(dst []runtimeNode) []runtimeNode {
	dst = append(dst, n)
	for _, c := range n.children {
		dst = c.collectDescendants(dst)
	}
	return dst
}
