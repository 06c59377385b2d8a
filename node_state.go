// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

import "sort"

// stateNode wraps a pose-producing node plus its outgoing transitions.
// Its own phase is copy-derived from the wrapped pose node. breakpoints
// is the sorted, deduplicated set of required phases referenced by its
// transitions' condition subtrees; the state machine scans them in
// ascending order each tick to find transitions that fire mid-tick
// rather than only at the tick's final phase.
type stateNode struct {
	name        string
	pose        poseNode
	transitions []*transitionNode
	breakpoints []float64
}

func newStateNode(name string, pose poseNode, transitions []*transitionNode) *stateNode {
	n := &stateNode{name: name, pose: pose, transitions: transitions}
	n.breakpoints = computeBreakpoints(transitions)
	return n
}

// computeBreakpoints walks every transition's condition subtree for
// stateConditionNode instances and collects their required phases,
// sorted ascending with duplicates removed.
func computeBreakpoints(transitions []*transitionNode) []float64 {
	seen := map[float64]bool{}
	var out []float64
	for _, tr := range transitions {
		var descendants []runtimeNode
		descendants = tr.condition.collectDescendants(descendants)
		for _, d := range descendants {
			if sc, ok := d.(*stateConditionNode); ok && !seen[sc.requiredPhase] {
				seen[sc.requiredPhase] = true
				out = append(out, sc.requiredPhase)
			}
		}
	}
	sort.Float64s(out)
	return out
}

func (n *stateNode) updateDuration(ctx *evalContext) { n.pose.updateDuration(ctx) }
func (n *stateNode) duration() float64               { return n.pose.duration() }

func (n *stateNode) phase() float64     { return n.pose.phase() }
func (n *stateNode) setPhase(p float64) { n.pose.setPhase(p) }
func (n *stateNode) onStart()           { n.pose.onStart() }

func (n *stateNode) getNextPhaseUnwrapped(ctx *evalContext) float64 {
	return n.pose.getNextPhaseUnwrapped(ctx)
}

func (n *stateNode) compute(ctx *evalContext) result {
	return n.pose.compute(ctx)
}

func (n *stateNode) collectDescendants(dst []runtimeNode) []runtimeNode {
	dst = append(dst, n)
	dst = n.pose.collectDescendants(dst)
	for _, tr := range n.transitions {
		dst = tr.collectDescendants(dst)
	}
	return dst
}

// evalOutgoing scans n's outgoing transitions at the given candidate
// phase, returning the first transition whose condition passes, or nil
// if none do. sm's transient scratch is updated to reflect the
// candidate being examined, since state_condition nodes read it.
func (n *stateNode) evalOutgoing(sm *stateMachineNode, ctx *evalContext, candidatePhase float64) *transitionNode {
	sm.sourceCandidate = n
	sm.sourceCandidatePhase = candidatePhase
	for _, tr := range n.transitions {
		if tr.condition.compute(ctx).mustBool() {
			return tr
		}
	}
	return nil
}
