// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

// stateConditionNode returns true iff the enclosing state machine's
// current transition-source-candidate phase is at or past the
// condition's required phase. It consults the per-player ambient
// "current state machine" stack rather than having a pointer threaded
// through every compute call, since state machines may nest and the
// stack already needs to exist for that reason.
type stateConditionNode struct {
	requiredPhase float64
}

func newStateConditionNode(requiredPhase float64) *stateConditionNode {
	return &stateConditionNode{requiredPhase: requiredPhase}
}

func (n *stateConditionNode) updateDuration(ctx *evalContext) {}
func (n *stateConditionNode) duration() float64               { return 0 }

func (n *stateConditionNode) compute(ctx *evalContext) result {
	sm := ctx.machines.current()
	if sm == nil {
		panic("state_condition: evaluated outside any state machine")
	}
	return boolResult(sm.sourceCandidatePhase >= n.requiredPhase)
}

func (n *stateConditionNode) collectDescendants(dst []runtimeNode) []runtimeNode {
	return append(dst, n)
}
