// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

// machineStack is the per-player ambient "current state machine"
// reference described in the design notes: rather than threading a
// state-machine pointer through every compute signature just so
// state_condition nodes can read it, each state machine pushes itself
// on entry to its own update_duration/compute and pops on exit. State
// machines may nest via sub-state-machine nodes, so a stack (not a
// single slot) is required. Single-threaded, no synchronisation.
type machineStack struct {
	stack []*stateMachineNode
}

func (s *machineStack) push(m *stateMachineNode) { s.stack = append(s.stack, m) }
func (s *machineStack) pop()                     { s.stack = s.stack[:len(s.stack)-1] }

func (s *machineStack) current() *stateMachineNode {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

// stateMachineNode is the most intricate runtime node: it owns a list
// of states, a "current node" that is either one of those states or a
// transition node mid-flight, and transient per-tick scratch consulted
// by state_condition nodes belonging to whichever state is presently
// being examined for outgoing transitions.
type stateMachineNode struct {
	phaseState
	lastSeenCounter

	states  []*stateNode
	current runtimeNode // *stateNode or *transitionNode.

	sourceCandidate      *stateNode
	sourceCandidatePhase float64
	lastCommittedSource  *stateNode

	cachedDur  float64
	durCounter uint32
	durSeen    bool
}

func newStateMachineNode(states []*stateNode) *stateMachineNode {
	n := &stateMachineNode{states: states}
	n.rules = phaseCopy
	if len(states) > 0 {
		n.current = states[0]
	}
	return n
}

func (n *stateMachineNode) duration() float64 { return n.cachedDur }

func (n *stateMachineNode) onStart() {
	if len(n.states) > 0 {
		n.current = n.states[0]
		n.states[0].onStart()
	}
}

func (n *stateMachineNode) getNextPhaseUnwrapped(ctx *evalContext) float64 {
	switch cur := n.current.(type) {
	case *stateNode:
		return cur.getNextPhaseUnwrapped(ctx)
	case *transitionNode:
		return cur.getNextPhaseUnwrapped(ctx)
	}
	return 0
}

// currentPoseNode returns the runtime node that actually advances
// phase this tick: the current state (whose phase is that of its
// wrapped pose node), or the current transition.
func (n *stateMachineNode) currentPoseNode() poseNode {
	switch cur := n.current.(type) {
	case *stateNode:
		return cur
	case *transitionNode:
		return cur
	}
	return nil
}

func (n *stateMachineNode) updateDuration(ctx *evalContext) {
	mach := ctx.machines
	mach.push(n)
	defer mach.pop()

	if n.checkStart(ctx.playCounter) {
		n.onStart()
	}

	n.current.updateDuration(ctx)
	next := n.getNextPhaseUnwrapped(ctx)
	if n.updateState(ctx, next) {
		n.current.updateDuration(ctx)
	}
	n.cachedDur = n.currentDuration()
	n.durCounter = ctx.playCounter
	n.durSeen = true

	if cp := n.currentPoseNode(); cp != nil {
		n.p = cp.phase()
	}
}

func (n *stateMachineNode) currentDuration() float64 {
	switch cur := n.current.(type) {
	case *stateNode:
		return cur.duration()
	case *transitionNode:
		return cur.duration()
	}
	return 0
}

// updateState implements the per-tick transition scheduling rules:
// while current is a state, breakpoints strictly before nextPhase are
// scanned in ascending order, then nextPhase itself is scanned; the
// first passing transition's condition wins and becomes current. While
// current is a transition, it becomes the destination once finished.
func (n *stateMachineNode) updateState(ctx *evalContext, nextPhase float64) bool {
	switch cur := n.current.(type) {
	case *stateNode:
		for _, bp := range cur.breakpoints {
			if bp >= nextPhase {
				break
			}
			if tr := cur.evalOutgoing(n, ctx, bp); tr != nil {
				n.trigger(cur, tr, bp)
				return true
			}
		}
		if tr := cur.evalOutgoing(n, ctx, nextPhase); tr != nil {
			n.trigger(cur, tr, nextPhase)
			return true
		}
	case *transitionNode:
		if cur.isFinished(nextPhase) {
			n.current = cur.currentDestination
			n.lastCommittedSource = nil
			return true
		}
	}
	return false
}

func (n *stateMachineNode) trigger(source *stateNode, tr *transitionNode, phase float64) {
	tr.arm(source, phase)
	n.current = tr
	n.lastCommittedSource = source
}

func (n *stateMachineNode) compute(ctx *evalContext) result {
	mach := ctx.machines
	mach.push(n)
	defer mach.pop()

	if !n.durSeen || n.durCounter != ctx.playCounter {
		n.updateDurationLocked(ctx)
	}

	if cur, ok := n.current.(*stateNode); ok && ctx.syncEnabled && len(cur.breakpoints) > 0 {
		n.updateState(ctx, n.p)
	}

	r := n.current.compute(ctx)
	if cp := n.currentPoseNode(); cp != nil {
		n.p = cp.phase()
	}
	return r
}

// updateDurationLocked runs updateDuration without re-pushing this
// machine onto the ambient stack (the caller already holds the top
// slot for this machine).
func (n *stateMachineNode) updateDurationLocked(ctx *evalContext) {
	if n.checkStart(ctx.playCounter) {
		n.onStart()
	}
	n.current.updateDuration(ctx)
	next := n.getNextPhaseUnwrapped(ctx)
	if n.updateState(ctx, next) {
		n.current.updateDuration(ctx)
	}
	n.cachedDur = n.currentDuration()
	n.durCounter = ctx.playCounter
	n.durSeen = true
}

func (n *stateMachineNode) collectDescendants(dst []runtimeNode) []runtimeNode {
	dst = append(dst, n)
	for _, s := range n.states {
		dst = s.collectDescendants(dst)
	}
	return dst
}
