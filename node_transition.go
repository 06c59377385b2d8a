// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

import "math"

// transitionKind enumerates supported transition blend flavours. Only
// frozen_fade is specified.
type transitionKind uint8

const frozenFade transitionKind = 0

// transitionNode implements a frozen-fade state transition: the source
// state is sampled once at transition start and held constant (via a
// saved-pose slot) while the destination runs and is blended against
// it with a weight that grows from 0 to 1 over the transition's
// duration. A reversible transition may flip direction mid-flight if
// its gating condition's truth value flips, blending back from
// whatever pose was last rendered rather than restarting from scratch.
type transitionNode struct {
	phaseState
	lastSeenCounter

	condition   runtimeNode
	destination *stateNode // original destination, static from the graph definition.
	durationS   float64
	reversible  bool

	source             *stateNode // state this transition was triggered from.
	currentSource      *stateNode
	currentDestination *stateNode
	triggerPhase       float64 // source candidate phase at the tick the transition was chosen.

	slotFrozen, slotRunning int  // saved-pose slot indices, acquired on first compute.
	sourceIsFrozenSlot      bool // which of the two slots currently plays the "source" role.
	sourceCapturedPhase     float64
	slotsAcquired           bool

	reversed bool
}

func newTransitionNode(condition runtimeNode, destination *stateNode, durationS float64, reversible bool) *transitionNode {
	n := &transitionNode{condition: condition, destination: destination, durationS: durationS, reversible: reversible}
	n.sourceIsFrozenSlot = true
	return n
}

// arm binds the transition to the state it is being triggered from and
// the phase at which the triggering breakpoint scan found it. Called
// by the state machine the tick it selects this transition. The
// transition's own phase and its captured source-phase both start at 0
// regardless of triggerPhase: triggerPhase is used only as the sync
// phase for sampling the source state once, at the moment of capture.
func (n *transitionNode) arm(source *stateNode, triggerPhase float64) {
	n.source = source
	n.currentSource = source
	n.currentDestination = n.destination
	n.triggerPhase = triggerPhase
	n.p = 0
	n.sourceCapturedPhase = 0
	n.slotsAcquired = false
	n.reversed = false
}

// updateDuration re-evaluates the gating condition and flips direction
// when reversible before the state machine reads this transition's next
// unwrapped phase or calls isFinished: both depend on n.reversed, so the
// flip must land here, ahead of the machine's own updateState call, not
// in compute.
func (n *transitionNode) updateDuration(ctx *evalContext) {
	n.checkReversal(ctx)
	n.currentDestination.updateDuration(ctx)
}

func (n *transitionNode) duration() float64 { return n.currentDestination.duration() }

func (n *transitionNode) onStart() {}

func (n *transitionNode) getNextPhaseUnwrapped(ctx *evalContext) float64 {
	rate := 0.0
	if n.durationS > 0 {
		rate = ctx.dtS / n.durationS
	}
	if n.reversed {
		return n.p - rate
	}
	return n.p + rate
}

// isFinished reports whether the transition has run to completion at
// the given (unclamped) phase: forward transitions finish at phase>=1,
// reversed transitions finish at phase<=0.
func (n *transitionNode) isFinished(phase float64) bool {
	if n.reversed {
		return phase <= 0
	}
	return phase >= 1
}

// checkReversal re-evaluates the gating condition and flips direction
// whenever reversed no longer agrees with it (reversed should hold
// exactly when the condition has gone false), per the frozen-fade
// reversal contract. Non-reversible transitions ignore the condition
// entirely and run to completion regardless (see open-question
// resolution in DESIGN.md).
func (n *transitionNode) checkReversal(ctx *evalContext) {
	if !n.reversible {
		return
	}
	canContinue := n.condition.compute(ctx).mustBool()
	if n.reversed == canContinue {
		n.reversed = !n.reversed
		n.sourceIsFrozenSlot = !n.sourceIsFrozenSlot
		n.sourceCapturedPhase = n.p
		if n.reversed {
			n.currentSource, n.currentDestination = n.destination, n.source
		} else {
			n.currentSource, n.currentDestination = n.source, n.destination
		}
	}
}

func (n *transitionNode) blendWeight() float64 {
	denom := 1 - n.sourceCapturedPhase
	if n.reversed {
		denom = n.sourceCapturedPhase
	}
	if denom == 0 {
		return 1
	}
	w := math.Abs(n.p-n.sourceCapturedPhase) / denom
	if w > 1 {
		w = 1
	}
	if w < 0 {
		w = 0
	}
	return w
}

func (n *transitionNode) compute(ctx *evalContext) result {
	next := n.getNextPhaseUnwrapped(ctx)
	if next > 1 {
		next = 1
	} else if next < 0 {
		next = 0
	}
	n.p = next

	if !n.slotsAcquired {
		n.slotFrozen = ctx.queue.acquireSavedPoseSlot()
		n.slotRunning = ctx.queue.acquireSavedPoseSlot()
		synced := ctx.withSync(n.triggerPhase)
		srcJobIdx := n.currentSource.compute(&synced).mustJob()
		ctx.queue.enqueueSave(srcJobIdx, n.slotFrozen)
		n.slotsAcquired = true
	}

	sourceSlot, otherSlot := n.slotFrozen, n.slotRunning
	if !n.sourceIsFrozenSlot {
		sourceSlot, otherSlot = n.slotRunning, n.slotFrozen
	}

	restoreIdx := ctx.queue.enqueueRestore(sourceSlot)
	destIdx := n.currentDestination.compute(ctx).mustJob()
	weight := n.blendWeight()
	blendIdx := ctx.queue.enqueueBlend(restoreIdx, destIdx, weight)
	ctx.queue.enqueueSave(blendIdx, otherSlot)
	return jobResult(blendIdx)
}

// collectDescendants deliberately does not recurse into the
// destination state: states and transitions form a cyclic graph (back
// edges via transitions are the one cycle the data model permits), and
// the only reason anything walks this tree is computeBreakpoints
// looking for state_condition nodes in a transition's condition
// subtree. Walking into the destination would revisit this transition
// by way of the destination's own outgoing transitions.
func (n *transitionNode) collectDescendants(dst []runtimeNode) []runtimeNode {
	dst = append(dst, n)
	return n.condition.collectDescendants(dst)
}
