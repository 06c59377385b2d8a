// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

// NodeID is an 8-bit-range identifier unique within one graph.
type NodeID uint8

// phaseRule controls how a pose-producing runtime node advances its
// phase each tick.
type phaseRule uint8

const (
	phaseWrap     phaseRule = 0        // default: wrap past 1.0.
	phaseClamp    phaseRule = 1 << iota // clamp at 1.0 instead of wrapping.
	phaseSync                          // reserved; sync is honored unconditionally, see nextPhaseUnwrapped.
	phaseCopy                          // copy verbatim from another node's phase.
	phaseReversed                      // advance in the negative direction.
)

// result is the tagged return value of compute, modelling the
// reference design's dynamically typed "any" return as a finite,
// statically known variant. Callers that expect a specific shape abort
// (panic) on mismatch, since a mismatch is a graph-construction bug
// that should never reach evaluation.
type result struct {
	kind  resultKind
	job   int
	value Value
	b     bool
}

type resultKind uint8

const (
	resultJobIndex resultKind = iota
	resultValue
	resultBool
	resultUnit
)

func jobResult(idx int) result     { return result{kind: resultJobIndex, job: idx} }
func valueResult(v Value) result   { return result{kind: resultValue, value: v} }
func boolResult(b bool) result     { return result{kind: resultBool, b: b} }

func (r result) mustJob() int {
	if r.kind != resultJobIndex {
		panic("node: compute result is not a job index")
	}
	return r.job
}

func (r result) mustBool() bool {
	if r.kind != resultBool {
		panic("node: compute result is not a bool")
	}
	return r.b
}

func (r result) mustValue() Value {
	if r.kind != resultValue {
		panic("node: compute result is not a parameter value")
	}
	return r.value
}

// evalContext is threaded through update_duration and compute. A
// control node may construct a modified copy (e.g. speed scales dt_s)
// to pass down to a child without mutating the ancestor's context.
type evalContext struct {
	queue       *JobQueue
	params      *ParamStore
	machines    *machineStack
	playCounter uint32
	dtS         float64
	syncEnabled bool
	syncPhase   float64
	hasSync     bool
}

// withSync returns a copy of ctx with synchronisation forced on and
// phase set to syncPhase, used by blend nodes to dictate phase to
// their children.
func (ctx evalContext) withSync(syncPhase float64) evalContext {
	ctx.syncEnabled = true
	ctx.syncPhase = syncPhase
	ctx.hasSync = true
	return ctx
}

// withDt returns a copy of ctx with dtS replaced, used by the speed
// node to scale its child's elapsed time.
func (ctx evalContext) withDt(dtS float64) evalContext {
	ctx.dtS = dtS
	return ctx
}

// runtimeNode is implemented by every per-player mutable node instance.
// The graph definition is immutable; runtimeNode instances carry all
// per-evaluation state (phase, cached duration, blend selection, saved-
// pose slots) and are allocated once for the player's lifetime.
type runtimeNode interface {
	// updateDuration caches this node's duration in seconds for the
	// current play_counter. Pose-producing nodes compute what they
	// will sample; control nodes may be no-ops.
	updateDuration(ctx *evalContext)

	// compute advances phase, enqueues jobs, and returns this node's
	// tagged result.
	compute(ctx *evalContext) result

	// duration returns the value most recently cached by updateDuration.
	duration() float64

	// collectDescendants appends every runtime node reachable from this
	// one (including itself) to dst, used by state machines to locate
	// state-condition subtrees when computing breakpoints.
	collectDescendants(dst []runtimeNode) []runtimeNode
}

// poseNode is implemented by every runtimeNode that advances a phase,
// i.e. every node that can appear where a "pose-node id" is expected in
// the data model.
type poseNode interface {
	runtimeNode
	phase() float64
	setPhase(p float64)
	getNextPhaseUnwrapped(ctx *evalContext) float64
	onStart()
}

// lastSeenCounter tracks the play_counter at which a node last ran, so
// on_start can be detected: a gap of more than one frame means the node
// was skipped last frame.
type lastSeenCounter struct {
	seen    uint32
	started bool
}

// checkStart returns true if the node should invoke on_start this tick
// (first tick ever, or skipped one or more frames), and records counter.
func (c *lastSeenCounter) checkStart(playCounter uint32) bool {
	skipped := !c.started || playCounter-c.seen > 1
	c.seen = playCounter
	c.started = true
	return skipped
}

// phaseState is embedded by pose-producing runtime nodes to provide the
// shared phase-advance machinery described in §4.3.1.
type phaseState struct {
	p     float64
	rules phaseRule
}

func (ps *phaseState) phase() float64     { return ps.p }
func (ps *phaseState) setPhase(p float64) { ps.p = p }

// nextPhaseUnwrapped computes the raw (unwrapped, unclamped) next phase for a
// duration-bearing node, honoring sync before the rate-based advance.
// Every pose node obeys an ancestor's forced sync phase when one is in
// effect; phaseSync is not a per-node opt-in, since sync is what keeps
// e.g. a blend's two children phase-aligned regardless of their own
// individual durations.
func (ps *phaseState) nextPhaseUnwrapped(ctx *evalContext, dur float64) float64 {
	if ctx.syncEnabled && ctx.hasSync {
		return ctx.syncPhase
	}
	delta := 0.0
	if dur > 0 {
		delta = ctx.dtS / dur
	}
	if ps.rules&phaseReversed != 0 {
		return ps.p - delta
	}
	return ps.p + delta
}

// advance applies wrap/clamp to a raw next-phase value and stores it.
func (ps *phaseState) advance(next float64) {
	if ps.rules&phaseClamp != 0 {
		if next > 1 {
			next = 1
		} else if next < 0 {
			next = 0
		}
	} else {
		if next >= 1 {
			next -= float64(int(next))
		} else if next < 0 {
			next = next - float64(int(next)) + 1
			if next >= 1 {
				next -= float64(int(next))
			}
		}
	}
	ps.p = next
}
