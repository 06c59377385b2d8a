// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

// clipNode samples a single Clip. It is the simplest pose-producing
// node: update_duration reports the clip's duration, compute advances
// phase and schedules a sample_clip job at phase*duration.
type clipNode struct {
	phaseState
	lastSeenCounter
	sampler Sampler
	dur     float64
}

func newClipNode(clip Clip) *clipNode {
	return &clipNode{sampler: clip.CreateSampler(), dur: clip.Duration()}
}

func (n *clipNode) updateDuration(ctx *evalContext) {
	// dur is fixed at construction: a clip's duration never changes.
}

func (n *clipNode) duration() float64 { return n.dur }

func (n *clipNode) onStart() { n.p = 0 }

func (n *clipNode) getNextPhaseUnwrapped(ctx *evalContext) float64 {
	return n.nextPhaseUnwrapped(ctx, n.dur)
}

func (n *clipNode) compute(ctx *evalContext) result {
	if n.checkStart(ctx.playCounter) {
		n.onStart()
	}
	n.advance(n.getNextPhaseUnwrapped(ctx))
	idx := ctx.queue.enqueueSampleClip(n.sampler, n.p*n.dur)
	return jobResult(idx)
}

func (n *clipNode) collectDescendants(dst []runtimeNode) []runtimeNode {
	return append(dst, n)
}
