// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

// blendChild pairs a pose-producing child with the factor at which it
// is selected. blendChildren must be sorted by factor ascending.
type blendChild struct {
	node   poseNode
	factor float64
}

// blendNode selects one or two children based on a factor produced by
// its factor-provider and blends between them. It always forces
// synchronisation on for its children so differently-timed animations
// (e.g. walk vs run cycles) stay phase-aligned across the blend.
type blendNode struct {
	phaseState
	lastSeenCounter
	children []blendChild
	provider runtimeNode // produces the current float factor.

	lowerIdx, upperIdx int     // selected child indices; upperIdx==lowerIdx means sole selection.
	weight             float64 // weight toward upperIdx.
	lastFactor         float64
	haveSelection      bool
	cachedDur          float64
}

func newBlendNode(children []blendChild, provider runtimeNode) *blendNode {
	n := &blendNode{children: children, provider: provider}
	n.rules = phaseCopy
	return n
}

// selectChildren re-derives the lower/upper selection and weight for
// the given factor, following the ordered-scan rule in §4.3.2.
func (n *blendNode) selectChildren(factor float64) {
	children := n.children
	upper := len(children) - 1
	for i, c := range children {
		if c.factor >= factor {
			upper = i
			break
		}
	}
	switch {
	case upper == 0:
		n.lowerIdx, n.upperIdx, n.weight = 0, 0, 1
	case children[upper].factor-factor < epsilonFactor:
		n.lowerIdx, n.upperIdx, n.weight = upper, upper, 1
	default:
		lower := upper - 1
		span := children[upper].factor - children[lower].factor
		w := 1.0
		if span != 0 {
			w = (factor - children[lower].factor) / span
		}
		n.lowerIdx, n.upperIdx, n.weight = lower, upper, w
	}
}

const epsilonFactor = 1e-6

func (n *blendNode) currentFactor(ctx *evalContext) float64 {
	v, ok := n.provider.compute(ctx).mustValue().Float()
	if !ok {
		panic("blendNode: factor-provider produced no float value")
	}
	if last := n.children; len(last) > 0 {
		if v < last[0].factor {
			v = last[0].factor
		}
		if v > last[len(last)-1].factor {
			v = last[len(last)-1].factor
		}
	}
	return v
}

func (n *blendNode) ensureSelection(ctx *evalContext) {
	factor := n.currentFactor(ctx)
	if !n.haveSelection || factor != n.lastFactor {
		n.selectChildren(factor)
		n.lastFactor = factor
		n.haveSelection = true
	}
}

func (n *blendNode) updateDuration(ctx *evalContext) {
	n.ensureSelection(ctx)
	lower, upper := n.children[n.lowerIdx].node, n.children[n.upperIdx].node
	lower.updateDuration(ctx)
	if n.upperIdx != n.lowerIdx {
		upper.updateDuration(ctx)
		n.cachedDur = lerpDur(lower.duration(), upper.duration(), n.weight)
	} else {
		n.cachedDur = lower.duration()
	}
}

func lerpDur(a, b, w float64) float64 { return (b-a)*w + a }

func (n *blendNode) duration() float64 { return n.cachedDur }

func (n *blendNode) onStart() {}

func (n *blendNode) getNextPhaseUnwrapped(ctx *evalContext) float64 {
	return n.nextPhaseUnwrapped(ctx, n.cachedDur)
}

func (n *blendNode) compute(ctx *evalContext) result {
	if n.checkStart(ctx.playCounter) {
		n.onStart()
	}
	next := n.getNextPhaseUnwrapped(ctx)
	n.advance(next)

	synced := ctx.withSync(next)
	lower, upper := n.children[n.lowerIdx].node, n.children[n.upperIdx].node
	firstIdx := lower.compute(&synced).mustJob()
	if n.upperIdx == n.lowerIdx {
		return jobResult(firstIdx)
	}
	secondIdx := upper.compute(&synced).mustJob()
	blendIdx := ctx.queue.enqueueBlend(firstIdx, secondIdx, n.weight)
	return jobResult(blendIdx)
}

func (n *blendNode) collectDescendants(dst []runtimeNode) []runtimeNode {
	dst = append(dst, n)
	for _, c := range n.children {
		dst = c.node.collectDescendants(dst)
	}
	return n.provider.collectDescendants(dst)
}
