// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

import (
	"fmt"
	"math/rand"
)

// graphBuilder turns an immutable GraphDef into the arena of mutable
// runtime nodes a GraphPlayer owns. States and transitions carry cyclic
// references to one another (a transition's destination, a state's
// outgoing transitions), so they are built in two passes per node:
// allocate a shell and cache it under its node id first, then recurse
// into its dependents and fill the shell in. Any dependent that cycles
// back finds the shell already cached and reuses the same pointer.
type graphBuilder struct {
	graph   *GraphDef
	project *Project
	cache   map[NodeID]runtimeNode
	rng     *rand.Rand
}

func newGraphBuilder(g *GraphDef, project *Project, rng *rand.Rand) *graphBuilder {
	return &graphBuilder{graph: g, project: project, cache: make(map[NodeID]runtimeNode), rng: rng}
}

func (b *graphBuilder) def(id NodeID) (NodeDef, error) {
	d, ok := b.graph.nodes[id]
	if !ok {
		return NodeDef{}, fmt.Errorf("graph %s: node %d does not resolve", b.graph.name, id)
	}
	return d, nil
}

func (b *graphBuilder) build(id NodeID) (runtimeNode, error) {
	if n, ok := b.cache[id]; ok {
		return n, nil
	}
	d, err := b.def(id)
	if err != nil {
		return nil, err
	}

	switch d.Variant {
	case VariantClip:
		clip, err := b.project.GetClip(d.ClipID)
		if err != nil {
			return nil, err
		}
		n := newClipNode(clip)
		b.cache[id] = n
		return n, nil

	case VariantParam:
		n := newParamNode(d.ParamID)
		b.cache[id] = n
		return n, nil

	case VariantParamComparison:
		n := newParamComparisonNode(d.ParamID, d.CompareOp, d.CompareValue)
		b.cache[id] = n
		return n, nil

	case VariantAndLogic:
		children, err := b.buildAll(d.Children)
		if err != nil {
			return nil, err
		}
		n := newAndLogicNode(children)
		b.cache[id] = n
		return n, nil

	case VariantRandom:
		children, err := b.buildPoseAll(d.Children)
		if err != nil {
			return nil, err
		}
		n := newRandomNode(children, b.rng)
		b.cache[id] = n
		return n, nil

	case VariantSpeed:
		child, err := b.buildPose(d.SpeedChild)
		if err != nil {
			return nil, err
		}
		provider, err := b.build(d.SpeedProvider)
		if err != nil {
			return nil, err
		}
		n := newSpeedNode(child, provider)
		b.cache[id] = n
		return n, nil

	case VariantBlend:
		children := make([]blendChild, 0, len(d.BlendChildren))
		for _, c := range d.BlendChildren {
			cn, err := b.buildPose(c.Node)
			if err != nil {
				return nil, err
			}
			children = append(children, blendChild{node: cn, factor: c.Factor})
		}
		provider, err := b.build(d.FactorProvider)
		if err != nil {
			return nil, err
		}
		n := newBlendNode(children, provider)
		b.cache[id] = n
		return n, nil

	case VariantSum:
		a, err := b.buildPose(d.SumA)
		if err != nil {
			return nil, err
		}
		sb, err := b.buildPose(d.SumB)
		if err != nil {
			return nil, err
		}
		n := newSumNode(a, sb)
		b.cache[id] = n
		return n, nil

	case VariantStateCondition:
		n := newStateConditionNode(d.ConditionPhase)
		b.cache[id] = n
		return n, nil

	case VariantState:
		return b.buildState(id)

	case VariantStateTransition:
		return b.buildTransition(id)

	case VariantStateMachine:
		return b.buildStateMachine(id)
	}
	return nil, fmt.Errorf("graph %s: node %d has unknown variant %d", b.graph.name, id, d.Variant)
}

func (b *graphBuilder) buildPose(id NodeID) (poseNode, error) {
	n, err := b.build(id)
	if err != nil {
		return nil, err
	}
	pn, ok := n.(poseNode)
	if !ok {
		return nil, fmt.Errorf("graph %s: node %d is not a pose node", b.graph.name, id)
	}
	return pn, nil
}

func (b *graphBuilder) buildAll(ids []NodeID) ([]runtimeNode, error) {
	out := make([]runtimeNode, 0, len(ids))
	for _, id := range ids {
		n, err := b.build(id)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func (b *graphBuilder) buildPoseAll(ids []NodeID) ([]poseNode, error) {
	out := make([]poseNode, 0, len(ids))
	for _, id := range ids {
		n, err := b.buildPose(id)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func (b *graphBuilder) buildState(id NodeID) (*stateNode, error) {
	if n, ok := b.cache[id]; ok {
		sn, ok := n.(*stateNode)
		if !ok {
			return nil, fmt.Errorf("graph %s: node %d is not a state", b.graph.name, id)
		}
		return sn, nil
	}
	d, err := b.def(id)
	if err != nil {
		return nil, err
	}
	if d.Variant != VariantState {
		return nil, fmt.Errorf("graph %s: node %d is not a state", b.graph.name, id)
	}

	sn := &stateNode{name: d.StateName}
	b.cache[id] = sn // shell cached before recursing so back edges reuse it.

	pose, err := b.buildPose(d.StatePose)
	if err != nil {
		return nil, err
	}
	transitions := make([]*transitionNode, 0, len(d.StateTransitions))
	for _, tid := range d.StateTransitions {
		tn, err := b.buildTransition(tid)
		if err != nil {
			return nil, err
		}
		transitions = append(transitions, tn)
	}
	sn.pose = pose
	sn.transitions = transitions
	sn.breakpoints = computeBreakpoints(transitions)
	return sn, nil
}

func (b *graphBuilder) buildTransition(id NodeID) (*transitionNode, error) {
	if n, ok := b.cache[id]; ok {
		tn, ok := n.(*transitionNode)
		if !ok {
			return nil, fmt.Errorf("graph %s: node %d is not a transition", b.graph.name, id)
		}
		return tn, nil
	}
	d, err := b.def(id)
	if err != nil {
		return nil, err
	}
	if d.Variant != VariantStateTransition {
		return nil, fmt.Errorf("graph %s: node %d is not a transition", b.graph.name, id)
	}

	tn := &transitionNode{durationS: d.TransitionDuration, reversible: d.TransitionReversible}
	tn.sourceIsFrozenSlot = true
	b.cache[id] = tn // shell cached before recursing so back edges reuse it.

	cond, err := b.build(d.TransitionCondition)
	if err != nil {
		return nil, err
	}
	dest, err := b.buildState(d.TransitionDestination)
	if err != nil {
		return nil, err
	}
	tn.condition = cond
	tn.destination = dest
	return tn, nil
}

func (b *graphBuilder) buildStateMachine(id NodeID) (*stateMachineNode, error) {
	if n, ok := b.cache[id]; ok {
		smn, ok := n.(*stateMachineNode)
		if !ok {
			return nil, fmt.Errorf("graph %s: node %d is not a state machine", b.graph.name, id)
		}
		return smn, nil
	}
	d, err := b.def(id)
	if err != nil {
		return nil, err
	}
	if len(d.MachineStates) == 0 {
		return nil, fmt.Errorf("graph %s: state machine %d has no states", b.graph.name, id)
	}
	states := make([]*stateNode, 0, len(d.MachineStates))
	for _, sid := range d.MachineStates {
		sn, err := b.buildState(sid)
		if err != nil {
			return nil, err
		}
		states = append(states, sn)
	}
	n := newStateMachineNode(states)
	b.cache[id] = n
	return n, nil
}
