// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

import (
	"fmt"
	"math/rand"
)

// NodeVariant enumerates the static, typed node shapes a graph may
// contain. The set is closed: every node in a GraphDef has exactly one
// of these variants and a payload matching it.
type NodeVariant uint8

const (
	VariantClip NodeVariant = iota
	VariantParam
	VariantParamComparison
	VariantAndLogic
	VariantRandom
	VariantSpeed
	VariantBlend
	VariantSum
	VariantState
	VariantStateTransition
	VariantStateMachine
	VariantStateCondition
)

// BlendChildDef pairs a pose-node id with the factor at which it is
// selected by a blend node. A GraphDef's blend children must be sorted
// by Factor ascending.
type BlendChildDef struct {
	Node   NodeID
	Factor float64
}

// NodeDef is the static, immutable definition of one graph node. Only
// the fields relevant to Variant are meaningful; see the data model's
// variant/payload table.
type NodeDef struct {
	ID      NodeID
	Variant NodeVariant

	ClipID string // clip

	ParamID      string       // param, param_comparison
	CompareOp    comparisonOp // param_comparison
	CompareValue Value        // param_comparison

	Children []NodeID // and_logic, random (child pose-node ids)

	SpeedChild    NodeID // speed: child pose-node id
	SpeedProvider NodeID // speed: child node id producing a float multiplier

	BlendChildren  []BlendChildDef // blend, sorted by Factor ascending
	FactorProvider NodeID          // blend: factor-provider node id

	SumA, SumB NodeID // sum

	StateName        string   // state
	StatePose         NodeID   // state: pose-node id
	StateTransitions  []NodeID // state: outgoing transition-node ids

	TransitionCondition   NodeID         // state_transition
	TransitionDestination NodeID         // state_transition: destination state node id
	TransitionKind        transitionKind // state_transition
	TransitionDuration    float64        // state_transition, seconds
	TransitionReversible  bool           // state_transition

	MachineStates []NodeID // state_machine: first is initial

	ConditionPhase float64 // state_condition: required phase
}

// GraphDef is an immutable, validated directed graph of typed nodes
// with a designated root. The root is either a single pose node or a
// state-machine node. GraphDef instances are built once and shared
// read-only across every player bound to them.
type GraphDef struct {
	name  string
	tag   aid
	root  NodeID
	nodes map[NodeID]NodeDef
}

// NewGraphDef validates and builds a GraphDef from the given nodes and
// root id. Validation failures are construction-time errors (§7),
// returned as *ConstructionError: callers should surface them to the
// host rather than retry.
func NewGraphDef(name string, root NodeID, defs []NodeDef) (*GraphDef, error) {
	if len(defs) == 0 {
		return nil, constructionErr("NewGraphDef", fmt.Errorf("graph %s: empty node list", name))
	}
	nodes := make(map[NodeID]NodeDef, len(defs))
	for _, d := range defs {
		nodes[d.ID] = d
	}
	rootDef, ok := nodes[root]
	if !ok {
		return nil, constructionErr("NewGraphDef", fmt.Errorf("graph %s: root node %d does not resolve", name, root))
	}
	if rootDef.Variant != VariantStateMachine {
		if !isPoseVariant(rootDef.Variant) {
			return nil, constructionErr("NewGraphDef", fmt.Errorf("graph %s: root node %d is neither a pose node nor a state machine", name, root))
		}
	}
	for id, d := range nodes {
		if err := validateNode(name, id, d, nodes); err != nil {
			return nil, constructionErr("NewGraphDef", err)
		}
	}
	return &GraphDef{name: name, tag: assetID(grf, name), root: root, nodes: nodes}, nil
}

func (g *GraphDef) aid() aid      { return g.tag }
func (g *GraphDef) label() string { return g.name }

func isPoseVariant(v NodeVariant) bool {
	switch v {
	case VariantClip, VariantRandom, VariantSpeed, VariantBlend, VariantSum, VariantState:
		return true
	}
	return false
}

func validateNode(graphName string, id NodeID, d NodeDef, nodes map[NodeID]NodeDef) error {
	switch d.Variant {
	case VariantBlend:
		if len(d.BlendChildren) == 0 {
			return fmt.Errorf("graph %s: blend node %d has an empty pose list", graphName, id)
		}
		last := d.BlendChildren[0].Factor
		for _, c := range d.BlendChildren[1:] {
			if c.Factor < last {
				return fmt.Errorf("graph %s: blend node %d pose list is not sorted by factor ascending", graphName, id)
			}
			last = c.Factor
		}
	case VariantSpeed:
		if _, ok := nodes[d.SpeedProvider]; !ok {
			return fmt.Errorf("graph %s: speed node %d missing its multiplier child", graphName, id)
		}
	case VariantStateMachine:
		if len(d.MachineStates) == 0 {
			return fmt.Errorf("graph %s: state machine %d has no states", graphName, id)
		}
	case VariantStateTransition:
		dst, ok := nodes[d.TransitionDestination]
		if !ok || dst.Variant != VariantState {
			return fmt.Errorf("graph %s: transition %d has a dangling destination", graphName, id)
		}
	}
	return nil
}

// randSource lets test code and hosts supply a seeded random.Rand for
// deterministic random-node selection; production use may pass nil to
// fall back to the package-level default source.
type randSource = *rand.Rand
