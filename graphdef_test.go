// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

import "testing"

func TestNewGraphDefRejectsEmptyNodeList(t *testing.T) {
	if _, err := NewGraphDef("g", 1, nil); err == nil {
		t.Fatal("expected an error for an empty node list")
	}
}

func TestNewGraphDefRejectsDanglingRoot(t *testing.T) {
	defs := []NodeDef{{ID: 1, Variant: VariantClip, ClipID: "a"}}
	if _, err := NewGraphDef("g", 2, defs); err == nil {
		t.Fatal("expected an error for a root id that does not resolve")
	}
}

func TestNewGraphDefRejectsNonPoseNonMachineRoot(t *testing.T) {
	defs := []NodeDef{{ID: 1, Variant: VariantParam, ParamID: "p"}}
	if _, err := NewGraphDef("g", 1, defs); err == nil {
		t.Fatal("expected an error for a root that is neither a pose node nor a state machine")
	}
}

func TestNewGraphDefRejectsEmptyBlendList(t *testing.T) {
	defs := []NodeDef{
		{ID: 1, Variant: VariantParam, ParamID: "f"},
		{ID: 2, Variant: VariantBlend, FactorProvider: 1},
	}
	if _, err := NewGraphDef("g", 2, defs); err == nil {
		t.Fatal("expected an error for a blend node with no children")
	}
}

func TestNewGraphDefRejectsUnsortedBlendList(t *testing.T) {
	defs := []NodeDef{
		{ID: 1, Variant: VariantClip, ClipID: "a"},
		{ID: 2, Variant: VariantClip, ClipID: "b"},
		{ID: 3, Variant: VariantParam, ParamID: "f"},
		{ID: 4, Variant: VariantBlend, FactorProvider: 3, BlendChildren: []BlendChildDef{{Node: 1, Factor: 1}, {Node: 2, Factor: 0}}},
	}
	if _, err := NewGraphDef("g", 4, defs); err == nil {
		t.Fatal("expected an error for a blend list not sorted ascending by factor")
	}
}

func TestNewGraphDefRejectsSpeedNodeMissingMultiplier(t *testing.T) {
	defs := []NodeDef{
		{ID: 1, Variant: VariantClip, ClipID: "a"},
		{ID: 2, Variant: VariantSpeed, SpeedChild: 1, SpeedProvider: 99},
	}
	if _, err := NewGraphDef("g", 2, defs); err == nil {
		t.Fatal("expected an error for a speed node whose multiplier child does not resolve")
	}
}

func TestNewGraphDefRejectsEmptyStateMachine(t *testing.T) {
	defs := []NodeDef{{ID: 1, Variant: VariantStateMachine}}
	if _, err := NewGraphDef("g", 1, defs); err == nil {
		t.Fatal("expected an error for a state machine with no states")
	}
}

func TestNewGraphDefRejectsTransitionWithDanglingDestination(t *testing.T) {
	defs := []NodeDef{
		{ID: 1, Variant: VariantClip, ClipID: "a"},
		{ID: 2, Variant: VariantState, StateName: "A", StatePose: 1, StateTransitions: []NodeID{3}},
		{ID: 3, Variant: VariantStateTransition, TransitionDestination: 99},
		{ID: 4, Variant: VariantStateMachine, MachineStates: []NodeID{2}},
	}
	if _, err := NewGraphDef("g", 4, defs); err == nil {
		t.Fatal("expected an error for a transition whose destination is not a state")
	}
}

func TestNewGraphDefAcceptsValidSingleClipGraph(t *testing.T) {
	defs := []NodeDef{{ID: 1, Variant: VariantClip, ClipID: "a"}}
	if _, err := NewGraphDef("g", 1, defs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
