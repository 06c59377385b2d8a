// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

// paramNode reads a single named parameter from the context's
// ParamStore. It has no phase and no duration: it is never itself a
// pose-producing node, only a value source for logic/comparison/speed
// nodes above it.
type paramNode struct {
	id string
}

func newParamNode(id string) *paramNode { return &paramNode{id: id} }

func (n *paramNode) updateDuration(ctx *evalContext) {}
func (n *paramNode) duration() float64               { return 0 }

func (n *paramNode) compute(ctx *evalContext) result {
	v, ok := ctx.params.Get(n.id)
	if !ok {
		v = FloatValue(0)
	}
	return valueResult(v)
}

func (n *paramNode) collectDescendants(dst []runtimeNode) []runtimeNode {
	return append(dst, n)
}

// comparisonOp is the operator a param_comparison node applies.
type comparisonOp uint8

const (
	opEqual comparisonOp = iota
	opNotEqual
)

// paramComparisonNode compares a named parameter's current value
// against a fixed comparand and returns a bool.
type paramComparisonNode struct {
	id  string
	op  comparisonOp
	cmp Value
}

func newParamComparisonNode(id string, op comparisonOp, cmp Value) *paramComparisonNode {
	return &paramComparisonNode{id: id, op: op, cmp: cmp}
}

func (n *paramComparisonNode) updateDuration(ctx *evalContext) {}
func (n *paramComparisonNode) duration() float64               { return 0 }

func (n *paramComparisonNode) compute(ctx *evalContext) result {
	v, ok := ctx.params.Get(n.id)
	eq := ok && v.Eq(n.cmp)
	switch n.op {
	case opNotEqual:
		return boolResult(!eq)
	default:
		return boolResult(eq)
	}
}

func (n *paramComparisonNode) collectDescendants(dst []runtimeNode) []runtimeNode {
	return append(dst, n)
}
