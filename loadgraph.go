// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

// loadgraph.go parses a graph definition from yaml bytes supplied by the
// caller (no file I/O happens here). Graph definitions are authored as
// yaml and converted to the typed NodeDef/GraphDef
// structures the runtime works with, following the same
// string-name-to-typed-constant conversion pattern used for shader
// descriptions.

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

var nodeVariants = map[string]NodeVariant{
	"clip":             VariantClip,
	"param":            VariantParam,
	"param_comparison": VariantParamComparison,
	"and_logic":        VariantAndLogic,
	"random":           VariantRandom,
	"speed":            VariantSpeed,
	"blend":            VariantBlend,
	"sum":              VariantSum,
	"state":            VariantState,
	"state_transition": VariantStateTransition,
	"state_machine":    VariantStateMachine,
	"state_condition":  VariantStateCondition,
}

var comparisonOps = map[string]comparisonOp{
	"eq":  opEqual,
	"neq": opNotEqual,
}

// yamlBlendChild mirrors BlendChildDef with yaml field names.
type yamlBlendChild struct {
	Node   NodeID  `yaml:"node"`
	Factor float64 `yaml:"factor"`
}

// yamlValue mirrors Value: exactly one of the three fields is set,
// selected by Kind.
type yamlValue struct {
	Kind  string  `yaml:"kind"`
	Int   int     `yaml:"int"`
	Float float64 `yaml:"float"`
	Bool  bool    `yaml:"bool"`
}

func (v yamlValue) toValue() (Value, error) {
	switch v.Kind {
	case "", "float":
		return FloatValue(v.Float), nil
	case "int":
		return IntValue(v.Int), nil
	case "bool":
		return BoolValue(v.Bool), nil
	}
	return Value{}, fmt.Errorf("unsupported value kind %q", v.Kind)
}

// yamlNodeDef mirrors NodeDef with yaml field names and string
// variant/op names in place of the typed constants.
type yamlNodeDef struct {
	ID      NodeID `yaml:"id"`
	Variant string `yaml:"variant"`

	ClipID string `yaml:"clip_id"`

	ParamID      string    `yaml:"param_id"`
	CompareOp    string    `yaml:"compare_op"`
	CompareValue yamlValue `yaml:"compare_value"`

	Children []NodeID `yaml:"children"`

	SpeedChild    NodeID `yaml:"speed_child"`
	SpeedProvider NodeID `yaml:"speed_provider"`

	BlendChildren  []yamlBlendChild `yaml:"blend_children"`
	FactorProvider NodeID           `yaml:"factor_provider"`

	SumA NodeID `yaml:"sum_a"`
	SumB NodeID `yaml:"sum_b"`

	StateName       string   `yaml:"state_name"`
	StatePose       NodeID   `yaml:"state_pose"`
	StateTransitions []NodeID `yaml:"state_transitions"`

	TransitionCondition   NodeID  `yaml:"transition_condition"`
	TransitionDestination NodeID  `yaml:"transition_destination"`
	TransitionDuration    float64 `yaml:"transition_duration"`
	TransitionReversible  bool    `yaml:"transition_reversible"`

	MachineStates []NodeID `yaml:"machine_states"`

	ConditionPhase float64 `yaml:"condition_phase"`
}

type yamlGraphDef struct {
	Name  string        `yaml:"name"`
	Root  NodeID        `yaml:"root"`
	Nodes []yamlNodeDef `yaml:"nodes"`
}

// LoadGraphDef parses a yaml-authored graph definition and validates it
// into a *GraphDef. See NewGraphDef for the validation performed.
// Failures are returned as *ConstructionError.
func LoadGraphDef(data []byte) (*GraphDef, error) {
	var cfg yamlGraphDef
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, constructionErr("LoadGraphDef", fmt.Errorf("yaml %w", err))
	}

	defs := make([]NodeDef, 0, len(cfg.Nodes))
	for _, yn := range cfg.Nodes {
		variant, ok := nodeVariants[yn.Variant]
		if !ok {
			return nil, constructionErr("LoadGraphDef", fmt.Errorf("node %d: unsupported variant %q", yn.ID, yn.Variant))
		}
		d := NodeDef{
			ID:                    yn.ID,
			Variant:               variant,
			ClipID:                yn.ClipID,
			ParamID:               yn.ParamID,
			Children:              yn.Children,
			SpeedChild:            yn.SpeedChild,
			SpeedProvider:         yn.SpeedProvider,
			FactorProvider:        yn.FactorProvider,
			SumA:                  yn.SumA,
			SumB:                  yn.SumB,
			StateName:             yn.StateName,
			StatePose:             yn.StatePose,
			StateTransitions:      yn.StateTransitions,
			TransitionCondition:   yn.TransitionCondition,
			TransitionDestination: yn.TransitionDestination,
			TransitionDuration:    yn.TransitionDuration,
			TransitionReversible:  yn.TransitionReversible,
			MachineStates:         yn.MachineStates,
			ConditionPhase:        yn.ConditionPhase,
		}
		if variant == VariantParamComparison {
			op, ok := comparisonOps[yn.CompareOp]
			if !ok {
				return nil, constructionErr("LoadGraphDef", fmt.Errorf("node %d: unsupported compare_op %q", yn.ID, yn.CompareOp))
			}
			d.CompareOp = op
			cmp, err := yn.CompareValue.toValue()
			if err != nil {
				return nil, constructionErr("LoadGraphDef", fmt.Errorf("node %d: %w", yn.ID, err))
			}
			d.CompareValue = cmp
		}
		d.BlendChildren = make([]BlendChildDef, 0, len(yn.BlendChildren))
		for _, bc := range yn.BlendChildren {
			d.BlendChildren = append(d.BlendChildren, BlendChildDef{Node: bc.Node, Factor: bc.Factor})
		}
		defs = append(defs, d)
	}
	return NewGraphDef(cfg.Name, cfg.Root, defs)
}
