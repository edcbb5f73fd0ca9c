// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"

	"go.yaml.in/yaml/v3"
)

// YAML encodings mirror the JSON ones: an object keyed by dimension tag
// in canonical order, never a bare eight-element array.

// MarshalYAML encodes the vector keyed by dimension tag in canonical order.
func (w WeightVector) MarshalYAML() (interface{}, error) {
	return dimensionMappingNode(w), nil
}

// UnmarshalYAML decodes an object keyed by dimension tag.
func (w *WeightVector) UnmarshalYAML(unmarshal func(interface{}) error) error {
	return unmarshalDimensionMapping(unmarshal, (*[NumDimensions]float64)(w))
}

// MarshalYAML encodes the sub-scores keyed by dimension tag in canonical
// order.
func (s Subscores) MarshalYAML() (interface{}, error) {
	return dimensionMappingNode(s), nil
}

// UnmarshalYAML decodes an object keyed by dimension tag.
func (s *Subscores) UnmarshalYAML(unmarshal func(interface{}) error) error {
	return unmarshalDimensionMapping(unmarshal, (*[NumDimensions]float64)(s))
}

func dimensionMappingNode(vals [NumDimensions]float64) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i, v := range vals {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: dimensionNames[i]},
			&yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("%v", v)},
		)
	}
	return node
}

func unmarshalDimensionMapping(unmarshal func(interface{}) error, out *[NumDimensions]float64) error {
	m := map[string]float64{}
	if err := unmarshal(&m); err != nil {
		return err
	}
	for tag, v := range m {
		d, err := ParseDimension(tag)
		if err != nil {
			return err
		}
		out[d.index()] = v
	}
	return nil
}
