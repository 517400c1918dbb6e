// SPDX-License-Identifier: MIT
//
// File: record.go
// Role: Structured form of operator maps.
// Wire form:
//   - A plain term is the array [key, re, im]; a noise term is
//     [left, right, re, im]. Keys encode as their canonical strings through
//     encoding.TextMarshaler.
//   - Capacity is omitted for unbounded maps; Subsystems only appears for
//     mixed maps.

package core

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/quantops/calc"
)

// Record is the versioned structured form written by a Codec.
type Record[I any] struct {
	Items      []I               `json:"items" yaml:"items"`
	Capacity   *int              `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	Subsystems *Subsystems       `json:"subsystems,omitempty" yaml:"subsystems,omitempty"`
	Meta       SerialisationMeta `json:"serialisation_meta" yaml:"serialisation_meta"`
}

// RecordOf captures op's terms and shape under typeName.
func RecordOf[K Key, V Scalar[V], I any](c Codec, typeName string, op Operator[K, V], item func(K, V) I) Record[I] {
	rec := Record[I]{Items: make([]I, 0, op.Len()), Meta: c.Meta(typeName)}
	for k, v := range op.All() {
		rec.Items = append(rec.Items, item(k, v))
	}
	if n, ok := op.Options().Capacity(); ok {
		rec.Capacity = &n
	}
	if layout := op.Options().Subsystems(); layout.declared() {
		rec.Subsystems = &layout
	}

	return rec
}

// Options returns the shape stored in the record. Negative capacities are
// decoding errors, not panics.
func (r Record[I]) Options() ([]Option, error) {
	var out []Option
	if r.Capacity != nil {
		if *r.Capacity < 0 {
			return nil, fmt.Errorf("%w: capacity %d must be >= 0", ErrGeneric, *r.Capacity)
		}
		out = append(out, WithCapacity(*r.Capacity))
	}
	if r.Subsystems != nil {
		if err := r.Subsystems.validate(); err != nil {
			return nil, err
		}
		out = append(out, WithSubsystems(*r.Subsystems))
	}

	return out, nil
}

// Item is one serialised plain term.
type Item[K any] struct {
	Key    K
	Re, Im calc.Float
}

// NewItem splits v into its components.
func NewItem[K any](key K, v calc.Complex) Item[K] {
	return Item[K]{Key: key, Re: v.Re(), Im: v.Im()}
}

// NewRealItem stores a real coefficient.
func NewRealItem[K any](key K, v calc.Float) Item[K] {
	return Item[K]{Key: key, Re: v, Im: calc.Zero}
}

// Value reassembles the coefficient.
func (i Item[K]) Value() calc.Complex { return calc.FromParts(i.Re, i.Im) }

// MarshalJSON encodes [key, re, im].
func (i Item[K]) MarshalJSON() ([]byte, error) { return json.Marshal([]any{i.Key, i.Re, i.Im}) }

// UnmarshalJSON decodes [key, re, im].
func (i *Item[K]) UnmarshalJSON(data []byte) error {
	return decodeTupleJSON(data, &i.Key, &i.Re, &i.Im)
}

// MarshalYAML encodes [key, re, im].
func (i Item[K]) MarshalYAML() (any, error) { return []any{i.Key, i.Re, i.Im}, nil }

// UnmarshalYAML decodes [key, re, im].
func (i *Item[K]) UnmarshalYAML(node *yaml.Node) error {
	return decodeTupleYAML(node, &i.Key, &i.Re, &i.Im)
}

// PairItem is one serialised noise term.
type PairItem[K Key] struct {
	Left, Right K
	Re, Im      calc.Float
}

// NewPairItem splits v into its components.
func NewPairItem[K Key](p Pair[K], v calc.Complex) PairItem[K] {
	return PairItem[K]{Left: p.Left, Right: p.Right, Re: v.Re(), Im: v.Im()}
}

// Pair returns the noise key.
func (i PairItem[K]) Pair() Pair[K] { return NewPair(i.Left, i.Right) }

// Value reassembles the coefficient.
func (i PairItem[K]) Value() calc.Complex { return calc.FromParts(i.Re, i.Im) }

// MarshalJSON encodes [left, right, re, im].
func (i PairItem[K]) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{i.Left, i.Right, i.Re, i.Im})
}

// UnmarshalJSON decodes [left, right, re, im].
func (i *PairItem[K]) UnmarshalJSON(data []byte) error {
	return decodeTupleJSON(data, &i.Left, &i.Right, &i.Re, &i.Im)
}

// MarshalYAML encodes [left, right, re, im].
func (i PairItem[K]) MarshalYAML() (any, error) { return []any{i.Left, i.Right, i.Re, i.Im}, nil }

// UnmarshalYAML decodes [left, right, re, im].
func (i *PairItem[K]) UnmarshalYAML(node *yaml.Node) error {
	return decodeTupleYAML(node, &i.Left, &i.Right, &i.Re, &i.Im)
}

func decodeTupleJSON(data []byte, fields ...any) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("%w: item: %w", ErrGeneric, err)
	}
	if len(parts) != len(fields) {
		return fmt.Errorf("%w: item has %d fields, want %d", ErrGeneric, len(parts), len(fields))
	}
	for k, f := range fields {
		if err := json.Unmarshal(parts[k], f); err != nil {
			return fmt.Errorf("%w: item field %d: %w", ErrGeneric, k, err)
		}
	}

	return nil
}

func decodeTupleYAML(node *yaml.Node, fields ...any) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: item must be a sequence", ErrGeneric)
	}
	if len(node.Content) != len(fields) {
		return fmt.Errorf("%w: item has %d fields, want %d", ErrGeneric, len(node.Content), len(fields))
	}
	for k, f := range fields {
		if err := node.Content[k].Decode(f); err != nil {
			return fmt.Errorf("%w: item field %d: %w", ErrGeneric, k, err)
		}
	}

	return nil
}
