// SPDX-License-Identifier: MIT

package calc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes numbers as JSON numbers and symbols as JSON strings.
func (f Float) MarshalJSON() ([]byte, error) {
	if f.symbolic {
		return json.Marshal(f.sym)
	}

	return json.Marshal(f.num)
}

// UnmarshalJSON accepts a JSON number or string.
func (f *Float) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrBadEncoding, err)
		}
		*f = Symbol(s)

		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadEncoding, err)
	}
	*f = NewFloat(v)

	return nil
}

// MarshalYAML encodes numbers as YAML floats and symbols as YAML strings.
func (f Float) MarshalYAML() (any, error) {
	if f.symbolic {
		return f.sym, nil
	}

	return f.num, nil
}

// UnmarshalYAML accepts a YAML scalar; quoted or non-numeric scalars become symbols.
func (f *Float) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: yaml node kind %d", ErrBadEncoding, node.Kind)
	}
	if node.ShortTag() == "!!str" {
		*f = Symbol(node.Value)

		return nil
	}
	var v float64
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadEncoding, err)
	}
	*f = NewFloat(v)

	return nil
}

// MarshalJSON encodes z as [re, im].
func (z Complex) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]Float{z.re, z.im})
}

// UnmarshalJSON decodes [re, im].
func (z *Complex) UnmarshalJSON(data []byte) error {
	var parts [2]Float
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("%w: %v", ErrBadEncoding, err)
	}
	*z = Complex{re: parts[0], im: parts[1]}

	return nil
}

// MarshalYAML encodes z as [re, im].
func (z Complex) MarshalYAML() (any, error) {
	return []Float{z.re, z.im}, nil
}

// UnmarshalYAML decodes [re, im].
func (z *Complex) UnmarshalYAML(node *yaml.Node) error {
	var parts []Float
	if err := node.Decode(&parts); err != nil {
		return fmt.Errorf("%w: %v", ErrBadEncoding, err)
	}
	if len(parts) != 2 {
		return fmt.Errorf("%w: expected [re, im], got %d values", ErrBadEncoding, len(parts))
	}
	*z = Complex{re: parts[0], im: parts[1]}

	return nil
}
