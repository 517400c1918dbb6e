// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/quantops/bosons"
	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/fermions"
	"github.com/katalvlaran/quantops/matrix"
	"github.com/katalvlaran/quantops/mixed"
	"github.com/katalvlaran/quantops/spins"
)

// document is any serialisable operator of the library.
type document interface {
	Encode(c core.Codec) ([]byte, error)
	String() string
}

type operatorMatrix interface {
	SparseMatrixCOO(n int, opts ...matrix.Option) (matrix.COO, error)
}

type superoperatorMatrix interface {
	SparseMatrixSuperoperatorCOO(n int, opts ...matrix.Option) (matrix.COO, error)
}

type decoder func(c core.Codec, data []byte) (document, error)

func decodeAs[T document](f func(core.Codec, []byte) (T, error)) decoder {
	return func(c core.Codec, data []byte) (document, error) {
		v, err := f(c, data)
		if err != nil {
			return nil, err
		}

		return v, nil
	}
}

// decoders maps the type name stamped on a document to its reader.
var decoders = map[string]decoder{
	"PauliOperator":                  decodeAs(spins.DecodePauliOperator),
	"DecoherenceOperator":            decodeAs(spins.DecodeDecoherenceOperator),
	"PlusMinusOperator":              decodeAs(spins.DecodePlusMinusOperator),
	"PauliHamiltonian":               decodeAs(spins.DecodePauliHamiltonian),
	"PauliLindbladNoiseOperator":     decodeAs(spins.DecodePauliLindbladNoiseOperator),
	"PlusMinusLindbladNoiseOperator": decodeAs(spins.DecodePlusMinusLindbladNoiseOperator),
	"PauliLindbladOpenSystem":        decodeAs(spins.DecodePauliLindbladOpenSystem),
	"BosonOperator":                  decodeAs(bosons.DecodeBosonOperator),
	"BosonHamiltonian":               decodeAs(bosons.DecodeBosonHamiltonian),
	"BosonLindbladNoiseOperator":     decodeAs(bosons.DecodeBosonLindbladNoiseOperator),
	"BosonLindbladOpenSystem":        decodeAs(bosons.DecodeBosonLindbladOpenSystem),
	"FermionOperator":                decodeAs(fermions.DecodeFermionOperator),
	"FermionHamiltonian":             decodeAs(fermions.DecodeFermionHamiltonian),
	"FermionLindbladNoiseOperator":   decodeAs(fermions.DecodeFermionLindbladNoiseOperator),
	"FermionLindbladOpenSystem":      decodeAs(fermions.DecodeFermionLindbladOpenSystem),
	"MixedOperator":                  decodeAs(mixed.DecodeMixedOperator),
	"MixedHamiltonian":               decodeAs(mixed.DecodeMixedHamiltonian),
	"MixedLindbladNoiseOperator":     decodeAs(mixed.DecodeMixedLindbladNoiseOperator),
	"MixedLindbladOpenSystem":        decodeAs(mixed.DecodeMixedLindbladOpenSystem),
}

// decode picks the reader from the stamped type name.
func decode(c core.Codec, data []byte) (document, error) {
	name, err := c.TypeOf(data)
	if err != nil {
		return nil, err
	}
	dec, ok := decoders[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown document type %q", core.ErrGeneric, name)
	}

	return dec(c, data)
}
