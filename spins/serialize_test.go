// SPDX-License-Identifier: MIT

package spins_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/spins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOperator(t *testing.T) *spins.PauliOperator {
	t.Helper()
	op := spins.NewPauliOperator(spins.WithNumberSpins(3))
	require.NoError(t, op.AddTerm(pauli(t, "0X2Z"), calc.NewComplex(0.5, -1)))
	require.NoError(t, op.AddTerm(pauli(t, "1Y"), calc.FromFloat(calc.Symbol("theta"))))

	return op
}

// TestOperatorCodecRoundTrip checks both structured formats.
func TestOperatorCodecRoundTrip(t *testing.T) {
	t.Parallel()
	op := sampleOperator(t)
	for _, format := range []core.Format{core.FormatJSON, core.FormatYAML} {
		codec := core.NewCodec(core.WithFormat(format))
		data, err := op.Encode(codec)
		require.NoError(t, err, format)
		back, err := spins.DecodePauliOperator(codec, data)
		require.NoError(t, err, "%s:\n%s", format, data)
		assert.True(t, back.Equal(op), format)
		assert.Equal(t, 3, back.NumberSpins())
	}
}

// TestOperatorJSONShape pins the wire form of a record.
func TestOperatorJSONShape(t *testing.T) {
	t.Parallel()
	op := spins.NewPauliOperator()
	require.NoError(t, op.AddTerm(pauli(t, "0X"), calc.NewComplex(1, 0)))
	data, err := json.Marshal(op)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[["0X",1,0]],"serialisation_meta":{"type_name":"PauliOperator","min_version":[2,0,0],"version":"2.0.0"}}`, string(data))

	var back spins.PauliOperator
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(op))
}

// TestDecodeRejectsIncompatibleData checks type and version stamps.
func TestDecodeRejectsIncompatibleData(t *testing.T) {
	t.Parallel()
	data, err := sampleOperator(t).Encode(core.NewCodec())
	require.NoError(t, err)

	_, err = spins.DecodePauliHamiltonian(core.NewCodec(), data)
	assert.ErrorIs(t, err, core.ErrTypeMismatch)

	old := core.NewCodec(core.WithLibraryVersion(core.Version{Major: 1, Minor: 4}))
	_, err = spins.DecodePauliOperator(old, data)
	assert.ErrorIs(t, err, core.ErrVersionMismatch)
	var verr *core.VersionError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 2, verr.DataMajor)
}

// TestNoiseAndOpenSystemCodec round-trips the pair-keyed records.
func TestNoiseAndOpenSystemCodec(t *testing.T) {
	t.Parallel()
	noise := spins.NewPauliLindbladNoiseOperator()
	require.NoError(t, noise.AddTerm(core.NewPair(deco(t, "0X"), deco(t, "1iY")), calc.NewComplex(0.1, 0)))
	h := spins.NewPauliHamiltonian()
	require.NoError(t, h.AddTerm(pauli(t, "0Z1Z"), calc.NewFloat(2)))
	sys, err := spins.GroupPauliLindbladOpenSystem(h, noise)
	require.NoError(t, err)

	codec := core.NewCodec(core.WithFormat(core.FormatYAML))
	data, err := noise.Encode(codec)
	require.NoError(t, err)
	noiseBack, err := spins.DecodePauliLindbladNoiseOperator(codec, data)
	require.NoError(t, err)
	assert.True(t, noiseBack.Equal(noise))

	data, err = json.Marshal(sys)
	require.NoError(t, err)
	var sysBack spins.PauliLindbladOpenSystem
	require.NoError(t, json.Unmarshal(data, &sysBack))
	assert.True(t, sysBack.Equal(sys))
}

// TestDecodeRejectsMalformedCapacity checks that a bad capacity is a decoding
// error for every spin container, not a panic.
func TestDecodeRejectsMalformedCapacity(t *testing.T) {
	t.Parallel()
	record := func(typeName, capacity string) []byte {
		return []byte(`{"items":[],"capacity":` + capacity +
			`,"serialisation_meta":{"type_name":"` + typeName + `","min_version":[2,0,0],"version":"2.0.0"}}`)
	}
	decoders := map[string]func([]byte) error{
		"PauliOperator": func(d []byte) error {
			_, err := spins.DecodePauliOperator(core.NewCodec(), d)
			return err
		},
		"DecoherenceOperator": func(d []byte) error {
			_, err := spins.DecodeDecoherenceOperator(core.NewCodec(), d)
			return err
		},
		"PlusMinusOperator": func(d []byte) error {
			_, err := spins.DecodePlusMinusOperator(core.NewCodec(), d)
			return err
		},
		"PauliHamiltonian": func(d []byte) error {
			_, err := spins.DecodePauliHamiltonian(core.NewCodec(), d)
			return err
		},
		"PauliLindbladNoiseOperator": func(d []byte) error {
			_, err := spins.DecodePauliLindbladNoiseOperator(core.NewCodec(), d)
			return err
		},
		"PlusMinusLindbladNoiseOperator": func(d []byte) error {
			_, err := spins.DecodePlusMinusLindbladNoiseOperator(core.NewCodec(), d)
			return err
		},
	}
	for typeName, decode := range decoders {
		for _, capacity := range []string{"-1", "-7", `"two"`, "1.5"} {
			data := record(typeName, capacity)
			require.NotPanics(t, func() {
				assert.ErrorIs(t, decode(data), core.ErrGeneric, "%s capacity %s", typeName, capacity)
			})
		}
	}

	open := []byte(`{"system":{"items":[],"capacity":2,"serialisation_meta":{"type_name":"PauliHamiltonian","min_version":[2,0,0],"version":"2.0.0"}},` +
		`"noise":{"items":[],"capacity":-2,"serialisation_meta":{"type_name":"PauliLindbladNoiseOperator","min_version":[2,0,0],"version":"2.0.0"}},` +
		`"serialisation_meta":{"type_name":"PauliLindbladOpenSystem","min_version":[2,0,0],"version":"2.0.0"}}`)
	require.NotPanics(t, func() {
		_, err := spins.DecodePauliLindbladOpenSystem(core.NewCodec(), open)
		assert.ErrorIs(t, err, core.ErrGeneric)
	})

	yamlData := []byte("items: []\ncapacity: -1\nserialisation_meta:\n  type_name: PauliOperator\n  min_version: [2, 0, 0]\n  version: 2.0.0\n")
	require.NotPanics(t, func() {
		_, err := spins.DecodePauliOperator(core.NewCodec(core.WithFormat(core.FormatYAML)), yamlData)
		assert.ErrorIs(t, err, core.ErrGeneric)
	})
}
