// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/quantops/bosons"
	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/fermions"
	"github.com/katalvlaran/quantops/jordanwigner"
	"github.com/katalvlaran/quantops/spins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// run executes the root command with args and stdin, returning stdout.
func run(t *testing.T, stdin []byte, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetArgs(args)
	root.SetIn(bytes.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()

	return out.String(), err
}

func pauliX(t *testing.T) *spins.PauliOperator {
	t.Helper()
	p, err := spins.ParsePauliProduct("0X")
	require.NoError(t, err)
	op := spins.NewPauliOperator()
	require.NoError(t, op.AddTerm(p, calc.NewComplex(1, 0)))

	return op
}

func TestParse(t *testing.T) {
	out, err := run(t, nil, "parse", "fermion", "c0c1a2")
	require.NoError(t, err)
	assert.Equal(t, "product: c0c1a2\nconjugate: c2a0a1\nprefactor: -1\n", out)

	out, err = run(t, nil, "parse", "pauli", "1Z0X")
	require.NoError(t, err)
	assert.Equal(t, "product: 0X1Z\nconjugate: 0X1Z\nprefactor: 1\n", out)

	_, err = run(t, nil, "parse", "qudit", "0X")
	require.ErrorContains(t, err, "unknown product kind")

	_, err = run(t, nil, "parse", "pauli", "0Q")
	require.Error(t, err)
}

func TestConvertJSONToYAML(t *testing.T) {
	op := pauliX(t)
	data, err := op.Encode(core.NewCodec())
	require.NoError(t, err)

	out, err := run(t, data, "convert", "--from", "json", "--to", "yaml")
	require.NoError(t, err)

	back, err := spins.DecodePauliOperator(core.NewCodec(core.WithFormat(core.FormatYAML)), []byte(out))
	require.NoError(t, err)
	assert.True(t, back.Equal(op), back.String())
}

func TestConvertReadsFile(t *testing.T) {
	h := fermions.NewFermionHamiltonian(core.WithNumberModes(2))
	k, err := fermions.ParseHermitianFermionProduct("c0a1")
	require.NoError(t, err)
	require.NoError(t, h.AddTerm(k, calc.NewComplex(1, -1)))
	data, err := h.Encode(core.NewCodec(core.WithFormat(core.FormatYAML)))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "h.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	out, err := run(t, nil, "convert", "--from", "yaml", "--to", "json", path)
	require.NoError(t, err)
	back, err := fermions.DecodeFermionHamiltonian(core.NewCodec(), []byte(out))
	require.NoError(t, err)
	assert.True(t, back.Equal(h))
}

func TestConvertRejectsUnknownType(t *testing.T) {
	_, err := run(t, []byte(`{"serialisation_meta":{"type_name":"Qudit","min_version":[1,0,0],"version":"2.0.0"}}`), "convert")
	require.ErrorIs(t, err, core.ErrGeneric)

	_, err = run(t, []byte(`{}`), "convert", "--from", "toml")
	require.ErrorIs(t, err, core.ErrGeneric)
}

func TestCOO(t *testing.T) {
	data, err := pauliX(t).Encode(core.NewCodec())
	require.NoError(t, err)

	out, err := run(t, data, "coo", "--qubits", "1")
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"0 1 1 0", "1 0 1 0"}, strings.Split(strings.TrimSpace(out), "\n")); diff != "" {
		t.Errorf("coo mismatch (-want +got):\n%s", diff)
	}

	_, err = run(t, data, "coo", "--qubits", "1", "--superoperator")
	require.ErrorContains(t, err, "no superoperator form")

	_, err = run(t, data, "coo", "--qubits", "1", "--epsilon=-1")
	require.ErrorContains(t, err, "--epsilon")

	_, err = run(t, data, "coo")
	require.Error(t, err)
}

func TestJordanWigner(t *testing.T) {
	op := fermions.NewFermionOperator()
	p, err := fermions.ParseFermionProduct("c0")
	require.NoError(t, err)
	require.NoError(t, op.AddTerm(p, calc.NewComplex(0, 1)))
	data, err := op.Encode(core.NewCodec())
	require.NoError(t, err)

	out, err := run(t, data, "jw")
	require.NoError(t, err)
	spin, err := spins.DecodePauliOperator(core.NewCodec(), []byte(out))
	require.NoError(t, err)
	assert.True(t, spin.Equal(jordanwigner.FermionOperatorToSpin(op)), spin.String())

	// Back to the fermion side through the same command.
	out, err = run(t, []byte(out), "jw", "--to", "yaml")
	require.NoError(t, err)
	back, err := fermions.DecodeFermionOperator(core.NewCodec(core.WithFormat(core.FormatYAML)), []byte(out))
	require.NoError(t, err)
	assert.True(t, back.Equal(op), back.String())
}

func TestJordanWignerRejectsBosons(t *testing.T) {
	data, err := bosons.NewBosonOperator().Encode(core.NewCodec())
	require.NoError(t, err)
	_, err = run(t, data, "jw", "--verbose")
	require.ErrorContains(t, err, "no Jordan-Wigner image")

	mapped, err := jordanWigner(pauliX(t).ToDecoherence())
	require.NoError(t, err)
	assert.IsType(t, &fermions.FermionOperator{}, mapped)
}

// syncer is a log sink whose Sync fails with err.
type syncer struct {
	bytes.Buffer
	err error
}

func (s *syncer) Sync() error { return s.err }

func TestSyncLogger(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "ok"},
		{name: "einval", err: &os.PathError{Op: "sync", Path: "/dev/stderr", Err: syscall.EINVAL}},
		{name: "enotty", err: fmt.Errorf("sync: %w", syscall.ENOTTY)},
		{name: "disk", err: errors.New("disk full"), wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sink := &syncer{err: tc.err}
			zc := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), sink, zapcore.DebugLevel)
			err := syncLogger(zap.New(zc))
			if tc.wantErr {
				assert.ErrorContains(t, err, "disk full")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadRejectsNegativeCapacity(t *testing.T) {
	data := []byte(`{"items":[],"capacity":-1,"serialisation_meta":{"type_name":"PauliOperator","min_version":[2,0,0],"version":"2.0.0"}}`)
	require.NotPanics(t, func() {
		_, err := run(t, data, "convert")
		assert.ErrorIs(t, err, core.ErrGeneric)
	})
}
