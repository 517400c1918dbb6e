// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRejected = errors.New("rejected")

// shortLabels accepts labels no longer than the declared capacity.
func shortLabels(opts core.Options, key label, _ calc.Complex) error {
	return opts.CheckExtent(len(key), errRejected)
}

func newLabelOperator(opts ...core.Option) core.Operator[label, calc.Complex] {
	return core.NewOperator[label, calc.Complex](shortLabels, core.ErrMismatchedNumberModes, opts...)
}

func TestOperatorValidatesBeforeMutation(t *testing.T) {
	t.Parallel()
	op := newLabelOperator(core.WithCapacity(2))
	require.NoError(t, op.AddTerm("ab", calc.NewComplex(1, 0)))
	require.NoError(t, op.AddTerm("ab", calc.NewComplex(0, 1)))
	assert.True(t, op.Get("ab").Equal(calc.NewComplex(1, 1)))

	assert.ErrorIs(t, op.AddTerm("abc", calc.NewComplex(1, 0)), errRejected)
	_, _, err := op.Set("abc", calc.NewComplex(1, 0))
	assert.ErrorIs(t, err, errRejected)
	assert.Equal(t, 1, op.Len(), "failed calls leave the operator unchanged")

	require.NoError(t, op.AddTerm("ab", calc.NewComplex(-1, -1)))
	assert.True(t, op.IsEmpty(), "a zero sum removes the term")

	open := core.NewOperator[label, calc.Complex](nil, core.ErrMismatchedNumberModes)
	require.NoError(t, open.AddTerm("anything", calc.NewComplex(1, 0)))
}

func TestOperatorCombine(t *testing.T) {
	t.Parallel()
	a := newLabelOperator(core.WithCapacity(2))
	require.NoError(t, a.AddTerm("x", calc.NewComplex(1, 0)))
	b := a.Empty()
	require.NoError(t, b.AddTerm("x", calc.NewComplex(2, 0)))
	require.NoError(t, b.AddTerm("y", calc.NewComplex(0, 1)))

	sum, err := a.Combine(b, false)
	require.NoError(t, err)
	assert.True(t, sum.Get("x").Equal(calc.NewComplex(3, 0)))
	assert.Equal(t, 1, a.Len(), "operands are not modified")

	back, err := sum.Combine(b, true)
	require.NoError(t, err)
	assert.True(t, back.Equal(a))

	_, err = a.Combine(newLabelOperator(), false)
	assert.ErrorIs(t, err, core.ErrMismatchedNumberModes)
	assert.False(t, a.Equal(newLabelOperator()), "shapes differ")
}

func TestOperatorCopies(t *testing.T) {
	t.Parallel()
	op := newLabelOperator()
	require.NoError(t, op.AddTerm("x", calc.NewComplex(2, 0)))
	require.NoError(t, op.AddTerm("y", calc.NewComplex(0.1, 0)))

	c := op.Clone()
	require.NoError(t, c.AddTerm("z", calc.NewComplex(1, 0)))
	assert.Equal(t, 2, op.Len())
	assert.Equal(t, []label{"x", "y"}, op.Keys())

	assert.True(t, op.Neg().Get("x").Equal(calc.NewComplex(-2, 0)))
	assert.True(t, op.Scale(calc.NewComplex(0, 1)).Get("x").Equal(calc.NewComplex(0, 2)))
	assert.Equal(t, []label{"x"}, op.Truncate(1).Keys())

	m := core.NewMap[label, calc.Complex](1)
	m.Set("toolong", calc.NewComplex(1, 0))
	_, err := newLabelOperator(core.WithCapacity(3)).WithTerms(m)
	assert.ErrorIs(t, err, errRejected)
}
