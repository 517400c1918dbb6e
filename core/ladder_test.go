// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLadder(t *testing.T, s string) core.Ladder {
	t.Helper()
	l, err := core.ParseLadder(s)
	require.NoError(t, err, s)

	return l
}

func TestParseLadder(t *testing.T) {
	t.Parallel()
	l := mustLadder(t, "c0c1a2")
	assert.Equal(t, []int{0, 1}, l.Creators)
	assert.Equal(t, []int{2}, l.Annihilators)
	assert.Equal(t, "c0c1a2", l.String())
	assert.Equal(t, core.LadderShape{Creators: 2, Annihilators: 1}, l.Shape())
	assert.Equal(t, 3, l.Extent())

	// Indices keep their written order; sorting is up to the statistics.
	assert.Equal(t, []int{1, 0}, mustLadder(t, "c1c0").Creators)

	for _, s := range []string{"", "I"} {
		empty := mustLadder(t, s)
		assert.Equal(t, 0, empty.Len())
		assert.Equal(t, "I", empty.String())
		assert.Equal(t, 0, empty.Extent())
	}

	for s, want := range map[string]error{
		"a0c1": core.ErrIndicesNotNormalOrdered,
		"x0":   core.ErrFromStringFailed,
		"c":    core.ErrFromStringFailed,
		"ca1":  core.ErrFromStringFailed,
	} {
		_, err := core.ParseLadder(s)
		assert.ErrorIs(t, err, want, s)
	}
}

func TestLadderConjugationHelpers(t *testing.T) {
	t.Parallel()
	l := mustLadder(t, "c0a1a2")
	assert.Equal(t, "c1c2a0", l.Swapped().String())
	assert.False(t, l.IsNaturalHermitian())
	assert.True(t, mustLadder(t, "c0c3a0a3").IsNaturalHermitian())

	c := l.Clone()
	c.Creators[0] = 5
	assert.Equal(t, 0, l.Creators[0], "clone shares no storage")

	assert.Negative(t, mustLadder(t, "c0").Compare(mustLadder(t, "c0a0")))
	assert.Negative(t, mustLadder(t, "c0a1").Compare(mustLadder(t, "c1a0")))
	assert.Zero(t, l.Compare(mustLadder(t, "c0a1a2")))
}

func TestCheckHermitianOrder(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"I", "c0a1", "a0", "c0a0", "c0a0a1", "c0c1a0a1"} {
		assert.NoError(t, mustLadder(t, s).CheckHermitianOrder(), s)
		assert.False(t, mustLadder(t, s).NeedsConjugation(), s)
	}

	cases := []struct {
		in   string
		want core.MinimumIndexError
	}{
		{"c1a0", core.MinimumIndexError{CreatorMin: 1, AnnihilatorMin: 0}},
		{"c0", core.MinimumIndexError{CreatorMin: 0, AnnihilatorMin: core.NoIndex}},
		{"c0c1a0", core.MinimumIndexError{CreatorMin: 1, AnnihilatorMin: core.NoIndex}},
	}
	for _, tc := range cases {
		err := mustLadder(t, tc.in).CheckHermitianOrder()
		var mErr *core.MinimumIndexError
		require.ErrorAs(t, err, &mErr, tc.in)
		assert.Equal(t, tc.want, *mErr, tc.in)
		assert.ErrorIs(t, err, core.ErrCreatorsAnnihilatorsMinimumIndex)
		assert.True(t, mustLadder(t, tc.in).NeedsConjugation(), tc.in)
	}
}

func TestLadderRemap(t *testing.T) {
	t.Parallel()
	got, err := mustLadder(t, "c0a1").Remap(map[int]int{0: 1, 1: 0})
	require.NoError(t, err)
	assert.Equal(t, "c1a0", got.String())

	got, err = mustLadder(t, "c0a0").Remap(map[int]int{0: 3})
	require.NoError(t, err)
	assert.Equal(t, "c3a3", got.String())

	_, err = mustLadder(t, "c0a1").Remap(map[int]int{0: 1})
	assert.ErrorIs(t, err, core.ErrRemappingFailed)

	_, err = mustLadder(t, "c0a1").Remap(map[int]int{1: -1})
	assert.ErrorIs(t, err, core.ErrRemappingFailed)
	assert.ErrorIs(t, err, core.ErrNegativeIndex)
}

func TestLadderCheckNonNegative(t *testing.T) {
	t.Parallel()
	assert.NoError(t, core.Ladder{}.CheckNonNegative())
	assert.NoError(t, mustLadder(t, "c0c2a1").CheckNonNegative())
	assert.ErrorIs(t, core.Ladder{Creators: []int{0, -1}}.CheckNonNegative(), core.ErrNegativeIndex)
	assert.ErrorIs(t, core.Ladder{Annihilators: []int{-3}}.CheckNonNegative(), core.ErrNegativeIndex)
}

func TestNormalOrder(t *testing.T) {
	t.Parallel()
	type branch struct {
		Word   string
		Factor float64
	}
	render := func(terms []core.LadderTerm) []branch {
		out := make([]branch, len(terms))
		for i, term := range terms {
			out[i] = branch{Word: term.Ladder.String(), Factor: term.Factor}
		}

		return out
	}
	a0, c0, c1 := mustLadder(t, "a0"), mustLadder(t, "c0"), mustLadder(t, "c1")

	// a·c† = c†a + 1 for bosons, -c†a + 1 for fermions.
	if diff := cmp.Diff([]branch{{"c0a0", 1}, {"I", 1}}, render(core.NormalOrder(a0, c0, 1))); diff != "" {
		t.Errorf("boson (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]branch{{"c0a0", -1}, {"I", 1}}, render(core.NormalOrder(a0, c0, -1))); diff != "" {
		t.Errorf("fermion (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]branch{{"c1a0", -1}}, render(core.NormalOrder(a0, c1, -1))); diff != "" {
		t.Errorf("distinct modes (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]branch{{"c0c1", 1}}, render(core.NormalOrder(c0, c1, -1))); diff != "" {
		t.Errorf("already ordered (-want +got):\n%s", diff)
	}
	assert.Equal(t, "c0c1a0", core.Concat(c0, mustLadder(t, "c1a0")).String())
}

func TestMergeTerms(t *testing.T) {
	t.Parallel()
	terms := []core.Term[label]{
		{Product: "x", Coefficient: calc.NewComplex(1, 0)},
		{Product: "y", Coefficient: calc.NewComplex(0, 2)},
		{Product: "x", Coefficient: calc.NewComplex(-1, 0)},
		{Product: "z", Coefficient: calc.NewComplex(3, 0)},
		{Product: "y", Coefficient: calc.NewComplex(1, 0)},
	}
	got := core.MergeTerms(terms)
	require.Len(t, got, 2)
	assert.Equal(t, label("y"), got[0].Product)
	assert.True(t, got[0].Coefficient.Equal(calc.NewComplex(1, 2)))
	assert.Equal(t, label("z"), got[1].Product)
}
