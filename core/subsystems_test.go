// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/katalvlaran/quantops/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubsystemsCheckFits(t *testing.T) {
	t.Parallel()
	layout := core.Subsystems{Spins: []int{2}, Bosons: []int{core.Unbounded, 1}, Fermions: []int{3}}

	require.NoError(t, layout.CheckFits(core.Subsystems{Spins: []int{2}, Bosons: []int{40, 1}, Fermions: []int{0}}))
	assert.ErrorIs(t, layout.CheckFits(core.Subsystems{Spins: []int{3}, Bosons: []int{0, 0}, Fermions: []int{0}}), core.ErrNumberSpinsExceeded)
	assert.ErrorIs(t, layout.CheckFits(core.Subsystems{Spins: []int{0}, Bosons: []int{0, 2}, Fermions: []int{0}}), core.ErrNumberModesExceeded)
	assert.ErrorIs(t, layout.CheckFits(core.Subsystems{Spins: []int{0}, Bosons: []int{0, 0}, Fermions: []int{4}}), core.ErrNumberModesExceeded)

	err := layout.CheckFits(core.Subsystems{Spins: []int{0}})
	var sErr *core.SubsystemError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, [3]int{1, 2, 1}, sErr.Target)
	assert.Equal(t, [3]int{1, 0, 0}, sErr.Actual)
	assert.ErrorIs(t, err, core.ErrMismatchedNumberSubsystems)
}

func TestSubsystemsExtentsAndString(t *testing.T) {
	t.Parallel()
	layout := core.Subsystems{Spins: []int{core.Unbounded, 4}, Fermions: []int{core.Unbounded}}
	current := core.Subsystems{Spins: []int{3, 1}, Fermions: []int{2}}

	ext := layout.Extents(current)
	assert.Equal(t, []int{3, 4}, ext.Spins)
	assert.Equal(t, []int{2}, ext.Fermions)
	assert.Equal(t, "S[3,4],B[],F[2]", ext.String())
	assert.Equal(t, "S[-1,-1],B[-1],F[]", core.UnboundedSubsystems(2, 1, 0).String())

	merged := current.Max(core.Subsystems{Spins: []int{1, 5}, Fermions: []int{0}})
	assert.Equal(t, []int{3, 5}, merged.Spins)
	assert.Equal(t, []int{2}, merged.Fermions)

	clone := layout.Clone()
	clone.Spins[0] = 7
	assert.Equal(t, core.Unbounded, layout.Spins[0], "Clone shares no storage")
	assert.True(t, layout.Equal(layout.Clone()))
	assert.False(t, layout.Equal(clone))
}

func TestSubsystemOptions(t *testing.T) {
	t.Parallel()
	layout := core.UnboundedSubsystems(1, 1, 0)
	opts := core.GatherOptions(core.WithSubsystems(layout))
	assert.Equal(t, layout, opts.Subsystems())
	assert.True(t, opts.SameShape(core.GatherOptions(opts.Replay()...)))
	assert.False(t, opts.SameShape(core.GatherOptions()))

	assert.Equal(t, "MixedOperator(S[2],B[1],F[])",
		core.SubsystemTitle("MixedOperator", opts, core.Subsystems{Spins: []int{2}, Bosons: []int{1}}))

	require.NoError(t, core.CheckSameSubsystems(opts, core.GatherOptions(core.WithSubsystems(layout))))
	var sErr *core.SubsystemError
	assert.ErrorAs(t, core.CheckSameSubsystems(opts, core.GatherOptions(core.WithSubsystems(core.UnboundedSubsystems(2, 1, 0)))), &sErr)
	capped := core.Subsystems{Spins: []int{3}, Bosons: []int{core.Unbounded}}
	assert.ErrorIs(t, core.CheckSameSubsystems(opts, core.GatherOptions(core.WithSubsystems(capped))), core.ErrMismatchedNumberSubsystems)

	assert.Panics(t, func() { core.WithSubsystems(core.Subsystems{Bosons: []int{-2}}) })
}

func TestSubsystemsCodec(t *testing.T) {
	t.Parallel()
	type layoutRecord struct {
		Subsystems *core.Subsystems       `json:"subsystems,omitempty" yaml:"subsystems,omitempty"`
		Meta       core.SerialisationMeta `json:"serialisation_meta" yaml:"serialisation_meta"`
	}
	layout := core.Subsystems{Spins: []int{2}, Bosons: []int{core.Unbounded}, Fermions: []int{4}}
	for _, f := range []core.Format{core.FormatJSON, core.FormatYAML} {
		c := core.NewCodec(core.WithFormat(f))
		data, err := c.Encode(layoutRecord{Subsystems: &layout, Meta: c.Meta("Layout")})
		require.NoError(t, err, f.String())

		var out layoutRecord
		require.NoError(t, c.Decode(data, "Layout", &out), f.String())
		require.NotNil(t, out.Subsystems)
		assert.True(t, layout.Equal(*out.Subsystems), f.String())
	}
}
