// SPDX-License-Identifier: MIT

// Package matrix: row-by-row accumulation of sparse matrices.
//
// A Builder visits rows in increasing order. For each row the caller adds
// contributions into a Row accumulator (column -> value); once the row is
// complete the builder drops pruned entries and appends the rest, sorted by
// column, to the COO output. Rows never interact, so the accumulator is
// reset between rows and memory stays O(nnz per row) beyond the output.
package matrix

import (
	"sort"

	"go.uber.org/zap"
)

// Row accumulates the entries of one matrix row.
type Row map[int]complex128

// Add accumulates v into column col.
func (r Row) Add(col int, v complex128) { r[col] += v }

// Builder assembles COO matrices row by row.
type Builder struct {
	opts Options
}

// NewBuilder returns a builder configured by opts.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{opts: gatherOptions(opts...)}
}

// Build calls fill for each row in [0, rows) and emits the accumulated
// entries. Entries with |v| <= eps are pruned.
// Complexity: O(rows · cost(fill) + nnz·log(nnz per row)).
func (b *Builder) Build(rows int, fill func(row int, acc Row)) COO {
	var (
		out    COO
		pruned int
		cols   []int
	)
	acc := make(Row)
	for row := 0; row < rows; row++ {
		fill(row, acc)
		cols = cols[:0]
		for col, v := range acc {
			if b.keep(v) {
				cols = append(cols, col)
			} else {
				pruned++
			}
		}
		sort.Ints(cols)
		for _, col := range cols {
			out.Rows = append(out.Rows, row)
			out.Cols = append(out.Cols, col)
			out.Values = append(out.Values, acc[col])
		}
		clear(acc)
	}
	b.opts.logger.Debug("built sparse matrix",
		zap.Int("rows", rows), zap.Int("entries", out.Len()), zap.Int("pruned", pruned))

	return out
}

// keep applies the pruning policy.
func (b *Builder) keep(v complex128) bool {
	if b.opts.eps == 0 {
		return v != 0
	}

	return real(v)*real(v)+imag(v)*imag(v) > b.opts.eps*b.opts.eps
}
