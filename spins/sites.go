// SPDX-License-Identifier: MIT

// Package spins: the sorted site list shared by the three spin products.
//
// A siteList is sorted by index, holds at most one operator per index and
// never stores the identity. Lists are treated as immutable values: every
// mutation returns a fresh slice.
package spins

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/matrix"
)

// siteOp is implemented by Pauli, Decoherence and PlusMinus; the zero value
// is the identity.
type siteOp interface {
	~uint8
	String() string
}

type site[O siteOp] struct {
	index int
	op    O
}

type siteList[O siteOp] []site[O]

// with returns the list with op placed on index (removing index for identity).
func (s siteList[O]) with(index int, op O) siteList[O] {
	pos, found := slices.BinarySearchFunc(s, index, func(e site[O], i int) int { return cmp.Compare(e.index, i) })
	out := slices.Clone(s)
	switch {
	case found && op == 0:
		return slices.Delete(out, pos, pos+1)
	case found:
		out[pos].op = op
		return out
	case op == 0:
		return out
	default:
		return slices.Insert(out, pos, site[O]{index: index, op: op})
	}
}

// set is with for caller-supplied indices. A negative index is a programming
// error and panics with an error wrapping core.ErrNegativeIndex.
func (s siteList[O]) set(index int, op O) siteList[O] {
	if index < 0 {
		panic(fmt.Errorf("spins: Set: %w: site %d", core.ErrNegativeIndex, index))
	}

	return s.with(index, op)
}

func (s siteList[O]) get(index int) O {
	pos, found := slices.BinarySearchFunc(s, index, func(e site[O], i int) int { return cmp.Compare(e.index, i) })
	if !found {
		return 0
	}

	return s[pos].op
}

// extent is the highest index + 1, or 0 when empty.
func (s siteList[O]) extent() int {
	if len(s) == 0 {
		return 0
	}

	return s[len(s)-1].index + 1
}

func (s siteList[O]) indices() []int {
	out := make([]int, len(s))
	for i, e := range s {
		out[i] = e.index
	}

	return out
}

func (s siteList[O]) format() string {
	if len(s) == 0 {
		return "I"
	}
	var b strings.Builder
	for _, e := range s {
		b.WriteString(strconv.Itoa(e.index))
		b.WriteString(e.op.String())
	}

	return b.String()
}

// parseSites reads the "{index}{op}..." grammar. "I" and "" are the identity.
func parseSites[O siteOp](s string, parseOp func(string) (O, bool)) (siteList[O], error) {
	if s == "" || s == "I" {
		return nil, nil
	}
	if !unicode.IsDigit(rune(s[0])) {
		return nil, fmt.Errorf("%w: %q must start with a site index", core.ErrFromStringFailed, s)
	}
	var out siteList[O]
	seen := make(map[int]bool)
	rest := s
	for rest != "" {
		cut := strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsDigit(r) })
		if cut < 0 {
			return nil, fmt.Errorf("%w: %q ends with an index without operator", core.ErrFromStringFailed, s)
		}
		index, err := strconv.Atoi(rest[:cut])
		if err != nil {
			return nil, fmt.Errorf("%w: index %q in %q: %v", core.ErrFromStringFailed, rest[:cut], s, err)
		}
		rest = rest[cut:]
		end := strings.IndexFunc(rest, unicode.IsDigit)
		if end < 0 {
			end = len(rest)
		}
		op, ok := parseOp(rest[:end])
		if !ok {
			return nil, fmt.Errorf("%w: %q in %q", core.ErrIncorrectPauliEntry, rest[:end], s)
		}
		rest = rest[end:]
		if seen[index] {
			return nil, fmt.Errorf("%w: index %d appears twice in %q", core.ErrFromStringFailed, index, s)
		}
		seen[index] = true
		out = out.with(index, op)
	}

	return out, nil
}

// remap applies mapping to every index. Indices absent from mapping stay put.
// The mapped indices must stay pairwise distinct.
func (s siteList[O]) remap(mapping map[int]int) (siteList[O], error) {
	var out siteList[O]
	used := make(map[int]bool, len(s))
	for _, e := range s {
		target, ok := mapping[e.index]
		if !ok {
			target = e.index
		}
		if target < 0 {
			return nil, fmt.Errorf("%w: %w: site %d maps to %d", core.ErrRemappingFailed, core.ErrNegativeIndex, e.index, target)
		}
		if used[target] {
			return nil, fmt.Errorf("%w: two sites map to %d", core.ErrRemappingFailed, target)
		}
		used[target] = true
		out = out.with(target, e.op)
	}

	return out, nil
}

// concat appends other's sites; all indices must be free in s.
func (s siteList[O]) concat(other siteList[O]) (siteList[O], error) {
	out := slices.Clone(s)
	for _, e := range other {
		if out.get(e.index) != 0 {
			return nil, fmt.Errorf("%w: site %d", core.ErrProductIndexAlreadyOccupied, e.index)
		}
		out = out.with(e.index, e.op)
	}

	return out, nil
}

// compare orders by length first, then lexicographically by (index, op).
func (s siteList[O]) compare(other siteList[O]) int {
	if c := cmp.Compare(len(s), len(other)); c != 0 {
		return c
	}

	return slices.CompareFunc(s, other, func(a, b site[O]) int {
		if c := cmp.Compare(a.index, b.index); c != 0 {
			return c
		}
		return cmp.Compare(a.op, b.op)
	})
}

// multiplySites merges two sorted lists, multiplying operators on shared
// indices with table and accumulating the phases.
// Complexity: O(len(l) + len(r)).
func multiplySites[O siteOp](l, r siteList[O], table func(O, O) (O, complex128)) (siteList[O], complex128) {
	out := make(siteList[O], 0, len(l)+len(r))
	phase := complex(1, 0)
	i, j := 0, 0
	for i < len(l) || j < len(r) {
		switch {
		case j == len(r) || (i < len(l) && l[i].index < r[j].index):
			out = append(out, l[i])
			i++
		case i == len(l) || r[j].index < l[i].index:
			out = append(out, r[j])
			j++
		default:
			op, p := table(l[i].op, r[j].op)
			phase *= p
			if op != 0 {
				out = append(out, site[O]{index: l[i].index, op: op})
			}
			i++
			j++
		}
	}

	return out, phase
}

// branch is one term of a basis expansion.
type branch[O siteOp] struct {
	sites  siteList[O]
	factor complex128
}

// expandSites rewrites every site through convert and returns the full
// Cartesian expansion with accumulated factors.
func expandSites[O, P siteOp](s siteList[O], convert func(O) []expansion[P]) []branch[P] {
	out := []branch[P]{{factor: 1}}
	for _, e := range s {
		options := convert(e.op)
		next := make([]branch[P], 0, len(out)*len(options))
		for _, opt := range options {
			for _, b := range out {
				next = append(next, branch[P]{sites: b.sites.with(e.index, opt.op), factor: b.factor * opt.factor})
			}
		}
		out = next
	}

	return out
}

func toMatrixSites[O siteOp](s siteList[O], op func(O) matrix.Op) []matrix.Site {
	out := make([]matrix.Site, len(s))
	for i, e := range s {
		out[i] = matrix.Site{Index: e.index, Op: op(e.op)}
	}

	return out
}
