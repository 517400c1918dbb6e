// SPDX-License-Identifier: MIT
//
// File: ladder.go
// Role: Creator/annihilator index words shared by bosonic and fermionic products.
// Grammar:
//   - "c{i}" creates in mode i, "a{j}" annihilates in mode j; every creator
//     precedes every annihilator. "I" (or "") is the empty word.
// Policy:
//   - Ladder never sorts or validates its own lists; each statistics package
//     applies its ordering rule (plain sort for bosons, signed sort for fermions).

package core

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// Ladder is a normal-ordered word of ladder operators given as mode lists.
type Ladder struct {
	Creators     []int
	Annihilators []int
}

// LadderShape counts the creators and annihilators of a word.
type LadderShape struct {
	Creators     int
	Annihilators int
}

// LadderTerm is one branch of a normal-ordering expansion.
type LadderTerm struct {
	Ladder Ladder
	Factor float64
}

// ParseLadder reads the "c{i}...a{j}..." grammar without reordering indices.
func ParseLadder(s string) (Ladder, error) {
	var l Ladder
	if s == "" || s == "I" {
		return l, nil
	}
	rest := s
	for rest != "" {
		op := rest[0]
		rest = rest[1:]
		cut := strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsDigit(r) })
		if cut < 0 {
			cut = len(rest)
		}
		if cut == 0 {
			return Ladder{}, fmt.Errorf("%w: operator %q in %q has no mode index", ErrFromStringFailed, op, s)
		}
		index, err := strconv.Atoi(rest[:cut])
		if err != nil {
			return Ladder{}, fmt.Errorf("%w: index %q in %q: %v", ErrFromStringFailed, rest[:cut], s, err)
		}
		rest = rest[cut:]
		switch op {
		case 'c':
			if len(l.Annihilators) > 0 {
				return Ladder{}, fmt.Errorf("%w: creator %d follows an annihilator in %q", ErrIndicesNotNormalOrdered, index, s)
			}
			l.Creators = append(l.Creators, index)
		case 'a':
			l.Annihilators = append(l.Annihilators, index)
		default:
			return Ladder{}, fmt.Errorf("%w: operator %q in %q is neither 'c' nor 'a'", ErrFromStringFailed, op, s)
		}
	}

	return l, nil
}

// String renders the canonical form, "I" for the empty word.
func (l Ladder) String() string {
	if l.Len() == 0 {
		return "I"
	}
	var b strings.Builder
	for _, i := range l.Creators {
		b.WriteByte('c')
		b.WriteString(strconv.Itoa(i))
	}
	for _, i := range l.Annihilators {
		b.WriteByte('a')
		b.WriteString(strconv.Itoa(i))
	}

	return b.String()
}

// Shape returns the creator and annihilator counts.
func (l Ladder) Shape() LadderShape {
	return LadderShape{Creators: len(l.Creators), Annihilators: len(l.Annihilators)}
}

// Len returns the number of operators in the word.
func (l Ladder) Len() int { return len(l.Creators) + len(l.Annihilators) }

// Extent returns the highest mode index + 1, or 0 for the empty word.
func (l Ladder) Extent() int {
	n := 0
	for _, i := range l.Creators {
		n = max(n, i+1)
	}
	for _, i := range l.Annihilators {
		n = max(n, i+1)
	}

	return n
}

// Clone returns a copy that shares no storage with l.
func (l Ladder) Clone() Ladder {
	return Ladder{Creators: slices.Clone(l.Creators), Annihilators: slices.Clone(l.Annihilators)}
}

// Swapped exchanges the creator and annihilator lists.
func (l Ladder) Swapped() Ladder {
	return Ladder{Creators: slices.Clone(l.Annihilators), Annihilators: slices.Clone(l.Creators)}
}

// IsNaturalHermitian reports whether the word equals its own conjugate.
func (l Ladder) IsNaturalHermitian() bool {
	return slices.Equal(l.Creators, l.Annihilators)
}

// Compare orders words by length, then creators, then annihilators.
func (l Ladder) Compare(other Ladder) int {
	if c := cmp.Compare(l.Len(), other.Len()); c != 0 {
		return c
	}
	if c := slices.Compare(l.Creators, other.Creators); c != 0 {
		return c
	}

	return slices.Compare(l.Annihilators, other.Annihilators)
}

// CheckHermitianOrder reports whether sorted lists form the canonical member of
// a {word, conjugate} pair. Zipping creators with annihilators, the first
// unequal pair must have the creator smaller; when every zipped pair is equal
// the creators must not outlast the annihilators.
func (l Ladder) CheckHermitianOrder() error {
	equal := 0
	for k := range min(len(l.Creators), len(l.Annihilators)) {
		c, a := l.Creators[k], l.Annihilators[k]
		if a < c {
			return &MinimumIndexError{CreatorMin: c, AnnihilatorMin: a}
		}
		if a > c {
			return nil
		}
		equal++
	}
	if len(l.Creators) > equal && len(l.Annihilators) == equal {
		return &MinimumIndexError{CreatorMin: l.Creators[equal], AnnihilatorMin: NoIndex}
	}

	return nil
}

// CheckNonNegative fails with ErrNegativeIndex when any mode is below zero.
func (l Ladder) CheckNonNegative() error {
	for _, idx := range [][]int{l.Creators, l.Annihilators} {
		for _, i := range idx {
			if i < 0 {
				return fmt.Errorf("%w: mode %d", ErrNegativeIndex, i)
			}
		}
	}

	return nil
}

// NeedsConjugation reports whether CheckHermitianOrder rejects l.
func (l Ladder) NeedsConjugation() bool {
	return l.CheckHermitianOrder() != nil
}

// Remap relabels modes through mapping, keeping list positions. Modes absent
// from mapping stay put; distinct modes must map to distinct targets.
func (l Ladder) Remap(mapping map[int]int) (Ladder, error) {
	targets := make(map[int]int)
	sources := make(map[int]int)
	apply := func(in []int) ([]int, error) {
		out := make([]int, len(in))
		for k, i := range in {
			t, seen := targets[i]
			if !seen {
				var ok bool
				if t, ok = mapping[i]; !ok {
					t = i
				}
				if t < 0 {
					return nil, fmt.Errorf("%w: %w: mode %d maps to %d", ErrRemappingFailed, ErrNegativeIndex, i, t)
				}
				if src, taken := sources[t]; taken && src != i {
					return nil, fmt.Errorf("%w: modes %d and %d both map to %d", ErrRemappingFailed, src, i, t)
				}
				targets[i], sources[t] = t, i
			}
			out[k] = t
		}

		return out, nil
	}
	creators, err := apply(l.Creators)
	if err != nil {
		return Ladder{}, err
	}
	annihilators, err := apply(l.Annihilators)
	if err != nil {
		return Ladder{}, err
	}

	return Ladder{Creators: creators, Annihilators: annihilators}, nil
}

// Concat returns the word left·right with lists appended. Callers reorder.
func Concat(left, right Ladder) Ladder {
	return Ladder{
		Creators:     slices.Concat(left.Creators, right.Creators),
		Annihilators: slices.Concat(left.Annihilators, right.Annihilators),
	}
}

type ladderOp struct {
	index   int
	creator bool
}

// NormalOrder expands left·right into normal-ordered words. Moving an
// annihilator past a creator multiplies by exchange (+1 for bosons, -1 for
// fermions); equal modes additionally contract to a branch with factor 1.
// Relative order within creators and within annihilators is preserved.
func NormalOrder(left, right Ladder, exchange float64) []LadderTerm {
	word := make([]ladderOp, 0, left.Len()+right.Len())
	for _, l := range []Ladder{left, right} {
		for _, i := range l.Creators {
			word = append(word, ladderOp{index: i, creator: true})
		}
		for _, i := range l.Annihilators {
			word = append(word, ladderOp{index: i})
		}
	}
	var out []LadderTerm
	var expand func(word []ladderOp, factor float64)
	expand = func(word []ladderOp, factor float64) {
		for k := 0; k+1 < len(word); k++ {
			if word[k].creator || !word[k+1].creator {
				continue
			}
			swapped := slices.Clone(word)
			swapped[k], swapped[k+1] = swapped[k+1], swapped[k]
			expand(swapped, factor*exchange)
			if word[k].index == word[k+1].index {
				expand(slices.Delete(slices.Clone(word), k, k+2), factor)
			}

			return
		}
		var l Ladder
		for _, op := range word {
			if op.creator {
				l.Creators = append(l.Creators, op.index)
			} else {
				l.Annihilators = append(l.Annihilators, op.index)
			}
		}
		out = append(out, LadderTerm{Ladder: l, Factor: factor})
	}
	expand(word, 1)

	return out
}
