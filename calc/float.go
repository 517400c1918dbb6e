// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Float is a real coefficient: either a numeric float64 or a symbolic
// expression. The zero value is the numeric zero.
type Float struct {
	num      float64
	sym      string
	symbolic bool
}

// Zero and One are the numeric constants used as accumulator seeds.
var (
	Zero = Float{}
	One  = Float{num: 1}
)

// NewFloat returns a numeric Float.
func NewFloat(v float64) Float {
	return Float{num: v}
}

// Symbol returns a symbolic Float holding expr verbatim.
func Symbol(expr string) Float {
	return Float{sym: expr, symbolic: true}
}

// ParseFloat interprets s as a number when possible and as a symbol otherwise.
func ParseFloat(s string) Float {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return NewFloat(v)
	}

	return Symbol(s)
}

// IsSymbolic reports whether f holds an expression rather than a number.
func (f Float) IsSymbolic() bool { return f.symbolic }

// IsZero reports whether f is numerically exactly zero. Symbols are never zero.
func (f Float) IsZero() bool { return !f.symbolic && f.num == 0 }

// Float64 returns the numeric value, or ErrSymbolicValue.
func (f Float) Float64() (float64, error) {
	if f.symbolic {
		return 0, fmt.Errorf("%w: %q", ErrSymbolicValue, f.sym)
	}

	return f.num, nil
}

// Equal compares numerically for numbers and textually for symbols.
func (f Float) Equal(g Float) bool {
	if f.symbolic != g.symbolic {
		return false
	}
	if f.symbolic {
		return f.sym == g.sym
	}

	return f.num == g.num
}

// Add returns f + g.
func (f Float) Add(g Float) Float {
	switch {
	case !f.symbolic && !g.symbolic:
		return NewFloat(f.num + g.num)
	case f.IsZero():
		return g
	case g.IsZero():
		return f
	}

	return Symbol("(" + f.String() + " + " + g.String() + ")")
}

// Sub returns f - g.
func (f Float) Sub(g Float) Float {
	switch {
	case !f.symbolic && !g.symbolic:
		return NewFloat(f.num - g.num)
	case g.IsZero():
		return f
	case f.IsZero():
		return g.Neg()
	}

	return Symbol("(" + f.String() + " - " + g.String() + ")")
}

// Mul returns f * g.
func (f Float) Mul(g Float) Float {
	switch {
	case !f.symbolic && !g.symbolic:
		return NewFloat(f.num * g.num)
	case f.IsZero() || g.IsZero():
		return Zero
	case !f.symbolic && f.num == 1:
		return g
	case !g.symbolic && g.num == 1:
		return f
	}

	return Symbol("(" + f.String() + " * " + g.String() + ")")
}

// Div returns f / g. Division by a numeric zero yields ±Inf or NaN as in float64.
func (f Float) Div(g Float) Float {
	switch {
	case !f.symbolic && !g.symbolic:
		return NewFloat(f.num / g.num)
	case !g.symbolic && g.num == 1:
		return f
	}

	return Symbol("(" + f.String() + " / " + g.String() + ")")
}

// Neg returns -f.
func (f Float) Neg() Float {
	if !f.symbolic {
		return NewFloat(-f.num)
	}

	return Symbol("(-" + f.sym + ")")
}

// Scale returns f * k for a plain float64 factor.
func (f Float) Scale(k float64) Float { return f.Mul(NewFloat(k)) }

// Conj is the identity on real values.
func (f Float) Conj() Float { return f }

// Abs returns |f| for numbers; symbols are returned as |expr|.
func (f Float) Abs() Float {
	if !f.symbolic {
		return NewFloat(math.Abs(f.num))
	}

	return Symbol("|" + f.sym + "|")
}

// Truncate keeps f iff it is symbolic or |f| >= threshold.
func (f Float) Truncate(threshold float64) (Float, bool) {
	if f.symbolic || math.Abs(f.num) >= threshold {
		return f, true
	}

	return Zero, false
}

// String renders numbers in shortest scientific form (1e-1, 0e0, -2.5e3)
// and symbols verbatim.
func (f Float) String() string {
	if f.symbolic {
		return f.sym
	}

	return formatScientific(f.num)
}

// formatScientific converts strconv's 'e' output ("1.5e+00") into the
// compact exponent form ("1.5e0").
func formatScientific(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}

	return mantissa + "e" + strconv.Itoa(e)
}
