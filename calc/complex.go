// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"math"
)

// Complex is a complex coefficient whose parts are Floats.
// The zero value is 0 + 0i.
type Complex struct {
	re, im Float
}

// ComplexZero and ComplexOne are numeric constants.
var (
	ComplexZero = Complex{}
	ComplexOne  = Complex{re: One}
)

// NewComplex returns the numeric value re + i*im.
func NewComplex(re, im float64) Complex {
	return Complex{re: NewFloat(re), im: NewFloat(im)}
}

// FromFloat lifts a real coefficient.
func FromFloat(f Float) Complex {
	return Complex{re: f}
}

// FromParts builds a Complex from two Floats.
func FromParts(re, im Float) Complex {
	return Complex{re: re, im: im}
}

// FromComplex128 converts a native complex number.
func FromComplex128(z complex128) Complex {
	return NewComplex(real(z), imag(z))
}

// Re returns the real part.
func (z Complex) Re() Float { return z.re }

// Im returns the imaginary part.
func (z Complex) Im() Float { return z.im }

// IsZero reports whether both parts are numerically zero.
func (z Complex) IsZero() bool { return z.re.IsZero() && z.im.IsZero() }

// IsReal reports whether the imaginary part is numerically zero.
func (z Complex) IsReal() bool { return z.im.IsZero() }

// IsSymbolic reports whether either part is symbolic.
func (z Complex) IsSymbolic() bool { return z.re.symbolic || z.im.symbolic }

// Equal compares both parts.
func (z Complex) Equal(w Complex) bool { return z.re.Equal(w.re) && z.im.Equal(w.im) }

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{re: z.re.Add(w.re), im: z.im.Add(w.im)}
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{re: z.re.Sub(w.re), im: z.im.Sub(w.im)}
}

// Mul returns z * w.
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		re: z.re.Mul(w.re).Sub(z.im.Mul(w.im)),
		im: z.re.Mul(w.im).Add(z.im.Mul(w.re)),
	}
}

// MulFloat returns z * f for a real coefficient f.
func (z Complex) MulFloat(f Float) Complex {
	return Complex{re: z.re.Mul(f), im: z.im.Mul(f)}
}

// Scale returns z * k.
func (z Complex) Scale(k float64) Complex { return z.MulFloat(NewFloat(k)) }

// MulComplex128 returns z * c for a native phase factor.
func (z Complex) MulComplex128(c complex128) Complex {
	if imag(c) == 0 {
		return z.Scale(real(c))
	}

	return z.Mul(FromComplex128(c))
}

// Neg returns -z.
func (z Complex) Neg() Complex { return Complex{re: z.re.Neg(), im: z.im.Neg()} }

// Conj returns the complex conjugate.
func (z Complex) Conj() Complex { return Complex{re: z.re, im: z.im.Neg()} }

// Complex128 returns the numeric value, or ErrSymbolicValue.
func (z Complex) Complex128() (complex128, error) {
	re, err := z.re.Float64()
	if err != nil {
		return 0, err
	}
	im, err := z.im.Float64()
	if err != nil {
		return 0, err
	}

	return complex(re, im), nil
}

// Truncate keeps z unchanged when symbolic. Otherwise each part below
// threshold is zeroed and z is dropped if its modulus is still below threshold.
func (z Complex) Truncate(threshold float64) (Complex, bool) {
	if z.IsSymbolic() {
		return z, true
	}
	re, im := z.re.num, z.im.num
	if math.Abs(re) < threshold {
		re = 0
	}
	if math.Abs(im) < threshold {
		im = 0
	}
	if math.Hypot(re, im) < threshold {
		return ComplexZero, false
	}

	return NewComplex(re, im), true
}

// String renders z as "({re} + i * {im})".
func (z Complex) String() string {
	return fmt.Sprintf("(%s + i * %s)", z.re, z.im)
}
