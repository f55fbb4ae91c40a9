package symbolic

import (
	"math"
	"math/cmplx"
	"strconv"
)

// Scalar is the set of operations an expression needs from its numeric type.
// T is the implementing type itself, e.g. Complex implements Scalar[Complex].
//
// Int is called on the zero value of T to create the constants 0 and 1 that
// differentiation introduces, so it must not depend on the receiver.
type Scalar[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Quo(T) T
	Neg() T
	Exp() T
	Log() T
	Sin() T
	Cos() T
	Int(int64) T
	String() string
}

// Complex is a double-precision complex scalar.
type Complex complex128

var _ Scalar[Complex] = Complex(0)

func (z Complex) Add(w Complex) Complex { return z + w }
func (z Complex) Sub(w Complex) Complex { return z - w }
func (z Complex) Mul(w Complex) Complex { return z * w }
func (z Complex) Quo(w Complex) Complex { return z / w }
func (z Complex) Neg() Complex          { return -z }
func (z Complex) Exp() Complex          { return Complex(cmplx.Exp(complex128(z))) }
func (z Complex) Log() Complex          { return Complex(cmplx.Log(complex128(z))) }
func (z Complex) Sin() Complex          { return Complex(cmplx.Sin(complex128(z))) }
func (z Complex) Cos() Complex          { return Complex(cmplx.Cos(complex128(z))) }
func (Complex) Int(n int64) Complex     { return Complex(complex(float64(n), 0)) }

// String formats z as its real part, an explicit sign, the magnitude of its
// imaginary part, and i, e.g. 2-3i or 5+0i.
func (z Complex) String() string {
	re, im := real(z), imag(z)
	sign := "+"
	if im < 0 {
		sign = "-"
	}
	return formatFloat(re) + sign + formatFloat(math.Abs(im)) + "i"
}

// Real is a double-precision real scalar.
type Real float64

var _ Scalar[Real] = Real(0)

func (x Real) Add(y Real) Real { return x + y }
func (x Real) Sub(y Real) Real { return x - y }
func (x Real) Mul(y Real) Real { return x * y }
func (x Real) Quo(y Real) Real { return x / y }
func (x Real) Neg() Real       { return -x }
func (x Real) Exp() Real       { return Real(math.Exp(float64(x))) }
func (x Real) Log() Real       { return Real(math.Log(float64(x))) }
func (x Real) Sin() Real       { return Real(math.Sin(float64(x))) }
func (x Real) Cos() Real       { return Real(math.Cos(float64(x))) }
func (Real) Int(n int64) Real  { return Real(n) }
func (x Real) String() string  { return formatFloat(float64(x)) }

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
