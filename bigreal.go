package symbolic

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// BigReal is an arbitrary-precision real scalar. The result of an operation
// has the larger precision of its operands. Operations outside their domain,
// e.g. 0/0 or the logarithm of a negative number, panic with big.ErrNaN;
// evaluation turns such panics into a *DomainError.
//
// The zero value is 0 with the default precision of 64 bits.
type BigReal struct {
	v *big.Float
}

var _ Scalar[BigReal] = BigReal{}

// NewBigReal creates a BigReal with the value and precision of x. x is copied.
// If x has no precision set, the result has 64 bits.
func NewBigReal(x *big.Float) BigReal {
	v := new(big.Float).Copy(x)
	if v.Prec() == 0 {
		v.SetPrec(64)
	}
	return BigReal{v}
}

// Float returns a copy of the value of x.
func (x BigReal) Float() *big.Float {
	return new(big.Float).Copy(x.val())
}

// Prec returns the precision of x in bits.
func (x BigReal) Prec() uint {
	return x.val().Prec()
}

func (x BigReal) val() *big.Float {
	if x.v == nil {
		return new(big.Float).SetPrec(64)
	}
	return x.v
}

func (x BigReal) Add(y BigReal) BigReal {
	return BigReal{new(big.Float).SetPrec(maxPrec(x, y)).Add(x.val(), y.val())}
}

func (x BigReal) Sub(y BigReal) BigReal {
	return BigReal{new(big.Float).SetPrec(maxPrec(x, y)).Sub(x.val(), y.val())}
}

func (x BigReal) Mul(y BigReal) BigReal {
	return BigReal{new(big.Float).SetPrec(maxPrec(x, y)).Mul(x.val(), y.val())}
}

func (x BigReal) Quo(y BigReal) BigReal {
	return BigReal{new(big.Float).SetPrec(maxPrec(x, y)).Quo(x.val(), y.val())}
}

func (x BigReal) Neg() BigReal {
	return BigReal{new(big.Float).Neg(x.val())}
}

func (x BigReal) Exp() BigReal {
	r := new(big.Float).SetPrec(x.Prec())
	bigfloat.Exp(r, x.val())
	return BigReal{r}
}

func (x BigReal) Log() BigReal {
	if x.val().Sign() < 0 {
		panic(big.ErrNaN{})
	}
	r := new(big.Float).SetPrec(x.Prec())
	bigfloat.Log(r, x.val())
	return BigReal{r}
}

func (x BigReal) Sin() BigReal {
	return BigReal{sincos(x.val(), false)}
}

func (x BigReal) Cos() BigReal {
	return BigReal{sincos(x.val(), true)}
}

func (BigReal) Int(n int64) BigReal {
	return BigReal{new(big.Float).SetPrec(64).SetInt64(n)}
}

func (x BigReal) String() string {
	return x.val().Text('g', -1)
}

func maxPrec(x, y BigReal) uint {
	p, q := x.Prec(), y.Prec()
	if q > p {
		return q
	}
	return p
}

// sincos computes sin(x), or cos(x) if cos is set, by summing the Taylor
// series after reducing x into (-2π, 2π).
func sincos(x *big.Float, cos bool) *big.Float {
	if x.IsInf() {
		panic(big.ErrNaN{})
	}
	prec := x.Prec()
	// Reduction loses roughly the bits of the quotient and the series has
	// intermediate terms up to about 2^7 for |r| < 2π.
	wp := prec + 32 + uint(maxInt(x.MantExp(nil), 0))
	tau := bigfloat.Pi(new(big.Float).SetPrec(wp))
	tau.Mul(tau, big.NewFloat(2))
	k, _ := new(big.Float).SetPrec(wp).Quo(x, tau).Int(nil)
	r := new(big.Float).SetPrec(wp).SetInt(k)
	r.Mul(r, tau)
	r.Sub(new(big.Float).SetPrec(wp).Set(x), r)

	r2 := new(big.Float).SetPrec(wp).Mul(r, r)
	term := new(big.Float).SetPrec(wp)
	n := int64(1)
	if cos {
		term.SetInt64(1)
	} else {
		term.Set(r)
		n = 2
	}
	sum := new(big.Float).SetPrec(wp).Set(term)
	d := new(big.Float).SetPrec(wp)
	for term.Sign() != 0 {
		// term *= -r² / (n (n+1))
		term.Mul(term, r2)
		term.Quo(term, d.SetInt64(n*(n+1)))
		term.Neg(term)
		n += 2
		if sum.Sign() != 0 && term.MantExp(nil) < sum.MantExp(nil)-int(wp) {
			break
		}
		sum.Add(sum, term)
	}
	return new(big.Float).SetPrec(prec).Set(sum)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
