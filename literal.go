package symbolic

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// LiteralFunc parses the text of a numeric literal into a scalar. Errors
// should wrap one of ErrEmptyLiteral, ErrMalformedLiteral, or
// ErrMissingOperation.
type LiteralFunc[T any] func(string) (T, error)

var (
	// ErrEmptyLiteral indicates a literal with no text.
	ErrEmptyLiteral = errors.New("empty number")
	// ErrMalformedLiteral indicates text that is not a number.
	ErrMalformedLiteral = errors.New("malformed number")
	// ErrMissingOperation indicates a literal with both a real and an
	// imaginary part that lacks the trailing i.
	ErrMissingOperation = errors.New("complex number has two parts but no imaginary unit")
)

// ParseRealLiteral parses a real number. A leading '.' is allowed, as in ".5".
func ParseRealLiteral(s string) (float64, error) {
	if s == "" {
		return 0, ErrEmptyLiteral
	}
	if s[0] == '.' {
		s = "0" + s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numerr *strconv.NumError
		if errors.As(err, &numerr) && numerr.Err == strconv.ErrRange {
			// Overflow rounds to infinity, which is what the caller wants.
			return f, nil
		}
		return 0, ErrMalformedLiteral
	}
	return f, nil
}

// ParseReal parses a real literal into a Real.
func ParseReal(s string) (Real, error) {
	f, err := ParseRealLiteral(s)
	return Real(f), err
}

// ParseComplex parses a complex literal. Accepted forms are a real number
// "2.5", an imaginary number "3i", and both parts "2-3i". The parts are
// separated at the first sign after the first character which does not
// belong to an exponent, so "1e-3+2i" is 0.001+2i. The sign applies to the
// imaginary part, which may not carry a sign of its own, so "2+-3i" is
// malformed.
func ParseComplex(s string) (Complex, error) {
	if s == "" {
		return 0, ErrEmptyLiteral
	}
	t, imag := strings.CutSuffix(s, "i")
	op := separator(t)
	switch {
	case op < 0 && imag:
		im, err := ParseRealLiteral(t)
		return Complex(complex(0, im)), err
	case op < 0:
		re, err := ParseRealLiteral(t)
		return Complex(complex(re, 0)), err
	case imag:
		re, err := ParseRealLiteral(t[:op])
		if err != nil {
			return 0, err
		}
		m := t[op+1:]
		if m != "" && (m[0] == '+' || m[0] == '-') {
			return 0, ErrMalformedLiteral
		}
		im, err := ParseRealLiteral(m)
		if err != nil {
			return 0, err
		}
		if t[op] == '-' {
			im = -im
		}
		return Complex(complex(re, im)), nil
	default:
		return 0, ErrMissingOperation
	}
}

// separator returns the index of the sign between the real and imaginary
// parts of a complex literal, or -1 if there is none.
func separator(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '+', '-':
			if s[i-1] == 'e' || s[i-1] == 'E' {
				continue
			}
			return i
		}
	}
	return -1
}

// BigParser returns a LiteralFunc which parses real literals into BigReals
// with prec bits of precision.
func BigParser(prec uint) LiteralFunc[BigReal] {
	if prec == 0 {
		prec = 64
	}
	return func(s string) (BigReal, error) {
		if s == "" {
			return BigReal{}, ErrEmptyLiteral
		}
		if s[0] == '.' {
			s = "0" + s
		}
		r, _, err := new(big.Float).SetPrec(prec).Parse(s, 10)
		switch {
		case err == nil: // do nothing
		case err.Error() == "exponent overflow",
			strings.HasSuffix(err.Error(), ": value out of range"):
			// There isn't realistically any better way to detect this error.
			r = new(big.Float).SetPrec(prec).SetInf(s[0] == '-')
		default:
			return BigReal{}, ErrMalformedLiteral
		}
		return BigReal{r}, nil
	}
}

// ParseBinding parses a variable definition of the form name=value. Spaces
// around the name and value are ignored.
func ParseBinding[T any](s string, lit LiteralFunc[T]) (string, T, error) {
	var zero T
	name, val, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || !isIdent(name) {
		return "", zero, &BindingError{Text: s}
	}
	v, err := lit(strings.TrimSpace(val))
	if err != nil {
		return "", zero, &BindingError{Text: s, Err: err}
	}
	return name, v, nil
}
