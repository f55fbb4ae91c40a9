package symbolic

import (
	"errors"
	"math/big"
)

// unaryFuncs maps the names of postfix unary operators to their node kinds.
var unaryFuncs = map[string]nodeKind{
	"neg": nodeNeg,
	"exp": nodeExp,
	"sin": nodeSin,
	"cos": nodeCos,
	"ln":  nodeLn,
}

// binaryOps maps postfix binary operator tokens to their node kinds.
var binaryOps = map[string]nodeKind{
	"+": nodeAdd,
	"-": nodeSub,
	"*": nodeMul,
	"/": nodeDiv,
	"^": nodePow,
}

// apply computes the operation of kind k on x, and y if k is binary. If the
// scalar type panics with big.ErrNaN, the result is a *DomainError.
func apply[T Scalar[T]](k nodeKind, x, y T) (r T, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		err = p.(error) // panic if not error
		if errors.As(err, &big.ErrNaN{}) {
			err = &DomainError{Op: k.symbol(), Err: err}
			return
		}
		panic(p)
	}()
	switch k {
	case nodeNeg:
		return x.Neg(), nil
	case nodeExp:
		return x.Exp(), nil
	case nodeSin:
		return x.Sin(), nil
	case nodeCos:
		return x.Cos(), nil
	case nodeLn:
		return x.Log(), nil
	case nodeAdd:
		return x.Add(y), nil
	case nodeSub:
		return x.Sub(y), nil
	case nodeMul:
		return x.Mul(y), nil
	case nodeDiv:
		return x.Quo(y), nil
	case nodePow:
		return y.Mul(x.Log()).Exp(), nil
	}
	panic("symbolic: cannot apply node kind " + k.String())
}

// DomainError is an error returned when an operation is applied to arguments
// outside its domain, e.g. 0/0 with BigReal. DomainError unwraps to the
// error the scalar type panicked with, usually big.ErrNaN.
type DomainError struct {
	// Op identifies the operation, e.g. "/" or "log".
	Op string
	// Err is the underlying error.
	Err error
}

func (err *DomainError) Error() string {
	msg := err.Err.Error()
	if msg == "" {
		return "argument outside domain of " + err.Op
	}
	return "argument outside domain of " + err.Op + ": " + msg
}

func (err *DomainError) Unwrap() error {
	return err.Err
}
