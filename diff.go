package symbolic

// DiffOption is an option for differentiation.
type DiffOption interface {
	diffOption(*diffctx)
}

// diffctx selects the rules used by differentiation.
type diffctx struct {
	// legacyQuo uses (dL*L - L*dR) / (R*R) for quotients.
	legacyQuo bool
	// legacyPow subtracts the exponent term of the power rule instead of
	// adding it.
	legacyPow bool
}

type (
	legacyQuoOpt struct{}
	legacyPowOpt struct{}
)

func (legacyQuoOpt) diffOption(d *diffctx) { d.legacyQuo = true }
func (legacyPowOpt) diffOption(d *diffctx) { d.legacyPow = true }

// LegacyQuotientRule differentiates l / r as ((dl * l) - (l * dr)) / (r * r),
// reproducing the output of earlier versions of the differentiator. The
// default is the quotient rule ((dl * r) - (l * dr)) / (r * r).
func LegacyQuotientRule() DiffOption {
	return legacyQuoOpt{}
}

// LegacyPowerRule differentiates l ^ r as
// ((r * (l ^ (r - 1))) * dl) - (((l ^ r) * dr) * log(l)), reproducing the
// output of earlier versions of the differentiator. The default adds the two
// terms, which is the derivative of exp(r * ln(l)).
func LegacyPowerRule() DiffOption {
	return legacyPowOpt{}
}

// Diff returns the derivative of the expression with respect to the variable
// name. No simplification is performed on the result beyond replacing the
// derivatives of subexpressions that do not contain name with 0.
func (e *Expr[T]) Diff(name string, opts ...DiffOption) *Expr[T] {
	d, _ := e.DiffTracked(name, opts...)
	return d
}

// DiffTracked returns the derivative of the expression with respect to the
// variable name and whether the expression depends on name at all. If it does
// not, the derivative is exactly the constant 0.
func (e *Expr[T]) DiffTracked(name string, opts ...DiffOption) (*Expr[T], bool) {
	var d diffctx
	for _, opt := range opts {
		if opt != nil {
			opt.diffOption(&d)
		}
	}
	r, dep := e.n.diff(name, &d)
	return wrap(r), dep
}

func (n *node[T]) diff(name string, d *diffctx) (*node[T], bool) {
	switch {
	case n.kind == nodeConst:
		return integer[T](0), false
	case n.kind == nodeVar:
		if n.name == name {
			return integer[T](1), true
		}
		return integer[T](0), false
	case n.kind.unary():
		dx, dep := n.left.diff(name, d)
		if !dep {
			return integer[T](0), false
		}
		return n.diffUnary(dx), true
	case n.kind.binary():
		dl, depl := n.left.diff(name, d)
		dr, depr := n.right.diff(name, d)
		if !depl && !depr {
			return integer[T](0), false
		}
		return n.diffBinary(dl, dr, d), true
	}
	panic("symbolic: invalid node kind " + n.kind.String())
}

// diffUnary applies the chain rule to a unary node whose operand has
// derivative dx.
func (n *node[T]) diffUnary(dx *node[T]) *node[T] {
	x := n.left
	switch n.kind {
	case nodeNeg:
		return unary(nodeNeg, dx)
	case nodeExp:
		return binary(nodeMul, unary(nodeExp, x.clone()), dx)
	case nodeSin:
		return binary(nodeMul, unary(nodeCos, x.clone()), dx)
	case nodeCos:
		return binary(nodeMul, unary(nodeNeg, unary(nodeSin, x.clone())), dx)
	case nodeLn:
		return binary(nodeMul, binary(nodeDiv, integer[T](1), x.clone()), dx)
	}
	panic("symbolic: invalid unary node kind " + n.kind.String())
}

// diffBinary differentiates a binary node whose operands have derivatives dl
// and dr. Operands which appear in the result more than once are cloned each
// time.
func (n *node[T]) diffBinary(dl, dr *node[T], d *diffctx) *node[T] {
	l, r := n.left, n.right
	switch n.kind {
	case nodeAdd:
		return binary(nodeAdd, dl, dr)
	case nodeSub:
		return binary(nodeSub, dl, dr)
	case nodeMul:
		return binary(nodeAdd,
			binary(nodeMul, dl, r.clone()),
			binary(nodeMul, l.clone(), dr),
		)
	case nodeDiv:
		t := r.clone()
		if d.legacyQuo {
			t = l.clone()
		}
		return binary(nodeDiv,
			binary(nodeSub,
				binary(nodeMul, dl, t),
				binary(nodeMul, l.clone(), dr),
			),
			binary(nodeMul, r.clone(), r.clone()),
		)
	case nodePow:
		// d/dx l^r = r l^(r-1) dl + l^r ln(l) dr
		op := nodeAdd
		if d.legacyPow {
			op = nodeSub
		}
		base := binary(nodeMul,
			binary(nodeMul,
				r.clone(),
				binary(nodePow, l.clone(), binary(nodeSub, r.clone(), integer[T](1))),
			),
			dl,
		)
		exp := binary(nodeMul,
			binary(nodeMul, binary(nodePow, l.clone(), r.clone()), dr),
			unary(nodeLn, l.clone()),
		)
		return binary(op, base, exp)
	}
	panic("symbolic: invalid binary node kind " + n.kind.String())
}
