package symbolic

import "sort"

// Expr is an immutable expression over the scalar type T. Every operation on
// an Expr returns a new expression, so an Expr may be shared freely,
// including between goroutines. The constructors copy their operands, so an
// expression is always a tree even when built from the same Expr twice, as in
// Add(x, x).
type Expr[T Scalar[T]] struct {
	// n is the root node of the expression.
	n *node[T]
}

func wrap[T Scalar[T]](n *node[T]) *Expr[T] {
	return &Expr[T]{n: n}
}

// Const creates a constant expression.
func Const[T Scalar[T]](v T) *Expr[T] {
	return wrap(constant(v))
}

// Var creates a variable expression.
func Var[T Scalar[T]](name string) *Expr[T] {
	return wrap(variable[T](name))
}

// Neg creates the expression -x.
func Neg[T Scalar[T]](x *Expr[T]) *Expr[T] { return wrap(unary(nodeNeg, x.n.clone())) }

// Exp creates the expression exp(x).
func Exp[T Scalar[T]](x *Expr[T]) *Expr[T] { return wrap(unary(nodeExp, x.n.clone())) }

// Sin creates the expression sin(x).
func Sin[T Scalar[T]](x *Expr[T]) *Expr[T] { return wrap(unary(nodeSin, x.n.clone())) }

// Cos creates the expression cos(x).
func Cos[T Scalar[T]](x *Expr[T]) *Expr[T] { return wrap(unary(nodeCos, x.n.clone())) }

// Ln creates the expression ln(x), the natural logarithm.
func Ln[T Scalar[T]](x *Expr[T]) *Expr[T] { return wrap(unary(nodeLn, x.n.clone())) }

// Add creates the expression l + r.
func Add[T Scalar[T]](l, r *Expr[T]) *Expr[T] { return wrap(binary(nodeAdd, l.n.clone(), r.n.clone())) }

// Sub creates the expression l - r.
func Sub[T Scalar[T]](l, r *Expr[T]) *Expr[T] { return wrap(binary(nodeSub, l.n.clone(), r.n.clone())) }

// Mul creates the expression l * r.
func Mul[T Scalar[T]](l, r *Expr[T]) *Expr[T] { return wrap(binary(nodeMul, l.n.clone(), r.n.clone())) }

// Div creates the expression l / r.
func Div[T Scalar[T]](l, r *Expr[T]) *Expr[T] { return wrap(binary(nodeDiv, l.n.clone(), r.n.clone())) }

// Pow creates the expression l ^ r, which evaluates as exp(r * ln(l)).
func Pow[T Scalar[T]](l, r *Expr[T]) *Expr[T] { return wrap(binary(nodePow, l.n.clone(), r.n.clone())) }

// String formats the expression in fully parenthesized infix notation, e.g.
// "((2 * x) + sin(x))".
func (e *Expr[T]) String() string {
	return e.n.String()
}

// Clone returns a deep copy of the expression which shares no nodes with e.
func (e *Expr[T]) Clone() *Expr[T] {
	return wrap(e.n.clone())
}

// Subst returns a copy of the expression with every occurrence of the
// variable name replaced by the constant v.
func (e *Expr[T]) Subst(name string, v T) *Expr[T] {
	return wrap(e.n.subst(name, v))
}

// Vars returns the names of the variables in the expression in sorted order.
func (e *Expr[T]) Vars() []string {
	m := make(map[string]bool)
	e.n.vars(m)
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Value returns the value of the expression if it is a constant.
func (e *Expr[T]) Value() (T, bool) {
	if e.n.kind != nodeConst {
		var zero T
		return zero, false
	}
	return e.n.val, true
}
