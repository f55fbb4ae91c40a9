package symbolic

import "strings"

// node is a node in the abstract syntax tree of an expression. Nodes are
// never modified after they are created.
type node[T Scalar[T]] struct {
	kind nodeKind

	val  T      // nodeConst
	name string // nodeVar

	left  *node[T] // operand of unary kinds
	right *node[T]
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeConst // val
	nodeVar   // lookup(name)

	nodeNeg // -left
	nodeExp // exp(left)
	nodeSin // sin(left)
	nodeCos // cos(left)
	nodeLn  // ln(left)

	nodeAdd // left + right
	nodeSub // left - right
	nodeMul // left * right
	nodeDiv // left / right
	nodePow // exp(right * ln(left))
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node
//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token
//go:generate go mod tidy

func (k nodeKind) unary() bool {
	return nodeNeg <= k && k <= nodeLn
}

func (k nodeKind) binary() bool {
	return nodeAdd <= k && k <= nodePow
}

// symbol is the infix operator or function name of k.
func (k nodeKind) symbol() string {
	switch k {
	case nodeExp:
		return "exp"
	case nodeSin:
		return "sin"
	case nodeCos:
		return "cos"
	case nodeLn:
		return "log"
	case nodeAdd:
		return "+"
	case nodeSub, nodeNeg:
		return "-"
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	case nodePow:
		return "^"
	}
	panic("symbolic: no symbol for node kind " + k.String())
}

func (n *node[T]) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node[T]) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeConst:
		b.WriteString(n.val.String())
	case nodeVar:
		b.WriteString(n.name)
	case nodeNeg:
		b.WriteString("(-")
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeExp, nodeSin, nodeCos, nodeLn:
		b.WriteString(n.kind.symbol())
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.kind.symbol())
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		panic("symbolic: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// clone returns a deep copy of n.
func (n *node[T]) clone() *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{
		kind:  n.kind,
		val:   n.val,
		name:  n.name,
		left:  n.left.clone(),
		right: n.right.clone(),
	}
}

// subst returns a copy of n with every variable named name replaced by a
// constant with value v.
func (n *node[T]) subst(name string, v T) *node[T] {
	switch {
	case n.kind == nodeVar && n.name == name:
		return constant(v)
	case n.kind == nodeConst, n.kind == nodeVar:
		return n.clone()
	case n.kind.unary():
		return unary(n.kind, n.left.subst(name, v))
	case n.kind.binary():
		return binary(n.kind, n.left.subst(name, v), n.right.subst(name, v))
	}
	panic("symbolic: invalid node kind " + n.kind.String())
}

// vars adds the names of the variables in n to m.
func (n *node[T]) vars(m map[string]bool) {
	switch {
	case n.kind == nodeVar:
		m[n.name] = true
	case n.kind.unary():
		n.left.vars(m)
	case n.kind.binary():
		n.left.vars(m)
		n.right.vars(m)
	}
}

func constant[T Scalar[T]](v T) *node[T] {
	return &node[T]{kind: nodeConst, val: v}
}

func integer[T Scalar[T]](k int64) *node[T] {
	var zero T
	return constant(zero.Int(k))
}

func variable[T Scalar[T]](name string) *node[T] {
	return &node[T]{kind: nodeVar, name: name}
}

func unary[T Scalar[T]](kind nodeKind, x *node[T]) *node[T] {
	return &node[T]{kind: kind, left: x}
}

func binary[T Scalar[T]](kind nodeKind, l, r *node[T]) *node[T] {
	return &node[T]{kind: kind, left: l, right: r}
}
