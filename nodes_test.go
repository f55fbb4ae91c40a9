package symbolic

import "testing"

// collect adds every node in n to m.
func collect[T Scalar[T]](n *node[T], m map[*node[T]]bool) {
	if n == nil {
		return
	}
	m[n] = true
	collect(n.left, m)
	collect(n.right, m)
}

// shared counts the nodes reachable in b which are also in a.
func shared[T Scalar[T]](a, b *node[T]) int {
	m := make(map[*node[T]]bool)
	collect(a, m)
	k := 0
	var walk func(*node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		if m[n] {
			k++
		}
		walk(n.left)
		walk(n.right)
	}
	walk(b)
	return k
}

func TestNoSharedNodes(t *testing.T) {
	srcs := []string{
		"x",
		"x x *",
		"x y / x ^",
		"x sin x cos * x exp x ln - /",
		"x neg 2 ^ y +",
	}
	for _, src := range srcs {
		e, err := ParseString(src, ParseReal)
		if err != nil {
			t.Fatal(err)
		}
		if k := shared(e.n, e.Clone().n); k != 0 {
			t.Errorf("%q: clone shares %d nodes", src, k)
		}
		if k := shared(e.n, e.Subst("x", 1).n); k != 0 {
			t.Errorf("%q: substitution shares %d nodes", src, k)
		}
		if k := shared(e.n, e.Subst("z", 1).n); k != 0 {
			t.Errorf("%q: substitution of absent variable shares %d nodes", src, k)
		}
		for _, opts := range [][]DiffOption{nil, {LegacyQuotientRule(), LegacyPowerRule()}} {
			d := e.Diff("x", opts...)
			if k := shared(e.n, d.n); k != 0 {
				t.Errorf("%q: derivative shares %d nodes", src, k)
			}
			if k := shared(d.n, d.n); k != count(d.n) {
				t.Errorf("%q: derivative has nodes appearing more than once", src)
			}
		}
	}
}

func count[T Scalar[T]](n *node[T]) int {
	m := make(map[*node[T]]bool)
	collect(n, m)
	return len(m)
}

func TestDiffShortCircuit(t *testing.T) {
	// Each case is independent of x however large it is.
	srcs := []string{
		"2",
		"y",
		"y sin",
		"y y * y * y * y *",
		"y z ^ y ln / z exp - w cos neg *",
	}
	for _, src := range srcs {
		e, err := ParseString(src, ParseReal)
		if err != nil {
			t.Fatal(err)
		}
		d, dep := e.n.diff("x", &diffctx{})
		if dep {
			t.Errorf("%q: reported dependency on x", src)
		}
		if d.kind != nodeConst || d.val != 0 || d.left != nil || d.right != nil {
			t.Errorf("%q: derivative is %v, not the constant 0", src, d)
		}
	}
}

func TestNodeKindString(t *testing.T) {
	cases := []struct {
		k    nodeKind
		want string
	}{
		{nodeNone, "None"},
		{nodeConst, "Const"},
		{nodeVar, "Var"},
		{nodeNeg, "Neg"},
		{nodeExp, "Exp"},
		{nodeSin, "Sin"},
		{nodeCos, "Cos"},
		{nodeLn, "Ln"},
		{nodeAdd, "Add"},
		{nodeSub, "Sub"},
		{nodeMul, "Mul"},
		{nodeDiv, "Div"},
		{nodePow, "Pow"},
		{nodePow + 1, "nodeKind(13)"},
		{-1, "nodeKind(-1)"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("want %q, got %q", c.want, got)
		}
	}
}

func TestInvalidNodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("formatting an invalid node did not panic")
		}
	}()
	n := &node[Real]{kind: nodeNone}
	_ = n.String()
}

func TestConstructorsCopy(t *testing.T) {
	x := Var[Real]("x")
	two := Const[Real](2)
	exprs := []*Expr[Real]{
		Add(x, x),
		Mul(Sin(x), Cos(x)),
		Pow(Neg(x), Exp(x)),
		Div(Ln(two), Sub(two, two)),
	}
	for _, e := range exprs {
		if k := shared(e.n, e.n); k != count(e.n) {
			t.Errorf("%v: nodes appear more than once", e)
		}
		if shared(x.n, e.n) != 0 || shared(two.n, e.n) != 0 {
			t.Errorf("%v: shares nodes with its operands", e)
		}
	}
}
