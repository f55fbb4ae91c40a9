package symbolic

import (
	"io"
	"strconv"
	"strings"

	"github.com/google/btree"
)

// Context holds variable definitions for evaluating expressions. It is not
// safe to modify a Context concurrently, but any number of goroutines may
// evaluate expressions with a Context that is not being modified.
//
// The zero value is an empty context ready to use.
type Context[T Scalar[T]] struct {
	// names is allocated on the first Set.
	names *btree.BTreeG[binding[T]]
}

func newBindings[T any]() *btree.BTreeG[binding[T]] {
	return btree.NewG(8, lessBindings[T])
}

type binding[T any] struct {
	name string
	val  T
}

func lessBindings[T any](a, b binding[T]) bool {
	return a.name < b.name
}

// ContextOption is an option used when creating a context.
type ContextOption[T Scalar[T]] interface {
	ctxOption(*Context[T])
}

type (
	varopt[T Scalar[T]] struct {
		name string
		val  T
	}
	varsopt[T Scalar[T]] map[string]T
)

func (o varopt[T]) ctxOption(ctx *Context[T]) {
	ctx.Set(o.name, o.val)
}

func (o varsopt[T]) ctxOption(ctx *Context[T]) {
	for k, v := range o {
		ctx.Set(k, v)
	}
}

// SetVar sets the value of a variable in the context.
func SetVar[T Scalar[T]](name string, val T) ContextOption[T] {
	return varopt[T]{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars[T Scalar[T]](vars map[string]T) ContextOption[T] {
	return varsopt[T](vars)
}

// NewContext creates a new evaluation context.
func NewContext[T Scalar[T]](opts ...ContextOption[T]) *Context[T] {
	ctx := Context[T]{names: newBindings[T]()}
	for _, opt := range opts {
		if opt != nil {
			opt.ctxOption(&ctx)
		}
	}
	return &ctx
}

// Clone creates a copy of a context and applies options to it. Changes to
// either context do not affect the other.
func (ctx *Context[T]) Clone(opts ...ContextOption[T]) *Context[T] {
	var n Context[T]
	if ctx.names != nil {
		n.names = ctx.names.Clone()
	}
	for _, opt := range opts {
		if opt != nil {
			opt.ctxOption(&n)
		}
	}
	return &n
}

// Set sets the value of a variable. Returns ctx for chaining.
func (ctx *Context[T]) Set(name string, value T) *Context[T] {
	if ctx.names == nil {
		ctx.names = newBindings[T]()
	}
	ctx.names.ReplaceOrInsert(binding[T]{name, value})
	return ctx
}

// Lookup returns the value of a variable and whether it is defined.
func (ctx *Context[T]) Lookup(name string) (T, bool) {
	if ctx.names == nil {
		var zero T
		return zero, false
	}
	b, ok := ctx.names.Get(binding[T]{name: name})
	return b.val, ok
}

// Names returns the names of all defined variables in ascending order.
func (ctx *Context[T]) Names() []string {
	names := make([]string, 0, ctx.Len())
	if ctx.names == nil {
		return names
	}
	ctx.names.Ascend(func(b binding[T]) bool {
		names = append(names, b.name)
		return true
	})
	return names
}

// Len returns the number of defined variables.
func (ctx *Context[T]) Len() int {
	if ctx.names == nil {
		return 0
	}
	return ctx.names.Len()
}

// Eval evaluates an expression. If a variable in the expression is not
// defined in the context, the error is a *NameError. No partial result is
// returned on error.
func (ctx *Context[T]) Eval(e *Expr[T]) (T, error) {
	return e.n.eval(ctx)
}

// Eval is a shortcut for ctx.Eval(e).
func (e *Expr[T]) Eval(ctx *Context[T]) (T, error) {
	return ctx.Eval(e)
}

// eval computes the value of the node bottom-up.
func (n *node[T]) eval(ctx *Context[T]) (T, error) {
	var zero T
	switch {
	case n.kind == nodeConst:
		return n.val, nil
	case n.kind == nodeVar:
		v, ok := ctx.Lookup(n.name)
		if !ok {
			return zero, &NameError{Name: n.name}
		}
		return v, nil
	case n.kind.unary():
		x, err := n.left.eval(ctx)
		if err != nil {
			return zero, err
		}
		return apply(n.kind, x, zero)
	case n.kind.binary():
		l, err := n.left.eval(ctx)
		if err != nil {
			return zero, err
		}
		r, err := n.right.eval(ctx)
		if err != nil {
			return zero, err
		}
		return apply(n.kind, l, r)
	}
	panic("symbolic: invalid AST node " + n.kind.String())
}

// Eval is a shortcut to parse a postfix expression and return its value.
func Eval[T Scalar[T]](src io.RuneScanner, lit LiteralFunc[T], opts ...ContextOption[T]) (T, error) {
	a, err := Parse(src, lit)
	if err != nil {
		var zero T
		return zero, err
	}
	return NewContext(opts...).Eval(a)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString[T Scalar[T]](src string, lit LiteralFunc[T], opts ...ContextOption[T]) (T, error) {
	return Eval(strings.NewReader(src), lit, opts...)
}

// NameError is an error from a lookup for a variable that is missing from the
// evaluation context.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}
