package symbolic

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

// Parse builds an expression from postfix (reverse Polish) notation.
//
// Tokens are separated by whitespace. A token beginning with a digit or '.'
// is a literal, parsed by lit. The binary operators + - * / ^ pop two
// operands, right first, and push their combination. The functions sin, cos,
// exp, ln, and neg pop one operand. Any other identifier is a variable.
// "x 2 ^ x sin *" is (x ^ 2) * sin(x).
//
// Errors resulting from invalid input implement InputError.
func Parse[T Scalar[T]](src io.RuneScanner, lit LiteralFunc[T], opts ...ParseOption) (*Expr[T], error) {
	var p parsectx
	for _, opt := range opts {
		if opt != nil {
			p = opt.parseOption(p)
		}
	}
	if p.funcs == nil {
		p.funcs = unaryFuncs
	}
	var stack []*node[T]
	pop := func(t lexToken) (*node[T], error) {
		if len(stack) == 0 {
			return nil, &StackError{Col: t.pos, Token: t.text}
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n, nil
	}
	scan := lex(src, p.funcs)
	end := 1
	for {
		t, err := scan.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		end = t.pos + utf8.RuneCountInString(t.text)
		switch t.kind {
		case tokenNum:
			v, err := lit(t.text)
			if err != nil {
				return nil, &LiteralError{Col: t.pos, Text: t.text, Err: err}
			}
			stack = append(stack, constant(v))
		case tokenIdent:
			stack = append(stack, variable[T](t.text))
		case tokenFunc:
			x, err := pop(t)
			if err != nil {
				return nil, err
			}
			stack = append(stack, unary(p.funcs[t.text], x))
		case tokenOp:
			r, err := pop(t)
			if err != nil {
				return nil, err
			}
			l, err := pop(t)
			if err != nil {
				return nil, err
			}
			stack = append(stack, binary(binaryOps[t.text], l, r))
		default:
			panic("symbolic: unexpected token " + t.String())
		}
	}
	if len(stack) != 1 {
		return nil, &StackError{Col: end, Depth: len(stack)}
	}
	return wrap(stack[0]), nil
}

// ParseString is a shortcut to parse a postfix expression from a string.
func ParseString[T Scalar[T]](src string, lit LiteralFunc[T], opts ...ParseOption) (*Expr[T], error) {
	return Parse(strings.NewReader(src), lit, opts...)
}
