package symbolic

import "strconv"

// TokenError is an error indicating a token that is not a literal, operator,
// function, or variable name. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the token that was not understood.
	Token string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "invalid token "+strconv.Quote(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// StackError is an error indicating a malformed postfix expression, either
// an operator with too few operands or input that does not reduce to exactly
// one expression. It implements InputError.
type StackError struct {
	// Col is the position of the operator, or the position just past the
	// end of the input if the expression did not reduce to one term.
	Col int
	// Token is the operator that lacked operands. It is empty if the error
	// occurred at the end of the input.
	Token string
	// Depth is the number of terms left at the end of the input.
	Depth int
}

func (err *StackError) Error() string {
	switch {
	case err.Token != "":
		return errpos(err.Col, "not enough operands for "+strconv.Quote(err.Token))
	case err.Depth == 0:
		return errpos(err.Col, "no expression")
	default:
		return errpos(err.Col, strconv.Itoa(err.Depth)+" terms without operators to combine them")
	}
}

func (err *StackError) Pos() int {
	return err.Col
}

// LiteralError is an error indicating a numeric literal that could not be
// parsed. It implements InputError and unwraps to one of ErrEmptyLiteral,
// ErrMalformedLiteral, or ErrMissingOperation.
type LiteralError struct {
	// Col is the position of the literal.
	Col int
	// Text is the literal.
	Text string
	// Err is the reason the literal is invalid.
	Err error
}

func (err *LiteralError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text)+": "+err.Err.Error())
}

func (err *LiteralError) Pos() int {
	return err.Col
}

func (err *LiteralError) Unwrap() error {
	return err.Err
}

// BindingError is an error indicating a variable definition which is not of
// the form name=value or whose value is not a valid literal.
type BindingError struct {
	// Text is the definition.
	Text string
	// Err is the literal error, if the name was valid.
	Err error
}

func (err *BindingError) Error() string {
	if err.Err == nil {
		return `variable definitions must be "name=value", not ` + strconv.Quote(err.Text)
	}
	return "invalid value in " + strconv.Quote(err.Text) + ": " + err.Err.Error()
}

func (err *BindingError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input to Parse implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*StackError)(nil)
	_ InputError = (*LiteralError)(nil)
)
