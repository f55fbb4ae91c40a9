package symbolic

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenNum is a real or complex literal.
	tokenNum
	// tokenIdent is a variable name.
	tokenIdent
	// tokenFunc is a unary function name.
	tokenFunc
	// tokenOp is a binary operator.
	tokenOp
)

// Operators contains the binary operators recognized in postfix expressions.
const Operators = "+-*/^"

// lexer splits its input into whitespace-separated tokens.
type lexer struct {
	src   io.RuneScanner
	buf   strings.Builder
	pos   int
	funcs map[string]nodeKind
}

func lex(src io.RuneScanner, funcs map[string]nodeKind) *lexer {
	return &lexer{src: src, funcs: funcs}
}

// next scans the next token. At the end of the input, the error is io.EOF.
// If the token is not valid, the returned token has kind tokenNone and the
// error is a *TokenError.
func (l *lexer) next() (lexToken, error) {
	r, err := l.skip()
	if err != nil {
		return lexToken{}, err
	}
	start := l.pos
	l.buf.Reset()
	l.buf.WriteRune(r)
	for {
		r, _, err := l.src.ReadRune()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return lexToken{}, err
			}
			break
		}
		if unicode.IsSpace(r) {
			l.src.UnreadRune()
			break
		}
		l.pos++
		l.buf.WriteRune(r)
	}
	t := lexToken{text: l.buf.String(), pos: start}
	t.kind = l.classify(t.text)
	if t.kind == tokenNone {
		return t, &TokenError{Col: start, Token: t.text}
	}
	return t, nil
}

// skip consumes whitespace and returns the first rune after it.
func (l *lexer) skip() (rune, error) {
	for {
		r, _, err := l.src.ReadRune()
		if err != nil {
			return 0, err
		}
		l.pos++
		if !unicode.IsSpace(r) {
			return r, nil
		}
	}
}

func (l *lexer) classify(s string) tokenKind {
	switch {
	case s[0] == '.' || '0' <= s[0] && s[0] <= '9':
		return tokenNum
	case len(s) == 1 && strings.ContainsRune(Operators, rune(s[0])):
		return tokenOp
	}
	if _, ok := l.funcs[s]; ok {
		return tokenFunc
	}
	if isIdent(s) {
		return tokenIdent
	}
	return tokenNone
}

// isIdent returns whether s is a valid variable name: a letter or underscore
// followed by any number of letters, digits, and underscores.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
