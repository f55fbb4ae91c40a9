// Package symbolic implements symbolic expressions over complex, real, and
// arbitrary-precision real numbers.
//
// Expressions are trees of constants, variables, the unary operations
// negation, exp, sin, cos, and ln, and the binary operations +, -, *, /, and
// ^. They can be built with constructors like Add and Sin, or parsed from
// postfix notation: "x 2 ^ x sin *" is (x ^ 2) * sin(x). An expression can be
// formatted, evaluated with a Context giving values for its variables, have
// variables substituted with constants, and be differentiated symbolically.
//
// Expressions are immutable. Differentiation and substitution produce new
// trees, and nothing is simplified: the derivative of "x x *" with respect to
// x is ((1 * x) + (x * 1)). Subexpressions that do not depend on the variable
// of differentiation are never expanded; their derivative is simply 0.
package symbolic
