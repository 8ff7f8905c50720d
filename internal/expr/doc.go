// Package expr parses and evaluates calculator expressions.
//
// The grammar is deliberately closed: numeric literals, the four binary
// operators with the usual precedence, unary sign and a postfix percent.
// Input is parsed into a small AST (Number, Binary, Negate, Percent) and the
// tree is interpreted directly; nothing outside those node kinds is ever
// evaluated.
//
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/') unary)*
//	unary   := ('-' | '+') unary | postfix
//	postfix := number '%'?
//
// Percent on the right-hand side of a binary operator is taken relative to
// the left operand: "200+10%" is 200 + 200*10/100.
//
// Failures are *types.EvalError values carrying a Kind, so callers can
// match them with errors.Is against the domain sentinels.
package expr
