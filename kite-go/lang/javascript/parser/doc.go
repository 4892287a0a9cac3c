// Package parser is a hand-written recursive descent parser for ES5
// source. It produces the trees of package ast and reports the first
// lexical or syntax error as a *jsscanner.Error.
package parser

// All types prepended with godoc are meant to serve as headers for the
// go doc and do not represent real types.

// - Parenthesized expressions do not produce nodes; the printer derives
//   parentheses from operator precedence.
// - Function declarations are accepted in any statement position, as
//   every engine does outside strict mode.
// - `return` outside of a function body is a syntax error.
// - Break and continue labels are not checked against enclosing labels.
// - Strict mode is not recognized, so `with` and octal literals are
//   always accepted.
// - The semicolon after `do ... while (x)` is optional even when the
//   next statement is on the same line.
// - The left-hand side of assignments, for-in heads and ++/-- must be
//   an identifier, a member access, a call or a new expression.
// - A slash at an operand position is rescanned as a regular expression
//   even when the preceding token would make it a division, e.g after
//   the closing paren of an if condition.
// - Nesting depth is bounded by Options.MaxDepth.
type godocTODO int
