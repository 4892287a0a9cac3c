package jsscanner

import "fmt"

// Kind classifies an Error
type Kind int

const (
	// Lexical errors come from malformed literals, comments or characters.
	Lexical Kind = iota
	// Syntax errors come from unexpected tokens.
	Syntax
)

// String implements fmt.Stringer
func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical"
	case Syntax:
		return "syntax"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText renders the kind by name in JSON responses
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Error is the structured error returned for malformed input. Line and
// Column are 1-based; Column counts runes.
type Error struct {
	Kind   Kind   `json:"kind"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Msg    string `json:"message"`
}

// Error implements error
func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s error: %s", e.Line, e.Column, e.Kind, e.Msg)
}
