package jsscanner

import "strconv"

// Token is the set of lexical tokens of the language
type Token int

// The list of tokens
const (
	// Special tokens
	Illegal Token = iota
	EOF

	literalBegin
	Ident
	Number
	String
	Regex
	literalEnd

	operatorBegin
	LParen    // (
	RParen    // )
	LBrack    // [
	RBrack    // ]
	LBrace    // {
	RBrace    // }
	Period    // .
	Semicolon // ;
	Comma     // ,
	Question  // ?
	Colon     // :

	Lt       // <
	Gt       // >
	Le       // <=
	Ge       // >=
	Eq       // ==
	Ne       // !=
	StrictEq // ===
	StrictNe // !==

	Add  // +
	Sub  // -
	Mul  // *
	Div  // /
	Mod  // %
	Inc  // ++
	Dec  // --
	Shl  // <<
	Shr  // >>
	UShr // >>>
	And  // &
	Or   // |
	Xor  // ^
	Not  // !
	Tilde
	LogicalAnd // &&
	LogicalOr  // ||

	Assign     // =
	AddAssign  // +=
	SubAssign  // -=
	MulAssign  // *=
	DivAssign  // /=
	ModAssign  // %=
	ShlAssign  // <<=
	ShrAssign  // >>=
	UShrAssign // >>>=
	AndAssign  // &=
	OrAssign   // |=
	XorAssign  // ^=
	operatorEnd

	keywordBegin
	Break
	Case
	Catch
	Continue
	Debugger
	Default
	Delete
	Do
	Else
	Finally
	For
	Function
	If
	In
	Instanceof
	New
	Return
	Switch
	This
	Throw
	Try
	Typeof
	Var
	Void
	While
	With
	Null
	True
	False

	// Future reserved words; they are never valid identifiers.
	Class
	Const
	Enum
	Export
	Extends
	Import
	Super
	keywordEnd
)

var tokens = [...]string{
	Illegal: "Illegal",
	EOF:     "EOF",

	Ident:  "Ident",
	Number: "Number",
	String: "String",
	Regex:  "Regex",

	LParen:    "(",
	RParen:    ")",
	LBrack:    "[",
	RBrack:    "]",
	LBrace:    "{",
	RBrace:    "}",
	Period:    ".",
	Semicolon: ";",
	Comma:     ",",
	Question:  "?",
	Colon:     ":",

	Lt:       "<",
	Gt:       ">",
	Le:       "<=",
	Ge:       ">=",
	Eq:       "==",
	Ne:       "!=",
	StrictEq: "===",
	StrictNe: "!==",

	Add:        "+",
	Sub:        "-",
	Mul:        "*",
	Div:        "/",
	Mod:        "%",
	Inc:        "++",
	Dec:        "--",
	Shl:        "<<",
	Shr:        ">>",
	UShr:       ">>>",
	And:        "&",
	Or:         "|",
	Xor:        "^",
	Not:        "!",
	Tilde:      "~",
	LogicalAnd: "&&",
	LogicalOr:  "||",

	Assign:     "=",
	AddAssign:  "+=",
	SubAssign:  "-=",
	MulAssign:  "*=",
	DivAssign:  "/=",
	ModAssign:  "%=",
	ShlAssign:  "<<=",
	ShrAssign:  ">>=",
	UShrAssign: ">>>=",
	AndAssign:  "&=",
	OrAssign:   "|=",
	XorAssign:  "^=",

	Break:      "break",
	Case:       "case",
	Catch:      "catch",
	Continue:   "continue",
	Debugger:   "debugger",
	Default:    "default",
	Delete:     "delete",
	Do:         "do",
	Else:       "else",
	Finally:    "finally",
	For:        "for",
	Function:   "function",
	If:         "if",
	In:         "in",
	Instanceof: "instanceof",
	New:        "new",
	Return:     "return",
	Switch:     "switch",
	This:       "this",
	Throw:      "throw",
	Try:        "try",
	Typeof:     "typeof",
	Var:        "var",
	Void:       "void",
	While:      "while",
	With:       "with",
	Null:       "null",
	True:       "true",
	False:      "false",

	Class:   "class",
	Const:   "const",
	Enum:    "enum",
	Export:  "export",
	Extends: "extends",
	Import:  "import",
	Super:   "super",
}

var keywords map[string]Token

func init() {
	keywords = make(map[string]Token)
	for i := keywordBegin + 1; i < keywordEnd; i++ {
		keywords[tokens[i]] = i
	}
}

// String returns the string corresponding to the token tok.
// For operators and keywords, the string is the actual token
// character sequence (e.g., for the token Add, the string is "+").
func (tok Token) String() string {
	s := ""
	if 0 <= tok && tok < Token(len(tokens)) {
		s = tokens[tok]
	}
	if s == "" {
		s = "token(" + strconv.Itoa(int(tok)) + ")"
	}
	return s
}

// Lookup maps an identifier to its keyword token or Ident (if not a keyword).
func Lookup(ident string) Token {
	if tok, isKeyword := keywords[ident]; isKeyword {
		return tok
	}
	return Ident
}

// IsLiteral returns true for tokens corresponding to identifiers
// and basic type literals
func (tok Token) IsLiteral() bool { return literalBegin < tok && tok < literalEnd }

// IsOperator returns true for tokens corresponding to operators and
// delimiters
func (tok Token) IsOperator() bool { return operatorBegin < tok && tok < operatorEnd }

// IsKeyword returns true for tokens corresponding to keywords and
// future reserved words
func (tok Token) IsKeyword() bool { return keywordBegin < tok && tok < keywordEnd }

// IsAssign returns true for = and the compound assignment operators
func (tok Token) IsAssign() bool { return Assign <= tok && tok <= XorAssign }

// IsIdentifierName returns true for tokens that may be used as a
// property name after a dot or as an object literal key
func (tok Token) IsIdentifierName() bool { return tok == Ident || tok.IsKeyword() }

// divisionPreceders lists the tokens after which a slash is a division
// operator rather than the start of a regular expression literal.
var divisionPreceders = map[Token]bool{
	Ident:  true,
	Number: true,
	String: true,
	Regex:  true,
	RParen: true,
	RBrack: true,
	RBrace: true,
	This:   true,
	Null:   true,
	True:   true,
	False:  true,
	Inc:    true,
	Dec:    true,
}

// PermitsDivision returns true if a slash directly following tok is
// scanned as a division operator
func (tok Token) PermitsDivision() bool { return divisionPreceders[tok] }
